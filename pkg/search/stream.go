package search

import (
	"github.com/Hayk10002/crossword-generator/pkg/crossword"
)

// requestChanCap and layoutChanCap match spec.md §4.5's design defaults.
const (
	requestChanCap = 100
	layoutChanCap  = 100
)

// Stream is the producer-to-consumer handle returned by Search.Start. The
// consumer alternates between posting demand with Request and pulling
// results with Next.
type Stream struct {
	requests chan Request
	layouts  chan *crossword.Crossword
	done     chan struct{}
}

func newStream() *Stream {
	return &Stream{
		requests: make(chan Request, requestChanCap),
		layouts:  make(chan *crossword.Crossword, layoutChanCap),
		done:     make(chan struct{}),
	}
}

// Request posts a demand request to the producer. It may block briefly if
// the request channel is full.
func (s *Stream) Request(req Request) {
	select {
	case s.requests <- req:
	case <-s.done:
	}
}

// Close closes the request channel, which the producer treats exactly like
// a Stop request.
func (s *Stream) Close() {
	close(s.requests)
}

// Next blocks until a layout is available or the stream has ended. ok is
// false once the producer has finished and every buffered layout has been
// drained.
func (s *Stream) Next() (layout *crossword.Crossword, ok bool) {
	layout, ok = <-s.layouts
	return layout, ok
}

// feeder relays requests arriving on the Stream's request channel into the
// shared demand gate, until the channel is closed or a Stop is relayed. It
// also exits early if the producer signals it is already done, so a
// consumer that never sends Stop doesn't leak this goroutine.
func feeder(requests <-chan Request, d *demand, producerDone <-chan struct{}) {
	for {
		select {
		case req, ok := <-requests:
			if !ok {
				d.close()
				return
			}
			d.update(req)
			if req.Kind == KindStop {
				return
			}
		case <-producerDone:
			return
		}
	}
}
