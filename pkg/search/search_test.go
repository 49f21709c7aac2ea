package search

import (
	"testing"
	"time"

	"github.com/Hayk10002/crossword-generator/pkg/constraint"
	"github.com/Hayk10002/crossword-generator/pkg/word"
)

func words(values ...string) []word.Word {
	out := make([]word.Word, len(values))
	for i, v := range values {
		out[i] = word.New(v, nil)
	}
	return out
}

func recvLayout(t *testing.T, st *Stream) (string, bool) {
	t.Helper()
	select {
	case layout, ok := <-st.layouts:
		if !ok {
			return "", false
		}
		return signature(layout), true
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for a layout")
		return "", false
	}
}

func TestSortedHelloWorldFirstTwoLayouts(t *testing.T) {
	s := New(words("hello", "world"))
	st := s.Start()
	defer st.Close()

	st.Request(Count(2))

	first, ok := recvLayout(t, st)
	if !ok {
		t.Fatal("expected a first layout")
	}
	second, ok := recvLayout(t, st)
	if !ok {
		t.Fatal("expected a second layout")
	}
	if first == second {
		t.Fatalf("expected two distinct layouts, got the same signature twice: %s", first)
	}
}

func TestSortedDemandProtocolStopsExactlyAtCount(t *testing.T) {
	s := New(words("a", "accb", "b"))
	st := s.Start()
	defer st.Close()

	st.Request(Count(10))

	got := 0
	timeout := time.After(2 * time.Second)
loop:
	for got < 10 {
		select {
		case layout, ok := <-st.layouts:
			if !ok {
				break loop
			}
			_ = layout
			got++
		case <-timeout:
			t.Fatalf("timed out after receiving %d layouts", got)
		}
	}

	st.Request(Stop())

	select {
	case _, ok := <-st.layouts:
		if ok {
			t.Fatal("expected no further layouts after Stop")
		}
	case <-time.After(500 * time.Millisecond):
	}
}

func TestSortedCountTwoThenStopEndsStream(t *testing.T) {
	s := New(words("hatlo", "cat"))
	st := s.Start()
	defer st.Close()

	st.Request(Count(2))
	if _, ok := recvLayout(t, st); !ok {
		t.Fatal("expected first layout")
	}
	if _, ok := recvLayout(t, st); !ok {
		t.Fatal("expected second layout")
	}

	st.Request(Stop())

	select {
	case _, ok := <-st.layouts:
		if ok {
			t.Fatal("expected the stream to end after Stop, got another layout")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for the stream to close after Stop")
	}
}

func TestSortedMaxAreaConstraintPrunes(t *testing.T) {
	s := New(words("hello", "world"))
	s.Constraints = constraint.Set{constraint.MaxArea(9)}
	st := s.Start()

	st.Request(All())
	for {
		layout, ok := <-st.layouts
		if !ok {
			break
		}
		w, h := layout.Size()
		if uint32(w)*uint32(h) > 9 {
			t.Fatalf("layout of area %dx%d violates MaxArea(9)", w, h)
		}
	}
}

func TestRandomizedEmitsDistinctLayoutsWithinCap(t *testing.T) {
	s := New(words("a", "accb", "b"))
	s.Strategy = Randomized
	s.WorkerCap = 4
	st := s.Start()
	defer st.Close()

	st.Request(Count(5))

	// "a" and "b" can only cross "accb", so the word set admits exactly two
	// distinct layouts: accb across or accb down.
	seen := make(map[string]bool)
	timeout := time.After(3 * time.Second)
	for len(seen) < 2 {
		select {
		case layout, ok := <-st.layouts:
			if !ok {
				t.Fatalf("stream closed early after %d distinct layouts", len(seen))
			}
			sig := signature(layout)
			if seen[sig] {
				t.Fatalf("randomized strategy emitted a duplicate layout: %s", sig)
			}
			seen[sig] = true
		case <-timeout:
			t.Fatalf("timed out after %d distinct layouts", len(seen))
		}
	}
}
