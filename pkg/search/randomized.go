package search

import (
	"sync"
	"sync/atomic"

	"github.com/Hayk10002/crossword-generator/pkg/constraint"
	"github.com/Hayk10002/crossword-generator/pkg/crossword"
	"github.com/Hayk10002/crossword-generator/pkg/word"
)

// runRandomized drives the randomized strategy of spec.md §4.5: the finite
// set of permutations of the input word list is enumerated by the factorial
// number system (permutations.go), and a pool of worker goroutines, bounded
// by workerCap, claims successive permutation indices from a shared counter
// until every permutation has been tried. Workers share one demand gate and
// one dedup set, since different permutations can complete to the same
// layout. The stream closes once every worker has returned -- either the
// permutation set was exhausted or the consumer stopped the search.
func runRandomized(s *Search, st *Stream) {
	defer close(st.layouts)

	d := newDemand()
	go feeder(st.requests, d, st.done)
	defer close(st.done)

	dedup := newDedupSet()
	total := permutationCount(len(s.Words))
	var next uint64

	var wg sync.WaitGroup
	workers := s.workerCap()
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			randomizedWorker(s.Constraints, d, dedup, st, s.Policy, s.Words, &next, total)
		}()
	}
	wg.Wait()
}

// randomizedWorker claims successive permutation indices from next (shared
// across the worker pool) and walks each one to exhaustion in that fixed
// order, until every permutation up to total has been claimed or the
// producer as a whole is told to stop.
func randomizedWorker(constraints constraint.Set, d *demand, dedup *dedupSet, st *Stream, policy crossword.Policy, words []word.Word, next *uint64, total uint64) {
	for {
		if d.stopped() {
			return
		}
		idx := atomic.AddUint64(next, 1) - 1
		if idx >= total {
			return
		}
		order := permutationAt(words, idx)
		layout := crossword.New(policy)
		if randomizedRecurse(constraints, d, dedup, st, layout, order, 0) {
			return
		}
	}
}

// randomizedRecurse walks order from index onward in the fixed order it was
// given, branching only over candidate placements of order[index] -- never
// over which word to place next, unlike the sorted strategy. A completed
// layout is emitted only if dedup has not already seen an equal one.
func randomizedRecurse(constraints constraint.Set, d *demand, dedup *dedupSet, st *Stream, layout *crossword.Crossword, order []word.Word, index int) (stop bool) {
	if !constraints.CheckNonrecoverable(layout) {
		return false
	}

	if index == len(order) {
		if !constraints.CheckRecoverable(layout) {
			return false
		}
		if !dedup.claim(layout) {
			return false
		}
		if !d.acquireSlot() {
			return true
		}
		select {
		case st.layouts <- layout.Clone():
			return false
		case <-st.done:
			return true
		}
	}

	w := order[index]
	for _, placement := range layout.PlacementsFor(w) {
		if err := layout.Add(placement); err != nil {
			panic("search: offered placement rejected by layout: " + err.Error())
		}

		if randomizedRecurse(constraints, d, dedup, st, layout, order, index+1) {
			return true
		}

		layout.Remove(placement.Value)
	}
	return false
}
