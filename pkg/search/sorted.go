package search

import (
	"github.com/Hayk10002/crossword-generator/pkg/constraint"
	"github.com/Hayk10002/crossword-generator/pkg/crossword"
	"github.com/Hayk10002/crossword-generator/pkg/word"
)

// runSorted drives the deterministic, single-producer depth-first strategy
// of spec.md §4.5 and closes the stream's channels when the search is
// exhausted or the consumer stops it.
func runSorted(s *Search, st *Stream) {
	defer close(st.layouts)

	d := newDemand()
	go feeder(st.requests, d, st.done)
	defer close(st.done)

	layout := crossword.New(s.Policy)
	var bases []*crossword.Crossword
	sortedRecurse(s.Constraints, d, st, layout, sortedCopy(s.Words), &bases)
}

// sortedRecurse implements the recursion body of spec.md §4.5's sorted
// strategy: nonrecoverable-constraint pruning, containment-based base
// pruning, leaf emission gated on demand, then one branch per remaining
// word x per candidate placement, backtracking after each.
func sortedRecurse(constraints constraint.Set, d *demand, st *Stream, layout *crossword.Crossword, remaining []word.Word, bases *[]*crossword.Crossword) (stop bool) {
	if !constraints.CheckNonrecoverable(layout) {
		return false
	}

	for _, base := range *bases {
		if layout.Contains(base) {
			return false
		}
	}

	if len(remaining) == 0 {
		if !constraints.CheckRecoverable(layout) {
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

	for i, w := range remaining {
		rest := without(remaining, i)
		for _, placement := range layout.PlacementsFor(w) {
			// The search only ever offers placements that already passed
			// CanAdd, so this can never fail; an error here would mean an
			// invariant of the algebra was broken.
			if err := layout.Add(placement); err != nil {
				panic("search: offered placement rejected by layout: " + err.Error())
			}

			if sortedRecurse(constraints, d, st, layout, rest, bases) {
				return true
			}

			for i := 0; i < len(*bases); i++ {
				if layout.Contains((*bases)[i]) {
					*bases = append((*bases)[:i], (*bases)[i+1:]...)
					i--
				}
			}
			*bases = append(*bases, layout.Clone())

			layout.Remove(placement.Value)
		}
	}
	return false
}
