package search

import (
	"github.com/Hayk10002/crossword-generator/pkg/constraint"
	"github.com/Hayk10002/crossword-generator/pkg/crossword"
	"github.com/Hayk10002/crossword-generator/pkg/word"
)

// Strategy selects which backtracking driver a Search runs.
type Strategy int

const (
	// Sorted enumerates candidates in a fixed, deterministic order and
	// prunes whole subtrees that are contained in an already-visited
	// layout. It runs on a single goroutine.
	Sorted Strategy = iota
	// Randomized walks every permutation of the words, each in its own
	// fixed order, across a pool of worker goroutines, deduplicating
	// completed layouts instead of pruning by containment.
	Randomized
)

// defaultWorkerCap bounds the number of goroutines the randomized strategy
// spawns when Search.WorkerCap is left at zero.
const defaultWorkerCap = 10

// Search holds everything needed to enumerate crosswords over a fixed word
// list: the words themselves, the compatibility policy new placements must
// satisfy, the constraints every layout must satisfy, and which strategy to
// run. It is immutable once Start is called; a Search can be started more
// than once, each call producing an independent Stream.
type Search struct {
	Words       []word.Word
	Policy      crossword.Policy
	Constraints constraint.Set
	Strategy    Strategy
	// WorkerCap bounds the goroutine pool used by the Randomized strategy.
	// Zero means defaultWorkerCap. Unused by Sorted.
	WorkerCap int
}

// New builds a Search over words with the default compatibility policy and
// no constraints. Callers mutate the returned Search's fields (Policy,
// Constraints, Strategy, WorkerCap) before calling Start.
func New(words []word.Word) *Search {
	return &Search{
		Words:  words,
		Policy: crossword.DefaultPolicy(),
	}
}

// Start spawns the search's producer goroutine(s) and returns the Stream the
// caller uses to drive and collect results.
func (s *Search) Start() *Stream {
	st := newStream()
	switch s.Strategy {
	case Randomized:
		go runRandomized(s, st)
	default:
		go runSorted(s, st)
	}
	return st
}

func (s *Search) workerCap() int {
	if s.WorkerCap > 0 {
		return s.WorkerCap
	}
	return defaultWorkerCap
}
