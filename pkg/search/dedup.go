package search

import (
	"strconv"
	"strings"
	"sync"

	"github.com/Hayk10002/crossword-generator/pkg/crossword"
)

// dedupSet records the signature of every completed layout the randomized
// strategy's workers have already emitted, so two workers racing down
// different permutations that land on the same normalized layout don't both
// emit it. The sorted strategy doesn't need this: its containment-based
// base pruning already rules out revisiting a layout.
type dedupSet struct {
	mu   sync.Mutex
	seen map[string]struct{}
}

func newDedupSet() *dedupSet {
	return &dedupSet{seen: make(map[string]struct{})}
}

// claim reports whether layout's signature was not already recorded, and
// records it. Two concurrent callers with the same signature: exactly one
// gets true.
func (d *dedupSet) claim(layout *crossword.Crossword) bool {
	sig := signature(layout)
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, exists := d.seen[sig]; exists {
		return false
	}
	d.seen[sig] = struct{}{}
	return true
}

// signature builds a canonical string identifying a layout: its words are
// already normalized and Words() returns them in canonical order, so two
// layouts with the same placements always produce the same signature
// regardless of which permutation discovered them.
func signature(layout *crossword.Crossword) string {
	var b strings.Builder
	for _, pw := range layout.Words() {
		b.WriteString(pw.Value)
		b.WriteByte('@')
		b.WriteString(strconv.Itoa(int(pw.Position.X)))
		b.WriteByte(',')
		b.WriteString(strconv.Itoa(int(pw.Position.Y)))
		b.WriteByte(',')
		b.WriteString(pw.Direction.String())
		b.WriteByte(';')
	}
	return b.String()
}
