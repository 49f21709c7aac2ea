package search

import (
	"sort"

	"github.com/Hayk10002/crossword-generator/pkg/word"
)

// sortedCopy returns words sorted by value, duplicated so callers can
// remove entries without disturbing the original slice.
func sortedCopy(words []word.Word) []word.Word {
	out := make([]word.Word, len(words))
	copy(out, words)
	sort.Slice(out, func(i, j int) bool { return out[i].Value < out[j].Value })
	return out
}

// without returns a copy of words with the entry at index i removed.
func without(words []word.Word, i int) []word.Word {
	out := make([]word.Word, 0, len(words)-1)
	out = append(out, words[:i]...)
	out = append(out, words[i+1:]...)
	return out
}
