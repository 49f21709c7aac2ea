package search

import "github.com/Hayk10002/crossword-generator/pkg/word"

// permutationCount returns n!, the number of distinct orderings of n words.
// The randomized strategy enumerates this many permutations, so it is the
// exhaustion bound each worker checks its claimed index against.
func permutationCount(n int) uint64 {
	count := uint64(1)
	for i := 2; i <= n; i++ {
		count *= uint64(i)
	}
	return count
}

// permutationAt returns the idx-th permutation of words in the ordering
// induced by the factorial number system (idx in [0, permutationCount(len(words)))).
// This lets a pool of workers enumerate the full permutation set by claiming
// successive indices from a shared counter, without a generator goroutine or
// materializing every permutation up front.
func permutationAt(words []word.Word, idx uint64) []word.Word {
	n := len(words)
	avail := make([]word.Word, n)
	copy(avail, words)

	out := make([]word.Word, 0, n)
	for i := n; i > 0; i-- {
		f := permutationCount(i - 1)
		pos := idx / f
		idx %= f
		out = append(out, avail[pos])
		avail = append(avail[:pos], avail[pos+1:]...)
	}
	return out
}
