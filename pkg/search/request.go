// Package search implements the backtracking enumeration of spec.md §4.5:
// a sorted depth-first strategy and a randomized per-permutation strategy,
// both exposed through a demand-driven Stream.
package search

// Kind distinguishes the three demand requests a consumer may post to a
// Stream.
type Kind int

const (
	// KindStop terminates the producer at its next checkpoint.
	KindStop Kind = iota
	// KindCount allows up to Count more layouts to be emitted.
	KindCount
	// KindAll lets the producer run to exhaustion without blocking on demand.
	KindAll
)

// Request is a single demand message posted to a Stream. A Count request
// overwrites any previous outstanding Count, it does not accumulate.
type Request struct {
	Kind  Kind
	Count uint
}

// Stop requests that the producer terminate at the next checkpoint.
func Stop() Request { return Request{Kind: KindStop} }

// Count requests that up to n more layouts be emitted.
func Count(n uint) Request { return Request{Kind: KindCount, Count: n} }

// All requests that the producer run until the search is exhausted.
func All() Request { return Request{Kind: KindAll} }
