// Package crossword implements the Layout of spec.md §4.3: a normalized,
// pairwise-compatible set of placed words, together with containment,
// candidate enumeration, sizing and rasterization.
package crossword

import (
	"errors"

	"github.com/Hayk10002/crossword-generator/pkg/placedword"
	"github.com/Hayk10002/crossword-generator/pkg/word"
)

// Sentinel errors returned by Add/AddBatch. Search never triggers these --
// it only ever offers placements that already passed CanAdd -- so seeing
// one escape the search layer means an invariant was broken.
var (
	ErrDuplicateValue = errors.New("crossword: word value already placed")
	ErrIncompatible   = errors.New("crossword: placement violates compatibility policy")
)

// Crossword is a normalized set of placed words, no two of which share a
// value, all of which are pairwise compatible under Policy.
type Crossword struct {
	words  map[string]placedword.PlacedWord
	Policy Policy
}

// New returns an empty crossword governed by policy.
func New(policy Policy) *Crossword {
	return &Crossword{words: make(map[string]placedword.PlacedWord), Policy: policy}
}

// Clone returns an independent copy whose mutation does not affect the
// original. Used by the search to hand out a snapshot at each emission
// point while the working copy keeps being mutated along the recursion.
func (c *Crossword) Clone() *Crossword {
	cp := New(c.Policy)
	for k, v := range c.words {
		cp.words[k] = v
	}
	return cp
}

// Len reports how many words are placed.
func (c *Crossword) Len() int { return len(c.words) }

// WordCount implements constraint.Layout.
func (c *Crossword) WordCount() int { return c.Len() }

// Find returns the placed word with the given value, if any.
func (c *Crossword) Find(value string) (placedword.PlacedWord, bool) {
	pw, ok := c.words[value]
	return pw, ok
}

// CanAdd reports whether pw is compatible with every word already placed
// and no placed word already has pw's value.
func (c *Crossword) CanAdd(pw placedword.PlacedWord) bool {
	if _, exists := c.words[pw.Value]; exists {
		return false
	}
	for _, existing := range c.words {
		if !c.Policy.AreCompatible(existing, pw) {
			return false
		}
	}
	return true
}

// Add inserts pw, normalizing the whole layout afterwards. Returns
// ErrDuplicateValue if pw.Value is already placed, ErrIncompatible if pw
// violates the policy against some existing word.
func (c *Crossword) Add(pw placedword.PlacedWord) error {
	if _, exists := c.words[pw.Value]; exists {
		return ErrDuplicateValue
	}
	for _, existing := range c.words {
		if !c.Policy.AreCompatible(existing, pw) {
			return ErrIncompatible
		}
	}
	c.words[pw.Value] = pw
	c.normalize()
	return nil
}

// AddBatch adds every word in pws in order, normalizing only once at the
// end. If any add fails, the words added before the failure stay in the
// layout (renormalized) and the error is returned.
func (c *Crossword) AddBatch(pws []placedword.PlacedWord) error {
	for _, pw := range pws {
		if _, exists := c.words[pw.Value]; exists {
			c.normalize()
			return ErrDuplicateValue
		}
		for _, existing := range c.words {
			if !c.Policy.AreCompatible(existing, pw) {
				c.normalize()
				return ErrIncompatible
			}
		}
		c.words[pw.Value] = pw
	}
	c.normalize()
	return nil
}

// Remove deletes the word with the given value, if present, and
// renormalizes. Reports whether a word was removed.
func (c *Crossword) Remove(value string) bool {
	if _, exists := c.words[value]; !exists {
		return false
	}
	delete(c.words, value)
	c.normalize()
	return true
}

// normalize translates every placed word so the minimum X and minimum Y
// across the layout are both 0.
func (c *Crossword) normalize() {
	if len(c.words) == 0 {
		return
	}
	var minX, minY int16
	first := true
	for _, pw := range c.words {
		if first {
			minX, minY = pw.Position.X, pw.Position.Y
			first = false
			continue
		}
		if pw.Position.X < minX {
			minX = pw.Position.X
		}
		if pw.Position.Y < minY {
			minY = pw.Position.Y
		}
	}
	if minX == 0 && minY == 0 {
		return
	}
	for value, pw := range c.words {
		pw.Position.X -= minX
		pw.Position.Y -= minY
		c.words[value] = pw
	}
}

// Contains reports whether other is a sub-layout of c: every word in other
// appears in c with the same direction, and the positional offset between
// matched pairs is identical across all of them.
func (c *Crossword) Contains(other *Crossword) bool {
	if other.Len() > c.Len() {
		return false
	}
	var offsetX, offsetY int16
	haveOffset := false
	for _, otherWord := range other.words {
		curWord, ok := c.words[otherWord.Value]
		if !ok || curWord.Direction != otherWord.Direction {
			return false
		}
		dx := curWord.Position.X - otherWord.Position.X
		dy := curWord.Position.Y - otherWord.Position.Y
		if !haveOffset {
			offsetX, offsetY = dx, dy
			haveOffset = true
			continue
		}
		if dx != offsetX || dy != offsetY {
			return false
		}
	}
	return true
}

// PlacementsFor enumerates every candidate placement of w against the
// current layout: on an empty layout, the single candidate anchoring w at
// the origin in the default direction; otherwise, the union of candidates
// against every placed word, filtered to those CanAdd accepts. Results are
// returned sorted for deterministic iteration.
func (c *Crossword) PlacementsFor(w word.Word) []placedword.PlacedWord {
	if len(c.words) == 0 {
		return []placedword.PlacedWord{placedword.New(w.Value, word.Position{}, word.Right)}
	}

	type key struct {
		value string
		pos   word.Position
		dir   word.Direction
	}
	seen := make(map[key]placedword.PlacedWord)
	for _, existing := range c.words {
		for _, candidate := range existing.PlacementsFor(w) {
			if !c.CanAdd(candidate) {
				continue
			}
			seen[key{candidate.Value, candidate.Position, candidate.Direction}] = candidate
		}
	}

	out := make([]placedword.PlacedWord, 0, len(seen))
	for _, pw := range seen {
		out = append(out, pw)
	}
	placedword.Sort(out)
	return out
}

// Size returns the (width, height) of the smallest rectangle anchored at
// (0,0) that encloses every placed word.
func (c *Crossword) Size() (width, height uint16) {
	var maxX, maxY int32
	for _, pw := range c.words {
		x, y := int32(pw.Position.X), int32(pw.Position.Y)
		l := int32(len(pw.Value))
		if x+1 > maxX {
			maxX = x + 1
		}
		if y+1 > maxY {
			maxY = y + 1
		}
		switch pw.Direction {
		case word.Right:
			if x+l > maxX {
				maxX = x + l
			}
		case word.Down:
			if y+l > maxY {
				maxY = y + l
			}
		}
	}
	return uint16(maxX), uint16(maxY)
}

// Raster renders the layout as a height x width grid of characters, using
// the zero byte for empty cells. A cell written by two crossing words
// always carries the same value, guaranteed by the compatibility
// invariant.
func (c *Crossword) Raster() [][]byte {
	width, height := c.Size()
	table := make([][]byte, height)
	for y := range table {
		table[y] = make([]byte, width)
	}
	for _, pw := range c.words {
		for i := 0; i < len(pw.Value); i++ {
			switch pw.Direction {
			case word.Right:
				table[pw.Position.Y][int(pw.Position.X)+i] = pw.Value[i]
			case word.Down:
				table[int(pw.Position.Y)+i][pw.Position.X] = pw.Value[i]
			}
		}
	}
	return table
}

// Words returns every placed word, sorted canonically. The returned slice
// is a snapshot; mutating it does not affect the crossword.
func (c *Crossword) Words() []placedword.PlacedWord {
	out := make([]placedword.PlacedWord, 0, len(c.words))
	for _, pw := range c.words {
		out = append(out, pw)
	}
	placedword.Sort(out)
	return out
}
