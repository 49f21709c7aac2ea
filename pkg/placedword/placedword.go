// Package placedword implements the algebra over words that have already
// been given a position and direction: bounding-box-derived adjacency
// predicates, intersection indices, and enumeration of the candidate
// placements of a new word against a single already-placed one.
package placedword

import (
	"sort"

	"github.com/Hayk10002/crossword-generator/pkg/geom"
	"github.com/Hayk10002/crossword-generator/pkg/word"
)

// PlacedWord is a word that has been given a position and direction inside
// a crossword. Its bounding box is 1xlen when Right, lenx1 when Down.
type PlacedWord struct {
	Value     string
	Position  word.Position
	Direction word.Direction
}

// New builds a PlacedWord.
func New(value string, pos word.Position, dir word.Direction) PlacedWord {
	return PlacedWord{Value: value, Position: pos, Direction: dir}
}

func (p PlacedWord) box() geom.Box {
	w, h := int32(1), int32(1)
	switch p.Direction {
	case word.Right:
		w = int32(len(p.Value))
	case word.Down:
		h = int32(len(p.Value))
	}
	return geom.Box{X: int32(p.Position.X), Y: int32(p.Position.Y), W: w, H: h}
}

// parallelCoordinate is the coordinate that stays fixed as the word's own
// axis varies: the row for a Right word, the column for a Down word.
func (p PlacedWord) parallelCoordinate() int16 {
	if p.Direction == word.Right {
		return p.Position.Y
	}
	return p.Position.X
}

// Intersects reports whether the two placed words' bounding boxes overlap.
func (p PlacedWord) Intersects(o PlacedWord) bool {
	return p.box().Intersects(o.box())
}

func (p PlacedWord) sidesTouch(o PlacedWord) bool {
	return p.box().SidesTouch(o.box())
}

// CornersTouch reports whether the two words meet at exactly one corner.
func (p PlacedWord) CornersTouch(o PlacedWord) bool {
	return p.box().CornersTouch(o.box())
}

// SideTouchesSide reports whether the two words run in the same direction,
// touch along an edge, and lie in different rows/columns (parallel,
// adjacent rows/columns).
func (p PlacedWord) SideTouchesSide(o PlacedWord) bool {
	return p.Direction == o.Direction &&
		p.sidesTouch(o) &&
		p.parallelCoordinate() != o.parallelCoordinate()
}

// HeadTouchesHead reports whether the two words run in the same direction,
// touch along an edge, and share the same row/column (end to end).
func (p PlacedWord) HeadTouchesHead(o PlacedWord) bool {
	return p.Direction == o.Direction &&
		p.sidesTouch(o) &&
		p.parallelCoordinate() == o.parallelCoordinate()
}

// SideTouchesHead reports whether the two words run perpendicular to each
// other and touch along an edge (one word's side meets the other's end).
func (p PlacedWord) SideTouchesHead(o PlacedWord) bool {
	return p.Direction != o.Direction && p.sidesTouch(o)
}

// IntersectionIndices returns the index into p.Value and the index into
// o.Value of the character at their crossing cell, when the two words run
// perpendicular to each other and their bounding boxes overlap. It does not
// check whether the characters at those indices agree -- that is a
// compatibility concern, not a geometric one.
func (p PlacedWord) IntersectionIndices(o PlacedWord) (pIdx, oIdx int, ok bool) {
	if !p.Intersects(o) || p.Direction == o.Direction {
		return 0, 0, false
	}
	switch p.Direction {
	case word.Right:
		return int(o.Position.X - p.Position.X), int(p.Position.Y - o.Position.Y), true
	default: // word.Down
		return int(o.Position.Y - p.Position.Y), int(p.Position.X - o.Position.X), true
	}
}

type placementKey struct {
	value string
	pos   word.Position
	dir   word.Direction
}

// PlacementsFor enumerates every way w could be placed so that it crosses
// p: for every character shared between p.Value and w.Value, and for every
// pairing of occurrences of that character in each word, a candidate
// placement of w perpendicular to p is produced. Results are deduplicated
// by (value, position, direction) and returned sorted for deterministic
// iteration. If w is direction-locked to p's own direction, no candidate
// can cross it, so the result is empty.
func (p PlacedWord) PlacementsFor(w word.Word) []PlacedWord {
	if w.Locked(p.Direction) {
		return nil
	}

	seen := make(map[placementKey]PlacedWord)
	for wordIdx, c := range []byte(w.Value) {
		for selfIdx := 0; selfIdx < len(p.Value); selfIdx++ {
			if p.Value[selfIdx] != c {
				continue
			}
			var pos word.Position
			switch p.Direction {
			case word.Right:
				pos = word.Position{X: p.Position.X + int16(selfIdx), Y: p.Position.Y - int16(wordIdx)}
			default: // word.Down
				pos = word.Position{X: p.Position.X - int16(wordIdx), Y: p.Position.Y + int16(selfIdx)}
			}
			placed := New(w.Value, pos, p.Direction.Opposite())
			key := placementKey{value: placed.Value, pos: placed.Position, dir: placed.Direction}
			seen[key] = placed
		}
	}

	out := make([]PlacedWord, 0, len(seen))
	for _, pw := range seen {
		out = append(out, pw)
	}
	Sort(out)
	return out
}

// Sort orders placed words canonically: by value, then position, then
// direction. It is used wherever candidate sets need deterministic
// iteration order.
func Sort(words []PlacedWord) {
	sort.Slice(words, func(i, j int) bool {
		return Less(words[i], words[j])
	})
}

// Less implements the canonical ordering used by Sort: value, then X, then
// Y, then direction.
func Less(a, b PlacedWord) bool {
	if a.Value != b.Value {
		return a.Value < b.Value
	}
	if a.Position.X != b.Position.X {
		return a.Position.X < b.Position.X
	}
	if a.Position.Y != b.Position.Y {
		return a.Position.Y < b.Position.Y
	}
	return a.Direction < b.Direction
}
