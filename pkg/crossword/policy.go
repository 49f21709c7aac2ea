package crossword

import "github.com/Hayk10002/crossword-generator/pkg/placedword"

// Policy controls which non-intersecting adjacencies between two placed
// words are allowed. Each flag names an adjacency kind and whether it is
// permitted; corner-by-corner is the only one allowed by default.
type Policy struct {
	SideBySide     bool
	HeadByHead     bool
	SideByHead     bool
	CornerByCorner bool
}

// DefaultPolicy matches the source crossword's defaults: every adjacency is
// forbidden except two words meeting at a single corner.
func DefaultPolicy() Policy {
	return Policy{CornerByCorner: true}
}

// AreCompatible implements the compatibility check of spec.md §4.3: corner
// touching is checked first regardless of direction, then same-direction
// words are checked for head-to-head/side-to-side adjacency and outright
// overlap, and different-direction words are checked for side-to-head
// adjacency and, if they intersect, for matching characters at the
// crossing cell.
func (p Policy) AreCompatible(a, b placedword.PlacedWord) bool {
	if a.CornersTouch(b) && !p.CornerByCorner {
		return false
	}

	if a.Direction == b.Direction {
		if a.HeadTouchesHead(b) && !p.HeadByHead {
			return false
		}
		if a.SideTouchesSide(b) && !p.SideBySide {
			return false
		}
		if a.Intersects(b) {
			return false
		}
		return true
	}

	if a.SideTouchesHead(b) && !p.SideByHead {
		return false
	}
	if a.Intersects(b) {
		aIdx, bIdx, ok := a.IntersectionIndices(b)
		if !ok || aIdx < 0 || aIdx >= len(a.Value) || bIdx < 0 || bIdx >= len(b.Value) {
			return false
		}
		return a.Value[aIdx] == b.Value[bIdx]
	}
	return true
}
