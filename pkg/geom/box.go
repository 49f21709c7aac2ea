// Package geom holds the pure geometric predicates the rest of the engine
// is built on: axis-aligned bounding box intersection, edge-touching and
// corner-touching. None of it knows about words or characters.
package geom

// Box is an axis-aligned rectangle: top-left corner (X, Y), width W and
// height H. W and H are never negative; X and Y may be, since boxes are
// built from not-yet-normalized placements during search.
type Box struct {
	X, Y int32
	W, H int32
}

// Intersects reports whether the two boxes overlap (a shared area, not just
// a shared edge or corner).
func (b Box) Intersects(o Box) bool {
	return b.X < o.X+o.W && b.X+b.W > o.X &&
		b.Y < o.Y+o.H && b.Y+b.H > o.Y
}

// SidesTouch reports whether the two boxes share a non-zero-length edge
// segment without overlapping: one pair of edges coincides (top meets
// bottom, or left meets right) and the projection onto the other axis
// overlaps.
func (b Box) SidesTouch(o Box) bool {
	horizontalOverlap := b.X+b.W > o.X && b.X < o.X+o.W
	verticalEdgesMeet := b.Y+b.H == o.Y || o.Y+o.H == b.Y

	verticalOverlap := b.Y+b.H > o.Y && b.Y < o.Y+o.H
	horizontalEdgesMeet := b.X+b.W == o.X || o.X+o.W == b.X

	return (horizontalOverlap && verticalEdgesMeet) || (verticalOverlap && horizontalEdgesMeet)
}

// CornersTouch reports whether exactly one corner of one box equals exactly
// one corner of the other.
func (b Box) CornersTouch(o Box) bool {
	return (b.X == o.X+o.W && b.Y == o.Y+o.H) ||
		(b.X+b.W == o.X && b.Y == o.Y+o.H) ||
		(b.X+b.W == o.X && b.Y+b.H == o.Y) ||
		(b.X == o.X+o.W && b.Y+b.H == o.Y)
}
