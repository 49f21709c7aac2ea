// Package constraint classifies crossword-level constraints as recoverable
// (a future word placement might still satisfy them) or non-recoverable
// (once violated, the whole branch of the search they live on is dead), and
// exposes the two check modes the search consults at different points of
// its recursion.
package constraint

// Layout is the minimal surface a Constraint needs to check itself. It is
// satisfied by *crossword.Crossword without this package importing it.
type Layout interface {
	Size() (width, height uint16)
	WordCount() int
}

// Constraint is a single named check against a Layout, together with
// whether it is recoverable.
type Constraint interface {
	// Check reports whether the layout currently satisfies the constraint.
	Check(l Layout) bool
	// Recoverable reports whether a violation now could still be fixed by
	// adding more words later.
	Recoverable() bool
}

// None is always satisfied; it exists so a Set is never required to carry
// constraints and still has a well-defined recoverable/non-recoverable
// partition.
type None struct{}

func (None) Check(Layout) bool { return true }
func (None) Recoverable() bool { return false }

// MaxLength caps the width of the layout's bounding rectangle. Size grows
// monotonically as words are added, so once violated it can never be
// un-violated: non-recoverable.
type MaxLength uint16

func (m MaxLength) Check(l Layout) bool {
	w, _ := l.Size()
	return w <= uint16(m)
}
func (MaxLength) Recoverable() bool { return false }

// MaxHeight caps the height of the layout's bounding rectangle.
// Non-recoverable for the same reason as MaxLength.
type MaxHeight uint16

func (m MaxHeight) Check(l Layout) bool {
	_, h := l.Size()
	return h <= uint16(m)
}
func (MaxHeight) Recoverable() bool { return false }

// MaxArea caps width*height of the layout's bounding rectangle.
// Non-recoverable.
type MaxArea uint32

func (m MaxArea) Check(l Layout) bool {
	w, h := l.Size()
	return uint32(w)*uint32(h) <= uint32(m)
}
func (MaxArea) Recoverable() bool { return false }

// Set is an ordered sequence of constraints.
type Set []Constraint

// CheckNonrecoverable reports whether every non-recoverable constraint in
// the set currently holds.
func (s Set) CheckNonrecoverable(l Layout) bool {
	for _, c := range s {
		if c.Recoverable() {
			continue
		}
		if !c.Check(l) {
			return false
		}
	}
	return true
}

// CheckRecoverable reports whether every recoverable constraint in the set
// currently holds.
func (s Set) CheckRecoverable(l Layout) bool {
	for _, c := range s {
		if !c.Recoverable() {
			continue
		}
		if !c.Check(l) {
			return false
		}
	}
	return true
}
