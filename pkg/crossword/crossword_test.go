package crossword

import (
	"errors"
	"testing"

	"github.com/Hayk10002/crossword-generator/pkg/placedword"
	"github.com/Hayk10002/crossword-generator/pkg/word"
)

func mustAdd(t *testing.T, c *Crossword, value string, x, y int16, dir word.Direction) {
	t.Helper()
	if err := c.Add(placedword.New(value, word.Position{X: x, Y: y}, dir)); err != nil {
		t.Fatalf("Add(%q) failed: %v", value, err)
	}
}

func TestAddDuplicateValue(t *testing.T) {
	c := New(DefaultPolicy())
	mustAdd(t, c, "hello", 0, 0, word.Right)

	err := c.Add(placedword.New("hello", word.Position{X: 5, Y: 5}, word.Down))
	if !errors.Is(err, ErrDuplicateValue) {
		t.Fatalf("got %v, want ErrDuplicateValue", err)
	}
}

func TestAddIncompatible(t *testing.T) {
	c := New(DefaultPolicy())
	mustAdd(t, c, "hello", 0, 0, word.Right)

	// Overlapping placement of a different word at the same row: intersects.
	err := c.Add(placedword.New("jello", word.Position{X: 0, Y: 0}, word.Right))
	if !errors.Is(err, ErrIncompatible) {
		t.Fatalf("got %v, want ErrIncompatible", err)
	}
}

func TestAddThenRemoveRestoresOriginal(t *testing.T) {
	c := New(DefaultPolicy())
	mustAdd(t, c, "hello", 0, 3, word.Right)

	before := c.Words()

	// hello was normalized to (0,0); world crosses its 'l' at index 2.
	pw := placedword.New("world", word.Position{X: 2, Y: -3}, word.Down)
	if err := c.Add(pw); err != nil {
		t.Fatalf("Add: %v", err)
	}
	c.Remove(pw.Value)

	after := c.Words()
	if len(before) != len(after) {
		t.Fatalf("word count changed: %d vs %d", len(before), len(after))
	}
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("word %d differs: %+v vs %+v", i, before[i], after[i])
		}
	}
}

func TestNormalizationInvariant(t *testing.T) {
	c := New(DefaultPolicy())
	mustAdd(t, c, "hello", 0, 3, word.Right)
	// hello is now at (0,0); world reaches above it, so the layout must shift.
	mustAdd(t, c, "world", 2, -3, word.Down)

	var minX, minY int16 = 1<<15 - 1, 1<<15 - 1
	for _, pw := range c.Words() {
		if pw.Position.X < minX {
			minX = pw.Position.X
		}
		if pw.Position.Y < minY {
			minY = pw.Position.Y
		}
	}
	if minX != 0 || minY != 0 {
		t.Fatalf("normalization invariant violated: minX=%d minY=%d", minX, minY)
	}
}

func TestContains(t *testing.T) {
	policy := Policy{SideBySide: true}

	a := New(policy)
	mustAdd(t, a, "hello", 0, 0, word.Right)
	mustAdd(t, a, "local", 2, 0, word.Down)
	mustAdd(t, a, "cat", 2, 2, word.Right)
	mustAdd(t, a, "and", 3, 2, word.Down)
	mustAdd(t, a, "toy", 4, 2, word.Down)

	b := New(policy)
	mustAdd(t, b, "cat", 0, 0, word.Right)
	mustAdd(t, b, "and", 1, 0, word.Down)
	mustAdd(t, b, "toy", 2, 0, word.Down)

	c := New(policy)
	mustAdd(t, c, "and", 0, 0, word.Down)
	mustAdd(t, c, "toy", 1, -1, word.Down)

	if !a.Contains(a) {
		t.Error("a.Contains(a) should be true (reflexive)")
	}
	if !a.Contains(b) {
		t.Error("a.Contains(b) should be true")
	}
	if a.Contains(c) {
		t.Error("a.Contains(c) should be false")
	}
}

func TestPlacementsForEmptyLayout(t *testing.T) {
	c := New(DefaultPolicy())
	got := c.PlacementsFor(word.New("hello", nil))
	want := []placedword.PlacedWord{placedword.New("hello", word.Position{}, word.Right)}
	if len(got) != 1 || got[0] != want[0] {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestPlacementsForHatlo(t *testing.T) {
	policy := Policy{SideBySide: true, SideByHead: true, CornerByCorner: true}
	c := New(policy)
	mustAdd(t, c, "hello", 0, 0, word.Right)
	mustAdd(t, c, "local", 2, 0, word.Down)
	mustAdd(t, c, "tac", 0, 2, word.Right)

	got := c.PlacementsFor(word.New("hatlo", nil))
	if len(got) != 7 {
		t.Fatalf("got %d placements, want 7: %+v", len(got), got)
	}
}

func TestSizeAndRaster(t *testing.T) {
	c := New(DefaultPolicy())
	mustAdd(t, c, "hello", 0, 0, word.Right)
	// world crosses hello's 'o' with its own 'o'; after normalization hello
	// sits on row 1 and world runs down column 4 from row 0.
	mustAdd(t, c, "world", 4, -1, word.Down)

	w, h := c.Size()
	if w != 5 || h != 5 {
		t.Fatalf("Size() = (%d, %d), want (5, 5)", w, h)
	}

	raster := c.Raster()
	if len(raster) != int(h) || len(raster[0]) != int(w) {
		t.Fatalf("raster dims = %dx%d, want %dx%d", len(raster[0]), len(raster), w, h)
	}
	if raster[1][0] != 'h' || raster[1][4] != 'o' || raster[4][4] != 'd' {
		t.Fatalf("unexpected raster contents: %q", raster)
	}
}

func TestBatchEqualsSequential(t *testing.T) {
	policy := DefaultPolicy()
	steps := []placedword.PlacedWord{
		placedword.New("hello", word.Position{X: 0, Y: 0}, word.Right),
		placedword.New("world", word.Position{X: 2, Y: -3}, word.Down),
	}

	sequential := New(policy)
	for _, pw := range steps {
		if err := sequential.Add(pw); err != nil {
			t.Fatalf("sequential add: %v", err)
		}
	}

	batch := New(policy)
	if err := batch.AddBatch(steps); err != nil {
		t.Fatalf("batch add: %v", err)
	}

	seqWords, batchWords := sequential.Words(), batch.Words()
	if len(seqWords) != len(batchWords) {
		t.Fatalf("word counts differ: %d vs %d", len(seqWords), len(batchWords))
	}
	for i := range seqWords {
		if seqWords[i] != batchWords[i] {
			t.Fatalf("word %d differs: %+v vs %+v", i, seqWords[i], batchWords[i])
		}
	}
}
