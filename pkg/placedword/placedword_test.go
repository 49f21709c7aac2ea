package placedword

import (
	"reflect"
	"testing"

	"github.com/Hayk10002/crossword-generator/pkg/word"
)

func TestIntersectionIndices(t *testing.T) {
	w1 := New("hello", word.Position{X: 0, Y: 1}, word.Right)
	w2 := New("world", word.Position{X: 4, Y: 0}, word.Down)

	pIdx, oIdx, ok := w1.IntersectionIndices(w2)
	if !ok || pIdx != 4 || oIdx != 1 {
		t.Fatalf("got (%d, %d, %v), want (4, 1, true)", pIdx, oIdx, ok)
	}
}

func TestIntersectionIndicesSameDirection(t *testing.T) {
	w1 := New("hello", word.Position{X: 0, Y: 0}, word.Right)
	w2 := New("world", word.Position{X: 0, Y: 1}, word.Right)

	if _, _, ok := w1.IntersectionIndices(w2); ok {
		t.Fatalf("expected no intersection indices for parallel words")
	}
}

func TestPlacementsForHelloWorld(t *testing.T) {
	hello := New("hello", word.Position{X: 0, Y: 3}, word.Right)
	got := hello.PlacementsFor(word.New("world", nil))

	want := []PlacedWord{
		New("world", word.Position{X: 2, Y: 0}, word.Down),
		New("world", word.Position{X: 3, Y: 0}, word.Down),
		New("world", word.Position{X: 4, Y: 2}, word.Down),
	}
	Sort(want)

	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestPlacementsForNoCommonChar(t *testing.T) {
	a := New("xyz", word.Position{X: 0, Y: 0}, word.Right)
	got := a.PlacementsFor(word.New("qwr", nil))
	if len(got) != 0 {
		t.Fatalf("expected no placements, got %+v", got)
	}
}

func TestPlacementsForLockedToSameDirection(t *testing.T) {
	right := word.Right
	a := New("hello", word.Position{X: 0, Y: 0}, word.Right)
	got := a.PlacementsFor(word.New("world", &right))
	if len(got) != 0 {
		t.Fatalf("expected no placements when locked to same direction, got %+v", got)
	}
}

func TestDirectionOpposite(t *testing.T) {
	if word.Right.Opposite().Opposite() != word.Right {
		t.Fatalf("opposite is not involutive for Right")
	}
	if word.Down.Opposite().Opposite() != word.Down {
		t.Fatalf("opposite is not involutive for Down")
	}
}
