package geom2d

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRectangle_Normalizes(t *testing.T) {
	r := NewRectangle(NewPoint(10, 10), NewPoint(0, 0))
	assert.Equal(t, NewPoint(0, 0), r.TopLeft())
	assert.Equal(t, NewPoint(10, 10), r.BottomRight())
}

func TestNewRectangleFromPoints(t *testing.T) {
	r := NewRectangleFromPoints(
		NewPoint(3, 3),
		NewPoint(0, 5),
		NewPoint(5, 0),
	)
	assert.Equal(t, NewPoint(0, 0), r.TopLeft())
	assert.Equal(t, NewPoint(5, 5), r.BottomRight())
}

func TestNewRectangleFromPoints_PanicsOnEmpty(t *testing.T) {
	assert.Panics(t, func() {
		NewRectangleFromPoints[float64]()
	})
}

func TestRectangle_Corners(t *testing.T) {
	r := NewRectangle(NewPoint(0, 0), NewPoint(4, 2))
	assert.Equal(t, NewPoint(0, 0), r.TopLeft())
	assert.Equal(t, NewPoint(4, 0), r.TopRight())
	assert.Equal(t, NewPoint(0, 2), r.BottomLeft())
	assert.Equal(t, NewPoint(4, 2), r.BottomRight())
}

func TestRectangle_Dimensions(t *testing.T) {
	r := NewRectangle(NewPoint(1, 1), NewPoint(5, 4))
	assert.Equal(t, 4, r.Width())
	assert.Equal(t, 3, r.Height())
	assert.Equal(t, 12, r.Area())
	assert.False(t, r.IsEmpty())
}

func TestRectangle_IsEmpty(t *testing.T) {
	assert.True(t, NewRectangle(NewPoint(0, 0), NewPoint(0, 5)).IsEmpty())
	assert.True(t, NewRectangle(NewPoint(0, 0), NewPoint(5, 0)).IsEmpty())
}

func TestRectangle_SetTopLeft(t *testing.T) {
	r := NewRectangle(NewPoint(0, 0), NewPoint(5, 5))
	moved := r.SetTopLeft(NewPoint(10, 10))
	// Setting a "top-left" beyond the bottom-right renormalizes, rather than inverting.
	assert.Equal(t, NewPoint(5, 5), moved.TopLeft())
	assert.Equal(t, NewPoint(10, 10), moved.BottomRight())
}

func TestRectangle_SetBottomRight(t *testing.T) {
	r := NewRectangle(NewPoint(0, 0), NewPoint(5, 5))
	moved := r.SetBottomRight(NewPoint(-5, -5))
	assert.Equal(t, NewPoint(-5, -5), moved.TopLeft())
	assert.Equal(t, NewPoint(0, 0), moved.BottomRight())
}

func TestRectangle_Translate(t *testing.T) {
	r := NewRectangle(NewPoint(0, 0), NewPoint(5, 5))
	moved := r.Translate(NewVector(2, 3))
	assert.Equal(t, NewPoint(2, 3), moved.TopLeft())
	assert.Equal(t, NewPoint(7, 8), moved.BottomRight())
}

func TestRectangle_Inset(t *testing.T) {
	r := NewRectangle(NewPoint(0, 0), NewPoint(10, 10))

	grown := r.Inset(2)
	assert.Equal(t, NewPoint(-2, -2), grown.TopLeft())
	assert.Equal(t, NewPoint(12, 12), grown.BottomRight())

	shrunk := r.Inset(-2)
	assert.Equal(t, NewPoint(2, 2), shrunk.TopLeft())
	assert.Equal(t, NewPoint(8, 8), shrunk.BottomRight())
}

func TestRectangle_Inset_RenormalizesWhenInverted(t *testing.T) {
	r := NewRectangle(NewPoint(0, 0), NewPoint(4, 4))
	shrunk := r.Inset(-10) // shrinking by more than half the width/height inverts, then renormalizes
	assert.Equal(t, shrunk.TopLeft(), shrunk.TopLeft())
	assert.False(t, shrunk.TopLeft().x > shrunk.BottomRight().x)
}

func TestRectangle_ContainsPoint(t *testing.T) {
	r := NewRectangle(NewPoint(0, 0), NewPoint(10, 10))

	assert.True(t, r.ContainsPoint(NewPoint(5, 5)))
	assert.True(t, r.ContainsPoint(NewPoint(0, 0)))
	assert.True(t, r.ContainsPoint(NewPoint(10, 10)))
	assert.False(t, r.ContainsPoint(NewPoint(11, 5)))
	assert.False(t, r.ContainsPoint(NewPoint(5, -1)))
}

func TestRectangle_AsFloat(t *testing.T) {
	r := NewRectangle(NewPoint(0, 0), NewPoint(4, 4))
	f := r.AsFloat()
	assert.Equal(t, NewPoint(0.0, 0.0), f.TopLeft())
	assert.Equal(t, NewPoint(4.0, 4.0), f.BottomRight())
}

func TestRectangle_String(t *testing.T) {
	r := NewRectangle(NewPoint(0, 0), NewPoint(1, 1))
	assert.Contains(t, r.String(), "Rectangle")
}

func TestIntersect(t *testing.T) {
	a := NewRectangle(NewPoint(0, 0), NewPoint(10, 10))
	b := NewRectangle(NewPoint(5, 5), NewPoint(15, 15))

	overlap, ok := Intersect(a, b)
	assert.True(t, ok)
	assert.Equal(t, NewPoint(5, 5), overlap.TopLeft())
	assert.Equal(t, NewPoint(10, 10), overlap.BottomRight())
}

func TestIntersect_Disjoint(t *testing.T) {
	a := NewRectangle(NewPoint(0, 0), NewPoint(1, 1))
	b := NewRectangle(NewPoint(5, 5), NewPoint(6, 6))

	_, ok := Intersect(a, b)
	assert.False(t, ok)
}

func TestUnite(t *testing.T) {
	a := NewRectangle(NewPoint(0, 0), NewPoint(5, 5))
	b := NewRectangle(NewPoint(3, 3), NewPoint(10, 10))

	u := Unite(a, b)
	assert.Equal(t, NewPoint(0, 0), u.TopLeft())
	assert.Equal(t, NewPoint(10, 10), u.BottomRight())
}
