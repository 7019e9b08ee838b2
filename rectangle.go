// File rectangle.go defines the Rectangle type: an axis-aligned rectangle that keeps its
// corners normalized (top-left has the smaller x and y, bottom-right the larger) through every
// constructor and mutator, so a Rectangle can never be observed in an inverted state.

package geom2d

import (
	"fmt"

	"github.com/anvilgeo/geom2d/types"
)

// Rectangle represents a 2D axis-aligned rectangle, stored as its top-left and bottom-right
// corners. Every constructor and mutator normalizes the corners, so topLeft.x <= bottomRight.x
// and topLeft.y <= bottomRight.y always hold.
type Rectangle[T types.SignedNumber] struct {
	topLeft     Point[T]
	bottomRight Point[T]
}

// NewRectangle constructs a Rectangle from any two opposite corners, normalizing them so the
// result's TopLeft holds the smaller x and y and its BottomRight the larger.
func NewRectangle[T types.SignedNumber](a, b Point[T]) Rectangle[T] {
	left, right := a.x, b.x
	if left > right {
		left, right = right, left
	}
	top, bottom := a.y, b.y
	if top > bottom {
		top, bottom = bottom, top
	}
	return Rectangle[T]{
		topLeft:     Point[T]{x: left, y: top},
		bottomRight: Point[T]{x: right, y: bottom},
	}
}

// NewRectangleFromPoints constructs the smallest Rectangle enclosing all of the given points.
// Panics if points is empty.
func NewRectangleFromPoints[T types.SignedNumber](points ...Point[T]) Rectangle[T] {
	if len(points) == 0 {
		panic("geom2d: NewRectangleFromPoints requires at least one point")
	}
	minX, minY := points[0].x, points[0].y
	maxX, maxY := points[0].x, points[0].y
	for _, p := range points[1:] {
		minX = min(minX, p.x)
		minY = min(minY, p.y)
		maxX = max(maxX, p.x)
		maxY = max(maxY, p.y)
	}
	return Rectangle[T]{
		topLeft:     Point[T]{x: minX, y: minY},
		bottomRight: Point[T]{x: maxX, y: maxY},
	}
}

// TopLeft returns the rectangle's top-left corner.
func (r Rectangle[T]) TopLeft() Point[T] { return r.topLeft }

// BottomRight returns the rectangle's bottom-right corner.
func (r Rectangle[T]) BottomRight() Point[T] { return r.bottomRight }

// TopRight returns the rectangle's top-right corner.
func (r Rectangle[T]) TopRight() Point[T] {
	return Point[T]{x: r.bottomRight.x, y: r.topLeft.y}
}

// BottomLeft returns the rectangle's bottom-left corner.
func (r Rectangle[T]) BottomLeft() Point[T] {
	return Point[T]{x: r.topLeft.x, y: r.bottomRight.y}
}

// Width returns the rectangle's width.
func (r Rectangle[T]) Width() T { return r.bottomRight.x - r.topLeft.x }

// Height returns the rectangle's height.
func (r Rectangle[T]) Height() T { return r.bottomRight.y - r.topLeft.y }

// Area returns the rectangle's area.
func (r Rectangle[T]) Area() T { return r.Width() * r.Height() }

// IsEmpty reports whether the rectangle has zero width or zero height.
func (r Rectangle[T]) IsEmpty() bool { return r.Width() == 0 || r.Height() == 0 }

// SetTopLeft returns a copy of r with its top-left corner replaced by p, renormalized.
func (r Rectangle[T]) SetTopLeft(p Point[T]) Rectangle[T] {
	return NewRectangle(p, r.bottomRight)
}

// SetBottomRight returns a copy of r with its bottom-right corner replaced by p, renormalized.
func (r Rectangle[T]) SetBottomRight(p Point[T]) Rectangle[T] {
	return NewRectangle(r.topLeft, p)
}

// Translate returns a copy of r shifted by v. Translation never changes orientation, so no
// renormalization is required.
func (r Rectangle[T]) Translate(v Vector[T]) Rectangle[T] {
	return Rectangle[T]{topLeft: r.topLeft.Translate(v), bottomRight: r.bottomRight.Translate(v)}
}

// Inset returns a copy of r grown (positive amount) or shrunk (negative amount) by amount on
// every side, renormalized in case shrinking inverts the rectangle.
func (r Rectangle[T]) Inset(amount T) Rectangle[T] {
	return NewRectangle(
		Point[T]{x: r.topLeft.x - amount, y: r.topLeft.y - amount},
		Point[T]{x: r.bottomRight.x + amount, y: r.bottomRight.y + amount},
	)
}

// ContainsPoint reports whether p lies within or on the boundary of r (a closed test).
func (r Rectangle[T]) ContainsPoint(p Point[T]) bool {
	return p.x >= r.topLeft.x && p.x <= r.bottomRight.x &&
		p.y >= r.topLeft.y && p.y <= r.bottomRight.y
}

// AsFloat converts the rectangle's corners to float64.
func (r Rectangle[T]) AsFloat() Rectangle[float64] {
	return Rectangle[float64]{topLeft: r.topLeft.AsFloat(), bottomRight: r.bottomRight.AsFloat()}
}

// String returns a string representation of the rectangle.
func (r Rectangle[T]) String() string {
	return fmt.Sprintf("Rectangle[topLeft=%v, bottomRight=%v]", r.topLeft, r.bottomRight)
}

// Intersect returns the rectangle formed by the overlap of a and b, and false if they do not
// overlap. Touching edges (a zero-width or zero-height overlap) count as intersecting, matching
// the closed containment test used elsewhere in this package.
func Intersect[T types.SignedNumber](a, b Rectangle[T]) (Rectangle[T], bool) {
	left := max(a.topLeft.x, b.topLeft.x)
	top := max(a.topLeft.y, b.topLeft.y)
	right := min(a.bottomRight.x, b.bottomRight.x)
	bottom := min(a.bottomRight.y, b.bottomRight.y)
	if left > right || top > bottom {
		return Rectangle[T]{}, false
	}
	return Rectangle[T]{
		topLeft:     Point[T]{x: left, y: top},
		bottomRight: Point[T]{x: right, y: bottom},
	}, true
}

// Unite returns the smallest rectangle enclosing both a and b.
func Unite[T types.SignedNumber](a, b Rectangle[T]) Rectangle[T] {
	return NewRectangleFromPoints(a.topLeft, a.bottomRight, b.topLeft, b.bottomRight)
}
