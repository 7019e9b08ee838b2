// File triangle.go defines Triangle, whose constructor always reorders its three vertices into
// counterclockwise winding so that every later computation (area, circumcenter) can assume a
// fixed, known orientation instead of re-deriving it.

package geom2d

import (
	"fmt"

	"github.com/anvilgeo/geom2d/numeric"
	"github.com/anvilgeo/geom2d/options"
	"github.com/anvilgeo/geom2d/types"
)

// Triangle represents a triangle as three vertices, always stored in counterclockwise order.
type Triangle[T types.SignedNumber] struct {
	vertices [3]Point[T]
}

// NewTriangle creates a Triangle from three vertices, reordering them into counterclockwise
// winding if necessary.
func NewTriangle[T types.SignedNumber](a, b, c Point[T]) Triangle[T] {
	if Orientation(a, b, c) == PointsClockwise {
		a, b, c = a, c, b
	}
	return Triangle[T]{vertices: [3]Point[T]{a, b, c}}
}

// Vertex returns the triangle's vertex at idx (0, 1, or 2).
func (t Triangle[T]) Vertex(idx int) Point[T] { return t.vertices[idx] }

// HasVertex reports whether pt is one of t's three vertices.
func (t Triangle[T]) HasVertex(pt Point[T]) bool {
	return t.vertices[0].Eq(pt) || t.vertices[1].Eq(pt) || t.vertices[2].Eq(pt)
}

// Edge returns the line segment from vertex idx to vertex (idx+1)%3.
func (t Triangle[T]) Edge(idx int) Line[T] {
	return NewLineSegment(t.vertices[idx], t.vertices[(idx+1)%3])
}

// IsPoint reports whether all three vertices of t coincide.
func (t Triangle[T]) IsPoint() bool {
	return t.vertices[0].Eq(t.vertices[1]) && t.vertices[0].Eq(t.vertices[2])
}

// IsLine reports whether t's three vertices are collinear (but not all coincident).
func (t Triangle[T]) IsLine() bool {
	if t.IsPoint() {
		return false
	}
	return Orientation(t.vertices[0], t.vertices[1], t.vertices[2]) == PointsCollinear
}

// IsDegenerate reports whether t has collapsed into a point or a line, and so has no well-defined
// interior or circumcircle.
func (t Triangle[T]) IsDegenerate() bool {
	return t.IsPoint() || t.IsLine()
}

// Area returns the triangle's area. Degenerate triangles have area 0.
func (t Triangle[T]) Area() float64 {
	if t.IsDegenerate() {
		return 0
	}
	v := t.vertices[1].Sub(t.vertices[0])
	w := t.vertices[2].Sub(t.vertices[0])
	cross := float64(v.CrossProduct(w))
	return numeric.Abs(cross) / 2
}

// Circumcenter returns the point equidistant from all three vertices of t, and true, if t is
// non-degenerate. A degenerate triangle (collapsed to a point or a line) has no circumcenter,
// and the second result is false.
//
// The circumcenter is found as the intersection of two of the triangle's three perpendicular
// bisectors: the line through each edge's midpoint, perpendicular to that edge.
func (t Triangle[T]) Circumcenter(opts ...options.GeometryOptionsFunc) (Point[T], bool) {
	if t.IsDegenerate() {
		return Point[T]{}, false
	}

	side01 := NewLineSegment(t.vertices[0], t.vertices[1])
	midpoint01 := midpoint(t.vertices[0], t.vertices[1])
	bisector01 := NewInfiniteLine(midpoint01, side01.direction.PerpCCW())

	side12 := NewLineSegment(t.vertices[1], t.vertices[2])
	midpoint12 := midpoint(t.vertices[1], t.vertices[2])
	bisector12 := NewInfiniteLine(midpoint12, side12.direction.PerpCCW())

	result := IntersectLines(bisector01, bisector12, opts...)
	if result.Kind != IntersectionPoint {
		return Point[T]{}, false
	}
	return result.Point, true
}

// midpoint returns the point halfway between a and b. Integer coordinate types round toward
// zero; callers needing exact results should triangulate over a Float type, as Triangulate does.
func midpoint[T types.SignedNumber](a, b Point[T]) Point[T] {
	return Point[T]{x: (a.x + b.x) / 2, y: (a.y + b.y) / 2}
}

// Circumcircle returns the circle passing through all three vertices of t, and true, if t is
// non-degenerate. A point triangle yields a zero-radius circle at its vertex, also with true; a
// line triangle yields false.
func (t Triangle[T]) Circumcircle(opts ...options.GeometryOptionsFunc) (Circle[T], bool) {
	if t.IsPoint() {
		return NewCircle(t.vertices[0], T(0)), true
	}
	center, ok := t.Circumcenter(opts...)
	if !ok {
		return Circle[T]{}, false
	}
	radius := center.DistanceToPoint(t.vertices[0])
	return NewCircle(center, T(radius)), true
}

// String returns a string representation of the triangle.
func (t Triangle[T]) String() string {
	return fmt.Sprintf("Triangle[%v, %v, %v]", t.vertices[0], t.vertices[1], t.vertices[2])
}
