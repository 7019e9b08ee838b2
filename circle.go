// File circle.go contains the Circle type and its three containment predicates: a closed test
// (ContainsPoint), a strict open test (StrictlyContainsPoint), and a boundary test (OnCircle).
// SatisfiesDelaunayCondition checks its result with StrictlyContainsPoint: the defining property
// of a Delaunay triangle is that no other input point strictly lies inside its circumcircle.

package geom2d

import (
	"fmt"
	"math"

	"github.com/anvilgeo/geom2d/numeric"
	"github.com/anvilgeo/geom2d/options"
	"github.com/anvilgeo/geom2d/types"
)

// Circle represents a circle in 2D space with a center point and a radius.
type Circle[T types.SignedNumber] struct {
	center Point[T]
	radius T
}

// NewCircle creates a new Circle with the given center and radius.
func NewCircle[T types.SignedNumber](center Point[T], radius T) Circle[T] {
	return Circle[T]{center: center, radius: radius}
}

// Center returns the circle's center point.
func (c Circle[T]) Center() Point[T] { return c.center }

// Radius returns the circle's radius.
func (c Circle[T]) Radius() T { return c.radius }

// Area returns the area of the circle, computed as pi * radius^2.
func (c Circle[T]) Area() float64 {
	return math.Pi * float64(c.radius) * float64(c.radius)
}

// Circumference returns the circumference of the circle, computed as 2 * pi * radius.
func (c Circle[T]) Circumference() float64 {
	return 2 * math.Pi * float64(c.radius)
}

// AsFloat converts the circle's center and radius to float64.
func (c Circle[T]) AsFloat() Circle[float64] {
	return Circle[float64]{center: c.center.AsFloat(), radius: float64(c.radius)}
}

// Translate returns a copy of c with its center shifted by v.
func (c Circle[T]) Translate(v Vector[T]) Circle[T] {
	return Circle[T]{center: c.center.Translate(v), radius: c.radius}
}

// ContainsPoint reports whether p lies within or on the boundary of c (a closed test):
// distance(p, center) <= radius.
func (c Circle[T]) ContainsPoint(p Point[T], opts ...options.GeometryOptionsFunc) bool {
	geoOpts := options.ApplyGeometryOptions(options.DefaultGeometryOptions(), opts...)
	distSq := float64(p.DistanceSquaredToPoint(c.center))
	radiusSq := float64(c.radius) * float64(c.radius)
	return numeric.FloatLessThanOrEqualTo(distSq, radiusSq, geoOpts.Epsilon)
}

// StrictlyContainsPoint reports whether p lies strictly inside c (an open test):
// distance(p, center) < radius. This is the predicate the Delaunay condition is defined in terms
// of: a triangulation is Delaunay exactly when no input point strictly lies inside any of its
// triangles' circumcircles.
func (c Circle[T]) StrictlyContainsPoint(p Point[T], opts ...options.GeometryOptionsFunc) bool {
	geoOpts := options.ApplyGeometryOptions(options.DefaultGeometryOptions(), opts...)
	distSq := float64(p.DistanceSquaredToPoint(c.center))
	radiusSq := float64(c.radius) * float64(c.radius)
	return numeric.FloatLessThan(distSq, radiusSq, geoOpts.Epsilon)
}

// OnCircle reports whether p lies exactly on the boundary of c: distance(p, center) == radius.
func (c Circle[T]) OnCircle(p Point[T], opts ...options.GeometryOptionsFunc) bool {
	geoOpts := options.ApplyGeometryOptions(options.DefaultGeometryOptions(), opts...)
	distSq := float64(p.DistanceSquaredToPoint(c.center))
	radiusSq := float64(c.radius) * float64(c.radius)
	return numeric.FloatEquals(distSq, radiusSq, geoOpts.Epsilon)
}

// String returns a string representation of the circle.
func (c Circle[T]) String() string {
	return fmt.Sprintf("Circle[center=%v, radius=%v]", c.center, c.radius)
}
