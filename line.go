// File line.go defines Line, a single tagged-union type covering the three line variants this
// package needs: Segment (bounded both ends), Ray (bounded at the start only), and Infinite
// (unbounded both ends). Earlier designs split these into a class hierarchy (a common base with
// per-variant overrides, mixing static and dynamic polymorphism); collapsing them into one record
// with a LineKind tag removes that duplication; the shared anchor+direction representation and
// the domain Interval (see interval.go) already capture everything a variant-specific type would
// have added.

package geom2d

import (
	"fmt"

	"github.com/anvilgeo/geom2d/numeric"
	"github.com/anvilgeo/geom2d/options"
	"github.com/anvilgeo/geom2d/types"
)

// LineKind identifies which of the three line variants a Line represents.
type LineKind uint8

const (
	// LineSegment is bounded at both ends; its domain is the closed interval [0, 1].
	LineSegment = LineKind(iota)
	// LineRay is bounded at its start only; its domain is [0, +Inf).
	LineRay
	// LineInfinite is unbounded at both ends; its domain is (-Inf, +Inf).
	LineInfinite
)

// String returns the name of the line kind.
func (k LineKind) String() string {
	switch k {
	case LineSegment:
		return "Segment"
	case LineRay:
		return "Ray"
	case LineInfinite:
		return "Infinite"
	default:
		return fmt.Sprintf("LineKind(%d)", uint8(k))
	}
}

// Line represents a Segment, Ray, or Infinite line, anchored at a point and extending along a
// direction vector. For a Segment, direction points from the start to the end point and its
// length is meaningful (the end point is anchor + direction). For a Ray, direction gives the
// ray's heading; only its direction matters, not its length. For an Infinite line, direction
// likewise only gives heading.
type Line[T types.SignedNumber] struct {
	kind      LineKind
	anchor    Point[T]
	direction Vector[T]
}

// NewLineSegment creates a Line of kind LineSegment running from start to end.
func NewLineSegment[T types.SignedNumber](start, end Point[T]) Line[T] {
	return Line[T]{kind: LineSegment, anchor: start, direction: end.Sub(start)}
}

// NewLineRay creates a Line of kind LineRay starting at start and heading along direction.
func NewLineRay[T types.SignedNumber](start Point[T], direction Vector[T]) Line[T] {
	return Line[T]{kind: LineRay, anchor: start, direction: direction}
}

// NewInfiniteLine creates a Line of kind LineInfinite passing through anchor with the given
// direction.
func NewInfiniteLine[T types.SignedNumber](anchor Point[T], direction Vector[T]) Line[T] {
	return Line[T]{kind: LineInfinite, anchor: anchor, direction: direction}
}

// Kind returns which of Segment, Ray, or Infinite l is.
func (l Line[T]) Kind() LineKind { return l.kind }

// Anchor returns the point that anchors l. For a Segment or Ray, this is the start point.
func (l Line[T]) Anchor() Point[T] { return l.anchor }

// Direction returns l's direction vector.
func (l Line[T]) Direction() Vector[T] { return l.direction }

// IsPoint reports whether l's direction has zero length, collapsing it to a single point.
func (l Line[T]) IsPoint(opts ...options.GeometryOptionsFunc) bool {
	geoOpts := options.ApplyGeometryOptions(options.DefaultGeometryOptions(), opts...)
	lenSq := float64(l.direction.LengthSquared())
	return numeric.FloatEquals(lenSq, 0, geoOpts.Epsilon)
}

// StartPoint returns l's start point and true, for a Segment or Ray. For an Infinite line it
// returns the zero Point and false, since an infinite line has no start.
func (l Line[T]) StartPoint() (Point[T], bool) {
	if l.kind == LineInfinite {
		return Point[T]{}, false
	}
	return l.anchor, true
}

// EndPoint returns l's end point and true, for a Segment only. Rays and Infinite lines have no
// end point.
func (l Line[T]) EndPoint() (Point[T], bool) {
	if l.kind != LineSegment {
		return Point[T]{}, false
	}
	return l.anchor.Translate(l.direction), true
}

// Lerp returns the point on l's underlying infinite line at parameter factor: anchor + factor *
// direction. factor need not lie within l's domain; callers that need to respect the domain
// should consult ParamDomain first.
func (l Line[T]) Lerp(factor float64) Point[float64] {
	af := l.anchor.AsFloat()
	df := l.direction.AsFloat()
	return Point[float64]{x: af.x + factor*df.dx, y: af.y + factor*df.dy}
}

// ParamDomain returns the interval of valid interpolation factors for l: [0,1] for a Segment,
// [0,+Inf) for a Ray, (-Inf,+Inf) for an Infinite line.
func (l Line[T]) ParamDomain(epsilon float64) Interval[float64] {
	switch l.kind {
	case LineSegment:
		return NewInterval(FiniteBound(0.0), FiniteBound(1.0), epsilon)
	case LineRay:
		return NewInterval(FiniteBound(0.0), PosInfinityBound[float64](), epsilon)
	default:
		return NewInterval(NegInfinityBound[float64](), PosInfinityBound[float64](), epsilon)
	}
}

// LerpFactor returns the interpolation factor of pt along l's underlying infinite line, and true
// if pt is collinear with that line. It does not check whether the factor lies within l's domain;
// use IsPointOnLine for that.
//
// If l is a point (zero-length direction), the factor is 0 when pt coincides with the anchor, and
// (0, false) otherwise.
func (l Line[T]) LerpFactor(pt Point[T], opts ...options.GeometryOptionsFunc) (float64, bool) {
	geoOpts := options.ApplyGeometryOptions(options.DefaultGeometryOptions(), opts...)

	if l.IsPoint(opts...) {
		if pt.Eq(l.anchor, opts...) {
			return 0, true
		}
		return 0, false
	}

	v := pt.Sub(l.anchor)
	if !parallelVectors(v, l.direction, geoOpts.Epsilon) {
		return 0, false
	}

	factor := v.Length() / l.direction.Length()
	if !sameDirectionVectors(v, l.direction, geoOpts.Epsilon) {
		factor *= -1
	}
	return factor, true
}

// IsPointOnLine reports whether pt lies on l, respecting l's domain (so a point beyond a
// Segment's end, or behind a Ray's start, is not considered on the line).
func (l Line[T]) IsPointOnLine(pt Point[T], opts ...options.GeometryOptionsFunc) bool {
	geoOpts := options.ApplyGeometryOptions(options.DefaultGeometryOptions(), opts...)
	factor, onInfiniteLine := l.LerpFactor(pt, opts...)
	if !onInfiniteLine {
		return false
	}
	return l.ParamDomain(geoOpts.Epsilon).Contains(factor)
}

// String returns a string representation of the line.
func (l Line[T]) String() string {
	return fmt.Sprintf("Line[kind=%v, anchor=%v, direction=%v]", l.kind, l.anchor, l.direction)
}

// parallelVectors reports whether v and w point along the same or opposite direction.
func parallelVectors[T types.SignedNumber](v, w Vector[T], epsilon float64) bool {
	cross := float64(v.CrossProduct(w))
	return numeric.FloatEquals(cross, 0, epsilon)
}

// sameDirectionVectors reports whether v and w point in the same (rather than opposite)
// direction, given that they are already known to be parallel.
func sameDirectionVectors[T types.SignedNumber](v, w Vector[T], epsilon float64) bool {
	return float64(v.DotProduct(w)) > 0
}

// coincidentLines reports whether a and b lie on the same infinite line: parallel, and a's
// anchor lies on b's underlying infinite line.
func coincidentLines[T types.SignedNumber](a, b Line[T], epsilon float64) bool {
	if !parallelVectors(a.direction, b.direction, epsilon) {
		return false
	}
	_, ok := b.LerpFactor(a.anchor, options.WithEpsilon(epsilon))
	return ok
}
