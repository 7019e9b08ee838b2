// File intersectline.go implements IntersectLines, which classifies the intersection of two
// lines into one of four outcomes: no intersection, a single Point, a coincident overlapping
// Line (when the two lines lie on the same infinite line and overlap over a sub-range), or a
// coincident Line extending to infinity in one or both directions. The algorithm follows
// http://geomalgorithms.com/a05-_intersect-1.html for the skew case, matching the priority order
// this package's reference traces to: degenerate (either line is a point), coincident,
// parallel-but-not-coincident, skew.

package geom2d

import (
	"github.com/anvilgeo/geom2d/numeric"
	"github.com/anvilgeo/geom2d/options"
	"github.com/anvilgeo/geom2d/types"
)

// IntersectionKind identifies the shape of the result of IntersectLines.
type IntersectionKind uint8

const (
	// IntersectionNone indicates the lines do not intersect.
	IntersectionNone = IntersectionKind(iota)
	// IntersectionPoint indicates the lines meet at a single point.
	IntersectionPoint
	// IntersectionLine indicates the lines are coincident and overlap along a Line (which may
	// itself be a Segment, Ray, or Infinite line depending on how much the inputs overlap).
	IntersectionLine
)

// LineIntersection is the result of IntersectLines.
type LineIntersection[T types.SignedNumber] struct {
	Kind  IntersectionKind
	Point Point[T]
	Line  Line[T]
}

// IntersectLines computes the intersection of lines a and b.
func IntersectLines[T types.SignedNumber](a, b Line[T], opts ...options.GeometryOptionsFunc) LineIntersection[T] {
	geoOpts := options.ApplyGeometryOptions(options.DefaultGeometryOptions(), opts...)
	epsilon := geoOpts.Epsilon

	if a.IsPoint(opts...) || b.IsPoint(opts...) {
		return intersectDegenerateLines(a, b, opts...)
	}

	if coincidentLines(a, b, epsilon) {
		return intersectCoincidentLines(a, b, epsilon)
	}
	if parallelVectors(a.direction, b.direction, epsilon) {
		return LineIntersection[T]{Kind: IntersectionNone}
	}

	return intersectSkewLines(a, b, epsilon)
}

// intersectPointLine handles the reduced problem of intersecting a single point with a line.
func intersectPointLine[T types.SignedNumber](pt Point[T], l Line[T], opts ...options.GeometryOptionsFunc) LineIntersection[T] {
	if l.IsPointOnLine(pt, opts...) {
		return LineIntersection[T]{Kind: IntersectionPoint, Point: pt}
	}
	return LineIntersection[T]{Kind: IntersectionNone}
}

// intersectDegenerateLines handles the case where at least one of a, b has collapsed to a point.
func intersectDegenerateLines[T types.SignedNumber](a, b Line[T], opts ...options.GeometryOptionsFunc) LineIntersection[T] {
	if a.IsPoint(opts...) {
		return intersectPointLine(a.anchor, b, opts...)
	}
	return intersectPointLine(b.anchor, a, opts...)
}

// intersectCoincidentLines handles two lines known to lie on the same infinite line, by
// expressing both as interpolation-factor intervals relative to a, intersecting those
// intervals, and mapping the overlap back to a concrete Line (or Point, if the overlap is a
// single value).
func intersectCoincidentLines[T types.SignedNumber](a, b Line[T], epsilon float64) LineIntersection[T] {
	_, aHasStart := a.StartPoint()
	aStartBound := NegInfinityBound[float64]()
	if aHasStart {
		aStartBound = FiniteBound(0.0)
	}
	_, aHasEnd := a.EndPoint()
	aEndBound := PosInfinityBound[float64]()
	if aHasEnd {
		aEndBound = FiniteBound(1.0)
	}
	aInterval := NewInterval(aStartBound, aEndBound, epsilon)

	haveSameDir := sameDirectionVectors(b.direction, a.direction, epsilon)

	bStartBound := PosInfinityBound[float64]()
	bEndBound := NegInfinityBound[float64]()
	if haveSameDir {
		bStartBound = NegInfinityBound[float64]()
		bEndBound = PosInfinityBound[float64]()
	}

	if startPt, ok := b.StartPoint(); ok {
		if factor, onLine := a.LerpFactor(startPt, options.WithEpsilon(epsilon)); onLine {
			bStartBound = FiniteBound(factor)
		}
	}
	if endPt, ok := b.EndPoint(); ok {
		if factor, onLine := a.LerpFactor(endPt, options.WithEpsilon(epsilon)); onLine {
			bEndBound = FiniteBound(factor)
		}
	}
	if boundLess(bEndBound, bStartBound, epsilon) {
		bStartBound, bEndBound = bEndBound, bStartBound
	}
	bInterval := NewInterval(bStartBound, bEndBound, epsilon)

	overlap, ok := IntersectIntervals(aInterval, bInterval)
	if !ok {
		return LineIntersection[T]{Kind: IntersectionNone}
	}

	return makeCoincidentIntersection(overlap, a, epsilon)
}

// makeCoincidentIntersection builds the concrete result (Point or Line) for an overlap interval
// of interpolation factors relative to refLine.
func makeCoincidentIntersection[T types.SignedNumber](overlap Interval[float64], refLine Line[T], epsilon float64) LineIntersection[T] {
	if overlap.IsEmpty() {
		return LineIntersection[T]{Kind: IntersectionNone}
	}

	startInf := overlap.Start().Kind() == BoundNegInfinity
	endInf := overlap.End().Kind() == BoundPosInfinity

	switch {
	case !startInf && !endInf:
		startVal, endVal := overlap.Start().Value(), overlap.End().Value()
		if numeric.FloatEquals(startVal, endVal, epsilon) {
			p := refLine.Lerp(startVal)
			return LineIntersection[T]{Kind: IntersectionPoint, Point: pointFromFloat[T](p)}
		}
		startPt := pointFromFloat[T](refLine.Lerp(startVal))
		endPt := pointFromFloat[T](refLine.Lerp(endVal))
		return LineIntersection[T]{Kind: IntersectionLine, Line: NewLineSegment(startPt, endPt)}

	case startInf && !endInf:
		endPt := pointFromFloat[T](refLine.Lerp(overlap.End().Value()))
		return LineIntersection[T]{Kind: IntersectionLine, Line: NewLineRay(endPt, refLine.direction.Negate())}

	case !startInf && endInf:
		startPt := pointFromFloat[T](refLine.Lerp(overlap.Start().Value()))
		return LineIntersection[T]{Kind: IntersectionLine, Line: NewLineRay(startPt, refLine.direction)}

	default:
		return LineIntersection[T]{Kind: IntersectionLine, Line: NewInfiniteLine(refLine.anchor, refLine.direction)}
	}
}

// calcLerpFactorsOfIntersectionPoint computes, for two non-parallel lines, the interpolation
// factor of their intersection point relative to each line.
// See http://geomalgorithms.com/a05-_intersect-1.html.
func calcLerpFactorsOfIntersectionPoint[T types.SignedNumber](a, b Line[T]) (factorA, factorB float64) {
	u := a.direction.AsFloat()
	v := b.direction.AsFloat()
	w := a.anchor.AsFloat().Sub(b.anchor.AsFloat())

	denom := v.CrossProduct(u)
	factorA = (v.dy*w.dx - v.dx*w.dy) / denom
	factorB = u.CrossProduct(w) / u.CrossProduct(v)
	return factorA, factorB
}

// isInterpolatedPointOnLine reports whether lerpFactor, relative to l, falls within l's domain.
func isInterpolatedPointOnLine[T types.SignedNumber](lerpFactor float64, l Line[T], epsilon float64) bool {
	if _, hasStart := l.StartPoint(); hasStart && lerpFactor < -epsilon {
		return false
	}
	if _, hasEnd := l.EndPoint(); hasEnd && lerpFactor > 1+epsilon {
		return false
	}
	return true
}

// intersectSkewLines handles two non-parallel lines via the standard interpolation-factor
// solution, checking that the intersection point falls within each line's own domain.
func intersectSkewLines[T types.SignedNumber](a, b Line[T], epsilon float64) LineIntersection[T] {
	factorA, factorB := calcLerpFactorsOfIntersectionPoint(a, b)

	if isInterpolatedPointOnLine(factorA, a, epsilon) && isInterpolatedPointOnLine(factorB, b, epsilon) {
		p := a.Lerp(factorA)
		return LineIntersection[T]{Kind: IntersectionPoint, Point: pointFromFloat[T](p)}
	}
	return LineIntersection[T]{Kind: IntersectionNone}
}

// pointFromFloat converts a Point[float64] result back to Point[T].
func pointFromFloat[T types.SignedNumber](p Point[float64]) Point[T] {
	return Point[T]{x: T(p.x), y: T(p.y)}
}
