// File polygon.go defines Polygon, an ordered vertex list forming a closed path (the edge from
// the last vertex back to the first is implicit), and the two operations the rest of this
// package needs from it: intersecting two convex polygons (O'Rourke's chase,
// https://www.cs.jhu.edu/~misha/Spring16/ORourke82.pdf) and cutting a convex polygon by an
// infinite line. Convexity is a precondition these two operations assume, not one Polygon
// enforces by construction; IsConvex is provided for callers that want to check first.

package geom2d

import (
	"fmt"
	"slices"

	"github.com/anvilgeo/geom2d/numeric"
	"github.com/anvilgeo/geom2d/options"
	"github.com/anvilgeo/geom2d/types"
)

// Polygon represents an ordered sequence of vertices forming a closed path. The edge from the
// last vertex back to the first is implicit and not stored.
type Polygon[T types.SignedNumber] struct {
	vertices []Point[T]
}

// NewPolygon creates a Polygon from vertices, in the order given.
func NewPolygon[T types.SignedNumber](vertices ...Point[T]) Polygon[T] {
	v := make([]Point[T], len(vertices))
	copy(v, vertices)
	return Polygon[T]{vertices: v}
}

// Vertices returns a copy of p's vertices, in order.
func (p Polygon[T]) Vertices() []Point[T] { return slices.Clone(p.vertices) }

// NumVertices returns the number of vertices in p.
func (p Polygon[T]) NumVertices() int { return len(p.vertices) }

// Vertex returns p's vertex at idx.
func (p Polygon[T]) Vertex(idx int) Point[T] { return p.vertices[idx] }

// IsEmpty reports whether p has no vertices.
func (p Polygon[T]) IsEmpty() bool { return len(p.vertices) == 0 }

// Edge returns the line segment from vertex idx to vertex (idx+1) mod NumVertices, i.e. the
// implicit closing edge is Edge(NumVertices-1).
func (p Polygon[T]) Edge(idx int) Line[T] {
	n := len(p.vertices)
	return NewLineSegment(p.vertices[idx], p.vertices[(idx+1)%n])
}

// IsConvex reports whether p, assumed simple (non-self-intersecting), is convex: every triple of
// consecutive vertices turns the same way (or is collinear). A polygon with fewer than three
// vertices is trivially convex.
func (p Polygon[T]) IsConvex() bool {
	n := len(p.vertices)
	if n < 3 {
		return true
	}
	sign := 0
	for i := 0; i < n; i++ {
		a, b, c := p.vertices[i], p.vertices[(i+1)%n], p.vertices[(i+2)%n]
		cross := b.Sub(a).CrossProduct(c.Sub(b))
		switch {
		case cross == 0:
			continue
		case cross > 0 && sign >= 0:
			sign = 1
		case cross < 0 && sign <= 0:
			sign = -1
		default:
			return false
		}
	}
	return true
}

// IsCCW reports whether p's vertices wind counter-clockwise. A degenerate (zero-area) polygon
// reports false.
func (p Polygon[T]) IsCCW() bool { return SignedArea2X(p.vertices) > 0 }

// Reversed returns a copy of p with its vertex order reversed, flipping its winding.
func (p Polygon[T]) Reversed() Polygon[T] {
	n := len(p.vertices)
	out := make([]Point[T], n)
	for i, v := range p.vertices {
		out[n-1-i] = v
	}
	return Polygon[T]{vertices: out}
}

// ensureCCW returns p unchanged if it already winds counter-clockwise, or its Reversed copy
// otherwise. Every convex-polygon operation in this file requires CCW orientation and calls this
// first, rather than assuming the caller already oriented its input (spec §9's Design Notes
// calls this out explicitly: "a reorientation helper is mandatory").
func (p Polygon[T]) ensureCCW() Polygon[T] {
	if p.IsCCW() {
		return p
	}
	return p.Reversed()
}

// ContainsPoint reports whether pt lies within or on the boundary of p (a closed test), assuming
// p is convex. The test orients p counter-clockwise first and then checks pt lies on the
// non-negative (left-or-on) side of every edge.
func (p Polygon[T]) ContainsPoint(pt Point[T], opts ...options.GeometryOptionsFunc) bool {
	geoOpts := options.ApplyGeometryOptions(options.DefaultGeometryOptions(), opts...)
	n := len(p.vertices)
	if n == 0 {
		return false
	}
	if n == 1 {
		return p.vertices[0].Eq(pt, opts...)
	}
	if n == 2 {
		return NewLineSegment(p.vertices[0], p.vertices[1]).IsPointOnLine(pt, opts...)
	}
	ccw := p.ensureCCW()
	for i := 0; i < n; i++ {
		edge := ccw.Edge(i)
		cross := float64(edge.direction.CrossProduct(pt.Sub(edge.anchor)))
		if numeric.FloatLessThan(cross, 0, geoOpts.Epsilon) {
			return false
		}
	}
	return true
}

// String returns a string representation of the polygon.
func (p Polygon[T]) String() string {
	return fmt.Sprintf("Polygon%v", p.vertices)
}

// appendUniquePoint appends pt to *out unless it is already (epsilon-)equal to an existing
// element, mirroring the source's addUniquePoint/insertUniquePoint helpers.
func appendUniquePoint[T types.SignedNumber](out *[]Point[T], pt Point[T], opts ...options.GeometryOptionsFunc) {
	for _, existing := range *out {
		if existing.Eq(pt, opts...) {
			return
		}
	}
	*out = append(*out, pt)
}

// prependUniquePoint inserts pt at the front of *out unless it is already present.
func prependUniquePoint[T types.SignedNumber](out *[]Point[T], pt Point[T], opts ...options.GeometryOptionsFunc) {
	for _, existing := range *out {
		if existing.Eq(pt, opts...) {
			return
		}
	}
	*out = append([]Point[T]{pt}, *out...)
}

// insideFlag identifies which of the two polygons being intersected is currently "inside" during
// the O'Rourke chase.
type insideFlag uint8

const (
	insideUnknown insideFlag = iota
	insideP
	insideQ
)

// polyTraversal tracks one polygon's position during the O'Rourke convex-intersection chase: the
// current vertex index and which InsideFlag value this traversal represents.
type polyTraversal[T types.SignedNumber] struct {
	poly Polygon[T]
	idx  int
	flag insideFlag
}

func newPolyTraversal[T types.SignedNumber](poly Polygon[T], start int, flag insideFlag) polyTraversal[T] {
	return polyTraversal[T]{poly: poly, idx: start % len(poly.vertices), flag: flag}
}

// point returns the traversal's current vertex.
func (t *polyTraversal[T]) point() Point[T] { return t.poly.vertices[t.idx] }

// edgeIndex returns the index of the edge the algorithm associates with the current vertex: the
// edge ending at, not starting from, the current vertex.
func (t *polyTraversal[T]) edgeIndex() int {
	n := len(t.poly.vertices)
	if t.idx != 0 {
		return t.idx - 1
	}
	return n - 1
}

// edge returns the traversal's current edge.
func (t *polyTraversal[T]) edge() Line[T] { return t.poly.Edge(t.edgeIndex()) }

// advance moves the traversal to its next vertex and edge.
func (t *polyTraversal[T]) advance() { t.idx = (t.idx + 1) % len(t.poly.vertices) }

// isPointInside reports whether pt lies on the interior side of (or exactly on) t's current
// edge, for t's own counter-clockwise-oriented polygon: interior is where the edge direction and
// the vector to pt turn counter-clockwise or are collinear.
func (t *polyTraversal[T]) isPointInside(pt Point[T], epsilon float64) bool {
	e := t.edge()
	cross := float64(e.direction.CrossProduct(pt.Sub(e.anchor)))
	return numeric.FloatGreaterThanOrEqualTo(cross, 0, epsilon)
}

// edgeIsCCWOrCollinear reports whether t's current edge direction turns counter-clockwise from,
// or is collinear with, other's direction.
func (t *polyTraversal[T]) edgeIsCCWOrCollinear(other Line[T], epsilon float64) bool {
	e := t.edge()
	cross := float64(e.direction.CrossProduct(other.direction))
	return numeric.FloatGreaterThanOrEqualTo(cross, 0, epsilon)
}

// collectPointIfInside appends t's current vertex to *out, deduplicated, if t's own flag matches
// curInside (i.e. t's polygon is the one currently known to be inside the other).
func (t *polyTraversal[T]) collectPointIfInside(curInside insideFlag, out *[]Point[T], opts ...options.GeometryOptionsFunc) {
	if t.flag == curInside {
		appendUniquePoint(out, t.point(), opts...)
	}
}

// advanceChase advances whichever of p, q is the "rear" traversal for this step of the O'Rourke
// chase, collecting its vertex first if that polygon is currently flagged inside.
func advanceChase[T types.SignedNumber](p, q *polyTraversal[T], curInside insideFlag, epsilon float64, out *[]Point[T], opts ...options.GeometryOptionsFunc) {
	var rear *polyTraversal[T]
	if q.edgeIsCCWOrCollinear(p.edge(), epsilon) {
		if q.isPointInside(p.point(), epsilon) {
			rear = q
		} else {
			rear = p
		}
	} else {
		if p.isPointInside(q.point(), epsilon) {
			rear = p
		} else {
			rear = q
		}
	}
	rear.collectPointIfInside(curInside, out, opts...)
	rear.advance()
}

// IntersectConvexPolygons computes the intersection of two convex polygons p and q, via
// O'Rourke's chase algorithm. The boolean result is false if the polygons are disjoint (in which
// case the returned Polygon is empty).
//
// Degenerate inputs are handled first: an empty polygon intersected with anything is empty; a
// single-point polygon reduces to a point-in-polygon test; a two-vertex polygon is treated as a
// segment and intersected against the other polygon's edges.
func IntersectConvexPolygons[T types.SignedNumber](p, q Polygon[T], opts ...options.GeometryOptionsFunc) (Polygon[T], bool) {
	geoOpts := options.ApplyGeometryOptions(options.DefaultGeometryOptions(), opts...)
	epsilon := geoOpts.Epsilon

	switch {
	case p.IsEmpty() || q.IsEmpty():
		return Polygon[T]{}, false
	case len(p.vertices) == 1:
		return intersectPointWithConvexPolygon(p.vertices[0], q, opts...)
	case len(q.vertices) == 1:
		return intersectPointWithConvexPolygon(q.vertices[0], p, opts...)
	case len(p.vertices) == 2:
		return intersectSegmentWithConvexPolygon(NewLineSegment(p.vertices[0], p.vertices[1]), q, opts...)
	case len(q.vertices) == 2:
		return intersectSegmentWithConvexPolygon(NewLineSegment(q.vertices[0], q.vertices[1]), p, opts...)
	}

	P := p.ensureCCW()
	Q := q.ensureCCW()
	maxIter := 2 * (len(P.vertices) + len(Q.vertices))

	var out []Point[T]
	var firstIsectPt Point[T]
	haveFirstIsectPt := false
	firstIsectIter := -1

	pt := newPolyTraversal(P, 1, insideP)
	qt := newPolyTraversal(Q, 1, insideQ)
	curInside := insideUnknown

	for iter := 0; iter <= maxIter; iter++ {
		x := IntersectLines(pt.edge(), qt.edge(), opts...)
		if x.Kind == IntersectionPoint {
			isectPt := x.Point
			switch {
			case !haveFirstIsectPt:
				firstIsectPt = isectPt
				haveFirstIsectPt = true
				firstIsectIter = iter
			case isectPt.Eq(firstIsectPt, opts...) && firstIsectIter != iter-1:
				return NewPolygon(out...), len(out) > 0
			}
			appendUniquePoint(&out, isectPt, opts...)

			if qt.isPointInside(pt.point(), epsilon) {
				curInside = insideP
			} else {
				curInside = insideQ
			}
		}
		advanceChase(&pt, &qt, curInside, epsilon, &out, opts...)
	}

	// The chase never closed a loop: either the polygons are disjoint, or one is wholly
	// contained in the other.
	if Q.ContainsPoint(pt.point(), opts...) {
		return P, true
	}
	if P.ContainsPoint(qt.point(), opts...) {
		return Q, true
	}
	return Polygon[T]{}, false
}

// intersectPointWithConvexPolygon handles IntersectConvexPolygons when one input has collapsed
// to a single point: the result is that point, if it lies within poly.
func intersectPointWithConvexPolygon[T types.SignedNumber](pt Point[T], poly Polygon[T], opts ...options.GeometryOptionsFunc) (Polygon[T], bool) {
	if poly.ContainsPoint(pt, opts...) {
		return NewPolygon(pt), true
	}
	return Polygon[T]{}, false
}

// intersectSegmentWithConvexPolygon handles IntersectConvexPolygons when one input has collapsed
// to a two-vertex segment: intersect the segment against every edge of poly, then add whichever
// of the segment's own endpoints lie inside poly.
func intersectSegmentWithConvexPolygon[T types.SignedNumber](seg Line[T], poly Polygon[T], opts ...options.GeometryOptionsFunc) (Polygon[T], bool) {
	var out []Point[T]

	for i := 0; i < len(poly.vertices); i++ {
		x := IntersectLines(seg, poly.Edge(i), opts...)
		switch x.Kind {
		case IntersectionPoint:
			appendUniquePoint(&out, x.Point, opts...)
		case IntersectionLine:
			if start, ok := x.Line.StartPoint(); ok {
				appendUniquePoint(&out, start, opts...)
			}
			if end, ok := x.Line.EndPoint(); ok {
				appendUniquePoint(&out, end, opts...)
			}
		}
	}

	// With two or more crossing points already found, neither endpoint of the segment can also
	// lie inside poly (the segment would have to re-enter a convex shape, which is impossible),
	// matching the source's intersectWithLine.
	if len(out) <= 1 {
		start, hasStart := seg.StartPoint()
		end, hasEnd := seg.EndPoint()
		single := len(out) == 1

		if hasStart && (!single || !out[0].Eq(start, opts...)) && poly.ContainsPoint(start, opts...) {
			prependUniquePoint(&out, start, opts...)
		}
		if hasEnd && (!single || !out[0].Eq(end, opts...)) && poly.ContainsPoint(end, opts...) {
			appendUniquePoint(&out, end, opts...)
		}
	}

	return NewPolygon(out...), len(out) > 0
}

// polygonSide identifies which side of a cutting line a polygon vertex falls on.
type polygonSide uint8

const (
	sideNone polygonSide = iota
	sideLeft
	sideRight
	sideOn
)

// sideOfLine classifies pt relative to line via the sign of perpDot(line.direction, pt-anchor).
func sideOfLine[T types.SignedNumber](line Line[T], pt Point[T], epsilon float64) polygonSide {
	cross := float64(line.direction.CrossProduct(pt.Sub(line.anchor)))
	switch {
	case numeric.FloatLessThan(cross, 0, epsilon):
		return sideLeft
	case numeric.FloatGreaterThan(cross, 0, epsilon):
		return sideRight
	default:
		return sideOn
	}
}

// crossedLine reports whether the transition from prev to now represents the cutting line being
// crossed by two consecutive polygon vertices (strictly left-to-right or right-to-left).
func crossedLine(prev, now polygonSide) bool {
	return (now == sideLeft && prev == sideRight) || (now == sideRight && prev == sideLeft)
}

// collectLineCutIntersection intersects line with edge and, if they meet at a point, appends it
// to both left and right.
func collectLineCutIntersection[T types.SignedNumber](line, edge Line[T], left, right *[]Point[T], opts ...options.GeometryOptionsFunc) {
	x := IntersectLines(line, edge, opts...)
	if x.Kind == IntersectionPoint {
		*left = append(*left, x.Point)
		*right = append(*right, x.Point)
	}
}

// CutConvexPolygonByLine cuts convex polygon p by infinite line, returning the 0, 1, or 2 pieces
// on either side. An empty p yields a single empty Polygon. A p lying entirely on line (no
// strictly-left or strictly-right vertex) yields p itself, once. Otherwise, the side(s) that
// have at least one strictly-interior vertex are returned; a line that only grazes p (touches
// but does not cross) yields p itself, once.
func CutConvexPolygonByLine[T types.SignedNumber](p Polygon[T], line Line[T], opts ...options.GeometryOptionsFunc) []Polygon[T] {
	geoOpts := options.ApplyGeometryOptions(options.DefaultGeometryOptions(), opts...)
	epsilon := geoOpts.Epsilon

	n := len(p.vertices)
	if n == 0 {
		return []Polygon[T]{{}}
	}

	var leftPts, rightPts []Point[T]
	haveLeft, haveRight := false, false
	var side polygonSide

	for i := 0; i < n; i++ {
		pt := p.vertices[i]
		prevSide := side
		side = sideOfLine(line, pt, epsilon)

		if crossedLine(prevSide, side) {
			edge := NewLineSegment(p.vertices[i-1], pt)
			collectLineCutIntersection(line, edge, &leftPts, &rightPts, opts...)
		}

		switch side {
		case sideLeft:
			leftPts = append(leftPts, pt)
			haveLeft = true
		case sideRight:
			rightPts = append(rightPts, pt)
			haveRight = true
		default:
			leftPts = append(leftPts, pt)
			rightPts = append(rightPts, pt)
		}
	}

	if n > 2 {
		firstPt, lastPt := p.vertices[0], p.vertices[n-1]
		prevSide := side
		side = sideOfLine(line, firstPt, epsilon)
		if crossedLine(prevSide, side) {
			edge := NewLineSegment(lastPt, firstPt)
			collectLineCutIntersection(line, edge, &leftPts, &rightPts, opts...)
		}
	}

	switch {
	case len(leftPts) == 0 && len(rightPts) == 0:
		return []Polygon[T]{NewPolygon(leftPts...)}
	case !haveLeft && !haveRight:
		return []Polygon[T]{NewPolygon(leftPts...)}
	default:
		var result []Polygon[T]
		if len(leftPts) > 0 && haveLeft {
			result = append(result, NewPolygon(leftPts...))
		}
		if len(rightPts) > 0 && haveRight {
			result = append(result, NewPolygon(rightPts...))
		}
		return result
	}
}
