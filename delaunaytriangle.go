// File delaunaytriangle.go defines DelaunayTriangle, which decorates a Triangle with the
// circumcircle, bounding rectangle, and squared circumradius the Bowyer-Watson algorithm in
// delaunay.go repeatedly needs, so those values are computed once per triangle rather than
// recomputed on every sample point.

package geom2d

import (
	"github.com/anvilgeo/geom2d/numeric"
	"github.com/anvilgeo/geom2d/options"
	"github.com/anvilgeo/geom2d/types"
)

// DelaunayTriangle decorates a Triangle with its circumcircle and bounding rectangle, cached at
// construction time.
type DelaunayTriangle[T types.Float] struct {
	triangle      Triangle[T]
	circumcenter  Point[T]
	circumradius  T
	radiusSquared T
	bounds        Rectangle[T]
}

// newDelaunayTriangle builds a DelaunayTriangle from t, and reports false if t is degenerate
// (has no circumcircle).
func newDelaunayTriangle[T types.Float](t Triangle[T], opts ...options.GeometryOptionsFunc) (DelaunayTriangle[T], bool) {
	center, ok := t.Circumcenter(opts...)
	if !ok {
		return DelaunayTriangle[T]{}, false
	}
	radius := T(center.DistanceToPoint(t.Vertex(0)))
	return DelaunayTriangle[T]{
		triangle:      t,
		circumcenter:  center,
		circumradius:  radius,
		radiusSquared: radius * radius,
		bounds:        NewRectangleFromPoints(t.Vertex(0), t.Vertex(1), t.Vertex(2)),
	}, true
}

// Triangle returns the underlying triangle.
func (dt DelaunayTriangle[T]) Triangle() Triangle[T] { return dt.triangle }

// Circumcenter returns the center of dt's circumcircle.
func (dt DelaunayTriangle[T]) Circumcenter() Point[T] { return dt.circumcenter }

// CircumcircleRadius returns the radius of dt's circumcircle.
func (dt DelaunayTriangle[T]) CircumcircleRadius() T { return dt.circumradius }

// FindVertex returns the index of pt among dt's vertices, and true, if pt is one of them. The
// triangle's cached bounding rectangle lets this reject points outside the triangle's extent
// without comparing against all three vertices.
func (dt DelaunayTriangle[T]) FindVertex(pt Point[T]) (int, bool) {
	if !dt.bounds.ContainsPoint(pt) {
		return 0, false
	}
	for i := 0; i < 3; i++ {
		if dt.triangle.Vertex(i).Eq(pt) {
			return i, true
		}
	}
	return 0, false
}

// isPointInCircumcircle reports whether pt lies within or on the boundary of dt's circumcircle,
// comparing squared distances to avoid a square root.
func (dt DelaunayTriangle[T]) isPointInCircumcircle(pt Point[T], epsilon float64) bool {
	distSq := float64(pt.DistanceSquaredToPoint(dt.circumcenter))
	return numeric.FloatLessThanOrEqualTo(distSq, float64(dt.radiusSquared), epsilon)
}

// rightmostExtent returns the x-coordinate beyond which dt's circumcircle can no longer reach:
// circumcenter.x + radius. Once a sample point (from a sample list sorted by ascending x) passes
// this value, dt can never again contain a sample in its circumcircle and has settled.
func (dt DelaunayTriangle[T]) rightmostExtent() float64 {
	return float64(dt.circumcenter.x) + float64(dt.circumradius)
}

// hasSettled reports whether pt lies strictly beyond dt's rightmost extent.
func (dt DelaunayTriangle[T]) hasSettled(pt Point[T], epsilon float64) bool {
	return numeric.FloatGreaterThan(float64(pt.x)-float64(dt.circumcenter.x), float64(dt.circumradius), epsilon)
}
