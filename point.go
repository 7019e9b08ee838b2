// This file contains the Point and Vector types. Point represents a location in 2D space;
// Vector represents a displacement between two locations. Keeping the two distinct (rather than
// folding displacement arithmetic into Point, as an earlier revision of this package did) keeps
// circumcenter, normal, and perpendicular-dot calculations throughout this package reading as
// what they are: operations on directions and lengths, not on coordinates.

package geom2d

import (
	"fmt"
	"image"
	"math"

	"github.com/anvilgeo/geom2d/numeric"
	"github.com/anvilgeo/geom2d/options"
	"github.com/anvilgeo/geom2d/types"
)

// PointOrientation represents the relative orientation of three points in a two-dimensional plane:
// collinear, clockwise, or counterclockwise.
type PointOrientation uint8

// Valid values for PointOrientation.
const (
	PointsCollinear = PointOrientation(iota)
	PointsClockwise
	PointsCounterClockwise
)

// String returns the name of the orientation.
func (o PointOrientation) String() string {
	switch o {
	case PointsClockwise:
		return "PointsClockwise"
	case PointsCounterClockwise:
		return "PointsCounterClockwise"
	default:
		return "PointsCollinear"
	}
}

// Point represents a location in two-dimensional space with x and y coordinates of a generic
// numeric type T.
type Point[T types.SignedNumber] struct {
	x T
	y T
}

// NewPoint creates and returns a new Point with the specified x and y coordinates.
func NewPoint[T types.SignedNumber](x, y T) Point[T] {
	return Point[T]{x: x, y: y}
}

// NewPointFromImagePoint creates a Point[int] from an image.Point.
func NewPointFromImagePoint(q image.Point) Point[int] {
	return Point[int]{x: q.X, y: q.Y}
}

// X returns the x-coordinate of the Point.
func (p Point[T]) X() T { return p.x }

// Y returns the y-coordinate of the Point.
func (p Point[T]) Y() T { return p.y }

// AsFloat converts the Point's coordinates to float64.
func (p Point[T]) AsFloat() Point[float64] {
	return Point[float64]{x: float64(p.x), y: float64(p.y)}
}

// AsIntRounded converts the Point's coordinates to int, rounding to the nearest integer.
func (p Point[T]) AsIntRounded() Point[int] {
	return Point[int]{x: int(math.Round(float64(p.x))), y: int(math.Round(float64(p.y)))}
}

// Translate returns a new Point offset from p by the given Vector.
func (p Point[T]) Translate(v Vector[T]) Point[T] {
	return Point[T]{x: p.x + v.dx, y: p.y + v.dy}
}

// Sub returns the Vector pointing from q to p (p minus q).
func (p Point[T]) Sub(q Point[T]) Vector[T] {
	return Vector[T]{dx: p.x - q.x, dy: p.y - q.y}
}

// DistanceSquaredToPoint returns the squared Euclidean distance between p and q, avoiding a
// square root when only distance comparisons are needed.
func (p Point[T]) DistanceSquaredToPoint(q Point[T]) T {
	return p.Sub(q).LengthSquared()
}

// DistanceToPoint returns the Euclidean distance between p and q.
func (p Point[T]) DistanceToPoint(q Point[T]) float64 {
	return p.Sub(q).Length()
}

// Eq reports whether p and q are equal. For floating-point coordinate types, equality is
// epsilon-tolerant per opts; for integer types, comparison is exact and opts is ignored.
func (p Point[T]) Eq(q Point[T], opts ...options.GeometryOptionsFunc) bool {
	geoOpts := options.ApplyGeometryOptions(options.DefaultGeometryOptions(), opts...)
	switch any(p.x).(type) {
	case float32, float64:
		return numeric.FloatEquals(float64(p.x), float64(q.x), geoOpts.Epsilon) &&
			numeric.FloatEquals(float64(p.y), float64(q.y), geoOpts.Epsilon)
	default:
		return p.x == q.x && p.y == q.y
	}
}

// String returns a string representation of the Point in the format "Point[(x, y)]".
func (p Point[T]) String() string {
	return fmt.Sprintf("Point[(%v, %v)]", p.x, p.y)
}

// pointLess orders points lexicographically, first by x then by y. It grounds ordered
// containers keyed by point (the Voronoi Delaunay-edge map) on a total order that never reports
// two distinct points as equal.
func pointLess[T types.SignedNumber](a, b Point[T]) bool {
	if a.x != b.x {
		return a.x < b.x
	}
	return a.y < b.y
}

// Vector represents a displacement between two points: a direction and a length, with no fixed
// location of its own.
type Vector[T types.SignedNumber] struct {
	dx T
	dy T
}

// NewVector creates and returns a new Vector with the specified displacement components.
func NewVector[T types.SignedNumber](dx, dy T) Vector[T] {
	return Vector[T]{dx: dx, dy: dy}
}

// Dx returns the x-component of the Vector.
func (v Vector[T]) Dx() T { return v.dx }

// Dy returns the y-component of the Vector.
func (v Vector[T]) Dy() T { return v.dy }

// Add returns the sum of v and w.
func (v Vector[T]) Add(w Vector[T]) Vector[T] {
	return Vector[T]{dx: v.dx + w.dx, dy: v.dy + w.dy}
}

// Negate returns the vector pointing in the opposite direction to v.
func (v Vector[T]) Negate() Vector[T] {
	return Vector[T]{dx: -v.dx, dy: -v.dy}
}

// Scale returns v scaled by the scalar k.
func (v Vector[T]) Scale(k T) Vector[T] {
	return Vector[T]{dx: v.dx * k, dy: v.dy * k}
}

// DotProduct returns the dot product of v and w.
func (v Vector[T]) DotProduct(w Vector[T]) T {
	return v.dx*w.dx + v.dy*w.dy
}

// CrossProduct returns the 2D cross product (the z-component of the 3D cross product) of v and w.
// Its sign reports the turn from v to w: positive for a counterclockwise turn, negative for
// clockwise, zero when v and w are parallel (or either is zero length).
func (v Vector[T]) CrossProduct(w Vector[T]) T {
	return v.dx*w.dy - v.dy*w.dx
}

// LengthSquared returns the squared length of v, avoiding a square root.
func (v Vector[T]) LengthSquared() T {
	return v.dx*v.dx + v.dy*v.dy
}

// Length returns the length of v.
func (v Vector[T]) Length() float64 {
	return math.Sqrt(float64(v.LengthSquared()))
}

// IsZero reports whether v has zero length, i.e. both components are zero.
func (v Vector[T]) IsZero() bool {
	return v.dx == 0 && v.dy == 0
}

// PerpCW returns v rotated 90 degrees clockwise: (dx, dy) -> (dy, -dx).
func (v Vector[T]) PerpCW() Vector[T] {
	return Vector[T]{dx: v.dy, dy: -v.dx}
}

// PerpCCW returns v rotated 90 degrees counterclockwise: (dx, dy) -> (-dy, dx).
func (v Vector[T]) PerpCCW() Vector[T] {
	return Vector[T]{dx: -v.dy, dy: v.dx}
}

// AsFloat converts the Vector's components to float64.
func (v Vector[T]) AsFloat() Vector[float64] {
	return Vector[float64]{dx: float64(v.dx), dy: float64(v.dy)}
}

// Unit returns v scaled to unit length. The zero vector is returned unchanged. For integer
// component types the scaled components are truncated toward zero.
func (v Vector[T]) Unit() Vector[T] {
	length := v.Length()
	if length == 0 {
		return v
	}
	return Vector[T]{dx: T(float64(v.dx) / length), dy: T(float64(v.dy) / length)}
}

// String returns a string representation of the Vector in the format "Vector[(dx, dy)]".
func (v Vector[T]) String() string {
	return fmt.Sprintf("Vector[(%v, %v)]", v.dx, v.dy)
}

// triangleAreaX2Signed returns twice the signed area of the triangle formed by p0, p1, and p2:
// positive for a counterclockwise ordering, negative for clockwise, zero if collinear.
func triangleAreaX2Signed[T types.SignedNumber](p0, p1, p2 Point[T]) T {
	return p1.Sub(p0).CrossProduct(p2.Sub(p0))
}

// Orientation determines the relative orientation of three points.
func Orientation[T types.SignedNumber](p0, p1, p2 Point[T]) PointOrientation {
	area2x := triangleAreaX2Signed(p0, p1, p2)
	switch {
	case area2x < 0:
		return PointsClockwise
	case area2x > 0:
		return PointsCounterClockwise
	default:
		return PointsCollinear
	}
}

// SignedArea2X computes twice the signed area of the polygon defined by points, via the Shoelace
// formula. A positive result indicates a counterclockwise winding, negative indicates clockwise.
// Returns 0 if points has fewer than 3 elements.
func SignedArea2X[T types.SignedNumber](points []Point[T]) T {
	var area T
	n := len(points)
	if n < 3 {
		return 0
	}
	for i := 1; i < n-1; i++ {
		area += triangleAreaX2Signed(points[0], points[i], points[i+1])
	}
	return area
}

// EnsureCounterClockwise reverses points in place if they are wound clockwise, so that the
// result is always ordered counterclockwise. A zero-area input is left unchanged.
func EnsureCounterClockwise[T types.SignedNumber](points []Point[T]) {
	if SignedArea2X(points) >= 0 {
		return
	}
	for i, j := 0, len(points)-1; i < j; i, j = i+1, j-1 {
		points[i], points[j] = points[j], points[i]
	}
}

// findLowestLeftmostPoint returns the index and value of the point with the lowest y-coordinate,
// breaking ties by the lowest x-coordinate.
func findLowestLeftmostPoint[T types.SignedNumber](points ...Point[T]) (int, Point[T]) {
	lowest := 0
	for i := range points {
		switch {
		case points[i].y < points[lowest].y:
			lowest = i
		case points[i].y == points[lowest].y && points[i].x < points[lowest].x:
			lowest = i
		}
	}
	return lowest, points[lowest]
}

// orderPointsByAngleAboutLowestPoint sorts points in place by angle around lowestPoint, breaking
// ties (collinear points) by increasing distance from lowestPoint. This is the sort step of the
// Graham scan used by ConvexHull.
func orderPointsByAngleAboutLowestPoint[T types.SignedNumber](lowestPoint Point[T], points []Point[T]) {
	sortStableByLess(points, func(a, b Point[T]) bool {
		switch {
		case a.Eq(lowestPoint):
			return true
		case b.Eq(lowestPoint):
			return false
		}
		relativeA := a.Sub(lowestPoint)
		relativeB := b.Sub(lowestPoint)
		cross := relativeA.CrossProduct(relativeB)
		switch {
		case cross > 0:
			return true
		case cross < 0:
			return false
		}
		return lowestPoint.DistanceSquaredToPoint(a) < lowestPoint.DistanceSquaredToPoint(b)
	})
}

// ConvexHull computes the convex hull of a finite set of points using the Graham scan algorithm,
// returning the hull vertices in counterclockwise order. If points has fewer than three elements,
// it is returned unchanged.
func ConvexHull[T types.SignedNumber](points []Point[T]) []Point[T] {
	output := make([]Point[T], len(points))
	copy(output, points)
	if len(output) < 3 {
		return output
	}

	_, lowestPoint := findLowestLeftmostPoint(output...)
	orderPointsByAngleAboutLowestPoint(lowestPoint, output)

	for pt0Index := 0; pt0Index < len(output); pt0Index++ {
		pt1Index := (pt0Index + 1) % len(output)
		pt2Index := (pt1Index + 1) % len(output)
		if Orientation(output[pt0Index], output[pt1Index], output[pt2Index]) == PointsClockwise {
			output = append(output[:pt1Index], output[pt1Index+1:]...)
			pt0Index -= 3
			if pt0Index < 0 {
				pt0Index = 0
			}
		}
	}

	return output
}

// sortStableByLess is a tiny insertion-sort-backed stable sort over a less function, used instead
// of slices.SortStableFunc's cmp-returns-int convention so callers can express orderings as plain
// booleans.
func sortStableByLess[T any](items []T, less func(a, b T) bool) {
	for i := 1; i < len(items); i++ {
		for j := i; j > 0 && less(items[j], items[j-1]); j-- {
			items[j], items[j-1] = items[j-1], items[j]
		}
	}
}
