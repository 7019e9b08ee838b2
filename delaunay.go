// File delaunay.go implements Triangulate, an incremental Bowyer-Watson Delaunay triangulation.
// http://paulbourke.net/papers/triangulate/ is the reference algorithm: seed with a triangle
// large enough to enclose every sample, then insert samples one at a time, each time removing
// every active triangle whose circumcircle contains the new sample and re-triangulating the
// resulting cavity around it.
//
// Two refinements on top of the bare algorithm:
//   - Samples are processed in ascending x order, so a triangle whose circumcircle can no longer
//     reach any later sample ("has settled") can be moved out of the active working set for good.
//     The active set is kept in a github.com/google/btree ordered by each triangle's rightmost
//     circumcircle extent; each sample still walks the whole active set once, settling and
//     removing triangles in the same pass.
//   - The edges of the removed triangles (the cavity boundary) are deduplicated with a
//     github.com/emirpasic/gods/trees/redblacktree keyed by a canonical edge string: an edge
//     shared by two removed triangles is interior to the cavity and must be dropped, leaving only
//     the cavity's outer boundary to re-triangulate with the new sample.
package geom2d

import (
	"fmt"
	"sort"

	rbt "github.com/emirpasic/gods/trees/redblacktree"
	"github.com/google/btree"

	"github.com/anvilgeo/geom2d/options"
	"github.com/anvilgeo/geom2d/types"
)

// activeTriangle wraps a DelaunayTriangle with a monotonically increasing sequence number, so
// two triangles whose rightmost extents happen to collide still compare unequal in the active
// set's ordering instead of one silently replacing the other.
type activeTriangle[T types.Float] struct {
	seq int
	dt  DelaunayTriangle[T]
}

func activeTriangleLess[T types.Float](a, b activeTriangle[T]) bool {
	ea, eb := a.dt.rightmostExtent(), b.dt.rightmostExtent()
	if ea != eb {
		return ea < eb
	}
	return a.seq < b.seq
}

// Triangulate computes the Delaunay triangulation of points: a triangulation in which no input
// point lies strictly inside any triangle's circumcircle. Returns ErrTooFewPoints if points
// contains fewer than three unique points, or if they are all collinear.
func Triangulate[T types.Float](points []Point[T], opts ...options.GeometryOptionsFunc) ([]DelaunayTriangle[T], error) {
	geoOpts := options.ApplyGeometryOptions(options.DefaultGeometryOptions(), opts...)
	epsilon := geoOpts.Epsilon

	unique := uniquePoints(points, epsilon)
	if len(unique) < 3 {
		return nil, ErrTooFewPoints
	}

	bounding, ok := calcBoundingTriangle(unique)
	if !ok {
		return nil, ErrTooFewPoints
	}

	samples := make([]Point[T], len(unique))
	copy(samples, unique)
	samples = append(samples, bounding.Vertex(0), bounding.Vertex(1), bounding.Vertex(2))
	sort.SliceStable(samples, func(i, j int) bool { return samples[i].x < samples[j].x })

	boundingDT, ok := newDelaunayTriangle(bounding, opts...)
	if !ok {
		return nil, ErrTooFewPoints
	}

	active := btree.NewG[activeTriangle[T]](32, activeTriangleLess[T])
	settled := make([]DelaunayTriangle[T], 0, len(samples)*2)
	seq := 0
	active.ReplaceOrInsert(activeTriangle[T]{seq: seq, dt: boundingDT})
	seq++

	for _, sample := range samples {
		edges := findEnclosingPolygonEdges(active, sample, epsilon, &settled)
		edges = removeDuplicateEdges(edges)

		for _, e := range edges {
			start, hasStart := e.StartPoint()
			end, hasEnd := e.EndPoint()
			if !hasStart || !hasEnd {
				continue
			}
			t := NewTriangle(sample, start, end)
			if t.IsDegenerate() {
				continue
			}
			dt, ok := newDelaunayTriangle(t, opts...)
			if !ok {
				continue
			}
			active.ReplaceOrInsert(activeTriangle[T]{seq: seq, dt: dt})
			seq++
		}
	}

	active.Ascend(func(item activeTriangle[T]) bool {
		settled = append(settled, item.dt)
		return true
	})

	result := removeTrianglesSharingVertices(settled, bounding)
	if len(result) == 0 {
		return nil, ErrTooFewPoints
	}
	return result, nil
}

// findEnclosingPolygonEdges scans the active set for sample's x-position: triangles that have
// settled are moved to *settledOut; triangles whose closed circumcircle disk contains sample
// are removed from active and have their edges added to the returned edge buffer.
func findEnclosingPolygonEdges[T types.Float](active *btree.BTreeG[activeTriangle[T]], sample Point[T], epsilon float64, settledOut *[]DelaunayTriangle[T]) []Line[T] {
	var toSettle, toRemove []activeTriangle[T]
	var edges []Line[T]

	active.Ascend(func(item activeTriangle[T]) bool {
		switch {
		case item.dt.hasSettled(sample, epsilon):
			toSettle = append(toSettle, item)
		case item.dt.isPointInCircumcircle(sample, epsilon):
			toRemove = append(toRemove, item)
			edges = append(edges,
				item.dt.triangle.Edge(0),
				item.dt.triangle.Edge(1),
				item.dt.triangle.Edge(2),
			)
		}
		return true
	})

	for _, item := range toSettle {
		active.Delete(item)
		*settledOut = append(*settledOut, item.dt)
	}
	for _, item := range toRemove {
		active.Delete(item)
	}

	return edges
}

// removeDuplicateEdges drops every edge that appears more than once in edges (an edge shared by
// two removed triangles is interior to the cavity), keeping only edges that appear exactly once
// (the cavity's outer boundary).
func removeDuplicateEdges[T types.Float](edges []Line[T]) []Line[T] {
	counts := rbt.NewWithStringComparator()
	for _, e := range edges {
		key := canonicalEdgeKey(e)
		count := 0
		if v, found := counts.Get(key); found {
			count = v.(int)
		}
		counts.Put(key, count+1)
	}

	result := make([]Line[T], 0, len(edges))
	for _, e := range edges {
		key := canonicalEdgeKey(e)
		if v, found := counts.Get(key); found && v.(int) == 1 {
			result = append(result, e)
		}
	}
	return result
}

// canonicalEdgeKey returns a string key for edge e that is identical regardless of which endpoint
// is considered the start, so that an edge shared by two triangles (traversed in opposite
// directions by each) hashes to the same key.
func canonicalEdgeKey[T types.Float](e Line[T]) string {
	start, _ := e.StartPoint()
	end, _ := e.EndPoint()
	a := fmt.Sprintf("%v,%v", start.x, start.y)
	b := fmt.Sprintf("%v,%v", end.x, end.y)
	if a > b {
		a, b = b, a
	}
	return a + "|" + b
}

// removeTrianglesSharingVertices drops every triangle in triangles that shares a vertex with
// master: the final cleanup step that strips away the seed bounding triangle and anything still
// touching it.
func removeTrianglesSharingVertices[T types.Float](triangles []DelaunayTriangle[T], master Triangle[T]) []DelaunayTriangle[T] {
	result := make([]DelaunayTriangle[T], 0, len(triangles))
	for _, dt := range triangles {
		shared := false
		for i := 0; i < 3; i++ {
			if master.HasVertex(dt.triangle.Vertex(i)) {
				shared = true
				break
			}
		}
		if !shared {
			result = append(result, dt)
		}
	}
	return result
}

// calcBoundingTriangle returns a triangle large enough to strictly enclose every point in points.
func calcBoundingTriangle[T types.Float](points []Point[T]) (Triangle[T], bool) {
	if len(points) == 0 {
		return Triangle[T]{}, false
	}
	bounds := NewRectangleFromPoints(points...)
	if bounds.IsEmpty() {
		return Triangle[T]{}, false
	}

	dimMax := bounds.Width()
	if bounds.Height() > dimMax {
		dimMax = bounds.Height()
	}
	scale := T(20)
	centerX := (bounds.TopLeft().x + bounds.BottomRight().x) / 2
	centerY := (bounds.TopLeft().y + bounds.BottomRight().y) / 2

	a := Point[T]{x: centerX - scale*dimMax, y: centerY - dimMax}
	b := Point[T]{x: centerX, y: centerY + scale*dimMax}
	c := Point[T]{x: centerX + scale*dimMax, y: centerY - dimMax}
	return NewTriangle(a, b, c), true
}

// uniquePoints returns points with duplicates removed, keeping the first occurrence; coordinates
// are compared with the epsilon-tolerant Eq.
func uniquePoints[T types.Float](points []Point[T], epsilon float64) []Point[T] {
	result := make([]Point[T], 0, len(points))
	for _, p := range points {
		duplicate := false
		for _, q := range result {
			if p.Eq(q, options.WithEpsilon(epsilon)) {
				duplicate = true
				break
			}
		}
		if !duplicate {
			result = append(result, p)
		}
	}
	return result
}

// SatisfiesDelaunayCondition reports whether triangles forms a valid Delaunay triangulation: no
// vertex of any triangle lies strictly inside the circumcircle of any other triangle.
func SatisfiesDelaunayCondition[T types.Float](triangles []Triangle[T], opts ...options.GeometryOptionsFunc) bool {
	vertices := collectUniqueVertices(triangles, options.ApplyGeometryOptions(options.DefaultGeometryOptions(), opts...).Epsilon)
	for _, t := range triangles {
		circle, ok := t.Circumcircle(opts...)
		if !ok {
			continue
		}
		for _, v := range vertices {
			if t.HasVertex(v) {
				continue
			}
			if circle.StrictlyContainsPoint(v, opts...) {
				return false
			}
		}
	}
	return true
}

// collectUniqueVertices returns the set of distinct vertices across triangles.
func collectUniqueVertices[T types.Float](triangles []Triangle[T], epsilon float64) []Point[T] {
	var vertices []Point[T]
	for _, t := range triangles {
		for i := 0; i < 3; i++ {
			v := t.Vertex(i)
			found := false
			for _, existing := range vertices {
				if v.Eq(existing, options.WithEpsilon(epsilon)) {
					found = true
					break
				}
			}
			if !found {
				vertices = append(vertices, v)
			}
		}
	}
	return vertices
}
