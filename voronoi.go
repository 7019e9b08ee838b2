// File voronoi.go implements VoronoiTessellate, built as the dual of the Delaunay triangulation
// produced by delaunay.go: every Delaunay edge shared by two triangles becomes a Voronoi edge
// between their circumcenters, and every hull-boundary edge becomes a ray heading away from the
// triangulation. Grounded on _examples/original_source/voronoi_tesselation.h, with two of that
// file's bugs fixed rather than reproduced: fixIntersectingEndEdges there takes its vertex slice
// by value, so the endpoint repair never reaches the caller, and only reassigns the last
// endpoint even when fixed to take a reference (the first assignment is a stray equality
// comparison). This port mutates both endpoints through the returned slice.
package geom2d

import (
	"sort"

	rbt "github.com/emirpasic/gods/trees/redblacktree"

	"github.com/anvilgeo/geom2d/options"
	"github.com/anvilgeo/geom2d/types"
)

// distantPointFactor is how far along a hull-boundary ray's direction, relative to its length-1
// direction vector, an open Voronoi edge chain's unbounded end is pushed before clipping against
// the border: far enough that any reasonable border rectangle's intersection with the ray falls
// well short of it.
const distantPointFactor = 1e5

// VoronoiTile is one sample point's Voronoi cell: the seed, and the convex polygon of points
// closer to it than to any other sample, clipped to the tessellation's border.
type VoronoiTile[T types.Float] struct {
	seed    Point[T]
	outline Polygon[T]
}

// Seed returns the tile's sample point.
func (vt VoronoiTile[T]) Seed() Point[T] { return vt.seed }

// Outline returns the tile's boundary polygon.
func (vt VoronoiTile[T]) Outline() Polygon[T] { return vt.outline }

// voronoiEdge is one edge of a sample's Voronoi cell boundary, before assembly into an ordered
// polygon outline: a segment between two circumcenters, or a ray heading away from the
// triangulation at a hull-boundary edge.
type voronoiEdge[T types.Float] struct {
	line Line[T]
}

// delaunayEdgeKey canonically identifies a Delaunay edge by its two endpoints, direction
// insensitively, so the edge map in buildDelaunayEdgeMap can recognize the same edge approached
// from either of its two incident triangles.
type delaunayEdgeKey[T types.Float] struct {
	a, b Point[T]
}

func newDelaunayEdgeKey[T types.Float](a, b Point[T]) delaunayEdgeKey[T] {
	if pointLess(b, a) {
		a, b = b, a
	}
	return delaunayEdgeKey[T]{a: a, b: b}
}

func delaunayEdgeKeyLess[T types.Float](x, y delaunayEdgeKey[T]) bool {
	if !x.a.Eq(y.a) {
		return pointLess(x.a, y.a)
	}
	return pointLess(x.b, y.b)
}

// delaunayEdgeRecord tracks the one or two triangles incident on a Delaunay edge. directedA/
// directedB are parallel to triangles and record the edge as traversed in that triangle's own
// CCW winding (every Triangle is stored CCW, per triangle.go's constructor), which for a
// hull-boundary edge (exactly one incident triangle) is the direction the Voronoi ray's
// cw-normal must be taken from — the canonical a/b pair above is sorted for map-key purposes and
// may run the opposite way.
type delaunayEdgeRecord[T types.Float] struct {
	a, b       Point[T]
	triangles  []DelaunayTriangle[T]
	directedA  []Point[T]
	directedB  []Point[T]
}

// buildDelaunayEdgeMap returns, keyed by canonical edge, every distinct edge of triangles and
// the (one or two) triangles it borders. Ordered by a redblacktree so the map iterates
// deterministically, matching the teacher's use of the same structure for its sweep-line status
// structure.
func buildDelaunayEdgeMap[T types.Float](triangles []DelaunayTriangle[T]) *rbt.Tree {
	tree := rbt.NewWith(func(x, y any) int {
		kx, ky := x.(delaunayEdgeKey[T]), y.(delaunayEdgeKey[T])
		switch {
		case delaunayEdgeKeyLess(kx, ky):
			return -1
		case delaunayEdgeKeyLess(ky, kx):
			return 1
		default:
			return 0
		}
	})

	for _, dt := range triangles {
		for i := 0; i < 3; i++ {
			a := dt.triangle.Vertex(i)
			b := dt.triangle.Vertex((i + 1) % 3)
			key := newDelaunayEdgeKey(a, b)
			if existing, found := tree.Get(key); found {
				rec := existing.(*delaunayEdgeRecord[T])
				rec.triangles = append(rec.triangles, dt)
				rec.directedA = append(rec.directedA, a)
				rec.directedB = append(rec.directedB, b)
			} else {
				tree.Put(key, &delaunayEdgeRecord[T]{
					a: a, b: b,
					triangles: []DelaunayTriangle[T]{dt},
					directedA: []Point[T]{a},
					directedB: []Point[T]{b},
				})
			}
		}
	}
	return tree
}

// edgesIncidentOn returns every edge record in edgeMap that has sample as one of its two
// endpoints.
func edgesIncidentOn[T types.Float](edgeMap *rbt.Tree, sample Point[T]) []*delaunayEdgeRecord[T] {
	var out []*delaunayEdgeRecord[T]
	it := edgeMap.Iterator()
	for it.Next() {
		rec := it.Value().(*delaunayEdgeRecord[T])
		if rec.a.Eq(sample) || rec.b.Eq(sample) {
			out = append(out, rec)
		}
	}
	return out
}

// voronoiEdgeFromDelaunayEdge converts one Delaunay edge record into its dual Voronoi edge. It
// reports false if the edge is shared by two triangles whose circumcenters coincide (a
// degenerate edge that contributes nothing to the cell boundary).
func voronoiEdgeFromDelaunayEdge[T types.Float](rec *delaunayEdgeRecord[T], epsilon float64) (voronoiEdge[T], bool) {
	switch len(rec.triangles) {
	case 2:
		c0 := rec.triangles[0].Circumcenter()
		c1 := rec.triangles[1].Circumcenter()
		if c0.Eq(c1, options.WithEpsilon(epsilon)) {
			return voronoiEdge[T]{}, false
		}
		return voronoiEdge[T]{line: NewLineSegment(c0, c1)}, true
	case 1:
		t := rec.triangles[0]
		center := t.Circumcenter()
		edgeDir := rec.directedB[0].Sub(rec.directedA[0])
		return voronoiEdge[T]{line: NewLineRay(center, edgeDir.PerpCW())}, true
	default:
		return voronoiEdge[T]{}, false
	}
}

// collectVoronoiEdges returns the Voronoi edges dual to every Delaunay edge incident on sample.
func collectVoronoiEdges[T types.Float](edgeMap *rbt.Tree, sample Point[T], epsilon float64) []voronoiEdge[T] {
	var edges []voronoiEdge[T]
	for _, rec := range edgesIncidentOn(edgeMap, sample) {
		if ve, ok := voronoiEdgeFromDelaunayEdge(rec, epsilon); ok {
			edges = append(edges, ve)
		}
	}
	return edges
}

// assembleVoronoiOutline orders a sample's unordered Voronoi edges into a single vertex chain:
// either a closed loop (every edge a segment) or an open path bounded by two rays (the sample
// lies on the triangulation's convex hull).
func assembleVoronoiOutline[T types.Float](edges []voronoiEdge[T], epsilon float64) []Point[T] {
	if len(edges) == 0 {
		return nil
	}

	var rays []int
	for i, e := range edges {
		if _, hasEnd := e.line.EndPoint(); !hasEnd {
			rays = append(rays, i)
		}
	}

	if len(rays) >= 2 {
		return assembleOpenVoronoiPath(edges, rays[0], rays[1], epsilon)
	}
	return assembleClosedVoronoiLoop(edges, epsilon)
}

// voronoiDistantPoint returns a point far along ray's direction from its start, standing in for
// the ray's unreachable endpoint during polygon assembly and clipping.
func voronoiDistantPoint[T types.Float](ray Line[T]) Point[T] {
	start, _ := ray.StartPoint()
	dir := ray.Direction().AsFloat().Unit()
	sf := start.AsFloat()
	return pointFromFloat[T](Point[float64]{x: sf.x + dir.dx*distantPointFactor, y: sf.y + dir.dy*distantPointFactor})
}

// assembleOpenVoronoiPath builds the vertex chain for a hull-boundary sample: its two rays'
// distant points, each ray's start, and the chain of segments connecting them.
func assembleOpenVoronoiPath[T types.Float](edges []voronoiEdge[T], rayA, rayB int, epsilon float64) []Point[T] {
	used := make([]bool, len(edges))
	used[rayA] = true
	used[rayB] = true

	rayAStart, _ := edges[rayA].line.StartPoint()
	rayBStart, _ := edges[rayB].line.StartPoint()
	distantA := voronoiDistantPoint(edges[rayA].line)
	distantB := voronoiDistantPoint(edges[rayB].line)

	vertices := []Point[T]{distantA, rayAStart}
	connector := rayAStart

	for {
		idx, flip, ok := findConnectingEdge(edges, used, connector, epsilon)
		if !ok {
			break
		}
		used[idx] = true
		start, _ := edges[idx].line.StartPoint()
		end, _ := edges[idx].line.EndPoint()
		next := end
		if flip {
			next = start
		}
		vertices = append(vertices, next)
		connector = next
	}

	if !rayBStart.Eq(connector, options.WithEpsilon(epsilon)) {
		vertices = append(vertices, rayBStart)
	}
	vertices = append(vertices, distantB)

	return fixIntersectingEndEdges(vertices, epsilon)
}

// findConnectingEdge scans edges for an unused segment, one of whose endpoints matches connector.
// It returns the edge's index and whether the edge must be flipped (its stored end, not start,
// matched connector) so the caller can append the correct far endpoint next.
func findConnectingEdge[T types.Float](edges []voronoiEdge[T], used []bool, connector Point[T], epsilon float64) (idx int, flip bool, ok bool) {
	for i, e := range edges {
		if used[i] {
			continue
		}
		start, _ := e.line.StartPoint()
		end, hasEnd := e.line.EndPoint()
		if !hasEnd {
			continue
		}
		switch {
		case start.Eq(connector, options.WithEpsilon(epsilon)):
			return i, false, true
		case end.Eq(connector, options.WithEpsilon(epsilon)):
			return i, true, true
		}
	}
	return 0, false, false
}

// assembleClosedVoronoiLoop builds the vertex chain for an interior sample, whose Voronoi edges
// form a closed loop of segments: pick any edge, then repeatedly find the edge continuing from
// the current connector point until every edge has been consumed.
func assembleClosedVoronoiLoop[T types.Float](edges []voronoiEdge[T], epsilon float64) []Point[T] {
	used := make([]bool, len(edges))
	used[0] = true
	start0, _ := edges[0].line.StartPoint()
	end0, _ := edges[0].line.EndPoint()

	vertices := []Point[T]{start0}
	connector := end0

	for {
		vertices = append(vertices, connector)
		idx, flip, ok := findConnectingEdge(edges, used, connector, epsilon)
		if !ok {
			break
		}
		used[idx] = true
		start, _ := edges[idx].line.StartPoint()
		end, _ := edges[idx].line.EndPoint()
		connector = end
		if flip {
			connector = start
		}
	}

	if n := len(vertices); n > 1 && vertices[n-1].Eq(vertices[0], options.WithEpsilon(epsilon)) {
		vertices = vertices[:n-1]
	}
	return vertices
}

// fixIntersectingEndEdges repairs an open Voronoi path whose two end-ray continuations cross each
// other before reaching their distant points: left uncorrected, the outline would be non-convex
// and subsequent border clipping would fail. vertices is ordered [distantA, rayAStart, ...,
// rayBStart, distantB]; if the segment (distantA, rayAStart) crosses (rayBStart, distantB), both
// distant points are collapsed to the crossing point.
//
// The source this is grounded on (voronoi_tesselation.h's fixIntersectingEndEdges) takes its
// vertex vector by value, so its repair is invisible to the caller, and even read as "by
// reference" it only reassigns the last endpoint (vertices[0] == xPt is a stray comparison, not
// an assignment). Both endpoints are reassigned here via the returned slice.
func fixIntersectingEndEdges[T types.Float](vertices []Point[T], epsilon float64) []Point[T] {
	n := len(vertices)
	if n < 4 {
		return vertices
	}

	distantA, rayAStart := vertices[0], vertices[1]
	rayBStart, distantB := vertices[n-2], vertices[n-1]

	edgeA := NewLineSegment(distantA, rayAStart)
	edgeB := NewLineSegment(rayBStart, distantB)

	x := IntersectLines(edgeA, edgeB, options.WithEpsilon(epsilon))
	if x.Kind != IntersectionPoint {
		return vertices
	}

	vertices[0] = x.Point
	vertices[n-1] = x.Point
	return vertices
}

// buildBorderPolygon returns the clipping rectangle, in the order used by
// original_source/voronoi_tesselation.h's makePolygon: left-top, left-bottom, right-bottom,
// right-top (counter-clockwise as drawn with y increasing downward, clockwise in the
// y-increasing-upward convention this package otherwise uses — EnsureCounterClockwise corrects
// it either way).
func buildBorderPolygon[T types.Float](rect Rectangle[T]) Polygon[T] {
	verts := []Point[T]{rect.TopLeft(), rect.BottomLeft(), rect.BottomRight(), rect.TopRight()}
	EnsureCounterClockwise(verts)
	return NewPolygon(verts...)
}

// resolveBorderRect determines the clipping rectangle for VoronoiTessellate from its options: an
// explicit rect, an offset inflation of the samples' bounding box, or the bounding box itself.
func resolveBorderRect[T types.Float](samples []Point[T], geoOpts options.GeometryOptions) Rectangle[T] {
	bounds := NewRectangleFromPoints(samples...)

	if geoOpts.HasBorderRect {
		return NewRectangle(
			Point[T]{x: T(geoOpts.Rect.Left), y: T(geoOpts.Rect.Top)},
			Point[T]{x: T(geoOpts.Rect.Right), y: T(geoOpts.Rect.Bottom)},
		)
	}
	if geoOpts.HasBorderOffset {
		return bounds.Inset(T(geoOpts.BorderOffset))
	}
	return bounds
}

// VoronoiTessellate computes the Voronoi tessellation of points, clipped to a border rectangle
// determined by opts (WithBorderRect, WithBorderOffset, or the points' own bounding box by
// default). Returns ErrDuplicateSample if two input points coincide.
func VoronoiTessellate[T types.Float](points []Point[T], opts ...options.GeometryOptionsFunc) ([]VoronoiTile[T], error) {
	geoOpts := options.ApplyGeometryOptions(options.DefaultGeometryOptions(), opts...)
	epsilon := geoOpts.Epsilon

	if len(points) == 0 {
		return nil, nil
	}
	if hasDuplicatePoint(points, epsilon) {
		return nil, ErrDuplicateSample
	}

	border := buildBorderPolygon(resolveBorderRect(points, geoOpts))

	switch len(points) {
	case 1:
		return []VoronoiTile[T]{{seed: points[0], outline: border}}, nil
	case 2:
		return voronoiTessellateTwoPoints(points[0], points[1], border, opts...)
	}

	triangles, err := Triangulate(points, opts...)
	if err != nil {
		return nil, nil
	}
	edgeMap := buildDelaunayEdgeMap(triangles)

	if geoOpts.ParallelTiles {
		return voronoiTessellateParallel(points, edgeMap, border, epsilon, opts...), nil
	}
	return voronoiTessellateSequential(points, edgeMap, border, epsilon, opts...), nil
}

// buildVoronoiTile assembles and clips sample's tile from its incident Delaunay edges.
func buildVoronoiTile[T types.Float](sample Point[T], edgeMap *rbt.Tree, border Polygon[T], epsilon float64, opts ...options.GeometryOptionsFunc) VoronoiTile[T] {
	edges := collectVoronoiEdges(edgeMap, sample, epsilon)
	outlineVerts := assembleVoronoiOutline(edges, epsilon)
	outline := NewPolygon(outlineVerts...)

	clipped, ok := IntersectConvexPolygons(outline, border, opts...)
	if !ok {
		clipped = Polygon[T]{}
	}
	return VoronoiTile[T]{seed: sample, outline: clipped}
}

// voronoiTessellateSequential builds every sample's tile in input order.
func voronoiTessellateSequential[T types.Float](points []Point[T], edgeMap *rbt.Tree, border Polygon[T], epsilon float64, opts ...options.GeometryOptionsFunc) []VoronoiTile[T] {
	tiles := make([]VoronoiTile[T], len(points))
	for i, sample := range points {
		tiles[i] = buildVoronoiTile(sample, edgeMap, border, epsilon, opts...)
	}
	return tiles
}

// voronoiTessellateParallel builds every sample's tile on a worker per sample, per
// WithParallelTiles. Output order matches input order regardless of completion order.
func voronoiTessellateParallel[T types.Float](points []Point[T], edgeMap *rbt.Tree, border Polygon[T], epsilon float64, opts ...options.GeometryOptionsFunc) []VoronoiTile[T] {
	tiles := make([]VoronoiTile[T], len(points))
	done := make(chan int, len(points))

	for i, sample := range points {
		go func(i int, sample Point[T]) {
			tiles[i] = buildVoronoiTile(sample, edgeMap, border, epsilon, opts...)
			done <- i
		}(i, sample)
	}
	for range points {
		<-done
	}
	return tiles
}

// voronoiTessellateTwoPoints handles the two-sample degenerate case: cut border along the
// perpendicular bisector of a and b, then assign each half to whichever sample lies on its side.
func voronoiTessellateTwoPoints[T types.Float](a, b Point[T], border Polygon[T], opts ...options.GeometryOptionsFunc) ([]VoronoiTile[T], error) {
	mid := midpoint(a, b)
	bisectorDir := b.Sub(a).PerpCW()
	bisector := NewInfiniteLine(mid, bisectorDir)

	pieces := CutConvexPolygonByLine(border, bisector, opts...)
	if len(pieces) != 2 {
		return nil, nil
	}

	tiles := make([]VoronoiTile[T], 0, 2)
	for _, piece := range pieces {
		seed := sideSeedFor(piece, bisector, a, b)
		tiles = append(tiles, VoronoiTile[T]{seed: seed, outline: piece})
	}
	sort.Slice(tiles, func(i, j int) bool { return pointLess(tiles[i].seed, tiles[j].seed) })
	return tiles, nil
}

// sideSeedFor returns whichever of a, b lies on piece's side of bisector, determined by the sign
// of perpDot(bisector.direction, sample - bisector.anchor).
func sideSeedFor[T types.Float](piece Polygon[T], bisector Line[T], a, b Point[T]) Point[T] {
	if len(piece.vertices) == 0 {
		return a
	}
	var sum Vector[T]
	for _, v := range piece.vertices {
		sum = sum.Add(v.Sub(bisector.anchor))
	}
	centroidSide := float64(bisector.direction.CrossProduct(sum.Scale(1 / T(len(piece.vertices)))))
	aSide := float64(bisector.direction.CrossProduct(a.Sub(bisector.anchor)))
	if (centroidSide >= 0) == (aSide >= 0) {
		return a
	}
	return b
}

// hasDuplicatePoint reports whether any two points in pts coincide.
func hasDuplicatePoint[T types.Float](pts []Point[T], epsilon float64) bool {
	for i := 0; i < len(pts); i++ {
		for j := i + 1; j < len(pts); j++ {
			if pts[i].Eq(pts[j], options.WithEpsilon(epsilon)) {
				return true
			}
		}
	}
	return false
}
