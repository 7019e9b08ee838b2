package geom2d

import "errors"

// ErrTooFewPoints is returned by Triangulate when fewer than three unique, non-collinear points
// are supplied; no triangle, let alone a triangulation, can be formed from fewer.
var ErrTooFewPoints = errors.New("geom2d: at least three unique, non-collinear points are required")

// ErrDuplicateSample is returned by VoronoiTessellate when two input sites coincide; a Voronoi
// tessellation is undefined for coincident sites, since neither site's tile could be the
// unique set of points closer to it than to the other.
var ErrDuplicateSample = errors.New("geom2d: VoronoiTessellate requires unique sample points")
