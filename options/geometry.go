package options

import "github.com/anvilgeo/geom2d/numeric"

// GeometryOptionsFunc is a functional option type used to configure optional parameters
// in geometric operations. Functions that accept a GeometryOptionsFunc parameter allow
// users to customize behavior without modifying the primary function signature.
//
// GeometryOptionsFunc functions take a pointer to a GeometryOptions struct and modify its fields
// to apply specific configurations.
type GeometryOptionsFunc func(*GeometryOptions)

// BorderRect is a plain axis-aligned rectangle expressed in float64, independent of the
// generic Rectangle type in the root package. Keeping it here (rather than depending on the
// root package's Rectangle[T]) avoids an import cycle between options and geom2d.
type BorderRect struct {
	Left, Top, Right, Bottom float64
}

// GeometryOptions defines a set of configurable parameters for geometric operations.
// These options allow users to customize the behavior of functions in the library,
// such as applying numerical stability adjustments or controlling how VoronoiTessellate
// derives its clipping border.
type GeometryOptions struct {
	// Epsilon is a small positive value used to adjust for floating-point precision errors.
	// When set, values within the range [-Epsilon, Epsilon] are treated as zero in
	// calculations to improve numerical stability.
	//
	// Default: [numeric.DefaultEpsilon]
	Epsilon float64

	// BorderOffset, when HasBorderOffset is true, inflates the input bounding box symmetrically
	// by this amount to produce the Voronoi clipping border.
	BorderOffset    float64
	HasBorderOffset bool

	// Rect, when HasBorderRect is true, is used verbatim as the Voronoi clipping border,
	// overriding BorderOffset.
	Rect          BorderRect
	HasBorderRect bool

	// ParallelTiles, when true, permits VoronoiTessellate to compute per-seed tiles on a worker
	// pool once the shared Delaunay triangulation and edge map have been built. It never changes
	// the result, only the wall-clock time to produce it.
	ParallelTiles bool
}

// DefaultGeometryOptions returns the GeometryOptions every exported entry point in this library
// seeds before applying caller-supplied GeometryOptionsFunc values: Epsilon set to
// [numeric.DefaultEpsilon], no border override, tiles built sequentially.
func DefaultGeometryOptions() GeometryOptions {
	return GeometryOptions{Epsilon: numeric.DefaultEpsilon}
}

// ApplyGeometryOptions applies a set of functional options to a given options struct,
// starting with a set of default values.
//
// Parameters:
//   - defaults (GeometryOptions): the initial GeometryOptions struct containing default values.
//   - opts: a variadic slice of GeometryOptionsFunc functions that modify the struct.
//
// Each GeometryOptionsFunc function in opts is applied in the order it is provided, with later
// options overriding earlier ones.
func ApplyGeometryOptions(defaults GeometryOptions, opts ...GeometryOptionsFunc) GeometryOptions {
	for _, opt := range opts {
		opt(&defaults)
	}
	return defaults
}
