package options

// WithBorderOffset returns a [GeometryOptionsFunc] that tells VoronoiTessellate to derive its
// clipping border by inflating the bounding box of the input sites symmetrically by offset on
// every side. This is the simplest way to bound the unbounded tiles at the convex hull: grow
// the box just enough to give outer tiles somewhere finite to terminate.
//
// A negative offset is treated as 0.
func WithBorderOffset(offset float64) GeometryOptionsFunc {
	return func(opts *GeometryOptions) {
		if offset < 0 {
			offset = 0
		}
		opts.BorderOffset = offset
		opts.HasBorderOffset = true
		opts.HasBorderRect = false
	}
}

// WithBorderRect returns a [GeometryOptionsFunc] that tells VoronoiTessellate to clip every tile
// against the given rectangle exactly, overriding whatever WithBorderOffset would have derived.
// The rectangle is normalized, so left/top/right/bottom need not already be ordered.
func WithBorderRect(left, top, right, bottom float64) GeometryOptionsFunc {
	return func(opts *GeometryOptions) {
		if left > right {
			left, right = right, left
		}
		if top > bottom {
			top, bottom = bottom, top
		}
		opts.Rect = BorderRect{Left: left, Top: top, Right: right, Bottom: bottom}
		opts.HasBorderRect = true
		opts.HasBorderOffset = false
	}
}

// WithParallelTiles returns a [GeometryOptionsFunc] that lets VoronoiTessellate build per-seed
// tiles on a worker pool once the shared Delaunay triangulation and edge map are ready. The
// result is identical either way; this only affects wall-clock time on multi-core machines with
// many sites.
func WithParallelTiles(enabled bool) GeometryOptionsFunc {
	return func(opts *GeometryOptions) {
		opts.ParallelTiles = enabled
	}
}
