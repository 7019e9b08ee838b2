package geom2d

import (
	"testing"

	"github.com/anvilgeo/geom2d/options"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTriangulateThenVoronoiTessellate exercises the package's two top-level entry points
// together, over a small point set with no degeneracies, as a sanity check that they compose:
// every Voronoi tile produced should be non-empty and contain its own seed.
func TestTriangulateThenVoronoiTessellate(t *testing.T) {
	points := []Point[float64]{
		NewPoint(0.0, 0.0),
		NewPoint(10.0, 0.0),
		NewPoint(5.0, 10.0),
		NewPoint(5.0, 3.0),
	}

	epsilon := options.WithEpsilon(1e-9)

	triangles, err := Triangulate(points, epsilon)
	require.NoError(t, err)
	assert.NotEmpty(t, triangles)

	plain := make([]Triangle[float64], len(triangles))
	for i, dt := range triangles {
		plain[i] = dt.Triangle()
	}
	assert.True(t, SatisfiesDelaunayCondition(plain, epsilon))

	tiles, err := VoronoiTessellate(points, epsilon)
	require.NoError(t, err)
	require.Len(t, tiles, len(points))

	for _, tile := range tiles {
		assert.False(t, tile.Outline().IsEmpty())
		assert.True(t, tile.Outline().ContainsPoint(tile.Seed(), epsilon))
	}
}

func TestTriangulateTooFewPoints(t *testing.T) {
	_, err := Triangulate([]Point[float64]{NewPoint(0.0, 0.0), NewPoint(1.0, 1.0)})
	assert.ErrorIs(t, err, ErrTooFewPoints)
}

func TestVoronoiTessellateDuplicateSample(t *testing.T) {
	_, err := VoronoiTessellate([]Point[float64]{
		NewPoint(0.0, 0.0),
		NewPoint(0.0, 0.0),
		NewPoint(1.0, 1.0),
	})
	assert.ErrorIs(t, err, ErrDuplicateSample)
}
