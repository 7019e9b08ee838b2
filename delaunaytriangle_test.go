package geom2d

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDelaunayTriangle(t *testing.T) {
	tri := NewTriangle(NewPoint(2.0, 0.0), NewPoint(-2.0, 0.0), NewPoint(0.0, 2.0))
	dt, ok := newDelaunayTriangle(tri)
	require.True(t, ok)

	assert.InDelta(t, 0.0, dt.Circumcenter().X(), 1e-9)
	assert.InDelta(t, 0.0, dt.Circumcenter().Y(), 1e-9)
	assert.InDelta(t, 2.0, dt.CircumcircleRadius(), 1e-9)
}

func TestNewDelaunayTriangle_Degenerate(t *testing.T) {
	line := NewTriangle(NewPoint(0.0, 0.0), NewPoint(1.0, 1.0), NewPoint(2.0, 2.0))
	_, ok := newDelaunayTriangle(line)
	assert.False(t, ok)
}

func TestDelaunayTriangle_FindVertex(t *testing.T) {
	tri := NewTriangle(NewPoint(0.0, 0.0), NewPoint(4.0, 0.0), NewPoint(0.0, 4.0))
	dt, ok := newDelaunayTriangle(tri)
	require.True(t, ok)

	idx, found := dt.FindVertex(NewPoint(4.0, 0.0))
	assert.True(t, found)
	assert.Equal(t, 1, idx)

	_, found = dt.FindVertex(NewPoint(100.0, 100.0))
	assert.False(t, found)
}

func TestDelaunayTriangle_IsPointInCircumcircle(t *testing.T) {
	tri := NewTriangle(NewPoint(2.0, 0.0), NewPoint(-2.0, 0.0), NewPoint(0.0, 2.0))
	dt, ok := newDelaunayTriangle(tri)
	require.True(t, ok)

	assert.True(t, dt.isPointInCircumcircle(NewPoint(0.0, 0.0), 1e-9))  // center, well inside
	assert.True(t, dt.isPointInCircumcircle(NewPoint(2.0, 0.0), 1e-9))  // on the boundary
	assert.False(t, dt.isPointInCircumcircle(NewPoint(10.0, 10.0), 1e-9))
}

func TestDelaunayTriangle_HasSettled(t *testing.T) {
	tri := NewTriangle(NewPoint(2.0, 0.0), NewPoint(-2.0, 0.0), NewPoint(0.0, 2.0))
	dt, ok := newDelaunayTriangle(tri)
	require.True(t, ok)

	// circumcenter (0,0), radius 2: rightmost extent is x=2.
	assert.False(t, dt.hasSettled(NewPoint(2.0, 0.0), 1e-9))  // exactly at the extent: not yet settled
	assert.True(t, dt.hasSettled(NewPoint(2.1, 0.0), 1e-9))   // strictly past it
	assert.False(t, dt.hasSettled(NewPoint(1.0, 0.0), 1e-9))
}

func TestDelaunayTriangle_RightmostExtent(t *testing.T) {
	tri := NewTriangle(NewPoint(2.0, 0.0), NewPoint(-2.0, 0.0), NewPoint(0.0, 2.0))
	dt, ok := newDelaunayTriangle(tri)
	require.True(t, ok)
	assert.InDelta(t, 2.0, dt.rightmostExtent(), 1e-9)
}
