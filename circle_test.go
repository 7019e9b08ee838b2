package geom2d

import (
	"math"
	"testing"

	"github.com/anvilgeo/geom2d/options"
	"github.com/stretchr/testify/assert"
)

func TestNewCircle(t *testing.T) {
	c := NewCircle(NewPoint(1.0, 2.0), 3.0)
	assert.Equal(t, NewPoint(1.0, 2.0), c.Center())
	assert.Equal(t, 3.0, c.Radius())
}

func TestCircle_Area(t *testing.T) {
	tests := map[string]struct {
		radius   float64
		expected float64
	}{
		"radius 1": {radius: 1, expected: math.Pi},
		"radius 2": {radius: 2, expected: 4 * math.Pi},
		"radius 0": {radius: 0, expected: 0},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			c := NewCircle(NewPoint(0.0, 0.0), tt.radius)
			assert.InDelta(t, tt.expected, c.Area(), 0.0001)
		})
	}
}

func TestCircle_Circumference(t *testing.T) {
	c := NewCircle(NewPoint(0.0, 0.0), 2.0)
	assert.InDelta(t, 4*math.Pi, c.Circumference(), 0.0001)
}

func TestCircle_AsFloat(t *testing.T) {
	c := NewCircle(NewPoint(1, 2), 3)
	f := c.AsFloat()
	assert.Equal(t, NewPoint(1.0, 2.0), f.Center())
	assert.Equal(t, 3.0, f.Radius())
}

func TestCircle_Translate(t *testing.T) {
	c := NewCircle(NewPoint(1.0, 1.0), 5.0)
	moved := c.Translate(NewVector(2.0, -1.0))
	assert.Equal(t, NewPoint(3.0, 0.0), moved.Center())
	assert.Equal(t, 5.0, moved.Radius())
}

func TestCircle_ContainsPoint(t *testing.T) {
	c := NewCircle(NewPoint(0.0, 0.0), 5.0)

	assert.True(t, c.ContainsPoint(NewPoint(0.0, 0.0)))
	assert.True(t, c.ContainsPoint(NewPoint(3.0, 4.0))) // on boundary, dist == 5
	assert.False(t, c.ContainsPoint(NewPoint(5.0, 5.0)))
}

func TestCircle_StrictlyContainsPoint(t *testing.T) {
	c := NewCircle(NewPoint(0.0, 0.0), 5.0)

	assert.True(t, c.StrictlyContainsPoint(NewPoint(0.0, 0.0)))
	assert.False(t, c.StrictlyContainsPoint(NewPoint(3.0, 4.0))) // exactly on boundary
	assert.False(t, c.StrictlyContainsPoint(NewPoint(5.0, 5.0)))
}

func TestCircle_OnCircle(t *testing.T) {
	c := NewCircle(NewPoint(0.0, 0.0), 5.0)

	assert.True(t, c.OnCircle(NewPoint(3.0, 4.0)))
	assert.False(t, c.OnCircle(NewPoint(0.0, 0.0)))
	assert.False(t, c.OnCircle(NewPoint(5.0, 5.0)))
}

func TestCircle_OnCircle_Epsilon(t *testing.T) {
	c := NewCircle(NewPoint(0.0, 0.0), 5.0)
	almostOnBoundary := NewPoint(3.0000001, 4.0)

	assert.False(t, c.OnCircle(almostOnBoundary))
	assert.True(t, c.OnCircle(almostOnBoundary, options.WithEpsilon(1e-6)))
}

func TestCircle_String(t *testing.T) {
	c := NewCircle(NewPoint(1.0, 2.0), 3.0)
	assert.Contains(t, c.String(), "Circle")
}
