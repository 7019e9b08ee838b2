package geom2d

import (
	"testing"

	"github.com/anvilgeo/geom2d/options"
	"github.com/stretchr/testify/assert"
)

func TestNewLineSegment(t *testing.T) {
	l := NewLineSegment(NewPoint(0.0, 0.0), NewPoint(4.0, 0.0))
	assert.Equal(t, LineSegment, l.Kind())
	start, ok := l.StartPoint()
	assert.True(t, ok)
	assert.Equal(t, NewPoint(0.0, 0.0), start)
	end, ok := l.EndPoint()
	assert.True(t, ok)
	assert.Equal(t, NewPoint(4.0, 0.0), end)
}

func TestNewLineRay(t *testing.T) {
	l := NewLineRay(NewPoint(1.0, 1.0), NewVector(1.0, 0.0))
	assert.Equal(t, LineRay, l.Kind())
	start, ok := l.StartPoint()
	assert.True(t, ok)
	assert.Equal(t, NewPoint(1.0, 1.0), start)
	_, ok = l.EndPoint()
	assert.False(t, ok)
}

func TestNewInfiniteLine(t *testing.T) {
	l := NewInfiniteLine(NewPoint(0.0, 0.0), NewVector(1.0, 1.0))
	assert.Equal(t, LineInfinite, l.Kind())
	_, ok := l.StartPoint()
	assert.False(t, ok)
	_, ok = l.EndPoint()
	assert.False(t, ok)
}

func TestLine_IsPoint(t *testing.T) {
	degenerate := NewLineSegment(NewPoint(2.0, 2.0), NewPoint(2.0, 2.0))
	assert.True(t, degenerate.IsPoint())

	ordinary := NewLineSegment(NewPoint(0.0, 0.0), NewPoint(1.0, 0.0))
	assert.False(t, ordinary.IsPoint())
}

func TestLineKind_String(t *testing.T) {
	assert.Equal(t, "Segment", LineSegment.String())
	assert.Equal(t, "Ray", LineRay.String())
	assert.Equal(t, "Infinite", LineInfinite.String())
}

func TestLine_Lerp(t *testing.T) {
	l := NewLineSegment(NewPoint(0.0, 0.0), NewPoint(4.0, 4.0))
	assert.Equal(t, Point[float64]{x: 2, y: 2}, l.Lerp(0.5))
	assert.Equal(t, Point[float64]{x: 8, y: 8}, l.Lerp(2)) // beyond the segment's own domain
}

// TestLine_LerpFactorRoundTrip is testable property 2 from the spec: for every line and every
// scalar t in its domain, lerpFactor(lerp(t)) == t.
func TestLine_LerpFactorRoundTrip(t *testing.T) {
	lines := []Line[float64]{
		NewLineSegment(NewPoint(0.0, 0.0), NewPoint(4.0, 4.0)),
		NewLineRay(NewPoint(1.0, 1.0), NewVector(2.0, -1.0)),
		NewInfiniteLine(NewPoint(-3.0, 2.0), NewVector(1.0, 5.0)),
	}
	factors := []float64{0, 0.25, 0.5, 1, 2, -1}

	for _, l := range lines {
		for _, factor := range factors {
			p := l.Lerp(factor)
			got, onLine := l.LerpFactor(p, options.WithEpsilon(1e-9))
			assert.True(t, onLine)
			assert.InDelta(t, factor, got, 1e-6)
		}
	}
}

func TestLine_LerpFactor_OffLine(t *testing.T) {
	l := NewLineSegment(NewPoint(0.0, 0.0), NewPoint(4.0, 0.0))
	_, onLine := l.LerpFactor(NewPoint(2.0, 1.0))
	assert.False(t, onLine)
}

func TestLine_LerpFactor_DegenerateLine(t *testing.T) {
	l := NewLineSegment(NewPoint(2.0, 2.0), NewPoint(2.0, 2.0))

	factor, onLine := l.LerpFactor(NewPoint(2.0, 2.0))
	assert.True(t, onLine)
	assert.Equal(t, 0.0, factor)

	_, onLine = l.LerpFactor(NewPoint(3.0, 3.0))
	assert.False(t, onLine)
}

func TestLine_IsPointOnLine_Segment(t *testing.T) {
	l := NewLineSegment(NewPoint(0.0, 0.0), NewPoint(4.0, 0.0))

	assert.True(t, l.IsPointOnLine(NewPoint(2.0, 0.0)))
	assert.True(t, l.IsPointOnLine(NewPoint(0.0, 0.0)))  // start
	assert.True(t, l.IsPointOnLine(NewPoint(4.0, 0.0)))  // end
	assert.False(t, l.IsPointOnLine(NewPoint(5.0, 0.0))) // beyond the end
	assert.False(t, l.IsPointOnLine(NewPoint(-1.0, 0.0)))
}

func TestLine_IsPointOnLine_Ray(t *testing.T) {
	l := NewLineRay(NewPoint(0.0, 0.0), NewVector(1.0, 0.0))

	assert.True(t, l.IsPointOnLine(NewPoint(0.0, 0.0)))
	assert.True(t, l.IsPointOnLine(NewPoint(100.0, 0.0)))
	assert.False(t, l.IsPointOnLine(NewPoint(-1.0, 0.0)))
}

func TestLine_IsPointOnLine_Infinite(t *testing.T) {
	l := NewInfiniteLine(NewPoint(0.0, 0.0), NewVector(1.0, 0.0))

	assert.True(t, l.IsPointOnLine(NewPoint(-100.0, 0.0)))
	assert.True(t, l.IsPointOnLine(NewPoint(100.0, 0.0)))
	assert.False(t, l.IsPointOnLine(NewPoint(0.0, 1.0)))
}

func TestLine_ParamDomain(t *testing.T) {
	seg := NewLineSegment(NewPoint(0.0, 0.0), NewPoint(1.0, 0.0)).ParamDomain(0)
	assert.True(t, seg.Contains(0))
	assert.True(t, seg.Contains(1))
	assert.False(t, seg.Contains(1.5))

	ray := NewLineRay(NewPoint(0.0, 0.0), NewVector(1.0, 0.0)).ParamDomain(0)
	assert.True(t, ray.Contains(1000))
	assert.False(t, ray.Contains(-0.5))

	inf := NewInfiniteLine(NewPoint(0.0, 0.0), NewVector(1.0, 0.0)).ParamDomain(0)
	assert.True(t, inf.Contains(-1000))
	assert.True(t, inf.Contains(1000))
}

func TestLine_String(t *testing.T) {
	l := NewLineSegment(NewPoint(0.0, 0.0), NewPoint(1.0, 1.0))
	assert.Contains(t, l.String(), "Segment")
}

func TestParallelVectors(t *testing.T) {
	assert.True(t, parallelVectors(NewVector(2.0, 0.0), NewVector(-4.0, 0.0), 1e-9))
	assert.False(t, parallelVectors(NewVector(1.0, 0.0), NewVector(0.0, 1.0), 1e-9))
}

func TestSameDirectionVectors(t *testing.T) {
	assert.True(t, sameDirectionVectors(NewVector(1.0, 0.0), NewVector(2.0, 0.0), 1e-9))
	assert.False(t, sameDirectionVectors(NewVector(1.0, 0.0), NewVector(-2.0, 0.0), 1e-9))
}

func TestCoincidentLines(t *testing.T) {
	a := NewLineSegment(NewPoint(0.0, 0.0), NewPoint(4.0, 0.0))
	b := NewLineSegment(NewPoint(2.0, 0.0), NewPoint(6.0, 0.0))
	assert.True(t, coincidentLines(a, b, 1e-9))

	c := NewLineSegment(NewPoint(0.0, 1.0), NewPoint(4.0, 1.0))
	assert.False(t, coincidentLines(a, c, 1e-9))
}
