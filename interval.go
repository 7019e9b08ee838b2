// File interval.go defines Bound and Interval, which together describe the domain of a
// parameterized Line (see line.go): a Segment's domain is the closed interval [0,1], a Ray's is
// [0,+Inf), and an Infinite line's is (-Inf,+Inf). Earlier designs encoded the unbounded ends with
// sentinel values (math.Inf or a very large finite number); Bound instead makes "this side has no
// finite bound" a distinct, inspectable case, so callers can never mistake a genuine large finite
// bound for an unbounded one.

package geom2d

import (
	"fmt"

	"github.com/anvilgeo/geom2d/numeric"
	"github.com/anvilgeo/geom2d/types"
)

// BoundKind identifies which case a Bound holds.
type BoundKind uint8

const (
	// BoundFinite indicates the Bound has a concrete Value.
	BoundFinite = BoundKind(iota)
	// BoundNegInfinity indicates the Bound extends to negative infinity.
	BoundNegInfinity
	// BoundPosInfinity indicates the Bound extends to positive infinity.
	BoundPosInfinity
)

// Bound represents one endpoint of an Interval: either a concrete finite value, or an
// unbounded extension toward negative or positive infinity.
type Bound[T types.Float] struct {
	kind  BoundKind
	value T
}

// FiniteBound returns a Bound holding the concrete value v.
func FiniteBound[T types.Float](v T) Bound[T] {
	return Bound[T]{kind: BoundFinite, value: v}
}

// NegInfinityBound returns a Bound that extends to negative infinity.
func NegInfinityBound[T types.Float]() Bound[T] {
	return Bound[T]{kind: BoundNegInfinity}
}

// PosInfinityBound returns a Bound that extends to positive infinity.
func PosInfinityBound[T types.Float]() Bound[T] {
	return Bound[T]{kind: BoundPosInfinity}
}

// Kind reports which case b holds.
func (b Bound[T]) Kind() BoundKind { return b.kind }

// Value returns b's concrete value. Only meaningful when b.Kind() == BoundFinite.
func (b Bound[T]) Value() T { return b.value }

// String returns a string representation of the bound.
func (b Bound[T]) String() string {
	switch b.kind {
	case BoundNegInfinity:
		return "-Inf"
	case BoundPosInfinity:
		return "+Inf"
	default:
		return fmt.Sprintf("%v", b.value)
	}
}

// boundLess reports whether a occurs strictly before b on the number line.
func boundLess[T types.Float](a, b Bound[T], epsilon float64) bool {
	switch {
	case a.kind == BoundNegInfinity:
		return b.kind != BoundNegInfinity
	case b.kind == BoundPosInfinity:
		return a.kind != BoundPosInfinity
	case a.kind == BoundPosInfinity || b.kind == BoundNegInfinity:
		return false
	default:
		return numeric.FloatLessThan(float64(a.value), float64(b.value), epsilon)
	}
}

// boundLessEqual reports whether a occurs at or before b on the number line.
func boundLessEqual[T types.Float](a, b Bound[T], epsilon float64) bool {
	return !boundLess(b, a, epsilon)
}

// boundMin returns whichever of a, b occurs first on the number line.
func boundMin[T types.Float](a, b Bound[T], epsilon float64) Bound[T] {
	if boundLessEqual(a, b, epsilon) {
		return a
	}
	return b
}

// boundMax returns whichever of a, b occurs last on the number line.
func boundMax[T types.Float](a, b Bound[T], epsilon float64) Bound[T] {
	if boundLessEqual(a, b, epsilon) {
		return b
	}
	return a
}

// Interval represents a mathematical interval over T, with each end independently open or
// closed, and independently finite or unbounded via Bound.
type Interval[T types.Float] struct {
	start, end         Bound[T]
	leftOpen, rightOpen bool
	epsilon            float64
}

// NewInterval constructs a closed interval [start, end].
func NewInterval[T types.Float](start, end Bound[T], epsilon float64) Interval[T] {
	return Interval[T]{start: start, end: end, epsilon: epsilon}
}

// NewOpenInterval constructs an open interval (start, end).
func NewOpenInterval[T types.Float](start, end Bound[T], epsilon float64) Interval[T] {
	return Interval[T]{start: start, end: end, leftOpen: true, rightOpen: true, epsilon: epsilon}
}

// Start returns the interval's left endpoint.
func (iv Interval[T]) Start() Bound[T] { return iv.start }

// End returns the interval's right endpoint.
func (iv Interval[T]) End() Bound[T] { return iv.end }

// IsEmpty reports whether the interval contains no points.
//
// A closed interval is never empty. An open or half-open interval with finite, equal endpoints
// is empty, since both the sole candidate point is excluded by at least one open side.
func (iv Interval[T]) IsEmpty() bool {
	if !iv.leftOpen && !iv.rightOpen {
		return false
	}
	if iv.start.kind != BoundFinite || iv.end.kind != BoundFinite {
		return false
	}
	return numeric.FloatEquals(float64(iv.start.value), float64(iv.end.value), iv.epsilon)
}

// Contains reports whether val lies within the interval, honoring each side's openness.
func (iv Interval[T]) Contains(val T) bool {
	v := FiniteBound(val)
	leftOK := boundLessEqual(iv.start, v, iv.epsilon)
	if iv.leftOpen {
		leftOK = boundLess(iv.start, v, iv.epsilon)
	}
	rightOK := boundLessEqual(v, iv.end, iv.epsilon)
	if iv.rightOpen {
		rightOK = boundLess(v, iv.end, iv.epsilon)
	}
	return leftOK && rightOK
}

// IntersectIntervals returns the overlap of a and b. The boolean result is false if they are
// disjoint, in which case the returned Interval is the zero value and should be ignored.
func IntersectIntervals[T types.Float](a, b Interval[T]) (Interval[T], bool) {
	keepOrder := boundLessEqual(a.start, b.start, a.epsilon)
	first, second := a, b
	if !keepOrder {
		first, second = b, a
	}

	if boundLess(first.end, second.start, a.epsilon) {
		return Interval[T]{}, false
	}
	if boundLessEqual(second.end, first.end, a.epsilon) {
		return second, true
	}

	return Interval[T]{
		start:     second.start,
		end:       first.end,
		leftOpen:  second.leftOpen,
		rightOpen: first.rightOpen,
		epsilon:   a.epsilon,
	}, true
}

// UniteIntervals returns the smallest interval spanning both a and b.
func UniteIntervals[T types.Float](a, b Interval[T]) Interval[T] {
	left, leftOpen := a.start, a.leftOpen
	if boundLess(b.start, a.start, a.epsilon) {
		left, leftOpen = b.start, b.leftOpen
	}
	right, rightOpen := a.end, a.rightOpen
	if boundLess(a.end, b.end, a.epsilon) {
		right, rightOpen = b.end, b.rightOpen
	}
	return Interval[T]{start: left, end: right, leftOpen: leftOpen, rightOpen: rightOpen, epsilon: a.epsilon}
}

// String returns a string representation of the interval, e.g. "[0, 1]" or "(0, +Inf)".
func (iv Interval[T]) String() string {
	leftBracket, rightBracket := "[", "]"
	if iv.leftOpen {
		leftBracket = "("
	}
	if iv.rightOpen {
		rightBracket = ")"
	}
	return fmt.Sprintf("%s%v, %v%s", leftBracket, iv.start, iv.end, rightBracket)
}
