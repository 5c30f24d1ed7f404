// Package membership implements membership functions for fuzzy sets.
// Trapezoidal is currently the only shape; triangular functions are the
// degenerate trapezoid whose plateau collapses to a point.
package membership

import (
	"errors"
	"fmt"
	"math"

	"github.com/dltcafe/assessment/fuzzy/membership/piecewise"
	"github.com/dltcafe/assessment/mathutil"
)

// Errors returned by NewTrapezoidal.
var (
	ErrNotEnoughPoints = errors.New("membership: at least 3 points required")
	ErrTooManyPoints   = errors.New("membership: at most 4 points allowed")
	ErrUnorderedPoints = errors.New("membership: points must be sorted in ascending order")
)

// Trapezoidal is a trapezoidal membership function defined by the limits
// a <= b <= c <= d. Membership rises linearly over [a, b], holds 1 over
// [b, c] and falls linearly over [c, d].
type Trapezoidal struct {
	a float64
	b float64
	c float64
	d float64
}

// NewTrapezoidal creates a trapezoidal membership function from 3 or 4
// ascending limits. With 3 limits the result is triangular.
func NewTrapezoidal(limits []float64) (Trapezoidal, error) {
	if len(limits) < 3 {
		return Trapezoidal{}, fmt.Errorf("%w: got %d", ErrNotEnoughPoints, len(limits))
	}
	if len(limits) > 4 {
		return Trapezoidal{}, fmt.Errorf("%w: got %d", ErrTooManyPoints, len(limits))
	}
	for i := 1; i < len(limits); i++ {
		if limits[i] < limits[i-1] {
			return Trapezoidal{}, fmt.Errorf("%w: %v", ErrUnorderedPoints, limits)
		}
	}
	return Trapezoidal{
		a: limits[0],
		b: limits[1],
		c: limits[len(limits)-2],
		d: limits[len(limits)-1],
	}, nil
}

// MustNewTrapezoidal is like NewTrapezoidal but panics on invalid limits.
func MustNewTrapezoidal(limits []float64) Trapezoidal {
	t, err := NewTrapezoidal(limits)
	if err != nil {
		panic(err)
	}
	return t
}

// Limits returns the limits a, b, c, d.
func (t Trapezoidal) Limits() (a, b, c, d float64) {
	return t.a, t.b, t.c, t.d
}

// Center returns the plateau [b, c].
func (t Trapezoidal) Center() (b, c float64) {
	return t.b, t.c
}

// Coverage returns the support [a, d].
func (t Trapezoidal) Coverage() (a, d float64) {
	return t.a, t.d
}

// MembershipValue returns the degree to which x belongs to the set.
func (t Trapezoidal) MembershipValue(x float64) float64 {
	switch {
	case x <= t.a || x >= t.d:
		return 0
	case x >= t.b && x <= t.c:
		return 1
	case x < t.b:
		return (x - t.a) / (t.b - t.a)
	default:
		return (x - t.d) / (t.c - t.d)
	}
}

// MaxMin returns the maximum membership value reached over [min, max].
func (t Trapezoidal) MaxMin(min, max float64) float64 {
	if max >= t.b && min <= t.c {
		return 1
	}
	if max < t.b {
		return t.MembershipValue(max)
	}
	return t.MembershipValue(min)
}

// Centroid returns the x coordinate of the area centroid.
func (t Trapezoidal) Centroid() float64 {
	centroidLeft := (t.a + 2*t.b) / 3
	centroidCenter := (t.b + t.c) / 2
	centroidRight := (2*t.c + t.d) / 3

	areaLeft := (t.b - t.a) / 2
	areaCenter := t.c - t.b
	areaRight := (t.d - t.c) / 2

	return (centroidLeft*areaLeft + centroidCenter*areaCenter + centroidRight*areaRight) /
		(areaLeft + areaCenter + areaRight)
}

// IsTriangular reports whether the plateau collapses to a point.
func (t Trapezoidal) IsTriangular() bool {
	return t.b == t.c
}

// IsSymmetrical reports whether the rise and fall slopes mirror each
// other, within a hundredth.
func (t Trapezoidal) IsSymmetrical() bool {
	return math.Abs((t.b-t.a)-(t.d-t.c)) < 0.01
}

// IsSymmetricalRespectCenter reports whether other mirrors t across the
// vertical line x = center, with limits compared at 5 decimal places.
func (t Trapezoidal) IsSymmetricalRespectCenter(other Trapezoidal, center float64) bool {
	reflection := 2 * center
	return mathutil.ApproxEqual(reflection-t.d, other.a, 5) &&
		mathutil.ApproxEqual(reflection-t.c, other.b, 5) &&
		mathutil.ApproxEqual(reflection-t.b, other.c, 5) &&
		mathutil.ApproxEqual(reflection-t.a, other.d, 5)
}

// Piecewise returns the membership function as a piecewise linear
// function over its support.
func (t Trapezoidal) Piecewise() (*piecewise.Function, error) {
	f := piecewise.NewFunction()
	if err := addRamp(f, t.a, t.b); err != nil {
		return nil, err
	}
	if err := addRamp(f, t.d, t.c); err != nil {
		return nil, err
	}
	if t.b != t.c {
		if err := f.Add(t.b, t.c, piecewise.NewLinear(0, 1)); err != nil {
			return nil, err
		}
	}
	return f, nil
}

// addRamp inserts the line running from (from, 0) to (to, 1), skipping
// vertical edges.
func addRamp(f *piecewise.Function, from, to float64) error {
	if from == to {
		return nil
	}
	slope := 1 / (to - from)
	return f.Add(math.Min(from, to), math.Max(from, to), piecewise.NewLinear(slope, -slope*from))
}

// String renders the limits with 2 decimal places, as 3 values for
// triangular functions and 4 otherwise.
func (t Trapezoidal) String() string {
	if t.IsTriangular() {
		return fmt.Sprintf("(%.2f, %.2f, %.2f)", t.a, t.b, t.d)
	}
	return fmt.Sprintf("(%.2f, %.2f, %.2f, %.2f)", t.a, t.b, t.c, t.d)
}
