package valuation

import (
	"fmt"

	"github.com/dltcafe/assessment/domain"
	"github.com/dltcafe/assessment/mathutil"
)

// Interval is a range of plausible values within a quantitative domain.
type Interval[T mathutil.Number] struct {
	domain *domain.Quantitative[T]
	min    T
	max    T
}

// NewInterval creates an interval valuation. Both bounds must lie within
// the domain and min must not exceed max.
func NewInterval[T mathutil.Number](d *domain.Quantitative[T], min, max T) (*Interval[T], error) {
	if min > max {
		return nil, fmt.Errorf("%w: [%v, %v]", ErrInvalidValueRange, min, max)
	}
	if !d.ValidAssessment(min) || !d.ValidAssessment(max) {
		return nil, fmt.Errorf("%w: [%v, %v] not in %s", ErrValueOutsideDomain, min, max, d)
	}
	return &Interval[T]{domain: d, min: min, max: max}, nil
}

// Value returns the bounds of the valuation.
func (iv *Interval[T]) Value() (min, max T) { return iv.min, iv.max }

// Domain returns the quantitative domain.
func (iv *Interval[T]) Domain() *domain.Quantitative[T] { return iv.domain }

// Resume returns the midpoint of the bounds. Integer types truncate.
func (iv *Interval[T]) Resume() T {
	return (iv.min + iv.max) / 2
}

// Normalize maps the valuation onto the unit domain [0, 1].
func (iv *Interval[T]) Normalize() *Interval[float64] {
	inf := float64(iv.domain.Inf())
	sup := float64(iv.domain.Sup())
	span := sup - inf
	return &Interval[float64]{
		domain: domain.MustNewQuantitative(0.0, 1.0),
		min:    (float64(iv.min) - inf) / span,
		max:    (float64(iv.max) - inf) / span,
	}
}

// Unification projects the valuation into a qualitative domain as the
// maximal membership each label attains over the normalized range. The
// domain must be a BLTS domain.
func (iv *Interval[T]) Unification(d *domain.Qualitative) (*Unified, error) {
	min, max := iv.Normalize().Value()
	measures := make([]float64, d.Cardinality())
	for i, l := range d.Labels() {
		measures[i] = l.Membership().MaxMin(min, max)
	}
	return NewUnified(d, measures)
}

// TransformInDomain maps both bounds linearly onto another quantitative
// domain.
func (iv *Interval[T]) TransformInDomain(d *domain.Quantitative[T]) *Interval[T] {
	return &Interval[T]{
		domain: d,
		min:    mathutil.TransformRange(iv.min, iv.domain.Inf(), iv.domain.Sup(), d.Inf(), d.Sup()),
		max:    mathutil.TransformRange(iv.max, iv.domain.Inf(), iv.domain.Sup(), d.Inf(), d.Sup()),
	}
}

// IntervalFromNumeric lifts a numeric valuation to the degenerate
// interval at its value.
func IntervalFromNumeric[T mathutil.Number](n *Numeric[T]) (*Interval[T], error) {
	return NewInterval(n.Domain(), n.Value(), n.Value())
}
