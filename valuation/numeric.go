package valuation

import (
	"fmt"

	"github.com/dltcafe/assessment/domain"
	"github.com/dltcafe/assessment/mathutil"
)

// Numeric is a single numeric value within a quantitative domain.
type Numeric[T mathutil.Number] struct {
	domain *domain.Quantitative[T]
	value  T
}

// NewNumeric creates a numeric valuation. It returns
// ErrValueOutsideDomain when value lies outside the domain.
func NewNumeric[T mathutil.Number](d *domain.Quantitative[T], value T) (*Numeric[T], error) {
	if !d.ValidAssessment(value) {
		return nil, fmt.Errorf("%w: %v not in %s", ErrValueOutsideDomain, value, d)
	}
	return &Numeric[T]{domain: d, value: value}, nil
}

// Value returns the assessed value.
func (n *Numeric[T]) Value() T { return n.value }

// Domain returns the quantitative domain.
func (n *Numeric[T]) Domain() *domain.Quantitative[T] { return n.domain }

// Normalize maps the valuation onto the unit domain [0, 1].
func (n *Numeric[T]) Normalize() *Numeric[float64] {
	inf := float64(n.domain.Inf())
	sup := float64(n.domain.Sup())
	return &Numeric[float64]{
		domain: domain.MustNewQuantitative(0.0, 1.0),
		value:  (float64(n.value) - inf) / (sup - inf),
	}
}

// Unification projects the valuation into a qualitative domain as the
// membership degree of each label at the normalized value. The domain
// must be a BLTS domain.
func (n *Numeric[T]) Unification(d *domain.Qualitative) (*Unified, error) {
	value := n.Normalize().Value()
	measures := make([]float64, d.Cardinality())
	for i, l := range d.Labels() {
		measures[i] = l.Membership().MembershipValue(value)
	}
	return NewUnified(d, measures)
}

// TransformInDomain maps the valuation linearly onto another quantitative
// domain.
func (n *Numeric[T]) TransformInDomain(d *domain.Quantitative[T]) *Numeric[T] {
	return &Numeric[T]{
		domain: d,
		value: mathutil.TransformRange(n.value,
			n.domain.Inf(), n.domain.Sup(), d.Inf(), d.Sup()),
	}
}

// NumericFromInterval collapses an interval valuation to its resume
// value.
func NumericFromInterval[T mathutil.Number](iv *Interval[T]) (*Numeric[T], error) {
	return NewNumeric(iv.Domain(), iv.Resume())
}
