package valuation

import (
	"fmt"

	"github.com/dltcafe/assessment/domain"
)

// Unified is a valuation expressed as membership degrees over the labels
// of a BLTS domain. It is the interchange representation the other
// valuation types unify into.
type Unified struct {
	domain   *domain.Qualitative
	measures []float64
}

// NewUnified creates a unified valuation. The domain must be a BLTS
// domain, and measures must hold one value in [0, 1] per label.
func NewUnified(d *domain.Qualitative, measures []float64) (*Unified, error) {
	if !d.IsBLTS() {
		return nil, fmt.Errorf("%w: %s", ErrNonBLTSDomain, d)
	}
	if len(measures) != d.Cardinality() {
		return nil, fmt.Errorf("%w: got %d measures for cardinality %d",
			ErrMeasuresCardinality, len(measures), d.Cardinality())
	}
	for _, m := range measures {
		if m < 0 || m > 1 {
			return nil, fmt.Errorf("%w: %v", ErrMeasureValue, m)
		}
	}
	return &Unified{domain: d, measures: append([]float64(nil), measures...)}, nil
}

// Domain returns the BLTS domain.
func (u *Unified) Domain() *domain.Qualitative { return u.domain }

// Measures returns a copy of the membership degrees.
func (u *Unified) Measures() []float64 {
	return append([]float64(nil), u.measures...)
}

// Chi returns the measure-weighted mean label index, or 0 when every
// measure is 0.
func (u *Unified) Chi() float64 {
	var numerator, denominator float64
	for i, m := range u.measures {
		numerator += m * float64(i)
		denominator += m
	}
	if denominator <= 0 {
		return 0
	}
	return numerator / denominator
}
