package domain

import (
	"github.com/dltcafe/assessment/interval"
	"github.com/dltcafe/assessment/mathutil"
)

// Quantitative is a numeric domain bounded by a closed interval.
type Quantitative[T mathutil.Number] struct {
	bounds interval.Interval[T]
}

// NewQuantitative creates a quantitative domain over [inf, sup]. It
// returns interval.ErrInvalidRange when inf exceeds sup.
func NewQuantitative[T mathutil.Number](inf, sup T) (*Quantitative[T], error) {
	bounds, err := interval.New(inf, sup)
	if err != nil {
		return nil, err
	}
	return &Quantitative[T]{bounds: bounds}, nil
}

// MustNewQuantitative is like NewQuantitative but panics on invalid
// bounds.
func MustNewQuantitative[T mathutil.Number](inf, sup T) *Quantitative[T] {
	d, err := NewQuantitative(inf, sup)
	if err != nil {
		panic(err)
	}
	return d
}

// Inf returns the lower bound.
func (d *Quantitative[T]) Inf() T { return d.bounds.Inf() }

// Sup returns the upper bound.
func (d *Quantitative[T]) Sup() T { return d.bounds.Sup() }

// ValidAssessment reports whether v lies within the domain.
func (d *Quantitative[T]) ValidAssessment(v T) bool {
	return v >= d.bounds.Inf() && v <= d.bounds.Sup()
}

// String renders the domain as its interval.
func (d *Quantitative[T]) String() string {
	return d.bounds.String()
}
