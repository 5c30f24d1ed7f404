package domain

import (
	"fmt"

	"github.com/dltcafe/assessment/fuzzy"
	"github.com/dltcafe/assessment/fuzzy/membership"
	"github.com/dltcafe/assessment/mathutil"
)

// LabelSpec pairs a label name with the limits of its trapezoidal
// membership function.
type LabelSpec struct {
	Name   string
	Limits []float64
}

// Labels builds fuzzy labels from the given specs, stopping at the first
// invalid one.
func Labels(specs []LabelSpec) ([]fuzzy.Label, error) {
	labels := make([]fuzzy.Label, 0, len(specs))
	for _, spec := range specs {
		m, err := membership.NewTrapezoidal(spec.Limits)
		if err != nil {
			return nil, fmt.Errorf("label %q: %w", spec.Name, err)
		}
		l, err := fuzzy.NewLabel(spec.Name, m)
		if err != nil {
			return nil, err
		}
		labels = append(labels, l)
	}
	return labels, nil
}

// NewQualitativeFromSpecs builds a qualitative domain directly from label
// specs.
func NewQualitativeFromSpecs(specs []LabelSpec) (*Qualitative, error) {
	labels, err := Labels(specs)
	if err != nil {
		return nil, err
	}
	return NewQualitative(labels)
}

// NewSymmetric builds a qualitative domain of evenly spaced triangular
// labels covering the unit interval, one per name. A single name yields
// one label covering the whole interval; for three or more names the
// result is a BLTS domain.
func NewSymmetric(names []string) (*Qualitative, error) {
	switch len(names) {
	case 0:
		return NewQualitative(nil)
	case 1:
		return NewQualitativeFromSpecs([]LabelSpec{
			{Name: names[0], Limits: []float64{0, 0, 1, 1}},
		})
	}

	values := make([]float64, 0, len(names)+2)
	values = append(values, 0)
	denominator := float64(len(names) - 1)
	for i := range names {
		values = append(values, mathutil.Round(float64(i)/denominator, 5))
	}
	values = append(values, 1)

	specs := make([]LabelSpec, len(names))
	for i, name := range names {
		specs[i] = LabelSpec{Name: name, Limits: []float64{values[i], values[i+1], values[i+2]}}
	}
	return NewQualitativeFromSpecs(specs)
}
