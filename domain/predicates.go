package domain

import (
	"github.com/dltcafe/assessment/fuzzy/membership/piecewise"
	"github.com/dltcafe/assessment/mathutil"
)

// IsOdd reports whether the domain has an odd number of labels.
func (d *Qualitative) IsOdd() bool {
	return len(d.labels)%2 == 1
}

// IsTriangular reports whether every label has a triangular membership
// function.
func (d *Qualitative) IsTriangular() bool {
	for _, l := range d.labels {
		if !l.Membership().IsTriangular() {
			return false
		}
	}
	return true
}

// IsFuzzyPartition reports whether the labels form a fuzzy partition in
// the sense of Ruspini: memberships sum to 1 over the whole unit
// interval. An empty domain is not a partition.
func (d *Qualitative) IsFuzzyPartition() bool {
	if len(d.labels) == 0 {
		return false
	}
	sum := piecewise.NewFunction()
	for _, l := range d.labels {
		lf, err := l.Membership().Piecewise()
		if err != nil {
			return false
		}
		if _, err := sum.Merge(lf); err != nil {
			return false
		}
	}
	pieces := sum.Pieces()
	if len(pieces) != 1 {
		return false
	}
	p := pieces[0]
	return mathutil.ApproxEqual(p.Inf, 0, 5) &&
		mathutil.ApproxEqual(p.Sup, 1, 5) &&
		mathutil.ApproxEqual(p.Function.Slope(), 0, 5) &&
		mathutil.ApproxEqual(p.Function.Intercept(), 1, 5)
}

// IsSymmetrical reports whether the labels mirror each other across the
// centroid of the central label, or the midpoint of the two central
// centroids when the cardinality is even. An empty domain is not
// symmetrical.
func (d *Qualitative) IsSymmetrical() bool {
	n := len(d.labels)
	if n == 0 {
		return false
	}

	var center float64
	if n%2 == 1 {
		center = d.labels[n/2].Membership().Centroid()
	} else {
		center = (d.labels[n/2-1].Membership().Centroid() +
			d.labels[n/2].Membership().Centroid()) / 2
	}

	for i := 0; i < (n-1)/2+1; i++ {
		if !d.labels[i].Membership().IsSymmetricalRespectCenter(d.labels[n-1-i].Membership(), center) {
			return false
		}
	}
	return true
}

// IsUniform reports whether consecutive label midpoints are equally
// spaced, with spacings compared at 5 decimal places. Domains with at
// most two labels are trivially uniform.
func (d *Qualitative) IsUniform() bool {
	if len(d.labels) <= 2 {
		return true
	}
	mids := make([]float64, len(d.labels))
	for i, l := range d.labels {
		_, b, c, _ := l.Membership().Limits()
		mids[i] = (b + c) / 2
	}
	step := mids[1] - mids[0]
	for i := 2; i < len(mids); i++ {
		if !mathutil.ApproxEqual(mids[i]-mids[i-1], step, 5) {
			return false
		}
	}
	return true
}

// IsTOR reports whether the domain is Triangular, Odd and Ruspini: an
// odd number of triangular labels forming a fuzzy partition.
func (d *Qualitative) IsTOR() bool {
	return d.IsOdd() && d.IsTriangular() && d.IsFuzzyPartition()
}

// IsBLTS reports whether the domain is a basic linguistic term set: a
// symmetrical and uniform TOR.
func (d *Qualitative) IsBLTS() bool {
	return d.IsTOR() && d.IsSymmetrical() && d.IsUniform()
}
