package valuation

import (
	"fmt"
	"math"

	"github.com/dltcafe/assessment/domain"
	"github.com/dltcafe/assessment/fuzzy"
	"github.com/dltcafe/assessment/mathutil"
)

// TwoTuple is a linguistic 2-tuple valuation: a label plus a symbolic
// translation alpha in [-0.5, 0.5) that shifts the assessment towards a
// neighboring label.
type TwoTuple struct {
	domain *domain.Qualitative
	index  int
	alpha  float64
}

// NewTwoTupleByIndex creates a two-tuple valuation from a label index and
// a symbolic translation. Alpha is rounded to 5 decimal places and must
// not point below the first label or above the last one.
func NewTwoTupleByIndex(d *domain.Qualitative, index int, alpha float64) (*TwoTuple, error) {
	alpha = mathutil.Round(alpha, 5)
	if index < 0 || index > d.Cardinality()-1 {
		return nil, fmt.Errorf("%w: %d (domain cardinality %d)",
			ErrInvalidLabelIndex, index, d.Cardinality())
	}
	if alpha < -0.5 || alpha >= 0.5 {
		return nil, fmt.Errorf("%w: %.2f not in [-0.5, 0.5)",
			ErrInvalidSymbolicTranslation, alpha)
	}
	if index == 0 && alpha < 0 {
		return nil, fmt.Errorf("%w: %.2f on first label",
			ErrInvalidSymbolicTranslation, alpha)
	}
	if index == d.Cardinality()-1 && alpha > 0 {
		return nil, fmt.Errorf("%w: %.2f on last label",
			ErrInvalidSymbolicTranslation, alpha)
	}
	return &TwoTuple{domain: d, index: index, alpha: alpha}, nil
}

// NewTwoTupleByName creates a two-tuple valuation from a label name and a
// symbolic translation.
func NewTwoTupleByName(d *domain.Qualitative, name string, alpha float64) (*TwoTuple, error) {
	index, ok := d.LabelIndex(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q (domain labels are %v)",
			ErrInvalidLabelName, name, d.LabelNames())
	}
	return NewTwoTupleByIndex(d, index, alpha)
}

// Delta builds the two-tuple closest to the symbolic aggregation value
// beta: the label at round(beta) translated by the remainder.
func Delta(d *domain.Qualitative, beta float64) (*TwoTuple, error) {
	index := int(math.Round(beta))
	return NewTwoTupleByIndex(d, index, beta-float64(index))
}

// InverseDelta returns the symbolic aggregation value index + alpha.
func (tt *TwoTuple) InverseDelta() float64 {
	return float64(tt.index) + tt.alpha
}

// Index returns the label index.
func (tt *TwoTuple) Index() int { return tt.index }

// Alpha returns the symbolic translation.
func (tt *TwoTuple) Alpha() float64 { return tt.alpha }

// Label returns the base label.
func (tt *TwoTuple) Label() fuzzy.Label {
	l, _ := tt.domain.LabelByIndex(tt.index)
	return l
}

// Domain returns the qualitative domain.
func (tt *TwoTuple) Domain() *domain.Qualitative { return tt.domain }

// UnificationInDomain projects the valuation into another qualitative
// domain by rescaling its symbolic aggregation value, splitting membership
// between the nearest label and its neighbor. The target domain must be a
// BLTS domain.
func (tt *TwoTuple) UnificationInDomain(d *domain.Qualitative) (*Unified, error) {
	beta := tt.InverseDelta() * float64(d.Cardinality()-1) /
		float64(tt.domain.Cardinality()-1)
	index := int(math.Round(beta))
	alpha := mathutil.Round(beta-float64(index), 5)

	measures := make([]float64, d.Cardinality())
	measures[index] = 1 - math.Abs(alpha)
	if alpha > 0 {
		measures[index+1] = math.Abs(alpha)
	} else if alpha < 0 {
		measures[index-1] = math.Abs(alpha)
	}
	return NewUnified(d, measures)
}

// TransformInDomain rescales the valuation into another qualitative
// domain, which must be a BLTS domain.
func (tt *TwoTuple) TransformInDomain(d *domain.Qualitative) (*TwoTuple, error) {
	if !d.IsBLTS() {
		return nil, fmt.Errorf("%w: %s", ErrNonBLTSDomain, d)
	}
	return Delta(d, tt.InverseDelta()*float64(d.Cardinality()-1)/
		float64(tt.domain.Cardinality()-1))
}

// TwoTupleFromUnified builds the two-tuple at the Chi measure of a
// unified valuation.
func TwoTupleFromUnified(u *Unified) (*TwoTuple, error) {
	return Delta(u.Domain(), u.Chi())
}

// TwoTupleFromSingle lifts a single valuation to a two-tuple with zero
// translation.
func TwoTupleFromSingle(s *Single) (*TwoTuple, error) {
	return NewTwoTupleByIndex(s.Domain(), s.Index(), 0)
}

// UnifiedFromTwoTuple expresses a two-tuple as membership split between
// its label and the neighbor its translation points at. The domain must
// be a BLTS domain.
func UnifiedFromTwoTuple(tt *TwoTuple) (*Unified, error) {
	measures := make([]float64, tt.domain.Cardinality())
	measures[tt.index] = mathutil.Round(1-math.Abs(tt.alpha), 5)
	if tt.alpha > 0 {
		measures[tt.index+1] = math.Abs(tt.alpha)
	} else if tt.alpha < 0 {
		measures[tt.index-1] = math.Abs(tt.alpha)
	}
	return NewUnified(tt.domain, measures)
}
