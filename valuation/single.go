package valuation

import (
	"fmt"
	"math"

	"github.com/dltcafe/assessment/domain"
	"github.com/dltcafe/assessment/fuzzy"
)

// Single is a valuation given as exactly one label of a qualitative
// domain.
type Single struct {
	domain *domain.Qualitative
	index  int
}

// NewSingleByIndex creates a single valuation from a label index.
func NewSingleByIndex(d *domain.Qualitative, index int) (*Single, error) {
	if index < 0 || index >= d.Cardinality() {
		return nil, fmt.Errorf("%w: %d (domain cardinality %d)",
			ErrInvalidLabelIndex, index, d.Cardinality())
	}
	return &Single{domain: d, index: index}, nil
}

// NewSingleByName creates a single valuation from a label name.
func NewSingleByName(d *domain.Qualitative, name string) (*Single, error) {
	index, ok := d.LabelIndex(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q (domain labels are %v)",
			ErrInvalidLabelName, name, d.LabelNames())
	}
	return &Single{domain: d, index: index}, nil
}

// Index returns the label index.
func (s *Single) Index() int { return s.index }

// Label returns the assessed label.
func (s *Single) Label() fuzzy.Label {
	l, _ := s.domain.LabelByIndex(s.index)
	return l
}

// Domain returns the qualitative domain.
func (s *Single) Domain() *domain.Qualitative { return s.domain }

// UnificationInDomain projects the valuation into another qualitative
// domain by rescaling the label index, assigning full membership to the
// resulting label. The target domain must be a BLTS domain.
func (s *Single) UnificationInDomain(d *domain.Qualitative) (*Unified, error) {
	measures := make([]float64, d.Cardinality())
	measures[s.index*(d.Cardinality()-1)/(s.domain.Cardinality()-1)] = 1
	return NewUnified(d, measures)
}

// TransformInDomain rescales the valuation into another qualitative
// domain, which must be a BLTS domain.
func (s *Single) TransformInDomain(d *domain.Qualitative) (*Single, error) {
	if !d.IsBLTS() {
		return nil, fmt.Errorf("%w: %s", ErrNonBLTSDomain, d)
	}
	return NewSingleByIndex(d, s.index*(d.Cardinality()-1)/(s.domain.Cardinality()-1))
}

// SingleFromUnified picks the label nearest the Chi measure of a unified
// valuation.
func SingleFromUnified(u *Unified) (*Single, error) {
	return NewSingleByIndex(u.Domain(), int(math.Round(u.Chi())))
}

// SingleFromTwoTuple drops the symbolic translation of a two-tuple
// valuation.
func SingleFromTwoTuple(tt *TwoTuple) (*Single, error) {
	return NewSingleByIndex(tt.Domain(), tt.Index())
}

// UnifiedFromSingle expresses a single valuation as full membership of
// its label. The domain must be a BLTS domain.
func UnifiedFromSingle(s *Single) (*Unified, error) {
	measures := make([]float64, s.domain.Cardinality())
	measures[s.index] = 1
	return NewUnified(s.domain, measures)
}
