package valuation

import (
	"fmt"

	"github.com/dltcafe/assessment/domain"
)

// RelationKind identifies the comparative form of a hesitant valuation.
type RelationKind int

// Relation kinds supported by Hesitant.
const (
	// SingleValue asserts exactly the label at the index.
	SingleValue RelationKind = iota
	// AtLeast asserts the label at the index or any above it.
	AtLeast
	// AtMost asserts the label at the index or any below it.
	AtMost
	// Between asserts any label between the lower and upper indexes.
	Between
	// LowerThan asserts any label strictly below the index.
	LowerThan
	// GreaterThan asserts any label strictly above the index.
	GreaterThan
)

// Hesitant is a valuation given as a comparative relation over the labels
// of a qualitative domain.
type Hesitant struct {
	domain *domain.Qualitative
	kind   RelationKind
	lower  int
	upper  int
}

// NewHesitant creates a hesitant valuation from a relation over a single
// index. Between relations are created with NewHesitantBetween.
func NewHesitant(d *domain.Qualitative, kind RelationKind, index int) (*Hesitant, error) {
	switch kind {
	case SingleValue, AtLeast, AtMost:
		if index < 0 || index >= d.Cardinality() {
			return nil, indexError(d, index)
		}
	case LowerThan:
		if index <= 0 || index >= d.Cardinality() {
			return nil, indexError(d, index)
		}
	case GreaterThan:
		if index < 0 || index >= d.Cardinality()-1 {
			return nil, indexError(d, index)
		}
	default:
		return nil, fmt.Errorf("%w: relation kind %d is not index-based",
			ErrInvalidRelationRange, kind)
	}
	return &Hesitant{domain: d, kind: kind, lower: index, upper: index}, nil
}

// NewHesitantBetween creates a hesitant valuation covering the labels
// between lower and upper, inclusive.
func NewHesitantBetween(d *domain.Qualitative, lower, upper int) (*Hesitant, error) {
	if lower >= upper {
		return nil, fmt.Errorf("%w: [%d-%d]", ErrInvalidRelationRange, lower, upper)
	}
	if lower < 0 || upper >= d.Cardinality() {
		return nil, indexError(d, upper)
	}
	return &Hesitant{domain: d, kind: Between, lower: lower, upper: upper}, nil
}

func indexError(d *domain.Qualitative, index int) error {
	return fmt.Errorf("%w: %d (domain cardinality %d)",
		ErrInvalidLabelIndex, index, d.Cardinality())
}

// Kind returns the relation kind.
func (h *Hesitant) Kind() RelationKind { return h.kind }

// Domain returns the qualitative domain.
func (h *Hesitant) Domain() *domain.Qualitative { return h.domain }

// Indexes returns the inclusive range of label indexes the relation
// covers.
func (h *Hesitant) Indexes() (lower, upper int) {
	switch h.kind {
	case AtLeast:
		return h.lower, h.domain.Cardinality() - 1
	case AtMost:
		return 0, h.upper
	case LowerThan:
		return 0, h.lower - 1
	case GreaterThan:
		return h.lower + 1, h.domain.Cardinality() - 1
	default:
		return h.lower, h.upper
	}
}

// Labels returns the names of the first and last labels the relation
// covers.
func (h *Hesitant) Labels() (lower, upper string) {
	lo, hi := h.Indexes()
	l, _ := h.domain.LabelByIndex(lo)
	u, _ := h.domain.LabelByIndex(hi)
	return l.Name(), u.Name()
}
