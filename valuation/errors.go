package valuation

import "errors"

// Errors shared by the valuation types.
var (
	// ErrValueOutsideDomain indicates a numeric or interval value outside
	// its quantitative domain.
	ErrValueOutsideDomain = errors.New("valuation: value outside domain")

	// ErrInvalidValueRange indicates an interval valuation whose lower
	// value exceeds its upper value.
	ErrInvalidValueRange = errors.New("valuation: lower value greater than upper value")

	// ErrInvalidLabelIndex indicates a label index outside the domain.
	ErrInvalidLabelIndex = errors.New("valuation: invalid label index")

	// ErrInvalidLabelName indicates a label name missing from the domain.
	ErrInvalidLabelName = errors.New("valuation: invalid label name")

	// ErrInvalidSymbolicTranslation indicates a two-tuple symbolic
	// translation outside [-0.5, 0.5), or one that would point past the
	// first or last label.
	ErrInvalidSymbolicTranslation = errors.New("valuation: invalid symbolic translation")

	// ErrInvalidRelationRange indicates a hesitant Between relation whose
	// lower index is not below its upper index.
	ErrInvalidRelationRange = errors.New("valuation: invalid relation range")

	// ErrNonBLTSDomain indicates an operation that requires a BLTS domain
	// was given a domain that is not one.
	ErrNonBLTSDomain = errors.New("valuation: domain is not a BLTS domain")

	// ErrMeasuresCardinality indicates a measure vector whose length does
	// not match the domain cardinality.
	ErrMeasuresCardinality = errors.New("valuation: measures do not match domain cardinality")

	// ErrMeasureValue indicates a measure outside [0, 1].
	ErrMeasureValue = errors.New("valuation: measure outside [0, 1]")
)
