package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dltcafe/assessment/fuzzy"
)

// ErrDuplicateLabel indicates that two labels in a qualitative domain
// share a name.
var ErrDuplicateLabel = errors.New("domain: duplicate label name")

// Qualitative is an ordered set of fuzzy labels with unique names.
type Qualitative struct {
	labels []fuzzy.Label
}

// NewQualitative creates a qualitative domain from the given labels. It
// returns ErrDuplicateLabel when two labels share a name. An empty label
// set is valid.
func NewQualitative(labels []fuzzy.Label) (*Qualitative, error) {
	seen := make(map[string]bool, len(labels))
	for _, l := range labels {
		if seen[l.Name()] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateLabel, l.Name())
		}
		seen[l.Name()] = true
	}
	return &Qualitative{labels: append([]fuzzy.Label(nil), labels...)}, nil
}

// MustNewQualitative is like NewQualitative but panics on duplicates.
func MustNewQualitative(labels []fuzzy.Label) *Qualitative {
	d, err := NewQualitative(labels)
	if err != nil {
		panic(err)
	}
	return d
}

// Cardinality returns the number of labels.
func (d *Qualitative) Cardinality() int { return len(d.labels) }

// ContainsLabel reports whether a label with the given name exists.
func (d *Qualitative) ContainsLabel(name string) bool {
	_, ok := d.LabelIndex(name)
	return ok
}

// LabelIndex returns the position of the label with the given name.
func (d *Qualitative) LabelIndex(name string) (int, bool) {
	for i, l := range d.labels {
		if l.Name() == name {
			return i, true
		}
	}
	return 0, false
}

// LabelByIndex returns the label at the given position.
func (d *Qualitative) LabelByIndex(index int) (fuzzy.Label, bool) {
	if index < 0 || index >= len(d.labels) {
		return fuzzy.Label{}, false
	}
	return d.labels[index], true
}

// LabelByName returns the label with the given name.
func (d *Qualitative) LabelByName(name string) (fuzzy.Label, bool) {
	if i, ok := d.LabelIndex(name); ok {
		return d.labels[i], true
	}
	return fuzzy.Label{}, false
}

// LabelNames returns the label names in order.
func (d *Qualitative) LabelNames() []string {
	return fuzzy.Names(d.labels)
}

// Labels returns a copy of the labels in order.
func (d *Qualitative) Labels() []fuzzy.Label {
	return append([]fuzzy.Label(nil), d.labels...)
}

// String renders the labels as "[label, label, ...]".
func (d *Qualitative) String() string {
	parts := make([]string, len(d.labels))
	for i, l := range d.labels {
		parts[i] = l.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
