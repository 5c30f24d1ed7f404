// Package fuzzy defines fuzzy sets as named membership functions. A Label
// ties a standardized name to a trapezoidal membership function and is the
// building block of qualitative domains.
package fuzzy

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dltcafe/assessment/fuzzy/membership"
)

// Errors returned by NewLabel.
var (
	ErrNonStandardizedName = errors.New("fuzzy: label name is not standardized")
	ErrEmptyName           = errors.New("fuzzy: label name is empty")
)

// Label is a fuzzy set: a standardized name bound to a membership
// function.
type Label struct {
	name       string
	membership membership.Trapezoidal
}

// StandardizeName lowercases a name and strips surrounding whitespace.
func StandardizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// IsStandardizedName reports whether name is already in standardized
// form.
func IsStandardizedName(name string) bool {
	return name == StandardizeName(name)
}

// NewLabel creates a label. The name must be non-empty and already in
// standardized form.
func NewLabel(name string, m membership.Trapezoidal) (Label, error) {
	if !IsStandardizedName(name) {
		return Label{}, fmt.Errorf("%w: %q", ErrNonStandardizedName, name)
	}
	if name == "" {
		return Label{}, ErrEmptyName
	}
	return Label{name: name, membership: m}, nil
}

// MustNewLabel is like NewLabel but panics on an invalid name.
func MustNewLabel(name string, m membership.Trapezoidal) Label {
	l, err := NewLabel(name, m)
	if err != nil {
		panic(err)
	}
	return l
}

// Name returns the label name.
func (l Label) Name() string { return l.name }

// Membership returns the membership function.
func (l Label) Membership() membership.Trapezoidal { return l.membership }

// String renders the label as "name => (membership)".
func (l Label) String() string {
	return fmt.Sprintf("%s => %s", l.name, l.membership)
}

// Names returns the names of the given labels, in order.
func Names(labels []Label) []string {
	names := make([]string, len(labels))
	for i, l := range labels {
		names[i] = l.name
	}
	return names
}
