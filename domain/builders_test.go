package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dltcafe/assessment/fuzzy"
	"github.com/dltcafe/assessment/fuzzy/membership"
)

func TestLabels(t *testing.T) {
	t.Run("valid specs", func(t *testing.T) {
		labels, err := Labels([]LabelSpec{
			{Name: "a", Limits: []float64{0, 0, 1}},
			{Name: "b", Limits: []float64{0, 1, 1}},
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b"}, fuzzy.Names(labels))
	})

	t.Run("invalid limits abort", func(t *testing.T) {
		_, err := Labels([]LabelSpec{
			{Name: "a", Limits: []float64{0, 0, 1}},
			{Name: "b", Limits: []float64{0, 0.1, 0.2, 0.3, 0.4}},
		})
		assert.True(t, errors.Is(err, membership.ErrTooManyPoints))
	})

	t.Run("invalid name aborts", func(t *testing.T) {
		_, err := Labels([]LabelSpec{
			{Name: " a", Limits: []float64{0, 0, 1}},
		})
		assert.True(t, errors.Is(err, fuzzy.ErrNonStandardizedName))
	})
}

func TestNewSymmetric(t *testing.T) {
	tests := []struct {
		name  string
		names []string
		want  string
	}{
		{"empty", nil, "[]"},
		{"single label", []string{"a"}, "[a => (0.00, 0.00, 1.00, 1.00)]"},
		{
			"two labels",
			[]string{"a", "b"},
			"[a => (0.00, 0.00, 1.00), b => (0.00, 1.00, 1.00)]",
		},
		{
			"five labels",
			[]string{"a", "b", "c", "d", "e"},
			"[a => (0.00, 0.00, 0.25), b => (0.00, 0.25, 0.50), c => (0.25, 0.50, 0.75), " +
				"d => (0.50, 0.75, 1.00), e => (0.75, 1.00, 1.00)]",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := NewSymmetric(tt.names)
			require.NoError(t, err)
			assert.Equal(t, tt.want, d.String())
		})
	}

	t.Run("duplicate names", func(t *testing.T) {
		_, err := NewSymmetric([]string{"a", "a", "a"})
		assert.True(t, errors.Is(err, ErrDuplicateLabel))
	})

	t.Run("non-standardized name", func(t *testing.T) {
		_, err := NewSymmetric([]string{"A", "b", "c"})
		assert.True(t, errors.Is(err, fuzzy.ErrNonStandardizedName))
	})
}
