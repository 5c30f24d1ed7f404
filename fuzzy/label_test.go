package fuzzy

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dltcafe/assessment/fuzzy/membership"
)

func triangle(t *testing.T, a, b, c float64) membership.Trapezoidal {
	t.Helper()
	m, err := membership.NewTrapezoidal([]float64{a, b, c})
	require.NoError(t, err)
	return m
}

func TestStandardizeName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"high", "high"},
		{"High", "high"},
		{"  very low\t", "very low"},
		{"", ""},
		{"   ", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, StandardizeName(tt.in))
		assert.Equal(t, tt.in == tt.want, IsStandardizedName(tt.in))
	}
}

func TestNewLabel(t *testing.T) {
	m := triangle(t, 0, 0.5, 1)

	t.Run("valid", func(t *testing.T) {
		l, err := NewLabel("high", m)
		require.NoError(t, err)
		assert.Equal(t, "high", l.Name())
		assert.Equal(t, m, l.Membership())
	})

	t.Run("uppercase rejected", func(t *testing.T) {
		_, err := NewLabel("High", m)
		assert.True(t, errors.Is(err, ErrNonStandardizedName))
	})

	t.Run("surrounding space rejected", func(t *testing.T) {
		_, err := NewLabel(" high ", m)
		assert.True(t, errors.Is(err, ErrNonStandardizedName))
	})

	t.Run("empty rejected", func(t *testing.T) {
		_, err := NewLabel("", m)
		assert.True(t, errors.Is(err, ErrEmptyName))
	})

	t.Run("blank is non-standardized, not empty", func(t *testing.T) {
		_, err := NewLabel(" ", m)
		assert.True(t, errors.Is(err, ErrNonStandardizedName))
	})
}

func TestLabelString(t *testing.T) {
	l := MustNewLabel("mid", triangle(t, 0.25, 0.5, 0.75))
	assert.Equal(t, "mid => (0.25, 0.50, 0.75)", l.String())
}

func TestNames(t *testing.T) {
	labels := []Label{
		MustNewLabel("low", triangle(t, 0, 0, 0.5)),
		MustNewLabel("high", triangle(t, 0.5, 1, 1)),
	}
	assert.Equal(t, []string{"low", "high"}, Names(labels))
	assert.Empty(t, Names(nil))
}
