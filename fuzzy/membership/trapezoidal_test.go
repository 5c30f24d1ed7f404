package membership

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTrapezoidal(t *testing.T) {
	t.Run("four limits", func(t *testing.T) {
		tr, err := NewTrapezoidal([]float64{0, 0.1, 0.2, 0.3})
		require.NoError(t, err)
		a, b, c, d := tr.Limits()
		assert.Equal(t, []float64{0, 0.1, 0.2, 0.3}, []float64{a, b, c, d})
		assert.False(t, tr.IsTriangular())
	})

	t.Run("three limits make a triangle", func(t *testing.T) {
		tr, err := NewTrapezoidal([]float64{0, 0.25, 0.5})
		require.NoError(t, err)
		a, b, c, d := tr.Limits()
		assert.Equal(t, b, c)
		assert.Equal(t, 0.0, a)
		assert.Equal(t, 0.5, d)
		assert.True(t, tr.IsTriangular())
	})

	t.Run("too few limits", func(t *testing.T) {
		_, err := NewTrapezoidal([]float64{0, 1})
		assert.True(t, errors.Is(err, ErrNotEnoughPoints))
	})

	t.Run("too many limits", func(t *testing.T) {
		_, err := NewTrapezoidal([]float64{0, 0.1, 0.2, 0.3, 0.4})
		assert.True(t, errors.Is(err, ErrTooManyPoints))
	})

	t.Run("unordered limits", func(t *testing.T) {
		_, err := NewTrapezoidal([]float64{0, 0.3, 0.2, 0.4})
		assert.True(t, errors.Is(err, ErrUnorderedPoints))
	})
}

func TestCenterAndCoverage(t *testing.T) {
	tr := MustNewTrapezoidal([]float64{0, 0.1, 0.2, 0.5})

	b, c := tr.Center()
	assert.Equal(t, 0.1, b)
	assert.Equal(t, 0.2, c)

	a, d := tr.Coverage()
	assert.Equal(t, 0.0, a)
	assert.Equal(t, 0.5, d)
}

func TestMembershipValue(t *testing.T) {
	tr := MustNewTrapezoidal([]float64{0, 0.1, 0.2, 0.5})

	tests := []struct {
		name string
		x    float64
		want float64
	}{
		{"below support", -0.1, 0},
		{"at lower limit", 0, 0},
		{"on rising edge", 0.05, 0.5},
		{"at plateau start", 0.1, 1},
		{"on plateau", 0.15, 1},
		{"at plateau end", 0.2, 1},
		{"on falling edge", 0.25, 5.0 / 6.0},
		{"at upper limit", 0.5, 0},
		{"above support", 0.6, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tr.MembershipValue(tt.x), 1e-9)
		})
	}
}

func TestMaxMin(t *testing.T) {
	tr := MustNewTrapezoidal([]float64{0, 0.1, 0.2, 0.5})

	tests := []struct {
		name     string
		min, max float64
		want     float64
	}{
		{"degenerate at lower limit", 0, 0, 0},
		{"covers plateau", 0, 0.5, 1},
		{"entirely past plateau", 0.3, 0.8, 2.0 / 3.0},
		{"degenerate on falling edge", 0.4, 0.4, 1.0 / 3.0},
		{"entirely before plateau", 0, 0.05, 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tr.MaxMin(tt.min, tt.max), 1e-9)
		})
	}
}

func TestCentroid(t *testing.T) {
	assert.InDelta(t, 0.15, MustNewTrapezoidal([]float64{0, 0.1, 0.2, 0.3}).Centroid(), 1e-9)
	assert.InDelta(t, 0.25, MustNewTrapezoidal([]float64{0, 0.25, 0.5}).Centroid(), 1e-9)
	assert.InDelta(t, 0.5, MustNewTrapezoidal([]float64{0.25, 0.5, 0.75}).Centroid(), 1e-9)
}

func TestIsSymmetrical(t *testing.T) {
	assert.True(t, MustNewTrapezoidal([]float64{0, 0.1, 0.2, 0.3}).IsSymmetrical())
	assert.True(t, MustNewTrapezoidal([]float64{0, 0.25, 0.5}).IsSymmetrical())
	assert.False(t, MustNewTrapezoidal([]float64{0, 0.1, 0.2, 0.5}).IsSymmetrical())
}

func TestIsSymmetricalRespectCenter(t *testing.T) {
	left := MustNewTrapezoidal([]float64{0, 0, 0.25})
	right := MustNewTrapezoidal([]float64{0.75, 1, 1})
	mid := MustNewTrapezoidal([]float64{0.25, 0.5, 0.75})

	assert.True(t, left.IsSymmetricalRespectCenter(right, 0.5))
	assert.True(t, right.IsSymmetricalRespectCenter(left, 0.5))
	assert.True(t, mid.IsSymmetricalRespectCenter(mid, 0.5))
	assert.False(t, left.IsSymmetricalRespectCenter(mid, 0.5))
	assert.False(t, left.IsSymmetricalRespectCenter(right, 0.4))
}

func TestPiecewise(t *testing.T) {
	t.Run("trapezoid", func(t *testing.T) {
		f, err := MustNewTrapezoidal([]float64{0, 0.1, 0.2, 0.3}).Piecewise()
		require.NoError(t, err)
		assert.Equal(t,
			"([0.00, 0.10] => y = 10.00·x + 0.00); "+
				"([0.10, 0.20] => y = 0.00·x + 1.00); "+
				"([0.20, 0.30] => y = -10.00·x + 3.00)",
			f.String())
	})

	t.Run("triangle", func(t *testing.T) {
		f, err := MustNewTrapezoidal([]float64{0, 0.5, 1}).Piecewise()
		require.NoError(t, err)
		assert.Equal(t,
			"([0.00, 0.50] => y = 2.00·x + 0.00); "+
				"([0.50, 1.00] => y = -2.00·x + 2.00)",
			f.String())
	})

	t.Run("vertical edges are skipped", func(t *testing.T) {
		f, err := MustNewTrapezoidal([]float64{0, 0, 1}).Piecewise()
		require.NoError(t, err)
		assert.Equal(t, "([0.00, 1.00] => y = -1.00·x + 1.00)", f.String())
	})
}

func TestPiecewiseAgreesWithMembershipValue(t *testing.T) {
	tr := MustNewTrapezoidal([]float64{0, 0.1, 0.2, 0.5})
	f, err := tr.Piecewise()
	require.NoError(t, err)

	// samples avoid bounds shared by two pieces, where Value may pick either
	for _, x := range []float64{-0.1, 0, 0.05, 0.15, 0.25, 0.35, 0.45, 0.6} {
		assert.InDelta(t, tr.MembershipValue(x), f.Value(x), 1e-3, "x = %v", x)
	}
}

func TestTrapezoidalString(t *testing.T) {
	assert.Equal(t, "(0.00, 0.10, 0.20, 0.30)", MustNewTrapezoidal([]float64{0, 0.1, 0.2, 0.3}).String())
	assert.Equal(t, "(0.00, 0.25, 0.50)", MustNewTrapezoidal([]float64{0, 0.25, 0.5}).String())
}
