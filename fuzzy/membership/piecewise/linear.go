package piecewise

import (
	"github.com/dltcafe/assessment/mathutil"
)

// LinearFunction is a line y = slope·x + intercept. Coefficients are
// rounded to 5 decimal places on construction.
type LinearFunction struct {
	slope     float64
	intercept float64
}

// NewLinear creates a linear function from its slope and intercept.
func NewLinear(slope, intercept float64) LinearFunction {
	return LinearFunction{
		slope:     mathutil.Round(slope, 5),
		intercept: mathutil.Round(intercept, 5),
	}
}

// Slope returns the slope coefficient.
func (f LinearFunction) Slope() float64 { return f.slope }

// Intercept returns the intercept coefficient.
func (f LinearFunction) Intercept() float64 { return f.intercept }

// At evaluates the function at x.
func (f LinearFunction) At(x float64) float64 {
	return f.slope*x + f.intercept
}

// Sum returns the component-wise sum of f and other.
func (f LinearFunction) Sum(other LinearFunction) LinearFunction {
	return NewLinear(f.slope+other.slope, f.intercept+other.intercept)
}

// linearApproxEqual reports whether two lines agree once both coefficients
// are truncated to 3 decimal places.
func linearApproxEqual(a, b LinearFunction) bool {
	return mathutil.ApproxEqualTrunc(a.slope, b.slope, 3) &&
		mathutil.ApproxEqualTrunc(a.intercept, b.intercept, 3)
}
