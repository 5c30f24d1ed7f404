// Package mathutil provides fixed-decimal float helpers shared by the
// assessment packages: approximate equality, decimal rounding, and linear
// range transformation.
//
// Two distinct equality flavors exist on purpose. ApproxEqual rounds both
// operands before comparing; ApproxEqualTrunc truncates them. Piecewise
// function simplification relies on the truncating flavor at 3 decimals,
// while domain predicates rely on the rounding flavor at 5 decimals.
// Collapsing them would change predicate outcomes on boundary cases.
package mathutil

import "math"

// Number covers the numeric types assessments are expressed in.
type Number interface {
	~int | ~int32 | ~int64 | ~float32 | ~float64
}

// ApproxEqual reports whether a and b are equal once both are rounded to
// the given number of decimal places.
func ApproxEqual(a, b float64, decimals int) bool {
	factor := math.Pow(10, float64(decimals))
	return int64(math.Round(a*factor)) == int64(math.Round(b*factor))
}

// ApproxEqualTrunc reports whether a and b are equal once both are
// truncated to the given number of decimal places.
func ApproxEqualTrunc(a, b float64, decimals int) bool {
	factor := math.Pow(10, float64(decimals))
	return int64(math.Trunc(a*factor)) == int64(math.Trunc(b*factor))
}

// Round rounds v to the given number of decimal places. With zero decimals
// the value is truncated. Results whose magnitude does not exceed one unit
// in the last requested place collapse to zero.
func Round(v float64, decimals int) float64 {
	if decimals == 0 {
		return math.Trunc(v)
	}
	pow := math.Pow(10, float64(decimals))
	result := math.Round(v*pow) / pow
	if math.Abs(result) <= 1.0/pow {
		return 0
	}
	return result
}

// TransformRange maps v from the range [oldInf, oldSup] onto the range
// [newInf, newSup]. Integer types use integer arithmetic, so results
// truncate toward zero.
func TransformRange[T Number](v, oldInf, oldSup, newInf, newSup T) T {
	return (v-oldInf)*(newSup-newInf)/(oldSup-oldInf) + newInf
}
