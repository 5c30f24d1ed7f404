// Package interval implements bounded closed intervals over numeric types,
// with the intersection and difference operations used to maintain
// piecewise linear functions.
package interval

import (
	"errors"
	"fmt"

	"github.com/dltcafe/assessment/mathutil"
)

// ErrInvalidRange indicates that an interval's lower bound exceeds its
// upper bound.
var ErrInvalidRange = errors.New("interval: lower bound greater than upper bound")

// Interval is a closed interval [inf, sup]. The zero value is the
// degenerate interval [0, 0].
type Interval[T mathutil.Number] struct {
	inf T
	sup T
}

// New creates an interval with the given bounds. It returns ErrInvalidRange
// when inf exceeds sup.
func New[T mathutil.Number](inf, sup T) (Interval[T], error) {
	if inf > sup {
		return Interval[T]{}, fmt.Errorf("%w: [%v, %v]", ErrInvalidRange, inf, sup)
	}
	return Interval[T]{inf: inf, sup: sup}, nil
}

// MustNew is like New but panics on invalid bounds. It is intended for
// bounds already known to be ordered.
func MustNew[T mathutil.Number](inf, sup T) Interval[T] {
	i, err := New(inf, sup)
	if err != nil {
		panic(err)
	}
	return i
}

// Inf returns the lower bound.
func (i Interval[T]) Inf() T { return i.inf }

// Sup returns the upper bound.
func (i Interval[T]) Sup() T { return i.sup }

// IsDegenerate reports whether the interval collapses to a single point.
func (i Interval[T]) IsDegenerate() bool { return i.inf == i.sup }

// Intersection returns the overlap between i and other. Degenerate
// intervals never intersect anything, themselves included. The second
// return value reports whether an overlap exists.
func (i Interval[T]) Intersection(other Interval[T]) (Interval[T], bool) {
	if i.IsDegenerate() || other.IsDegenerate() {
		return Interval[T]{}, false
	}
	if i.inf >= other.inf {
		if i.sup <= other.sup {
			return i, true
		}
		if i.inf < other.sup {
			return Interval[T]{inf: i.inf, sup: other.sup}, true
		}
		return Interval[T]{}, false
	}
	if other.sup <= i.sup {
		return other, true
	}
	if other.inf < i.sup {
		return Interval[T]{inf: other.inf, sup: i.sup}, true
	}
	return Interval[T]{}, false
}

// Difference returns the parts of i not covered by other, as zero, one or
// two intervals.
func (i Interval[T]) Difference(other Interval[T]) []Interval[T] {
	if i.inf >= other.inf {
		if i.inf >= other.sup {
			return []Interval[T]{i}
		}
		if i.sup > other.sup {
			return []Interval[T]{{inf: other.sup, sup: i.sup}}
		}
		return nil
	}
	if i.sup > other.inf {
		result := []Interval[T]{{inf: i.inf, sup: other.inf}}
		if i.sup > other.sup {
			result = append(result, Interval[T]{inf: other.sup, sup: i.sup})
		}
		return result
	}
	return []Interval[T]{i}
}

// String renders the interval as "[inf, sup]".
func (i Interval[T]) String() string {
	return fmt.Sprintf("[%v, %v]", i.inf, i.sup)
}
