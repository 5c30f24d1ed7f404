// Package piecewise implements piecewise linear functions over bounded
// intervals. Functions are built by the additive insertion of linear
// pieces: overlapping regions accumulate the sum of their pieces, and
// adjacent pieces carrying the same line are merged away.
package piecewise

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/dltcafe/assessment/interval"
)

// ErrInvalidPieceRange indicates that a piece was given an inverted
// interval.
var ErrInvalidPieceRange = errors.New("piecewise: invalid piece range")

// boundScale quantizes float bounds into integer map keys so that pieces
// whose bounds agree to 5 decimal places share a key.
const boundScale = 1e5

// Function is a piecewise linear function. The zero value is not usable;
// create one with NewFunction.
type Function struct {
	pieces map[interval.Interval[int64]]LinearFunction
}

// NewFunction creates an empty piecewise linear function.
func NewFunction() *Function {
	return &Function{pieces: make(map[interval.Interval[int64]]LinearFunction)}
}

// Piece is one segment of a piecewise linear function, exposed with its
// original float bounds.
type Piece struct {
	Inf      float64
	Sup      float64
	Function LinearFunction
}

func quantize(v float64) int64 {
	return int64(math.Round(v * boundScale))
}

func pieceKey(inf, sup float64) (interval.Interval[int64], error) {
	key, err := interval.New(quantize(inf), quantize(sup))
	if err != nil {
		return interval.Interval[int64]{}, fmt.Errorf("%w: [%v, %v]", ErrInvalidPieceRange, inf, sup)
	}
	return key, nil
}

// Add inserts fn over [inf, sup]. Where the new piece overlaps existing
// pieces the functions are summed; elsewhere the new piece is kept as
// given. Adjacent pieces that end up carrying the same line are merged.
func (f *Function) Add(inf, sup float64, fn LinearFunction) error {
	added, err := pieceKey(inf, sup)
	if err != nil {
		return err
	}

	differences := []interval.Interval[int64]{added}
	updated := make(map[interval.Interval[int64]]LinearFunction, len(f.pieces)+1)

	for piece, pieceFn := range f.pieces {
		overlap, ok := piece.Intersection(added)
		if !ok {
			updated[piece] = pieceFn
			continue
		}
		var remaining []interval.Interval[int64]
		for _, d := range differences {
			remaining = append(remaining, d.Difference(piece)...)
		}
		differences = remaining
		for _, uncovered := range piece.Difference(overlap) {
			updated[uncovered] = pieceFn
		}
		updated[overlap] = pieceFn.Sum(fn)
	}
	for _, d := range differences {
		updated[d] = fn
	}

	f.pieces = updated
	f.simplify()
	return nil
}

// simplify repeatedly merges pairs of adjacent pieces whose coefficients
// agree to 3 truncated decimal places, until no merge applies.
func (f *Function) simplify() {
	for {
		toRemove := make(map[interval.Interval[int64]]bool)
		toAdd := make(map[interval.Interval[int64]]LinearFunction)

		for a, fa := range f.pieces {
			for b, fb := range f.pieces {
				if a == b || toRemove[a] || toRemove[b] {
					continue
				}
				if a.Inf() != b.Sup() && a.Sup() != a.Inf() {
					continue
				}
				if !linearApproxEqual(fa, fb) {
					continue
				}
				merged := interval.MustNew(min(a.Inf(), b.Inf()), max(a.Sup(), b.Sup()))
				toRemove[a] = true
				toRemove[b] = true
				toAdd[merged] = fa
			}
		}

		if len(toRemove) == 0 {
			return
		}
		for piece := range toRemove {
			delete(f.pieces, piece)
		}
		for piece, fn := range toAdd {
			f.pieces[piece] = fn
		}
	}
}

// Merge adds every piece of other into f and returns f.
func (f *Function) Merge(other *Function) (*Function, error) {
	for piece, fn := range other.pieces {
		inf := float64(piece.Inf()) / boundScale
		sup := float64(piece.Sup()) / boundScale
		if err := f.Add(inf, sup, fn); err != nil {
			return nil, err
		}
	}
	return f, nil
}

// Pieces returns the segments of the function ordered by lower bound.
func (f *Function) Pieces() []Piece {
	result := make([]Piece, 0, len(f.pieces))
	for piece, fn := range f.pieces {
		result = append(result, Piece{
			Inf:      float64(piece.Inf()) / boundScale,
			Sup:      float64(piece.Sup()) / boundScale,
			Function: fn,
		})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Inf < result[j].Inf })
	return result
}

// Value evaluates the function at x. Points outside every piece yield 0.
func (f *Function) Value(x float64) float64 {
	q := quantize(x)
	for piece, fn := range f.pieces {
		if q >= piece.Inf() && q <= piece.Sup() {
			return fn.At(x)
		}
	}
	return 0
}

// String renders the pieces ordered by lower bound, each as
// "([inf, sup] => y = slope·x + intercept)" with 2 decimal places.
func (f *Function) String() string {
	pieces := f.Pieces()
	parts := make([]string, len(pieces))
	for i, p := range pieces {
		parts[i] = fmt.Sprintf("([%.2f, %.2f] => y = %.2f·x + %.2f)",
			p.Inf, p.Sup, p.Function.Slope(), p.Function.Intercept())
	}
	return strings.Join(parts, "; ")
}
