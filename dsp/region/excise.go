package region

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-spectral/dsp/units"
)

// snapTolerance absorbs float noise left by unit conversion so that a bound
// sitting exactly on a sample boundary is not pushed across it by ceil/floor.
const snapTolerance = 1e-9

// IndexMapper maps a coordinate on the spectral axis to a, possibly
// fractional, sample index.
type IndexMapper interface {
	CoordinateToIndex(coord units.Quantity) (float64, error)
}

// Signal is a sampled signal that can be restricted to an index range.
// Slice returns samples start..stop-1 as a new value of the same kind.
type Signal[S any] interface {
	IndexMapper
	Slice(start, stop int) (S, error)
}

// Excise returns the samples of s that fall inside r.
//
// The kept index range is [ceil(lower), floor(upper)) after mapping both
// bounds through s. ErrEmptyRegion is returned when that range is empty.
// Errors from the coordinate transform or from Slice are returned unchanged.
// Neither r nor s is modified.
func Excise[S Signal[S]](r Region, s S) (S, error) {
	start, stop, err := IndexRange(r, s)
	if err != nil {
		var zero S
		return zero, err
	}
	return s.Slice(start, stop)
}

// IndexRange returns the half-open index range [start, stop) that [Excise]
// would slice. start is never negative.
func IndexRange(r Region, m IndexMapper) (start, stop int, err error) {
	if !r.lower.HasUnit() || !r.upper.HasUnit() {
		return 0, 0, fmt.Errorf("%w: %v", ErrTypeMismatch, r)
	}

	lo, err := m.CoordinateToIndex(r.lower)
	if err != nil {
		return 0, 0, err
	}
	hi, err := m.CoordinateToIndex(r.upper)
	if err != nil {
		return 0, 0, err
	}
	if !isFinite(lo) || !isFinite(hi) {
		return 0, 0, fmt.Errorf("%w: lower %v, upper %v map to index %v, %v",
			ErrEmptyRegion, r.lower, r.upper, lo, hi)
	}

	left := math.Ceil(snap(lo))
	right := math.Floor(snap(hi))
	if left >= right {
		return 0, 0, fmt.Errorf("%w: lower %v, upper %v", ErrEmptyRegion, r.lower, r.upper)
	}

	left = math.Max(left, 0)
	if left >= right {
		return 0, 0, fmt.Errorf("%w: lower %v, upper %v lie before the first sample",
			ErrEmptyRegion, r.lower, r.upper)
	}
	right = math.Min(right, math.MaxInt32)

	return int(left), int(right), nil
}

func snap(x float64) float64 {
	if n := math.Round(x); math.Abs(x-n) <= snapTolerance {
		return n
	}
	return x
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
