package spectrum

import (
	"fmt"
	"sort"

	"github.com/cwbudde/algo-spectral/dsp/core"
	"github.com/cwbudde/algo-spectral/dsp/units"
)

// Axis maps sample indices to spectral coordinates and back.
//
// Coordinates passed to and returned from an Axis are expressed in Unit().
// Pixel may return fractional or out-of-range positions; it extrapolates
// beyond the first and last sample.
type Axis interface {
	Len() int
	Unit() units.Unit
	Value(i int) float64
	Values() []float64
	Pixel(coord float64) float64
	Slice(start, stop int) Axis
}

// LinearAxis is an evenly spaced, increasing axis.
type LinearAxis struct {
	start float64
	step  float64
	n     int
	unit  units.Unit
}

// NewLinearAxis returns an axis of n samples start, start+step, ...
func NewLinearAxis(start, step float64, n int, u units.Unit) (*LinearAxis, error) {
	switch {
	case u.IsZero():
		return nil, fmt.Errorf("%w: axis needs a unit", ErrInvalidAxis)
	case n <= 0:
		return nil, fmt.Errorf("%w: length must be > 0: %d", ErrInvalidAxis, n)
	case !core.IsFinite(start) || !core.IsFinite(step) || step <= 0:
		return nil, fmt.Errorf("%w: start %v, step %v", ErrInvalidAxis, start, step)
	}
	return &LinearAxis{start: start, step: step, n: n, unit: u}, nil
}

// Len returns the sample count.
func (a *LinearAxis) Len() int { return a.n }

// Unit returns the coordinate unit.
func (a *LinearAxis) Unit() units.Unit { return a.unit }

// Step returns the sample spacing.
func (a *LinearAxis) Step() float64 { return a.step }

// Value returns the coordinate of sample i.
func (a *LinearAxis) Value(i int) float64 { return a.start + float64(i)*a.step }

// Values returns all sample coordinates.
func (a *LinearAxis) Values() []float64 {
	out := make([]float64, a.n)
	for i := range out {
		out[i] = a.Value(i)
	}
	return out
}

// Pixel returns (coord - start) / step.
func (a *LinearAxis) Pixel(coord float64) float64 {
	return (coord - a.start) / a.step
}

// Slice returns the axis restricted to [start, stop). Indices must already
// be clamped by the caller.
func (a *LinearAxis) Slice(start, stop int) Axis {
	return &LinearAxis{start: a.Value(start), step: a.step, n: stop - start, unit: a.unit}
}

// TabularAxis is an increasing axis given by an explicit coordinate table.
// Fractional positions are found by piecewise-linear inversion.
type TabularAxis struct {
	table  []float64 // shared between slices, never written
	lo, hi int
	unit   units.Unit
}

// NewTabularAxis returns an axis over values, which must hold at least two
// finite, strictly increasing coordinates. values is copied.
func NewTabularAxis(values []float64, u units.Unit) (*TabularAxis, error) {
	if u.IsZero() {
		return nil, fmt.Errorf("%w: axis needs a unit", ErrInvalidAxis)
	}
	if len(values) < 2 {
		return nil, fmt.Errorf("%w: tabular axis needs at least 2 values: %d", ErrInvalidAxis, len(values))
	}
	if !core.AllFinite(values) {
		return nil, fmt.Errorf("%w: non-finite coordinate", ErrInvalidAxis)
	}
	for i := 1; i < len(values); i++ {
		if !(values[i] > values[i-1]) {
			return nil, fmt.Errorf("%w: values must be strictly increasing at index %d", ErrInvalidAxis, i)
		}
	}
	table := append([]float64(nil), values...)
	return &TabularAxis{table: table, lo: 0, hi: len(table), unit: u}, nil
}

// Len returns the sample count.
func (a *TabularAxis) Len() int { return a.hi - a.lo }

// Unit returns the coordinate unit.
func (a *TabularAxis) Unit() units.Unit { return a.unit }

// Value returns the coordinate of sample i.
func (a *TabularAxis) Value(i int) float64 { return a.table[a.lo+i] }

// Values returns all sample coordinates.
func (a *TabularAxis) Values() []float64 {
	return append([]float64(nil), a.table[a.lo:a.hi]...)
}

// Pixel inverts the coordinate table. Outside the table the nearest end
// segment is extrapolated.
func (a *TabularAxis) Pixel(coord float64) float64 {
	t := a.table
	last := len(t) - 1

	var p float64
	switch {
	case coord <= t[0]:
		p = (coord - t[0]) / (t[1] - t[0])
	case coord >= t[last]:
		p = float64(last) + (coord-t[last])/(t[last]-t[last-1])
	default:
		j := sort.SearchFloat64s(t, coord)
		if t[j] == coord {
			p = float64(j)
		} else {
			p = float64(j-1) + (coord-t[j-1])/(t[j]-t[j-1])
		}
	}
	return p - float64(a.lo)
}

// Slice returns the axis restricted to [start, stop). Indices must already
// be clamped by the caller.
func (a *TabularAxis) Slice(start, stop int) Axis {
	return &TabularAxis{table: a.table, lo: a.lo + start, hi: a.lo + stop, unit: a.unit}
}
