package region

import (
	"fmt"

	"github.com/cwbudde/algo-spectral/dsp/units"
)

// Region is a closed interval [lower, upper] on a spectral axis.
//
// The zero Region is not valid; use [New]. A Region is not safe for
// concurrent mutation.
type Region struct {
	lower units.Quantity
	upper units.Quantity
}

// New returns a Region spanning lower to upper.
//
// Both bounds must carry a unit (ErrTypeMismatch). The units may differ but
// must be commensurable, and upper must not be less than lower
// (ErrInvalidRange).
func New(lower, upper units.Quantity) (Region, error) {
	if err := checkUnit("lower", lower); err != nil {
		return Region{}, err
	}
	if err := checkUnit("upper", upper); err != nil {
		return Region{}, err
	}
	if err := checkOrder(lower, upper); err != nil {
		return Region{}, err
	}
	return Region{lower: lower, upper: upper}, nil
}

// Lower returns the lower bound.
func (r Region) Lower() units.Quantity { return r.lower }

// Upper returns the upper bound.
func (r Region) Upper() units.Quantity { return r.upper }

// SetLower replaces the lower bound in place. The whole invariant is checked
// again; on error r is left unchanged.
func (r *Region) SetLower(q units.Quantity) error {
	next, err := r.WithLower(q)
	if err != nil {
		return err
	}
	*r = next
	return nil
}

// SetUpper replaces the upper bound in place. The whole invariant is checked
// again; on error r is left unchanged.
func (r *Region) SetUpper(q units.Quantity) error {
	next, err := r.WithUpper(q)
	if err != nil {
		return err
	}
	*r = next
	return nil
}

// WithLower returns a copy of r with the lower bound replaced.
func (r Region) WithLower(q units.Quantity) (Region, error) {
	if err := checkUnit("lower", q); err != nil {
		return Region{}, err
	}
	return New(q, r.upper)
}

// WithUpper returns a copy of r with the upper bound replaced.
func (r Region) WithUpper(q units.Quantity) (Region, error) {
	if err := checkUnit("upper", q); err != nil {
		return Region{}, err
	}
	return New(r.lower, q)
}

// Width returns upper - lower expressed in the lower bound's unit.
func (r Region) Width() (units.Quantity, error) {
	up, err := r.upper.In(r.lower.Unit)
	if err != nil {
		return units.Quantity{}, err
	}
	return up.Sub(r.lower)
}

// Contains reports whether q lies within [lower, upper].
func (r Region) Contains(q units.Quantity) (bool, error) {
	if !q.HasUnit() {
		return false, fmt.Errorf("%w: %v", ErrTypeMismatch, q)
	}
	lo, err := r.lower.Compare(q)
	if err != nil {
		return false, err
	}
	hi, err := q.Compare(r.upper)
	if err != nil {
		return false, err
	}
	return lo <= 0 && hi <= 0, nil
}

// String formats r as "[lower, upper]".
func (r Region) String() string {
	return fmt.Sprintf("[%v, %v]", r.lower, r.upper)
}

func checkUnit(which string, q units.Quantity) error {
	if !q.HasUnit() {
		return fmt.Errorf("%w: %s bound %v", ErrTypeMismatch, which, q)
	}
	return nil
}

func checkOrder(lower, upper units.Quantity) error {
	c, err := lower.Compare(upper)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRange, err)
	}
	if c > 0 {
		return fmt.Errorf("%w: lower %v, upper %v", ErrInvalidRange, lower, upper)
	}
	return nil
}
