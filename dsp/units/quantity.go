package units

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// Quantity is a scalar value tagged with a physical unit.
// A Quantity with a zero Unit is a bare number.
type Quantity struct {
	Value float64
	Unit  Unit
}

// New returns a Quantity of value in unit u.
func New(value float64, u Unit) Quantity {
	return Quantity{Value: value, Unit: u}
}

// HasUnit reports whether q carries a physical unit.
func (q Quantity) HasUnit() bool {
	return !q.Unit.IsZero()
}

// In converts q into unit u.
func (q Quantity) In(u Unit) (Quantity, error) {
	if !q.HasUnit() {
		return Quantity{}, ErrNoUnit
	}
	if q.Unit == u {
		return q, nil
	}
	if err := q.Unit.check(u); err != nil {
		return Quantity{}, err
	}
	return Quantity{Value: q.Unit.convert(q.Value, u), Unit: u}, nil
}

// ValueIn returns the magnitude of q expressed in unit u.
func (q Quantity) ValueIn(u Unit) (float64, error) {
	c, err := q.In(u)
	if err != nil {
		return 0, err
	}
	return c.Value, nil
}

// Compare returns -1, 0 or +1 depending on whether q is less than, equal to,
// or greater than o. o is converted into q's unit first.
func (q Quantity) Compare(o Quantity) (int, error) {
	if !q.HasUnit() || !o.HasUnit() {
		return 0, ErrNoUnit
	}
	ov, err := o.ValueIn(q.Unit)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(q.Value) || math.IsNaN(ov) {
		return 0, fmt.Errorf("%w: NaN value", ErrNotComparable)
	}
	switch {
	case q.Value < ov:
		return -1, nil
	case q.Value > ov:
		return 1, nil
	default:
		return 0, nil
	}
}

// Sub returns q - o in q's unit.
func (q Quantity) Sub(o Quantity) (Quantity, error) {
	if !q.HasUnit() {
		return Quantity{}, ErrNoUnit
	}
	ov, err := o.ValueIn(q.Unit)
	if err != nil {
		return Quantity{}, err
	}
	return Quantity{Value: q.Value - ov, Unit: q.Unit}, nil
}

// String formats q as "<value> <unit>".
func (q Quantity) String() string {
	v := strconv.FormatFloat(q.Value, 'g', -1, 64)
	if !q.HasUnit() {
		return v
	}
	return v + " " + q.Unit.Name()
}

// Parse reads a quantity such as "4861 Angstrom", "1.5kHz" or "2e3 nm".
func Parse(s string) (Quantity, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Quantity{}, fmt.Errorf("%w: empty string", ErrParse)
	}

	split := strings.IndexFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || (unicode.IsLetter(r) && r != 'e' && r != 'E')
	})
	if split <= 0 {
		return Quantity{}, fmt.Errorf("%w: %q needs a value and a unit", ErrParse, s)
	}

	value, err := strconv.ParseFloat(strings.TrimSpace(s[:split]), 64)
	if err != nil {
		return Quantity{}, fmt.Errorf("%w: %q: %v", ErrParse, s, err)
	}

	name := strings.TrimSpace(s[split:])
	if name == "" {
		return Quantity{}, fmt.Errorf("%w: %q needs a unit", ErrParse, s)
	}
	u, err := Lookup(name)
	if err != nil {
		return Quantity{}, err
	}
	return Quantity{Value: value, Unit: u}, nil
}
