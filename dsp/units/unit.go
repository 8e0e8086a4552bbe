package units

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Dimension identifies the physical dimension of a unit.
type Dimension int

const (
	DimensionNone Dimension = iota
	DimensionLength
	DimensionFrequency
	DimensionEnergy
)

// String returns the dimension name.
func (d Dimension) String() string {
	switch d {
	case DimensionLength:
		return "length"
	case DimensionFrequency:
		return "frequency"
	case DimensionEnergy:
		return "energy"
	default:
		return "none"
	}
}

// Unit is a linear physical unit. The zero Unit means "no unit".
type Unit struct {
	name string
	dim  Dimension
	coef float64 // one unit is coef * 10^exp SI base units
	exp  int
}

// Predefined spectral-axis units.
var (
	Meter      = Unit{name: "m", dim: DimensionLength, coef: 1, exp: 0}
	Centimeter = Unit{name: "cm", dim: DimensionLength, coef: 1, exp: -2}
	Millimeter = Unit{name: "mm", dim: DimensionLength, coef: 1, exp: -3}
	Micrometer = Unit{name: "um", dim: DimensionLength, coef: 1, exp: -6}
	Nanometer  = Unit{name: "nm", dim: DimensionLength, coef: 1, exp: -9}
	Angstrom   = Unit{name: "Angstrom", dim: DimensionLength, coef: 1, exp: -10}

	Hertz     = Unit{name: "Hz", dim: DimensionFrequency, coef: 1, exp: 0}
	Kilohertz = Unit{name: "kHz", dim: DimensionFrequency, coef: 1, exp: 3}
	Megahertz = Unit{name: "MHz", dim: DimensionFrequency, coef: 1, exp: 6}
	Gigahertz = Unit{name: "GHz", dim: DimensionFrequency, coef: 1, exp: 9}
	Terahertz = Unit{name: "THz", dim: DimensionFrequency, coef: 1, exp: 12}

	Joule            = Unit{name: "J", dim: DimensionEnergy, coef: 1, exp: 0}
	ElectronVolt     = Unit{name: "eV", dim: DimensionEnergy, coef: 1.602176634, exp: -19}
	KiloElectronVolt = Unit{name: "keV", dim: DimensionEnergy, coef: 1.602176634, exp: -16}
)

var registry = map[string]Unit{
	"m":        Meter,
	"cm":       Centimeter,
	"mm":       Millimeter,
	"um":       Micrometer,
	"µm":       Micrometer,
	"micron":   Micrometer,
	"nm":       Nanometer,
	"Angstrom": Angstrom,
	"angstrom": Angstrom,
	"AA":       Angstrom,
	"Å":        Angstrom,
	"Hz":       Hertz,
	"kHz":      Kilohertz,
	"MHz":      Megahertz,
	"GHz":      Gigahertz,
	"THz":      Terahertz,
	"J":        Joule,
	"eV":       ElectronVolt,
	"keV":      KiloElectronVolt,
}

// Lookup returns the unit registered under name.
func Lookup(name string) (Unit, error) {
	u, ok := registry[strings.TrimSpace(name)]
	if !ok {
		return Unit{}, fmt.Errorf("%w: %q", ErrUnknownUnit, name)
	}
	return u, nil
}

// Names returns all registered unit names in sorted order.
func Names() []string {
	out := make([]string, 0, len(registry))
	for name := range registry {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Name returns the unit symbol, or "" for the zero Unit.
func (u Unit) Name() string { return u.name }

// Dimension returns the physical dimension of u.
func (u Unit) Dimension() Dimension { return u.dim }

// IsZero reports whether u is the zero Unit (no unit).
func (u Unit) IsZero() bool { return u.dim == DimensionNone }

// String returns the unit symbol.
func (u Unit) String() string {
	if u.IsZero() {
		return "dimensionless"
	}
	return u.name
}

// Commensurable reports whether values in u and o can be converted into each other.
func (u Unit) Commensurable(o Unit) bool {
	return !u.IsZero() && u.dim == o.dim
}

func (u Unit) check(to Unit) error {
	if u.IsZero() || to.IsZero() {
		return ErrNoUnit
	}
	if u.dim != to.dim {
		return fmt.Errorf("%w: %s (%s) and %s (%s)", ErrIncommensurable, u, u.dim, to, to.dim)
	}
	return nil
}

// convert rescales v from u to to. Decade shifts divide rather than multiply
// by a fractional power of ten, so 5000 Angstrom is exactly 500 nm.
func (u Unit) convert(v float64, to Unit) float64 {
	if u == to {
		return v
	}
	if u.coef != to.coef {
		v *= u.coef / to.coef
	}
	d := u.exp - to.exp
	if d >= 0 {
		return v * math.Pow10(d)
	}
	return v / math.Pow10(-d)
}
