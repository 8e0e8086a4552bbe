package units

import (
	"errors"
	"math"
	"testing"
)

func TestQuantityIn(t *testing.T) {
	tests := []struct {
		name string
		in   Quantity
		to   Unit
		want float64
	}{
		{"angstrom to nm", New(4861, Angstrom), Nanometer, 486.1},
		{"um to angstrom", New(0.5, Micrometer), Angstrom, 5000},
		{"kHz to Hz", New(1.5, Kilohertz), Hertz, 1500},
		{"keV to eV", New(2, KiloElectronVolt), ElectronVolt, 2000},
		{"same unit", New(7, Meter), Meter, 7},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.in.In(tc.to)
			if err != nil {
				t.Fatalf("In error: %v", err)
			}
			if got.Unit != tc.to {
				t.Fatalf("unit = %v, want %v", got.Unit, tc.to)
			}
			if math.Abs(got.Value-tc.want) > 1e-9*math.Abs(tc.want) {
				t.Fatalf("value = %v, want %v", got.Value, tc.want)
			}
		})
	}
}

func TestQuantityInErrors(t *testing.T) {
	_, err := New(1, Hertz).In(Angstrom)
	if !errors.Is(err, ErrIncommensurable) {
		t.Fatalf("err = %v, want ErrIncommensurable", err)
	}

	_, err = Quantity{Value: 1}.In(Angstrom)
	if !errors.Is(err, ErrNoUnit) {
		t.Fatalf("err = %v, want ErrNoUnit", err)
	}
}

func TestQuantityCompare(t *testing.T) {
	tests := []struct {
		a, b Quantity
		want int
	}{
		{New(4000, Angstrom), New(500, Nanometer), -1},
		{New(500, Nanometer), New(5000, Angstrom), 0},
		{New(1, Micrometer), New(500, Nanometer), 1},
		{New(999, Hertz), New(1, Kilohertz), -1},
	}

	for _, tc := range tests {
		got, err := tc.a.Compare(tc.b)
		if err != nil {
			t.Fatalf("Compare(%v, %v) error: %v", tc.a, tc.b, err)
		}
		if got != tc.want {
			t.Fatalf("Compare(%v, %v) = %d, want %d", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestQuantityCompareErrors(t *testing.T) {
	if _, err := New(1, Angstrom).Compare(Quantity{Value: 2}); !errors.Is(err, ErrNoUnit) {
		t.Fatalf("err = %v, want ErrNoUnit", err)
	}
	if _, err := New(1, Angstrom).Compare(New(1, Hertz)); !errors.Is(err, ErrIncommensurable) {
		t.Fatalf("err = %v, want ErrIncommensurable", err)
	}
	if _, err := New(math.NaN(), Angstrom).Compare(New(1, Angstrom)); !errors.Is(err, ErrNotComparable) {
		t.Fatalf("err = %v, want ErrNotComparable", err)
	}
}

func TestQuantitySub(t *testing.T) {
	got, err := New(1, Micrometer).Sub(New(500, Nanometer))
	if err != nil {
		t.Fatalf("Sub error: %v", err)
	}
	if got.Unit != Micrometer || math.Abs(got.Value-0.5) > 1e-12 {
		t.Fatalf("Sub = %v, want 0.5 um", got)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Quantity
	}{
		{"4861 Angstrom", New(4861, Angstrom)},
		{"  4861   AA ", New(4861, Angstrom)},
		{"1.5kHz", New(1.5, Kilohertz)},
		{"2e3 nm", New(2000, Nanometer)},
		{"-3.5 um", New(-3.5, Micrometer)},
		{"6563 Å", New(6563, Angstrom)},
		{"10 eV", New(10, ElectronVolt)},
	}

	for _, tc := range tests {
		got, err := Parse(tc.in)
		if err != nil {
			t.Fatalf("Parse(%q) error: %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("Parse(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestParseErrors(t *testing.T) {
	for _, in := range []string{"", "4861", "Angstrom", "1.2.3 nm"} {
		if _, err := Parse(in); !errors.Is(err, ErrParse) {
			t.Fatalf("Parse(%q) err = %v, want ErrParse", in, err)
		}
	}

	if _, err := Parse("12 furlong"); !errors.Is(err, ErrUnknownUnit) {
		t.Fatalf("err = %v, want ErrUnknownUnit", err)
	}
}

func TestQuantityString(t *testing.T) {
	if got := New(4205, Angstrom).String(); got != "4205 Angstrom" {
		t.Fatalf("String = %q", got)
	}
	if got := (Quantity{Value: 3.5}).String(); got != "3.5" {
		t.Fatalf("String = %q", got)
	}
}

func TestLookup(t *testing.T) {
	u, err := Lookup("micron")
	if err != nil || u != Micrometer {
		t.Fatalf("Lookup(micron) = %v, %v", u, err)
	}
	if len(Names()) != len(registry) {
		t.Fatalf("Names length mismatch")
	}
}
