package window

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-spectral/internal/testutil"
)

func TestGenerateAllTypes(t *testing.T) {
	for typ := range names {
		t.Run(typ.String(), func(t *testing.T) {
			w := Generate(typ, 64)
			if len(w) != 64 {
				t.Fatalf("len=%d, want 64", len(w))
			}
			testutil.RequireFinite(t, w)
		})
	}
}

func TestGenerateInvalidLength(t *testing.T) {
	if w := Generate(TypeHann, 0); w != nil {
		t.Fatalf("Generate(0) = %v, want nil", w)
	}
	if w := Generate(TypeHann, 1); len(w) != 1 || w[0] != 0 {
		t.Fatalf("Generate(1) = %v, want [0]", w)
	}
}

func TestSymmetricWindowIsSymmetric(t *testing.T) {
	w := Generate(TypeBlackman, 33)
	for i := range w {
		if math.Abs(w[i]-w[len(w)-1-i]) > 1e-12 {
			t.Fatalf("w[%d]=%v, w[%d]=%v", i, w[i], len(w)-1-i, w[len(w)-1-i])
		}
	}
}

func TestCoherentGain(t *testing.T) {
	tests := []struct {
		typ  Type
		want float64
	}{
		{TypeRectangular, 1},
		{TypeHann, 0.5},
		{TypeHamming, 0.54},
		{TypeBlackman, 0.42},
	}

	for _, tc := range tests {
		got, err := CoherentGain(Generate(tc.typ, 1024, WithPeriodic()))
		if err != nil {
			t.Fatalf("%v: CoherentGain error: %v", tc.typ, err)
		}
		if math.Abs(got-tc.want) > 1e-9 {
			t.Fatalf("%v: CoherentGain = %v, want %v", tc.typ, got, tc.want)
		}
	}

	if _, err := CoherentGain(nil); !errors.Is(err, errEmptyCoeffs) {
		t.Fatalf("err = %v, want errEmptyCoeffs", err)
	}
	if _, err := CoherentGain([]float64{1, -1}); !errors.Is(err, errZeroCoherentGain) {
		t.Fatalf("err = %v, want errZeroCoherentGain", err)
	}
}

func TestApply(t *testing.T) {
	samples := []float64{2, 2, 2, 2}
	if err := Apply(samples, Generate(TypeHann, 4, WithPeriodic())); err != nil {
		t.Fatalf("Apply error: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, samples, []float64{0, 1, 2, 1}, 1e-12)

	if err := Apply(samples, []float64{1}); !errors.Is(err, errMismatchedLength) {
		t.Fatalf("err = %v, want errMismatchedLength", err)
	}
}

func TestParseType(t *testing.T) {
	for typ, name := range names {
		got, err := ParseType(" " + name + " ")
		if err != nil || got != typ {
			t.Fatalf("ParseType(%q) = %v, %v", name, got, err)
		}
	}
	if got, err := ParseType("HANN"); err != nil || got != TypeHann {
		t.Fatalf("ParseType(HANN) = %v, %v", got, err)
	}
	if _, err := ParseType("kaiser"); !errors.Is(err, errUnknownType) {
		t.Fatalf("err = %v, want errUnknownType", err)
	}
	if got := Type(99).String(); got != "window(99)" {
		t.Fatalf("String = %q", got)
	}
}
