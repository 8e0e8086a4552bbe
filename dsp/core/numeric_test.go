package core

import (
	"math"
	"testing"
)

func TestClampInt(t *testing.T) {
	tests := []struct {
		name     string
		value    int
		lo, hi   int
		expected int
	}{
		{name: "inside", value: 5, lo: 0, hi: 10, expected: 5},
		{name: "below", value: -3, lo: 0, hi: 10, expected: 0},
		{name: "above", value: 12, lo: 0, hi: 10, expected: 10},
		{name: "swapped", value: 12, lo: 10, hi: 0, expected: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClampInt(tt.value, tt.lo, tt.hi)
			if got != tt.expected {
				t.Fatalf("ClampInt() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestNearlyEqual(t *testing.T) {
	if !NearlyEqual(1.0, 1.0+1e-13, 1e-12) {
		t.Fatal("expected values to be nearly equal")
	}
	if NearlyEqual(1.0, 1.1, 1e-3) {
		t.Fatal("expected values to differ")
	}
	if !NearlyEqual(4e9, 4e9+1, 1e-9) {
		t.Fatal("expected relative tolerance for large values")
	}
}

func TestFinite(t *testing.T) {
	if !AllFinite([]float64{0, -1, 1e300}) {
		t.Fatal("expected finite data")
	}
	if AllFinite([]float64{0, math.NaN()}) || AllFinite([]float64{math.Inf(1)}) {
		t.Fatal("expected non-finite data to be reported")
	}
}

func TestLinearToDB(t *testing.T) {
	if db := LinearToDB(0.5); !NearlyEqual(db, -6.020599913279624, 1e-12) {
		t.Fatalf("LinearToDB(0.5) = %v", db)
	}
	if !math.IsInf(LinearToDB(0), -1) {
		t.Fatal("expected -Inf for zero")
	}
	if !math.IsNaN(LinearToDB(-1)) {
		t.Fatal("expected NaN for negative amplitude")
	}
}

func TestPowerOf2(t *testing.T) {
	for n, want := range map[int]int{-4: 1, 0: 1, 1: 1, 3: 4, 8: 8, 1000: 1024} {
		if got := NextPowerOf2(n); got != want {
			t.Fatalf("NextPowerOf2(%d) = %d, want %d", n, got, want)
		}
		if !IsPowerOf2(NextPowerOf2(n)) {
			t.Fatalf("IsPowerOf2(NextPowerOf2(%d)) = false", n)
		}
	}
	if IsPowerOf2(0) || IsPowerOf2(12) {
		t.Fatal("IsPowerOf2 false positive")
	}
}
