package testutil

import "testing"

func TestPeakIndex(t *testing.T) {
	tests := []struct {
		data []float64
		want int
	}{
		{nil, -1},
		{[]float64{3}, 0},
		{[]float64{1, 5, 2}, 1},
		{[]float64{-4, -1, -9}, 1},
		{[]float64{2, 7, 7}, 1},
	}

	for _, tc := range tests {
		if got := PeakIndex(tc.data); got != tc.want {
			t.Fatalf("PeakIndex(%v) = %d, want %d", tc.data, got, tc.want)
		}
	}
}

func TestRequireHelpersPass(t *testing.T) {
	RequireSliceNearlyEqual(t, []float64{1, 2}, []float64{1, 2 + 1e-10}, 1e-9)
	RequireFinite(t, []float64{0, -1, 1e300})
}
