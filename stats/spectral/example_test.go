package spectral_test

import (
	"fmt"

	"github.com/cwbudde/algo-spectral/dsp/region"
	"github.com/cwbudde/algo-spectral/dsp/spectrum"
	"github.com/cwbudde/algo-spectral/dsp/units"
	"github.com/cwbudde/algo-spectral/stats/spectral"
)

func ExampleCalculateIn() {
	axis, _ := spectrum.NewLinearAxis(4000, 100, 7, units.Angstrom)
	s, _ := spectrum.New(axis, []float64{9, 0, 1, 4, 1, 0, 9})
	r, _ := region.New(units.New(4050, units.Angstrom), units.New(4550, units.Angstrom))

	st, _ := spectral.CalculateIn(s, r)
	fmt.Printf("n=%d peak=%.0f at %.0f %s centroid=%.0f\n", st.Count, st.Max, st.MaxAt, st.Unit, st.Centroid)
	// Output:
	// n=4 peak=4 at 4300 Angstrom centroid=4300
}
