package spectrum_test

import (
	"fmt"

	"github.com/cwbudde/algo-spectral/dsp/region"
	"github.com/cwbudde/algo-spectral/dsp/spectrum"
	"github.com/cwbudde/algo-spectral/dsp/units"
)

func ExampleSpectrum_Excise() {
	axis, _ := spectrum.NewLinearAxis(4000, 100, 10, units.Angstrom)
	s, _ := spectrum.New(axis, []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9})

	r, _ := region.New(units.New(4205, units.Angstrom), units.New(4695, units.Angstrom))
	sub, _ := s.Excise(r)
	fmt.Println(sub.Coordinates(), sub.Flux())
	// Output:
	// [4300 4400 4500] [3 4 5]
}

func ExampleSpectrum_Excise_empty() {
	axis, _ := spectrum.NewLinearAxis(4000, 100, 10, units.Angstrom)
	s, _ := spectrum.New(axis, make([]float64, 10))

	r, _ := region.New(units.New(4210, units.Angstrom), units.New(4220, units.Angstrom))
	_, err := s.Excise(r)
	fmt.Println(err)
	// Output:
	// region: region is empty or inverted on the sample grid: lower 4210 Angstrom, upper 4220 Angstrom
}
