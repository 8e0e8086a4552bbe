package region_test

import (
	"fmt"

	"github.com/cwbudde/algo-spectral/dsp/region"
	"github.com/cwbudde/algo-spectral/dsp/units"
)

func ExampleNew() {
	r, err := region.New(units.New(6550, units.Angstrom), units.New(658, units.Nanometer))
	if err != nil {
		fmt.Println(err)
		return
	}
	w, _ := r.Width()
	fmt.Println(r, w)
	// Output:
	// [6550 Angstrom, 658 nm] 30 Angstrom
}

func ExampleRegion_SetLower() {
	r, _ := region.New(units.New(4205, units.Angstrom), units.New(4695, units.Angstrom))
	err := r.SetLower(units.New(5000, units.Angstrom))
	fmt.Println(err)
	fmt.Println(r.Lower())
	// Output:
	// region: lower bound must not exceed upper bound: lower 5000 Angstrom, upper 4695 Angstrom
	// 4205 Angstrom
}
