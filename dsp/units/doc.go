// Package units provides unit-tagged scalar values for spectral axes.
//
// A [Quantity] pairs a magnitude with a [Unit]. Units carry a [Dimension]
// and a linear scale to the SI base unit of that dimension, so quantities of
// the same dimension can be compared and converted:
//
//	q := units.New(4861, units.Angstrom)
//	nm, _ := q.In(units.Nanometer) // 486.1 nm
//
// Conversion between dimensions (wavelength to frequency, for example) is not
// supported and fails with [ErrIncommensurable].
package units
