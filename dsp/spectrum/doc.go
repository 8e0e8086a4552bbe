// Package spectrum provides a one-dimensional sampled spectrum: flux values
// (with optional uncertainty and mask) laid out along a spectral [Axis].
//
// [Spectrum] implements [region.Signal], so a [region.Region] can be excised
// from it:
//
//	sub, err := s.Excise(r)
//
// [Analyze] builds a single-sided magnitude spectrum on a Hz axis from
// real-valued time-domain samples.
package spectrum
