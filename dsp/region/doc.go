// Package region defines unit-tagged intervals on a spectral axis and
// excises the samples of a signal that fall inside them.
//
// A [Region] holds a lower and an upper [units.Quantity]. Both bounds must
// carry a unit and lower <= upper must hold after construction and after
// every mutation.
//
// [Excise] maps the bounds through the signal's coordinate transform and
// keeps the half-open index range [ceil(lower), floor(upper)). No
// interpolation is performed: a bound falling inside a sample's span never
// pulls in that sample.
package region
