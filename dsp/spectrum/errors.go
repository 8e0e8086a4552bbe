package spectrum

import "errors"

// Errors returned by spectrum construction, slicing and analysis.
var (
	ErrInvalidAxis       = errors.New("spectrum: invalid spectral axis")
	ErrLengthMismatch    = errors.New("spectrum: length does not match spectral axis")
	ErrNonFinite         = errors.New("spectrum: coordinate is not finite")
	ErrEmptySlice        = errors.New("spectrum: slice selects no samples")
	ErrEmptyInput        = errors.New("spectrum: input signal is empty")
	ErrInvalidSampleRate = errors.New("spectrum: sample rate must be positive")
	ErrFFTSize           = errors.New("spectrum: fft size must cover the input")
)
