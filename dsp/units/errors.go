package units

import "errors"

// Errors returned by unit conversion and comparison.
var (
	ErrNoUnit          = errors.New("units: quantity has no unit")
	ErrIncommensurable = errors.New("units: incommensurable units")
	ErrNotComparable   = errors.New("units: quantity is not comparable")
	ErrUnknownUnit     = errors.New("units: unknown unit")
	ErrParse           = errors.New("units: malformed quantity")
)
