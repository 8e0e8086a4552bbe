package region

import "errors"

// Errors returned by Region construction, mutation and excision.
var (
	ErrTypeMismatch = errors.New("region: bound must carry a physical unit")
	ErrInvalidRange = errors.New("region: lower bound must not exceed upper bound")
	ErrEmptyRegion  = errors.New("region: region is empty or inverted on the sample grid")
)
