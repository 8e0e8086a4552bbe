package spectrum

import (
	"fmt"

	"github.com/cwbudde/algo-spectral/dsp/core"
	"github.com/cwbudde/algo-spectral/dsp/region"
	"github.com/cwbudde/algo-spectral/dsp/units"
)

// Spectrum is a sampled spectrum. It is immutable after construction and
// safe for concurrent reads.
type Spectrum struct {
	axis        Axis
	flux        []float64
	uncertainty []float64
	mask        []bool
	fluxUnit    string
}

var _ region.Signal[*Spectrum] = (*Spectrum)(nil)

// Option configures optional per-sample data of a Spectrum.
type Option func(*config)

type config struct {
	uncertainty []float64
	mask        []bool
	fluxUnit    string
}

// WithUncertainty attaches a per-sample uncertainty array.
func WithUncertainty(u []float64) Option {
	return func(c *config) {
		c.uncertainty = u
	}
}

// WithMask attaches a per-sample mask. true marks a sample as bad.
func WithMask(m []bool) Option {
	return func(c *config) {
		c.mask = m
	}
}

// WithFluxUnit labels the flux values, e.g. "erg/s/cm2/AA" or "dBFS".
func WithFluxUnit(label string) Option {
	return func(c *config) {
		c.fluxUnit = label
	}
}

// New returns a Spectrum of flux laid out on axis. flux and any optional
// arrays are copied and must match axis.Len().
func New(axis Axis, flux []float64, opts ...Option) (*Spectrum, error) {
	if axis == nil {
		return nil, fmt.Errorf("%w: nil axis", ErrInvalidAxis)
	}

	var cfg config
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	n := axis.Len()
	if len(flux) != n {
		return nil, fmt.Errorf("%w: flux %d, axis %d", ErrLengthMismatch, len(flux), n)
	}
	if cfg.uncertainty != nil && len(cfg.uncertainty) != n {
		return nil, fmt.Errorf("%w: uncertainty %d, axis %d", ErrLengthMismatch, len(cfg.uncertainty), n)
	}
	if cfg.mask != nil && len(cfg.mask) != n {
		return nil, fmt.Errorf("%w: mask %d, axis %d", ErrLengthMismatch, len(cfg.mask), n)
	}

	return &Spectrum{
		axis:        axis,
		flux:        append([]float64(nil), flux...),
		uncertainty: cloneOrNil(cfg.uncertainty),
		mask:        cloneOrNil(cfg.mask),
		fluxUnit:    cfg.fluxUnit,
	}, nil
}

// Len returns the number of samples.
func (s *Spectrum) Len() int { return len(s.flux) }

// Axis returns the spectral axis.
func (s *Spectrum) Axis() Axis { return s.axis }

// Coordinates returns the spectral coordinate of every sample.
func (s *Spectrum) Coordinates() []float64 { return s.axis.Values() }

// Coordinate returns the spectral coordinate of sample i.
func (s *Spectrum) Coordinate(i int) units.Quantity {
	return units.New(s.axis.Value(i), s.axis.Unit())
}

// Flux returns a copy of the flux values.
func (s *Spectrum) Flux() []float64 { return append([]float64(nil), s.flux...) }

// Uncertainty returns a copy of the uncertainty values, or nil.
func (s *Spectrum) Uncertainty() []float64 { return cloneOrNil(s.uncertainty) }

// Mask returns a copy of the mask, or nil.
func (s *Spectrum) Mask() []bool { return cloneOrNil(s.mask) }

// FluxUnit returns the flux label.
func (s *Spectrum) FluxUnit() string { return s.fluxUnit }

// CoordinateToIndex maps coord onto the fractional sample index of the
// spectral axis. coord is converted into the axis unit first.
func (s *Spectrum) CoordinateToIndex(coord units.Quantity) (float64, error) {
	v, err := coord.ValueIn(s.axis.Unit())
	if err != nil {
		return 0, err
	}
	if !core.IsFinite(v) {
		return 0, fmt.Errorf("%w: %v", ErrNonFinite, coord)
	}
	return s.axis.Pixel(v), nil
}

// Slice returns samples start..stop-1 as a new Spectrum. Indices are clamped
// to [0, Len()]; a range that selects nothing returns ErrEmptySlice.
func (s *Spectrum) Slice(start, stop int) (*Spectrum, error) {
	n := s.Len()
	start = core.ClampInt(start, 0, n)
	stop = core.ClampInt(stop, 0, n)
	if start >= stop {
		return nil, fmt.Errorf("%w: [%d, %d) of %d", ErrEmptySlice, start, stop, n)
	}

	out := &Spectrum{
		axis:     s.axis.Slice(start, stop),
		flux:     append([]float64(nil), s.flux[start:stop]...),
		fluxUnit: s.fluxUnit,
	}
	if s.uncertainty != nil {
		out.uncertainty = append([]float64(nil), s.uncertainty[start:stop]...)
	}
	if s.mask != nil {
		out.mask = append([]bool(nil), s.mask[start:stop]...)
	}
	return out, nil
}

// Excise returns the samples of s inside r. See [region.Excise].
func (s *Spectrum) Excise(r region.Region) (*Spectrum, error) {
	return region.Excise(r, s)
}

func cloneOrNil[T any](in []T) []T {
	if in == nil {
		return nil
	}
	return append([]T(nil), in...)
}
