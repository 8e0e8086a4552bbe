// Package spectral computes summary statistics of a spectrum, optionally
// restricted to a region.
package spectral

import (
	"errors"
	"math"

	"github.com/cwbudde/algo-spectral/dsp/region"
	"github.com/cwbudde/algo-spectral/dsp/spectrum"
	"github.com/cwbudde/algo-spectral/dsp/units"
)

// ErrNoSamples is returned when every sample is masked.
var ErrNoSamples = errors.New("spectral: no unmasked samples")

// Stats holds flux statistics of a spectrum. Coordinates are in Unit.
type Stats struct {
	Count    int        // unmasked samples
	Unit     units.Unit // spectral axis unit
	Sum      float64
	Mean     float64
	Max      float64
	MaxAt    float64 // coordinate of Max
	Min      float64
	MinAt    float64 // coordinate of Min
	Centroid float64 // flux-weighted mean coordinate
	Spread   float64 // flux-weighted standard deviation around Centroid
	Integral float64 // trapezoidal integral of flux over the coordinate
}

// Calculate computes statistics over all unmasked samples of s.
func Calculate(s *spectrum.Spectrum) (Stats, error) {
	coords := s.Coordinates()
	flux := s.Flux()
	mask := s.Mask()
	bad := func(i int) bool { return mask != nil && mask[i] }

	st := Stats{Unit: s.Axis().Unit(), Min: math.Inf(1), Max: math.Inf(-1)}
	weighted := 0.0
	for i, v := range flux {
		if bad(i) {
			continue
		}
		st.Count++
		st.Sum += v
		weighted += coords[i] * v
		if v > st.Max {
			st.Max, st.MaxAt = v, coords[i]
		}
		if v < st.Min {
			st.Min, st.MinAt = v, coords[i]
		}
		if i > 0 && !bad(i-1) {
			st.Integral += 0.5 * (v + flux[i-1]) * (coords[i] - coords[i-1])
		}
	}
	if st.Count == 0 {
		return Stats{}, ErrNoSamples
	}
	st.Mean = st.Sum / float64(st.Count)

	if st.Sum != 0 {
		st.Centroid = weighted / st.Sum
		sq := 0.0
		for i, v := range flux {
			if bad(i) {
				continue
			}
			d := coords[i] - st.Centroid
			sq += d * d * v
		}
		st.Spread = math.Sqrt(math.Max(sq/st.Sum, 0))
	}
	return st, nil
}

// CalculateIn excises r from s and computes statistics over the result.
func CalculateIn(s *spectrum.Spectrum, r region.Region) (Stats, error) {
	sub, err := s.Excise(r)
	if err != nil {
		return Stats{}, err
	}
	return Calculate(sub)
}
