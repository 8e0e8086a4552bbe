package spectrum

import (
	"fmt"
	"sync"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-spectral/dsp/core"
	"github.com/cwbudde/algo-spectral/dsp/units"
	"github.com/cwbudde/algo-spectral/dsp/window"
)

// DecibelUnit is the flux label of spectra produced with [WithDecibels].
const DecibelUnit = "dBFS"

// scratchBuf holds pooled scratch memory for complex-to-real unpacking.
type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

func getScratch(n int) (re, im []float64, buf *scratchBuf) {
	buf = scratchPool.Get().(*scratchBuf)
	need := 2 * n
	if cap(buf.data) < need {
		buf.data = make([]float64, need)
	} else {
		buf.data = buf.data[:need]
	}
	return buf.data[:n], buf.data[n:need], buf
}

func putScratch(buf *scratchBuf) {
	scratchPool.Put(buf)
}

// AnalysisOption configures [Analyze].
type AnalysisOption func(*analysisConfig)

type analysisConfig struct {
	window   window.Type
	fftSize  int
	decibels bool
}

// WithWindow selects the window applied before the FFT. Default is Hann.
func WithWindow(t window.Type) AnalysisOption {
	return func(c *analysisConfig) {
		c.window = t
	}
}

// WithFFTSize sets the FFT length. Non-positive sizes are ignored; the
// default is the next power of two covering the input.
func WithFFTSize(n int) AnalysisOption {
	return func(c *analysisConfig) {
		if n > 0 {
			c.fftSize = n
		}
	}
}

// WithDecibels reports magnitudes in dB (20*log10) instead of linear amplitude.
func WithDecibels() AnalysisOption {
	return func(c *analysisConfig) {
		c.decibels = true
	}
}

// Analyze computes the single-sided amplitude spectrum of real samples.
//
// The result has fftSize/2+1 samples on a linear Hz axis starting at DC with
// spacing sampleRate/fftSize. Amplitudes are corrected for the window's
// coherent gain, so a bin-centred sine of amplitude A reads A.
func Analyze(samples []float64, sampleRate float64, opts ...AnalysisOption) (*Spectrum, error) {
	if len(samples) == 0 {
		return nil, ErrEmptyInput
	}
	if !core.IsFinite(sampleRate) || sampleRate <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSampleRate, sampleRate)
	}

	cfg := analysisConfig{window: window.TypeHann}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	n := len(samples)
	fftSize := cfg.fftSize
	if fftSize == 0 {
		fftSize = max(core.NextPowerOf2(n), 2)
	}
	if fftSize < n || fftSize < 2 {
		return nil, fmt.Errorf("%w: size %d, input %d", ErrFFTSize, fftSize, n)
	}

	coeffs := window.Generate(cfg.window, n, window.WithPeriodic())
	gain, err := window.CoherentGain(coeffs)
	if err != nil {
		return nil, fmt.Errorf("spectrum: %w", err)
	}
	windowed := append([]float64(nil), samples...)
	if err := window.Apply(windowed, coeffs); err != nil {
		return nil, fmt.Errorf("spectrum: %w", err)
	}

	in := make([]complex128, fftSize)
	for i, v := range windowed {
		in[i] = complex(v, 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("spectrum: fft plan: %w", err)
	}
	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		return nil, fmt.Errorf("spectrum: fft forward: %w", err)
	}

	bins := fftSize/2 + 1
	mag := make([]float64, bins)
	re, im, buf := getScratch(bins)
	for k := range bins {
		re[k] = real(out[k])
		im[k] = imag(out[k])
	}
	vecmath.Magnitude(mag, re, im)
	putScratch(buf)

	scale := 2 / (float64(n) * gain)
	for k := range mag {
		if k == 0 || (k == bins-1 && fftSize%2 == 0) {
			mag[k] *= scale / 2
		} else {
			mag[k] *= scale
		}
		if cfg.decibels {
			mag[k] = core.LinearToDB(mag[k])
		}
	}

	axis, err := NewLinearAxis(0, sampleRate/float64(fftSize), bins, units.Hertz)
	if err != nil {
		return nil, err
	}

	var fluxOpts []Option
	if cfg.decibels {
		fluxOpts = append(fluxOpts, WithFluxUnit(DecibelUnit))
	}
	return New(axis, mag, fluxOpts...)
}
