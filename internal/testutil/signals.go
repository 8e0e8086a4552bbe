package testutil

import "math"

// Tone generates a sum of sine components. freqs and amps must have equal
// length; components start at phase 0.
func Tone(sampleRate float64, length int, freqs, amps []float64) []float64 {
	out := make([]float64, length)
	for k, f := range freqs {
		step := 2 * math.Pi * f / sampleRate
		for i := range out {
			out[i] += amps[k] * math.Sin(step*float64(i))
		}
	}
	return out
}

// Ramp returns 0, 1, ..., n-1 as float64.
func Ramp(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i)
	}
	return out
}

// Grid returns n evenly spaced coordinates starting at start.
func Grid(start, step float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	return out
}
