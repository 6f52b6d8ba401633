package testutil

import (
	"math"
	"math/rand/v2"
)

// Impulse returns a unit impulse of the given length at index 0.
func Impulse(length int) []float64 {
	out := make([]float64, length)
	if length > 0 {
		out[0] = 1
	}

	return out
}

// Sine returns amplitude*sin(2*pi*freqHz*n/sampleRate) for n in [0, length).
func Sine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)

	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}

	return out
}

// Noise returns uniform noise in [-amplitude, amplitude) from a seeded PCG
// source, so repeated calls with the same seed give the same slice.
func Noise(seed uint64, amplitude float64, length int) []float64 {
	out := make([]float64, length)

	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}

	return out
}

// RMS returns the root mean square of x, skipping the first skip samples.
func RMS(x []float64, skip int) float64 {
	if skip >= len(x) {
		return 0
	}

	var sum float64
	for _, v := range x[skip:] {
		sum += v * v
	}

	return math.Sqrt(sum / float64(len(x)-skip))
}
