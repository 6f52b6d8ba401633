package analysis

import (
	"fmt"

	algofft "github.com/cwbudde/algo-fft"
)

// SpectrumFromImpulse zero-pads ir to fftSize and returns its full complex
// DFT. fftSize must be a power of two no smaller than len(ir).
func SpectrumFromImpulse(ir []float64, fftSize int) ([]complex128, error) {
	if fftSize < 1 || fftSize&(fftSize-1) != 0 {
		return nil, fmt.Errorf("%w: fft size %d is not a power of two", ErrInvalidSize, fftSize)
	}

	if len(ir) > fftSize {
		return nil, fmt.Errorf("%w: impulse length %d exceeds fft size %d", ErrInvalidSize, len(ir), fftSize)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("analysis: failed to create FFT plan: %w", err)
	}

	in := make([]complex128, fftSize)
	for i, v := range ir {
		in[i] = complex(v, 0)
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		return nil, err
	}

	return out, nil
}

// MagnitudeSpectrum returns |X[k]| for bins 0..fftSize/2 of the
// zero-padded impulse response.
func MagnitudeSpectrum(ir []float64, fftSize int) ([]float64, error) {
	spec, err := SpectrumFromImpulse(ir, fftSize)
	if err != nil {
		return nil, err
	}

	return magnitude(spec[:fftSize/2+1]), nil
}
