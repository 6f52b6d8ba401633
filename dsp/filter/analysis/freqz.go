package analysis

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"
)

var (
	// ErrInvalidSize is returned for a non-positive point count or an FFT
	// size that is not a power of two large enough for the input.
	ErrInvalidSize = errors.New("analysis: invalid size")

	// ErrInvalidRate is returned for a non-positive or non-finite sample rate.
	ErrInvalidRate = errors.New("analysis: invalid sample rate")

	// ErrInvalidBand is returned when a frequency range is empty or outside
	// the analyzed grid.
	ErrInvalidBand = errors.New("analysis: invalid frequency band")
)

// Responder evaluates a transfer function at a normalized frequency in
// cycles/sample. *iir.Cascade implements it.
type Responder interface {
	Response(f float64) complex128
}

// ResponderFunc adapts a plain function to Responder.
type ResponderFunc func(f float64) complex128

// Response calls fn(f).
func (fn ResponderFunc) Response(f float64) complex128 { return fn(f) }

// HzResponder evaluates a transfer function at a frequency in Hz.
// *biquad.Coefficients and *biquad.Chain implement it.
type HzResponder interface {
	Response(freqHz, sampleRate float64) complex128
}

// FromHz adapts an HzResponder running at sampleRate to Responder.
func FromHz(r HzResponder, sampleRate float64) Responder {
	return ResponderFunc(func(f float64) complex128 {
		return r.Response(f*sampleRate, sampleRate)
	})
}

type config struct {
	whole  bool
	logMin float64
}

// Option configures Freqz.
type Option func(*config)

// WithWholeCircle samples [0, sampleRate) at sampleRate/n spacing, the grid
// of an n-point DFT, instead of [0, sampleRate/2].
func WithWholeCircle() Option {
	return func(c *config) { c.whole = true }
}

// WithLogSpacing samples logarithmically from minHz up to Nyquist.
// It is ignored when combined with WithWholeCircle.
func WithLogSpacing(minHz float64) Option {
	return func(c *config) { c.logMin = minHz }
}

// Response is a sampled frequency response.
type Response struct {
	Frequencies []float64    // Hz
	Values      []complex128 // H at each frequency
}

// Freqz evaluates r at n frequencies. By default the grid runs linearly
// from DC to Nyquist, both included.
func Freqz(r Responder, n int, sampleRate float64, opts ...Option) (Response, error) {
	if n < 2 {
		return Response{}, fmt.Errorf("%w: %d points", ErrInvalidSize, n)
	}

	if !(sampleRate > 0) || math.IsInf(sampleRate, 0) {
		return Response{}, fmt.Errorf("%w: %v", ErrInvalidRate, sampleRate)
	}

	var cfg config
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	freqs := make([]float64, n)

	switch {
	case cfg.whole:
		floats.Span(freqs, 0, sampleRate*float64(n-1)/float64(n))
	case cfg.logMin != 0:
		if !(cfg.logMin > 0 && cfg.logMin < sampleRate/2) {
			return Response{}, fmt.Errorf("%w: log start %v Hz", ErrInvalidBand, cfg.logMin)
		}

		floats.LogSpan(freqs, cfg.logMin, sampleRate/2)
	default:
		floats.Span(freqs, 0, sampleRate/2)
	}

	values := make([]complex128, n)
	for i, f := range freqs {
		values[i] = r.Response(f / sampleRate)
	}

	return Response{Frequencies: freqs, Values: values}, nil
}

// Len returns the number of frequency points.
func (r Response) Len() int { return len(r.Values) }

// Magnitude returns |H| at each point.
func (r Response) Magnitude() []float64 {
	return magnitude(r.Values)
}

// MagnitudeDB returns 20*log10|H| at each point.
func (r Response) MagnitudeDB() []float64 {
	out := r.Magnitude()
	for i, m := range out {
		out[i] = 20 * math.Log10(m)
	}

	return out
}

// Phase returns the wrapped phase in radians at each point.
func (r Response) Phase() []float64 {
	out := make([]float64, len(r.Values))
	for i, v := range r.Values {
		out[i] = cmplx.Phase(v)
	}

	return out
}

// UnwrappedPhase returns the phase with 2*pi jumps between neighboring
// points removed.
func (r Response) UnwrappedPhase() []float64 {
	out := r.Phase()
	offset := 0.0

	for i := 1; i < len(out); i++ {
		raw := out[i] + offset
		d := raw - out[i-1]

		switch {
		case d > math.Pi:
			offset -= 2 * math.Pi
		case d < -math.Pi:
			offset += 2 * math.Pi
		}

		out[i] += offset
	}

	return out
}

func magnitude(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}

	out := make([]float64, len(in))
	re := make([]float64, len(in))
	im := make([]float64, len(in))

	for i, c := range in {
		re[i] = real(c)
		im[i] = imag(c)
	}

	vecmath.Magnitude(out, re, im)

	return out
}
