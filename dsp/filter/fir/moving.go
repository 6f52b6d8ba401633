package fir

import (
	"math"
	"math/cmplx"
)

// MovingAverage is an N-tap boxcar filter:
//
//	y[n] = (x[n] + x[n-1] + ... + x[n-N+1]) / N
//
// with x[k] = 0 for samples before the first one.
type MovingAverage struct {
	w window
}

// NewMovingAverage returns a moving average over n samples.
func NewMovingAverage(n int) (*MovingAverage, error) {
	w, err := newWindow(n)
	if err != nil {
		return nil, err
	}

	return &MovingAverage{w: w}, nil
}

// Len returns the window length N.
func (m *MovingAverage) Len() int { return len(m.w.buf) }

// Resize changes the window length and clears the history.
func (m *MovingAverage) Resize(n int) error { return m.w.resize(n) }

// Reset clears the history to zero.
func (m *MovingAverage) Reset() { m.w.reset() }

// ProcessSample filters one input sample.
func (m *MovingAverage) ProcessSample(x float64) float64 {
	m.w.push(x)
	return m.w.mean()
}

// ProcessBlock filters a block of samples in-place.
func (m *MovingAverage) ProcessBlock(buf []float64) {
	for i, x := range buf {
		buf[i] = m.ProcessSample(x)
	}
}

// ProcessBlockTo filters src into dst. Both slices must have the same length.
func (m *MovingAverage) ProcessBlockTo(dst, src []float64) {
	if len(src) == 0 {
		return
	}

	_ = dst[len(src)-1] // bounds check hint
	for i, x := range src {
		dst[i] = m.ProcessSample(x)
	}
}

// Response computes the complex frequency response of the boxcar at the
// given frequency (Hz) and sample rate (Hz).
func (m *MovingAverage) Response(freqHz, sampleRate float64) complex128 {
	n := len(m.w.buf)
	w := 2 * math.Pi * freqHz / sampleRate

	var h complex128
	for k := range n {
		h += cmplx.Exp(complex(0, -w*float64(k)))
	}

	return h / complex(float64(n), 0)
}

// MovingRMS is the root of an N-tap moving average of x^2.
type MovingRMS struct {
	w window
}

// NewMovingRMS returns a moving RMS over n samples.
func NewMovingRMS(n int) (*MovingRMS, error) {
	w, err := newWindow(n)
	if err != nil {
		return nil, err
	}

	return &MovingRMS{w: w}, nil
}

// Len returns the window length N.
func (m *MovingRMS) Len() int { return len(m.w.buf) }

// Resize changes the window length and clears the history.
func (m *MovingRMS) Resize(n int) error { return m.w.resize(n) }

// Reset clears the history to zero.
func (m *MovingRMS) Reset() { m.w.reset() }

// ProcessSample returns the RMS of the last N inputs including x.
func (m *MovingRMS) ProcessSample(x float64) float64 {
	m.w.push(x * x)

	// The running sum may dip a few ulps below zero after large inputs leave.
	return math.Sqrt(math.Max(m.w.mean(), 0))
}

// ProcessBlock replaces each sample with the running RMS.
func (m *MovingRMS) ProcessBlock(buf []float64) {
	for i, x := range buf {
		buf[i] = m.ProcessSample(x)
	}
}

// ProcessBlockTo writes the running RMS of src into dst. Both slices must
// have the same length.
func (m *MovingRMS) ProcessBlockTo(dst, src []float64) {
	if len(src) == 0 {
		return
	}

	_ = dst[len(src)-1] // bounds check hint
	for i, x := range src {
		dst[i] = m.ProcessSample(x)
	}
}
