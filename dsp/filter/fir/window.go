package fir

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// ErrInvalidLength is returned for a window length below 1.
var ErrInvalidLength = errors.New("fir: window length must be at least 1")

// window is a circular delay line of the last len(buf) values and their sum.
type window struct {
	buf []float64
	pos int
	sum float64
}

func newWindow(n int) (window, error) {
	if n < 1 {
		return window{}, fmt.Errorf("%w: %d", ErrInvalidLength, n)
	}

	return window{buf: make([]float64, n)}, nil
}

// push replaces the oldest value with v.
func (w *window) push(v float64) {
	w.sum += v - w.buf[w.pos]
	w.buf[w.pos] = v

	w.pos++
	if w.pos == len(w.buf) {
		w.pos = 0
		// Re-sum once per lap so rounding drift stays bounded.
		w.sum = floats.Sum(w.buf)
	}
}

func (w *window) mean() float64 {
	return w.sum / float64(len(w.buf))
}

func (w *window) reset() {
	clear(w.buf)
	w.pos = 0
	w.sum = 0
}

func (w *window) resize(n int) error {
	if n < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidLength, n)
	}

	if cap(w.buf) >= n {
		w.buf = w.buf[:n]
	} else {
		w.buf = make([]float64, n)
	}

	w.reset()

	return nil
}
