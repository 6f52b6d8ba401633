package biquad

import (
	"errors"
	"math"
)

// ErrZeroA0 is returned by NewCoefficients when the leading denominator
// coefficient is zero or not finite.
var ErrZeroA0 = errors.New("biquad: a0 must be finite and non-zero")

// Coefficients holds the transfer function coefficients for a single
// second-order section (biquad). a0 is normalized to 1 and not stored.
//
// The sign convention follows Direct Form II Transposed:
//
//	y  = B0*x + d0
//	d0 = B1*x - A1*y + d1
//	d1 = B2*x - A2*y
type Coefficients struct {
	B0, B1, B2 float64 // feedforward (numerator)
	A1, A2     float64 // feedback (denominator)
}

// NewCoefficients builds normalized coefficients from the six-term transfer
// function (b0 + b1 z^-1 + b2 z^-2) / (a0 + a1 z^-1 + a2 z^-2).
func NewCoefficients(b0, b1, b2, a0, a1, a2 float64) (Coefficients, error) {
	if a0 == 0 || math.IsNaN(a0) || math.IsInf(a0, 0) {
		return Coefficients{}, ErrZeroA0
	}

	return Coefficients{
		B0: b0 / a0,
		B1: b1 / a0,
		B2: b2 / a0,
		A1: a1 / a0,
		A2: a2 / a0,
	}, nil
}

// IsFirstOrder reports whether the second-order slots are unused.
func (c *Coefficients) IsFirstOrder() bool {
	return c.B2 == 0 && c.A2 == 0
}

// IsStable reports whether both poles lie strictly inside the unit circle,
// using the stability triangle |a2| < 1, |a1| < 1 + a2.
func (c *Coefficients) IsStable() bool {
	return math.Abs(c.A2) < 1 && math.Abs(c.A1) < 1+c.A2
}

// Scale multiplies the numerator by g, leaving the poles untouched.
func (c *Coefficients) Scale(g float64) {
	c.B0 *= g
	c.B1 *= g
	c.B2 *= g
}

// IsFinite reports whether all coefficients are finite numbers.
func (c *Coefficients) IsFinite() bool {
	for _, v := range [...]float64{c.B0, c.B1, c.B2, c.A1, c.A2} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return true
}
