package iir

import (
	"fmt"

	"github.com/cwbudde/algo-iir/dsp/filter/biquad"
)

// Synthesize converts one digital pole/zero pair into biquad coefficients.
//
// A single pole yields a first-order section with B2 == A2 == 0. Any other
// pair must hold matched poles and matched zeros; the section is then the
// expansion of (1 - z1 z^-1)(1 - z2 z^-1) / (1 - p1 z^-1)(1 - p2 z^-1).
func Synthesize(pair PoleZeroPair) (biquad.Coefficients, error) {
	if pair.IsNaN() {
		return biquad.Coefficients{}, ErrNaN
	}

	var c biquad.Coefficients

	if pair.IsSinglePole() {
		p, z := pair.Poles.First, pair.Zeros.First
		if imag(p) != 0 || imag(z) != 0 {
			return biquad.Coefficients{}, fmt.Errorf("%w: single pole %v and zero %v must be real", ErrMismatchedPair, p, z)
		}

		c = biquad.Coefficients{B0: 1, B1: -real(z), A1: -real(p)}
	} else {
		if !pair.Poles.IsMatchedPair() || !pair.Zeros.IsMatchedPair() {
			return biquad.Coefficients{}, fmt.Errorf("%w: poles %v, zeros %v", ErrMismatchedPair, pair.Poles, pair.Zeros)
		}

		a1, a2 := expandPair(pair.Poles)
		b1, b2 := expandPair(pair.Zeros)
		c = biquad.Coefficients{B0: 1, B1: b1, B2: b2, A1: a1, A2: a2}
	}

	if !c.IsFinite() {
		return biquad.Coefficients{}, fmt.Errorf("%w: %+v", ErrNonFinite, c)
	}

	return c, nil
}

// expandPair returns the z^-1 and z^-2 coefficients of the monic
// polynomial with roots p.First and p.Second.
func expandPair(p ComplexPair) (float64, float64) {
	r := p.First
	if imag(r) != 0 {
		return -2 * real(r), real(r)*real(r) + imag(r)*imag(r)
	}

	return -(real(r) + real(p.Second)), real(r) * real(p.Second)
}
