package design

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-iir/dsp/filter/biquad"
)

// RBJ designs a single biquad from the audio EQ cookbook.
//
// freq is the corner or center frequency in Hz and must lie strictly
// between DC and Nyquist. q must be positive. gainDB is used by TypePeak,
// TypeLowShelf and TypeHighShelf and ignored otherwise.
func RBJ(typ Type, freq, q, gainDB, sampleRate float64) (biquad.Coefficients, error) {
	w0, err := normalizedW0(freq, sampleRate)
	if err != nil {
		return biquad.Coefficients{}, err
	}

	if err := validateQ(q); err != nil {
		return biquad.Coefficients{}, err
	}

	if err := validateGain(gainDB); err != nil {
		return biquad.Coefficients{}, err
	}

	cw := math.Cos(w0)
	sw := math.Sin(w0)
	alpha := sw / (2 * q)

	switch typ {
	case TypeLowpass:
		b := (1 - cw) / 2
		return normalizeBiquad(b, 1-cw, b, 1+alpha, -2*cw, 1-alpha)
	case TypeHighpass:
		b := (1 + cw) / 2
		return normalizeBiquad(b, -(1 + cw), b, 1+alpha, -2*cw, 1-alpha)
	case TypeBandpassSkirt:
		return normalizeBiquad(q*alpha, 0, -q*alpha, 1+alpha, -2*cw, 1-alpha)
	case TypeBandpassPeak:
		return normalizeBiquad(alpha, 0, -alpha, 1+alpha, -2*cw, 1-alpha)
	case TypeNotch:
		return normalizeBiquad(1, -2*cw, 1, 1+alpha, -2*cw, 1-alpha)
	case TypeAllpass:
		return normalizeBiquad(1-alpha, -2*cw, 1+alpha, 1+alpha, -2*cw, 1-alpha)
	case TypePeak:
		a := math.Pow(10, gainDB/40)
		return normalizeBiquad(1+alpha*a, -2*cw, 1-alpha*a, 1+alpha/a, -2*cw, 1-alpha/a)
	case TypeLowShelf:
		a := math.Pow(10, gainDB/40)
		beta := 2 * math.Sqrt(a) * alpha

		return normalizeBiquad(
			a*((a+1)-(a-1)*cw+beta),
			2*a*((a-1)-(a+1)*cw),
			a*((a+1)-(a-1)*cw-beta),
			(a+1)+(a-1)*cw+beta,
			-2*((a-1)+(a+1)*cw),
			(a+1)+(a-1)*cw-beta,
		)
	case TypeHighShelf:
		a := math.Pow(10, gainDB/40)
		beta := 2 * math.Sqrt(a) * alpha

		return normalizeBiquad(
			a*((a+1)+(a-1)*cw+beta),
			-2*a*((a-1)+(a+1)*cw),
			a*((a+1)+(a-1)*cw-beta),
			(a+1)-(a-1)*cw+beta,
			2*((a-1)-(a+1)*cw),
			(a+1)-(a-1)*cw-beta,
		)
	default:
		return biquad.Coefficients{}, fmt.Errorf("%w: rbj %v", ErrUnsupportedType, typ)
	}
}
