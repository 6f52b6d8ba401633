package design

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-iir/dsp/filter/biquad"
)

// Zoelzer designs a single biquad from Zölzer's prewarped bilinear tables,
// with K = tan(pi*freq/sampleRate).
//
// Supported types are TypeLowpass, TypeHighpass, TypeBandpassPeak,
// TypeNotch, TypePeak, TypeLowShelf and TypeHighShelf. The shelves use a
// fixed Butterworth Q and ignore q. Peak and shelf designs switch between
// the boost and cut forms on the sign of gainDB, so a cut is the exact
// inverse of the boost with the same |gainDB|.
func Zoelzer(typ Type, freq, q, gainDB, sampleRate float64) (biquad.Coefficients, error) {
	w0, err := normalizedW0(freq, sampleRate)
	if err != nil {
		return biquad.Coefficients{}, err
	}

	if typ != TypeLowShelf && typ != TypeHighShelf {
		if err := validateQ(q); err != nil {
			return biquad.Coefficients{}, err
		}
	}

	if err := validateGain(gainDB); err != nil {
		return biquad.Coefficients{}, err
	}

	k := math.Tan(w0 / 2)
	kk := k * k
	v := math.Pow(10, math.Abs(gainDB)/20)
	boost := gainDB >= 0

	switch typ {
	case TypeLowpass:
		return normalizeBiquad(kk, 2*kk, kk, 1+k/q+kk, 2*(kk-1), 1-k/q+kk)
	case TypeHighpass:
		return normalizeBiquad(1, -2, 1, 1+k/q+kk, 2*(kk-1), 1-k/q+kk)
	case TypeBandpassPeak:
		return normalizeBiquad(k/q, 0, -k/q, 1+k/q+kk, 2*(kk-1), 1-k/q+kk)
	case TypeNotch:
		return normalizeBiquad(1+kk, 2*(kk-1), 1+kk, 1+k/q+kk, 2*(kk-1), 1-k/q+kk)
	case TypePeak:
		num := [3]float64{1 + v/q*k + kk, 2 * (kk - 1), 1 - v/q*k + kk}
		den := [3]float64{1 + k/q + kk, 2 * (kk - 1), 1 - k/q + kk}

		return zoelzerSection(num, den, boost)
	case TypeLowShelf:
		num := [3]float64{1 + math.Sqrt(2*v)*k + v*kk, 2 * (v*kk - 1), 1 - math.Sqrt(2*v)*k + v*kk}
		den := [3]float64{1 + math.Sqrt2*k + kk, 2 * (kk - 1), 1 - math.Sqrt2*k + kk}

		return zoelzerSection(num, den, boost)
	case TypeHighShelf:
		num := [3]float64{v + math.Sqrt(2*v)*k + kk, 2 * (kk - v), v - math.Sqrt(2*v)*k + kk}
		den := [3]float64{1 + math.Sqrt2*k + kk, 2 * (kk - 1), 1 - math.Sqrt2*k + kk}

		return zoelzerSection(num, den, boost)
	default:
		return biquad.Coefficients{}, fmt.Errorf("%w: zoelzer %v", ErrUnsupportedType, typ)
	}
}

// zoelzerSection builds the boost section num/den, or its reciprocal for a cut.
func zoelzerSection(num, den [3]float64, boost bool) (biquad.Coefficients, error) {
	if !boost {
		num, den = den, num
	}

	return normalizeBiquad(num[0], num[1], num[2], den[0], den[1], den[2])
}
