package design

import (
	"fmt"
	"math"
)

// Prewarp returns the analog angular frequency (rad/s) that the bilinear
// transform at sampleRate maps onto freq (Hz).
func Prewarp(freq, sampleRate float64) float64 {
	return 2 * sampleRate * math.Tan(math.Pi*freq/sampleRate)
}

// AnalogRBJ returns the prewarped s-domain section behind [RBJ] as
// {s^2, s, 1} numerator and denominator coefficients. Passing them through
// [BilinearSection] at the same sample rate reproduces the RBJ design.
func AnalogRBJ(typ Type, freq, q, gainDB, sampleRate float64) (num, den [3]float64, err error) {
	if _, err := normalizedW0(freq, sampleRate); err != nil {
		return num, den, err
	}

	if err := validateQ(q); err != nil {
		return num, den, err
	}

	if err := validateGain(gainDB); err != nil {
		return num, den, err
	}

	wa := Prewarp(freq, sampleRate)
	w2 := wa * wa
	den = [3]float64{1, wa / q, w2}

	switch typ {
	case TypeLowpass:
		num = [3]float64{0, 0, w2}
	case TypeHighpass:
		num = [3]float64{1, 0, 0}
	case TypeBandpassSkirt:
		num = [3]float64{0, wa, 0}
	case TypeBandpassPeak:
		num = [3]float64{0, wa / q, 0}
	case TypeNotch:
		num = [3]float64{1, 0, w2}
	case TypeAllpass:
		num = [3]float64{1, -wa / q, w2}
	case TypePeak:
		a := math.Pow(10, gainDB/40)
		num = [3]float64{1, a * wa / q, w2}
		den = [3]float64{1, wa / (a * q), w2}
	case TypeLowShelf:
		a := math.Pow(10, gainDB/40)
		sa := math.Sqrt(a) * wa / q
		num = [3]float64{a, a * sa, a * a * w2}
		den = [3]float64{a, sa, w2}
	case TypeHighShelf:
		a := math.Pow(10, gainDB/40)
		sa := math.Sqrt(a) * wa / q
		num = [3]float64{a * a, a * sa, a * w2}
		den = [3]float64{1, sa, a * w2}
	default:
		return num, den, fmt.Errorf("%w: analog rbj %v", ErrUnsupportedType, typ)
	}

	return num, den, nil
}
