package design

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/cwbudde/algo-iir/dsp/filter/biquad"
)

var (
	// ErrInvalidParams is returned when a frequency, Q or gain is outside
	// the range a designer accepts.
	ErrInvalidParams = errors.New("design: invalid parameters")

	// ErrUnsupportedType is returned when a family has no design for the
	// requested response type.
	ErrUnsupportedType = errors.New("design: unsupported filter type")
)

// Type selects the response shape of a single-section design.
type Type int

const (
	TypeLowpass       Type = iota
	TypeHighpass
	TypeBandpassSkirt // constant skirt gain, peak gain = Q
	TypeBandpassPeak  // 0 dB peak gain
	TypeNotch
	TypeAllpass
	TypePeak // peaking EQ
	TypeLowShelf
	TypeHighShelf
)

var typeNames = [...]string{
	TypeLowpass:       "lowpass",
	TypeHighpass:      "highpass",
	TypeBandpassSkirt: "bandpass-skirt",
	TypeBandpassPeak:  "bandpass",
	TypeNotch:         "notch",
	TypeAllpass:       "allpass",
	TypePeak:          "peak",
	TypeLowShelf:      "lowshelf",
	TypeHighShelf:     "highshelf",
}

func (t Type) String() string {
	if t < 0 || int(t) >= len(typeNames) {
		return fmt.Sprintf("Type(%d)", int(t))
	}

	return typeNames[t]
}

// Types returns every defined Type in declaration order.
func Types() []Type {
	out := make([]Type, len(typeNames))
	for i := range out {
		out[i] = Type(i)
	}

	return out
}

// ParseType maps a name as printed by Type.String back to its Type.
// Matching ignores case.
func ParseType(name string) (Type, error) {
	for i, n := range typeNames {
		if strings.EqualFold(n, name) {
			return Type(i), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnsupportedType, name)
}

// BilinearTransform converts an analog second-order polynomial
// c0*s^2 + c1*s + c2 into the digital z^-1-domain polynomial
// d0 + d1*z^-1 + d2*z^-2 using the bilinear transform s = 2fs(1-z^-1)/(1+z^-1).
//
// The returned coefficients are normalized such that d0 = 1. Degenerate
// input yields the identity polynomial {1, 0, 0}.
func BilinearTransform(sCoeffs [3]float64, sampleRate float64) [3]float64 {
	if sampleRate <= 0 {
		return [3]float64{1, 0, 0}
	}

	d := bilinear(sCoeffs, sampleRate)
	if d[0] == 0 || math.IsNaN(d[0]) || math.IsInf(d[0], 0) {
		return [3]float64{1, 0, 0}
	}

	return [3]float64{1, d[1] / d[0], d[2] / d[0]}
}

// BilinearSection maps the analog section num(s)/den(s), both given as
// {s^2, s, 1} coefficients, to a digital biquad. Frequencies are not
// prewarped; see [Prewarp].
func BilinearSection(num, den [3]float64, sampleRate float64) (biquad.Coefficients, error) {
	if !(sampleRate > 0) || math.IsInf(sampleRate, 0) {
		return biquad.Coefficients{}, fmt.Errorf("%w: sample rate %v", ErrInvalidParams, sampleRate)
	}

	b := bilinear(num, sampleRate)
	a := bilinear(den, sampleRate)

	return normalizeBiquad(b[0], b[1], b[2], a[0], a[1], a[2])
}

// bilinear substitutes s = k(1-z^-1)/(1+z^-1), k = 2fs, and clears the
// (1+z^-1)^2 denominator. The result is not normalized.
func bilinear(s [3]float64, sampleRate float64) [3]float64 {
	k := 2 * sampleRate
	kk := k * k
	c0, c1, c2 := s[0], s[1], s[2]

	return [3]float64{
		c0*kk + c1*k + c2,
		2 * (c2 - c0*kk),
		c0*kk - c1*k + c2,
	}
}

// normalizedW0 returns the angular frequency 2*pi*freq/sampleRate after
// checking that freq lies strictly between DC and Nyquist.
func normalizedW0(freq, sampleRate float64) (float64, error) {
	if !(sampleRate > 0) || math.IsInf(sampleRate, 0) {
		return 0, fmt.Errorf("%w: sample rate %v", ErrInvalidParams, sampleRate)
	}

	if !(freq > 0 && freq < sampleRate/2) {
		return 0, fmt.Errorf("%w: frequency %v Hz not in (0, %v)", ErrInvalidParams, freq, sampleRate/2)
	}

	return 2 * math.Pi * freq / sampleRate, nil
}

func validateQ(q float64) error {
	if !(q > 0) || math.IsInf(q, 0) {
		return fmt.Errorf("%w: q %v", ErrInvalidParams, q)
	}

	return nil
}

func validateGain(gainDB float64) error {
	if math.IsNaN(gainDB) || math.IsInf(gainDB, 0) {
		return fmt.Errorf("%w: gain %v dB", ErrInvalidParams, gainDB)
	}

	return nil
}

func normalizeBiquad(b0, b1, b2, a0, a1, a2 float64) (biquad.Coefficients, error) {
	c, err := biquad.NewCoefficients(b0, b1, b2, a0, a1, a2)
	if err != nil {
		return biquad.Coefficients{}, fmt.Errorf("%w: %w", ErrInvalidParams, err)
	}

	return c, nil
}
