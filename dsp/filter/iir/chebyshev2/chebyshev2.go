// Package chebyshev2 designs Chebyshev type II (inverse Chebyshev) IIR
// filters: monotonic in the passband, equiripple in the stopband.
//
// Lowpass and highpass cutoffs mark the start of the stopband, where the
// response first reaches -stopbandDB.
package chebyshev2

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-iir/dsp/filter/iir"
	"github.com/cwbudde/algo-iir/dsp/filter/iir/chebyshev1"
)

// AnalogLowpass returns the type II prototype whose stopband begins at the
// unit frequency with stopbandDB of attenuation. Zeros lie on the
// imaginary axis; an odd order adds one real pole with its zero at
// infinity.
func AnalogLowpass(order int, stopbandDB float64) (*iir.Layout, error) {
	if err := iir.ValidateOrder(order); err != nil {
		return nil, err
	}

	if err := validateStopband(stopbandDB); err != nil {
		return nil, err
	}

	analog, err := iir.NewLayout(order)
	if err != nil {
		return nil, err
	}

	eps := math.Sqrt(1 / math.Expm1(stopbandDB*0.1*math.Ln10))
	v0 := math.Asinh(1/eps) / float64(order)
	sinhV0 := -math.Sinh(v0)
	coshV0 := math.Cosh(v0)
	fn := math.Pi / float64(2*order)

	k := 1
	for range order / 2 {
		a := sinhV0 * math.Cos(float64(k-order)*fn)
		b := coshV0 * math.Sin(float64(k-order)*fn)
		d2 := a*a + b*b
		zero := complex(0, 1/math.Cos(float64(k)*fn))

		if err := analog.InsertConjugate(complex(a/d2, b/d2), zero); err != nil {
			return nil, err
		}

		k += 2
	}

	if order%2 == 1 {
		if err := analog.Insert(complex(1/sinhV0, 0), iir.Infinity()); err != nil {
			return nil, err
		}
	}

	analog.SetNormal(0, 1)

	return analog, nil
}

// AnalogLowShelf returns a shelf prototype that is flat at gainDB near DC
// and ripples by stopbandDB around 0 dB towards infinity.
//
// It is the type I cut shelf of the opposite gain mirrored through
// s -> 1/s, which swaps the flat and rippled regions, then normalized to
// gainDB at DC.
func AnalogLowShelf(order int, gainDB, stopbandDB float64) (*iir.Layout, error) {
	mirror, err := chebyshev1.AnalogLowShelf(order, -gainDB, stopbandDB)
	if err != nil {
		return nil, err
	}

	analog, err := iir.NewLayout(order)
	if err != nil {
		return nil, err
	}

	for _, pair := range mirror.Pairs() {
		pole, zero := 1/pair.Poles.First, 1/pair.Zeros.First

		if pair.IsSinglePole() {
			err = analog.Insert(pole, zero)
		} else {
			err = analog.InsertConjugate(pole, zero)
		}

		if err != nil {
			return nil, err
		}
	}

	analog.SetNormal(0, iir.DBToMagnitude(gainDB))

	return analog, nil
}

func validateStopband(db float64) error {
	if !(db > 0) || math.IsInf(db, 0) {
		return fmt.Errorf("%w: stopband attenuation %v dB must be positive", iir.ErrInvalidParameter, db)
	}

	return nil
}

// Lowpass designs a lowpass with at least stopbandDB of attenuation from
// freq upwards.
func Lowpass(freq float64, order int, stopbandDB, sampleRate float64) (*iir.Cascade, error) {
	fc, err := iir.NormalizeCutoff(freq, sampleRate)
	if err != nil {
		return nil, err
	}

	analog, err := AnalogLowpass(order, stopbandDB)
	if err != nil {
		return nil, err
	}

	return iir.Design(analog, iir.Lowpass{Cutoff: fc})
}

// Highpass designs a highpass with at least stopbandDB of attenuation
// below freq.
func Highpass(freq float64, order int, stopbandDB, sampleRate float64) (*iir.Cascade, error) {
	fc, err := iir.NormalizeCutoff(freq, sampleRate)
	if err != nil {
		return nil, err
	}

	analog, err := AnalogLowpass(order, stopbandDB)
	if err != nil {
		return nil, err
	}

	return iir.Design(analog, iir.Highpass{Cutoff: fc})
}

// Bandpass designs a bandpass of order 2*order whose stopbands begin at
// center -/+ width/2.
func Bandpass(center, width float64, order int, stopbandDB, sampleRate float64) (*iir.Cascade, error) {
	fc, fw, err := iir.NormalizeBand(center, width, sampleRate)
	if err != nil {
		return nil, err
	}

	analog, err := AnalogLowpass(order, stopbandDB)
	if err != nil {
		return nil, err
	}

	return iir.Design(analog, iir.Bandpass{Center: fc, Width: fw})
}

// Bandstop designs a bandstop of order 2*order attenuating at least
// stopbandDB between center -/+ width/2.
func Bandstop(center, width float64, order int, stopbandDB, sampleRate float64) (*iir.Cascade, error) {
	fc, fw, err := iir.NormalizeBand(center, width, sampleRate)
	if err != nil {
		return nil, err
	}

	analog, err := AnalogLowpass(order, stopbandDB)
	if err != nil {
		return nil, err
	}

	return iir.Design(analog, iir.Bandstop{Center: fc, Width: fw})
}

// LowShelf designs a low shelf, flat at gainDB below freq.
func LowShelf(freq float64, order int, gainDB, stopbandDB, sampleRate float64) (*iir.Cascade, error) {
	fc, err := iir.NormalizeCutoff(freq, sampleRate)
	if err != nil {
		return nil, err
	}

	analog, err := AnalogLowShelf(order, gainDB, stopbandDB)
	if err != nil {
		return nil, err
	}

	return iir.Design(analog, iir.Lowpass{Cutoff: fc})
}

// HighShelf designs a high shelf, flat at gainDB above freq.
func HighShelf(freq float64, order int, gainDB, stopbandDB, sampleRate float64) (*iir.Cascade, error) {
	fc, err := iir.NormalizeCutoff(freq, sampleRate)
	if err != nil {
		return nil, err
	}

	analog, err := AnalogLowShelf(order, gainDB, stopbandDB)
	if err != nil {
		return nil, err
	}

	return iir.Design(analog, iir.Highpass{Cutoff: fc})
}

// BandShelf designs a band shelf, flat at gainDB in the middle of the
// band. The prototype is normalized at its flat region, so the plain
// bandpass mapping keeps that reference at the band center.
func BandShelf(center, width float64, order int, gainDB, stopbandDB, sampleRate float64) (*iir.Cascade, error) {
	fc, fw, err := iir.NormalizeBand(center, width, sampleRate)
	if err != nil {
		return nil, err
	}

	analog, err := AnalogLowShelf(order, gainDB, stopbandDB)
	if err != nil {
		return nil, err
	}

	return iir.Design(analog, iir.Bandpass{Center: fc, Width: fw})
}
