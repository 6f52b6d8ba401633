// Package chebyshev1 designs Chebyshev type I IIR filters: equiripple in
// the passband, monotonic in the stopband.
//
// Ripple arguments are peak-to-peak passband ripple in dB and must be
// positive. Shelf designers place the ripple inside the shelf.
package chebyshev1

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-iir/dsp/filter/iir"
)

// AnalogLowpass returns the type I prototype for rippleDB of passband
// ripple. The response at the unit cutoff is -rippleDB.
func AnalogLowpass(order int, rippleDB float64) (*iir.Layout, error) {
	if err := iir.ValidateOrder(order); err != nil {
		return nil, err
	}

	if err := validateRipple(rippleDB); err != nil {
		return nil, err
	}

	analog, err := iir.NewLayout(order)
	if err != nil {
		return nil, err
	}

	eps := math.Sqrt(math.Pow(10, rippleDB/10) - 1)
	v0 := math.Asinh(1/eps) / float64(order)
	sinhV0 := -math.Sinh(v0)
	coshV0 := math.Cosh(v0)
	n2 := float64(2 * order)

	for i := range order / 2 {
		k := float64(2*i + 1 - order)
		p := complex(sinhV0*math.Cos(k*math.Pi/n2), coshV0*math.Sin(k*math.Pi/n2))

		if err := analog.InsertConjugate(p, iir.Infinity()); err != nil {
			return nil, err
		}
	}

	if order%2 == 1 {
		if err := analog.Insert(complex(sinhV0, 0), iir.Infinity()); err != nil {
			return nil, err
		}

		analog.SetNormal(0, 1)
	} else {
		// Even orders start the ripple at its lower bound.
		analog.SetNormal(0, iir.DBToMagnitude(-rippleDB))
	}

	return analog, nil
}

// AnalogLowShelf returns a shelf prototype with gainDB at DC and unity at
// infinity. The ripple lies between the shelf gain and the shelf gain
// moved rippleDB towards 0 dB, so it must be smaller than |gainDB|.
func AnalogLowShelf(order int, gainDB, rippleDB float64) (*iir.Layout, error) {
	if err := iir.ValidateOrder(order); err != nil {
		return nil, err
	}

	if err := iir.ValidateGain(gainDB); err != nil {
		return nil, err
	}

	if err := validateRipple(rippleDB); err != nil {
		return nil, err
	}

	analog, err := iir.NewLayout(order)
	if err != nil {
		return nil, err
	}

	analog.SetNormal(math.Pi, 1)

	if gainDB == 0 {
		if err := insertFlat(analog, order); err != nil {
			return nil, err
		}

		return analog, nil
	}

	if rippleDB >= math.Abs(gainDB) {
		return nil, fmt.Errorf("%w: ripple %v dB must be below |gain| %v dB", iir.ErrInvalidParameter, rippleDB, math.Abs(gainDB))
	}

	gainDB = -gainDB
	if gainDB < 0 {
		rippleDB = -rippleDB
	}

	g := iir.DBToMagnitude(gainDB)
	gb := iir.DBToMagnitude(gainDB - rippleDB)

	eps := math.Sqrt((g*g - gb*gb) / (gb*gb - 1))

	root := math.Sqrt(1 + 1/(eps*eps))
	u := math.Log(math.Pow(g/eps+gb*root, 1/float64(order)))
	v := math.Log(math.Pow(1/eps+root, 1/float64(order)))

	sinhU, coshU := math.Sinh(u), math.Cosh(u)
	sinhV, coshV := math.Sinh(v), math.Cosh(v)
	n2 := float64(2 * order)

	for i := 1; i <= order/2; i++ {
		a := math.Pi * float64(2*i-1) / n2
		sn, cs := math.Sin(a), math.Cos(a)

		if err := analog.InsertConjugate(complex(-sn*sinhU, cs*coshU), complex(-sn*sinhV, cs*coshV)); err != nil {
			return nil, err
		}
	}

	if order%2 == 1 {
		if err := analog.Insert(complex(-sinhU, 0), complex(-sinhV, 0)); err != nil {
			return nil, err
		}
	}

	return analog, nil
}

// insertFlat fills analog with coincident poles and zeros, a 0 dB shelf
// of the requested order.
func insertFlat(analog *iir.Layout, order int) error {
	for range order / 2 {
		if err := analog.InsertConjugate(-1, -1); err != nil {
			return err
		}
	}

	if order%2 == 1 {
		return analog.Insert(-1, -1)
	}

	return nil
}

func validateRipple(db float64) error {
	if !(db > 0) || math.IsInf(db, 0) {
		return fmt.Errorf("%w: ripple %v dB must be positive", iir.ErrInvalidParameter, db)
	}

	return nil
}

// Lowpass designs a lowpass whose passband ends at freq, where the
// response is -rippleDB.
func Lowpass(freq float64, order int, rippleDB, sampleRate float64) (*iir.Cascade, error) {
	fc, err := iir.NormalizeCutoff(freq, sampleRate)
	if err != nil {
		return nil, err
	}

	analog, err := AnalogLowpass(order, rippleDB)
	if err != nil {
		return nil, err
	}

	return iir.Design(analog, iir.Lowpass{Cutoff: fc})
}

// Highpass designs a highpass whose passband starts at freq.
func Highpass(freq float64, order int, rippleDB, sampleRate float64) (*iir.Cascade, error) {
	fc, err := iir.NormalizeCutoff(freq, sampleRate)
	if err != nil {
		return nil, err
	}

	analog, err := AnalogLowpass(order, rippleDB)
	if err != nil {
		return nil, err
	}

	return iir.Design(analog, iir.Highpass{Cutoff: fc})
}

// Bandpass designs a bandpass of order 2*order with passband edges at
// center -/+ width/2.
func Bandpass(center, width float64, order int, rippleDB, sampleRate float64) (*iir.Cascade, error) {
	fc, fw, err := iir.NormalizeBand(center, width, sampleRate)
	if err != nil {
		return nil, err
	}

	analog, err := AnalogLowpass(order, rippleDB)
	if err != nil {
		return nil, err
	}

	return iir.Design(analog, iir.Bandpass{Center: fc, Width: fw})
}

// Bandstop designs a bandstop of order 2*order with the stopband between
// center -/+ width/2.
func Bandstop(center, width float64, order int, rippleDB, sampleRate float64) (*iir.Cascade, error) {
	fc, fw, err := iir.NormalizeBand(center, width, sampleRate)
	if err != nil {
		return nil, err
	}

	analog, err := AnalogLowpass(order, rippleDB)
	if err != nil {
		return nil, err
	}

	return iir.Design(analog, iir.Bandstop{Center: fc, Width: fw})
}

// LowShelf designs a low shelf with gainDB below freq and rippleDB of
// ripple in the shelf.
func LowShelf(freq float64, order int, gainDB, rippleDB, sampleRate float64) (*iir.Cascade, error) {
	fc, err := iir.NormalizeCutoff(freq, sampleRate)
	if err != nil {
		return nil, err
	}

	analog, err := AnalogLowShelf(order, gainDB, rippleDB)
	if err != nil {
		return nil, err
	}

	return iir.Design(analog, iir.Lowpass{Cutoff: fc})
}

// HighShelf designs a high shelf with gainDB above freq.
func HighShelf(freq float64, order int, gainDB, rippleDB, sampleRate float64) (*iir.Cascade, error) {
	fc, err := iir.NormalizeCutoff(freq, sampleRate)
	if err != nil {
		return nil, err
	}

	analog, err := AnalogLowShelf(order, gainDB, rippleDB)
	if err != nil {
		return nil, err
	}

	return iir.Design(analog, iir.Highpass{Cutoff: fc})
}

// BandShelf designs a band shelf with gainDB inside the band.
func BandShelf(center, width float64, order int, gainDB, rippleDB, sampleRate float64) (*iir.Cascade, error) {
	fc, fw, err := iir.NormalizeBand(center, width, sampleRate)
	if err != nil {
		return nil, err
	}

	analog, err := AnalogLowShelf(order, gainDB, rippleDB)
	if err != nil {
		return nil, err
	}

	return iir.Design(analog, iir.BandShelf{Center: fc, Width: fw})
}
