// Package butterworth designs maximally flat IIR filters as biquad
// cascades.
//
// All designers take frequencies in Hz and return a gain-normalized
// *iir.Cascade. Band designs (Bandpass, Bandstop, BandShelf) produce twice
// the requested order.
package butterworth

import (
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-iir/dsp/filter/iir"
)

// AnalogLowpass returns the unit-cutoff prototype: order poles evenly
// spaced on the left half of the unit circle, all zeros at infinity.
func AnalogLowpass(order int) (*iir.Layout, error) {
	if err := iir.ValidateOrder(order); err != nil {
		return nil, err
	}

	analog, err := iir.NewLayout(order)
	if err != nil {
		return nil, err
	}

	n2 := float64(2 * order)
	for i := range order / 2 {
		p := cmplx.Rect(1, math.Pi/2+float64(2*i+1)*math.Pi/n2)
		if err := analog.InsertConjugate(p, iir.Infinity()); err != nil {
			return nil, err
		}
	}

	if order%2 == 1 {
		if err := analog.Insert(-1, iir.Infinity()); err != nil {
			return nil, err
		}
	}

	analog.SetNormal(0, 1)

	return analog, nil
}

// AnalogLowShelf returns a shelf prototype with gainDB at DC and unity
// gain at infinity. Poles sit on a circle of radius g^-1 and zeros on a
// circle of radius g, where g^(2*order) is the linear shelf gain.
func AnalogLowShelf(order int, gainDB float64) (*iir.Layout, error) {
	if err := iir.ValidateOrder(order); err != nil {
		return nil, err
	}

	if err := iir.ValidateGain(gainDB); err != nil {
		return nil, err
	}

	analog, err := iir.NewLayout(order)
	if err != nil {
		return nil, err
	}

	n2 := float64(2 * order)
	g := math.Pow(iir.DBToMagnitude(gainDB), 1/n2)
	gp := -1 / g
	gz := -g

	for i := 1; i <= order/2; i++ {
		theta := math.Pi * (0.5 - float64(2*i-1)/n2)
		if err := analog.InsertConjugate(cmplx.Rect(gp, theta), cmplx.Rect(gz, theta)); err != nil {
			return nil, err
		}
	}

	if order%2 == 1 {
		if err := analog.Insert(complex(gp, 0), complex(gz, 0)); err != nil {
			return nil, err
		}
	}

	analog.SetNormal(math.Pi, 1)

	return analog, nil
}

// Lowpass designs a lowpass with -3 dB at freq.
func Lowpass(freq float64, order int, sampleRate float64) (*iir.Cascade, error) {
	fc, err := iir.NormalizeCutoff(freq, sampleRate)
	if err != nil {
		return nil, err
	}

	analog, err := AnalogLowpass(order)
	if err != nil {
		return nil, err
	}

	return iir.Design(analog, iir.Lowpass{Cutoff: fc})
}

// Highpass designs a highpass with -3 dB at freq.
func Highpass(freq float64, order int, sampleRate float64) (*iir.Cascade, error) {
	fc, err := iir.NormalizeCutoff(freq, sampleRate)
	if err != nil {
		return nil, err
	}

	analog, err := AnalogLowpass(order)
	if err != nil {
		return nil, err
	}

	return iir.Design(analog, iir.Highpass{Cutoff: fc})
}

// Bandpass designs a bandpass of order 2*order with -3 dB edges at
// center -/+ width/2.
func Bandpass(center, width float64, order int, sampleRate float64) (*iir.Cascade, error) {
	fc, fw, err := iir.NormalizeBand(center, width, sampleRate)
	if err != nil {
		return nil, err
	}

	analog, err := AnalogLowpass(order)
	if err != nil {
		return nil, err
	}

	return iir.Design(analog, iir.Bandpass{Center: fc, Width: fw})
}

// Bandstop designs a bandstop of order 2*order with -3 dB edges at
// center -/+ width/2.
func Bandstop(center, width float64, order int, sampleRate float64) (*iir.Cascade, error) {
	fc, fw, err := iir.NormalizeBand(center, width, sampleRate)
	if err != nil {
		return nil, err
	}

	analog, err := AnalogLowpass(order)
	if err != nil {
		return nil, err
	}

	return iir.Design(analog, iir.Bandstop{Center: fc, Width: fw})
}

// LowShelf designs a low shelf: gainDB below freq, unity above.
// The response passes gainDB/2 at freq.
func LowShelf(freq float64, order int, gainDB, sampleRate float64) (*iir.Cascade, error) {
	fc, err := iir.NormalizeCutoff(freq, sampleRate)
	if err != nil {
		return nil, err
	}

	analog, err := AnalogLowShelf(order, gainDB)
	if err != nil {
		return nil, err
	}

	return iir.Design(analog, iir.Lowpass{Cutoff: fc})
}

// HighShelf designs a high shelf: unity below freq, gainDB above.
func HighShelf(freq float64, order int, gainDB, sampleRate float64) (*iir.Cascade, error) {
	fc, err := iir.NormalizeCutoff(freq, sampleRate)
	if err != nil {
		return nil, err
	}

	analog, err := AnalogLowShelf(order, gainDB)
	if err != nil {
		return nil, err
	}

	return iir.Design(analog, iir.Highpass{Cutoff: fc})
}

// BandShelf designs a band shelf with gainDB inside the band and unity
// outside it.
func BandShelf(center, width float64, order int, gainDB, sampleRate float64) (*iir.Cascade, error) {
	fc, fw, err := iir.NormalizeBand(center, width, sampleRate)
	if err != nil {
		return nil, err
	}

	analog, err := AnalogLowShelf(order, gainDB)
	if err != nil {
		return nil, err
	}

	return iir.Design(analog, iir.BandShelf{Center: fc, Width: fw})
}
