package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/cwbudde/algo-iir/dsp/filter/biquad"
	"github.com/cwbudde/algo-iir/dsp/filter/design"
	"github.com/cwbudde/algo-iir/dsp/filter/iir"
	"github.com/cwbudde/algo-iir/dsp/filter/iir/butterworth"
	"github.com/cwbudde/algo-iir/dsp/filter/iir/chebyshev1"
	"github.com/cwbudde/algo-iir/dsp/filter/iir/chebyshev2"
)

// params collects every flag a designer may read.
type params struct {
	typ    string
	order  int
	rate   float64
	freq   float64
	width  float64
	gain   float64
	ripple float64
	atten  float64
	q      float64
}

type family struct {
	name  string
	types []string
	build func(p params) ([]biquad.Coefficients, error)
}

var cascadeTypes = []string{"lowpass", "highpass", "bandpass", "bandstop", "lowshelf", "highshelf", "bandshelf"}

var registry = []family{
	{"butterworth", cascadeTypes, buildButterworth},
	{"chebyshev1", cascadeTypes, buildChebyshev1},
	{"chebyshev2", cascadeTypes, buildChebyshev2},
	{"rbj", typeNames(design.Types()), buildSection(design.RBJ)},
	{"rbj-analog", typeNames(design.Types()), buildSection(analogRBJ)},
	{"zoelzer", typeNames([]design.Type{
		design.TypeLowpass, design.TypeHighpass, design.TypeBandpassPeak,
		design.TypeNotch, design.TypePeak, design.TypeLowShelf, design.TypeHighShelf,
	}), buildSection(design.Zoelzer)},
}

func lookupFamily(name string) (family, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, f := range registry {
		if f.name == name {
			return f, nil
		}
	}

	return family{}, fmt.Errorf("unknown family %q (use -list to see available)", name)
}

func (f family) supports(typ string) bool {
	for _, t := range f.types {
		if t == typ {
			return true
		}
	}

	return false
}

func familyNames() []string {
	names := make([]string, len(registry))
	for i, f := range registry {
		names[i] = f.name
	}

	sort.Strings(names)

	return names
}

func typeNames(types []design.Type) []string {
	out := make([]string, len(types))
	for i, t := range types {
		out[i] = t.String()
	}

	return out
}

// cascadeDesigners holds one family's seven cascade designers with the
// family-specific parameter already bound.
type cascadeDesigners struct {
	lowpass   func(freq float64, order int, sampleRate float64) (*iir.Cascade, error)
	highpass  func(freq float64, order int, sampleRate float64) (*iir.Cascade, error)
	bandpass  func(center, width float64, order int, sampleRate float64) (*iir.Cascade, error)
	bandstop  func(center, width float64, order int, sampleRate float64) (*iir.Cascade, error)
	lowshelf  func(freq float64, order int, gainDB, sampleRate float64) (*iir.Cascade, error)
	highshelf func(freq float64, order int, gainDB, sampleRate float64) (*iir.Cascade, error)
	bandshelf func(center, width float64, order int, gainDB, sampleRate float64) (*iir.Cascade, error)
}

func (d cascadeDesigners) build(p params) ([]biquad.Coefficients, error) {
	var (
		c   *iir.Cascade
		err error
	)

	switch p.typ {
	case "lowpass":
		c, err = d.lowpass(p.freq, p.order, p.rate)
	case "highpass":
		c, err = d.highpass(p.freq, p.order, p.rate)
	case "bandpass":
		c, err = d.bandpass(p.freq, p.width, p.order, p.rate)
	case "bandstop":
		c, err = d.bandstop(p.freq, p.width, p.order, p.rate)
	case "lowshelf":
		c, err = d.lowshelf(p.freq, p.order, p.gain, p.rate)
	case "highshelf":
		c, err = d.highshelf(p.freq, p.order, p.gain, p.rate)
	case "bandshelf":
		c, err = d.bandshelf(p.freq, p.width, p.order, p.gain, p.rate)
	default:
		return nil, fmt.Errorf("unsupported type %q", p.typ)
	}

	if err != nil {
		return nil, err
	}

	return c.Coefficients(), nil
}

func buildButterworth(p params) ([]biquad.Coefficients, error) {
	return cascadeDesigners{
		lowpass:   butterworth.Lowpass,
		highpass:  butterworth.Highpass,
		bandpass:  butterworth.Bandpass,
		bandstop:  butterworth.Bandstop,
		lowshelf:  butterworth.LowShelf,
		highshelf: butterworth.HighShelf,
		bandshelf: butterworth.BandShelf,
	}.build(p)
}

func buildChebyshev1(p params) ([]biquad.Coefficients, error) {
	r := p.ripple

	return cascadeDesigners{
		lowpass: func(f float64, n int, sr float64) (*iir.Cascade, error) {
			return chebyshev1.Lowpass(f, n, r, sr)
		},
		highpass: func(f float64, n int, sr float64) (*iir.Cascade, error) {
			return chebyshev1.Highpass(f, n, r, sr)
		},
		bandpass: func(fc, w float64, n int, sr float64) (*iir.Cascade, error) {
			return chebyshev1.Bandpass(fc, w, n, r, sr)
		},
		bandstop: func(fc, w float64, n int, sr float64) (*iir.Cascade, error) {
			return chebyshev1.Bandstop(fc, w, n, r, sr)
		},
		lowshelf: func(f float64, n int, g, sr float64) (*iir.Cascade, error) {
			return chebyshev1.LowShelf(f, n, g, r, sr)
		},
		highshelf: func(f float64, n int, g, sr float64) (*iir.Cascade, error) {
			return chebyshev1.HighShelf(f, n, g, r, sr)
		},
		bandshelf: func(fc, w float64, n int, g, sr float64) (*iir.Cascade, error) {
			return chebyshev1.BandShelf(fc, w, n, g, r, sr)
		},
	}.build(p)
}

func buildChebyshev2(p params) ([]biquad.Coefficients, error) {
	a := p.atten

	return cascadeDesigners{
		lowpass: func(f float64, n int, sr float64) (*iir.Cascade, error) {
			return chebyshev2.Lowpass(f, n, a, sr)
		},
		highpass: func(f float64, n int, sr float64) (*iir.Cascade, error) {
			return chebyshev2.Highpass(f, n, a, sr)
		},
		bandpass: func(fc, w float64, n int, sr float64) (*iir.Cascade, error) {
			return chebyshev2.Bandpass(fc, w, n, a, sr)
		},
		bandstop: func(fc, w float64, n int, sr float64) (*iir.Cascade, error) {
			return chebyshev2.Bandstop(fc, w, n, a, sr)
		},
		lowshelf: func(f float64, n int, g, sr float64) (*iir.Cascade, error) {
			return chebyshev2.LowShelf(f, n, g, a, sr)
		},
		highshelf: func(f float64, n int, g, sr float64) (*iir.Cascade, error) {
			return chebyshev2.HighShelf(f, n, g, a, sr)
		},
		bandshelf: func(fc, w float64, n int, g, sr float64) (*iir.Cascade, error) {
			return chebyshev2.BandShelf(fc, w, n, g, a, sr)
		},
	}.build(p)
}

func buildSection(fn func(design.Type, float64, float64, float64, float64) (biquad.Coefficients, error)) func(params) ([]biquad.Coefficients, error) {
	return func(p params) ([]biquad.Coefficients, error) {
		typ, err := design.ParseType(p.typ)
		if err != nil {
			return nil, err
		}

		c, err := fn(typ, p.freq, p.q, p.gain, p.rate)
		if err != nil {
			return nil, err
		}

		return []biquad.Coefficients{c}, nil
	}
}

// analogRBJ designs the RBJ prototype in the s-domain and maps it through
// the bilinear transform.
func analogRBJ(typ design.Type, freq, q, gainDB, sampleRate float64) (biquad.Coefficients, error) {
	num, den, err := design.AnalogRBJ(typ, freq, q, gainDB, sampleRate)
	if err != nil {
		return biquad.Coefficients{}, err
	}

	return design.BilinearSection(num, den, sampleRate)
}
