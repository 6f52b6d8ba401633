package iir

import (
	"math"
	"math/cmplx"
)

// bandEdgeEpsilon keeps band edges away from DC and Nyquist, where the
// bilinear warping tan(w/2) is singular.
const bandEdgeEpsilon = 1e-8

// Transformer maps an analog prototype layout to a digital layout.
// The analog layout is not modified.
type Transformer interface {
	Transform(analog *Layout) (*Layout, error)
}

// Lowpass maps a unit-cutoff analog prototype to a digital lowpass with
// cutoff Cutoff (cycles/sample).
type Lowpass struct {
	Cutoff float64
}

// Transform implements Transformer.
func (t Lowpass) Transform(analog *Layout) (*Layout, error) {
	f := math.Tan(math.Pi * t.Cutoff)

	digital, err := mapRoots(analog, analog.Capacity(), func(c complex128) complex128 {
		if IsInfinity(c) {
			return -1
		}

		c = scale(f, c)

		return (1 + c) / (1 - c)
	})
	if err != nil {
		return nil, err
	}

	digital.SetNormal(analog.NormalizedFrequency(), analog.NormalizedGain())

	return digital, nil
}

// Highpass maps a unit-cutoff analog lowpass prototype to a digital
// highpass with cutoff Cutoff (cycles/sample).
type Highpass struct {
	Cutoff float64
}

// Transform implements Transformer.
func (t Highpass) Transform(analog *Layout) (*Layout, error) {
	f := 1 / math.Tan(math.Pi*t.Cutoff)

	digital, err := mapRoots(analog, analog.Capacity(), func(c complex128) complex128 {
		if IsInfinity(c) {
			return 1
		}

		c = scale(f, c)

		return -(1 + c) / (1 - c)
	})
	if err != nil {
		return nil, err
	}

	digital.SetNormal(math.Pi-analog.NormalizedFrequency(), analog.NormalizedGain())

	return digital, nil
}

// mapRoots applies fn to the first pole and first zero of every pair. The
// conjugate partners follow from InsertConjugate; a trailing single pole
// is mapped on its own.
func mapRoots(analog *Layout, capacity int, fn func(complex128) complex128) (*Layout, error) {
	digital, err := NewLayout(capacity)
	if err != nil {
		return nil, err
	}

	n := analog.NumPoles()
	for i := range n / 2 {
		pair := analog.At(i)
		if err := digital.InsertConjugate(fn(pair.Poles.First), fn(pair.Zeros.First)); err != nil {
			return nil, err
		}
	}

	if n%2 == 1 {
		pair := analog.At(n / 2)
		if err := digital.Insert(fn(pair.Poles.First), fn(pair.Zeros.First)); err != nil {
			return nil, err
		}
	}

	return digital, nil
}

// Bandpass maps an analog lowpass prototype to a digital bandpass centered
// at Center with bandwidth Width (both cycles/sample). The digital layout
// has twice the analog order.
type Bandpass struct {
	Center, Width float64
}

// Transform implements Transformer.
func (t Bandpass) Transform(analog *Layout) (*Layout, error) {
	band := newBandEdges(t.Center, t.Width)

	digital, err := mapBandRoots(analog, band.bandpassRoots, false)
	if err != nil {
		return nil, err
	}

	w0 := analog.NormalizedFrequency()
	w := 2 * math.Atan(math.Sqrt(math.Tan((band.wc+w0)/2)*math.Tan((band.wc2+w0)/2)))
	digital.SetNormal(w, analog.NormalizedGain())

	return digital, nil
}

// Bandstop maps an analog lowpass prototype to a digital bandstop centered
// at Center with bandwidth Width (both cycles/sample). The digital layout
// has twice the analog order.
type Bandstop struct {
	Center, Width float64
}

// Transform implements Transformer.
func (t Bandstop) Transform(analog *Layout) (*Layout, error) {
	band := newBandEdges(t.Center, t.Width)

	digital, err := mapBandRoots(analog, band.bandstopRoots, true)
	if err != nil {
		return nil, err
	}

	w := analog.NormalizedFrequency()
	if t.Center < 0.25 {
		w = math.Pi
	}

	digital.SetNormal(w, analog.NormalizedGain())

	return digital, nil
}

// BandShelf maps an analog low-shelf prototype onto a band shelf centered
// at Center with bandwidth Width. The gain is normalized to unity on the
// side of the spectrum farther from the band.
type BandShelf struct {
	Center, Width float64
}

// Transform implements Transformer.
func (t BandShelf) Transform(analog *Layout) (*Layout, error) {
	digital, err := Bandpass(t).Transform(analog)
	if err != nil {
		return nil, err
	}

	w := 0.0
	if t.Center < 0.25 {
		w = math.Pi
	}

	digital.SetNormal(w, 1)

	return digital, nil
}

type bandEdges struct {
	wc, wc2 float64
	a, b    float64
}

func newBandEdges(center, width float64) bandEdges {
	ww := 2 * math.Pi * width
	wc2 := 2*math.Pi*center - ww/2
	wc := wc2 + ww

	wc2 = max(wc2, bandEdgeEpsilon)
	wc = min(wc, math.Pi-bandEdgeEpsilon)

	return bandEdges{
		wc:  wc,
		wc2: wc2,
		a:   math.Cos((wc+wc2)/2) / math.Cos((wc-wc2)/2),
		b:   1 / math.Tan((wc-wc2)/2),
	}
}

// mapBandRoots doubles the order: every analog root yields two digital
// roots. For conjugate branches both become separate conjugate pairs; a
// trailing real root becomes one second-order pair.
func mapBandRoots(analog *Layout, fn func(complex128) (complex128, complex128), splitEqualZeros bool) (*Layout, error) {
	digital, err := NewLayout(2 * analog.Capacity())
	if err != nil {
		return nil, err
	}

	n := analog.NumPoles()
	for i := range n / 2 {
		pair := analog.At(i)
		p1, p2 := fn(pair.Poles.First)

		z1, z2 := fn(pair.Zeros.First)
		if splitEqualZeros && z1 == z2 {
			z2 = cmplx.Conj(z1)
		}

		if err := digital.InsertConjugate(p1, z1); err != nil {
			return nil, err
		}

		if err := digital.InsertConjugate(p2, z2); err != nil {
			return nil, err
		}
	}

	if n%2 == 1 {
		pair := analog.At(n / 2)
		if err := digital.InsertPair(realRootPair(fn(pair.Poles.First)), realRootPair(fn(pair.Zeros.First))); err != nil {
			return nil, err
		}
	}

	return digital, nil
}

// realRootPair returns the two roots of a real quadratic as a matched
// pair. Such roots are either both real or conjugates, so a non-zero
// imaginary part pins the second root to the conjugate of the first.
func realRootPair(r1, r2 complex128) ComplexPair {
	if imag(r1) != 0 || imag(r2) != 0 {
		return ComplexPair{First: r1, Second: cmplx.Conj(r1)}
	}

	return ComplexPair{First: r1, Second: r2}
}

func (e bandEdges) bandpassRoots(s complex128) (complex128, complex128) {
	if IsInfinity(s) {
		return -1, 1
	}

	c := (1 + s) / (1 - s)

	k := e.b * e.b * (e.a*e.a - 1)
	v := (scale(4*(k+1), c)+complex(8*(k-1), 0))*c + complex(4*(k+1), 0)
	v = cmplx.Sqrt(v)

	ab2 := 2 * e.a * e.b
	base := scale(ab2, c) + complex(ab2, 0)
	d := scale(2*(e.b-1), c) + complex(2*(1+e.b), 0)

	return (base - v) / d, (base + v) / d
}

func (e bandEdges) bandstopRoots(s complex128) (complex128, complex128) {
	c := complex(-1, 0)
	if !IsInfinity(s) {
		c = (1 + s) / (1 - s)
	}

	a2, b2 := e.a*e.a, e.b*e.b
	u := (scale(4*(b2+a2-1), c)+complex(8*(b2-a2+1), 0))*c + complex(4*(a2+b2-1), 0)
	u = cmplx.Sqrt(u)

	base := complex(e.a, 0) - scale(e.a, c)
	d := complex(e.b+1, 0) + scale(e.b-1, c)

	return (base + scale(0.5, u)) / d, (base - scale(0.5, u)) / d
}

// scale multiplies c by a real factor without mixing real and imaginary
// parts, which keeps conjugate inputs exactly conjugate.
func scale(k float64, c complex128) complex128 {
	return complex(k*real(c), k*imag(c))
}
