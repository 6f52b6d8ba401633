package biquad

import (
	"math"
	"math/cmplx"
	"testing"
)

func TestMagnitudeSquared_MatchesResponse(t *testing.T) {
	sr := 48000.0

	for _, freq := range []float64{100, 500, 1000, 5000, 10000, 20000} {
		h := testCoeffs.Response(freq, sr)
		want := real(h)*real(h) + imag(h)*imag(h)

		if got := testCoeffs.MagnitudeSquared(freq, sr); !almostEqual(got, want, 1e-10) {
			t.Errorf("freq=%v: closed form=%.15f, |H|^2=%.15f", freq, got, want)
		}

		if got := testCoeffs.MagnitudeDB(freq, sr); !almostEqual(got, 10*math.Log10(want), 1e-9) {
			t.Errorf("freq=%v: MagnitudeDB=%v", freq, got)
		}

		if got := testCoeffs.Phase(freq, sr); !almostEqual(got, cmplx.Phase(h), 1e-12) {
			t.Errorf("freq=%v: Phase=%v, want %v", freq, got, cmplx.Phase(h))
		}
	}
}

func TestResponse_Allpass(t *testing.T) {
	c := Coefficients{B0: 0.04, B1: -0.2, B2: 1, A1: -0.2, A2: 0.04}

	for _, freq := range []float64{0, 200, 3000, 12000, 24000} {
		if mag := cmplx.Abs(c.Response(freq, 48000)); !almostEqual(mag, 1, 1e-12) {
			t.Errorf("freq=%v: |H|=%v, want 1", freq, mag)
		}
	}
}

func TestChain_Response_ProductOfSections(t *testing.T) {
	coeffs := twoSectionCoeffs()
	chain := NewChain(coeffs, WithGain(0.5))

	for _, freq := range []float64{50, 1000, 9000} {
		want := 0.5 * coeffs[0].Response(freq, 48000) * coeffs[1].Response(freq, 48000)

		got := chain.Response(freq, 48000)
		if cmplx.Abs(got-want) > 1e-12 {
			t.Errorf("freq=%v: got %v, want %v", freq, got, want)
		}

		if db := chain.MagnitudeDB(freq, 48000); !almostEqual(db, 20*math.Log10(cmplx.Abs(want)), 1e-9) {
			t.Errorf("freq=%v: MagnitudeDB=%v", freq, db)
		}
	}
}

func TestImpulseResponse_PreservesState(t *testing.T) {
	s := NewSection(testCoeffs)
	s.ProcessSample(0.7)
	before := s.State()

	ir := s.ImpulseResponse(4)
	want := []float64{0.25, 0.55, 0.35, 0.048}

	for i := range want {
		if !almostEqual(ir[i], want[i], eps) {
			t.Fatalf("ir[%d]=%v, want %v", i, ir[i], want[i])
		}
	}

	if s.State() != before {
		t.Fatalf("state changed: %v vs %v", s.State(), before)
	}

	if s.ImpulseResponse(0) != nil {
		t.Fatal("expected nil for n=0")
	}

	chain := NewChain(twoSectionCoeffs())
	cir := chain.ImpulseResponse(16)
	ref := NewChain(twoSectionCoeffs())

	for i := range cir {
		x := 0.0
		if i == 0 {
			x = 1
		}

		if y := ref.ProcessSample(x); !almostEqual(cir[i], y, eps) {
			t.Fatalf("chain ir[%d]=%v, want %v", i, cir[i], y)
		}
	}
}

func TestRoots_SecondAndFirstOrder(t *testing.T) {
	p1 := complex(0.72, 0.19)
	z1 := complex(0.31, 0.44)
	c := Coefficients{
		B0: 1,
		B1: -2 * real(z1),
		B2: real(z1 * cmplx.Conj(z1)),
		A1: -2 * real(p1),
		A2: real(p1 * cmplx.Conj(p1)),
	}

	r := c.Roots()
	if !sameRoots(r.Poles, p1, cmplx.Conj(p1)) || !sameRoots(r.Zeros, z1, cmplx.Conj(z1)) {
		t.Fatalf("unexpected roots: %+v", r)
	}

	first := Coefficients{B0: 1, B1: -0.3, A1: -0.8}
	r = first.Roots()
	if !sameRoots(r.Poles, 0.8, 0) || !sameRoots(r.Zeros, 0.3, 0) {
		t.Fatalf("unexpected first-order roots: %+v", r)
	}

	if n := len(NewChain(twoSectionCoeffs()).Roots()); n != 2 {
		t.Fatalf("chain roots: got %d entries", n)
	}
}

func sameRoots(got [2]complex128, a, b complex128) bool {
	near := func(x, y complex128) bool { return cmplx.Abs(x-y) <= 1e-12 }
	return (near(got[0], a) && near(got[1], b)) || (near(got[0], b) && near(got[1], a))
}
