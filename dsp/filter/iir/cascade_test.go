package iir

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"

	"github.com/cwbudde/algo-iir/dsp/filter/biquad"
	"github.com/cwbudde/algo-iir/internal/testutil"
)

func TestSynthesize_SinglePole(t *testing.T) {
	c, err := Synthesize(SinglePole(0.4, -1))
	if err != nil {
		t.Fatal(err)
	}

	want := biquad.Coefficients{B0: 1, B1: 1, A1: -0.4}
	if c != want {
		t.Fatalf("got %+v, want %+v", c, want)
	}

	if c.B2 != 0 || c.A2 != 0 {
		t.Fatalf("second-order slots not zero: %+v", c)
	}
}

func TestSynthesize_ConjugatePair(t *testing.T) {
	p := complex(0.5, 0.3)
	z := complex(-0.2, 0.9)

	c, err := Synthesize(ConjugatePair(p, z))
	if err != nil {
		t.Fatal(err)
	}

	want := biquad.Coefficients{
		B0: 1,
		B1: -2 * real(z),
		B2: real(z)*real(z) + imag(z)*imag(z),
		A1: -2 * real(p),
		A2: real(p)*real(p) + imag(p)*imag(p),
	}
	if !coeffsNear(c, want, 1e-15) {
		t.Fatalf("got %+v, want %+v", c, want)
	}

	roots := c.Poles()
	if cmplx.Abs(roots[0]-p) > 1e-12 && cmplx.Abs(roots[1]-p) > 1e-12 {
		t.Fatalf("pole %v not recovered from %v", p, roots)
	}
}

func TestSynthesize_RealPair(t *testing.T) {
	pair := PoleZeroPair{Poles: ComplexPair{0.2, -0.5}, Zeros: ComplexPair{1, -1}}

	c, err := Synthesize(pair)
	if err != nil {
		t.Fatal(err)
	}

	want := biquad.Coefficients{B0: 1, B1: 0, B2: -1, A1: 0.3, A2: -0.1}
	if !coeffsNear(c, want, 1e-15) {
		t.Fatalf("got %+v, want %+v", c, want)
	}
}

func TestSynthesize_Preconditions(t *testing.T) {
	tests := []struct {
		name string
		pair PoleZeroPair
		want error
	}{
		{"complex single pole", SinglePole(complex(0.1, 0.1), 0), ErrMismatchedPair},
		{"unmatched poles", PoleZeroPair{Poles: ComplexPair{complex(0.1, 0.2), complex(0.1, 0.2)}}, ErrMismatchedPair},
		{"nan", ConjugatePair(complex(math.NaN(), 0), 0), ErrNaN},
		{"analog infinity", ConjugatePair(complex(-0.5, 0.5), Infinity()), ErrNonFinite},
	}

	for _, tt := range tests {
		if _, err := Synthesize(tt.pair); !errors.Is(err, tt.want) {
			t.Errorf("%s: got %v, want %v", tt.name, err, tt.want)
		}
	}
}

func TestCascade_RoundTripGain(t *testing.T) {
	type tc struct {
		name string
		tr   Transformer
	}

	transforms := []tc{
		{"lowpass", Lowpass{Cutoff: 0.1}},
		{"highpass", Highpass{Cutoff: 0.2}},
		{"bandpass", Bandpass{Center: 0.15, Width: 0.05}},
		{"bandstop low", Bandstop{Center: 0.1, Width: 0.04}},
		{"bandstop high", Bandstop{Center: 0.35, Width: 0.04}},
	}

	for _, order := range []int{1, 2, 3, 6, 9} {
		for _, tt := range transforms {
			analog := butterworthPrototype(t, order)
			analog.SetNormal(analog.NormalizedFrequency(), 0.5)

			digital, err := tt.tr.Transform(analog)
			if err != nil {
				t.Fatalf("%s order %d: %v", tt.name, order, err)
			}

			c, err := NewCascade(digital)
			if err != nil {
				t.Fatalf("%s order %d: %v", tt.name, order, err)
			}

			got := c.Magnitude(digital.NormalizedFrequency() / (2 * math.Pi))
			testutil.RequireNear(t, tt.name, got, 0.5, tol)

			if c.Len() != (digital.NumPoles()+1)/2 {
				t.Fatalf("%s order %d: %d stages for %d poles", tt.name, order, c.Len(), digital.NumPoles())
			}

			assertStable(t, c)
		}
	}
}

func TestCascade_StageCountAndCapacity(t *testing.T) {
	for order := 1; order <= 8; order++ {
		lp := design(t, butterworthPrototype(t, order), Lowpass{Cutoff: 0.2})
		if lp.Len() != (order+1)/2 || lp.Capacity() != (order+1)/2 || lp.Order() != order {
			t.Errorf("lowpass order %d: len=%d capacity=%d order=%d", order, lp.Len(), lp.Capacity(), lp.Order())
		}

		bp := design(t, butterworthPrototype(t, order), Bandpass{Center: 0.2, Width: 0.05})
		if bp.Len() != order || bp.Capacity() != order || bp.Order() != 2*order {
			t.Errorf("bandpass order %d: len=%d capacity=%d order=%d", order, bp.Len(), bp.Capacity(), bp.Order())
		}
	}
}

func TestCascade_OnlyFirstStageScaled(t *testing.T) {
	analog := butterworthPrototype(t, 4)

	digital, err := Lowpass{Cutoff: 0.1}.Transform(analog)
	if err != nil {
		t.Fatal(err)
	}

	c, err := NewCascade(digital)
	if err != nil {
		t.Fatal(err)
	}

	raw, _ := Synthesize(digital.At(1))
	if c.Stage(1) != raw {
		t.Fatalf("stage 1 was modified: %+v vs %+v", c.Stage(1), raw)
	}

	if c.Stage(0).B0 == 1 {
		t.Fatal("stage 0 was not scaled")
	}
}

func TestCascade_PermutationInvariance(t *testing.T) {
	digital, err := Lowpass{Cutoff: 0.12}.Transform(butterworthPrototype(t, 7))
	if err != nil {
		t.Fatal(err)
	}

	ref, err := NewCascade(digital)
	if err != nil {
		t.Fatal(err)
	}

	pairs := digital.Pairs()
	last := pairs[len(pairs)-1]
	perm := []int{2, 0, 1}

	shuffled, _ := NewLayout(digital.Capacity())
	shuffled.SetNormal(digital.NormalizedFrequency(), digital.NormalizedGain())

	for _, i := range perm {
		if err := shuffled.InsertPair(pairs[i].Poles, pairs[i].Zeros); err != nil {
			t.Fatal(err)
		}
	}

	if err := shuffled.Insert(last.Poles.First, last.Zeros.First); err != nil {
		t.Fatal(err)
	}

	got, err := NewCascade(shuffled)
	if err != nil {
		t.Fatal(err)
	}

	for _, f := range []float64{0, 0.01, 0.05, 0.12, 0.2, 0.33, 0.49} {
		a, b := ref.Response(f), got.Response(f)
		if math.Abs(cmplx.Abs(a)-cmplx.Abs(b)) > tol {
			t.Errorf("f=%v: |H| %v vs %v", f, cmplx.Abs(a), cmplx.Abs(b))
		}

		if cmplx.Abs(a) > 1e-6 && math.Abs(cmplx.Phase(a/b)) > 1e-9 {
			t.Errorf("f=%v: phase %v vs %v", f, cmplx.Phase(a), cmplx.Phase(b))
		}
	}
}

func TestCascade_Errors(t *testing.T) {
	empty, _ := NewLayout(4)
	if _, err := NewCascade(empty); !errors.Is(err, ErrEmptyLayout) {
		t.Fatalf("expected ErrEmptyLayout, got %v", err)
	}

	// A zero on the unit circle at the reference frequency leaves nothing
	// to normalize against.
	l, _ := NewLayout(1)
	_ = l.Insert(0.5, 1)

	if _, err := NewCascade(l); !errors.Is(err, ErrDegenerateResponse) {
		t.Fatalf("expected ErrDegenerateResponse, got %v", err)
	}
}

func TestCascade_ResponseMatchesChain(t *testing.T) {
	c := design(t, butterworthPrototype(t, 5), Highpass{Cutoff: 0.05})
	chain := c.Chain()

	for _, f := range []float64{0.01, 0.05, 0.2, 0.45} {
		testutil.RequireComplexNear(t, "response", chain.Response(f*48000, 48000), c.Response(f), 1e-12)
	}

	if !c.IsStable() {
		t.Fatal("expected a stable cascade")
	}

	coeffs := c.Coefficients()
	coeffs[0].B0 = 42

	if c.Stage(0).B0 == 42 {
		t.Fatal("Coefficients returned an alias of the cascade")
	}
}
