package iir

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/cwbudde/algo-iir/dsp/filter/biquad"
)

const tol = 1e-9

// butterworthPrototype places order poles on the left unit half circle
// with all zeros at infinity.
func butterworthPrototype(t *testing.T, order int) *Layout {
	t.Helper()

	l, err := NewLayout(order)
	if err != nil {
		t.Fatal(err)
	}

	for i := range order / 2 {
		p := cmplx.Rect(1, math.Pi/2+float64(2*i+1)*math.Pi/float64(2*order))
		if err := l.InsertConjugate(p, Infinity()); err != nil {
			t.Fatal(err)
		}
	}

	if order%2 == 1 {
		if err := l.Insert(-1, Infinity()); err != nil {
			t.Fatal(err)
		}
	}

	return l
}

func design(t *testing.T, analog *Layout, tr Transformer) *Cascade {
	t.Helper()

	c, err := Design(analog, tr)
	if err != nil {
		t.Fatal(err)
	}

	return c
}

func assertStable(t *testing.T, c *Cascade) {
	t.Helper()

	for i, s := range c.Coefficients() {
		for _, p := range s.Poles() {
			if cmplx.Abs(p) >= 1 {
				t.Fatalf("stage %d: pole %v outside unit circle (%+v)", i, p, s)
			}
		}
	}
}

func coeffsNear(a, b biquad.Coefficients, eps float64) bool {
	return math.Abs(a.B0-b.B0) <= eps &&
		math.Abs(a.B1-b.B1) <= eps &&
		math.Abs(a.B2-b.B2) <= eps &&
		math.Abs(a.A1-b.A1) <= eps &&
		math.Abs(a.A2-b.A2) <= eps
}
