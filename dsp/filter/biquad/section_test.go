package biquad

import (
	"errors"
	"math"
	"testing"
)

const eps = 1e-12

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

var testCoeffs = Coefficients{B0: 0.25, B1: 0.5, B2: 0.25, A1: -0.2, A2: 0.04}

func TestProcessSample_DFIIT(t *testing.T) {
	// x = [1, 0, 0, 0] traced by hand:
	// n=0: y=0.25, d0=0.5+0.05=0.55, d1=0.25-0.01=0.24
	// n=1: y=0.55, d0=0.11+0.24=0.35, d1=-0.022
	// n=2: y=0.35, d0=0.07-0.022=0.048
	s := NewSection(testCoeffs)

	want := []float64{0.25, 0.55, 0.35, 0.048}
	for i, w := range want {
		var x float64
		if i == 0 {
			x = 1
		}

		if y := s.ProcessSample(x); !almostEqual(y, w, eps) {
			t.Errorf("sample %d: got %.15f, want %.15f", i, y, w)
		}
	}
}

func TestProcessBlock_MatchesSample(t *testing.T) {
	for _, n := range []int{1, 2, 5, 8, 33} {
		input := make([]float64, n)
		for i := range input {
			input[i] = math.Cos(0.3*float64(i)) - 0.2
		}

		ref := NewSection(testCoeffs)
		want := make([]float64, n)
		for i, x := range input {
			want[i] = ref.ProcessSample(x)
		}

		s := NewSection(testCoeffs)
		got := append([]float64(nil), input...)
		s.ProcessBlock(got)

		for i := range got {
			if !almostEqual(got[i], want[i], eps) {
				t.Fatalf("n=%d sample %d: block=%.15f, sample=%.15f", n, i, got[i], want[i])
			}
		}

		if s.State() != ref.State() {
			t.Fatalf("n=%d: state mismatch %v vs %v", n, s.State(), ref.State())
		}
	}
}

func TestProcessBlockTo_LeavesSourceIntact(t *testing.T) {
	src := []float64{1, 0.5, -0.3, 0.7}
	dst := make([]float64, len(src))

	NewSection(testCoeffs).ProcessBlockTo(dst, src)

	ref := NewSection(testCoeffs)
	for i, x := range src {
		if want := ref.ProcessSample(x); !almostEqual(dst[i], want, eps) {
			t.Fatalf("sample %d: got %v, want %v", i, dst[i], want)
		}
	}

	if src[0] != 1 || src[3] != 0.7 {
		t.Fatalf("source modified: %v", src)
	}
}

func TestSection_ResetAndState(t *testing.T) {
	s := NewSection(testCoeffs)
	s.ProcessSample(1)
	s.ProcessSample(0.5)
	saved := s.State()

	y1 := s.ProcessSample(-0.3)
	s.SetState(saved)

	if y2 := s.ProcessSample(-0.3); y1 != y2 {
		t.Fatalf("restore: got %v, want %v", y2, y1)
	}

	s.Reset()
	if s.State() != [2]float64{} {
		t.Fatalf("state not zero after reset: %v", s.State())
	}
}

func TestProcessSample_StableDecay(t *testing.T) {
	s := NewSection(testCoeffs)
	s.ProcessSample(1)

	for range 10000 {
		s.ProcessSample(0)
	}

	st := s.State()
	if math.Abs(st[0]) > 1e-100 || math.Abs(st[1]) > 1e-100 {
		t.Fatalf("state did not decay: %v", st)
	}
}

func TestNewCoefficients_Normalizes(t *testing.T) {
	c, err := NewCoefficients(2, 4, 2, 2, -0.4, 0.08)
	if err != nil {
		t.Fatal(err)
	}

	want := Coefficients{B0: 1, B1: 2, B2: 1, A1: -0.2, A2: 0.04}
	if c != want {
		t.Fatalf("got %+v, want %+v", c, want)
	}

	for _, a0 := range []float64{0, math.NaN(), math.Inf(1)} {
		if _, err := NewCoefficients(1, 0, 0, a0, 0, 0); !errors.Is(err, ErrZeroA0) {
			t.Fatalf("a0=%v: expected ErrZeroA0, got %v", a0, err)
		}
	}
}

func TestCoefficients_Predicates(t *testing.T) {
	first := Coefficients{B0: 0.3, B1: 0.3, A1: -0.4}
	if !first.IsFirstOrder() {
		t.Fatal("expected first-order")
	}

	if testCoeffs.IsFirstOrder() {
		t.Fatal("expected second-order")
	}

	if !testCoeffs.IsStable() {
		t.Fatal("expected stable")
	}

	if (&Coefficients{B0: 1, A1: -2.1, A2: 1.2}).IsStable() {
		t.Fatal("expected unstable")
	}

	c := testCoeffs
	c.Scale(2)
	if c.B0 != 0.5 || c.B1 != 1 || c.B2 != 0.5 || c.A1 != testCoeffs.A1 {
		t.Fatalf("Scale: got %+v", c)
	}

	c.B1 = math.Inf(-1)
	if c.IsFinite() {
		t.Fatal("expected non-finite")
	}
}

func BenchmarkProcessSample(b *testing.B) {
	s := NewSection(testCoeffs)

	x := 1.0
	for b.Loop() {
		x = s.ProcessSample(x)
	}

	_ = x
}

func BenchmarkProcessBlock(b *testing.B) {
	s := NewSection(testCoeffs)

	buf := make([]float64, 1024)
	for i := range buf {
		buf[i] = float64(i) * 0.001
	}

	b.SetBytes(1024 * 8)

	for b.Loop() {
		s.ProcessBlock(buf)
	}
}
