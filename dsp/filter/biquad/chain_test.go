package biquad

import (
	"fmt"
	"testing"
)

func twoSectionCoeffs() []Coefficients {
	return []Coefficients{
		{B0: 0.25, B1: 0.5, B2: 0.25, A1: -0.2, A2: 0.04},
		{B0: 0.1, B1: 0.2, B2: 0.1, A1: -0.5, A2: 0.1},
	}
}

func TestNewChain(t *testing.T) {
	c := NewChain(twoSectionCoeffs())
	if c.NumSections() != 2 || c.Order() != 4 || c.Gain() != 1 {
		t.Fatalf("got sections=%d order=%d gain=%v", c.NumSections(), c.Order(), c.Gain())
	}

	c = NewChain(twoSectionCoeffs(), WithGain(0.5), nil)
	if c.Gain() != 0.5 {
		t.Fatalf("gain: got %v, want 0.5", c.Gain())
	}
}

func TestChain_OrderCountsFirstOrderSections(t *testing.T) {
	c := NewChain([]Coefficients{
		{B0: 0.25, B1: 0.5, B2: 0.25, A1: -0.2, A2: 0.04},
		{B0: 0.3, B1: 0.3, A1: -0.4},
	})

	if c.Order() != 3 {
		t.Fatalf("Order: got %d, want 3", c.Order())
	}
}

func TestChain_ProcessSample_MatchesManualCascade(t *testing.T) {
	coeffs := twoSectionCoeffs()
	s1 := NewSection(coeffs[0])
	s2 := NewSection(coeffs[1])
	chain := NewChain(coeffs, WithGain(2))

	for i, x := range []float64{1, 0.5, -0.3, 0.7, 0, -1, 0.2, 0.8} {
		want := s2.ProcessSample(s1.ProcessSample(2 * x))
		if got := chain.ProcessSample(x); !almostEqual(got, want, eps) {
			t.Errorf("sample %d: chain=%.15f, ref=%.15f", i, got, want)
		}
	}
}

func TestChain_ProcessBlock_MatchesSample(t *testing.T) {
	input := []float64{1, 0.5, -0.3, 0.7, 0, -1, 0.2, 0.8, 0.1}

	for _, gain := range []float64{1, 0.5} {
		ref := NewChain(twoSectionCoeffs(), WithGain(gain))
		want := make([]float64, len(input))
		for i, x := range input {
			want[i] = ref.ProcessSample(x)
		}

		got := append([]float64(nil), input...)
		NewChain(twoSectionCoeffs(), WithGain(gain)).ProcessBlock(got)

		for i := range got {
			if !almostEqual(got[i], want[i], eps) {
				t.Fatalf("gain=%v sample %d: block=%.15f, ref=%.15f", gain, i, got[i], want[i])
			}
		}
	}
}

func TestChain_StateRoundTrip(t *testing.T) {
	chain := NewChain(twoSectionCoeffs())
	chain.ProcessSample(1)
	chain.ProcessSample(0.5)
	saved := chain.State()

	y3 := chain.ProcessSample(-0.3)

	chain.SetState(saved)
	if y := chain.ProcessSample(-0.3); y != y3 {
		t.Fatalf("after restore: got %v, want %v", y, y3)
	}

	chain.Reset()
	for i, st := range chain.State() {
		if st != [2]float64{} {
			t.Fatalf("section %d state not zero after reset: %v", i, st)
		}
	}
}

func TestChain_UpdateCoefficients(t *testing.T) {
	c := NewChain(twoSectionCoeffs())
	c.ProcessSample(1)
	before := c.State()

	swapped := []Coefficients{twoSectionCoeffs()[1], twoSectionCoeffs()[0]}
	c.UpdateCoefficients(swapped, 0.25)

	if c.Gain() != 0.25 {
		t.Fatalf("gain: got %v", c.Gain())
	}

	for i, st := range c.State() {
		if st != before[i] {
			t.Fatalf("section %d state changed on same-size update", i)
		}
	}

	if got := c.Coefficients(); got[0] != swapped[0] || got[1] != swapped[1] {
		t.Fatalf("coefficients not applied: %+v", got)
	}

	c.UpdateCoefficients(swapped[:1], 1)
	if c.NumSections() != 1 || c.State()[0] != [2]float64{} {
		t.Fatalf("resize: sections=%d state=%v", c.NumSections(), c.State())
	}
}

func BenchmarkChain_ProcessBlock(b *testing.B) {
	for _, n := range []int{1, 2, 4, 8} {
		b.Run(fmt.Sprintf("sections=%d", n), func(b *testing.B) {
			coeffs := make([]Coefficients, n)
			for i := range coeffs {
				coeffs[i] = testCoeffs
			}

			c := NewChain(coeffs)
			buf := make([]float64, 1024)

			b.SetBytes(1024 * 8)

			for b.Loop() {
				c.ProcessBlock(buf)
			}
		})
	}
}
