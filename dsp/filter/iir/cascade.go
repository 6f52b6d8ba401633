package iir

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-iir/dsp/filter/biquad"
)

// Cascade is an immutable series of biquad sections built from a digital
// layout. Its length is ceil(poles/2) and its first section carries the
// gain normalization.
type Cascade struct {
	stages   []biquad.Coefficients
	capacity int
}

// NewCascade synthesizes one section per layout pair, in layout order,
// then scales the numerator of the first section so that the magnitude
// at the layout's reference frequency equals its reference gain.
func NewCascade(digital *Layout) (*Cascade, error) {
	if digital == nil || digital.NumPoles() == 0 {
		return nil, ErrEmptyLayout
	}

	n := (digital.NumPoles() + 1) / 2

	stages := make([]biquad.Coefficients, n, (digital.Capacity()+1)/2)
	for i := range n {
		c, err := Synthesize(digital.At(i))
		if err != nil {
			return nil, fmt.Errorf("iir: stage %d: %w", i, err)
		}

		stages[i] = c
	}

	h := cmplx.Abs(response(stages, digital.NormalizedFrequency()/(2*math.Pi)))
	if h == 0 || math.IsNaN(h) || math.IsInf(h, 0) {
		return nil, fmt.Errorf("%w: |H| = %v at w = %v", ErrDegenerateResponse, h, digital.NormalizedFrequency())
	}

	stages[0].Scale(digital.NormalizedGain() / h)

	if !stages[0].IsFinite() {
		return nil, fmt.Errorf("iir: stage 0: %w", ErrNonFinite)
	}

	return &Cascade{stages: stages, capacity: cap(stages)}, nil
}

// Design transforms analog with t and builds the normalized cascade.
func Design(analog *Layout, t Transformer) (*Cascade, error) {
	digital, err := t.Transform(analog)
	if err != nil {
		return nil, err
	}

	return NewCascade(digital)
}

// Len returns the number of sections.
func (c *Cascade) Len() int { return len(c.stages) }

// Capacity returns the maximum number of sections the source layout
// could have produced.
func (c *Cascade) Capacity() int { return c.capacity }

// Order returns the filter order, counting first-order sections as 1.
func (c *Cascade) Order() int {
	order := 0
	for i := range c.stages {
		if c.stages[i].IsFirstOrder() {
			order++
		} else {
			order += 2
		}
	}

	return order
}

// Stage returns a copy of the i-th section's coefficients.
func (c *Cascade) Stage(i int) biquad.Coefficients { return c.stages[i] }

// Coefficients returns a copy of all sections.
func (c *Cascade) Coefficients() []biquad.Coefficients {
	out := make([]biquad.Coefficients, len(c.stages))
	copy(out, c.stages)

	return out
}

// Response evaluates the complex frequency response at f cycles/sample.
func (c *Cascade) Response(f float64) complex128 {
	return response(c.stages, f)
}

// Magnitude returns |H| at f cycles/sample.
func (c *Cascade) Magnitude(f float64) float64 {
	return cmplx.Abs(response(c.stages, f))
}

// IsStable reports whether every section has its poles inside the unit
// circle.
func (c *Cascade) IsStable() bool {
	for i := range c.stages {
		if !c.stages[i].IsStable() {
			return false
		}
	}

	return true
}

// Chain returns a streaming filter with fresh state running this cascade.
func (c *Cascade) Chain(opts ...biquad.ChainOption) *biquad.Chain {
	return biquad.NewChain(c.Coefficients(), opts...)
}

// response multiplies numerator and denominator terms of all stages,
// visiting the stages from last to first.
func response(stages []biquad.Coefficients, f float64) complex128 {
	w := 2 * math.Pi * f
	czn1 := cmplx.Rect(1, -w)
	czn2 := cmplx.Rect(1, -2*w)

	num := complex(1, 0)
	den := complex(1, 0)

	for i := len(stages) - 1; i >= 0; i-- {
		s := &stages[i]
		num *= complex(s.B0, 0) + scale(s.B1, czn1) + scale(s.B2, czn2)
		den *= 1 + scale(s.A1, czn1) + scale(s.A2, czn2)
	}

	return num / den
}
