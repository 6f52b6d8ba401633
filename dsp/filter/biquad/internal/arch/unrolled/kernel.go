// Package unrolled registers a 4x-unrolled scalar kernel for CPUs with wide
// out-of-order cores (AVX2-class x86, NEON-class arm64).
package unrolled

import "github.com/cwbudde/algo-iir/dsp/filter/biquad/internal/arch/registry"

// Block processes buf four samples per iteration. The recursion is serial,
// so unrolling only trims loop overhead and keeps coefficients in registers.
func Block(c registry.Coefficients, d0, d1 float64, buf []float64) (newD0, newD1 float64) {
	b0, b1, b2 := c.B0, c.B1, c.B2
	a1, a2 := c.A1, c.A2

	n := len(buf)
	i := 0

	for ; i+3 < n; i += 4 {
		x := buf[i : i+4 : i+4]

		y0 := b0*x[0] + d0
		d0, d1 = b1*x[0]-a1*y0+d1, b2*x[0]-a2*y0

		y1 := b0*x[1] + d0
		d0, d1 = b1*x[1]-a1*y1+d1, b2*x[1]-a2*y1

		y2 := b0*x[2] + d0
		d0, d1 = b1*x[2]-a1*y2+d1, b2*x[2]-a2*y2

		y3 := b0*x[3] + d0
		d0, d1 = b1*x[3]-a1*y3+d1, b2*x[3]-a2*y3

		x[0], x[1], x[2], x[3] = y0, y1, y2, y3
	}

	for ; i < n; i++ {
		x := buf[i]
		y := b0*x + d0
		d0, d1 = b1*x-a1*y+d1, b2*x-a2*y
		buf[i] = y
	}

	return d0, d1
}
