package biquad

import "math/cmplx"

// Roots holds the z-plane poles and zeros of one section.
// First-order sections report 0 in the second slot.
type Roots struct {
	Poles [2]complex128
	Zeros [2]complex128
}

// Poles returns the roots of 1 + A1*z^-1 + A2*z^-2.
func (c *Coefficients) Poles() [2]complex128 {
	return quadraticRoots(1, c.A1, c.A2)
}

// Zeros returns the roots of B0 + B1*z^-1 + B2*z^-2.
func (c *Coefficients) Zeros() [2]complex128 {
	return quadraticRoots(c.B0, c.B1, c.B2)
}

// Roots returns both poles and zeros of the section.
func (c *Coefficients) Roots() Roots {
	return Roots{Poles: c.Poles(), Zeros: c.Zeros()}
}

// Roots returns one Roots entry per chain section.
func (c *Chain) Roots() []Roots {
	out := make([]Roots, len(c.sections))
	for i := range c.sections {
		out[i] = c.sections[i].Roots()
	}

	return out
}

func quadraticRoots(a, b, c float64) [2]complex128 {
	if a == 0 {
		if b == 0 {
			return [2]complex128{}
		}

		return [2]complex128{complex(-c/b, 0), 0}
	}

	sq := cmplx.Sqrt(complex(b*b-4*a*c, 0))
	den := complex(2*a, 0)

	return [2]complex128{
		(-complex(b, 0) + sq) / den,
		(-complex(b, 0) - sq) / den,
	}
}
