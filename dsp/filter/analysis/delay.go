package analysis

import (
	"math"
	"math/cmplx"
)

// groupDelayStep is the half-width of the central difference in cycles/sample.
const groupDelayStep = 1e-6

// GroupDelay returns -dphi/domega of r at freqHz, in samples.
//
// The derivative is a central difference over the phase of
// H(f+h)/H(f-h), which stays clear of the 2*pi wrap. The step is pulled
// inside [0, 0.5] at the band edges. NaN is returned where |H| vanishes.
func GroupDelay(r Responder, freqHz, sampleRate float64) float64 {
	f := freqHz / sampleRate
	lo := math.Max(f-groupDelayStep, 0)
	hi := math.Min(f+groupDelayStep, 0.5)

	if hi <= lo {
		return math.NaN()
	}

	a := r.Response(lo)
	b := r.Response(hi)

	if a == 0 || b == 0 {
		return math.NaN()
	}

	dphi := cmplx.Phase(b / a)

	return -dphi / (2 * math.Pi * (hi - lo))
}
