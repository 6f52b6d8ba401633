// Package analysis inspects the frequency-domain behavior of filters.
//
// [Freqz] samples any [Responder] (an *iir.Cascade, or a biquad section or
// chain adapted through [FromHz]) on a linear or logarithmic grid.
// [SpectrumFromImpulse] and [MagnitudeSpectrum] take the FFT route from a
// measured impulse response, and [GroupDelay] differentiates the phase.
package analysis
