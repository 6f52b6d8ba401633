// Package iir designs digital IIR filters as cascades of biquad sections.
//
// A design runs through four stages:
//
//  1. an analog prototype Layout holds s-plane poles and zeros,
//  2. a Transformer (Lowpass, Highpass, Bandpass, Bandstop, BandShelf)
//     maps it onto the z-plane through the bilinear transform,
//  3. Synthesize turns every pole/zero pair into one biquad section,
//  4. NewCascade chains the sections and scales the first one so that the
//     magnitude response at the layout's reference frequency equals the
//     layout's reference gain.
//
// The family packages (butterworth, chebyshev1, chebyshev2) supply the
// analog prototypes and wrap the pipeline in plain design functions.
// Frequencies passed to transformers are normalized to cycles per sample,
// so 0.5 is Nyquist.
package iir
