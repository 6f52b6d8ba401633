// Package biquad provides the second-order IIR runtime used by every
// designer in this module.
//
// A [Section] runs Direct Form II Transposed processing for one set of
// [Coefficients]. A [Chain] cascades sections in series for higher-order
// filters. Coefficient design lives in dsp/filter/iir (pole/zero cascades)
// and dsp/filter/design (single-section cookbook formulas).
package biquad
