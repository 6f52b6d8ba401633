// Package design provides single-section biquad designers.
//
// Two cookbook families are available behind one [Type] tag: [RBJ]
// implements Robert Bristow-Johnson's audio EQ cookbook and [Zoelzer]
// implements the prewarped bilinear forms from Udo Zölzer's DAFX tables.
// Both return coefficients consumable by dsp/filter/biquad.
//
// Higher-order cascades (Butterworth, Chebyshev) live in dsp/filter/iir
// and its family sub-packages.
package design
