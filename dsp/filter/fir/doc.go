// Package fir provides ring-buffer FIR runtimes for running statistics.
//
// A [MovingAverage] is the N-tap boxcar FIR h[k] = 1/N. A [MovingRMS]
// applies the same window to x^2 and returns the square root. Both keep a
// running sum over a circular delay line, so each sample costs O(1)
// regardless of the window length, and both start from a zero-filled
// history.
package fir
