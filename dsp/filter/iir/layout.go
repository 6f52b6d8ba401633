package iir

import (
	"fmt"
	"math"
	"math/cmplx"
)

// Infinity returns the sentinel used for poles and zeros at infinity.
func Infinity() complex128 {
	return complex(math.Inf(1), 0)
}

// IsInfinity reports whether c is a pole or zero at infinity.
func IsInfinity(c complex128) bool {
	return cmplx.IsInf(c)
}

// ComplexPair holds two roots of one section. For a complex branch Second
// is the conjugate of First.
type ComplexPair struct {
	First, Second complex128
}

// IsConjugate reports whether Second is the exact conjugate of First.
func (p ComplexPair) IsConjugate() bool {
	return p.Second == cmplx.Conj(p.First)
}

// IsReal reports whether both roots lie on the real axis.
func (p ComplexPair) IsReal() bool {
	return imag(p.First) == 0 && imag(p.Second) == 0
}

// IsMatchedPair reports whether the pair is either two real roots or a
// complex root and its conjugate.
func (p ComplexPair) IsMatchedPair() bool {
	if imag(p.First) != 0 {
		return p.IsConjugate()
	}

	return imag(p.Second) == 0
}

// IsNaN reports whether either root is NaN.
func (p ComplexPair) IsNaN() bool {
	return cmplx.IsNaN(p.First) || cmplx.IsNaN(p.Second)
}

// PoleZeroPair describes one section of a layout: either a single real
// pole and zero, or two poles and two zeros forming a second-order section.
type PoleZeroPair struct {
	Poles ComplexPair
	Zeros ComplexPair

	single bool
}

// SinglePole returns a first-order pair. The Second slots are zero.
func SinglePole(pole, zero complex128) PoleZeroPair {
	return PoleZeroPair{
		Poles:  ComplexPair{First: pole},
		Zeros:  ComplexPair{First: zero},
		single: true,
	}
}

// ConjugatePair returns the second-order pair formed by pole, zero and
// their conjugates.
func ConjugatePair(pole, zero complex128) PoleZeroPair {
	return PoleZeroPair{
		Poles: ComplexPair{First: pole, Second: cmplx.Conj(pole)},
		Zeros: ComplexPair{First: zero, Second: cmplx.Conj(zero)},
	}
}

// IsSinglePole reports whether the pair describes a first-order section.
func (p PoleZeroPair) IsSinglePole() bool {
	return p.single
}

// IsNaN reports whether any pole or zero is NaN.
func (p PoleZeroPair) IsNaN() bool {
	return p.Poles.IsNaN() || p.Zeros.IsNaN()
}

// Layout is a bounded sequence of pole/zero pairs together with the
// frequency and gain used to normalize the designed cascade.
//
// Capacity is counted in poles. A layout may end with at most one single
// pole; every insert after it fails with ErrLayoutClosed.
type Layout struct {
	pairs    []PoleZeroPair
	numPoles int
	capacity int

	normalW    float64
	normalGain float64
}

// NewLayout returns an empty layout holding up to capacity poles.
// The reference frequency is 0 and the reference gain is 1.
func NewLayout(capacity int) (*Layout, error) {
	if capacity < 1 {
		return nil, fmt.Errorf("%w: capacity %d", ErrInvalidOrder, capacity)
	}

	return &Layout{
		pairs:      make([]PoleZeroPair, 0, (capacity+1)/2),
		capacity:   capacity,
		normalGain: 1,
	}, nil
}

// Capacity returns the maximum number of poles.
func (l *Layout) Capacity() int { return l.capacity }

// NumPoles returns the number of poles inserted so far.
func (l *Layout) NumPoles() int { return l.numPoles }

// Len returns the number of pole/zero pairs, ceil(NumPoles/2).
func (l *Layout) Len() int { return len(l.pairs) }

// At returns the i-th pair. It panics if i is out of range.
func (l *Layout) At(i int) PoleZeroPair { return l.pairs[i] }

// Pairs returns a copy of all pairs in insertion order.
func (l *Layout) Pairs() []PoleZeroPair {
	out := make([]PoleZeroPair, len(l.pairs))
	copy(out, l.pairs)

	return out
}

// NormalizedFrequency returns the reference angle in radians, in [0, pi].
func (l *Layout) NormalizedFrequency() float64 { return l.normalW }

// NormalizedGain returns the linear gain expected at NormalizedFrequency.
func (l *Layout) NormalizedGain() float64 { return l.normalGain }

// SetNormal sets the reference angle (radians) and linear gain.
func (l *Layout) SetNormal(w, gain float64) {
	l.normalW = w
	l.normalGain = gain
}

// Reset removes all pairs. Capacity and the reference values are kept.
func (l *Layout) Reset() {
	l.pairs = l.pairs[:0]
	l.numPoles = 0
}

// Insert appends a single real pole and zero.
func (l *Layout) Insert(pole, zero complex128) error {
	if err := l.canInsert(1); err != nil {
		return err
	}

	if cmplx.IsNaN(pole) || cmplx.IsNaN(zero) {
		return ErrNaN
	}

	if imag(pole) != 0 || imag(zero) != 0 {
		return fmt.Errorf("%w: single pole %v and zero %v must be real", ErrMismatchedPair, pole, zero)
	}

	l.pairs = append(l.pairs, SinglePole(pole, zero))
	l.numPoles++

	return nil
}

// InsertConjugate appends pole and zero together with their conjugates.
func (l *Layout) InsertConjugate(pole, zero complex128) error {
	if err := l.canInsert(2); err != nil {
		return err
	}

	if cmplx.IsNaN(pole) || cmplx.IsNaN(zero) {
		return ErrNaN
	}

	l.pairs = append(l.pairs, ConjugatePair(pole, zero))
	l.numPoles += 2

	return nil
}

// InsertPair appends two poles and two zeros. Each pair must be matched:
// two real values or a complex value and its conjugate.
func (l *Layout) InsertPair(poles, zeros ComplexPair) error {
	if err := l.canInsert(2); err != nil {
		return err
	}

	if poles.IsNaN() || zeros.IsNaN() {
		return ErrNaN
	}

	if !poles.IsMatchedPair() {
		return fmt.Errorf("%w: poles %v, %v", ErrMismatchedPair, poles.First, poles.Second)
	}

	if !zeros.IsMatchedPair() {
		return fmt.Errorf("%w: zeros %v, %v", ErrMismatchedPair, zeros.First, zeros.Second)
	}

	l.pairs = append(l.pairs, PoleZeroPair{Poles: poles, Zeros: zeros})
	l.numPoles += 2

	return nil
}

func (l *Layout) canInsert(n int) error {
	if l.numPoles%2 == 1 {
		return ErrLayoutClosed
	}

	if l.numPoles+n > l.capacity {
		return fmt.Errorf("%w: %d + %d poles > %d", ErrCapacity, l.numPoles, n, l.capacity)
	}

	return nil
}
