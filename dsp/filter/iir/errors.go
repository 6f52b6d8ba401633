package iir

import "errors"

var (
	// ErrCapacity is returned when an insert would exceed a Layout's capacity.
	ErrCapacity = errors.New("iir: layout capacity exceeded")
	// ErrLayoutClosed is returned when inserting after an unpaired real pole.
	ErrLayoutClosed = errors.New("iir: layout already ends with a single pole")
	// ErrNaN is returned for NaN poles or zeros.
	ErrNaN = errors.New("iir: NaN pole or zero")
	// ErrMismatchedPair is returned when poles or zeros of one pair are
	// neither both real nor complex conjugates.
	ErrMismatchedPair = errors.New("iir: mismatched pole/zero pair")
	// ErrNonFinite is returned when synthesis yields non-finite coefficients.
	ErrNonFinite = errors.New("iir: non-finite coefficients")
	// ErrEmptyLayout is returned when a cascade is built from a layout
	// without poles.
	ErrEmptyLayout = errors.New("iir: layout has no poles")
	// ErrDegenerateResponse is returned when the cascade response at the
	// normalization frequency is zero or not finite.
	ErrDegenerateResponse = errors.New("iir: degenerate response at normalization frequency")
	// ErrInvalidOrder is returned for orders outside [1, MaxOrder].
	ErrInvalidOrder = errors.New("iir: invalid filter order")
	// ErrInvalidFrequency is returned for frequencies outside (0, Nyquist)
	// or non-positive sample rates.
	ErrInvalidFrequency = errors.New("iir: invalid frequency")
	// ErrInvalidParameter is returned for out-of-range ripple, attenuation
	// or gain arguments.
	ErrInvalidParameter = errors.New("iir: invalid design parameter")
)
