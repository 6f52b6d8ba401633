package iir

import (
	"fmt"
	"math"
)

// MaxOrder is the largest analog prototype order accepted by the family
// designers. Band transforms double it.
const MaxOrder = 50

// ValidateOrder returns ErrInvalidOrder unless 1 <= order <= MaxOrder.
func ValidateOrder(order int) error {
	if order < 1 || order > MaxOrder {
		return fmt.Errorf("%w: %d not in [1, %d]", ErrInvalidOrder, order, MaxOrder)
	}

	return nil
}

// NormalizeCutoff converts freq (Hz) to cycles/sample and checks that it
// lies strictly between DC and Nyquist.
func NormalizeCutoff(freq, sampleRate float64) (float64, error) {
	if !(sampleRate > 0) || math.IsInf(sampleRate, 0) {
		return 0, fmt.Errorf("%w: sample rate %v", ErrInvalidFrequency, sampleRate)
	}

	if !(freq > 0 && freq < sampleRate/2) {
		return 0, fmt.Errorf("%w: %v Hz not in (0, %v)", ErrInvalidFrequency, freq, sampleRate/2)
	}

	return freq / sampleRate, nil
}

// NormalizeBand converts a center frequency and bandwidth (Hz) to
// cycles/sample. Band edges beyond DC or Nyquist are clamped by the
// transforms, so only the center and a positive width are checked.
func NormalizeBand(center, width, sampleRate float64) (fc, fw float64, err error) {
	fc, err = NormalizeCutoff(center, sampleRate)
	if err != nil {
		return 0, 0, err
	}

	if !(width > 0) || math.IsInf(width, 0) {
		return 0, 0, fmt.Errorf("%w: bandwidth %v", ErrInvalidFrequency, width)
	}

	return fc, width / sampleRate, nil
}

// ValidateGain returns ErrInvalidParameter if db is not finite.
func ValidateGain(db float64) error {
	if math.IsNaN(db) || math.IsInf(db, 0) {
		return fmt.Errorf("%w: gain %v dB", ErrInvalidParameter, db)
	}

	return nil
}

// DBToMagnitude converts decibels to a linear amplitude ratio.
func DBToMagnitude(db float64) float64 {
	return math.Pow(10, db/20)
}
