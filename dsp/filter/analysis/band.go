package analysis

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// BandStats summarizes the magnitude of a Response over a frequency band.
type BandStats struct {
	Min, Max float64 // dB
	Mean     float64 // mean dB level
	Ripple   float64 // Max - Min, dB
	Points   int
}

// Band returns magnitude statistics over every grid point with
// loHz <= f <= hiHz.
func (r Response) Band(loHz, hiHz float64) (BandStats, error) {
	if !(loHz <= hiHz) {
		return BandStats{}, fmt.Errorf("%w: [%v, %v] Hz", ErrInvalidBand, loHz, hiHz)
	}

	db := r.MagnitudeDB()

	var sel []float64

	for i, f := range r.Frequencies {
		if f >= loHz && f <= hiHz {
			sel = append(sel, db[i])
		}
	}

	if len(sel) == 0 {
		return BandStats{}, fmt.Errorf("%w: no grid point in [%v, %v] Hz", ErrInvalidBand, loHz, hiHz)
	}

	minDB := floats.Min(sel)
	maxDB := floats.Max(sel)

	return BandStats{
		Min:    minDB,
		Max:    maxDB,
		Mean:   stat.Mean(sel, nil),
		Ripple: maxDB - minDB,
		Points: len(sel),
	}, nil
}
