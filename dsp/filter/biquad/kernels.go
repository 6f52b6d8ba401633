package biquad

import (
	_ "github.com/cwbudde/algo-iir/dsp/filter/biquad/internal/arch/generic"  // portable fallback
	_ "github.com/cwbudde/algo-iir/dsp/filter/biquad/internal/arch/unrolled" // amd64/arm64 entries
)
