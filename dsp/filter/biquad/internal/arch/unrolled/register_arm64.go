//go:build arm64 && !purego

package unrolled

import (
	"github.com/cwbudde/algo-iir/dsp/filter/biquad/internal/arch/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
)

func init() {
	registry.Global.Register(registry.Kernel{
		Name:      "unrolled",
		SIMDLevel: cpu.SIMDNEON,
		Priority:  15,
		Block:     Block,
	})
}
