// Package registry holds the block-processing kernels available to biquad
// sections and picks the best one for the running CPU.
package registry

import (
	"slices"
	"sync"

	"github.com/cwbudde/algo-vecmath/cpu"
)

// Coefficients are biquad transfer coefficients (a0 normalized to 1).
type Coefficients struct {
	B0, B1, B2 float64
	A1, A2     float64
}

// BlockFn filters buf in-place through one section starting from the
// delay-line state (d0, d1) and returns the final state.
type BlockFn func(c Coefficients, d0, d1 float64, buf []float64) (newD0, newD1 float64)

// Kernel is one registered block implementation.
type Kernel struct {
	Name      string
	SIMDLevel cpu.SIMDLevel
	Priority  int
	Block     BlockFn
}

// Registry stores the kernels known to the process.
type Registry struct {
	mu      sync.RWMutex
	kernels []Kernel
	sorted  bool
}

// Global is the registry populated by the architecture packages' init.
var Global = &Registry{}

// Register adds a kernel.
func (r *Registry) Register(k Kernel) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.kernels = append(r.kernels, k)
	r.sorted = false
}

// Lookup returns the highest-priority kernel usable with features, or nil.
func (r *Registry) Lookup(features cpu.Features) *Kernel {
	r.mu.Lock()
	if !r.sorted {
		slices.SortStableFunc(r.kernels, func(a, b Kernel) int {
			return b.Priority - a.Priority
		})
		r.sorted = true
	}
	r.mu.Unlock()

	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.kernels {
		if supports(features, r.kernels[i].SIMDLevel) {
			return &r.kernels[i]
		}
	}

	return nil
}

// Kernels returns a copy of the registered kernels.
func (r *Registry) Kernels() []Kernel {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Clone(r.kernels)
}

func supports(f cpu.Features, level cpu.SIMDLevel) bool {
	if f.ForceGeneric {
		return level == cpu.SIMDNone
	}

	switch level {
	case cpu.SIMDNone:
		return true
	case cpu.SIMDSSE2:
		return f.HasSSE2
	case cpu.SIMDAVX2:
		return f.HasAVX2
	case cpu.SIMDNEON:
		return f.HasNEON
	default:
		return false
	}
}
