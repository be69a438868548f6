package shadow

import (
	"math"
	"sync/atomic"
)

type kernelEntry struct {
	radius  int
	weights []float32
}

// Single-slot cache, last radius wins. Concurrent calls with differing radii
// may recompute redundantly, but each caller always receives a kernel
// matching its own radius.
var cachedKernel atomic.Pointer[kernelEntry]

// Kernel returns the normalized 1-D Gaussian weight vector of length
// 2*radius+1 for the given radius. The returned slice is shared with the
// cache and must not be modified by callers. A radius of 0 (or less) yields
// the identity kernel [1.0].
func Kernel(radius int) []float32 {
	if radius < 0 {
		radius = 0
	}

	if entry := cachedKernel.Load(); entry != nil && entry.radius == radius {
		return entry.weights
	}

	entry := &kernelEntry{radius: radius, weights: computeKernel(radius)}
	cachedKernel.Store(entry)
	return entry.weights
}

func computeKernel(radius int) []float32 {
	if radius == 0 {
		return []float32{1.0}
	}

	sigma := float64(radius) / 2.0
	twoSigmaSq := 2 * sigma * sigma

	weights := make([]float32, 2*radius+1)
	sum := float64(0)
	for i := -radius; i <= radius; i++ {
		w := math.Exp(-float64(i*i) / twoSigmaSq)
		weights[i+radius] = float32(w)
		sum += w
	}

	inv := float32(1 / sum)
	for i := range weights {
		weights[i] *= inv
	}

	return weights
}
