package convolve

// KernelDim is the fixed side length of a convolution kernel.
const KernelDim = 3

// kernelHalf is the tap offset from the kernel center to its edge.
const kernelHalf = KernelDim / 2

// Kernel is an immutable 3x3 integer convolution filter.
//
// The normalization factor is the sum of all weights, computed once at
// construction. A zero sum is coerced to 1: zero-sum kernels such as
// edge-detect are meant to divide by 1, not by their nominal sum.
type Kernel struct {
	weights [KernelDim][KernelDim]int
	norm    int
}

// NewKernel creates a kernel from a 3x3 weight grid.
func NewKernel(weights [KernelDim][KernelDim]int) Kernel {
	norm := 0
	for _, row := range weights {
		for _, w := range row {
			norm += w
		}
	}
	if norm == 0 {
		norm = 1
	}
	return Kernel{weights: weights, norm: norm}
}

// Weight returns the weight at grid position (row, col), both in [0, 3).
func (k Kernel) Weight(row, col int) int {
	return k.weights[row][col]
}

// Norm returns the precomputed normalization factor.
func (k Kernel) Norm() int {
	return k.norm
}
