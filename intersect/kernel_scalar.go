package intersect

import "math/bits"

// denseKernelFunc computes popcount(a AND b) over two equal-length
// word slices. Both slices must have the same length; the caller
// (selectDenseKernel's resolved kernel, invoked only from driver.go
// and driver_sparse.go)
// guarantees this.
type denseKernelFunc func(a, b []uint64) uint64

// kernelScalar is the reference dense kernel: every other kernel must
// agree with it for every input (spec.md §8, "Agreement across
// kernels"). It unrolls four 64-bit popcount(AND) operations per
// iteration with a scalar tail, per spec.md §4.3's final paragraph.
func kernelScalar(a, b []uint64) uint64 {
	var total uint64
	n := len(a)
	i := 0
	for ; i+4 <= n; i += 4 {
		total += uint64(bits.OnesCount64(a[i] & b[i]))
		total += uint64(bits.OnesCount64(a[i+1] & b[i+1]))
		total += uint64(bits.OnesCount64(a[i+2] & b[i+2]))
		total += uint64(bits.OnesCount64(a[i+3] & b[i+3]))
	}
	for ; i < n; i++ {
		total += uint64(bits.OnesCount64(a[i] & b[i]))
	}
	return total
}
