package intersect

import (
	"math/rand/v2"
	"unsafe"
)

// uintptrOf returns the address of buf's backing array, for alignment
// assertions in tests.
func uintptrOf(buf []uint64) uintptr {
	return uintptr(unsafe.Pointer(&buf[0]))
}

// randomCollection builds an n-vector collection of nWords-word
// vectors with the given fraction of bits set, seeded for
// reproducibility. It is a lighter-weight stand-in for
// internal/randbits used directly by intersect's own tests so the
// package's tests don't import its own consumer.
func randomCollection(rng *rand.Rand, n, nWords int, density float64) []uint64 {
	buf := make([]uint64, n*nWords)
	for i := range buf {
		var w uint64
		for bit := 0; bit < 64; bit++ {
			if rng.Float64() < density {
				w |= 1 << bit
			}
		}
		buf[i] = w
	}
	return buf
}

// referenceSum computes Σ_{i<j<n} popcount(B_i AND B_j) the naive way,
// independent of any kernel or driver, for tests to compare against.
func referenceSum(buf []uint64, n, nWords int) uint64 {
	var total uint64
	for i := 0; i < n; i++ {
		vi := buf[i*nWords : (i+1)*nWords]
		for j := i + 1; j < n; j++ {
			vj := buf[j*nWords : (j+1)*nWords]
			total += kernelScalar(vi, vj)
		}
	}
	return total
}
