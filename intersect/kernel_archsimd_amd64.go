//go:build goexperiment.simd && amd64

package intersect

// =============================================================================
// Hardware-accelerated dense kernels (simd/archsimd)
// =============================================================================
//
// NOTE: simd/archsimd is the experimental Go 1.26 package gated behind
// GOEXPERIMENT=simd (see https://go.dev/doc/go1.26,
// https://github.com/golang/go/issues/73787). As of this writing it
// exposes lane load/compare/logical primitives but, like the teacher
// package's use of it for byte-equality masks, no CPU feature check of
// its own — using a vector width the hardware does not support is a
// SIGILL, not a Go-level error. So every entry point below is reached
// only after DetectCapabilities() has confirmed, at runtime, that the
// matching flag is set, mirroring simd_scanner.go's useAVX512 gate.
//
// Only the AND of each lane is executed on hardware vector registers.
// The CSA tree runs through harleyseal.go's word-wise csa and the
// popcounts through bits.OnesCount64, exactly as in the portable path.

import (
	"simd/archsimd"
	"sync"
)

var archsimdOnce sync.Once

// kernel128Hardware runs the Harley-Seal reduction of harleyseal.go
// with its elementwise AND computed via a single 128-bit SSE register
// load instead of two scalar loads per lane.
func kernel128Hardware(a, b []uint64) uint64 {
	n := len(a)
	if n < 32 {
		return kernel128(a, b)
	}
	return harleySealVector(a, b, 2, func(dst, x, y []uint64) {
		lo := archsimd.LoadUint64x2((*[2]uint64)(x))
		hi := archsimd.LoadUint64x2((*[2]uint64)(y))
		lo.And(hi).Store((*[2]uint64)(dst))
	})
}

// kernel256Hardware is the AVX2 counterpart, one 256-bit register per
// lane.
func kernel256Hardware(a, b []uint64) uint64 {
	n := len(a)
	if n < 64 {
		return kernel256(a, b)
	}
	return harleySealVector(a, b, 4, func(dst, x, y []uint64) {
		lo := archsimd.LoadUint64x4((*[4]uint64)(x))
		hi := archsimd.LoadUint64x4((*[4]uint64)(y))
		lo.And(hi).Store((*[4]uint64)(dst))
	})
}

// kernel512Hardware is the AVX-512BW counterpart. On real AVX-512
// hardware the CSA majority/xor pair below would fuse into a single
// VPTERNLOGQ each (spec.md §4.3); here the CSA tree in
// harleySealVector calls harleyseal.go's csa, which issues the
// And/Xor/Or sequence word by word on scalar uint64 values. Only the
// lane AND uses 512-bit registers.
func kernel512Hardware(a, b []uint64) uint64 {
	n := len(a)
	if n < 128 {
		return kernel512(a, b)
	}
	return harleySealVector(a, b, 8, func(dst, x, y []uint64) {
		lo := archsimd.LoadUint64x8((*[8]uint64)(x))
		hi := archsimd.LoadUint64x8((*[8]uint64)(y))
		lo.And(hi).Store((*[8]uint64)(dst))
	})
}

// harleySealVector is harleySeal's hardware-assisted twin: it shares
// the exact CSA-tree structure and residual-folding math, but computes
// each lane's AND via the supplied vector-load-and-store closure
// instead of a plain Go loop. Keeping the tree identical between
// harleyseal.go and this file is what guarantees the hardware and
// portable kernels agree bit-for-bit (spec.md §8).
func harleySealVector(a, b []uint64, laneWords int, andVec func(dst, x, y []uint64)) uint64 {
	n := len(a)
	chunkWords := laneWords * 16
	if n < chunkWords {
		return harleySeal(a, b, laneWords)
	}

	ones := make([]uint64, laneWords)
	twos := make([]uint64, laneWords)
	fours := make([]uint64, laneWords)
	eights := make([]uint64, laneWords)
	sixteens := make([]uint64, laneWords)
	twosA := make([]uint64, laneWords)
	twosB := make([]uint64, laneWords)
	foursA := make([]uint64, laneWords)
	foursB := make([]uint64, laneWords)
	eightsA := make([]uint64, laneWords)
	eightsB := make([]uint64, laneWords)

	var d [16][]uint64
	for k := range d {
		d[k] = make([]uint64, laneWords)
	}

	var cnt uint64
	i := 0
	for ; i+chunkWords <= n; i += chunkWords {
		for k := 0; k < 16; k++ {
			off := i + k*laneWords
			andVec(d[k], a[off:off+laneWords], b[off:off+laneWords])
		}

		csa(twosA, ones, ones, d[0], d[1])
		csa(twosB, ones, ones, d[2], d[3])
		csa(foursA, twos, twos, twosA, twosB)

		csa(twosA, ones, ones, d[4], d[5])
		csa(twosB, ones, ones, d[6], d[7])
		csa(foursB, twos, twos, twosA, twosB)
		csa(eightsA, fours, fours, foursA, foursB)

		csa(twosA, ones, ones, d[8], d[9])
		csa(twosB, ones, ones, d[10], d[11])
		csa(foursA, twos, twos, twosA, twosB)

		csa(twosA, ones, ones, d[12], d[13])
		csa(twosB, ones, ones, d[14], d[15])
		csa(foursB, twos, twos, twosA, twosB)
		csa(eightsB, fours, fours, foursA, foursB)

		csa(sixteens, eights, eights, eightsA, eightsB)

		cnt += popcountWords(sixteens)
	}

	total := cnt << 4
	total += popcountWords(eights) << 3
	total += popcountWords(fours) << 2
	total += popcountWords(twos) << 1
	total += popcountWords(ones)

	return total + harleySeal(a[i:], b[i:], laneWords)
}

// init installs the hardware kernels over the portable defaults in
// denseKernelTable, one width at a time, only for the widths the CPU
// (not just the build tag) actually supports.
func init() {
	archsimdOnce.Do(func() {
		caps := DetectCapabilities()
		if caps.Has(CapPacked128) {
			denseKernelTable[kernelWidth128] = kernel128Hardware
		}
		if caps.Has(CapPacked256) {
			denseKernelTable[kernelWidth256] = kernel256Hardware
		}
		if caps.Has(CapPacked512BW) {
			denseKernelTable[kernelWidth512] = kernel512Hardware
		}
	})
}
