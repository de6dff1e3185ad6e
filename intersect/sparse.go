package intersect

import (
	"math/bits"

	"github.com/mklarqvist/FastIntersectCount/internal/prefetch"
)

// prefetchAhead is how many iterations ahead of the current probe
// index kernelSparse issues its prefetch hint.
const prefetchAhead = 4

// kernelSparse computes popcount(denseA AND denseB) given each
// vector's ascending set-bit position list, per spec.md §4.4: it
// iterates the shorter list and tests the corresponding bit in the
// other dense bitmap. Positions in posShort must be strictly ascending
// and < len(denseOther)*64 (spec.md §3 invariant); violating this is
// undefined behavior and is not checked.
func kernelSparse(posA, posB []uint32, denseA, denseB []uint64) uint64 {
	posShort, denseOther := posA, denseB
	if len(posB) < len(posA) {
		posShort, denseOther = posB, denseA
	}

	var total uint64
	for i, p := range posShort {
		if i+prefetchAhead < len(posShort) {
			prefetch.Hint(denseOther, int(posShort[i+prefetchAhead]>>6))
		}
		word := denseOther[p>>6]
		total += uint64((word >> (p & 63)) & 1)
	}
	return total
}

// EnumerateSetBits appends, in ascending order, the indices of every
// set bit in dense to dst and returns the result. It is not on the hot
// path (the sparse kernel never builds a position list itself — the
// caller supplies one) but is useful for building inputs that satisfy
// the dense/sparse agreement property of spec.md §8, and is exported
// for exactly that purpose (e.g. internal/randbits builds the position
// lists of its collections, which cmd/intersectbench's verify
// subcommand consumes, with it).
func EnumerateSetBits(dense []uint64, dst []uint32) []uint32 {
	for wordIdx, word := range dense {
		for word != 0 {
			bit := bits.TrailingZeros64(word)
			dst = append(dst, uint32(wordIdx*64+bit))
			word &= word - 1
		}
	}
	return dst
}
