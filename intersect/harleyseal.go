package intersect

import "math/bits"

// A "register" here is one SIMD lane's worth of 64-bit words:
// laneWords=2 for a 128-bit register, 4 for 256-bit, 8 for 512-bit.
// Every CSA and popcount operation below treats each of the laneWords
// sub-words independently, which is valid because a carry-save adder
// is a bitwise operation — grouping consecutive stream words into a
// wider "lane" is just a strided accumulation order, and the final
// sum is order-independent (spec.md §5, "commutative associative
// sum").

// csa applies a carry-save adder across a laneWords-wide register:
// l = a^b^c, h = majority(a,b,c). a is always the running accumulator
// itself (also the destination for l), matching the canonical
// Harley-Seal recurrence CSA(h, l, l, data0, data1); sum/carry are
// computed into locals first so h and l may alias a.
func csa(h, l, a, b, c []uint64) {
	for j := range a {
		u := a[j] ^ b[j]
		sum := u ^ c[j]
		carry := (a[j] & b[j]) | (u & c[j])
		l[j] = sum
		h[j] = carry
	}
}

func andWords(dst, a, b []uint64) {
	for j := range a {
		dst[j] = a[j] & b[j]
	}
}

func popcountWords(a []uint64) uint64 {
	var total uint64
	for _, w := range a {
		total += uint64(bits.OnesCount64(w))
	}
	return total
}

// harleySeal implements the Harley-Seal carry-save popcount-of-AND
// reduction of spec.md §4.3: a depth-4 CSA tree (ones→twos→fours→
// eights→sixteens) processing 16 lanes per outer iteration, folding
// the residual accumulators and a scalar tail at the end. laneWords is
// 2, 4, or 8 for the 128/256/512-bit kernels; this single
// implementation backs all three portable dense kernels.
func harleySeal(a, b []uint64, laneWords int) uint64 {
	n := len(a)
	chunkWords := laneWords * 16
	if chunkWords == 0 || n < chunkWords {
		return kernelScalar(a, b)
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
			andWords(d[k], a[off:off+laneWords], b[off:off+laneWords])
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

	reg := make([]uint64, laneWords)
	for ; i+laneWords <= n; i += laneWords {
		andWords(reg, a[i:i+laneWords], b[i:i+laneWords])
		total += popcountWords(reg)
	}
	for ; i < n; i++ {
		total += uint64(bits.OnesCount64(a[i] & b[i]))
	}
	return total
}
