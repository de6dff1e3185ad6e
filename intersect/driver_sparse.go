package intersect

// SparseCutoff is the default sparse cutoff of spec.md §4.7/§6.
// [IntersectSparse] does not read it: it uses its own cutoff argument,
// one fixed value for every pair of a call. Callers pass SparseCutoff
// as that argument to get the default (cmd/intersectbench does so for
// its --cutoff flag default). It is a package variable, overridable
// the same way [WorkingSetTargetBytes] is.
var SparseCutoff = 50

// IntersectSparse computes the same sum as [Intersect] but consults,
// per pair, each vector's set-bit count: if either is below cutoff the
// sparse kernel is used, otherwise the dense kernel (spec.md §4.7,
// §6 operation 3). nAlts, altOffsets must each have length n;
// altPositions holds every vector's ascending set-bit positions back
// to back, vector i occupying altPositions[altOffsets[i]:altOffsets[i]+nAlts[i]].
func IntersectSparse(buf []uint64, n, nWords int, nAlts []uint32, altPositions, altOffsets []uint32, cutoff int) uint64 {
	return intersectSparseBlocked(buf, n, nWords, nAlts, altPositions, altOffsets, cutoff, blockSize(nWords))
}

// intersectSparseBlocked is IntersectSparse with an explicit block
// size, used the same way IntersectBlocked is: to verify block-size
// invariance and for benchmarking.
func intersectSparseBlocked(buf []uint64, n, nWords int, nAlts []uint32, altPositions, altOffsets []uint32, cutoff, b int) uint64 {
	if b < 1 {
		b = 1
	}
	kernel := selectDenseKernel(DetectCapabilities(), nWords)
	vec := func(idx int) []uint64 {
		start := idx * nWords
		return buf[start : start+nWords]
	}
	pos := func(idx int) []uint32 {
		off := altOffsets[idx]
		return altPositions[off : off+nAlts[idx]]
	}
	pair := func(u, v int) uint64 {
		if int(nAlts[u]) < cutoff || int(nAlts[v]) < cutoff {
			return kernelSparse(pos(u), pos(v), vec(u), vec(v))
		}
		return kernel(vec(u), vec(v))
	}

	var total uint64
	i := 0
	for ; i+b <= n; i += b {
		for a := 0; a < b; a++ {
			for bb := a + 1; bb < b; bb++ {
				total += pair(i+a, i+bb)
			}
		}

		j := i + b
		for ; j+b <= n; j += b {
			for a := 0; a < b; a++ {
				for bb := 0; bb < b; bb++ {
					total += pair(i+a, j+bb)
				}
			}
		}

		for ; j < n; j++ {
			for a := 0; a < b; a++ {
				total += pair(i+a, j)
			}
		}
	}

	for ; i < n; i++ {
		for j := i + 1; j < n; j++ {
			total += pair(i, j)
		}
	}
	return total
}
