package intersect

import (
	"math/rand/v2"
	"testing"
)

// buildAltLists derives nAlts/altPositions/altOffsets from a dense
// collection by enumerating set bits, exactly as spec.md §8's
// dense/sparse agreement property requires.
func buildAltLists(buf []uint64, n, nWords int) (nAlts, altPositions, altOffsets []uint32) {
	nAlts = make([]uint32, n)
	altOffsets = make([]uint32, n)
	for i := 0; i < n; i++ {
		vec := buf[i*nWords : (i+1)*nWords]
		before := len(altPositions)
		altPositions = EnumerateSetBits(vec, altPositions)
		altOffsets[i] = uint32(before)
		nAlts[i] = uint32(len(altPositions) - before)
	}
	return nAlts, altPositions, altOffsets
}

func TestKernelSparseAgreesWithDense(t *testing.T) {
	rng := rand.New(rand.NewPCG(31, 32))
	for _, nWords := range []int{1, 2, 5, 17} {
		for _, density := range []float64{0.0, 0.01, 0.1, 0.5, 1.0} {
			a := randomDenseVector(rng, nWords, density)
			b := randomDenseVector(rng, nWords, density)
			posA := EnumerateSetBits(a, nil)
			posB := EnumerateSetBits(b, nil)

			want := kernelScalar(a, b)
			got := kernelSparse(posA, posB, a, b)
			if got != want {
				t.Errorf("nWords=%d density=%.2f: kernelSparse = %d, want %d", nWords, density, got, want)
			}
		}
	}
}

func TestIntersectSparseAgreesWithDenseForAnyCutoff(t *testing.T) {
	rng := rand.New(rand.NewPCG(41, 42))
	for _, n := range []int{0, 1, 2, 8, 30} {
		for _, nWords := range []int{2, 6} {
			buf := randomCollection(rng, n, nWords, 0.2)
			nAlts, altPositions, altOffsets := buildAltLists(buf, n, nWords)
			want := Intersect(buf, n, nWords)
			for _, cutoff := range []int{0, 1, 50, 10000} {
				got := IntersectSparse(buf, n, nWords, nAlts, altPositions, altOffsets, cutoff)
				if got != want {
					t.Fatalf("n=%d nWords=%d cutoff=%d: IntersectSparse() = %d, want %d",
						n, nWords, cutoff, got, want)
				}
			}
		}
	}
}

func TestIntersectSparseBlockSizeInvariance(t *testing.T) {
	rng := rand.New(rand.NewPCG(51, 52))
	buf := randomCollection(rng, 40, 3, 0.05)
	nAlts, altPositions, altOffsets := buildAltLists(buf, 40, 3)

	reference := intersectSparseBlocked(buf, 40, 3, nAlts, altPositions, altOffsets, SparseCutoff, 1)
	for _, b := range []int{2, 3, 7, 16, 64} {
		got := intersectSparseBlocked(buf, 40, 3, nAlts, altPositions, altOffsets, SparseCutoff, b)
		if got != reference {
			t.Errorf("b=%d: intersectSparseBlocked() = %d, want %d", b, got, reference)
		}
	}
}

// =============================================================================
// Test helpers
// =============================================================================

func randomDenseVector(rng *rand.Rand, nWords int, density float64) []uint64 {
	v := make([]uint64, nWords)
	for i := range v {
		var w uint64
		for bit := 0; bit < 64; bit++ {
			if rng.Float64() < density {
				w |= 1 << bit
			}
		}
		v[i] = w
	}
	return v
}
