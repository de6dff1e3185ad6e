// Package randbits generates seeded random bitmap collections for
// cmd/intersectbench. The intersect package's own tests cannot import
// it (it imports intersect) and use their own generator. It is not
// imported by the intersect package itself — spec.md §1 treats bitmap
// construction from higher-level data as an external collaborator.
package randbits

import (
	"math/rand/v2"

	"github.com/mklarqvist/FastIntersectCount/intersect"
)

// Collection is a generated bitmap collection plus, when sparse mode
// is requested, the parallel set-bit position lists IntersectSparse
// needs.
type Collection struct {
	Buf          []uint64
	N            int
	NWords       int
	NAlts        []uint32
	AltPositions []uint32
	AltOffsets   []uint32
}

// Options controls collection generation.
type Options struct {
	N       int
	NWords  int
	Seed1   uint64
	Seed2   uint64
	Density float64 // fraction of bits set per vector, in [0,1]

	// SparseFraction, when > 0, makes that fraction of vectors carry far
	// fewer set bits (SparseDensity) while the rest stay dense (Density),
	// so a generated collection can exercise IntersectSparse's cutoff
	// logic meaningfully instead of being uniformly dense or sparse.
	SparseFraction float64
	SparseDensity  float64
}

// Generate builds a Collection per opts. Alt lists are always
// populated (by enumerating set bits from the generated dense buffer)
// so the result can be fed to either intersect.Intersect or
// intersect.IntersectSparse.
func Generate(opts Options) *Collection {
	rng := rand.New(rand.NewPCG(opts.Seed1, opts.Seed2))
	buf := make([]uint64, opts.N*opts.NWords)
	nAlts := make([]uint32, opts.N)
	altOffsets := make([]uint32, opts.N)
	var altPositions []uint32

	for i := 0; i < opts.N; i++ {
		density := opts.Density
		if opts.SparseFraction > 0 && rng.Float64() < opts.SparseFraction {
			density = opts.SparseDensity
		}
		vec := buf[i*opts.NWords : (i+1)*opts.NWords]
		fillRandom(rng, vec, density)

		before := len(altPositions)
		altPositions = intersect.EnumerateSetBits(vec, altPositions)
		altOffsets[i] = uint32(before)
		nAlts[i] = uint32(len(altPositions) - before)
	}

	return &Collection{
		Buf:          buf,
		N:            opts.N,
		NWords:       opts.NWords,
		NAlts:        nAlts,
		AltPositions: altPositions,
		AltOffsets:   altOffsets,
	}
}

func fillRandom(rng *rand.Rand, vec []uint64, density float64) {
	switch {
	case density <= 0:
		for i := range vec {
			vec[i] = 0
		}
	case density >= 1:
		for i := range vec {
			vec[i] = ^uint64(0)
		}
	default:
		for i := range vec {
			var w uint64
			for bit := 0; bit < 64; bit++ {
				if rng.Float64() < density {
					w |= 1 << bit
				}
			}
			vec[i] = w
		}
	}
}
