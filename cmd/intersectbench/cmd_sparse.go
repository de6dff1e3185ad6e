package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mklarqvist/FastIntersectCount/internal/obslog"
	"github.com/mklarqvist/FastIntersectCount/internal/randbits"
	"github.com/mklarqvist/FastIntersectCount/intersect"
)

func newSparseCmd(debug *bool) *cobra.Command {
	var (
		n              int
		nWords         int
		density        float64
		sparseFraction float64
		sparseDensity  float64
		cutoff         int
		seed1          uint64
		seed2          uint64
	)

	cmd := &cobra.Command{
		Use:   "sparse",
		Short: "Generate a mixed dense/sparse collection and run the sparse-aware kernel",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := obslog.NewLogger(cmd.OutOrStdout(), *debug)

			coll := randbits.Generate(randbits.Options{
				N: n, NWords: nWords, Seed1: seed1, Seed2: seed2,
				Density:        density,
				SparseFraction: sparseFraction,
				SparseDensity:  sparseDensity,
			})

			start := time.Now()
			sum := intersect.IntersectSparse(
				coll.Buf, coll.N, coll.NWords,
				coll.NAlts, coll.AltPositions, coll.AltOffsets,
				cutoff,
			)
			elapsed := time.Since(start)

			log.Info("sparse intersection complete",
				"n", n, "nWords", nWords, "cutoff", cutoff,
				"sum", sum, "elapsed", elapsed.String(),
			)
			fmt.Fprintf(cmd.OutOrStdout(), "S=%d elapsed=%s\n", sum, elapsed)
			return nil
		},
	}

	cmd.Flags().IntVar(&n, "n", 200, "number of bitmap vectors")
	cmd.Flags().IntVar(&nWords, "words", 128, "uint64 words per vector")
	cmd.Flags().Float64Var(&density, "density", 0.3, "fraction of bits set in dense vectors")
	cmd.Flags().Float64Var(&sparseFraction, "sparse-fraction", 0.8, "fraction of vectors generated at sparse-density instead of density")
	cmd.Flags().Float64Var(&sparseDensity, "sparse-density", 0.002, "fraction of bits set in sparse vectors")
	cmd.Flags().IntVar(&cutoff, "cutoff", intersect.SparseCutoff, "set-bit count threshold below which the sparse kernel is used for a pair")
	cmd.Flags().Uint64Var(&seed1, "seed1", 7, "first PCG seed half")
	cmd.Flags().Uint64Var(&seed2, "seed2", 8, "second PCG seed half")

	return cmd
}
