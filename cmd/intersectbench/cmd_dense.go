package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mklarqvist/FastIntersectCount/internal/obslog"
	"github.com/mklarqvist/FastIntersectCount/internal/randbits"
	"github.com/mklarqvist/FastIntersectCount/intersect"
)

func newDenseCmd(debug *bool) *cobra.Command {
	var (
		n       int
		nWords  int
		density float64
		seed1   uint64
		seed2   uint64
		block   int
	)

	cmd := &cobra.Command{
		Use:   "dense",
		Short: "Generate a random collection and run the dense all-pairs kernel",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := obslog.NewLogger(cmd.OutOrStdout(), *debug)

			coll := randbits.Generate(randbits.Options{
				N: n, NWords: nWords, Seed1: seed1, Seed2: seed2, Density: density,
			})

			start := time.Now()
			var sum uint64
			if block > 0 {
				sum = intersect.IntersectBlocked(coll.Buf, coll.N, coll.NWords, block)
			} else {
				sum = intersect.Intersect(coll.Buf, coll.N, coll.NWords)
			}
			elapsed := time.Since(start)

			pairs := int64(n) * int64(n-1) / 2
			log.Info("dense intersection complete",
				"n", n, "nWords", nWords, "density", density,
				"sum", sum, "pairs", pairs, "elapsed", elapsed.String(),
			)
			fmt.Fprintf(cmd.OutOrStdout(), "S=%d pairs=%d elapsed=%s\n", sum, pairs, elapsed)
			return nil
		},
	}

	cmd.Flags().IntVar(&n, "n", 200, "number of bitmap vectors")
	cmd.Flags().IntVar(&nWords, "words", 8, "uint64 words per vector")
	cmd.Flags().Float64Var(&density, "density", 0.3, "fraction of bits set per vector")
	cmd.Flags().Uint64Var(&seed1, "seed1", 1, "first PCG seed half")
	cmd.Flags().Uint64Var(&seed2, "seed2", 2, "second PCG seed half")
	cmd.Flags().IntVar(&block, "block", 0, "block size for IntersectBlocked; 0 uses the unblocked driver")

	return cmd
}
