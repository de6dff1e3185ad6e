// Command intersectbench drives the intersect package from the
// outside: it generates random bitmap collections, runs the dense and
// sparse-aware all-pairs reductions against them, and reports
// throughput and the detected CPU capability bitmask. It also exposes
// a "verify" subcommand that checks the testable properties of
// spec.md §8 against a generated (or seeded-identical) collection,
// for sanity-checking a build outside of go test.
//
// None of this is part of the intersect package's contract — it is
// the ambient driver/benchmark harness spec.md §9 and §3.3 describe.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mklarqvist/FastIntersectCount/intersect"
)

func main() {
	var debug bool

	rootCmd := &cobra.Command{
		Use:   "intersectbench",
		Short: "Benchmark and verify the all-pairs popcount-of-intersection kernel",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			caps := intersect.DetectCapabilities()
			fmt.Fprintf(os.Stderr, "intersectbench: capabilities=%s alignment=%d\n", caps, intersect.QueryAlignment())
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "mirror log records to stderr regardless of level")

	rootCmd.AddCommand(
		newDenseCmd(&debug),
		newSparseCmd(&debug),
		newVerifyCmd(&debug),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
