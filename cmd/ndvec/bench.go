package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/ndvec/ndvec/internal/array"
	"github.com/ndvec/ndvec/internal/sample"
)

func newBenchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Benchmark matrix multiply on the nested backend",
		RunE: func(cmd *cobra.Command, _ []string) error {
			n := activeCfg.Bench.Size
			iters := activeCfg.Bench.Iters
			if n < 1 || iters < 1 {
				return fmt.Errorf("--bench-size and --bench-iters must be at least 1")
			}

			src := sample.New(activeCfg.Seed)
			shape := array.Shape{n, n}
			a := src.Uniform(shape)
			b := src.Uniform(shape)

			slog.Info("bench start", "size", n, "iters", iters, "seed", activeCfg.Seed)
			start := time.Now()
			for i := 0; i < iters; i++ {
				if _, err := a.MatMul(b); err != nil {
					return err
				}
			}
			elapsed := time.Since(start)

			perIter := elapsed / time.Duration(iters)
			slog.Info("bench done", "total", elapsed.String(), "per_iter", perIter.String())
			fmt.Printf("matmul %dx%d: %s/iter over %d iters\n", n, n, perIter, iters)
			return nil
		},
	}
	return cmd
}
