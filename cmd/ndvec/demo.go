package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ndvec/ndvec/internal/nested"
)

func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Print a short worked example",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			a, err := nested.New([][]float64{{1, 2}, {3, 4}})
			if err != nil {
				return err
			}
			b, err := nested.New([][]float64{{5, 6}, {7, 8}})
			if err != nil {
				return err
			}

			prod, err := a.MatMul(b)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "a           = %v\n", a)
			fmt.Fprintf(out, "b           = %v\n", b)
			fmt.Fprintf(out, "a x b       = %v\n", prod)

			row, err := nested.New([]float64{10, 20})
			if err != nil {
				return err
			}
			wide, err := row.BroadcastLike(a)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "row         = %v\n", row)
			fmt.Fprintf(out, "broadcast   = %v\n", wide)

			sum, err := a.Add(row)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "a + row     = %v\n", sum)

			updated, err := a.Set(99.0, 0, 1)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "set(0,1)=99 = %v\n", updated)
			fmt.Fprintf(out, "a unchanged = %v\n", a)
			return nil
		},
	}
}
