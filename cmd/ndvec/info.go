package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ndvec/ndvec/internal/array"
	_ "github.com/ndvec/ndvec/internal/dense"
	_ "github.com/ndvec/ndvec/internal/nested"
)

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "List registered array backends",
		Run: func(cmd *cobra.Command, _ []string) {
			for _, impl := range array.Implementations() {
				fmt.Printf("%-8s min dims %d\n", impl.Name, impl.MinDims)
			}
		},
	}
}
