package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"benchsuite/internal/catalog"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the built-in benchmarks",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			c := catalog.Builtin()
			for _, name := range c.Names() {
				fmt.Fprintf(cmd.OutOrStdout(), "%-18s %s\n", name, c.Description(name))
			}
		},
	}
}
