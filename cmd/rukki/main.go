// Command rukki walks a bidirected assembly graph and emits haplotype-
// consistent paths, using trio marker evidence to decide which parent
// each anchor belongs to.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "rukki",
		Short:         "Diploid assembly graph haplo-path analyzer",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.AddCommand(newTrioWalkCmd())
	return root
}
