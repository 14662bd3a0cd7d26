// Package main provides the entry point for the funcstructs CLI tool.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/caleblevy/funcstructs-sub001/cmd/funcstructs/commands"
	"github.com/caleblevy/funcstructs-sub001/pkg/version"
)

var verbose bool

func main() {
	version.Init()

	rootCmd := &cobra.Command{
		Use:   "funcstructs",
		Short: "Funcstructs - endofunction structures and sequence hashing",
		Long: `Funcstructs works with finite endofunctions and their structures.

Commands:
  plot      Render an endofunction as a circular graph in HTML`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(commands.NewPlotCommand())
	rootCmd.AddCommand(versionCmd())

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Fprintf(os.Stdout, "funcstructs %s\n", version.String())
		},
	}
}
