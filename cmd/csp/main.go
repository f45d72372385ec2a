// Command csp is the command-line front end for pkg/csp, built with
// github.com/spf13/cobra (the CLI stack the operator-lifecycle-manager
// teacher depends on). It wraps the N-Queens and Sudoku builders, the
// internal/dsl textual front-end, internal/batch's concurrent solver,
// and internal/graphview's constraint-graph renderer behind five
// subcommands: queens, sudoku, run, batch, graph.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "csp",
	Short: "Solve finite-domain constraint satisfaction problems",
	Long: `csp builds and solves finite-domain constraint satisfaction
problems using directed arc-consistency reduction followed by
backtracking enumeration.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			logger.SetLevel(logrus.DebugLevel)
		}
	},
}

var logger = logrus.New()

func main() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log solve progress")

	rootCmd.AddCommand(queensCmd)
	rootCmd.AddCommand(sudokuCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(graphCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
