package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gitrdm/gokancsp/internal/dsl"
	"github.com/gitrdm/gokancsp/internal/graphview"
)

var graphCmd = &cobra.Command{
	Use:   "graph <file.csp>",
	Short: "Render a problem's constraint graph as Graphviz DOT",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		prog, err := dsl.ParseFile(args[0])
		if err != nil {
			return err
		}
		p, err := dsl.Compile(prog)
		if err != nil {
			return err
		}

		g, err := graphview.Build(p)
		if err != nil {
			return err
		}
		fmt.Print(graphview.DOT(g))
		return nil
	},
}
