package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/gitrdm/gokancsp/internal/cli"
	"github.com/gitrdm/gokancsp/internal/nqueens"
)

var queensN int

var queensCmd = &cobra.Command{
	Use:   "queens",
	Short: "Solve N-Queens and print the first solution",
	RunE: func(cmd *cobra.Command, args []string) error {
		mon := cli.NewMonitor(logger, "queens")
		p := nqueens.Build(queensN)
		mon.ProblemBuilt(len(p.Keys()), len(p.Constraints()))

		e := p.Solutions()
		solution, ok := e.Next()
		if !ok {
			mon.Done()
			if err := e.Err(); err != nil {
				return err
			}
			color.Red("no solution for %d queens", queensN)
			return nil
		}
		mon.Solution()
		mon.Done()

		for row := 1; row <= queensN; row++ {
			col := nqueens.Column(solution, row)
			line := ""
			for c := 1; c <= queensN; c++ {
				if c == col {
					line += " Q"
				} else {
					line += " ."
				}
			}
			fmt.Println(line)
		}
		return nil
	},
}

func init() {
	queensCmd.Flags().IntVarP(&queensN, "size", "n", 6, "board size")
}
