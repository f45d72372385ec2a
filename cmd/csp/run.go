package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gitrdm/gokancsp/internal/cli"
	"github.com/gitrdm/gokancsp/internal/dsl"
)

var runLimit int

var runCmd = &cobra.Command{
	Use:   "run <file.csp>",
	Short: "Parse and solve a problem written in the csp DSL",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		mon := cli.NewMonitor(logger, "run")

		prog, err := dsl.ParseFile(args[0])
		if err != nil {
			return err
		}
		p, err := dsl.Compile(prog)
		if err != nil {
			return err
		}
		mon.ProblemBuilt(len(p.Keys()), len(p.Constraints()))

		result, err := p.Reduce()
		if err != nil {
			return err
		}
		mon.Reduced(result.String())

		e := p.Solutions()
		count := 0
		for {
			solution, ok := e.Next()
			if !ok {
				break
			}
			mon.Solution()
			fmt.Println(solution)
			count++
			if runLimit > 0 && count >= runLimit {
				break
			}
		}
		mon.Done()

		if count == 0 {
			if err := e.Err(); err != nil {
				return err
			}
			fmt.Println("no solutions")
		}
		return nil
	},
}

func init() {
	runCmd.Flags().IntVarP(&runLimit, "limit", "l", 0, "stop after this many solutions (0 = unbounded)")
}
