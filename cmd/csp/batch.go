package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gitrdm/gokancsp/internal/batch"
	"github.com/gitrdm/gokancsp/internal/cli"
	"github.com/gitrdm/gokancsp/internal/sudoku"
)

var (
	batchWorkers int
	batchLimit   int
)

var batchCmd = &cobra.Command{
	Use:   "batch <bank.yaml>",
	Short: "Solve every puzzle in a YAML Sudoku bank concurrently",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		mon := cli.NewMonitor(logger, "batch")

		bankFile, err := sudoku.LoadBank(args[0])
		if err != nil {
			return err
		}

		jobs := make([]batch.Job, len(bankFile.Puzzles))
		for i, puzzle := range bankFile.Puzzles {
			p := sudoku.Build()
			sudoku.ApplyGivens(p, puzzle.Grid)
			jobs[i] = batch.Job{Name: puzzle.Name, Problem: p}
		}
		mon.ProblemBuilt(len(jobs), 0)

		results := batch.SolveAll(context.Background(), jobs, batchWorkers, batchLimit)
		for _, r := range results {
			if r.Err != nil {
				fmt.Printf("%s: error: %v\n", r.Name, r.Err)
				continue
			}
			fmt.Printf("%s: %d solution(s)\n", r.Name, r.SolutionCount)
		}
		mon.Done()
		return nil
	},
}

func init() {
	batchCmd.Flags().IntVarP(&batchWorkers, "workers", "w", 4, "number of concurrent solver workers")
	batchCmd.Flags().IntVarP(&batchLimit, "limit", "l", 1, "stop counting after this many solutions per puzzle (0 = unbounded)")
}
