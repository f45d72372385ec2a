package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gitrdm/gokancsp/internal/cli"
	"github.com/gitrdm/gokancsp/internal/sudoku"
)

var sudokuPuzzlePath string

var sudokuCmd = &cobra.Command{
	Use:   "sudoku",
	Short: "Solve a Sudoku puzzle and print the first solution",
	RunE: func(cmd *cobra.Command, args []string) error {
		mon := cli.NewMonitor(logger, "sudoku")
		p := sudoku.Build()

		if sudokuPuzzlePath != "" {
			bank, err := sudoku.LoadBank(sudokuPuzzlePath)
			if err != nil {
				return err
			}
			if len(bank.Puzzles) == 0 {
				return fmt.Errorf("sudoku: empty puzzle bank %q", sudokuPuzzlePath)
			}
			sudoku.ApplyGivens(p, bank.Puzzles[0].Grid)
		}
		mon.ProblemBuilt(len(p.Keys()), len(p.Constraints()))

		result, err := p.Reduce()
		if err != nil {
			return err
		}
		mon.Reduced(result.String())

		e := p.Solutions()
		solution, ok := e.Next()
		if !ok {
			mon.Done()
			if err := e.Err(); err != nil {
				return err
			}
			fmt.Println("no solution")
			return nil
		}
		mon.Solution()
		mon.Done()

		for r := 1; r <= 9; r++ {
			for c := 1; c <= 9; c++ {
				fmt.Printf("%d ", sudoku.CellValue(solution, r, c))
			}
			fmt.Println()
		}
		return nil
	},
}

func init() {
	sudokuCmd.Flags().StringVarP(&sudokuPuzzlePath, "puzzle", "p", "", "YAML puzzle bank (first puzzle is solved)")
}
