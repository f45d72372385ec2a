// Package sudoku builds a 9x9 Sudoku as a pkg/csp Problem using the
// existential row/column encoding from original_source/src/examples.rs's
// sudoku() function: besides the 81 ordinary (row,col) cell variables,
// two families of existential variables record, for every row (and
// column) and every digit, which column (row) holds that digit. That
// lets plain binary != constraints enforce "each digit appears exactly
// once per row/column" without a global all-different constraint, at
// the cost of a much larger constraint set. cmd/csp's sudoku and batch
// subcommands both build on this package.
package sudoku

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gitrdm/gokancsp/pkg/csp"
)

// Cell identifies an ordinary grid position, 1-indexed.
type Cell struct {
	Row, Col int
}

// rowExist identifies "the column holding digit Digit in row Row".
type rowExist struct {
	Row, Digit int
}

// colExist identifies "the row holding digit Digit in column Col".
type colExist struct {
	Col, Digit int
}

// Puzzle is a 9x9 grid of givens, 0 meaning blank, loadable from YAML.
type Puzzle struct {
	Name string    `yaml:"name"`
	Grid [9][9]int `yaml:"grid"`
}

// Bank is a named collection of puzzles, the unit loaded by the batch
// command from a YAML puzzle-bank file.
type Bank struct {
	Puzzles []Puzzle `yaml:"puzzles"`
}

// LoadBank parses a YAML puzzle bank from path.
func LoadBank(path string) (*Bank, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("sudoku: read bank: %w", err)
	}
	var bank Bank
	if err := yaml.Unmarshal(data, &bank); err != nil {
		return nil, fmt.Errorf("sudoku: parse bank: %w", err)
	}
	return &bank, nil
}

// Build returns the CSP Problem for an empty 9x9 grid: every cell and
// existential variable declared, and every row/column/block/existential
// constraint posted.
func Build() *csp.Problem {
	p := csp.NewProblem()
	digits := make([]csp.Value, 9)
	for d := 1; d <= 9; d++ {
		digits[d-1] = d
	}

	for r := 1; r <= 9; r++ {
		for c := 1; c <= 9; c++ {
			p.AddVar(Cell{r, c}, digits)
		}
	}
	for r := 1; r <= 9; r++ {
		for d := 1; d <= 9; d++ {
			p.AddVar(rowExist{r, d}, digits)
		}
	}
	for c := 1; c <= 9; c++ {
		for d := 1; d <= 9; d++ {
			p.AddVar(colExist{c, d}, digits)
		}
	}

	addRowColConstraints(p)
	addBlockConstraints(p)
	addExistentialConstraints(p)

	return p
}

func neq(a, b csp.Value) bool { return a.(int) != b.(int) }

// addRowColConstraints posts pairwise != constraints between every two
// distinct cells sharing a row, and every two distinct cells sharing a
// column.
func addRowColConstraints(p *csp.Problem) {
	for i := 1; i <= 9; i++ {
		for j := 1; j <= 9; j++ {
			for k := 1; k <= 9; k++ {
				if j == k {
					continue
				}
				p.AddConstraint(Cell{i, j}, Cell{i, k}, neq)
				p.AddConstraint(Cell{j, i}, Cell{k, i}, neq)
			}
		}
	}
}

// addBlockConstraints posts pairwise != constraints between every two
// distinct cells sharing one of the nine 3x3 blocks.
func addBlockConstraints(p *csp.Problem) {
	for bi := 0; bi < 3; bi++ {
		for bj := 0; bj < 3; bj++ {
			var cells []Cell
			for i := bi*3 + 1; i <= bi*3+3; i++ {
				for j := bj*3 + 1; j <= bj*3+3; j++ {
					cells = append(cells, Cell{i, j})
				}
			}
			for a := range cells {
				for b := range cells {
					if cells[a] != cells[b] {
						p.AddConstraint(cells[a], cells[b], neq)
					}
				}
			}
		}
	}
}

// addExistentialConstraints links every rowExist/colExist variable to
// every ordinary cell in the grid, encoding "rowExist{row,digit} equals
// column l" as a constraint consistent with cell (row,l) holding digit,
// and consistent with every other cell NOT holding digit in that row.
func addExistentialConstraints(p *csp.Problem) {
	for row := 1; row <= 9; row++ {
		for digit := 1; digit <= 9; digit++ {
			re := rowExist{row, digit}
			for k := 1; k <= 9; k++ {
				for l := 1; l <= 9; l++ {
					cell := Cell{k, l}
					if k == row {
						p.AddConstraint(re, cell, func(x, y csp.Value) bool {
							return (x.(int) != l) != (y.(int) == digit)
						})
						p.AddConstraint(cell, re, func(y, x csp.Value) bool {
							return (x.(int) != l) != (y.(int) == digit)
						})
					} else {
						p.AddConstraint(re, cell, func(x, y csp.Value) bool {
							return x.(int) != l || y.(int) != digit
						})
						p.AddConstraint(cell, re, func(y, x csp.Value) bool {
							return x.(int) != l || y.(int) != digit
						})
					}
				}
			}
		}
	}

	for col := 1; col <= 9; col++ {
		for digit := 1; digit <= 9; digit++ {
			ce := colExist{col, digit}
			for k := 1; k <= 9; k++ {
				for l := 1; l <= 9; l++ {
					cell := Cell{l, k}
					if k == col {
						p.AddConstraint(ce, cell, func(x, y csp.Value) bool {
							return (x.(int) != l) != (y.(int) == digit)
						})
						p.AddConstraint(cell, ce, func(y, x csp.Value) bool {
							return (x.(int) != l) != (y.(int) == digit)
						})
					} else {
						p.AddConstraint(ce, cell, func(x, y csp.Value) bool {
							return x.(int) != l || y.(int) != digit
						})
						p.AddConstraint(cell, ce, func(y, x csp.Value) bool {
							return x.(int) != l || y.(int) != digit
						})
					}
				}
			}
		}
	}
}

// ApplyGivens fixes every non-zero cell in grid to its given value via
// Domain.Set, leaving blanks unconstrained.
func ApplyGivens(p *csp.Problem, grid [9][9]int) {
	for r := 1; r <= 9; r++ {
		for c := 1; c <= 9; c++ {
			if v := grid[r-1][c-1]; v != 0 {
				p.MustDomain(Cell{r, c}).Set(v)
			}
		}
	}
}

// CellValue reads the digit assigned to (row, col) out of a solution
// map returned by csp.Enumerator.Next.
func CellValue(solution map[csp.Key]csp.Value, row, col int) int {
	return solution[Cell{row, col}].(int)
}
