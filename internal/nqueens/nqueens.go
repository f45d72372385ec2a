// Package nqueens builds the N-Queens puzzle as a pkg/csp Problem: one
// variable per row holding the queen's column, and pairwise column and
// diagonal constraints between every two rows. The constraint shape is
// grounded on original_source/src/examples.rs's n_queens function.
// cmd/csp's queens subcommand builds on this package.
package nqueens

import "github.com/gitrdm/gokancsp/pkg/csp"

// Build returns a Problem with one variable per row (1..n), whose
// domain is the set of columns (1..n), and the classic three
// constraints between every pair of rows: different columns, and no
// shared diagonal in either direction.
func Build(n int) *csp.Problem {
	p := csp.NewProblem()

	cols := make([]csp.Value, n)
	for c := 1; c <= n; c++ {
		cols[c-1] = c
	}
	for row := 1; row <= n; row++ {
		p.AddVar(row, cols)
	}

	for i := 1; i <= n; i++ {
		for j := 1; j <= n; j++ {
			if i == j {
				continue
			}
			rowDiff := i - j
			if rowDiff < 0 {
				rowDiff = -rowDiff
			}
			p.AddConstraint(i, j, func(a, b csp.Value) bool {
				return a.(int) != b.(int)
			})
			p.AddConstraint(i, j, func(a, b csp.Value) bool {
				diff := a.(int) - b.(int)
				if diff < 0 {
					diff = -diff
				}
				return diff != rowDiff
			})
		}
	}

	return p
}

// Column reads the column assigned to row out of a solution map
// returned by csp.Enumerator.Next.
func Column(solution map[csp.Key]csp.Value, row int) int {
	return solution[row].(int)
}
