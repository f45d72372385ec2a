package batch

import (
	"context"
	"fmt"

	"github.com/gitrdm/gokancsp/pkg/csp"
)

// Job names one independent problem to solve.
type Job struct {
	Name    string
	Problem *csp.Problem
}

// Result is the outcome of solving one Job.
type Result struct {
	Name          string
	SolutionCount int
	First         map[csp.Key]csp.Value
	Err           error
}

// SolveAll solves every job concurrently using a Pool of the given
// size, returning one Result per job in the same order jobs were given.
// limit bounds how many solutions are counted per problem (0 = count
// every solution); it exists so a batch of hard puzzles can't make the
// whole run unbounded.
func SolveAll(ctx context.Context, jobs []Job, workers, limit int) []Result {
	results := make([]Result, len(jobs))
	pool := NewPool(workers)
	defer pool.Shutdown()

	done := make(chan struct{}, len(jobs))
	for i := range jobs {
		i := i
		err := pool.Submit(ctx, func() {
			defer func() { done <- struct{}{} }()
			results[i] = solveOne(jobs[i], limit)
		})
		if err != nil {
			results[i] = Result{Name: jobs[i].Name, Err: err}
			done <- struct{}{}
		}
	}

	for range jobs {
		<-done
	}
	return results
}

// solveOne runs one Job to completion. A panicking constraint predicate
// (SPEC_FULL §7: predicate panics propagate to the caller) is recovered
// here rather than left to unwind into the pool worker, so one bad
// puzzle yields a Result carrying the panic instead of an empty Result
// with no name and no error (the pool's own recover would otherwise
// swallow the panic silently).
func solveOne(job Job, limit int) (res Result) {
	defer func() {
		if r := recover(); r != nil {
			res = Result{Name: job.Name, Err: fmt.Errorf("batch: %s: panic: %v", job.Name, r)}
		}
	}()

	res = Result{Name: job.Name}
	e := job.Problem.Solutions()

	count := 0
	for {
		assignment, ok := e.Next()
		if !ok {
			break
		}
		if count == 0 {
			res.First = assignment
		}
		count++
		if limit > 0 && count >= limit {
			break
		}
	}
	res.SolutionCount = count
	res.Err = e.Err()
	return res
}
