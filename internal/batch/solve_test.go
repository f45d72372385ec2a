package batch

import (
	"context"
	"testing"

	"github.com/gitrdm/gokancsp/pkg/csp"
)

func threeValueProblem(n int) *csp.Problem {
	p := csp.NewProblem()
	p.AddVar("x", []csp.Value{1, 2, 3})
	_ = n
	return p
}

func TestSolveAllRunsEveryJobConcurrently(t *testing.T) {
	jobs := make([]Job, 0, 5)
	for i := 0; i < 5; i++ {
		jobs = append(jobs, Job{Name: "job", Problem: threeValueProblem(i)})
	}

	results := SolveAll(context.Background(), jobs, 2, 0)
	if len(results) != len(jobs) {
		t.Fatalf("got %d results, want %d", len(results), len(jobs))
	}
	for i, r := range results {
		if r.Err != nil {
			t.Errorf("job %d: unexpected error: %v", i, r.Err)
		}
		if r.SolutionCount != 3 {
			t.Errorf("job %d: SolutionCount = %d, want 3", i, r.SolutionCount)
		}
	}
}

func TestSolveAllRespectsLimit(t *testing.T) {
	p := csp.NewProblem()
	p.AddVar("x", []csp.Value{1, 2, 3, 4, 5})

	results := SolveAll(context.Background(), []Job{{Name: "limited", Problem: p}}, 1, 2)
	if results[0].SolutionCount != 2 {
		t.Errorf("SolutionCount = %d, want 2 (bounded by limit)", results[0].SolutionCount)
	}
}
