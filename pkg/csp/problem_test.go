package csp

import "testing"

func neq(a, b Value) bool { return a != b }

func TestReduceUnchangedOnFixpoint(t *testing.T) {
	p := NewProblem()
	p.AddVar("x", []Value{1, 2, 3})
	p.AddVar("y", []Value{1, 2, 3})
	// No constraints: reduce can never eliminate anything.
	result, err := p.Reduce()
	if err != nil {
		t.Fatalf("Reduce returned error: %v", err)
	}
	if result != Unchanged {
		t.Errorf("Reduce() = %v, want Unchanged", result)
	}
}

func TestReduceEliminatesUnsupportedValues(t *testing.T) {
	p := NewProblem()
	p.AddVar("x", []Value{1, 2})
	p.AddVar("y", []Value{1, 2})
	p.AddConstraint("x", "y", func(a, b Value) bool { return a == 1 })

	result, err := p.Reduce()
	if err != nil {
		t.Fatalf("Reduce returned error: %v", err)
	}
	if result != Reduced {
		t.Errorf("Reduce() = %v, want Reduced", result)
	}
	dx, _ := p.Domain("x")
	if dx.Size() != 1 || dx.At(0) != 1 {
		t.Errorf("x domain = %v, want [1]", dx.Options())
	}
	dy, _ := p.Domain("y")
	if dy.Size() != 2 {
		t.Errorf("y domain should be untouched, got %v", dy.Options())
	}
}

func TestReduceIdempotent(t *testing.T) {
	p := NewProblem()
	for i := 1; i <= 4; i++ {
		p.AddVar(i, []Value{1, 2, 3, 4})
	}
	for i := 1; i <= 4; i++ {
		for j := 1; j <= 4; j++ {
			if i == j {
				continue
			}
			ii, jj := i, j
			p.AddConstraint(i, j, neq)
			p.AddConstraint(i, j, func(a, b Value) bool {
				x, y := a.(int), b.(int)
				return abs(x-y) != abs(ii-jj)
			})
		}
	}

	first, err := p.Reduce()
	if err != nil {
		t.Fatalf("first Reduce errored: %v", err)
	}
	if first != Unchanged {
		t.Errorf("first Reduce() on 4-queens = %v, want Unchanged (no value eliminable without a commitment)", first)
	}

	second, err := p.Reduce()
	if err != nil {
		t.Fatalf("second Reduce errored: %v", err)
	}
	if second != Unchanged {
		t.Errorf("second Reduce() = %v, want Unchanged (idempotence)", second)
	}
}

func TestReduceInfeasible(t *testing.T) {
	p := NewProblem()
	p.AddVar("x", []Value{1})
	p.AddVar("y", []Value{1})
	p.AddConstraint("x", "y", func(a, b Value) bool { return false })

	result, err := p.Reduce()
	if err != nil {
		t.Fatalf("Reduce returned error: %v", err)
	}
	if result != Infeasible {
		t.Errorf("Reduce() = %v, want Infeasible", result)
	}
}

func TestReduceUnknownKeyIsError(t *testing.T) {
	p := NewProblem()
	p.AddVar("x", []Value{1, 2})
	p.AddConstraint("x", "ghost", neq)

	_, err := p.Reduce()
	if err == nil {
		t.Fatal("Reduce should return an error for a constraint referencing an unknown key")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	p := NewProblem()
	p.AddVar("x", []Value{1, 2, 3})
	clone := p.Clone()

	dx, _ := clone.Domain("x")
	if err := dx.RestrictTo(0); err != nil {
		t.Fatal(err)
	}

	orig, _ := p.Domain("x")
	if orig.Size() != 3 {
		t.Errorf("mutating a clone's domain affected the original, size = %d", orig.Size())
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
