package dsl

import (
	"fmt"

	"github.com/gitrdm/gokancsp/pkg/csp"
)

// predicates maps a DSL constraint keyword to the binary predicate it
// posts. All four are the obvious integer comparisons; "diff"/"eq" model
// disequality/equality directly, "lt"/"gt" model strict ordering. Every
// predicate here is pure, as pkg/csp requires.
var predicates = map[string]csp.Predicate{
	"diff": func(a, b csp.Value) bool { return a.(int) != b.(int) },
	"eq":   func(a, b csp.Value) bool { return a.(int) == b.(int) },
	"lt":   func(a, b csp.Value) bool { return a.(int) < b.(int) },
	"gt":   func(a, b csp.Value) bool { return a.(int) > b.(int) },
}

// Compile builds a *csp.Problem from a parsed Program. It validates that
// every constraint references a previously declared variable, returning
// a descriptive error instead of deferring to the core's lazy
// unknown-key detection — a DSL author benefits from an error that names
// the offending line's variable, not just "unknown key" at Reduce time.
func Compile(prog *Program) (*csp.Problem, error) {
	p := csp.NewProblem()
	declared := make(map[string]bool)

	for _, d := range prog.Decls {
		if d.Var == nil {
			continue
		}
		v := d.Var
		if v.Hi < v.Lo {
			return nil, fmt.Errorf("dsl: var %s: range %d..%d is empty", v.Name, v.Lo, v.Hi)
		}
		options := make([]csp.Value, 0, v.Hi-v.Lo+1)
		for n := v.Lo; n <= v.Hi; n++ {
			options = append(options, n)
		}
		p.AddVar(v.Name, options)
		declared[v.Name] = true
	}

	for _, d := range prog.Decls {
		if d.Constraint == nil {
			continue
		}
		c := d.Constraint
		if !declared[c.X] {
			return nil, fmt.Errorf("dsl: constraint %s: unknown variable %q", c.Kind, c.X)
		}
		if !declared[c.Y] {
			return nil, fmt.Errorf("dsl: constraint %s: unknown variable %q", c.Kind, c.Y)
		}
		pred, ok := predicates[c.Kind]
		if !ok {
			return nil, fmt.Errorf("dsl: unknown constraint kind %q", c.Kind)
		}
		p.AddConstraint(c.X, c.Y, pred)
	}

	return p, nil
}
