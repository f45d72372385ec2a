package dsl

import "testing"

func mustParse(t *testing.T, src string) *Program {
	t.Helper()
	prog, err := parser.ParseString("test.csp", src)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	return prog
}

func TestCompileTwoVariableDiff(t *testing.T) {
	prog := mustParse(t, `
		var x in 1..2
		var y in 1..2
		diff x y
	`)

	p, err := Compile(prog)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}

	result, err := p.Reduce()
	if err != nil {
		t.Fatalf("Reduce: %v", err)
	}
	if result.String() == "" {
		t.Fatal("ReduceResult.String() should not be empty")
	}

	count := 0
	e := p.Solutions()
	for {
		if _, ok := e.Next(); !ok {
			break
		}
		count++
	}
	if count != 2 {
		t.Errorf("got %d solutions, want 2 (two values, all-different)", count)
	}
}

func TestCompileRejectsUnknownVariable(t *testing.T) {
	prog := mustParse(t, `
		var x in 1..2
		diff x ghost
	`)

	if _, err := Compile(prog); err == nil {
		t.Fatal("Compile should reject a constraint referencing an undeclared variable")
	}
}

func TestCompileRejectsEmptyRange(t *testing.T) {
	prog := mustParse(t, `var x in 5..1`)

	if _, err := Compile(prog); err == nil {
		t.Fatal("Compile should reject an empty range")
	}
}
