// Package dsl implements a small textual front-end for describing binary
// CSP problems without writing Go: a handful of "var" and constraint
// declarations that compile down to a csp.Problem via the core's public
// builder API. It is an external caller of pkg/csp, not part of the
// core, in the same sense the N-Queens and Sudoku constructors are.
//
// Grammar, informally:
//
//	var x in 1..4
//	var y in 1..4
//	diff x y
//	eq   x y
//
// Grounded on the kanso teacher repo's own participle-based front-end
// (grammar/lexer.go, grammar/parser.go), scaled down to the few tokens
// and productions a binary-CSP description needs.
package dsl

import "github.com/alecthomas/participle/v2/lexer"

// problemLexer tokenizes the DSL's small surface: identifiers, integer
// literals, the ".." range separator, and comments.
var problemLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `#[^\n]*`},
	{Name: "Range", Pattern: `\.\.`},
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
})
