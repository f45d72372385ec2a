package dsl

// Program is the root of a parsed problem description: a flat list of
// variable and constraint declarations, in file order.
type Program struct {
	Decls []*Decl `@@*`
}

// Decl is either a variable declaration or a constraint declaration.
type Decl struct {
	Var        *VarDecl        `  @@`
	Constraint *ConstraintDecl `| @@`
}

// VarDecl declares a variable with an inclusive integer range domain,
// e.g. "var x in 1..9".
type VarDecl struct {
	Name string `"var" @Ident`
	Lo   int    `"in" @Int`
	Hi   int    `".." @Int`
}

// ConstraintDecl posts a named binary constraint between two previously
// declared variables, e.g. "diff x y" or "eq x y".
type ConstraintDecl struct {
	Kind string `@("diff" | "eq" | "lt" | "gt")`
	X    string `@Ident`
	Y    string `@Ident`
}
