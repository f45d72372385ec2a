package csp

// Predicate is a pure binary relation between two values: deterministic,
// side-effect-free, and dependent only on its two arguments. Behavior is
// undefined if a Predicate is impure (the core performs no diagnostic).
type Predicate func(a, b Value) bool

// Constraint is a directed binary constraint (x, y, p): for every value v
// retained in x's domain, there must exist some value w in y's domain
// such that p(v, w) holds. Constraints are immutable once added to a
// Problem and are shared by reference across every clone of that
// Problem, so a Predicate must never close over mutable state.
type Constraint struct {
	X, Y Key
	P    Predicate
}
