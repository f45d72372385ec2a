package csp

// ReduceResult reports the outcome of a Problem.Reduce call.
type ReduceResult int

const (
	// Unchanged means a full sweep over every constraint eliminated no
	// values: the Problem was already at a fixpoint.
	Unchanged ReduceResult = iota

	// Reduced means at least one value was eliminated from some domain
	// across the sweeps performed.
	Reduced

	// Infeasible means some domain would have become empty; the Problem
	// is left in an unspecified, discardable state.
	Infeasible
)

// String returns a human-readable representation of the reduce result.
func (r ReduceResult) String() string {
	switch r {
	case Unchanged:
		return "Unchanged"
	case Reduced:
		return "Reduced"
	case Infeasible:
		return "Infeasible"
	default:
		return "ReduceResult(?)"
	}
}

// Problem is a mapping from variable keys to Domains plus a list of
// directed binary Constraints. Problems are built incrementally with
// AddVar/AddConstraint, then reduced and/or enumerated.
type Problem struct {
	keys        []Key
	domains     map[Key]*Domain
	constraints []Constraint
}

// NewProblem returns an empty Problem.
func NewProblem() *Problem {
	return &Problem{
		domains: make(map[Key]*Domain),
	}
}

// AddVar inserts a new Domain for key, built from options. If key was
// already present, the latest insertion wins — a builder-time
// affordance, not a runtime behavior; the key's position in insertion
// order is only set the first time it is added. AddVar returns the
// receiver so calls can be chained.
func (p *Problem) AddVar(key Key, options []Value) *Problem {
	if _, exists := p.domains[key]; !exists {
		p.keys = append(p.keys, key)
	}
	p.domains[key] = NewDomain(options)
	return p
}

// AddConstraint appends a directed binary constraint (x, y, predicate).
// Both x and y are expected to have been added via AddVar first;
// violations are detected lazily by Reduce (see errUnknownKey).
// AddConstraint returns the receiver so calls can be chained.
func (p *Problem) AddConstraint(x, y Key, predicate Predicate) *Problem {
	p.constraints = append(p.constraints, Constraint{X: x, Y: y, P: predicate})
	return p
}

// Domain returns the current Domain for key, and whether key is known.
func (p *Problem) Domain(key Key) (*Domain, bool) {
	d, ok := p.domains[key]
	return d, ok
}

// MustDomain returns the current Domain for key. It panics if key is
// unknown: callers reach for MustDomain only after a Problem has been
// built, so an unknown key here is always a programmer error (e.g. a
// sudoku-givens helper indexing a cell that was never added).
func (p *Problem) MustDomain(key Key) *Domain {
	d, ok := p.domains[key]
	if !ok {
		panic("csp: MustDomain: unknown key")
	}
	return d
}

// Keys returns every variable key, in the order it was first added.
func (p *Problem) Keys() []Key {
	out := make([]Key, len(p.keys))
	copy(out, p.keys)
	return out
}

// Constraints returns every constraint posted so far, in insertion
// order. Used by external debugging/export tooling (e.g. graphview);
// the core itself never needs to enumerate constraints outside Reduce.
func (p *Problem) Constraints() []Constraint {
	out := make([]Constraint, len(p.constraints))
	copy(out, p.constraints)
	return out
}

// Clone returns a deep copy of the Problem: every Domain is copied, but
// the constraint slice (and the predicates it references) is shared —
// constraints are immutable once added, so sharing them across clones is
// safe and avoids re-copying potentially large closures.
func (p *Problem) Clone() *Problem {
	cp := &Problem{
		keys:        make([]Key, len(p.keys)),
		domains:     make(map[Key]*Domain, len(p.domains)),
		constraints: p.constraints,
	}
	copy(cp.keys, p.keys)
	for k, d := range p.domains {
		cp.domains[k] = d.Clone()
	}
	return cp
}

// Reduce prunes every domain to a fixpoint of directed arc-consistency
// over the Problem's constraints, sweeping the constraint list in
// insertion order (and, within a constraint, testing values in domain
// order) on every pass until a full pass eliminates nothing.
//
// Reduce returns Infeasible as soon as any domain would become empty; in
// that case the Problem is left in an unspecified state and should be
// discarded. It returns Reduced if at least one value was eliminated
// across all passes, or Unchanged if the Problem was already at a
// fixpoint. The error return is reserved for a constraint referencing a
// key that was never added via AddVar.
func (p *Problem) Reduce() (ReduceResult, error) {
	anyReduced := false

	for {
		changedThisPass := false

		for _, c := range p.constraints {
			dx, ok := p.domains[c.X]
			if !ok {
				return Infeasible, errUnknownKey(c.X)
			}
			dy, ok := p.domains[c.Y]
			if !ok {
				return Infeasible, errUnknownKey(c.Y)
			}

			kept := make([]Value, 0, len(dx.options))
			for _, v := range dx.options {
				supported := false
				for _, w := range dy.options {
					if c.P(v, w) {
						supported = true
						break
					}
				}
				if supported {
					kept = append(kept, v)
				}
			}

			if len(kept) == 0 {
				return Infeasible, nil
			}
			if len(kept) < len(dx.options) {
				changedThisPass = true
				anyReduced = true
				dx.options = kept
			}
		}

		if !changedThisPass {
			break
		}
	}

	if anyReduced {
		return Reduced, nil
	}
	return Unchanged, nil
}
