package csp

// Enumerator is a lazy, finite, non-restartable sequence of complete
// assignments (mappings Key→Value such that every variable's domain is a
// singleton and all constraints are satisfied). It is constructed from a
// Problem via Problem.Solutions; its output order is determined by the
// Problem's variable order and by the in-domain option order at each
// depth.
//
// An Enumerator must not be used from more than one goroutine: it owns a
// mutable snapshot stack and cursor with no internal synchronization.
type Enumerator struct {
	variables []Key
	stack     []*Problem
	cursor    []int
	done      bool
	err       error
}

// Solutions builds a lazy Enumerator over p. p itself is not mutated;
// the Enumerator works from an internal clone, so p remains usable
// afterward (e.g. to call Reduce again, or to build another Enumerator).
func (p *Problem) Solutions() *Enumerator {
	e := &Enumerator{variables: p.Keys()}

	root := p.Clone()
	result, err := root.Reduce()
	if err != nil {
		e.err = err
		e.done = true
		return e
	}
	if result == Infeasible {
		e.done = true
		return e
	}

	e.cursor = make([]int, len(e.variables))
	e.stack = []*Problem{root}

	if !e.descend(0) {
		e.done = true
	}
	return e
}

// Err returns a non-nil error only if a constraint referenced an unknown
// key during reduction; ordinary infeasibility (no solutions) is not an
// error and leaves Err nil.
func (e *Enumerator) Err() error {
	return e.err
}

// Next returns the next complete assignment and true, or (nil, false)
// once the search space is exhausted. Once Next returns false, every
// subsequent call also returns false: the Enumerator is not restartable.
func (e *Enumerator) Next() (map[Key]Value, bool) {
	if e.done {
		return nil, false
	}

	result := e.currentAssignment()

	if len(e.variables) == 0 {
		// Empty variable set: exactly one (empty) assignment.
		e.done = true
		return result, true
	}

	next, ok := e.advance(len(e.variables) - 1)
	if !ok {
		e.done = true
		return result, true
	}
	if !e.descend(next) {
		e.done = true
	}
	return result, true
}

// currentAssignment reads off the complete assignment represented by the
// deepest snapshot on the stack: at a solution point every domain is a
// singleton, and its 0th (only) option is the chosen value.
func (e *Enumerator) currentAssignment() map[Key]Value {
	top := e.stack[len(e.stack)-1]
	out := make(map[Key]Value, len(e.variables))
	for _, k := range e.variables {
		out[k] = top.MustDomain(k).At(0)
	}
	return out
}

// descend drives the search from depth d until either a complete
// consistent assignment has been pushed onto the stack (returns true) or
// the search space below d is exhausted (returns false).
//
// Invariant on entry: stack[d] exists and is a reduced Problem; cursor[d]
// is a valid option index for variables[d].
func (e *Enumerator) descend(d int) bool {
	for d < len(e.variables) {
		e.stack = e.stack[:d+1]

		clone := e.stack[d].Clone()
		key := e.variables[d]
		if err := clone.MustDomain(key).RestrictTo(e.cursor[d]); err != nil {
			e.err = err
			return false
		}

		result, err := clone.Reduce()
		if err != nil {
			e.err = err
			return false
		}

		if result == Infeasible {
			next, ok := e.advance(d)
			if !ok {
				return false
			}
			d = next
			continue
		}

		e.stack = append(e.stack, clone)
		d++
	}
	return true
}

// advance returns the deepest depth at or above last whose cursor could
// be advanced without overflowing its domain, zeroing every deeper
// cursor (including each overflowed one it walks past) first. It
// reports false (and marks the Enumerator done) once depth 0's cursor
// itself would overflow: the whole search space is exhausted.
func (e *Enumerator) advance(last int) (int, bool) {
	for d := last + 1; d < len(e.cursor); d++ {
		e.cursor[d] = 0
	}

	d := last
	for e.cursor[d]+1 == e.stack[d].MustDomain(e.variables[d]).Size() {
		e.cursor[d] = 0
		if d == 0 {
			e.done = true
			return 0, false
		}
		d--
	}
	e.cursor[d]++
	return d, true
}
