package csp

import "fmt"

// errOutOfRange reports a Domain.RestrictTo index outside [0, size).
func errOutOfRange(i, size int) error {
	return fmt.Errorf("csp: RestrictTo: index %d out of range for domain of size %d", i, size)
}

// errUnknownKey reports a constraint referencing a key never added via
// AddVar. Detected lazily, the first time Reduce walks the offending
// constraint, matching the distilled spec's "validation may be deferred
// to reduction" allowance.
func errUnknownKey(key Key) error {
	return fmt.Errorf("csp: Reduce: constraint references unknown key %v", key)
}
