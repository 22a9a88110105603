//go:build contractchecks

// Package contract is the debug-only assertion facility the allocators use
// to flag undefined behavior: foreign-block deallocation, double frees,
// out-of-order rewinds, over-sized requests against fixed-size allocators.
//
// Checks are compiled in only under the "contractchecks" build tag. In a
// release build Assert is an empty function and violations have no defined
// behavior - callers must not rely on them being detected.
package contract

// Enabled reports whether contract checks are compiled into this build.
const Enabled = true

// Assert panics with msg when cond is false.
func Assert(cond bool, msg string) {
	if !cond {
		panic("contract: " + msg)
	}
}
