// Package assert provides the module's single contract-violation primitive.
//
// Every in-scope algorithm treats precondition failures (non-empty input,
// in-range indices, matching sizes, positive radii/capacities, monotone
// bounding boxes) as programmer errors, not runtime failures: they panic
// rather than return an error. True is the only entry point; callers should
// never recover from it.
package assert

import "fmt"

// True panics with a formatted message if cond is false.
//
// Complexity: O(1).
func True(cond bool, format string, args ...interface{}) {
	if !cond {
		panic(fmt.Sprintf(format, args...))
	}
}
