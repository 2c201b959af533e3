// Package libdiff computes differences between two resource values of the
// same type.
//
// # Usage
//
//	d, err := libdiff.Compute(offered, remaining)
//	fmt.Print(d)
//
//	// Rebuild the second value from the first
//	v, err := libdiff.Apply(offered, d)
//
// Scalars diff by their delta and ranges by the integers added and
// removed. Sets and text diff as ordered edit scripts, so reordering set
// items shows up in the diff even though the sets compare equal.
package libdiff
