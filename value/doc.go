// Package value provides the typed resource values of the cluster resource
// manager and their algebra.
//
// # Overview
//
// A Value holds exactly one of four payloads, selected by its Type:
//
//   - ScalarType: a floating quantity such as cpus or mem
//   - RangesType: inclusive uint64 intervals such as ports
//   - SetType: a collection of strings such as disk names
//   - TextType: free text
//
// Like a tagged union, the payload lives in the field matching the type and
// the other payload fields are ignored.
//
// # Creating Values
//
//	cpus := value.FromScalar(2.5)
//	ports := value.FromRanges(value.Range{Begin: 31000, End: 32000})
//	disks := value.FromSet("ssd", "hdd")
//	zone := value.FromText("us-east-1a")
//
// Values may also be parsed from text, see package parse.
//
// # Canonical Ranges
//
// Ranges are canonical when sorted by Begin, non overlapping and non
// adjacent. Coalesce computes the canonical form of any list of ranges. All
// range comparisons operate on canonical forms, so [1-3, 5-5] equals
// [5-5, 1-1, 2-3].
//
// # Algebra
//
// Scalar, Ranges and Set each provide
//
//   - Plus and Minus returning a new payload
//   - Add and Subtract modifying the receiver in place
//   - Equal, and SubsetOf (LessEqual for Scalar)
//
// Text supports only Equal. The package level functions Add, Subtract,
// Equal and LessEqual dispatch on the pair of value types and report
// ErrTypeMismatch for values of different types.
//
// # Thread Safety
//
// Values are not safe for concurrent mutation. Clone a value before sharing
// it across goroutines if any of them uses the in place operators.
package value
