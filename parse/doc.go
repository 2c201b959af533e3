// Package parse parses the textual grammar of resource values.
//
// The grammar is decided by the first character once all spaces are
// removed:
//
//	[0-100, 200-300]   ranges, coalesced to canonical form
//	{alpha, beta}      set, items kept verbatim and in order
//	3.5                scalar, any decimal literal
//	hello              text, anything else
//
// Parse reports failures with errors wrapping ErrParse; use errors.Is with
// ErrEmptyInput, ErrMismatchedBrackets, ErrInvalidRangeFormat or
// ErrUnexpectedToken to tell them apart.
package parse
