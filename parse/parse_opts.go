package parse

import "github.com/signadot/resval/value"

type parseOpts struct {
	expect     *value.Type
	noCoalesce bool
}

type ParseOption func(*parseOpts)

// ParseExpect fails parsing with ErrUnexpectedType unless the result has
// type t.
func ParseExpect(t value.Type) ParseOption {
	return func(o *parseOpts) { o.expect = &t }
}

// NoCoalesce keeps parsed ranges as written instead of coalescing them.
func NoCoalesce() ParseOption {
	return func(o *parseOpts) { o.noCoalesce = true }
}
