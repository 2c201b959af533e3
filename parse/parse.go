package parse

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/signadot/resval/debug"
	"github.com/signadot/resval/token"
	"github.com/signadot/resval/value"
)

const (
	rangesDelims = "[]-,\n"
	setDelims    = "{},\n"
	bracketPairs = "{}[]()"
)

// Parse parses text into a Value. Spaces are removed first. Text starting
// with '[' is ranges and text starting with '{' is a set. Otherwise decimal
// number syntax gives a scalar and anything else, including "inf", "nan"
// and hex floats which strconv would accept, is text.
func Parse(text string, opts ...ParseOption) (*value.Value, error) {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	res, err := parse(text, pOpts)
	if err != nil {
		if debug.Parse() {
			debug.Logf("parse %q: %v\n", text, err)
		}
		return nil, err
	}
	if pOpts.expect != nil && res.Type != *pOpts.expect {
		return nil, fmt.Errorf("%w: expected %s got %s %q",
			ErrUnexpectedType, *pOpts.expect, res.Type, res.String())
	}
	return res, nil
}

// MustParse is like Parse but panics on error.
func MustParse(text string, opts ...ParseOption) *value.Value {
	v, err := Parse(text, opts...)
	if err != nil {
		panic(err)
	}
	return v
}

func parse(text string, opts *parseOpts) (*value.Value, error) {
	s := token.Strip(text, " ")
	if len(s) == 0 {
		return nil, ErrEmptyInput
	}
	if pair := token.Unbalanced(s, bracketPairs); pair != "" {
		return nil, fmt.Errorf("%w %s", ErrMismatchedBrackets, pair)
	}
	switch i := strings.IndexByte(s, '['); {
	case i == 0:
		return parseRanges(s, opts)
	case i > 0:
		return nil, &UnexpectedTokenError{Char: '[', Offset: i}
	}
	switch i := strings.IndexByte(s, '{'); {
	case i == 0:
		return parseSet(s), nil
	case i > 0:
		return nil, &UnexpectedTokenError{Char: '{', Offset: i}
	}
	return parseScalarOrText(s), nil
}

func parseRanges(s string, opts *parseOpts) (*value.Value, error) {
	toks := token.Tokenize(s, rangesDelims)
	if debug.Parse() {
		debug.Logf("parse ranges %q tokens %q\n", s, toks)
	}
	if len(toks)%2 != 0 {
		return nil, &RangeFormatError{Reason: `expecting one or more "ranges"`}
	}
	rs := make(value.Ranges, 0, len(toks)/2)
	for i := 0; i < len(toks); i += 2 {
		begin, err := parseBound(toks[i])
		if err != nil {
			return nil, err
		}
		end, err := parseBound(toks[i+1])
		if err != nil {
			return nil, err
		}
		if begin > end {
			return nil, &RangeFormatError{
				Token:  toks[i] + "-" + toks[i+1],
				Reason: "expecting begin <= end",
			}
		}
		rs = append(rs, value.Range{Begin: begin, End: end})
	}
	if !opts.noCoalesce {
		rs = value.Coalesce(rs)
	}
	return &value.Value{Type: value.RangesType, Ranges: rs}, nil
}

func parseBound(tok string) (uint64, error) {
	if !token.Unsigned(tok) {
		return 0, &RangeFormatError{Token: tok, Reason: "expecting non-negative integers"}
	}
	n, err := strconv.ParseUint(tok, 10, 64)
	if err != nil {
		return 0, &RangeFormatError{Token: tok, Reason: "expecting non-negative integers"}
	}
	return n, nil
}

func parseSet(s string) *value.Value {
	toks := token.Tokenize(s, setDelims)
	if debug.Parse() {
		debug.Logf("parse set %q items %q\n", s, toks)
	}
	return value.FromSet(toks...)
}

func parseScalarOrText(s string) *value.Value {
	if token.Decimal(s) {
		f, err := strconv.ParseFloat(s, 64)
		if err == nil {
			return value.FromScalar(f)
		}
	}
	if debug.Parse() {
		debug.Logf("parse text %q\n", s)
	}
	return value.FromText(s)
}
