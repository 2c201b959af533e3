package parse

import (
	"errors"
	"fmt"
)

var (
	ErrParse              = errors.New("parse error")
	ErrEmptyInput         = fmt.Errorf("%w: expecting non-empty string", ErrParse)
	ErrMismatchedBrackets = fmt.Errorf("%w: mismatched brackets", ErrParse)
	ErrInvalidRangeFormat = fmt.Errorf("%w: invalid ranges", ErrParse)
	ErrUnexpectedToken    = fmt.Errorf("%w: unexpected token", ErrParse)
	ErrUnexpectedType     = fmt.Errorf("%w: unexpected value type", ErrParse)
)

// RangeFormatError describes a malformed ranges literal. Token is the
// offending token, empty when the literal as a whole is malformed.
type RangeFormatError struct {
	Token  string
	Reason string
}

func (e *RangeFormatError) Unwrap() error {
	return ErrInvalidRangeFormat
}

func (e *RangeFormatError) Error() string {
	if e.Token == "" {
		return fmt.Sprintf("%s: %s", ErrInvalidRangeFormat.Error(), e.Reason)
	}
	return fmt.Sprintf("%s: %s in '%s'", ErrInvalidRangeFormat.Error(), e.Reason, e.Token)
}

// UnexpectedTokenError reports a bracket at a position the grammar does not
// allow. Offset is relative to the input with spaces removed.
type UnexpectedTokenError struct {
	Char   byte
	Offset int
}

func (e *UnexpectedTokenError) Unwrap() error {
	return ErrUnexpectedToken
}

func (e *UnexpectedTokenError) Error() string {
	return fmt.Sprintf("%s: '%c' found at offset %d", ErrUnexpectedToken.Error(), e.Char, e.Offset)
}
