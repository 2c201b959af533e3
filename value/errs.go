package value

import "errors"

var (
	ErrTypeMismatch   = errors.New("type mismatch")
	ErrUnsupported    = errors.New("unsupported operation")
	ErrUnknownType    = errors.New("unknown value type")
	ErrMissingPayload = errors.New("missing payload")
	ErrInvalidRange   = errors.New("invalid range")
)
