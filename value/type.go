package value

import "fmt"

type Type int

const (
	ScalarType Type = iota
	RangesType
	SetType
	TextType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		ScalarType: "SCALAR",
		RangesType: "RANGES",
		SetType:    "SET",
		TextType:   "TEXT",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	switch t {
	case ScalarType, RangesType, SetType, TextType:
		return []byte(t.String()), nil
	}
	return nil, fmt.Errorf("%w: %d", ErrUnknownType, int(t))
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, ok := map[string]Type{
		"SCALAR": ScalarType,
		"RANGES": RangesType,
		"SET":    SetType,
		"TEXT":   TextType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownType, d)
	}
	*t = tt
	return nil
}

func Types() []Type {
	return []Type{
		ScalarType,
		RangesType,
		SetType,
		TextType,
	}
}
