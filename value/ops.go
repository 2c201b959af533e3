package value

import "fmt"

func checkPair(op string, a, b *Value) error {
	if a.Type != b.Type {
		return fmt.Errorf("%w: %s %s %s", ErrTypeMismatch, a.Type, op, b.Type)
	}
	if a.Type == TextType && op != "==" {
		return fmt.Errorf("%w: %s %s %s", ErrUnsupported, a.Type, op, b.Type)
	}
	switch a.Type {
	case ScalarType, RangesType, SetType, TextType:
		return nil
	}
	return fmt.Errorf("%w: %d", ErrUnknownType, int(a.Type))
}

// Add returns a + b for two values of the same type.
func Add(a, b *Value) (*Value, error) {
	if err := checkPair("+", a, b); err != nil {
		return nil, err
	}
	switch a.Type {
	case ScalarType:
		return &Value{Type: ScalarType, Scalar: a.Scalar.Plus(b.Scalar)}, nil
	case RangesType:
		return &Value{Type: RangesType, Ranges: a.Ranges.Plus(b.Ranges)}, nil
	default:
		return &Value{Type: SetType, Set: a.Set.Plus(b.Set)}, nil
	}
}

// Subtract returns a - b for two values of the same type.
func Subtract(a, b *Value) (*Value, error) {
	if err := checkPair("-", a, b); err != nil {
		return nil, err
	}
	switch a.Type {
	case ScalarType:
		return &Value{Type: ScalarType, Scalar: a.Scalar.Minus(b.Scalar)}, nil
	case RangesType:
		return &Value{Type: RangesType, Ranges: a.Ranges.Minus(b.Ranges)}, nil
	default:
		return &Value{Type: SetType, Set: a.Set.Minus(b.Set)}, nil
	}
}

// AddTo performs dst += src.
func AddTo(dst, src *Value) error {
	if err := checkPair("+=", dst, src); err != nil {
		return err
	}
	switch dst.Type {
	case ScalarType:
		dst.Scalar.Add(src.Scalar)
	case RangesType:
		dst.Ranges.Add(src.Ranges)
	default:
		dst.Set.Add(src.Set)
	}
	return nil
}

// SubtractFrom performs dst -= src.
func SubtractFrom(dst, src *Value) error {
	if err := checkPair("-=", dst, src); err != nil {
		return err
	}
	switch dst.Type {
	case ScalarType:
		dst.Scalar.Subtract(src.Scalar)
	case RangesType:
		dst.Ranges.Subtract(src.Ranges)
	default:
		dst.Set.Subtract(src.Set)
	}
	return nil
}

// Equal reports whether a and b have the same type and equal payloads.
func Equal(a, b *Value) bool {
	if checkPair("==", a, b) != nil {
		return false
	}
	switch a.Type {
	case ScalarType:
		return a.Scalar.Equal(b.Scalar)
	case RangesType:
		return a.Ranges.Equal(b.Ranges)
	case SetType:
		return a.Set.Equal(b.Set)
	default:
		return a.Text.Equal(b.Text)
	}
}

// LessEqual reports a <= b: numeric order for scalars, containment for
// ranges and sets.
func LessEqual(a, b *Value) (bool, error) {
	if err := checkPair("<=", a, b); err != nil {
		return false, err
	}
	switch a.Type {
	case ScalarType:
		return a.Scalar.LessEqual(b.Scalar), nil
	case RangesType:
		return a.Ranges.SubsetOf(b.Ranges), nil
	default:
		return a.Set.SubsetOf(b.Set), nil
	}
}
