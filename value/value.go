package value

import "slices"

type Value struct {
	Type Type

	Scalar Scalar
	Ranges Ranges
	Set    Set
	Text   Text
}

func FromScalar(f float64) *Value {
	return &Value{
		Type:   ScalarType,
		Scalar: Scalar(f),
	}
}

// FromRanges creates a ranges value from rs as given; it is not coalesced.
func FromRanges(rs ...Range) *Value {
	return &Value{
		Type:   RangesType,
		Ranges: Ranges(rs),
	}
}

func FromSet(items ...string) *Value {
	return &Value{
		Type: SetType,
		Set:  Set(items),
	}
}

func FromText(s string) *Value {
	return &Value{
		Type: TextType,
		Text: Text(s),
	}
}

func (v *Value) Clone() *Value {
	res := &Value{}
	return v.CloneTo(res)
}

func (v *Value) CloneTo(dst *Value) *Value {
	dst.Type = v.Type
	dst.Scalar = 0
	dst.Ranges = nil
	dst.Set = nil
	dst.Text = ""
	switch v.Type {
	case ScalarType:
		dst.Scalar = v.Scalar
	case RangesType:
		dst.Ranges = slices.Clone(v.Ranges)
	case SetType:
		dst.Set = slices.Clone(v.Set)
	case TextType:
		dst.Text = v.Text
	}
	return dst
}

// String returns the text form of the active payload.
func (v *Value) String() string {
	if v == nil {
		return "<nil>"
	}
	switch v.Type {
	case ScalarType:
		return v.Scalar.String()
	case RangesType:
		return v.Ranges.String()
	case SetType:
		return v.Set.String()
	case TextType:
		return v.Text.String()
	}
	return v.Type.String()
}
