package value

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestScalarArithmetic(t *testing.T) {
	sum, err := Add(FromScalar(2.0), FromScalar(3.0))
	if err != nil {
		t.Fatal(err)
	}
	if !Equal(sum, FromScalar(5.0)) {
		t.Errorf("2 + 3 = %s, want 5", sum)
	}
	diff, err := Subtract(FromScalar(2.0), FromScalar(3.5))
	if err != nil {
		t.Fatal(err)
	}
	if diff.Scalar != -1.5 {
		t.Errorf("2 - 3.5 = %s, want -1.5", diff)
	}

	s := Scalar(1)
	s.Add(0.25)
	s.Subtract(1)
	if s != 0.25 {
		t.Errorf("in place arithmetic gave %s, want 0.25", s)
	}
	if !Scalar(1).LessEqual(1) || Scalar(2).LessEqual(1) {
		t.Errorf("LessEqual is not numeric order")
	}
}

func TestAddSubtractDispatch(t *testing.T) {
	tests := []struct {
		name       string
		a, b       *Value
		sum, delta *Value
	}{
		{
			"ranges",
			FromRanges(rs(1, 3)...), FromRanges(rs(3, 6)...),
			FromRanges(rs(1, 6)...), FromRanges(rs(1, 2)...),
		},
		{
			"set",
			FromSet("a", "b"), FromSet("b", "c"),
			FromSet("a", "b", "c"), FromSet("a"),
		},
		{
			"scalar",
			FromScalar(4), FromScalar(1.5),
			FromScalar(5.5), FromScalar(2.5),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sum, err := Add(tt.a, tt.b)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.sum, sum, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("Add mismatch (-want +got):\n%s", diff)
			}
			delta, err := Subtract(tt.a, tt.b)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.delta, delta, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("Subtract mismatch (-want +got):\n%s", diff)
			}

			dst := tt.a.Clone()
			if err := AddTo(dst, tt.b); err != nil {
				t.Fatal(err)
			}
			if !Equal(dst, tt.sum) {
				t.Errorf("AddTo gave %s, want %s", dst, tt.sum)
			}
			dst = tt.a.Clone()
			if err := SubtractFrom(dst, tt.b); err != nil {
				t.Fatal(err)
			}
			if !Equal(dst, tt.delta) {
				t.Errorf("SubtractFrom gave %s, want %s", dst, tt.delta)
			}
		})
	}
}

func TestDispatchErrors(t *testing.T) {
	if _, err := Add(FromScalar(1), FromText("1")); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("Add scalar text: got %v, want ErrTypeMismatch", err)
	}
	if _, err := Subtract(FromText("a"), FromText("b")); !errors.Is(err, ErrUnsupported) {
		t.Errorf("Subtract text: got %v, want ErrUnsupported", err)
	}
	if err := AddTo(FromSet("a"), FromRanges()); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("AddTo set ranges: got %v, want ErrTypeMismatch", err)
	}
	if _, err := LessEqual(FromText("a"), FromText("a")); !errors.Is(err, ErrUnsupported) {
		t.Errorf("LessEqual text: got %v, want ErrUnsupported", err)
	}
	if _, err := Add(&Value{Type: Type(42)}, &Value{Type: Type(42)}); !errors.Is(err, ErrUnknownType) {
		t.Errorf("Add unknown: got %v, want ErrUnknownType", err)
	}
}

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b *Value
		want bool
	}{
		{"text", FromText("hello"), FromText("hello"), true},
		{"text differs", FromText("hello"), FromText("Hello"), false},
		{"scalar", FromScalar(1), FromScalar(1), true},
		{"ranges coverage", FromRanges(rs(1, 3, 5, 5)...), FromRanges(rs(1, 1, 2, 3, 5, 5)...), true},
		{"ranges differ", FromRanges(rs(1, 3, 5, 5)...), FromRanges(rs(1, 5)...), false},
		{"set order", FromSet("b", "a"), FromSet("a", "b"), true},
		{"types differ", FromScalar(1), FromText("1"), false},
		{"ignores inactive payload", &Value{Type: TextType, Text: "x", Scalar: 1}, FromText("x"), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Equal(tt.a, tt.b); got != tt.want {
				t.Errorf("Equal(%s, %s) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestLessEqual(t *testing.T) {
	tests := []struct {
		a, b *Value
		want bool
	}{
		{FromScalar(1), FromScalar(2), true},
		{FromScalar(2), FromScalar(1), false},
		{FromRanges(rs(2, 3)...), FromRanges(rs(1, 5)...), true},
		{FromRanges(rs(1, 5)...), FromRanges(rs(1, 2, 4, 5)...), false},
		{FromSet("a"), FromSet("b", "a"), true},
		{FromSet("c"), FromSet("b", "a"), false},
	}
	for _, tt := range tests {
		got, err := LessEqual(tt.a, tt.b)
		if err != nil {
			t.Fatal(err)
		}
		if got != tt.want {
			t.Errorf("LessEqual(%s, %s) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}
