package libdiff

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/signadot/resval/parse"
	"github.com/signadot/resval/value"
)

func TestDiffRanges(t *testing.T) {
	d, err := Compute(parse.MustParse("[1-10, 20-30]"), parse.MustParse("[5-10, 20-40]"))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(value.Ranges{{Begin: 31, End: 40}}, d.Added); diff != "" {
		t.Errorf("Added mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(value.Ranges{{Begin: 1, End: 4}}, d.Removed); diff != "" {
		t.Errorf("Removed mismatch (-want +got):\n%s", diff)
	}
	if got, want := d.String(), "+ [31-40] (10)\n- [1-4] (4)\n"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestDiffSet(t *testing.T) {
	d, err := Compute(value.FromSet("a", "b", "c"), value.FromSet("a", "c", "d"))
	if err != nil {
		t.Fatal(err)
	}
	want := []Edit{
		{Keep, "a"},
		{Delete, "b"},
		{Keep, "c"},
		{Insert, "d"},
	}
	if diff := cmp.Diff(want, d.Edits); diff != "" {
		t.Errorf("Edits mismatch (-want +got):\n%s", diff)
	}
	if got, want := d.String(), "  a\n- b\n  c\n+ d\n"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestDiffScalarAndText(t *testing.T) {
	d, err := Compute(value.FromScalar(4), value.FromScalar(2.5))
	if err != nil {
		t.Fatal(err)
	}
	if d.Delta != -1.5 || d.String() != "-1.5\n" {
		t.Errorf("scalar diff %v %q", d.Delta, d.String())
	}
	d, err = Compute(value.FromText("us-east-1"), value.FromText("us-west-1"))
	if err != nil {
		t.Fatal(err)
	}
	if d.Empty() {
		t.Errorf("text diff is empty")
	}
}

func TestDiffEmpty(t *testing.T) {
	pairs := [][2]*value.Value{
		{value.FromScalar(1), value.FromScalar(1)},
		{parse.MustParse("[1-2, 3-4]"), parse.MustParse("[1-4]")},
		{value.FromSet("a", "b"), value.FromSet("a", "b")},
		{value.FromText("x"), value.FromText("x")},
	}
	for _, p := range pairs {
		d, err := Compute(p[0], p[1])
		if err != nil {
			t.Fatal(err)
		}
		if !d.Empty() {
			t.Errorf("Compute(%s, %s) = %q, want empty", p[0], p[1], d)
		}
	}
}

func TestApply(t *testing.T) {
	pairs := [][2]*value.Value{
		{value.FromScalar(1), value.FromScalar(3.25)},
		{parse.MustParse("[1-10, 20-30]"), parse.MustParse("[5-10, 20-40, 50-50]")},
		{value.FromSet("a", "b", "c"), value.FromSet("c", "x", "a")},
		{value.FromSet(), value.FromSet("a")},
		{value.FromText("cpus"), value.FromText("gpus")},
		{value.FromText(""), value.FromText("mem")},
	}
	for _, p := range pairs {
		d, err := Compute(p[0], p[1])
		if err != nil {
			t.Fatal(err)
		}
		got, err := Apply(p[0], d)
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(p[1], got, cmpopts.EquateEmpty()); diff != "" {
			t.Errorf("Apply(%s, Compute(%s, %s)) mismatch (-want +got):\n%s", p[0], p[0], p[1], diff)
		}
	}
}

func TestDiffTypeMismatch(t *testing.T) {
	_, err := Compute(value.FromScalar(1), value.FromText("1"))
	if !errors.Is(err, ErrDiff) || !errors.Is(err, value.ErrTypeMismatch) {
		t.Errorf("got %v, want ErrDiff wrapping ErrTypeMismatch", err)
	}
	d := &Diff{Type: value.SetType}
	if _, err := Apply(value.FromScalar(1), d); !errors.Is(err, value.ErrTypeMismatch) {
		t.Errorf("got %v, want ErrTypeMismatch", err)
	}
}
