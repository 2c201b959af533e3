package debug

import (
	"bytes"
	"testing"
)

type named string

func (n named) String() string { return "<" + string(n) + ">" }

func TestLogf(t *testing.T) {
	buf := &bytes.Buffer{}
	old := SetOutput(buf)
	defer SetOutput(old)

	Logf("%s %s %d\n", named("a"), []any{1}, 3)
	want := "<a> [\n   |  1\n   |] 3\n"
	if got := buf.String(); got != want {
		t.Errorf("got %q want %q", got, want)
	}
}

func TestSet(t *testing.T) {
	parse, coalesce, eval, patch := Parse(), Coalesce(), Eval(), Patch()
	restore := Set(true, false, false, true)
	if !Parse() || Coalesce() || Eval() || !Patch() {
		t.Errorf("switches not set")
	}
	restore()
	if Parse() != parse || Coalesce() != coalesce || Eval() != eval || Patch() != patch {
		t.Errorf("switches not restored")
	}
}
