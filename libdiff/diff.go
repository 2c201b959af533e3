package libdiff

import (
	"errors"
	"fmt"
	"strings"

	"github.com/signadot/resval/value"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

var ErrDiff = errors.New("diff error")

type Op int

const (
	Keep Op = iota
	Insert
	Delete
)

func (o Op) String() string {
	switch o {
	case Insert:
		return "+"
	case Delete:
		return "-"
	default:
		return " "
	}
}

// Edit is one step of an edit script. For sets Text is one item, for text
// values it is a run of characters.
type Edit struct {
	Op   Op
	Text string
}

type Diff struct {
	Type value.Type

	// Delta is to - from for scalars.
	Delta value.Scalar

	// Added and Removed are to - from and from - to for ranges.
	Added   value.Ranges
	Removed value.Ranges

	// Edits is the edit script for sets and text.
	Edits []Edit
}

// Compute returns the difference from from to to.
func Compute(from, to *value.Value) (*Diff, error) {
	if from.Type != to.Type {
		return nil, fmt.Errorf("%w: %w: %s and %s", ErrDiff, value.ErrTypeMismatch, from.Type, to.Type)
	}
	res := &Diff{Type: from.Type}
	switch from.Type {
	case value.ScalarType:
		res.Delta = to.Scalar.Minus(from.Scalar)
	case value.RangesType:
		res.Added = to.Ranges.Minus(from.Ranges)
		res.Removed = from.Ranges.Minus(to.Ranges)
	case value.SetType:
		res.Edits = diffItems(from.Set, to.Set)
	case value.TextType:
		res.Edits = diffText(string(from.Text), string(to.Text))
	default:
		return nil, fmt.Errorf("%w: %w: %d", ErrDiff, value.ErrUnknownType, int(from.Type))
	}
	return res, nil
}

func diffItems(from, to value.Set) []Edit {
	itemMap := map[string]rune{}
	runeMap := map[rune]string{}
	fromRunes := mapItemsTo(itemMap, runeMap, from)
	toRunes := mapItemsTo(itemMap, runeMap, to)
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMainRunes(fromRunes, toRunes, false)
	var res []Edit
	for i := range diffs {
		d := &diffs[i]
		op := opOf(d.Type)
		for _, r := range d.Text {
			res = append(res, Edit{Op: op, Text: runeMap[r]})
		}
	}
	return res
}

func mapItemsTo(m map[string]rune, im map[rune]string, items value.Set) []rune {
	rs := make([]rune, len(items))
	for i, item := range items {
		r, ok := m[item]
		if !ok {
			r = rune(len(m))
			if r >= 0xD800 {
				// skip surrogates, which do not survive conversion
				// to string
				r += 0x800
			}
			m[item] = r
			im[r] = item
		}
		rs[i] = r
	}
	return rs
}

func diffText(from, to string) []Edit {
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMain(from, to, false)
	diffs = diffCfg.DiffCleanupSemantic(diffs)
	res := make([]Edit, 0, len(diffs))
	for _, d := range diffs {
		res = append(res, Edit{Op: opOf(d.Type), Text: d.Text})
	}
	return res
}

func opOf(t diffpatch.Operation) Op {
	switch t {
	case diffpatch.DiffInsert:
		return Insert
	case diffpatch.DiffDelete:
		return Delete
	default:
		return Keep
	}
}

// Empty reports whether the diff records no change.
func (d *Diff) Empty() bool {
	switch d.Type {
	case value.ScalarType:
		return d.Delta == 0
	case value.RangesType:
		return len(d.Added) == 0 && len(d.Removed) == 0
	default:
		for _, e := range d.Edits {
			if e.Op != Keep {
				return false
			}
		}
		return true
	}
}

func (d *Diff) String() string {
	buf := &strings.Builder{}
	switch d.Type {
	case value.ScalarType:
		if d.Delta >= 0 {
			buf.WriteByte('+')
		}
		buf.WriteString(d.Delta.String())
		buf.WriteByte('\n')
	case value.RangesType:
		if len(d.Added) != 0 {
			fmt.Fprintf(buf, "+ %s (%d)\n", d.Added, d.Added.Len())
		}
		if len(d.Removed) != 0 {
			fmt.Fprintf(buf, "- %s (%d)\n", d.Removed, d.Removed.Len())
		}
	case value.SetType:
		for _, e := range d.Edits {
			fmt.Fprintf(buf, "%s %s\n", e.Op, e.Text)
		}
	case value.TextType:
		for _, e := range d.Edits {
			switch e.Op {
			case Insert:
				fmt.Fprintf(buf, "{+%s+}", e.Text)
			case Delete:
				fmt.Fprintf(buf, "[-%s-]", e.Text)
			default:
				buf.WriteString(e.Text)
			}
		}
		buf.WriteByte('\n')
	}
	return buf.String()
}

// Apply returns the value d was computed towards, given the value it was
// computed from.
func Apply(from *value.Value, d *Diff) (*value.Value, error) {
	if from.Type != d.Type {
		return nil, fmt.Errorf("%w: %w: %s and %s", ErrDiff, value.ErrTypeMismatch, from.Type, d.Type)
	}
	switch d.Type {
	case value.ScalarType:
		return &value.Value{Type: d.Type, Scalar: from.Scalar.Plus(d.Delta)}, nil
	case value.RangesType:
		return &value.Value{Type: d.Type, Ranges: from.Ranges.Minus(d.Removed).Plus(d.Added)}, nil
	case value.SetType:
		var items value.Set
		for _, e := range d.Edits {
			if e.Op != Delete {
				items = append(items, e.Text)
			}
		}
		return &value.Value{Type: d.Type, Set: items}, nil
	case value.TextType:
		buf := &strings.Builder{}
		for _, e := range d.Edits {
			if e.Op != Delete {
				buf.WriteString(e.Text)
			}
		}
		return value.FromText(buf.String()), nil
	}
	return nil, fmt.Errorf("%w: %w: %d", ErrDiff, value.ErrUnknownType, int(d.Type))
}
