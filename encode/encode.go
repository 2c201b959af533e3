package encode

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/signadot/resval/format"
	"github.com/signadot/resval/value"

	"github.com/goccy/go-yaml"
)

var ErrEncoding = errors.New("encoding error")

type EncState struct {
	indent    int
	canonical bool
	wire      bool

	format format.Format
	Color  func(value.Type, ColorAttr, string) string
}

func Encode(v *value.Value, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: 2,
	}
	for _, opt := range opts {
		opt(es)
	}
	if v == nil {
		return fmt.Errorf("%w: nil value", ErrEncoding)
	}
	if es.canonical && v.Type == value.RangesType {
		v = &value.Value{Type: value.RangesType, Ranges: value.Coalesce(v.Ranges)}
	}
	switch es.format {
	case format.TextFormat:
		return encodeText(v, w, es)
	case format.JSONFormat:
		return encodeJSON(v, w, es)
	case format.YAMLFormat:
		return encodeYAML(v, w, es)
	}
	return fmt.Errorf("%w: %w: %d", ErrEncoding, format.ErrBadFormat, int(es.format))
}

func encodeText(v *value.Value, w io.Writer, es *EncState) error {
	parts := textParts(v)
	if parts == nil {
		return fmt.Errorf("%w: cannot encode type %s", ErrEncoding, v.Type)
	}
	buf := &strings.Builder{}
	for _, p := range parts {
		if es.Color == nil {
			buf.WriteString(p.s)
			continue
		}
		buf.WriteString(es.Color(v.Type, p.attr, p.s))
	}
	if !es.wire {
		buf.WriteByte('\n')
	}
	return writeString(w, buf.String())
}

type part struct {
	attr ColorAttr
	s    string
}

// textParts splits the text form of v into colorable pieces whose
// concatenation is v.String().
func textParts(v *value.Value) []part {
	switch v.Type {
	case value.ScalarType:
		return []part{{ValueColor, v.Scalar.String()}}
	case value.TextType:
		return []part{{ValueColor, v.Text.String()}}
	case value.RangesType:
		res := []part{{BracketColor, "["}}
		for i, r := range v.Ranges {
			if i != 0 {
				res = append(res, part{SepColor, ", "})
			}
			res = append(res, part{ValueColor, r.String()})
		}
		return append(res, part{BracketColor, "]"})
	case value.SetType:
		res := []part{{BracketColor, "{"}}
		for i, item := range v.Set {
			if i != 0 {
				res = append(res, part{SepColor, ", "})
			}
			res = append(res, part{ValueColor, item})
		}
		return append(res, part{BracketColor, "}"})
	}
	return nil
}

func encodeJSON(v *value.Value, w io.Writer, es *EncState) error {
	doc, err := docOf(v)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	if !es.wire && es.indent > 0 {
		enc.SetIndent("", strings.Repeat(" ", es.indent))
	}
	return enc.Encode(doc)
}

func encodeYAML(v *value.Value, w io.Writer, es *EncState) error {
	doc, err := docOf(v)
	if err != nil {
		return err
	}
	indent := es.indent
	if indent <= 0 {
		indent = 2
	}
	d, err := yaml.MarshalWithOptions(doc, yaml.Indent(indent))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	_, err = w.Write(d)
	return err
}

func docOf(v *value.Value) (*value.Doc, error) {
	if _, err := v.Type.MarshalText(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	return v.Doc(), nil
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}

// Decode reads a value in the given format. Text input is not handled
// here, see package parse.
func Decode(d []byte, f format.Format) (*value.Value, error) {
	doc := &value.Doc{}
	switch f {
	case format.JSONFormat:
		if err := json.Unmarshal(d, doc); err != nil {
			return nil, err
		}
	case format.YAMLFormat:
		if err := yaml.Unmarshal(d, doc); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: cannot decode %s", ErrEncoding, f)
	}
	return value.FromDoc(doc)
}

func MustString(v *value.Value, opts ...EncodeOption) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(v, buf, opts...); err != nil {
		panic(err)
	}
	return strings.TrimSpace(buf.String())
}
