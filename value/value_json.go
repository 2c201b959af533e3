package value

import (
	"encoding/json"
	"fmt"
)

// Doc is the schema form of a Value, shared by the JSON and YAML encodings:
//
//	{"type": "RANGES", "ranges": {"range": [{"begin": 1, "end": 3}]}}
type Doc struct {
	Type   string     `json:"type" yaml:"type"`
	Scalar *ScalarDoc `json:"scalar,omitempty" yaml:"scalar,omitempty"`
	Ranges *RangesDoc `json:"ranges,omitempty" yaml:"ranges,omitempty"`
	Set    *SetDoc    `json:"set,omitempty" yaml:"set,omitempty"`
	Text   *TextDoc   `json:"text,omitempty" yaml:"text,omitempty"`
}

type ScalarDoc struct {
	Value float64 `json:"value" yaml:"value"`
}

type RangesDoc struct {
	Range []Range `json:"range" yaml:"range"`
}

type SetDoc struct {
	Item []string `json:"item" yaml:"item"`
}

type TextDoc struct {
	Value string `json:"value" yaml:"value"`
}

func (v *Value) Doc() *Doc {
	d := &Doc{Type: v.Type.String()}
	switch v.Type {
	case ScalarType:
		d.Scalar = &ScalarDoc{Value: float64(v.Scalar)}
	case RangesType:
		d.Ranges = &RangesDoc{Range: v.Ranges}
		if d.Ranges.Range == nil {
			d.Ranges.Range = []Range{}
		}
	case SetType:
		d.Set = &SetDoc{Item: v.Set}
		if d.Set.Item == nil {
			d.Set.Item = []string{}
		}
	case TextType:
		d.Text = &TextDoc{Value: string(v.Text)}
	}
	return d
}

// FromDoc converts d to a Value. Ranges are taken as given, without
// coalescing, but a range with Begin > End is an ErrInvalidRange.
func FromDoc(d *Doc) (*Value, error) {
	var t Type
	if err := t.UnmarshalText([]byte(d.Type)); err != nil {
		return nil, err
	}
	missing := func() error {
		return fmt.Errorf("%w: %s", ErrMissingPayload, t)
	}
	v := &Value{Type: t}
	switch t {
	case ScalarType:
		if d.Scalar == nil {
			return nil, missing()
		}
		v.Scalar = Scalar(d.Scalar.Value)
	case RangesType:
		if d.Ranges == nil {
			return nil, missing()
		}
		for _, r := range d.Ranges.Range {
			if r.Begin > r.End {
				return nil, fmt.Errorf("%w: begin %d > end %d", ErrInvalidRange, r.Begin, r.End)
			}
		}
		v.Ranges = Ranges(d.Ranges.Range)
	case SetType:
		if d.Set == nil {
			return nil, missing()
		}
		v.Set = Set(d.Set.Item)
	case TextType:
		if d.Text == nil {
			return nil, missing()
		}
		v.Text = Text(d.Text.Value)
	}
	return v, nil
}

func (v *Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Doc())
}

func (v *Value) UnmarshalJSON(d []byte) error {
	doc := &Doc{}
	if err := json.Unmarshal(d, doc); err != nil {
		return err
	}
	tmp, err := FromDoc(doc)
	if err != nil {
		return err
	}
	*v = *tmp
	return nil
}
