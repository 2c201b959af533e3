// Package format names the encodings of resource values and recognizes
// them in input.
package format

import (
	"bytes"
	"errors"
	"fmt"
	"slices"
	"strings"
)

type Format int

const (
	TextFormat Format = iota
	JSONFormat
	YAMLFormat
)

var ErrBadFormat = errors.New("bad format")

// names holds the accepted spellings of each format, canonical first.
var names = [...][]string{
	TextFormat: {"text", "t", "txt"},
	JSONFormat: {"json", "j"},
	YAMLFormat: {"yaml", "y", "yml"},
}

func ParseFormat(v string) (Format, error) {
	lv := strings.ToLower(v)
	for f, ns := range names {
		if slices.Contains(ns, lv) {
			return Format(f), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

func (f Format) valid() bool {
	return f >= 0 && int(f) < len(names)
}

func (f Format) String() string {
	if !f.valid() {
		return fmt.Sprintf("<format %d>", int(f))
	}
	return names[f][0]
}

func (f Format) MarshalText() ([]byte, error) {
	if !f.valid() {
		return nil, fmt.Errorf("%w: %d", ErrBadFormat, int(f))
	}
	return []byte(names[f][0]), nil
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

func (f Format) IsText() bool { return f == TextFormat }
func (f Format) IsJSON() bool { return f == JSONFormat }
func (f Format) IsYAML() bool { return f == YAMLFormat }

// AllFormats returns all supported formats in preference order.
func AllFormats() []Format {
	return []Format{TextFormat, JSONFormat, YAMLFormat}
}

// top level keys of the document form
var docKeys = []string{"type", "scalar", "ranges", "set", "text"}

// Detect guesses the format of one encoded value. JSON and YAML are only
// recognized in the document form, anything else is text. A text value
// such as "type:web" is therefore taken for YAML.
func Detect(d []byte) Format {
	s := bytes.TrimSpace(d)
	if s, ok := bytes.CutPrefix(s, []byte("---\n")); ok {
		return detectDoc(s, YAMLFormat)
	}
	return detectDoc(s, TextFormat)
}

func detectDoc(s []byte, dflt Format) Format {
	if len(s) > 1 && s[0] == '{' {
		rest := bytes.TrimLeft(s[1:], " \t\r\n")
		if len(rest) > 0 && rest[0] == '"' {
			return JSONFormat
		}
	}
	for _, k := range docKeys {
		if bytes.HasPrefix(s, []byte(k+":")) {
			return YAMLFormat
		}
	}
	return dflt
}
