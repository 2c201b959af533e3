package encode

import "github.com/signadot/resval/format"

type EncodeOption func(*EncState)

func EncodeFormat(f format.Format) EncodeOption {
	return func(es *EncState) { es.format = f }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}

// EncodeCanonical coalesces ranges before they are written.
func EncodeCanonical(v bool) EncodeOption {
	return func(es *EncState) { es.canonical = v }
}

// EncodeWire writes JSON on a single line and omits the trailing newline
// of text output.
func EncodeWire(v bool) EncodeOption {
	return func(es *EncState) { es.wire = v }
}

func Indent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}
