// Package encode writes resource values as text, JSON or YAML.
//
// # Usage
//
//	v := value.FromRanges(value.Range{Begin: 1, End: 3})
//	err := encode.Encode(v, os.Stdout)
//
//	// Encode as YAML
//	err = encode.Encode(v, os.Stdout, encode.EncodeFormat(format.YAMLFormat))
//
//	// Colored text for terminals
//	err = encode.Encode(v, os.Stdout, encode.EncodeColors(encode.NewColors()))
//
// Text output uses the value grammar accepted by package parse. JSON and
// YAML output use the schema shape of value.Doc.
//
// # Related Packages
//
//   - github.com/signadot/resval/value - value model
//   - github.com/signadot/resval/parse - parse text to values
package encode
