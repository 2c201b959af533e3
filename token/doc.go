// Package token provides the string scanning helpers used to parse resource
// values: whitespace stripping, delimiter tokenizing, bracket balance
// checking and decimal number syntax.
//
// All functions are pure and operate on bytes; delimiters and brackets are
// expected to be ASCII.
package token
