package token

import "strings"

// Strip returns s with every byte occurring in chars removed, wherever it
// occurs in s.
func Strip(s, chars string) string {
	if !strings.ContainsAny(s, chars) {
		return s
	}
	buf := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if strings.IndexByte(chars, s[i]) >= 0 {
			continue
		}
		buf = append(buf, s[i])
	}
	return string(buf)
}

// Tokenize splits s at every byte occurring in delims. Empty tokens are
// dropped, so runs of delimiters act as one and leading or trailing
// delimiters produce nothing.
func Tokenize(s, delims string) []string {
	var res []string
	start := -1
	for i := 0; i < len(s); i++ {
		if strings.IndexByte(delims, s[i]) < 0 {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			res = append(res, s[start:i])
			start = -1
		}
	}
	if start >= 0 {
		res = append(res, s[start:])
	}
	return res
}
