package token

// CheckBracketsMatching reports whether every open in s is followed by a
// matching close and no close appears without a preceding open.
// Other bracket kinds are ignored, so "([)]" matches for '(' and ')'.
func CheckBracketsMatching(s string, open, close byte) bool {
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case open:
			depth++
		case close:
			depth--
			if depth < 0 {
				return false
			}
		}
	}
	return depth == 0
}

// Unbalanced returns the first pair among pairs, given as consecutive
// open/close bytes such as "{}[]()", for which s is not balanced, or ""
// if s is balanced for all of them.
func Unbalanced(s string, pairs string) string {
	for i := 0; i+1 < len(pairs); i += 2 {
		if !CheckBracketsMatching(s, pairs[i], pairs[i+1]) {
			return pairs[i : i+2]
		}
	}
	return ""
}
