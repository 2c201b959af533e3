package token

// Decimal reports whether s is a decimal floating point literal:
// an optional sign, digits with an optional fraction, and an optional
// exponent. At least one mantissa digit is required, so "5.", ".5" and
// "-1e3" are decimal while "inf", "0x10" and "." are not.
func Decimal(s string) bool {
	d := []byte(s)
	if len(d) != 0 && (d[0] == '+' || d[0] == '-') {
		d = d[1:]
	}
	digits := asciiDigits(d)
	d = d[digits:]
	f := fract(d)
	mant := digits
	if f > 0 {
		mant += f - 1
	}
	if mant == 0 {
		return false
	}
	d = d[f:]
	if len(d) == 0 {
		return true
	}
	e := exp(d)
	return e > 0 && e == len(d)
}

// Unsigned reports whether s is a non empty run of ascii digits.
func Unsigned(s string) bool {
	return len(s) != 0 && asciiDigits([]byte(s)) == len(s)
}

func asciiDigits(d []byte) int {
	i := 0
	for i < len(d) {
		if !asciiDigit(d[i]) {
			return i
		}
		i++
	}
	return i
}

func asciiDigit(c byte) bool {
	switch c {
	case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return true
	default:
		return false
	}
}

// fract returns the length of a '.' and its following digits at the start
// of d, or 0 if d does not start with '.'.
func fract(d []byte) int {
	if len(d) == 0 || d[0] != '.' {
		return 0
	}
	n := asciiDigits(d[1:])
	return n + 1
}

// exp returns the length of the exponent at the start of d, or 0.
func exp(d []byte) int {
	if len(d) < 2 {
		return 0
	}
	switch d[0] {
	case 'e', 'E':
	default:
		return 0
	}
	i := 1
	switch d[1] {
	case '+', '-':
		i++
	default:
	}
	if i == len(d) {
		return 0
	}
	n := asciiDigits(d[i:])
	if n == 0 {
		return 0
	}
	return n + i
}
