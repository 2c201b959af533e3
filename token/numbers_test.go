package token

import "testing"

func TestDecimal(t *testing.T) {
	good := []string{
		"0", "3", "3.5", "-3.5", "+2", "5.", ".5", "1e3", "1E+3", "2.5e-10", "007",
	}
	bad := []string{
		"", ".", "-", "+", "e3", "1e", "1e+", "1.2.3", "inf", "NaN", "0x10", "1_000", "3.5x", "hello",
	}
	for _, s := range good {
		if !Decimal(s) {
			t.Errorf("Decimal(%q) = false, want true", s)
		}
	}
	for _, s := range bad {
		if Decimal(s) {
			t.Errorf("Decimal(%q) = true, want false", s)
		}
	}
}

func TestUnsigned(t *testing.T) {
	for s, want := range map[string]bool{
		"0":     true,
		"65535": true,
		"":      false,
		"+1":    false,
		"1.0":   false,
		"a1":    false,
	} {
		if got := Unsigned(s); got != want {
			t.Errorf("Unsigned(%q) = %v, want %v", s, got, want)
		}
	}
}
