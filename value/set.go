package value

import (
	"slices"
	"strings"
)

type Set []string

// Plus returns the items of s followed by the items of o not already
// present, in first seen order.
func (s Set) Plus(o Set) Set {
	res := slices.Clone(s)
	res.Add(o)
	return res
}

// Minus returns the items of s which do not occur in o.
func (s Set) Minus(o Set) Set {
	res := make(Set, 0, len(s))
	for _, item := range s {
		if !slices.Contains(o, item) {
			res = append(res, item)
		}
	}
	return res
}

// Add appends the items of o not already in s.
func (s *Set) Add(o Set) {
	for _, item := range o {
		if !slices.Contains(*s, item) {
			*s = append(*s, item)
		}
	}
}

// Subtract removes, for each item of o, the first matching item of s.
func (s *Set) Subtract(o Set) {
	for _, item := range o {
		if i := slices.Index(*s, item); i >= 0 {
			*s = slices.Delete(*s, i, i+1)
		}
	}
}

// Equal reports whether s and o have the same number of items and every
// item of s occurs somewhere in o.
func (s Set) Equal(o Set) bool {
	if len(s) != len(o) {
		return false
	}
	return s.SubsetOf(o)
}

// SubsetOf reports whether every item of s occurs in o.
func (s Set) SubsetOf(o Set) bool {
	for _, item := range s {
		if !slices.Contains(o, item) {
			return false
		}
	}
	return true
}

func (s Set) String() string {
	return "{" + strings.Join(s, ", ") + "}"
}
