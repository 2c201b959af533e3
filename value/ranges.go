package value

import (
	"slices"
	"strconv"
	"strings"
)

// Range is an inclusive interval [Begin, End].
type Range struct {
	Begin uint64 `json:"begin" yaml:"begin"`
	End   uint64 `json:"end" yaml:"end"`
}

// Contains reports whether o lies entirely within r.
func (r Range) Contains(o Range) bool {
	return o.Begin >= r.Begin && o.End <= r.End
}

func (r Range) String() string {
	return strconv.FormatUint(r.Begin, 10) + "-" + strconv.FormatUint(r.End, 10)
}

type Ranges []Range

// Coalesce replaces r with the canonical form of r and additional.
func (r *Ranges) Coalesce(additional ...Ranges) {
	*r = Coalesce(*r, additional...)
}

// CoalesceRange replaces r with the canonical form of r and rg.
func (r *Ranges) CoalesceRange(rg Range) {
	*r = Coalesce(*r, Ranges{rg})
}

// Remove removes the integers of rm from r and leaves r canonical.
// r is expected to be canonical already.
func (r *Ranges) Remove(rm Range) {
	work := make([]Range, 0, len(*r)+1)
	for _, rg := range *r {
		switch {
		case rm.Contains(rg):
			continue
		case rg.End < rm.Begin || rg.Begin > rm.End:
			work = append(work, rg)
		case rg.Begin < rm.Begin && rg.End > rm.End:
			work = append(work,
				Range{Begin: rg.Begin, End: rm.Begin - 1},
				Range{Begin: rm.End + 1, End: rg.End})
		case rg.End > rm.End:
			// rm covers the front of rg
			work = append(work, Range{Begin: rm.End + 1, End: rg.End})
		default:
			// rm covers the back of rg
			work = append(work, Range{Begin: rg.Begin, End: rm.Begin - 1})
		}
	}
	*r = coalesce(work)
}

// Plus returns the canonical union of r and o.
func (r Ranges) Plus(o Ranges) Ranges {
	return Coalesce(r, o)
}

// Minus returns the canonical form of r without the integers in o.
func (r Ranges) Minus(o Ranges) Ranges {
	res := Coalesce(r)
	res.Subtract(o)
	return res
}

// Add coalesces o into r.
func (r *Ranges) Add(o Ranges) {
	r.Coalesce(o)
}

// Subtract removes each range of o from r, leaving r canonical.
func (r *Ranges) Subtract(o Ranges) {
	r.Coalesce()
	for _, rm := range o {
		r.Remove(rm)
	}
}

// Equal reports whether r and o cover the same integers.
func (r Ranges) Equal(o Ranges) bool {
	// canonical forms are unique and sorted
	return slices.Equal(Coalesce(r), Coalesce(o))
}

// SubsetOf reports whether every canonical range of r lies within a single
// canonical range of o.
func (r Ranges) SubsetOf(o Ranges) bool {
	left, right := Coalesce(r), Coalesce(o)
	for _, l := range left {
		if !slices.ContainsFunc(right, func(c Range) bool { return c.Contains(l) }) {
			return false
		}
	}
	return true
}

// Len returns the number of integers covered by r, which must be canonical.
// The count saturates at the maximum uint64.
func (r Ranges) Len() uint64 {
	var n uint64
	for _, rg := range r {
		w := rg.End - rg.Begin + 1
		if w == 0 || n+w < n {
			return ^uint64(0)
		}
		n += w
	}
	return n
}

func (r Ranges) String() string {
	buf := &strings.Builder{}
	buf.WriteByte('[')
	for i, rg := range r {
		if i != 0 {
			buf.WriteString(", ")
		}
		buf.WriteString(rg.String())
	}
	buf.WriteByte(']')
	return buf.String()
}
