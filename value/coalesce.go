package value

import (
	"cmp"
	"math"
	"slices"

	"github.com/signadot/resval/debug"
)

// Coalesce returns the canonical form of the ranges in existing together
// with those in additional. None of the inputs need be canonical and none
// are modified.
//
// Ranges with Begin > End are not valid input.
func Coalesce(existing Ranges, additional ...Ranges) Ranges {
	n := len(existing)
	for _, rs := range additional {
		n += len(rs)
	}
	work := make([]Range, 0, n)
	work = append(work, existing...)
	for _, rs := range additional {
		work = append(work, rs...)
	}
	return coalesce(work)
}

// coalesce sorts work and compacts it in place to its canonical form,
// returning the compacted prefix.
func coalesce(work []Range) Ranges {
	if debug.Coalesce() {
		debug.Logf("coalesce in %s\n", Ranges(work))
	}
	if len(work) == 0 {
		return Ranges{}
	}
	slices.SortFunc(work, func(a, b Range) int {
		if c := cmp.Compare(a.Begin, b.Begin); c != 0 {
			return c
		}
		return cmp.Compare(a.End, b.End)
	})

	count := 1
	current := work[0]
	for _, r := range work[1:] {
		switch {
		case r == current:
			continue
		case r.Begin == current.Begin && r.End > current.End:
			current.End = r.End
		case r.Begin > current.Begin:
			if adjoins(current, r) {
				current.End = max(current.End, r.End)
				continue
			}
			// count-1 trails the read position, so emitting
			// never clobbers an unread range.
			work[count-1] = current
			count++
			current = r
		}
	}
	if count > len(work) {
		panic("value: coalesced more ranges than were given")
	}
	work[count-1] = current
	res := Ranges(work[:count:count])
	if debug.Coalesce() {
		debug.Logf("coalesce out %s\n", res)
	}
	return res
}

// adjoins reports whether r, which starts after cur does, overlaps or is
// adjacent to cur.
func adjoins(cur, r Range) bool {
	if cur.End == math.MaxUint64 {
		return true
	}
	return r.Begin <= cur.End+1
}
