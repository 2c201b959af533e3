package value

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func rs(pairs ...uint64) Ranges {
	res := make(Ranges, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		res = append(res, Range{Begin: pairs[i], End: pairs[i+1]})
	}
	return res
}

func TestCoalesce(t *testing.T) {
	tests := []struct {
		name       string
		existing   Ranges
		additional []Ranges
		want       Ranges
	}{
		{"empty", nil, nil, nil},
		{"empty additional", nil, []Ranges{nil, {}}, nil},
		{"single", rs(3, 7), nil, rs(3, 7)},
		{"point", rs(5, 5), nil, rs(5, 5)},
		{"sorted disjoint", rs(1, 2, 5, 6), nil, rs(1, 2, 5, 6)},
		{"unsorted", rs(5, 6, 1, 2), nil, rs(1, 2, 5, 6)},
		{"duplicates", rs(1, 2, 1, 2, 1, 2), nil, rs(1, 2)},
		{"same begin", rs(1, 2, 1, 9, 1, 4), nil, rs(1, 9)},
		{"overlap", rs(1, 5, 3, 8), nil, rs(1, 8)},
		{"adjacent", rs(1, 3, 4, 6), nil, rs(1, 6)},
		{"contained", rs(1, 10, 3, 4), nil, rs(1, 10)},
		{"gap of one", rs(1, 3, 5, 6), nil, rs(1, 3, 5, 6)},
		{"chain", rs(7, 9, 1, 2, 3, 4, 5, 6), nil, rs(1, 9)},
		{"additional", rs(1, 2), []Ranges{rs(3, 4), rs(10, 12, 11, 20)}, rs(1, 4, 10, 20)},
		{"max", rs(math.MaxUint64-1, math.MaxUint64, 0, 0), []Ranges{rs(math.MaxUint64, math.MaxUint64)},
			rs(0, 0, math.MaxUint64-1, math.MaxUint64)},
		{"after max end", rs(10, math.MaxUint64, 20, 30), nil, rs(10, math.MaxUint64)},
		{"full", rs(0, 100, 101, math.MaxUint64), nil, rs(0, math.MaxUint64)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Coalesce(tt.existing, tt.additional...)
			if diff := cmp.Diff(tt.want, got, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("Coalesce mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCoalesceDoesNotModifyInputs(t *testing.T) {
	a := rs(5, 6, 1, 2)
	b := rs(3, 4)
	_ = Coalesce(a, b)
	if diff := cmp.Diff(rs(5, 6, 1, 2), a); diff != "" {
		t.Errorf("existing modified (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(rs(3, 4), b); diff != "" {
		t.Errorf("additional modified (-want +got):\n%s", diff)
	}
}

func TestCoalesceInPlace(t *testing.T) {
	r := rs(8, 9, 1, 3)
	r.Coalesce(rs(4, 7))
	if diff := cmp.Diff(rs(1, 9), r); diff != "" {
		t.Errorf("Coalesce mismatch (-want +got):\n%s", diff)
	}
	r.CoalesceRange(Range{Begin: 20, End: 20})
	if diff := cmp.Diff(rs(1, 9, 20, 20), r); diff != "" {
		t.Errorf("CoalesceRange mismatch (-want +got):\n%s", diff)
	}
}

// coverage returns the integers in [0, 64) covered by r as a bitmask.
func coverage(r Ranges) uint64 {
	var m uint64
	for _, rg := range r {
		for i := rg.Begin; i <= rg.End && i < 64; i++ {
			m |= 1 << i
		}
	}
	return m
}

func canonical(r Ranges) bool {
	for i, rg := range r {
		if rg.Begin > rg.End {
			return false
		}
		if i > 0 && r[i-1].End+1 >= rg.Begin {
			return false
		}
	}
	return true
}

func randomRanges(rng *rand.Rand) Ranges {
	n := rng.IntN(12)
	res := make(Ranges, n)
	for i := range res {
		b := rng.Uint64N(60)
		res[i] = Range{Begin: b, End: b + rng.Uint64N(64-b)}
	}
	return res
}

func TestCoalesceProperties(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 2000; i++ {
		in := randomRanges(rng)
		got := Coalesce(in)
		if len(got) > len(in) {
			t.Fatalf("Coalesce(%s) = %s has more ranges than its input", in, got)
		}
		if !canonical(got) {
			t.Fatalf("Coalesce(%s) = %s is not canonical", in, got)
		}
		if coverage(got) != coverage(in) {
			t.Fatalf("Coalesce(%s) = %s changes coverage", in, got)
		}
		if again := Coalesce(got); !cmp.Equal(got, again, cmpopts.EquateEmpty()) {
			t.Fatalf("Coalesce not idempotent: %s then %s", got, again)
		}
		perm := append(Ranges{}, in...)
		rng.Shuffle(len(perm), func(i, j int) { perm[i], perm[j] = perm[j], perm[i] })
		if other := Coalesce(perm); !cmp.Equal(got, other, cmpopts.EquateEmpty()) {
			t.Fatalf("Coalesce depends on order: %s vs %s", got, other)
		}
	}
}
