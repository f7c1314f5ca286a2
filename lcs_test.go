package jsondelta

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// chars splits a string into a list of one-character string values
func chars(s string) []*Value {
	vs := make([]*Value, 0, len(s))
	for _, r := range s {
		vs = append(vs, FromString(string(r)))
	}
	return vs
}

func numbers(ns ...float64) []*Value {
	vs := make([]*Value, len(ns))
	for i, n := range ns {
		vs[i] = FromNumber(n)
	}
	return vs
}

func pairs(ps ...[2]int) []IndexPair {
	res := make([]IndexPair, len(ps))
	for i, p := range ps {
		res[i] = IndexPair{Left: p[0], Right: p[1]}
	}
	return res
}

func TestLCS(t *testing.T) {
	sameType := func(a, b *Value) bool { return a.Type == b.Type }
	mod3 := func(v *Value) uint64 { return uint64(int(v.Number) % 3) }

	cases := []struct {
		description string
		left, right []*Value
		eq          EqualFunc
		hash        HashFunc
		expect      []IndexPair
	}{
		{"empty right", chars("abcdef"), chars(""), nil, nil, nil},
		{"empty left", chars(""), chars("abcdef"), nil, nil, nil},
		{"same sequences", chars("abcdef"), chars("abcdef"), nil, nil,
			pairs([2]int{0, 0}, [2]int{1, 1}, [2]int{2, 2}, [2]int{3, 3}, [2]int{4, 4}, [2]int{5, 5})},
		{"prefix on the left", chars("abc"), chars("abcdef"), nil, nil,
			pairs([2]int{0, 0}, [2]int{1, 1}, [2]int{2, 2})},
		{"prefix on the right", chars("abcdef"), chars("abc"), nil, nil,
			pairs([2]int{0, 0}, [2]int{1, 1}, [2]int{2, 2})},
		{"totally different", chars("abcdef"), chars("ghijkl"), nil, nil, nil},
		{"subset", chars("abcdef"), chars("bce"), nil, nil,
			pairs([2]int{1, 0}, [2]int{2, 1}, [2]int{4, 2})},
		{"repeated character", chars("abcbdbebf"), chars("bbbb"), nil, nil,
			pairs([2]int{1, 0}, [2]int{3, 1}, [2]int{5, 2}, [2]int{7, 3})},
		{"repeated character transposed", chars("bbbb"), chars("abcbdbebf"), nil, nil,
			pairs([2]int{0, 1}, [2]int{1, 3}, [2]int{2, 5}, [2]int{3, 7})},
		{"two sequences", numbers(1, 2, 3, 4, 5, 6, 7, 8, 9, 10), numbers(1, 4, 5, 11, 6, 7), nil, nil,
			pairs([2]int{0, 0}, [2]int{3, 1}, [2]int{4, 2}, [2]int{5, 4}, [2]int{6, 5})},
		{"custom equals",
			numbers(1, 2, 3, 4, 5),
			[]*Value{FromNumber(6), FromNumber(7), FromString("a"), FromString("b"), FromNumber(8), FromNumber(9), FromNumber(10)},
			sameType, nil,
			pairs([2]int{0, 0}, [2]int{1, 1}, [2]int{2, 4}, [2]int{3, 5}, [2]int{4, 6})},
		{"hash pre-filter", numbers(1, 2, 3, 4, 5, 6, 7, 8, 9, 10), numbers(1, 4, 5, 11, 6, 7), Equal, mod3,
			pairs([2]int{0, 0}, [2]int{3, 1}, [2]int{4, 2}, [2]int{5, 4}, [2]int{6, 5})},
		{"structural hash", []*Value{mustJSON(`{"a":1}`), mustJSON(`[1]`), mustJSON(`"x"`)}, []*Value{mustJSON(`[1]`), mustJSON(`"x"`)}, nil, Hash,
			pairs([2]int{1, 0}, [2]int{2, 1})},
	}

	for _, c := range cases {
		t.Run(c.description, func(t *testing.T) {
			got := LCS(c.left, c.right, c.eq, c.hash)
			if diff := cmp.Diff(c.expect, got, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("result mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// TestLCSMaximal checks match lists are strictly increasing, point at equal
// elements, and are as long as the common part of a minimal Myers diff
func TestLCSMaximal(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))
	dmp := diffmatchpatch.New()
	// no deadline disables the half-match speedup, keeping diffs minimal
	dmp.DiffTimeout = 0

	randRunes := func() []rune {
		rs := make([]rune, rnd.Intn(25))
		for i := range rs {
			rs[i] = rune('a' + rnd.Intn(4))
		}
		return rs
	}
	toValues := func(rs []rune) []*Value {
		return chars(string(rs))
	}

	for k := 0; k < 500; k++ {
		a, b := randRunes(), randRunes()
		left, right := toValues(a), toValues(b)
		got := LCS(left, right, nil, nil)

		for i, p := range got {
			if !Equal(left[p.Left], right[p.Right]) {
				t.Fatalf("%q %q: pair %v matches unequal elements", string(a), string(b), p)
			}
			if i > 0 && (p.Left <= got[i-1].Left || p.Right <= got[i-1].Right) {
				t.Fatalf("%q %q: pairs not strictly increasing: %v", string(a), string(b), got)
			}
		}

		common := 0
		for _, d := range dmp.DiffMainRunes(a, b, false) {
			if d.Type == diffmatchpatch.DiffEqual {
				common += len([]rune(d.Text))
			}
		}
		if len(got) != common {
			t.Fatalf("%q %q: want a common subsequence of length %d, got %d", string(a), string(b), common, len(got))
		}

		if hashed := LCS(left, right, nil, Hash); !cmp.Equal(got, hashed, cmpopts.EquateEmpty()) {
			t.Fatalf("%q %q: hash pre-filter changed the result", string(a), string(b))
		}
	}
}
