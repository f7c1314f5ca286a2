package jsondelta

import (
	"fmt"
	"sort"
)

// Diff computes an edit script that turns left into right. applying the
// result to left with Patch reproduces right. Diff never mutates its inputs
// and always produces a result: anything it can't describe more finely
// becomes a whole-value replace
func Diff(left, right *Value, opts ...DiffOption) Operations {
	cfg := &DiffConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.Equal == nil {
		cfg.Equal = Equal
	}

	d := &diff{cfg: cfg}
	ops := d.diff(left, right, Root)

	if cfg.Stats != nil {
		cfg.Stats.Left = left.Len()
		cfg.Stats.Right = right.Len()
		cfg.Stats.count(ops)
	}
	return ops
}

// DiffConfig are any possible configuration parameters for calculating diffs
type DiffConfig struct {
	// If true arrays are never aligned, any changed array is replaced whole
	OmitArrayDiffs bool
	// If true remove & replace operations carry the value they overwrite
	Remember bool
	// Equal decides when two values are the same, defaults to Equal
	Equal EqualFunc
	// Hash pre-filters array element comparisons, must agree with Equal
	Hash HashFunc
	// Provide a non-nil stats pointer & diff will populate it with data from
	// the diff process
	Stats *Stats
}

// DiffOption is a function that adjust a config, zero or more DiffOptions
// can be passed to the Diff function
type DiffOption func(cfg *DiffConfig)

// OptionOmitArrayDiffs replaces changed arrays whole instead of aligning
// their elements
func OptionOmitArrayDiffs() DiffOption {
	return func(cfg *DiffConfig) {
		cfg.OmitArrayDiffs = true
	}
}

// OptionRemember attaches overwritten values to remove & replace operations
func OptionRemember() DiffOption {
	return func(cfg *DiffConfig) {
		cfg.Remember = true
	}
}

// OptionEqual overrides the equality used to compare values
func OptionEqual(eq EqualFunc) DiffOption {
	return func(cfg *DiffConfig) {
		cfg.Equal = eq
	}
}

// OptionHash sets a hash function used to speed up array alignment. Hash is
// a good choice when using the default equality
func OptionHash(h HashFunc) DiffOption {
	return func(cfg *DiffConfig) {
		cfg.Hash = h
	}
}

// OptionSetStats will set the passed-in stats pointer when Diff is called
func OptionSetStats(st *Stats) DiffOption {
	return func(cfg *DiffConfig) {
		cfg.Stats = st
	}
}

// diff holds configuration for one recursive descent over two trees
type diff struct {
	cfg *DiffConfig
}

func (d *diff) diff(left, right *Value, ptr Pointer) Operations {
	if d.cfg.Equal(left, right) {
		return nil
	}
	if left == nil || right == nil {
		return d.replace(left, right, ptr)
	}

	switch left.Type {
	case ObjectType:
		if right.Type == ObjectType {
			return d.objects(left, right, ptr)
		}
	case ArrayType:
		if right.Type == ArrayType && !d.cfg.OmitArrayDiffs {
			return d.arrays(left.Values, right.Values, ptr)
		}
	case NullType, BoolType, NumberType, StringType:
	default:
		panic(fmt.Sprintf("unexpected value type: %s", left.Type))
	}
	return d.replace(left, right, ptr)
}

func (d *diff) replace(left, right *Value, ptr Pointer) Operations {
	op := &ReplaceOp{Path: ptr, Value: right}
	if d.cfg.Remember {
		op.OldValue = left
	}
	return Operations{op}
}

// objects walks the sorted union of both key sets so output doesn't depend
// on map iteration order
func (d *diff) objects(left, right *Value, ptr Pointer) (ops Operations) {
	keys := make([]string, 0, len(left.Fields)+len(right.Fields))
	for key := range left.Fields {
		keys = append(keys, key)
	}
	for key := range right.Fields {
		if _, ok := left.Fields[key]; !ok {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)

	for _, key := range keys {
		lv, inLeft := left.Fields[key]
		rv, inRight := right.Fields[key]
		switch {
		case inLeft && inRight:
			ops = append(ops, d.diff(lv, rv, ptr.Append(key))...)
		case inLeft:
			op := &RemoveOp{Path: ptr.Append(key)}
			if d.cfg.Remember {
				op.OldValue = lv
			}
			ops = append(ops, op)
		default:
			ops = append(ops, &AddOp{Path: ptr.Append(key), Value: rv})
		}
	}
	return ops
}

// arrays aligns two element lists on their longest common subsequence and
// describes each gap between matched elements. pos tracks where the next
// unconsumed left element sits in the array as edited so far, which is its
// original index plus the net count of inserted elements
func (d *diff) arrays(left, right []*Value, ptr Pointer) (ops Operations) {
	var (
		pairs = LCS(left, right, d.cfg.Equal, d.cfg.Hash)
		li    = 0
		ri    = 0
		pos   = 0
	)

	for _, p := range pairs {
		var gap Operations
		gap, pos = d.gap(left[li:p.Left], right[ri:p.Right], ptr, pos, false)
		ops = append(ops, gap...)
		li, ri = p.Left+1, p.Right+1
		pos++
	}

	gap, _ := d.gap(left[li:], right[ri:], ptr, pos, true)
	return append(ops, gap...)
}

// gap describes the unmatched runs ls & rs found between two matched pairs,
// or after the last one when tail is true. paired positions are diffed in
// place first, then leftover left elements are removed as one burst (highest
// index first, so the trailing ones keep their positions) or leftover right
// elements are added as one burst in order. at the tail adds append with "-".
// gap returns the position following the run
func (d *diff) gap(ls, rs []*Value, ptr Pointer, pos int, tail bool) (Operations, int) {
	var ops Operations

	n := min(len(ls), len(rs))
	for k := 0; k < n; k++ {
		ops = append(ops, d.diff(ls[k], rs[k], ptr.AppendIndex(pos))...)
		pos++
	}

	for k := len(ls) - 1; k >= n; k-- {
		op := &RemoveOp{Path: ptr.AppendIndex(pos + k - n)}
		if d.cfg.Remember {
			op.OldValue = ls[k]
		}
		ops = append(ops, op)
	}

	for _, rv := range rs[n:] {
		at := ptr.AppendIndex(pos)
		if tail {
			at = ptr.Append(AppendFragment)
		}
		ops = append(ops, &AddOp{Path: at, Value: rv})
		pos++
	}
	return ops, pos
}
