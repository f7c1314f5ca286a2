package jsondelta

import "fmt"

// EqualFunc reports whether two values should be considered the same
type EqualFunc func(a, b *Value) bool

// Equal is a deep, structural comparison of two value trees. Arrays are
// compared in order, objects by key set and member values. Two NaN numbers
// are equal to each other. Equal is the default EqualFunc for Diff, LCS and
// Patch
func Equal(a, b *Value) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil || a.Type != b.Type {
		return false
	}

	switch a.Type {
	case NullType:
		return true
	case BoolType:
		return a.Bool == b.Bool
	case NumberType:
		return a.Number == b.Number || (a.Number != a.Number && b.Number != b.Number)
	case StringType:
		return a.String == b.String
	case ArrayType:
		if len(a.Values) != len(b.Values) {
			return false
		}
		for i := range a.Values {
			if !Equal(a.Values[i], b.Values[i]) {
				return false
			}
		}
		return true
	case ObjectType:
		if len(a.Fields) != len(b.Fields) {
			return false
		}
		for key, av := range a.Fields {
			bv, ok := b.Fields[key]
			if !ok || !Equal(av, bv) {
				return false
			}
		}
		return true
	default:
		panic(fmt.Sprintf("unexpected value type: %s", a.Type))
	}
}
