package jsondelta

import (
	"fmt"
	"strconv"
	"strings"
)

// Pointer addresses one location in a value tree. it's a sequence of
// fragments, each prefixed with "/" and escaped. the empty pointer is the
// root. format follows IETF JSON pointers, outlined in
// RFC 6901: https://tools.ietf.org/html/rfc6901
type Pointer string

const (
	// Root is the pointer to the whole document
	Root = Pointer("")
	// AppendFragment addresses the position after the last element of an array
	AppendFragment = "-"
)

// Escape encodes a fragment: "~" becomes "~0", then "/" becomes "~1". the
// two passes are independent literal replacements so "~1" in the input comes
// out as "~01", never "/"
func Escape(fragment string) string {
	fragment = strings.ReplaceAll(fragment, "~", "~0")
	return strings.ReplaceAll(fragment, "/", "~1")
}

// Unescape reverses Escape, replacing "~1" before "~0"
func Unescape(fragment string) string {
	fragment = strings.ReplaceAll(fragment, "~1", "/")
	return strings.ReplaceAll(fragment, "~0", "~")
}

// Append adds an unescaped fragment to the end of p
func (p Pointer) Append(fragment string) Pointer {
	return p + "/" + Pointer(Escape(fragment))
}

// AppendIndex adds an array index to the end of p
func (p Pointer) AppendIndex(i int) Pointer {
	return p + "/" + Pointer(strconv.Itoa(i))
}

// IsRoot is true for the empty pointer
func (p Pointer) IsRoot() bool { return p == Root }

// Decode splits p into unescaped fragments. the root decodes to an empty
// slice
func (p Pointer) Decode() ([]string, error) {
	if p == Root {
		return []string{}, nil
	}
	if p[0] != '/' {
		return nil, fmt.Errorf("%w: %q must be empty or begin with '/'", ErrInvalidPointer, string(p))
	}
	frags := strings.Split(string(p[1:]), "/")
	for i, f := range frags {
		frags[i] = Unescape(f)
	}
	return frags, nil
}

// Encode joins unescaped fragments into a pointer, the inverse of Decode
func Encode(fragments []string) Pointer {
	var sb strings.Builder
	for _, f := range fragments {
		sb.WriteByte('/')
		sb.WriteString(Escape(f))
	}
	return Pointer(sb.String())
}

// Parent splits p into the pointer to its parent and its last fragment.
// ok is false for the root and for malformed pointers
func (p Pointer) Parent() (parent Pointer, last string, ok bool) {
	frags, err := p.Decode()
	if err != nil || len(frags) == 0 {
		return Root, "", false
	}
	return Encode(frags[:len(frags)-1]), frags[len(frags)-1], true
}

// Get resolves p against v
func (p Pointer) Get(v *Value) (*Value, bool) {
	frags, err := p.Decode()
	if err != nil {
		return nil, false
	}
	return resolve(v, frags)
}

// Exists is true if p resolves to a value in v
func (p Pointer) Exists(v *Value) bool {
	_, ok := p.Get(v)
	return ok
}

// Add sets newValue at p. for objects the key is created or overwritten. for
// arrays newValue is inserted before the element at the index, shifting later
// elements right, and "-" or an index equal to the length appends. Add
// reports false if the parent of p doesn't exist, can't hold children, or the
// index is out of range. the root can't be added to, it has no parent
func (p Pointer) Add(v, newValue *Value) bool {
	frags, err := p.Decode()
	if err != nil || len(frags) == 0 {
		return false
	}
	parent, ok := resolve(v, frags[:len(frags)-1])
	if !ok {
		return false
	}
	last := frags[len(frags)-1]

	switch parent.Type {
	case ObjectType:
		if parent.Fields == nil {
			parent.Fields = map[string]*Value{}
		}
		parent.Fields[last] = newValue
		return true
	case ArrayType:
		l := len(parent.Values)
		i := l
		if last != AppendFragment {
			if i, ok = parseIndex(last); !ok || i > l {
				return false
			}
		}
		parent.Values = append(parent.Values, nil)
		copy(parent.Values[i+1:], parent.Values[i:l])
		parent.Values[i] = newValue
		return true
	case NullType, BoolType, NumberType, StringType:
		return false
	default:
		panic(fmt.Sprintf("unexpected value type: %s", parent.Type))
	}
}

// Remove deletes the value at p. Remove reports false if nothing exists at p.
// "-" never names an element. the root can't be removed, it has no parent
func (p Pointer) Remove(v *Value) bool {
	frags, err := p.Decode()
	if err != nil || len(frags) == 0 {
		return false
	}
	parent, ok := resolve(v, frags[:len(frags)-1])
	if !ok {
		return false
	}
	last := frags[len(frags)-1]

	switch parent.Type {
	case ObjectType:
		if _, ok := parent.Fields[last]; !ok {
			return false
		}
		delete(parent.Fields, last)
		return true
	case ArrayType:
		l := len(parent.Values)
		i, ok := parseIndex(last)
		if !ok || i >= l {
			return false
		}
		copy(parent.Values[i:], parent.Values[i+1:])
		parent.Values[l-1] = nil
		parent.Values = parent.Values[:l-1]
		return true
	case NullType, BoolType, NumberType, StringType:
		return false
	default:
		panic(fmt.Sprintf("unexpected value type: %s", parent.Type))
	}
}

func resolve(v *Value, frags []string) (*Value, bool) {
	for _, f := range frags {
		if v == nil {
			return nil, false
		}
		switch v.Type {
		case ObjectType:
			child, ok := v.Fields[f]
			if !ok {
				return nil, false
			}
			v = child
		case ArrayType:
			i, ok := parseIndex(f)
			if !ok || i >= len(v.Values) {
				return nil, false
			}
			v = v.Values[i]
		case NullType, BoolType, NumberType, StringType:
			return nil, false
		default:
			panic(fmt.Sprintf("unexpected value type: %s", v.Type))
		}
	}
	return v, v != nil
}

// parseIndex accepts only canonical array indices: decimal digits without a
// sign or leading zeros
func parseIndex(f string) (int, bool) {
	if f == "" || len(f) > 1 && f[0] == '0' {
		return 0, false
	}
	for i := 0; i < len(f); i++ {
		if f[i] < '0' || f[i] > '9' {
			return 0, false
		}
	}
	i, err := strconv.Atoi(f)
	if err != nil {
		return 0, false
	}
	return i, true
}
