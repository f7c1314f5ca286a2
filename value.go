package jsondelta

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"
)

// Type defines all of the atoms in our universe, or the kinds of data we
// will encounter while diffing and patching
type Type uint8

const (
	// NullType is the absence of a value
	NullType Type = iota
	// BoolType is true or false
	BoolType
	// NumberType is any finite or non-finite float64
	NumberType
	// StringType is a string
	StringType
	// ArrayType is an ordered sequence of values
	ArrayType
	// ObjectType is a dictionary of key / value pairs, key order is irrelevant
	ObjectType
)

func (t Type) String() string {
	switch t {
	case NullType:
		return "Null"
	case BoolType:
		return "Bool"
	case NumberType:
		return "Number"
	case StringType:
		return "String"
	case ArrayType:
		return "Array"
	case ObjectType:
		return "Object"
	default:
		return "Unknown"
	}
}

// Value is a node in a document tree. Type selects which of the remaining
// fields carries data, all others are zero.
type Value struct {
	Type Type

	Bool   bool
	Number float64
	String string

	// Values holds array elements
	Values []*Value
	// Fields holds object members
	Fields map[string]*Value
}

// Null returns a new null value
func Null() *Value { return &Value{Type: NullType} }

// FromBool wraps a bool
func FromBool(b bool) *Value { return &Value{Type: BoolType, Bool: b} }

// FromNumber wraps a float64
func FromNumber(f float64) *Value { return &Value{Type: NumberType, Number: f} }

// FromString wraps a string
func FromString(s string) *Value { return &Value{Type: StringType, String: s} }

// FromSlice creates an array value. the slice is used as-is, not copied
func FromSlice(vs []*Value) *Value {
	if vs == nil {
		vs = []*Value{}
	}
	return &Value{Type: ArrayType, Values: vs}
}

// FromMap creates an object value. the map is used as-is, not copied
func FromMap(m map[string]*Value) *Value {
	if m == nil {
		m = map[string]*Value{}
	}
	return &Value{Type: ObjectType, Fields: m}
}

// FromInterface converts the go types created by unmarshaling JSON or YAML
// into a value tree:
//
//	map[string]interface{}, map[interface{}]interface{} (string keys only)
//	[]interface{}
//	string, bool, nil, json.Number & every int, uint & float width
//
// any other type is an ErrUnsupportedValue
func FromInterface(v interface{}) (*Value, error) {
	switch x := v.(type) {
	case nil:
		return Null(), nil
	case *Value:
		if x == nil {
			return Null(), nil
		}
		return x.Clone(), nil
	case bool:
		return FromBool(x), nil
	case string:
		return FromString(x), nil
	case float64:
		return FromNumber(x), nil
	case float32:
		return FromNumber(float64(x)), nil
	case int:
		return FromNumber(float64(x)), nil
	case int8:
		return FromNumber(float64(x)), nil
	case int16:
		return FromNumber(float64(x)), nil
	case int32:
		return FromNumber(float64(x)), nil
	case int64:
		return FromNumber(float64(x)), nil
	case uint:
		return FromNumber(float64(x)), nil
	case uint8:
		return FromNumber(float64(x)), nil
	case uint16:
		return FromNumber(float64(x)), nil
	case uint32:
		return FromNumber(float64(x)), nil
	case uint64:
		return FromNumber(float64(x)), nil
	case json.Number:
		f, err := x.Float64()
		if err != nil {
			return nil, fmt.Errorf("%w: number %q: %w", ErrUnsupportedValue, x, err)
		}
		if !exactInteger(string(x), f) {
			return nil, fmt.Errorf("%w: integer %s can't be represented exactly", ErrUnsupportedValue, x)
		}
		return FromNumber(f), nil
	case []interface{}:
		vs := make([]*Value, len(x))
		for i, el := range x {
			val, err := FromInterface(el)
			if err != nil {
				return nil, fmt.Errorf("index %d: %w", i, err)
			}
			vs[i] = val
		}
		return FromSlice(vs), nil
	case map[string]interface{}:
		fields := make(map[string]*Value, len(x))
		for key, el := range x {
			val, err := FromInterface(el)
			if err != nil {
				return nil, fmt.Errorf("key %q: %w", key, err)
			}
			fields[key] = val
		}
		return FromMap(fields), nil
	case map[interface{}]interface{}:
		fields := make(map[string]*Value, len(x))
		for k, el := range x {
			key, ok := k.(string)
			if !ok {
				return nil, fmt.Errorf("%w: non-string object key %v (%T)", ErrUnsupportedValue, k, k)
			}
			val, err := FromInterface(el)
			if err != nil {
				return nil, fmt.Errorf("key %q: %w", key, err)
			}
			fields[key] = val
		}
		return FromMap(fields), nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedValue, v)
	}
}

// MustFromInterface is FromInterface for literals known to be valid. it panics
// on error
func MustFromInterface(v interface{}) *Value {
	val, err := FromInterface(v)
	if err != nil {
		panic(err)
	}
	return val
}

// Interface converts a value tree back into generic go types, the inverse of
// FromInterface. numbers come back as float64
func (v *Value) Interface() interface{} {
	if v == nil {
		return nil
	}
	switch v.Type {
	case NullType:
		return nil
	case BoolType:
		return v.Bool
	case NumberType:
		return v.Number
	case StringType:
		return v.String
	case ArrayType:
		res := make([]interface{}, len(v.Values))
		for i, el := range v.Values {
			res[i] = el.Interface()
		}
		return res
	case ObjectType:
		res := make(map[string]interface{}, len(v.Fields))
		for key, el := range v.Fields {
			res[key] = el.Interface()
		}
		return res
	default:
		panic(fmt.Sprintf("unexpected value type: %s", v.Type))
	}
}

// Clone returns a deep copy of v. nil clones to nil
func (v *Value) Clone() *Value {
	if v == nil {
		return nil
	}
	switch v.Type {
	case NullType, BoolType, NumberType, StringType:
		cp := *v
		cp.Values, cp.Fields = nil, nil
		return &cp
	case ArrayType:
		vs := make([]*Value, len(v.Values))
		for i, el := range v.Values {
			vs[i] = el.Clone()
		}
		return FromSlice(vs)
	case ObjectType:
		fields := make(map[string]*Value, len(v.Fields))
		for key, el := range v.Fields {
			fields[key] = el.Clone()
		}
		return FromMap(fields)
	default:
		panic(fmt.Sprintf("unexpected value type: %s", v.Type))
	}
}

// Keys returns the sorted keys of an object value, nil for any other type
func (v *Value) Keys() []string {
	if v == nil || v.Type != ObjectType {
		return nil
	}
	keys := make([]string, 0, len(v.Fields))
	for key := range v.Fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Len counts the nodes in a value tree, including v itself
func (v *Value) Len() int {
	if v == nil {
		return 0
	}
	n := 1
	switch v.Type {
	case ArrayType:
		for _, el := range v.Values {
			n += el.Len()
		}
	case ObjectType:
		for _, el := range v.Fields {
			n += el.Len()
		}
	}
	return n
}

// MarshalJSON implements json.Marshaler. numbers that JSON can't represent
// (NaN, ±Inf) are an ErrUnsupportedValue
func (v *Value) MarshalJSON() ([]byte, error) {
	if err := checkFinite(v); err != nil {
		return nil, err
	}
	return json.Marshal(v.Interface())
}

func checkFinite(v *Value) error {
	if v == nil {
		return nil
	}
	switch v.Type {
	case NumberType:
		if math.IsNaN(v.Number) || math.IsInf(v.Number, 0) {
			return fmt.Errorf("%w: number %v", ErrUnsupportedValue, v.Number)
		}
	case ArrayType:
		for _, el := range v.Values {
			if err := checkFinite(el); err != nil {
				return err
			}
		}
	case ObjectType:
		for _, el := range v.Fields {
			if err := checkFinite(el); err != nil {
				return err
			}
		}
	}
	return nil
}

// exactInteger is false when lit is an integer literal that f, its parsed
// float64, doesn't hold exactly. fractions & exponents always round, so
// they're accepted as parsed
func exactInteger(lit string, f float64) bool {
	if strings.ContainsAny(lit, ".eE") {
		return true
	}
	i, err := strconv.ParseInt(lit, 10, 64)
	if err != nil {
		return false
	}
	// float64(math.MaxInt64) rounds up to 2^63, which int64 can't hold
	if f >= math.MaxInt64 || f < math.MinInt64 {
		return false
	}
	return int64(f) == i
}

// UnmarshalJSON implements json.Unmarshaler. numbers are float64, integers
// a float64 can't hold exactly (beyond ±2^53, mostly) are an
// ErrUnsupportedValue rather than silently rounded
func (v *Value) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw interface{}
	if err := dec.Decode(&raw); err != nil {
		return err
	}
	if _, err := dec.Token(); err != io.EOF {
		return fmt.Errorf("invalid character after top-level value")
	}
	val, err := FromInterface(raw)
	if err != nil {
		return err
	}
	*v = *val
	return nil
}

// ParseJSON decodes a JSON document into a value tree
func ParseJSON(data []byte) (*Value, error) {
	v := &Value{}
	if err := v.UnmarshalJSON(data); err != nil {
		return nil, err
	}
	return v, nil
}

// ParseYAML decodes a YAML document into a value tree. YAML is a superset of
// JSON, so this accepts JSON as well
func ParseYAML(data []byte) (*Value, error) {
	var raw interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	return FromInterface(raw)
}

// MarshalYAML encodes a value tree as YAML with sorted object keys
func MarshalYAML(v *Value) ([]byte, error) {
	if err := checkFinite(v); err != nil {
		return nil, err
	}
	return yaml.Marshal(yamlSorted(v))
}

// yamlSorted builds a go-yaml MapSlice tree so object keys encode in sorted
// order regardless of map iteration
func yamlSorted(v *Value) interface{} {
	if v == nil {
		return nil
	}
	switch v.Type {
	case NullType:
		return nil
	case BoolType:
		return v.Bool
	case NumberType:
		return v.Number
	case StringType:
		return v.String
	case ArrayType:
		res := make([]interface{}, len(v.Values))
		for i, el := range v.Values {
			res[i] = yamlSorted(el)
		}
		return res
	case ObjectType:
		res := make(yaml.MapSlice, 0, len(v.Fields))
		for _, key := range v.Keys() {
			res = append(res, yaml.MapItem{Key: key, Value: yamlSorted(v.Fields[key])})
		}
		return res
	default:
		panic(fmt.Sprintf("unexpected value type: %s", v.Type))
	}
}
