package jsondelta

import (
	"encoding/json"
	"fmt"
)

// OpKind names the type of an operation, using RFC 6902 op names
type OpKind string

const (
	// OpAdd inserts a value into an array or sets an object member
	OpAdd = OpKind("add")
	// OpRemove deletes the value at a path
	OpRemove = OpKind("remove")
	// OpReplace is a remove followed by an add at the same path
	OpReplace = OpKind("replace")
	// OpMove removes the value at from and adds it at path
	OpMove = OpKind("move")
	// OpCopy adds a deep copy of the value at from to path
	OpCopy = OpKind("copy")
	// OpTest asserts the value at path equals a value
	OpTest = OpKind("test")
)

// Operation is a single edit to a value tree. concrete types are *AddOp,
// *RemoveOp, *ReplaceOp, *MoveOp, *CopyOp and *TestOp
type Operation interface {
	Kind() OpKind
	// Target is the pointer this operation writes to or tests
	Target() Pointer
}

// AddOp sets Value at Path
type AddOp struct {
	Path  Pointer
	Value *Value
}

// RemoveOp deletes the value at Path. OldValue is only set by Diff when
// remembering, it's the value removed
type RemoveOp struct {
	Path     Pointer
	OldValue *Value
}

// ReplaceOp swaps the value at Path for Value. OldValue is only set by Diff
// when remembering, it's the value replaced
type ReplaceOp struct {
	Path     Pointer
	Value    *Value
	OldValue *Value
}

// MoveOp relocates the value at From to Path
type MoveOp struct {
	Path Pointer
	From Pointer
}

// CopyOp duplicates the value at From to Path
type CopyOp struct {
	Path Pointer
	From Pointer
}

// TestOp checks the value at Path equals Value
type TestOp struct {
	Path  Pointer
	Value *Value
}

func (*AddOp) Kind() OpKind     { return OpAdd }
func (*RemoveOp) Kind() OpKind  { return OpRemove }
func (*ReplaceOp) Kind() OpKind { return OpReplace }
func (*MoveOp) Kind() OpKind    { return OpMove }
func (*CopyOp) Kind() OpKind    { return OpCopy }
func (*TestOp) Kind() OpKind    { return OpTest }

func (o *AddOp) Target() Pointer     { return o.Path }
func (o *RemoveOp) Target() Pointer  { return o.Path }
func (o *ReplaceOp) Target() Pointer { return o.Path }
func (o *MoveOp) Target() Pointer    { return o.Path }
func (o *CopyOp) Target() Pointer    { return o.Path }
func (o *TestOp) Target() Pointer    { return o.Path }

// wireOp is the JSON shape of every operation:
//
//	{"op": "add", "path": "/a", "value": 1, "from": "/b", "oldValue": 0}
//
// value and oldValue stay raw while decoding so an explicit null can be told
// apart from a missing member
type wireOp struct {
	Op       OpKind          `json:"op"`
	Path     *Pointer        `json:"path"`
	Value    json.RawMessage `json:"value,omitempty"`
	From     *Pointer        `json:"from,omitempty"`
	OldValue json.RawMessage `json:"oldValue,omitempty"`
}

func marshalWire(kind OpKind, path Pointer, from *Pointer, value, oldValue *Value, needValue bool) ([]byte, error) {
	w := wireOp{Op: kind, Path: &path, From: from}
	if needValue {
		if value == nil {
			value = Null()
		}
		data, err := value.MarshalJSON()
		if err != nil {
			return nil, fmt.Errorf("%s %s: %w", kind, path, err)
		}
		w.Value = data
	}
	if oldValue != nil {
		data, err := oldValue.MarshalJSON()
		if err != nil {
			return nil, fmt.Errorf("%s %s: %w", kind, path, err)
		}
		w.OldValue = data
	}
	return json.Marshal(w)
}

// MarshalJSON implements a custom JSON Marshaller
func (o *AddOp) MarshalJSON() ([]byte, error) {
	return marshalWire(OpAdd, o.Path, nil, o.Value, nil, true)
}

// MarshalJSON implements a custom JSON Marshaller
func (o *RemoveOp) MarshalJSON() ([]byte, error) {
	return marshalWire(OpRemove, o.Path, nil, nil, o.OldValue, false)
}

// MarshalJSON implements a custom JSON Marshaller
func (o *ReplaceOp) MarshalJSON() ([]byte, error) {
	return marshalWire(OpReplace, o.Path, nil, o.Value, o.OldValue, true)
}

// MarshalJSON implements a custom JSON Marshaller
func (o *MoveOp) MarshalJSON() ([]byte, error) {
	from := o.From
	return marshalWire(OpMove, o.Path, &from, nil, nil, false)
}

// MarshalJSON implements a custom JSON Marshaller
func (o *CopyOp) MarshalJSON() ([]byte, error) {
	from := o.From
	return marshalWire(OpCopy, o.Path, &from, nil, nil, false)
}

// MarshalJSON implements a custom JSON Marshaller
func (o *TestOp) MarshalJSON() ([]byte, error) {
	return marshalWire(OpTest, o.Path, nil, o.Value, nil, true)
}

// Operations is an ordered edit script
type Operations []Operation

// UnmarshalJSON decodes a JSON patch document into concrete operations
func (ops *Operations) UnmarshalJSON(data []byte) error {
	var wire []wireOp
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	res := make(Operations, len(wire))
	for i, w := range wire {
		op, err := w.operation()
		if err != nil {
			return fmt.Errorf("operation %d: %w", i, err)
		}
		res[i] = op
	}
	*ops = res
	return nil
}

// ParseOperations decodes a JSON patch document
func ParseOperations(data []byte) (Operations, error) {
	var ops Operations
	if err := json.Unmarshal(data, &ops); err != nil {
		return nil, err
	}
	return ops, nil
}

func (w wireOp) operation() (Operation, error) {
	if w.Path == nil {
		return nil, fmt.Errorf("%w: %q is missing path", ErrInvalidOperation, w.Op)
	}
	path := *w.Path

	value := func() (*Value, error) {
		if w.Value == nil {
			return nil, fmt.Errorf("%w: %s %s is missing value", ErrInvalidOperation, w.Op, path)
		}
		return ParseJSON(w.Value)
	}
	oldValue := func() (*Value, error) {
		if w.OldValue == nil {
			return nil, nil
		}
		return ParseJSON(w.OldValue)
	}
	from := func() (Pointer, error) {
		if w.From == nil {
			return "", fmt.Errorf("%w: %s %s is missing from", ErrInvalidOperation, w.Op, path)
		}
		return *w.From, nil
	}

	switch w.Op {
	case OpAdd:
		v, err := value()
		if err != nil {
			return nil, err
		}
		return &AddOp{Path: path, Value: v}, nil
	case OpRemove:
		old, err := oldValue()
		if err != nil {
			return nil, err
		}
		return &RemoveOp{Path: path, OldValue: old}, nil
	case OpReplace:
		v, err := value()
		if err != nil {
			return nil, err
		}
		old, err := oldValue()
		if err != nil {
			return nil, err
		}
		return &ReplaceOp{Path: path, Value: v, OldValue: old}, nil
	case OpMove:
		f, err := from()
		if err != nil {
			return nil, err
		}
		return &MoveOp{Path: path, From: f}, nil
	case OpCopy:
		f, err := from()
		if err != nil {
			return nil, err
		}
		return &CopyOp{Path: path, From: f}, nil
	case OpTest:
		v, err := value()
		if err != nil {
			return nil, err
		}
		return &TestOp{Path: path, Value: v}, nil
	default:
		return nil, fmt.Errorf("%w: unknown op %q", ErrInvalidOperation, w.Op)
	}
}
