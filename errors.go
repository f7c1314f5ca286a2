package jsondelta

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	// ErrInvalidPath is returned when an operation's path or from pointer
	// does not resolve to a readable or writable location
	ErrInvalidPath = errors.New("invalid path")
	// ErrTestFailed is returned when a test operation's value doesn't match
	ErrTestFailed = errors.New("test failed")
	// ErrInvalidPointer means a pointer string isn't well formed
	ErrInvalidPointer = errors.New("invalid pointer")
	// ErrInvalidOperation means an encoded operation is missing required
	// members or names an unknown op
	ErrInvalidOperation = errors.New("invalid operation")
	// ErrUnsupportedValue means a go value has no counterpart in the value
	// tree, or a value can't be encoded
	ErrUnsupportedValue = errors.New("unsupported value")
)

// PatchError describes the operation that stopped a patch. Operations that
// came before it have already been applied to Value
type PatchError struct {
	// Index of the failing operation
	Index int
	// Op is the failing operation
	Op Operation
	// Value is a snapshot of the document when Op failed
	Value *Value
	// Err is ErrInvalidPath, ErrTestFailed, or ErrInvalidOperation for an
	// operation of unknown type
	Err error
}

func (e *PatchError) Error() string {
	op, err := json.Marshal(e.Op)
	if err != nil {
		op = []byte(fmt.Sprintf("%#v", e.Op))
	}
	val, err := json.Marshal(e.Value)
	if err != nil {
		val = []byte("<unencodable>")
	}
	return fmt.Sprintf("patch %d: %s. op: %s, value: %s", e.Index, e.Err, op, val)
}

func (e *PatchError) Unwrap() error { return e.Err }
