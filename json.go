package jsondelta

import (
	"encoding/json"
	"fmt"
)

// DiffJSON decodes two JSON documents and diffs them
func DiffJSON(left, right []byte, opts ...DiffOption) (Operations, error) {
	l, err := ParseJSON(left)
	if err != nil {
		return nil, fmt.Errorf("decoding left document: %w", err)
	}
	r, err := ParseJSON(right)
	if err != nil {
		return nil, fmt.Errorf("decoding right document: %w", err)
	}
	return Diff(l, r, opts...), nil
}

// PatchJSON applies a JSON encoded operation list to a JSON document and
// returns the encoded result
func PatchJSON(doc, patch []byte, opts ...PatchOption) ([]byte, error) {
	base, err := ParseJSON(doc)
	if err != nil {
		return nil, fmt.Errorf("decoding document: %w", err)
	}
	ops, err := ParseOperations(patch)
	if err != nil {
		return nil, fmt.Errorf("decoding patch: %w", err)
	}
	res, err := Patch(base, ops, opts...)
	if err != nil {
		return nil, err
	}
	return json.Marshal(res)
}
