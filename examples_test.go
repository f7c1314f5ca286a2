package jsondelta

import (
	"encoding/json"
	"fmt"
)

func ExampleDiffJSON() {
	// start with two slightly different json documents
	aJSON := []byte(`{
		"a": 100,
		"foo": [1,2,3],
		"bar": false,
		"baz": {
			"a": {
				"b": 4,
				"c": false,
				"d": "apples-and-oranges"
			},
			"e": null,
			"g": "apples-and-oranges"
		}
	}`)

	bJSON := []byte(`{
		"a": 99,
		"foo": [1,3],
		"bar": false,
		"baz": {
			"a": {
				"b": 5,
				"c": false,
				"d": "apples-and-oranges"
			},
			"e": "thirty-thousand-something-dogecoin",
			"f": false
		}
	}`)

	// DiffJSON produces a list of operations that describe the structured
	// changes, remembering what each remove & replace overwrote
	ops, err := DiffJSON(aJSON, bJSON, OptionRemember())
	if err != nil {
		panic(err)
	}

	// Format the changes for terminal output
	change, err := FormatPrettyString(ops, false)
	if err != nil {
		panic(err)
	}

	fmt.Print(change)
	// Output: ~ /a: 99 (was 100)
	// ~ /baz/a/b: 5 (was 4)
	// ~ /baz/e: "thirty-thousand-something-dogecoin" (was null)
	// + /baz/f: false
	// - /baz/g (was "apples-and-oranges")
	// - /foo/1 (was 2)
}

func ExampleDiff() {
	left := MustFromInterface([]interface{}{1, 2, 3})
	right := MustFromInterface([]interface{}{1, 2, 4, 5, 6, 3})

	ops := Diff(left, right)
	data, err := json.Marshal(ops)
	if err != nil {
		panic(err)
	}
	fmt.Println(string(data))

	// applying a diff to its left side reproduces the right side
	patched, err := Patch(left, ops)
	if err != nil {
		panic(err)
	}
	fmt.Println(Equal(right, patched))
	// Output: [{"op":"add","path":"/2","value":4},{"op":"add","path":"/3","value":5},{"op":"add","path":"/4","value":6}]
	// true
}

func ExamplePatch() {
	doc := MustFromInterface(map[string]interface{}{
		"a": map[string]interface{}{"b": []interface{}{"c"}},
	})
	ops, err := ParseOperations([]byte(`[
		{"op": "test", "path": "/a/b/0", "value": "c"},
		{"op": "copy", "from": "/a/b", "path": "/d"},
		{"op": "add", "path": "/d/-", "value": "e"},
		{"op": "move", "from": "/a", "path": "/f"}
	]`))
	if err != nil {
		panic(err)
	}

	res, err := Patch(doc, ops)
	if err != nil {
		panic(err)
	}
	data, err := json.Marshal(res)
	if err != nil {
		panic(err)
	}
	fmt.Println(string(data))
	// Output: {"d":["c","e"],"f":{"b":["c"]}}
}

func ExampleLCS() {
	left := MustFromInterface([]interface{}{"a", "b", "c", "b", "d"})
	right := MustFromInterface([]interface{}{"b", "d", "a"})

	fmt.Println(LCS(left.Values, right.Values, nil, nil))
	// Output: [{3 0} {4 1}]
}

func ExamplePointer() {
	ptr := Root.Append("a/b").AppendIndex(0)
	fmt.Println(ptr)

	doc := MustFromInterface(map[string]interface{}{"a/b": []interface{}{"found"}})
	v, ok := ptr.Get(doc)
	fmt.Println(v.String, ok)
	// Output: /a~1b/0
	// found true
}
