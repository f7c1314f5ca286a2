package jsondelta

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestEscape(t *testing.T) {
	cases := []struct {
		raw, escaped string
	}{
		{"test/test~~", "test~1test~0~0"},
		{"~1", "~01"},
		{"~0", "~00"},
		{"/~", "~1~0"},
		{"", ""},
		{"plain", "plain"},
	}

	for _, c := range cases {
		if got := Escape(c.raw); got != c.escaped {
			t.Errorf("Escape(%q): want %q, got %q", c.raw, c.escaped, got)
		}
		if got := Unescape(c.escaped); got != c.raw {
			t.Errorf("Unescape(%q): want %q, got %q", c.escaped, c.raw, got)
		}
	}
}

func TestDecode(t *testing.T) {
	cases := []struct {
		ptr    Pointer
		expect []string
	}{
		{"", []string{}},
		{"/", []string{""}},
		{"/a/a", []string{"a", "a"}},
		{"/a~1b/c~0d", []string{"a/b", "c~d"}},
		{"/0/-", []string{"0", "-"}},
		{"//", []string{"", ""}},
	}

	for _, c := range cases {
		got, err := c.ptr.Decode()
		if err != nil {
			t.Fatalf("decoding %q: %s", c.ptr, err)
		}
		if diff := cmp.Diff(c.expect, got); diff != "" {
			t.Errorf("decoding %q mismatch (-want +got):\n%s", c.ptr, diff)
		}
		if back := Encode(got); back != c.ptr {
			t.Errorf("encode should invert decode. want %q, got %q", c.ptr, back)
		}
	}

	if _, err := Pointer("a/b").Decode(); !errors.Is(err, ErrInvalidPointer) {
		t.Errorf("expected ErrInvalidPointer, got: %v", err)
	}
}

func TestEncode(t *testing.T) {
	cases := []struct {
		frags  []string
		expect Pointer
	}{
		{[]string{"a", "b"}, "/a/b"},
		{[]string{""}, "/"},
		{[]string{}, ""},
		{nil, ""},
		{[]string{"/"}, "/~1"},
	}
	for _, c := range cases {
		if got := Encode(c.frags); got != c.expect {
			t.Errorf("Encode(%q): want %q, got %q", c.frags, c.expect, got)
		}
	}
}

func TestAppend(t *testing.T) {
	if got := Root.Append("a/b").Append("~").AppendIndex(3); got != "/a~1b/~0/3" {
		t.Errorf("unexpected pointer: %q", got)
	}
}

func TestParent(t *testing.T) {
	parent, last, ok := Pointer("/a/b~1c").Parent()
	if !ok || parent != "/a" || last != "b/c" {
		t.Errorf("unexpected parent: %q %q %t", parent, last, ok)
	}
	if _, _, ok := Root.Parent(); ok {
		t.Errorf("root has no parent")
	}
}

func TestPointerGet(t *testing.T) {
	doc := mustJSON(`{"a":{"b":[10,{"c":true}]},"":"empty","x/y":1,"n":null}`)
	cases := []struct {
		ptr    Pointer
		expect *Value
	}{
		{"", doc},
		{"/a/b/0", FromNumber(10)},
		{"/a/b/1/c", FromBool(true)},
		{"/", FromString("empty")},
		{"/x~1y", FromNumber(1)},
		{"/n", Null()},
	}
	for _, c := range cases {
		got, ok := c.ptr.Get(doc)
		if !ok {
			t.Errorf("%q should resolve", c.ptr)
			continue
		}
		if !Equal(c.expect, got) {
			t.Errorf("%q: want %v, got %v", c.ptr, c.expect.Interface(), got.Interface())
		}
	}

	missing := []Pointer{"/z", "/a/b/2", "/a/b/-", "/a/b/01", "/a/b/+1", "/a/b/x", "/a/b/0/c", "/n/x", "nope"}
	for _, p := range missing {
		if p.Exists(doc) {
			t.Errorf("%q shouldn't resolve", p)
		}
	}
}

func TestPointerAdd(t *testing.T) {
	cases := []struct {
		description string
		doc         string
		ptr         Pointer
		val         *Value
		ok          bool
		expect      string
	}{
		{"new key", `{}`, "/a", FromNumber(1), true, `{"a":1}`},
		{"overwrite key", `{"a":1}`, "/a", FromNumber(2), true, `{"a":2}`},
		{"empty key", `{"a":{}}`, "/a/", FromNumber(10), true, `{"a":{"":10}}`},
		{"insert", `[1,3]`, "/1", FromNumber(2), true, `[1,2,3]`},
		{"insert front", `[1]`, "/0", FromNumber(0), true, `[0,1]`},
		{"append dash", `[1,2,3]`, "/-", FromNumber(4), true, `[1,2,3,4]`},
		{"append length", `[1,2,3]`, "/3", FromNumber(4), true, `[1,2,3,4]`},
		{"out of range", `[1,2,3]`, "/100", FromNumber(4), false, `[1,2,3]`},
		{"missing parent", `{}`, "/a/a", FromNumber(10), false, `{}`},
		{"scalar parent", `{"a":1}`, "/a/b", FromNumber(10), false, `{"a":1}`},
		{"root", `{}`, "", FromNumber(1), false, `{}`},
	}

	for _, c := range cases {
		t.Run(c.description, func(t *testing.T) {
			doc := mustJSON(c.doc)
			if ok := c.ptr.Add(doc, c.val); ok != c.ok {
				t.Errorf("want ok %t, got %t", c.ok, ok)
			}
			if !Equal(mustJSON(c.expect), doc) {
				t.Errorf("want %s, got %v", c.expect, doc.Interface())
			}
		})
	}
}

func TestPointerRemove(t *testing.T) {
	cases := []struct {
		description string
		doc         string
		ptr         Pointer
		ok          bool
		expect      string
	}{
		{"key", `{"a":1,"b":2}`, "/a", true, `{"b":2}`},
		{"missing key", `{}`, "/a", false, `{}`},
		{"middle element", `[1,2,3]`, "/1", true, `[1,3]`},
		{"last element", `[1,2,3]`, "/2", true, `[1,2]`},
		{"index = length", `[1,2,3]`, "/3", false, `[1,2,3]`},
		{"dash", `[1,2,3]`, "/-", false, `[1,2,3]`},
		{"nested", `{"a":[{"b":1,"c":2}]}`, "/a/0/b", true, `{"a":[{"c":2}]}`},
		{"root", `{"a":1}`, "", false, `{"a":1}`},
	}

	for _, c := range cases {
		t.Run(c.description, func(t *testing.T) {
			doc := mustJSON(c.doc)
			if ok := c.ptr.Remove(doc); ok != c.ok {
				t.Errorf("want ok %t, got %t", c.ok, ok)
			}
			if !Equal(mustJSON(c.expect), doc) {
				t.Errorf("want %s, got %v", c.expect, doc.Interface())
			}
		})
	}
}
