package jsondelta

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFormatPretty(t *testing.T) {
	ops := Operations{
		&AddOp{Path: "/b", Value: FromNumber(2)},
		&RemoveOp{Path: "/a", OldValue: FromNumber(1)},
		&RemoveOp{Path: "/c/0"},
		&ReplaceOp{Path: "/d", Value: mustJSON(`{"e":[true]}`)},
		&ReplaceOp{Path: "", Value: FromString("x"), OldValue: Null()},
		&MoveOp{Path: "/to", From: "/from"},
		&CopyOp{Path: "/to", From: ""},
		&TestOp{Path: "/p", Value: Null()},
	}

	got, err := FormatPrettyString(ops, false)
	if err != nil {
		t.Fatal(err)
	}
	expect := strings.Join([]string{
		`+ /b: 2`,
		`- /a (was 1)`,
		`- /c/0`,
		`~ /d: {"e":[true]}`,
		`~ /: "x" (was null)`,
		`> /to <- /from`,
		`= /to <- /`,
		`? /p: null`,
		``,
	}, "\n")
	if diff := cmp.Diff(expect, got); diff != "" {
		t.Errorf("result mismatch (-want +got):\n%s", diff)
	}
}

func TestFormatPrettyColor(t *testing.T) {
	got, err := FormatPrettyString(Operations{&AddOp{Path: "/a", Value: FromBool(true)}}, true)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(got, "\x1b[32m") || !strings.Contains(got, "+ /a: true") {
		t.Errorf("expected a green add line, got: %q", got)
	}
}

func TestFormatPrettyErrors(t *testing.T) {
	if _, err := FormatPrettyString(Operations{nil}, false); err == nil {
		t.Errorf("expected an error formatting a nil operation")
	}
}

func TestFormatStatsPretty(t *testing.T) {
	cases := []struct {
		description string
		input       *Stats
		expect      string
	}{
		{"all plural",
			&Stats{Left: 2, Right: 6, Adds: 6, Replaces: 2, Removes: 2},
			"+4 elements. 6 adds. 2 removes. 2 replaces.\n",
		},
		{"all singular",
			&Stats{Left: 2, Right: 1, Adds: 1, Replaces: 1, Removes: 1},
			"-1 element. 1 add. 1 remove. 1 replace.\n",
		},
		{"no changes",
			&Stats{Left: 3, Right: 3},
			"0 elements. 0 adds. 0 removes. 0 replaces.\n",
		},
	}

	for i, c := range cases {
		got := FormatPrettyStats(c.input, false)
		if got != c.expect {
			t.Errorf("%d %s\nwant:\n%s\ngot:\n%s", i, c.description, c.expect, got)
		}
	}
}

func TestFormatStatsNull(t *testing.T) {
	got := FormatPrettyStats(nil, false)
	expect := `<nil>`
	if got != expect {
		t.Errorf("want:\n%s\ngot:\n%s", expect, got)
	}
}
