package jsondelta

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
)

// palette holds one sprint function per operation kind. a nil palette prints
// without color
type palette map[OpKind]func(a ...interface{}) string

func newPalette(colorTTY bool) palette {
	if !colorTTY {
		return nil
	}
	mk := func(attrs ...color.Attribute) func(a ...interface{}) string {
		c := color.New(attrs...)
		c.EnableColor()
		return c.SprintFunc()
	}
	return palette{
		OpAdd:     mk(color.FgGreen),
		OpRemove:  mk(color.FgRed),
		OpReplace: mk(color.FgBlue),
		OpMove:    mk(color.FgYellow),
		OpCopy:    mk(color.FgYellow),
		OpTest:    mk(color.FgWhite),
	}
}

func (p palette) paint(kind OpKind, s string) string {
	if fn, ok := p[kind]; ok {
		return fn(s)
	}
	return s
}

var opSymbols = map[OpKind]string{
	OpAdd:     "+",
	OpRemove:  "-",
	OpReplace: "~",
	OpMove:    ">",
	OpCopy:    "=",
	OpTest:    "?",
}

// FormatPrettyString is a convenice wrapper that outputs to a string instead of
// an io.Writer
func FormatPrettyString(ops Operations, colorTTY bool) (string, error) {
	buf := &bytes.Buffer{}
	if err := FormatPretty(buf, ops, colorTTY); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// FormatPretty writes a text report to w, one line per operation. if colorTTY
// is true it will add
// green "+" for adds
// red "-" for removes
// blue "~" for replaces
// yellow ">" for moves and "=" for copies
// white "?" for tests
func FormatPretty(w io.Writer, ops Operations, colorTTY bool) error {
	colors := newPalette(colorTTY)
	for _, op := range ops {
		var line string
		switch o := op.(type) {
		case *AddOp:
			val, err := compactJSON(o.Value)
			if err != nil {
				return err
			}
			line = fmt.Sprintf("%s %s: %s", opSymbols[OpAdd], displayPath(o.Path), val)
		case *RemoveOp:
			line = fmt.Sprintf("%s %s", opSymbols[OpRemove], displayPath(o.Path))
			if o.OldValue != nil {
				old, err := compactJSON(o.OldValue)
				if err != nil {
					return err
				}
				line += fmt.Sprintf(" (was %s)", old)
			}
		case *ReplaceOp:
			val, err := compactJSON(o.Value)
			if err != nil {
				return err
			}
			line = fmt.Sprintf("%s %s: %s", opSymbols[OpReplace], displayPath(o.Path), val)
			if o.OldValue != nil {
				old, err := compactJSON(o.OldValue)
				if err != nil {
					return err
				}
				line += fmt.Sprintf(" (was %s)", old)
			}
		case *MoveOp:
			line = fmt.Sprintf("%s %s <- %s", opSymbols[OpMove], displayPath(o.Path), displayPath(o.From))
		case *CopyOp:
			line = fmt.Sprintf("%s %s <- %s", opSymbols[OpCopy], displayPath(o.Path), displayPath(o.From))
		case *TestOp:
			val, err := compactJSON(o.Value)
			if err != nil {
				return err
			}
			line = fmt.Sprintf("%s %s: %s", opSymbols[OpTest], displayPath(o.Path), val)
		default:
			return fmt.Errorf("%w: unknown operation type %T", ErrInvalidOperation, op)
		}
		if _, err := fmt.Fprintln(w, colors.paint(op.Kind(), line)); err != nil {
			return err
		}
	}
	return nil
}

// displayPath shows the root as "/" so it's visible in a report
func displayPath(p Pointer) string {
	if p.IsRoot() {
		return "/"
	}
	return string(p)
}

func compactJSON(v *Value) (string, error) {
	if v == nil {
		return "null", nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// FormatPrettyStats prints a string of stats info, with ANSI colors if
// colorTTY is true
func FormatPrettyStats(ds *Stats, colorTTY bool) string {
	if ds == nil {
		return "<nil>"
	}

	colors := newPalette(colorTTY)
	buf := &bytes.Buffer{}

	change := ds.NodeChange()
	elementsWord := "elements"
	if change == 1 || change == -1 {
		elementsWord = "element"
	}
	changeStr := fmt.Sprintf("%d", change)
	switch {
	case change > 0:
		changeStr = colors.paint(OpAdd, "+"+changeStr)
	case change < 0:
		changeStr = colors.paint(OpRemove, changeStr)
	}
	fmt.Fprintf(buf, "%s %s.", changeStr, elementsWord)

	fmt.Fprintf(buf, " %s.", colors.paint(OpAdd, plural(ds.Adds, "add")))
	fmt.Fprintf(buf, " %s.", colors.paint(OpRemove, plural(ds.Removes, "remove")))
	fmt.Fprintf(buf, " %s.", colors.paint(OpReplace, plural(ds.Replaces, "replace")))
	buf.WriteRune('\n')

	return buf.String()
}

func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}
