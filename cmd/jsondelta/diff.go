package main

import (
	"fmt"
	"io"

	"github.com/qri-io/jsondelta"
	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	a, err := getDocFile(cc, args[0], cfg.Y, cfg.Select)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	b, err := getDocFile(cc, args[1], cfg.Y, cfg.Select)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	differs, err := diffDocs(cfg, cc.Out, a, b)
	if err != nil {
		return err
	}
	if differs {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// diffDocs writes the diff of a & b to w, reporting whether they differ
func diffDocs(cfg *DiffConfig, w io.Writer, a, b *jsondelta.Value) (bool, error) {
	var stats *jsondelta.Stats
	if cfg.Stats {
		stats = &jsondelta.Stats{}
	}
	ops := jsondelta.Diff(a, b, cfg.diffOpts(stats)...)
	theLog.Debug("diffed documents", "left", a.Len(), "right", b.Len(), "operations", len(ops))

	color := cfg.colorOut(w)
	if stats != nil {
		if _, err := io.WriteString(w, jsondelta.FormatPrettyStats(stats, color)); err != nil {
			return false, err
		}
	}
	if cfg.Pretty {
		if err := jsondelta.FormatPretty(w, ops, color); err != nil {
			return false, fmt.Errorf("error formatting diff: %w", err)
		}
		return len(ops) > 0, nil
	}
	if ops == nil {
		ops = jsondelta.Operations{}
	}
	if err := writeDoc(w, ops, false, color); err != nil {
		return false, fmt.Errorf("error encoding diff: %w", err)
	}
	return len(ops) > 0, nil
}
