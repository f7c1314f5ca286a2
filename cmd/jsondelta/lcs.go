package main

import (
	"fmt"
	"io"

	"github.com/qri-io/jsondelta"
	"github.com/scott-cotton/cli"
)

func lcs(cfg *LCSConfig, cc *cli.Context, args []string) error {
	args, err := cfg.LCS.Parse(cc, args)
	if err != nil {
		cfg.LCS.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: lcs requires 2 args, got %v", cli.ErrUsage, args)
	}
	a, err := getDocFile(cc, args[0], cfg.Y, cfg.Select)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	b, err := getDocFile(cc, args[1], cfg.Y, cfg.Select)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	return lcsDocs(cc.Out, a, b, cfg.colorOut(cc.Out))
}

func lcsDocs(w io.Writer, a, b *jsondelta.Value, color bool) error {
	if a.Type != jsondelta.ArrayType || b.Type != jsondelta.ArrayType {
		return fmt.Errorf("%w: lcs needs two arrays, got %s and %s", cli.ErrUsage, a.Type, b.Type)
	}
	pairs := jsondelta.LCS(a.Values, b.Values, nil, jsondelta.Hash)
	theLog.Debug("aligned arrays", "left", len(a.Values), "right", len(b.Values), "pairs", len(pairs))
	return writeDoc(w, pairs, false, color)
}
