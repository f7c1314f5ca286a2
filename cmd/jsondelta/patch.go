package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/qri-io/jsondelta"
	"github.com/scott-cotton/cli"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: patch requires 2 arguments, a document, and a patch to apply to it", cli.ErrUsage)
	}
	if args[0] == "-" && args[1] == "-" {
		return fmt.Errorf("%w: only one of the document & patch can be read from stdin", cli.ErrUsage)
	}
	doc, err := getDocFile(cc, args[0], cfg.Y, "")
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	ops, err := getPatchFile(cc, args[1])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	return patchDoc(cfg, cc.Out, doc, ops)
}

func patchDoc(cfg *PatchConfig, w io.Writer, doc *jsondelta.Value, ops jsondelta.Operations) error {
	res, err := jsondelta.Patch(doc, ops)
	if err != nil {
		var perr *jsondelta.PatchError
		if errors.As(err, &perr) {
			theLog.Debug("patch failed", "index", perr.Index, "path", perr.Op.Target(), "error", perr.Err)
		}
		return fmt.Errorf("error patching: %w", err)
	}
	theLog.Debug("patched document", "operations", len(ops), "nodes", res.Len())
	if err := writeDoc(w, res, cfg.Y, cfg.colorOut(w)); err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	return nil
}
