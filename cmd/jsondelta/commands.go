package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Main, "jsondelta").
		WithSynopsis("jsondelta [opts] command [opts]").
		WithDescription(mainDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return jsondeltaMain(cfg, cc, args)
		}).
		WithSubs(
			DiffCommand(cfg),
			PatchCommand(cfg),
			LCSCommand(cfg))
}

const mainDescription = `jsondelta computes & applies edit scripts between JSON or YAML documents.

Edit scripts are JSON Patch (RFC 6902) operation lists. remove & replace
operations may carry an "oldValue" member recording what they overwrote.

  jsondelta diff a.json b.json > patch.json
  jsondelta patch a.json patch.json
  jsondelta diff -pretty -stats a.yaml b.yaml`

func jsondeltaMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	cfg.configureLog()
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Diff, "diff").
		WithAliases("d").
		WithSynopsis("diff [opts] a b").
		WithDescription("diff two documents, exiting 1 when they differ. '-' reads from stdin").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
}

func PatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PatchConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Patch, "patch").
		WithAliases("p").
		WithSynopsis("patch [opts] doc patch").
		WithDescription("apply a JSON patch to a document. '-' reads from stdin").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return patch(cfg, cc, args)
		})
}

func LCSCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &LCSConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.LCS, "lcs").
		WithSynopsis("lcs a b").
		WithDescription("print the longest common subsequence of two arrays as index pairs").
		WithRun(func(cc *cli.Context, args []string) error {
			return lcs(cfg, cc, args)
		})
}
