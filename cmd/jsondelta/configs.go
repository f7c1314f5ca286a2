package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/qri-io/jsondelta"
	"github.com/scott-cotton/cli"
)

type MainConfig struct {
	Verbose bool `cli:"name=v desc='log debug messages to stderr'"`
	Color   bool `cli:"name=color desc='force colored output'"`
	Y       bool `cli:"name=y aliases=yaml desc='do i/o in yaml'"`

	Main *cli.Command
}

func (cfg *MainConfig) configureLog() {
	if cfg.Verbose {
		logLevel.Set(slog.LevelDebug)
	}
}

// colorOut reports whether output to w should be colored, which it is when
// forced or when w is a terminal
func (cfg *MainConfig) colorOut(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

type DiffConfig struct {
	*MainConfig
	OmitArrays bool   `cli:"name=omit-arrays desc='replace changed arrays whole'"`
	Remember   bool   `cli:"name=remember desc='record overwritten values as oldValue'"`
	Pretty     bool   `cli:"name=pretty desc='print a text report instead of JSON'"`
	Stats      bool   `cli:"name=stats desc='print diff statistics'"`
	Select     string `cli:"name=select desc='gjson path of the json sub-documents to diff'"`

	Diff *cli.Command
}

func (cfg *DiffConfig) diffOpts(stats *jsondelta.Stats) []jsondelta.DiffOption {
	opts := []jsondelta.DiffOption{
		jsondelta.OptionHash(jsondelta.Hash),
	}
	if cfg.OmitArrays {
		opts = append(opts, jsondelta.OptionOmitArrayDiffs())
	}
	if cfg.Remember {
		opts = append(opts, jsondelta.OptionRemember())
	}
	if stats != nil {
		opts = append(opts, jsondelta.OptionSetStats(stats))
	}
	return opts
}

type PatchConfig struct {
	*MainConfig

	Patch *cli.Command
}

type LCSConfig struct {
	*MainConfig
	Select string `cli:"name=select desc='gjson path of the json arrays to align'"`

	LCS *cli.Command
}
