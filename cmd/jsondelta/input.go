package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/qri-io/jsondelta"
	"github.com/scott-cotton/cli"
	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
)

func openArg(cc *cli.Context, path string) ([]byte, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return d, nil
}

func getDocFile(cc *cli.Context, path string, yaml bool, sel string) (*jsondelta.Value, error) {
	d, err := openArg(cc, path)
	if err != nil {
		return nil, err
	}
	return readDoc(d, path, yaml, sel)
}

// readDoc decodes a document as YAML when asked to or when path has a YAML
// extension, and as JSON otherwise. a non-empty sel is a gjson path picking
// the part of a JSON document to decode
func readDoc(d []byte, path string, yaml bool, sel string) (*jsondelta.Value, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if yaml || ext == ".yaml" || ext == ".yml" {
		if sel != "" {
			return nil, fmt.Errorf("%w: -select only applies to json documents", cli.ErrUsage)
		}
		theLog.Debug("decoding yaml", "path", path, "bytes", len(d))
		return jsondelta.ParseYAML(d)
	}
	if sel != "" {
		if !gjson.ValidBytes(d) {
			return nil, fmt.Errorf("invalid json in %q", path)
		}
		res := gjson.GetBytes(d, sel)
		if !res.Exists() {
			return nil, fmt.Errorf("%q selects nothing in %q", sel, path)
		}
		theLog.Debug("selected sub-document", "path", path, "select", sel, "type", res.Type.String())
		d = []byte(res.Raw)
	}
	theLog.Debug("decoding json", "path", path, "bytes", len(d))
	return jsondelta.ParseJSON(d)
}

func getPatchFile(cc *cli.Context, path string) (jsondelta.Operations, error) {
	d, err := openArg(cc, path)
	if err != nil {
		return nil, err
	}
	return jsondelta.ParseOperations(d)
}

// writeDoc encodes v to w as YAML when v is a document and yaml is set, and as
// indented JSON otherwise. JSON is highlighted when color is set
func writeDoc(w io.Writer, v interface{}, yaml, color bool) error {
	if val, ok := v.(*jsondelta.Value); ok && yaml {
		d, err := jsondelta.MarshalYAML(val)
		if err != nil {
			return err
		}
		_, err = w.Write(d)
		return err
	}
	d, err := json.Marshal(v)
	if err != nil {
		return err
	}
	d = pretty.Pretty(d)
	if color {
		d = pretty.Color(d, nil)
	}
	_, err = w.Write(d)
	return err
}
