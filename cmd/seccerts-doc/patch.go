package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/goccy/go-json"
	"github.com/scott-cotton/cli"

	"github.com/J08nY/sec-certs/format"
	"github.com/J08nY/sec-certs/ir"
	"github.com/J08nY/sec-certs/libdiff"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: patch requires 2 arguments, a patch object and a file to apply it to", cli.ErrUsage)
	}
	patchData, err := getPatchData(cfg, cc, args[0])
	if err != nil {
		return err
	}
	if cfg.Merge {
		return mergePatchFile(cfg, cc, patchData, args[1])
	}
	return diffPatchFile(cfg, cc, patchData, args[1])
}

// mergePatchFile applies an RFC 7386 merge patch at the storage
// boundary; the patch must already use storage-encoded keys.
func mergePatchFile(cfg *PatchConfig, cc *cli.Context, patchData []byte, file string) error {
	doc, err := readDoc(cfg.MainConfig, cc, file)
	if err != nil {
		return err
	}
	if cfg.Y {
		// The merge patch itself is JSON even with YAML documents.
		var v any
		if err := json.Unmarshal(patchData, &v); err != nil {
			return fmt.Errorf("error decoding merge patch: %w", err)
		}
	}
	res, err := format.MergePatch(doc, patchData)
	if err != nil {
		return fmt.Errorf("error patching %s: %w", file, err)
	}
	return writeDoc(cfg.MainConfig, cc.Out, res)
}

// diffPatchFile applies a structural diff produced by the diff command.
// The stored diff carries symbol keys in bracketed form; they are
// restored before application.
func diffPatchFile(cfg *PatchConfig, cc *cli.Context, patchData []byte, file string) error {
	stored, err := decodeDoc(cfg.MainConfig, patchData, "patch")
	if err != nil {
		return err
	}
	working, err := format.NewStorage(stored).ToWorking()
	if err != nil {
		return fmt.Errorf("error decoding patch: %w", err)
	}
	raw, err := working.ToRaw()
	if err != nil {
		return fmt.Errorf("error decoding patch: %w", err)
	}
	d := unbracket(raw.Get())

	target, err := loadRaw(cfg.MainConfig, cc, file)
	if err != nil {
		return err
	}
	patched, err := libdiff.Apply(target, d)
	if err != nil {
		return fmt.Errorf("error patching %s: %w", file, err)
	}
	back, err := format.NewRaw(patched).ToWorking()
	if err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	res, err := back.ToStorage()
	if err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	return writeDoc(cfg.MainConfig, cc.Out, res.Get())
}

func getPatchData(cfg *PatchConfig, cc *cli.Context, arg string) ([]byte, error) {
	if cfg.String && cfg.File {
		return nil, fmt.Errorf("%w: only one of -s, -f may be specified", cli.ErrUsage)
	}
	if cfg.String || !cfg.File {
		return []byte(arg), nil
	}
	var r io.Reader
	if arg == "-" {
		r = cc.In
	} else {
		f, err := os.Open(arg)
		if err != nil {
			return nil, fmt.Errorf("error opening %s: %w", arg, err)
		}
		defer f.Close()
		r = f
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading patch: %w", err)
	}
	return data, nil
}

// unbracket restores stored "__label__" keys to the symbol-key form the
// diff machinery understands. The core conversions never do this; only
// the patch loader, which knows the document IS a diff, may.
func unbracket(v any) any {
	switch x := v.(type) {
	case map[string]any:
		res := make(map[string]any, len(x))
		for k, vv := range x {
			res[unbracketKey(k)] = unbracket(vv)
		}
		return res
	case ir.HashMap:
		res := make(ir.HashMap, len(x))
		for k, vv := range x {
			res[unbracketKey(k)] = unbracket(vv)
		}
		return res
	case []any:
		res := make([]any, len(x))
		for i, e := range x {
			res[i] = unbracket(e)
		}
		return res
	}
	return v
}

func unbracketKey(k string) string {
	if !strings.HasPrefix(k, "__") || !strings.HasSuffix(k, "__") {
		return k
	}
	for _, s := range ir.Symbols() {
		if k == s.Bracketed() {
			return s.Key()
		}
	}
	return k
}
