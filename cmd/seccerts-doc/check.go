package main

import (
	"fmt"

	"github.com/goccy/go-json"
	"github.com/scott-cotton/cli"

	"github.com/J08nY/sec-certs/certs"
	"github.com/J08nY/sec-certs/format"
	"github.com/J08nY/sec-certs/ir"
	"github.com/J08nY/sec-certs/registry"
)

// check verifies each document survives Storage → Working → Storage
// byte-identically, which is what the dataset writers rely on, and that
// resolving it through the object stage and back preserves its meaning.
func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	reg, err := certs.NewRegistry()
	if err != nil {
		return err
	}
	bad := 0
	err = eachFile(cc, args, func(file string) error {
		doc, err := readDoc(cfg.MainConfig, cc, file)
		if err != nil {
			return err
		}
		loaded, err := format.Load(doc)
		if err != nil {
			return fmt.Errorf("error loading %q: %w", file, err)
		}
		stored, err := format.Store(loaded)
		if err != nil {
			return fmt.Errorf("error storing %q: %w", file, err)
		}
		want, err := json.Marshal(doc)
		if err != nil {
			return err
		}
		got, err := json.Marshal(stored)
		if err != nil {
			return err
		}
		if string(want) != string(got) {
			bad++
			if !cfg.Quiet {
				fmt.Fprintf(cc.Out, "%s: round trip unstable\n", file)
			}
			return nil
		}
		back, err := throughObj(loaded, reg)
		if err != nil {
			return fmt.Errorf("error resolving %q: %w", file, err)
		}
		if !ir.Equal(loaded, back) {
			bad++
			if !cfg.Quiet {
				fmt.Fprintf(cc.Out, "%s: object resolution unstable\n", file)
			}
			return nil
		}
		if !cfg.Quiet {
			fmt.Fprintf(cc.Out, "%s: ok\n", file)
		}
		return nil
	})
	if err != nil {
		return err
	}
	if bad > 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// throughObj runs a working document down to the object stage, resolving
// known domain tags, and back up to working.
func throughObj(doc any, reg *registry.Registry) (any, error) {
	raw, err := format.NewWorking(doc).ToRaw()
	if err != nil {
		return nil, err
	}
	obj, err := raw.ToObject(reg)
	if err != nil {
		return nil, err
	}
	back, err := obj.ToRaw(reg)
	if err != nil {
		return nil, err
	}
	w, err := back.ToWorking()
	if err != nil {
		return nil, err
	}
	return w.Get(), nil
}
