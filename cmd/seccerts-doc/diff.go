package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/J08nY/sec-certs/format"
	"github.com/J08nY/sec-certs/libdiff"
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
	a, err := loadRaw(cfg.MainConfig, cc, args[0])
	if err != nil {
		return err
	}
	b, err := loadRaw(cfg.MainConfig, cc, args[1])
	if err != nil {
		return err
	}
	d, err := libdiff.Make(a, b)
	if err != nil {
		return fmt.Errorf("error diffing: %w", err)
	}
	if d == nil {
		return nil
	}
	// Render symbol keys in their stored bracketed form.
	stored, err := format.Store(d)
	if err != nil {
		return fmt.Errorf("error encoding diff: %w", err)
	}
	if err := writeDoc(cfg.MainConfig, cc.Out, stored); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}

func loadRaw(cfg *MainConfig, cc *cli.Context, file string) (any, error) {
	doc, err := readDoc(cfg, cc, file)
	if err != nil {
		return nil, err
	}
	working, err := format.NewStorage(doc).ToWorking()
	if err != nil {
		return nil, fmt.Errorf("error loading %q: %w", file, err)
	}
	raw, err := working.ToRaw()
	if err != nil {
		return nil, fmt.Errorf("error loading %q: %w", file, err)
	}
	return raw.Get(), nil
}
