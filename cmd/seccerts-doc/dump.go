package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/J08nY/sec-certs/format"
)

func dump(cfg *DumpConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Dump.Parse(cc, args)
	if err != nil {
		return err
	}
	return eachFile(cc, args, func(file string) error {
		doc, err := readDoc(cfg.MainConfig, cc, file)
		if err != nil {
			return err
		}
		flat, err := format.NewStorage(doc).ToJSONMapping()
		if err != nil {
			return fmt.Errorf("error flattening %q: %w", file, err)
		}
		return writeDoc(cfg.MainConfig, cc.Out, flat)
	})
}
