package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/J08nY/sec-certs/format"
	qry "github.com/J08nY/sec-certs/query"
)

func query(cfg *QueryConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Query.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: query requires 1 argument, a boolean expression", cli.ErrUsage)
	}
	q, err := qry.Compile(args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	files := args[1:]
	if len(files) == 0 {
		files = []string{"-"}
	}
	matched := 0
	for _, file := range files {
		stored, err := readDoc(cfg.MainConfig, cc, file)
		if err != nil {
			return err
		}
		working, err := format.Load(stored)
		if err != nil {
			return fmt.Errorf("error loading %q: %w", file, err)
		}
		ok, err := q.Match(working)
		if err != nil {
			return fmt.Errorf("error querying %q: %w", file, err)
		}
		if !ok {
			continue
		}
		if matched > 0 {
			if _, err := cc.Out.Write([]byte("---\n")); err != nil {
				return err
			}
		}
		if err := writeDoc(cfg.MainConfig, cc.Out, stored); err != nil {
			return err
		}
		matched++
	}
	if matched == 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}
