package main

import (
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-json"
	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"

	"github.com/J08nY/sec-certs/format"
)

func readDoc(cfg *MainConfig, cc *cli.Context, file string) (any, error) {
	var r io.Reader
	if file == "-" {
		r = cc.In
	} else {
		f, err := os.Open(file)
		if err != nil {
			return nil, fmt.Errorf("could not open %q: %w", file, err)
		}
		defer f.Close()
		r = f
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", file, err)
	}
	return decodeDoc(cfg, data, file)
}

func decodeDoc(cfg *MainConfig, data []byte, file string) (any, error) {
	if cfg.Y {
		var v any
		if err := yaml.Unmarshal(data, &v); err != nil {
			return nil, fmt.Errorf("error decoding %q: %w", file, err)
		}
		return v, nil
	}
	v, err := format.DecodeJSON(data)
	if err != nil {
		return nil, fmt.Errorf("error decoding %q: %w", file, err)
	}
	return v, nil
}

func writeDoc(cfg *MainConfig, w io.Writer, doc any) error {
	var (
		data []byte
		err  error
	)
	if cfg.Y {
		data, err = yaml.Marshal(doc)
	} else {
		data, err = json.MarshalIndent(doc, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return err
	}
	_, err = w.Write([]byte("\n"))
	return err
}

// eachFile runs fn per input file, defaulting to stdin, separating
// outputs the way the inputs arrived.
func eachFile(cc *cli.Context, args []string, fn func(file string) error) error {
	if len(args) == 0 {
		return fn("-")
	}
	for i, file := range args {
		if err := fn(file); err != nil {
			return err
		}
		if i < len(args)-1 {
			if _, err := cc.Out.Write([]byte("---\n")); err != nil {
				return err
			}
		}
	}
	return nil
}
