package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/goccy/go-json"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/J08nY/sec-certs/format"
	"github.com/J08nY/sec-certs/ir"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	colors := viewColors(cfg.MainConfig, cc.Out)
	return eachFile(cc, args, func(file string) error {
		doc, err := readDoc(cfg.MainConfig, cc, file)
		if err != nil {
			return err
		}
		if err := colors.render(cc.Out, doc, 0); err != nil {
			return err
		}
		_, err = cc.Out.Write([]byte("\n"))
		return err
	})
}

type colors struct {
	key      *color.Color
	reserved *color.Color
	symbol   *color.Color
	str      *color.Color
}

func viewColors(cfg *MainConfig, w io.Writer) *colors {
	on := cfg.Color
	if !on {
		if f, ok := w.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
			on = true
		}
	}
	c := &colors{
		key:      color.New(color.FgCyan),
		reserved: color.New(color.FgYellow),
		symbol:   color.New(color.FgMagenta),
		str:      color.New(color.FgGreen),
	}
	if !on {
		for _, cc := range []*color.Color{c.key, c.reserved, c.symbol, c.str} {
			cc.DisableColor()
		}
	}
	return c
}

func (c *colors) render(w io.Writer, v any, depth int) error {
	ind := strings.Repeat("  ", depth)
	switch x := v.(type) {
	case map[string]any:
		return c.renderMap(w, x, depth)
	case ir.HashMap:
		return c.renderMap(w, map[string]any(x), depth)
	case []any:
		if len(x) == 0 {
			_, err := io.WriteString(w, "[]")
			return err
		}
		if _, err := io.WriteString(w, "[\n"); err != nil {
			return err
		}
		for i, e := range x {
			if _, err := io.WriteString(w, ind+"  "); err != nil {
				return err
			}
			if err := c.render(w, e, depth+1); err != nil {
				return err
			}
			if i < len(x)-1 {
				if _, err := io.WriteString(w, ","); err != nil {
					return err
				}
			}
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, ind+"]")
		return err
	case string:
		q, err := json.Marshal(x)
		if err != nil {
			return err
		}
		_, err = c.str.Fprint(w, string(q))
		return err
	case nil:
		_, err := io.WriteString(w, "null")
		return err
	default:
		_, err := fmt.Fprintf(w, "%v", x)
		return err
	}
}

func (c *colors) renderMap(w io.Writer, m map[string]any, depth int) error {
	if len(m) == 0 {
		_, err := io.WriteString(w, "{}")
		return err
	}
	ind := strings.Repeat("  ", depth)
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	if _, err := io.WriteString(w, "{\n"); err != nil {
		return err
	}
	for i, k := range keys {
		if _, err := io.WriteString(w, ind+"  "); err != nil {
			return err
		}
		if _, err := c.keyColor(k).Fprintf(w, "%q", k); err != nil {
			return err
		}
		if _, err := io.WriteString(w, ": "); err != nil {
			return err
		}
		if err := c.render(w, m[k], depth+1); err != nil {
			return err
		}
		if i < len(keys)-1 {
			if _, err := io.WriteString(w, ","); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, ind+"}")
	return err
}

func (c *colors) keyColor(k string) *color.Color {
	switch k {
	case format.TagKey, format.ValueKey, format.HashKey:
		return c.reserved
	}
	for _, s := range ir.Symbols() {
		if k == s.Bracketed() {
			return c.symbol
		}
	}
	return c.key
}
