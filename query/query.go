package query

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/J08nY/sec-certs/debug"
	"github.com/J08nY/sec-certs/format"
	"github.com/J08nY/sec-certs/ir"
)

// Query is a compiled boolean filter over Working-stage documents.
type Query struct {
	src  string
	prog *vm.Program
}

// Compile builds a query. Undefined variables are allowed so a filter
// can name fields only some documents carry; referencing a missing
// field yields nil, not an error.
func Compile(src string) (*Query, error) {
	prog, err := expr.Compile(src, expr.AllowUndefinedVariables(), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("compiling query %q: %w", src, err)
	}
	return &Query{src: src, prog: prog}, nil
}

func (q *Query) Source() string {
	return q.src
}

// Match evaluates the query against one document. The document must be
// a mapping at the top level; its fields become the expression
// environment.
func (q *Query) Match(doc any) (bool, error) {
	m, ok := mapValue(doc)
	if !ok {
		return false, fmt.Errorf("query target is %T, want a mapping", doc)
	}
	env := make(map[string]any, len(m))
	for k, v := range m {
		env[k] = plain(v)
	}
	res, err := expr.Run(q.prog, env)
	if err != nil {
		return false, fmt.Errorf("running query %q: %w", q.src, err)
	}
	matched, ok := res.(bool)
	if !ok {
		return false, fmt.Errorf("query %q did not yield a boolean", q.src)
	}
	if debug.Query() {
		debug.Logf("query: %s -> %v", q.src, matched)
	}
	return matched, nil
}

// Select returns the documents matching the query, in input order.
func (q *Query) Select(docs []any) ([]any, error) {
	var out []any
	for i, doc := range docs {
		ok, err := q.Match(doc)
		if err != nil {
			return nil, fmt.Errorf("document %d: %w", i, err)
		}
		if ok {
			out = append(out, doc)
		}
	}
	return out, nil
}

// plain strips the tagged encodings for expression use: sets become
// element slices, path mappings and live paths become strings.
func plain(v any) any {
	switch x := v.(type) {
	case *ir.Set:
		vals := x.Values()
		out := make([]any, len(vals))
		for i, e := range vals {
			out[i] = plain(e)
		}
		return out
	case ir.Path:
		return string(x)
	case []any:
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = plain(e)
		}
		return out
	}
	if m, ok := mapValue(v); ok {
		if m[format.TagKey] == format.TagPath {
			if s, ok := m[format.ValueKey].(string); ok {
				return s
			}
		}
		out := make(map[string]any, len(m))
		for k, vv := range m {
			out[k] = plain(vv)
		}
		return out
	}
	return v
}

func mapValue(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case ir.HashMap:
		return map[string]any(m), true
	}
	return nil, false
}
