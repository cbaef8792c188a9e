package libdiff

import (
	"sort"
	"strconv"

	"github.com/J08nY/sec-certs/debug"
	"github.com/J08nY/sec-certs/ir"
)

// Make computes the diff turning from into to. A nil diff means the two
// documents are equal. Errors arise only from identity hashing of set
// elements.
func Make(from, to any) (any, error) {
	d, err := makeDiff(from, to, "$")
	if err != nil {
		return nil, err
	}
	if debug.Diff() {
		debug.Logf("libdiff: made diff")
		debug.LogAny(d)
	}
	return d, nil
}

func makeDiff(a, b any, at string) (any, error) {
	if ir.Equal(a, b) {
		return nil, nil
	}
	switch x := a.(type) {
	case *ir.Set:
		if y, ok := b.(*ir.Set); ok {
			return setDiff(x, y, at)
		}
	case []any:
		if y, ok := b.([]any); ok && len(x) == len(y) {
			return arrayDiff(x, y, at)
		}
	case string:
		if y, ok := b.(string); ok {
			return stringDiff(x, y), nil
		}
	}
	if am, ok := mapValue(a); ok {
		if bm, ok := mapValue(b); ok {
			return mapDiff(am, bm, at)
		}
	}
	return replaceWith(b), nil
}

func replaceWith(v any) map[string]any {
	return map[string]any{ir.Replace.Key(): v}
}

// mapDiff edits keys in place: changed keys carry sub-diffs, new keys
// land under $insert, dropped keys are listed under $delete.
func mapDiff(a, b map[string]any, at string) (any, error) {
	res := make(map[string]any)
	var inserted map[string]any
	var deleted []string

	for k, av := range a {
		bv, ok := b[k]
		if !ok {
			deleted = append(deleted, k)
			continue
		}
		sub, err := makeDiff(av, bv, atField(at, k))
		if err != nil {
			return nil, err
		}
		if sub != nil {
			res[k] = sub
		}
	}
	for k, bv := range b {
		if _, ok := a[k]; !ok {
			if inserted == nil {
				inserted = make(map[string]any)
			}
			inserted[k] = bv
		}
	}
	if inserted != nil {
		res[ir.Insert.Key()] = inserted
	}
	if deleted != nil {
		sort.Strings(deleted)
		keys := make([]any, len(deleted))
		for i, k := range deleted {
			keys[i] = k
		}
		res[ir.Delete.Key()] = keys
	}
	return res, nil
}

// setDiff is membership based: wholly new elements are inserted, gone
// elements deleted. Elements are matched by identity hash, so a changed
// element shows up as one delete plus one insert.
func setDiff(a, b *ir.Set, at string) (any, error) {
	insert := []any{}
	remove := []any{}
	for _, e := range b.Values() {
		in, err := a.Contains(e)
		if err != nil {
			return nil, diffErr(at, "set element", err)
		}
		if !in {
			insert = append(insert, e)
		}
	}
	for _, e := range a.Values() {
		in, err := b.Contains(e)
		if err != nil {
			return nil, diffErr(at, "set element", err)
		}
		if !in {
			remove = append(remove, e)
		}
	}
	return map[string]any{
		ir.SetDiff.Key(): map[string]any{
			"insert": insert,
			"delete": remove,
		},
	}, nil
}

// arrayDiff covers equal-length sequences with positional sub-diffs
// keyed by decimal index. Length changes fall back to replacement
// before this is reached.
func arrayDiff(a, b []any, at string) (any, error) {
	edits := make(map[string]any)
	for i := range a {
		sub, err := makeDiff(a[i], b[i], atIndex(at, i))
		if err != nil {
			return nil, err
		}
		if sub != nil {
			edits[strconv.Itoa(i)] = sub
		}
	}
	return map[string]any{ir.ArrayDiff.Key(): edits}, nil
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
