package libdiff

import (
	"strconv"

	"github.com/J08nY/sec-certs/debug"
	"github.com/J08nY/sec-certs/ir"
)

// Apply patches doc with a diff produced by Make. A nil diff returns
// the document unchanged. The document is never mutated; edited
// mappings and sequences are rebuilt, untouched subtrees shared.
func Apply(doc, diff any) (any, error) {
	if debug.Patch() {
		debug.Logf("libdiff: applying diff")
		debug.LogAny(diff)
	}
	return applyDiff(doc, diff, "$")
}

func applyDiff(v, d any, at string) (any, error) {
	if d == nil {
		return v, nil
	}
	dm, ok := mapValue(d)
	if !ok {
		return nil, diffErr(at, "diff node is not a mapping", nil)
	}
	if r, ok := dm[ir.Replace.Key()]; ok {
		return r, nil
	}
	if p, ok := dm[ir.StrDiff.Key()]; ok {
		return applyStrDiff(v, p, at)
	}
	if sd, ok := dm[ir.SetDiff.Key()]; ok {
		return applySetDiff(v, sd, at)
	}
	if ad, ok := dm[ir.ArrayDiff.Key()]; ok {
		return applyArrayDiff(v, ad, at)
	}
	return applyMapDiff(v, dm, at)
}

func applyStrDiff(v, p any, at string) (any, error) {
	doc, ok := v.(string)
	if !ok {
		return nil, diffErr(at, "string patch against a non-string", nil)
	}
	text, ok := p.(string)
	if !ok {
		return nil, diffErr(at, "string patch body is not a string", nil)
	}
	return patchString(doc, text, at)
}

func applySetDiff(v, sd any, at string) (any, error) {
	set, ok := v.(*ir.Set)
	if !ok {
		return nil, diffErr(at, "set patch against a non-set", nil)
	}
	body, ok := mapValue(sd)
	if !ok {
		return nil, diffErr(at, "set patch body is not a mapping", nil)
	}
	insert, _ := body["insert"].([]any)
	remove, _ := body["delete"].([]any)

	gone, err := ir.NewSet(remove...)
	if err != nil {
		return nil, diffErr(at, "set patch delete element", err)
	}
	elems := make([]any, 0, set.Len()+len(insert))
	for _, e := range set.Values() {
		in, err := gone.Contains(e)
		if err != nil {
			return nil, diffErr(at, "set element", err)
		}
		if !in {
			elems = append(elems, e)
		}
	}
	elems = append(elems, insert...)
	if set.Frozen() {
		return ir.NewFrozenSet(elems...)
	}
	return ir.NewSet(elems...)
}

func applyArrayDiff(v, ad any, at string) (any, error) {
	seq, ok := v.([]any)
	if !ok {
		return nil, diffErr(at, "array patch against a non-sequence", nil)
	}
	edits, ok := mapValue(ad)
	if !ok {
		return nil, diffErr(at, "array patch body is not a mapping", nil)
	}
	res := make([]any, len(seq))
	copy(res, seq)
	for k, sub := range edits {
		i, err := strconv.Atoi(k)
		if err != nil {
			return nil, diffErr(at, "array patch index "+strconv.Quote(k), err)
		}
		if i < 0 || i >= len(res) {
			return nil, diffErr(atIndex(at, i), "array patch index out of range", nil)
		}
		pv, err := applyDiff(res[i], sub, atIndex(at, i))
		if err != nil {
			return nil, err
		}
		res[i] = pv
	}
	return res, nil
}

func applyMapDiff(v any, dm map[string]any, at string) (any, error) {
	vm, ok := mapValue(v)
	if !ok {
		return nil, diffErr(at, "mapping patch against a non-mapping", nil)
	}
	res := make(map[string]any, len(vm))
	for k, vv := range vm {
		res[k] = vv
	}
	for k, sub := range dm {
		switch k {
		case ir.Insert.Key():
			ins, ok := mapValue(sub)
			if !ok {
				return nil, diffErr(at, "insert body is not a mapping", nil)
			}
			for ik, iv := range ins {
				res[ik] = iv
			}
		case ir.Delete.Key():
			keys, ok := sub.([]any)
			if !ok {
				return nil, diffErr(at, "delete body is not a sequence", nil)
			}
			for _, dk := range keys {
				name, ok := dk.(string)
				if !ok {
					return nil, diffErr(at, "delete key is not a string", nil)
				}
				if _, ok := res[name]; !ok {
					return nil, diffErr(atField(at, name), "deleting a missing key", nil)
				}
				delete(res, name)
			}
		default:
			cur, ok := res[k]
			if !ok {
				return nil, diffErr(atField(at, k), "patching a missing key", nil)
			}
			pv, err := applyDiff(cur, sub, atField(at, k))
			if err != nil {
				return nil, err
			}
			res[k] = pv
		}
	}
	if _, ok := res[ir.HashKey]; ok {
		return ir.HashMap(res), nil
	}
	return res, nil
}
