package format

import (
	"fmt"

	"github.com/J08nY/sec-certs/ir"
)

// WorkingFormat wraps the representation application logic consumes: sets
// and dotted mapping keys are native, paths and domain objects stay as
// tagged mappings.
type WorkingFormat struct {
	doc any
}

func NewWorking(doc any) *WorkingFormat {
	return &WorkingFormat{doc: doc}
}

func (f *WorkingFormat) Get() any {
	return f.doc
}

// ToStorage encodes sets as tagged mappings, escapes dotted keys and
// renders symbol keys in their bracketed form.
func (f *WorkingFormat) ToStorage() (*StorageFormat, error) {
	doc, err := workingToStorage(f.doc, "$")
	if err != nil {
		return nil, err
	}
	return NewStorage(doc), nil
}

func workingToStorage(v any, at string) (any, error) {
	switch x := v.(type) {
	case *ir.Set:
		elems := x.Values()
		seq := make([]any, len(elems))
		for i, e := range elems {
			se, err := workingToStorage(e, atIndex(at, i))
			if err != nil {
				return nil, err
			}
			seq[i] = se
		}
		tag := TagSet
		if x.Frozen() {
			tag = TagFrozenSet
		}
		return map[string]any{TagKey: tag, ValueKey: seq}, nil
	case ir.Path:
		// A stray path at the working stage is encoded rather than
		// leaked so the storage invariants hold.
		return map[string]any{TagKey: TagPath, ValueKey: string(x)}, nil
	case []any:
		res := make([]any, len(x))
		for i, e := range x {
			se, err := workingToStorage(e, atIndex(at, i))
			if err != nil {
				return nil, err
			}
			res[i] = se
		}
		return res, nil
	}
	if m, ok := mapOf(v); ok {
		res := make(map[string]any, len(m))
		for k, vv := range m {
			sv, err := workingToStorage(vv, atField(at, k))
			if err != nil {
				return nil, err
			}
			res[storageKey(k)] = sv
		}
		return res, nil
	}
	return v, nil
}

// storageKey renders one mapping key for storage: symbol keys become
// their bracketed form, literal dots become the substitute character.
func storageKey(k string) string {
	if sym, ok := ir.SymbolOfKey(k); ok {
		return sym.Bracketed()
	}
	return escapeDots(k)
}

// ToRaw materializes tagged path mappings as ir.Path values.
func (f *WorkingFormat) ToRaw() (*RawFormat, error) {
	doc, err := workingToRaw(f.doc, "$")
	if err != nil {
		return nil, err
	}
	return NewRaw(doc), nil
}

func workingToRaw(v any, at string) (any, error) {
	switch x := v.(type) {
	case *ir.Set:
		return convertSet(x, at, workingToRaw)
	case []any:
		res := make([]any, len(x))
		for i, e := range x {
			re, err := workingToRaw(e, atIndex(at, i))
			if err != nil {
				return nil, err
			}
			res[i] = re
		}
		return res, nil
	}
	if m, ok := mapOf(v); ok {
		if tag, ok := m[TagKey].(string); ok && tag == TagPath {
			s, ok := m[ValueKey].(string)
			if !ok {
				return nil, convertErr(at, fmt.Sprintf("%q of a path is %T, not a string", ValueKey, m[ValueKey]), ErrMalformed)
			}
			return ir.Path(s), nil
		}
		res := make(map[string]any, len(m))
		for k, vv := range m {
			re, err := workingToRaw(vv, atField(at, k))
			if err != nil {
				return nil, err
			}
			res[k] = re
		}
		if _, ok := res[HashKey]; ok {
			return ir.HashMap(res), nil
		}
		return res, nil
	}
	return v, nil
}

func mapOf(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case ir.HashMap:
		return map[string]any(m), true
	}
	return nil, false
}

// convertSet rebuilds a set with each element passed through conv.
func convertSet(s *ir.Set, at string, conv func(any, string) (any, error)) (*ir.Set, error) {
	elems := s.Values()
	out := make([]any, len(elems))
	for i, e := range elems {
		ce, err := conv(e, atIndex(at, i))
		if err != nil {
			return nil, err
		}
		out[i] = ce
	}
	var (
		res *ir.Set
		err error
	)
	if s.Frozen() {
		res, err = ir.NewFrozenSet(out...)
	} else {
		res, err = ir.NewSet(out...)
	}
	if err != nil {
		return nil, convertErr(at, "converted set element is unhashable", err)
	}
	return res, nil
}
