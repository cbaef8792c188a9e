package format

import (
	"fmt"

	"github.com/J08nY/sec-certs/ir"
)

// StorageFormat wraps a database-safe document: no sets, no dotted
// mapping keys, no live path or domain values.
type StorageFormat struct {
	doc any
}

func NewStorage(doc any) *StorageFormat {
	return &StorageFormat{doc: doc}
}

func (f *StorageFormat) Get() any {
	return f.doc
}

// ToWorking rebuilds sets from their tagged encodings and restores dotted
// mapping keys, at every depth.
func (f *StorageFormat) ToWorking() (*WorkingFormat, error) {
	doc, err := storageToWorking(f.doc, "$")
	if err != nil {
		return nil, err
	}
	return NewWorking(doc), nil
}

func storageToWorking(v any, at string) (any, error) {
	switch x := v.(type) {
	case map[string]any:
		if tag, ok := x[TagKey].(string); ok && (tag == TagSet || tag == TagFrozenSet) {
			return storageSet(x, tag, at)
		}
		res := make(map[string]any, len(x))
		for k, vv := range x {
			wv, err := storageToWorking(vv, atField(at, k))
			if err != nil {
				return nil, err
			}
			res[restoreDots(k)] = wv
		}
		if _, ok := res[HashKey]; ok {
			// Keep hash-carrying mappings hashable so stored sets of
			// converted values reconstruct with membership intact.
			return ir.HashMap(res), nil
		}
		return res, nil
	case []any:
		res := make([]any, len(x))
		for i, e := range x {
			we, err := storageToWorking(e, atIndex(at, i))
			if err != nil {
				return nil, err
			}
			res[i] = we
		}
		return res, nil
	}
	return v, nil
}

func storageSet(x map[string]any, tag, at string) (any, error) {
	raw, ok := x[ValueKey]
	if !ok {
		return nil, convertErr(at, fmt.Sprintf("%q = %q without %q", TagKey, tag, ValueKey), ErrMalformed)
	}
	seq, ok := raw.([]any)
	if !ok {
		return nil, convertErr(at, fmt.Sprintf("%q of a %q is %T, not a sequence", ValueKey, tag, raw), ErrMalformed)
	}
	elems := make([]any, len(seq))
	for i, e := range seq {
		we, err := storageToWorking(e, atIndex(at, i))
		if err != nil {
			return nil, err
		}
		elems[i] = we
	}
	var (
		s   *ir.Set
		err error
	)
	if tag == TagFrozenSet {
		s, err = ir.NewFrozenSet(elems...)
	} else {
		s, err = ir.NewSet(elems...)
	}
	if err != nil {
		return nil, convertErr(at, "unhashable set element", err)
	}
	return s, nil
}

// ToJSONMapping flattens the document to plain JSON-safe values: sets
// become arrays, Path tags become their string, carried hashes are
// dropped and dotted keys are restored. The result is for rendering and
// export; it does not round-trip.
func (f *StorageFormat) ToJSONMapping() (any, error) {
	return jsonMapping(f.doc, "$")
}

func jsonMapping(v any, at string) (any, error) {
	switch x := v.(type) {
	case map[string]any:
		if tag, ok := x[TagKey].(string); ok {
			switch tag {
			case TagSet, TagFrozenSet:
				raw, ok := x[ValueKey]
				if !ok {
					return nil, convertErr(at, fmt.Sprintf("%q = %q without %q", TagKey, tag, ValueKey), ErrMalformed)
				}
				seq, ok := raw.([]any)
				if !ok {
					return nil, convertErr(at, fmt.Sprintf("%q of a %q is %T, not a sequence", ValueKey, tag, raw), ErrMalformed)
				}
				res := make([]any, len(seq))
				for i, e := range seq {
					je, err := jsonMapping(e, atIndex(at, i))
					if err != nil {
						return nil, err
					}
					res[i] = je
				}
				return res, nil
			case TagPath:
				s, ok := x[ValueKey].(string)
				if !ok {
					return nil, convertErr(at, fmt.Sprintf("%q of a path is %T, not a string", ValueKey, x[ValueKey]), ErrMalformed)
				}
				return s, nil
			}
		}
		res := make(map[string]any, len(x))
		for k, vv := range x {
			if k == HashKey {
				continue
			}
			je, err := jsonMapping(vv, atField(at, k))
			if err != nil {
				return nil, err
			}
			res[restoreDots(k)] = je
		}
		return res, nil
	case []any:
		res := make([]any, len(x))
		for i, e := range x {
			je, err := jsonMapping(e, atIndex(at, i))
			if err != nil {
				return nil, err
			}
			res[i] = je
		}
		return res, nil
	}
	return v, nil
}
