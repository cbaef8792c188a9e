package format

import (
	"errors"

	"github.com/J08nY/sec-certs/ir"
	"github.com/J08nY/sec-certs/registry"
)

// ObjFormat wraps a document containing live domain instances.
type ObjFormat struct {
	doc any
}

func NewObj(doc any) *ObjFormat {
	return &ObjFormat{doc: doc}
}

func (f *ObjFormat) Get() any {
	return f.doc
}

// ToRaw replaces each live domain instance with a tagged mapping.
// Encoding and hashing dispatch through the registry descriptor for the
// instance's tag; an instance whose tag is not registered falls back to
// its own encode and hash operations, mirroring the unknown-tag
// passthrough of ToObject. When a hash is available, the mapping carries
// it under "_hash"; an unhashable instance is emitted without one. The
// hash is best-effort metadata, never required for the tree shape.
func (f *ObjFormat) ToRaw(reg *registry.Registry) (*RawFormat, error) {
	doc, err := objToRaw(f.doc, reg, "$")
	if err != nil {
		return nil, err
	}
	return NewRaw(doc), nil
}

func objToRaw(v any, reg *registry.Registry, at string) (any, error) {
	if s, ok := v.(registry.Serializable); ok {
		return encodeInstance(v, s, reg, at)
	}
	switch x := v.(type) {
	case *ir.Set:
		return convertSet(x, at, func(e any, eat string) (any, error) {
			return objToRaw(e, reg, eat)
		})
	case []any:
		res := make([]any, len(x))
		for i, e := range x {
			re, err := objToRaw(e, reg, atIndex(at, i))
			if err != nil {
				return nil, err
			}
			res[i] = re
		}
		return res, nil
	}
	if m, ok := mapOf(v); ok {
		res := make(map[string]any, len(m))
		for k, vv := range m {
			re, err := objToRaw(vv, reg, atField(at, k))
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

func encodeInstance(v any, s registry.Serializable, reg *registry.Registry, at string) (any, error) {
	tag := s.SerialTag()
	var desc *registry.Descriptor
	if reg != nil {
		desc, _ = reg.Resolve(tag)
	}

	var fields map[string]any
	var err error
	if desc != nil && desc.Encode != nil {
		fields, err = desc.Encode(v)
	} else {
		fields, err = s.Encode()
	}
	if err != nil {
		return nil, convertErr(at, "encoding "+tag, err)
	}
	res := make(map[string]any, len(fields)+2)
	for k, fv := range fields {
		re, err := objToRaw(fv, reg, atField(at, k))
		if err != nil {
			return nil, err
		}
		res[k] = re
	}
	res[TagKey] = tag

	// A registered descriptor is authoritative: a nil Hash means the
	// type has no identity hash, even when the instance could compute
	// one itself.
	var h uint64
	herr := ir.ErrUnhashable
	if desc != nil {
		if desc.Hash != nil {
			h, herr = desc.Hash(v)
		}
	} else if hv, ok := v.(ir.Hasher); ok {
		h, herr = hv.IdentityHash()
	}
	switch {
	case herr == nil:
		res[HashKey] = int64(h)
		return ir.HashMap(res), nil
	case errors.Is(herr, ir.ErrUnhashable):
		return res, nil
	default:
		return nil, convertErr(at, "hashing "+tag, herr)
	}
}
