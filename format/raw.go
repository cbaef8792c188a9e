package format

import (
	"github.com/J08nY/sec-certs/ir"
	"github.com/J08nY/sec-certs/registry"
)

// RawFormat wraps the representation the diff machinery consumes: paths
// are live ir.Path values and mappings destined for sets carry identity
// hashes.
type RawFormat struct {
	doc any
}

func NewRaw(doc any) *RawFormat {
	return &RawFormat{doc: doc}
}

func (f *RawFormat) Get() any {
	return f.doc
}

// ToWorking encodes live paths back to hash-carrying tagged mappings and
// marks any mapping that carries "_hash" as hash-bearing, so converted
// values can be placed into sets later.
func (f *RawFormat) ToWorking() (*WorkingFormat, error) {
	doc, err := rawToWorking(f.doc, "$")
	if err != nil {
		return nil, err
	}
	return NewWorking(doc), nil
}

func rawToWorking(v any, at string) (any, error) {
	switch x := v.(type) {
	case ir.Path:
		h, _ := x.IdentityHash()
		return ir.HashMap{TagKey: TagPath, ValueKey: string(x), HashKey: int64(h)}, nil
	case *ir.Set:
		return convertSet(x, at, rawToWorking)
	case []any:
		res := make([]any, len(x))
		for i, e := range x {
			we, err := rawToWorking(e, atIndex(at, i))
			if err != nil {
				return nil, err
			}
			res[i] = we
		}
		return res, nil
	}
	if m, ok := mapOf(v); ok {
		res := make(map[string]any, len(m))
		for k, vv := range m {
			we, err := rawToWorking(vv, atField(at, k))
			if err != nil {
				return nil, err
			}
			res[k] = we
		}
		if _, ok := res[HashKey]; ok {
			return ir.HashMap(res), nil
		}
		return res, nil
	}
	return v, nil
}

// ToObject resolves tagged mappings whose tag the registry knows into
// live domain instances. Unknown tags pass through as plain mappings so
// documents written by sources unaware of a type still round-trip.
// Resolution is bottom-up: nested instances exist before their container
// is decoded.
func (f *RawFormat) ToObject(reg *registry.Registry) (*ObjFormat, error) {
	doc, err := rawToObject(f.doc, reg, "$")
	if err != nil {
		return nil, err
	}
	return NewObj(doc), nil
}

func rawToObject(v any, reg *registry.Registry, at string) (any, error) {
	switch x := v.(type) {
	case *ir.Set:
		return convertSet(x, at, func(e any, eat string) (any, error) {
			return rawToObject(e, reg, eat)
		})
	case []any:
		res := make([]any, len(x))
		for i, e := range x {
			oe, err := rawToObject(e, reg, atIndex(at, i))
			if err != nil {
				return nil, err
			}
			res[i] = oe
		}
		return res, nil
	}
	if m, ok := mapOf(v); ok {
		res := make(map[string]any, len(m))
		for k, vv := range m {
			oe, err := rawToObject(vv, reg, atField(at, k))
			if err != nil {
				return nil, err
			}
			res[k] = oe
		}
		if reg != nil {
			if tag, ok := res[TagKey].(string); ok {
				if desc, ok := reg.Resolve(tag); ok {
					delete(res, TagKey)
					delete(res, HashKey)
					inst, err := desc.Decode(res)
					if err != nil {
						return nil, convertErr(at, "decoding tagged mapping "+tag, err)
					}
					return inst, nil
				}
			}
		}
		if _, ok := res[HashKey]; ok {
			return ir.HashMap(res), nil
		}
		return res, nil
	}
	return v, nil
}
