package ir

import "reflect"

// Equaler lets domain values define their own equality contract, used at
// the Obj stage where live instances appear inside documents.
type Equaler interface {
	Equal(other any) bool
}

// Equal reports deep semantic equality of two document values.
//
// Mappings compare by key set and values (a HashMap equals a plain map
// with the same content), sequences element-wise in order, sets by
// membership, and numbers by normalized value, so 1 == 1.0.
func Equal(a, b any) bool {
	switch x := a.(type) {
	case *Set:
		y, ok := b.(*Set)
		return ok && x.Equal(y)
	case Path:
		y, ok := b.(Path)
		return ok && x == y
	case []any:
		y, ok := b.([]any)
		if !ok || len(x) != len(y) {
			return false
		}
		for i := range x {
			if !Equal(x[i], y[i]) {
				return false
			}
		}
		return true
	}
	if xm, ok := mapOf(a); ok {
		ym, ok := mapOf(b)
		if !ok || len(xm) != len(ym) {
			return false
		}
		for k, xv := range xm {
			yv, ok := ym[k]
			if !ok || !Equal(xv, yv) {
				return false
			}
		}
		return true
	}
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if xi, xf, xInt, ok := NormalizeNumber(a); ok {
		yi, yf, yInt, ok := NormalizeNumber(b)
		if !ok || xInt != yInt {
			return false
		}
		if xInt {
			return xi == yi
		}
		return xf == yf
	}
	switch x := a.(type) {
	case bool:
		y, ok := b.(bool)
		return ok && x == y
	case string:
		y, ok := b.(string)
		return ok && x == y
	}
	if eq, ok := a.(Equaler); ok {
		return eq.Equal(b)
	}
	if ta, tb := reflect.TypeOf(a), reflect.TypeOf(b); ta == tb && ta.Comparable() {
		return a == b
	}
	return false
}

func mapOf(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case HashMap:
		return map[string]any(m), true
	}
	return nil, false
}
