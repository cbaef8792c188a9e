package ir

import "fmt"

// Hasher is implemented by values that carry or can compute a stable
// identity hash. Implementations report ErrUnhashable (wrapped or bare)
// when no hash exists for the current value.
type Hasher interface {
	IdentityHash() (uint64, error)
}

// HashValue returns the identity hash of a document value.
//
// Scalars hash by normalized value, Path values, HashMaps and frozen Sets
// hash through their Hasher implementation, and any other value (sequences,
// plain mappings, mutable sets) reports ErrUnhashable.
func HashValue(v any) (uint64, error) {
	if h, ok := v.(Hasher); ok {
		return h.IdentityHash()
	}
	if v == nil {
		return hashKind(kindNull, nil), nil
	}
	switch x := v.(type) {
	case bool:
		return hashBool(x), nil
	case string:
		return hashString(kindString, x), nil
	case []any:
		return 0, fmt.Errorf("%w: sequence", ErrUnhashable)
	case map[string]any:
		return 0, fmt.Errorf("%w: mapping without %q", ErrUnhashable, "_hash")
	}
	if i, f, isInt, ok := NormalizeNumber(v); ok {
		if isInt {
			return hashInt(i), nil
		}
		return hashFloat(f), nil
	}
	return 0, fmt.Errorf("%w: %T", ErrUnhashable, v)
}
