package ir

import "fmt"

// HashKey is the reserved mapping key carrying a precomputed identity
// hash.
const HashKey = "_hash"

// HashMap is a mapping carrying a precomputed identity hash under the
// reserved "_hash" key. It behaves as an ordinary mapping everywhere,
// but remains hashable so converted values can live inside a Set.
type HashMap map[string]any

// IdentityHash returns the carried hash, or ErrUnhashable when the
// reserved key is absent or not an integer.
func (m HashMap) IdentityHash() (uint64, error) {
	v, ok := m[HashKey]
	if !ok {
		return 0, fmt.Errorf("%w: mapping missing %q", ErrUnhashable, HashKey)
	}
	if i, _, isInt, ok := NormalizeNumber(v); ok && isInt {
		return uint64(i), nil
	}
	return 0, fmt.Errorf("%w: %q is %T, not an integer", ErrUnhashable, HashKey, v)
}
