// Package ir provides the document value substrate shared by all format
// stages.
//
// # Overview
//
// A document is a recursive Go value built from:
//
//   - nil, bool, numbers, string
//   - []any (ordered sequence)
//   - map[string]any (mapping with unique string keys)
//
// On top of that substrate, ir defines the extended value kinds that only
// some stages permit natively:
//
//   - Set: an unordered collection (mutable or frozen), with membership
//     defined by identity hashing and deep equality
//   - Path: a filesystem path value
//   - HashMap: a mapping carrying a precomputed identity hash under the
//     reserved "_hash" key, so an otherwise-unhashable decoded value can
//     live inside a Set
//   - Symbol: sentinel map keys used by the diff machinery
//
// # Identity hashing
//
// HashValue computes a stable 64-bit identity hash (xxh3 over a canonical
// byte encoding). Scalars, Path values, frozen Sets and HashMaps are
// hashable; sequences, mutable Sets and plain mappings are not, and
// hashing them reports ErrUnhashable so callers can fall back to
// non-hashed handling.
//
// Numbers are normalized before hashing and comparison: an integral float
// and the same-valued integer are identical, so set membership survives a
// JSON decode that widens integers to floats.
//
// # Related Packages
//
//   - github.com/J08nY/sec-certs/format - stage conversions over this substrate
//   - github.com/J08nY/sec-certs/libdiff - diff/patch over hashable trees
package ir
