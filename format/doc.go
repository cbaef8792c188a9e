// Package format converts security-certificate documents between the four
// representations used by the application.
//
// # Overview
//
// Four stages form a linear chain, each a permitted-value-kind profile of
// the same recursive document substrate:
//
//	Storage  <-->  Working  <-->  Raw  <-->  Obj
//
//   - StorageFormat: database-safe. No sets, no dotted mapping keys, no
//     live path or domain values; collections and paths are encoded as
//     tagged mappings {"_type": ..., "_value": ...}.
//   - WorkingFormat: what application logic and templates consume. Sets
//     and dotted keys are native; paths and domain objects stay tagged.
//   - RawFormat: paths are materialized as ir.Path values, and mappings
//     that must be set members carry a precomputed identity hash.
//   - ObjFormat: tagged mappings whose tag is known to the registry are
//     resolved into live domain instances.
//
// Load and Store are the two façade operations most collaborators need:
//
//	working, err := format.Load(stored)
//	stored, err := format.Store(working)
//
// # Reserved vocabulary
//
// The mapping keys "_type", "_value" and "_hash" are reserved at every
// stage and must not be used as application field names; a document that
// legitimately needs a field named "_type" is not representable without
// ambiguity. Literal dots in mapping keys are replaced by U+FF0E
// (FULLWIDTH FULL STOP) on the way to storage and restored on the way
// back. Working-stage keys starting with "$" are reserved for diff
// symbols.
//
// # Purity
//
// No conversion mutates its input; every conversion allocates a new tree.
// Conversions are synchronous and free of I/O, so concurrent callers on
// disjoint documents never interfere. The only shared resource is the
// type registry passed to RawFormat.ToObject, which must be built before
// any conversion runs and never mutated afterwards.
//
// # Related Packages
//
//   - github.com/J08nY/sec-certs/ir - the document substrate
//   - github.com/J08nY/sec-certs/registry - Obj-stage tag resolution
//   - github.com/J08nY/sec-certs/libdiff - diff/patch over Raw-stage trees
package format
