// Package libdiff computes and applies structural diffs over Raw-stage
// documents.
//
// # Usage
//
//	diff, err := libdiff.Make(oldDoc, newDoc)
//	patched, err := libdiff.Apply(oldDoc, diff)
//
// A diff is itself a document: mappings keyed by the reserved symbol
// vocabulary from package ir ($insert, $delete, $replace, $strdiff,
// $setdiff, $arraydiff). It can be carried through the Working→Storage
// conversion, where the symbol keys render in bracketed form, and stored
// alongside the documents it relates.
//
// Make(a, b) returns nil when a and b are equal. Apply(a, nil) returns a.
// For any two documents, Apply(a, Make(a, b)) is Equal to b.
//
// Both operations are pure: inputs are never mutated, unchanged subtrees
// are shared with the result.
//
// # Related Packages
//
//   - github.com/J08nY/sec-certs/ir - document substrate and symbols
//   - github.com/J08nY/sec-certs/format - stage conversions for storing diffs
package libdiff
