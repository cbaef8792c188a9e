// Package certs holds the security-certificate domain types that
// participate in the tagged document chain.
//
// # Overview
//
// Each type implements the serializable contract from package registry:
// a stable type tag plus field encoding. Decoding goes through the
// descriptors returned by Descriptors, so a document containing tagged
// mappings for these types resolves to live instances at the Object
// stage.
//
// Field values are normalized at construction. Strings are unescaped
// and trimmed, links get a stable URL form, dates parse from ISO
// calendar form. A value that was constructed is therefore already in
// its wire shape.
//
// # Related Packages
//
//   - registry: tag to descriptor resolution
//   - format: the stage conversions that call the descriptors
package certs
