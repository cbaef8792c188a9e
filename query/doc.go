// Package query filters Working-stage documents with compiled boolean
// expressions.
//
// # Usage
//
//	q, err := query.Compile(`category == "ICs" and len(security_level) > 0`)
//	ok, err := q.Match(doc)
//
// Expressions see the document's top-level fields as variables: sets
// appear as element slices, path mappings as plain strings, so a query
// never needs to know about the tagged encodings.
//
// # Related Packages
//
//   - github.com/J08nY/sec-certs/format - produces the documents queried here
package query
