// Package etdoc reads and writes energy-model documents: small text files of
// attributes, free-text comments and computed-value queries.
//
// The text format is line oriented:
//
//	# free-text description
//	- unit = kg
//	- costs.per_unit = 1.5
//	~ demand = SUM(1,2)
//	~ supply =
//	    SUM(
//	      V(a, demand),
//	      V(b, demand)
//	    )
//
// The package provides:
//
//   - Decode/DecodeBytes: text -> ordered Document (comments -> "description",
//     query lines -> "queries", dotted keys -> nested documents, scalar coercion)
//   - Encode/Marshal: Document or map -> canonical text (sorted attributes,
//     queries in insertion order, one blank line between sections)
//   - EncodeCSV: flat "path,value" lines
//   - Flatten: nested mapping -> dotted-path pairs
//   - JSON and YAML interop on *Document, keeping key order
//
// Decoding and encoding are pure functions; independent documents may be
// processed concurrently. Errors are typed (*CannotIdentifyError,
// *ParserError, *IllegalNestedHashError, *InvalidInputError,
// *InvalidKeyError) and AsIssue gives a code-based view of any of them.
//
// Typical usage:
//
//	doc, err := etdoc.Decode(text)
//	doc.Set("unit", "MJ")
//	out, err := etdoc.Encode(doc)
package etdoc
