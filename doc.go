// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package nosr implements a lazy parser for the nosr data format.
//
// # Format
//
// A nosr document is a single value: a table, a vector, or a scalar.
//
//	# A line comment runs to the end of the line.
//	{
//	   name: Alice
//	   city: "San Francisco"   #* a block comment *#
//	   tags: [a, b; c
//	          d]
//	}
//
// A table is a set of key: value members enclosed in braces. A vector is a
// sequence of values enclosed in square brackets. Entries are separated by
// commas, semicolons, or line breaks; any run of separators counts as one,
// so trailing separators are ignored. A scalar is either a quoted string or
// a run of unquoted text ending at whitespace, a structural character
// ({ } [ ] : , ;), or the start of a block comment.
//
// Quoted strings support the escapes \\ \n \t \r \: \" \[ \] \{ \}.
// The type of a scalar is not fixed by the syntax: the caller chooses how to
// interpret it, using Text, Uint64, or Double.
//
// # Nodes
//
// Parsing is lazy. Document returns a Node that records only the location of
// the root value in the source text:
//
//	root, err := nosr.Document(input)
//	if err != nil {
//	   log.Fatalf("Document: %v", err)
//	}
//
// Navigating a Node re-scans just the portion of the source needed to find
// the requested entry, and returns another Node:
//
//	city, err := root.Tab("city")   // a single member of a table
//	tag, err := tags.Vec(2)         // a single element of a vector
//	all, err := root.Table()        // all the members of a table
//
// A Node shares the source text and never copies it, so the source must not
// be modified while any Node derived from it is in use.
//
// # Errors
//
// Errors reported by this package have concrete type [*Error], carrying an
// [ErrorKind] and the [Span] of the source nearest the failure. An ErrorKind
// is itself an error, for use with errors.Is:
//
//	port, err := root.Tab("port")
//	if errors.Is(err, nosr.KeyNotFound) {
//	   port = defaultPort
//	}
package nosr
