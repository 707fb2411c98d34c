// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package nosr

// A Node is a lazy view of a value in a nosr document. It records the source
// text and the span of the value within it, and nothing else: the shape of
// the value is discovered when a method is called, by re-scanning the source.
//
// A Node is immutable and cheap to copy. Nodes derived from the same source
// may be used concurrently.
type Node struct {
	src  string
	span Span
}

// NewNode constructs a Node for the given span of src.
// It panics if span is not within src.
func NewNode(src string, span Span) Node {
	if span.Pos < 0 || span.Len < 0 || span.End() > len(src) {
		panic("nosr: span out of range")
	}
	return Node{src: src, span: span}
}

// Document returns the root node of the document in src. The root spans from
// the first token of the input through the last, excluding surrounding
// whitespace, comments, and blank lines. If src contains no tokens, the root
// is empty; this is not an error.
//
// Document scans the whole input once, reporting an error only for an
// unclosed string or comment. The balance of braces and brackets is not
// checked until the value is navigated.
func Document(src string) (Node, error) {
	lex := NewLexer(src)
	if err := lex.Next(); err != nil {
		return Node{}, err
	}
	for lex.Token() == Newline {
		if err := lex.Next(); err != nil {
			return Node{}, err
		}
	}
	if lex.Token() == EOF {
		return Node{src: src}, nil
	}

	span := lex.Span()
	for {
		if err := lex.Next(); err != nil {
			return Node{}, err
		}
		switch lex.Token() {
		case EOF:
			return Node{src: src, span: span}, nil
		case Newline:
			// trailing blank lines do not belong to the value
		default:
			span = span.Merge(lex.Span())
		}
	}
}

// Source returns the complete source text n refers to.
func (n Node) Source() string { return n.src }

// Span returns the span of n within its source.
func (n Node) Span() Span { return n.span }

// Raw returns the undecoded text of n. The result shares storage with the
// source.
func (n Node) Raw() string { return n.span.Extract(n.src) }

// Location returns the complete location of n within its source.
func (n Node) Location() Location { return n.span.Locate(n.src) }

// IsEmpty reports whether n contains no tokens.
func (n Node) IsEmpty() bool { return n.trim() == "" }

// Shape reports the apparent shape of n, based on its first character.
// The contents of n are not checked.
func (n Node) Shape() Shape {
	s := n.trim()
	switch {
	case s == "":
		return EmptyShape
	case s[0] == '{':
		return TableShape
	case s[0] == '[':
		return VectorShape
	default:
		return ScalarShape
	}
}

func (n Node) trim() string { s, _ := n.trimSpan(); return s }

// Shape describes the shape of the value under a Node.
type Shape byte

// Constants defining the valid Shape values.
const (
	EmptyShape  Shape = iota // no value
	TableShape               // { key: value ... }
	VectorShape              // [ value ... ]
	ScalarShape              // quoted string or unquoted text
)

var shapeStr = [...]string{
	EmptyShape:  "empty",
	TableShape:  "table",
	VectorShape: "vector",
	ScalarShape: "scalar",
}

func (s Shape) String() string {
	if int(s) >= len(shapeStr) {
		return "invalid shape"
	}
	return shapeStr[s]
}
