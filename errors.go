// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package nosr

import (
	"fmt"
	"strconv"
)

// ErrorKind classifies the errors reported by this package.
// An ErrorKind satisfies the error interface, so that callers may write:
//
//	if errors.Is(err, nosr.KeyNotFound) { ... }
type ErrorKind byte

// Constants defining the valid ErrorKind values.
const (
	UnexpectedEOF   ErrorKind = iota + 1 // input ended in the middle of a value
	UnexpectedChar                       // a character that cannot appear here
	ExpectedChar                         // a required character is missing
	InvalidEscape                        // unknown escape sequence in a string
	UnclosedString                       // a string literal with no closing quote
	UnclosedComment                      // a block comment with no closing "*#"
	NotATable                            // a table was required
	NotAVector                           // a vector was required
	NotAScalar                           // a scalar was required
	KeyNotFound                          // a table has no such key
	IndexOutOfBounds                     // a vector has no such index
	ParseError                           // a scalar has the wrong format
)

var kindStr = [...]string{
	0:                "invalid error",
	UnexpectedEOF:    "unexpected end of input",
	UnexpectedChar:   "unexpected character",
	ExpectedChar:     "expected character",
	InvalidEscape:    "invalid escape sequence",
	UnclosedString:   "unclosed string literal",
	UnclosedComment:  "unclosed block comment",
	NotATable:        "expected a table",
	NotAVector:       "expected a vector",
	NotAScalar:       "expected a scalar value",
	KeyNotFound:      "key not found",
	IndexOutOfBounds: "index out of bounds",
	ParseError:       "parse error",
}

func (k ErrorKind) String() string {
	v := int(k)
	if v >= len(kindStr) {
		return kindStr[0]
	}
	return kindStr[v]
}

// Error satisfies the error interface.
func (k ErrorKind) Error() string { return k.String() }

// Error is the concrete type of errors reported by this package. Every error
// carries the span of the source text nearest to the point of failure.
//
// Only the detail field corresponding to Kind is populated:
//
//	Kind                               | Detail
//	---------------------------------- | ---------
//	UnexpectedChar, ExpectedChar,      | Char
//	InvalidEscape                      |
//	KeyNotFound                        | Key
//	IndexOutOfBounds                   | Index
//	ParseError                         | Message
type Error struct {
	Kind ErrorKind
	Span Span

	Char    rune   // the offending or required character
	Key     string // the missing key
	Index   int    // the missing index
	Message string // a description of the parse failure

	err error
}

// Error satisfies the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s (offset %d)", e.describe(), e.Span.Pos)
}

func (e *Error) describe() string {
	switch e.Kind {
	case UnexpectedChar:
		return fmt.Sprintf("unexpected character %q", e.Char)
	case ExpectedChar:
		return fmt.Sprintf("expected %q", e.Char)
	case InvalidEscape:
		return fmt.Sprintf(`invalid escape sequence "\%c"`, e.Char)
	case KeyNotFound:
		return fmt.Sprintf("key %s not found", strconv.Quote(e.Key))
	case IndexOutOfBounds:
		return fmt.Sprintf("index %d out of bounds", e.Index)
	case ParseError:
		return "parse error: " + e.Message
	}
	return e.Kind.String()
}

// Is reports whether target is the ErrorKind of e.
func (e *Error) Is(target error) bool {
	k, ok := target.(ErrorKind)
	return ok && k == e.Kind
}

// Unwrap supports error wrapping.
func (e *Error) Unwrap() error { return e.err }

func newError(kind ErrorKind, span Span) *Error { return &Error{Kind: kind, Span: span} }

func charError(kind ErrorKind, ch rune, span Span) *Error {
	return &Error{Kind: kind, Span: span, Char: ch}
}

func parseError(span Span, err error, msg string, args ...any) *Error {
	return &Error{Kind: ParseError, Span: span, Message: fmt.Sprintf(msg, args...), err: err}
}
