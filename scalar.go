// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package nosr

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/creachadair/nosr/internal/escape"

	"go4.org/mem"
)

// Text returns the text of the scalar at n. A quoted string is unquoted and
// its escapes are decoded (see Unquote); if it has no escapes, the result
// shares storage with the source. Unquoted text is returned as written, with
// surrounding whitespace removed.
//
// Text reports an error of kind NotAScalar if n is empty.
func (n Node) Text() (string, error) {
	s, span := n.trimSpan()
	if s == "" {
		return "", newError(NotAScalar, n.span)
	} else if s[0] != '"' {
		return s, nil
	}
	if len(s) < 2 || s[len(s)-1] != '"' {
		return "", newError(UnclosedString, span)
	}
	text, err := escape.Unquote(s[1 : len(s)-1])
	if err == nil {
		return text, nil
	}
	var ie *escape.InvalidError
	if errors.As(err, &ie) {
		pos := span.Pos + 1 + ie.Offset
		return "", &Error{
			Kind: InvalidEscape,
			Span: Span{Pos: pos, Len: 1 + len(string(ie.Rune))},
			Char: ie.Rune,
			err:  err,
		}
	}
	return "", &Error{Kind: UnexpectedEOF, Span: Span{Pos: span.End() - 2, Len: 1}, err: err}
}

// Uint64 returns the value of the scalar at n as an unsigned decimal integer.
// The text must consist only of the digits 0-9, with no sign, and must fit in
// 64 bits; otherwise Uint64 reports an error of kind ParseError.
func (n Node) Uint64() (uint64, error) {
	s, span := n.trimSpan()
	v, err := mem.ParseUint(mem.S(s), 10, 64)
	if err != nil {
		return 0, parseError(span, err, "invalid unsigned integer %q: %v", s, numErr(err))
	}
	return v, nil
}

// Double returns the value of the scalar at n as a 64-bit floating-point
// number, in decimal notation with an optional fraction and exponent. The
// literals "inf", "-inf", and "nan" denote infinities and not-a-number.
// Any other text is reported as an error of kind ParseError.
//
// A value too large in magnitude for 64 bits is rounded to an infinity.
func (n Node) Double() (float64, error) {
	s, span := n.trimSpan()
	switch s {
	case "inf":
		return math.Inf(1), nil
	case "-inf":
		return math.Inf(-1), nil
	case "nan":
		return math.NaN(), nil
	}
	if s == "" || strings.TrimLeft(s, "0123456789+-.eE") != "" {
		return 0, parseError(span, strconv.ErrSyntax, "invalid number %q", s)
	}
	v, err := mem.ParseFloat(mem.S(s), 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, parseError(span, err, "invalid number %q: %v", s, numErr(err))
	}
	return v, nil
}

// trimSpan returns the text of n with surrounding whitespace removed, and the
// span of that text.
func (n Node) trimSpan() (string, Span) {
	raw := n.Raw()
	s := strings.TrimLeftFunc(raw, unicode.IsSpace)
	pos := n.span.Pos + len(raw) - len(s)
	s = strings.TrimRightFunc(s, unicode.IsSpace)
	return s, Span{Pos: pos, Len: len(s)}
}

// numErr returns the underlying cause of a strconv error.
func numErr(err error) error {
	var ne *strconv.NumError
	if errors.As(err, &ne) {
		return ne.Err
	}
	return err
}
