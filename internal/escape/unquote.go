// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package escape handles unquoting of nosr strings.
package escape

import (
	"errors"
	"fmt"
	"strings"

	"go4.org/mem"
)

// ErrIncomplete is reported by Unquote for a backslash at the end of input.
var ErrIncomplete = errors.New("incomplete escape sequence")

// InvalidError is reported by Unquote for an escape sequence not in the table.
type InvalidError struct {
	Rune   rune // the rune following the backslash
	Offset int  // the offset of the backslash in the input
}

func (e *InvalidError) Error() string {
	return fmt.Sprintf(`invalid escape "\%c" at offset %d`, e.Rune, e.Offset)
}

// unescape maps the rune after a backslash to the rune it denotes.
var unescape = map[rune]rune{
	'\\': '\\',
	'n':  '\n',
	't':  '\t',
	'r':  '\r',
	':':  ':',
	'"':  '"',
	'[':  '[',
	']':  ']',
	'{':  '{',
	'}':  '}',
}

// Unquote decodes the body of a quoted nosr string. The input must have the
// enclosing double quotation marks already removed.
//
// If src contains no escapes, it is returned unmodified without copying.
// Otherwise escape sequences are replaced with the runes they denote. Any
// escape not in the table is reported as an *InvalidError.
func Unquote(src string) (string, error) {
	in := mem.S(src)
	i := mem.IndexByte(in, '\\')
	if i < 0 {
		return src, nil
	}

	var dec strings.Builder
	dec.Grow(len(src))
	var tmp []byte
	off := 0 // offset of in relative to src
	for {
		tmp = mem.Append(tmp[:0], in.SliceTo(i))
		dec.Write(tmp)

		in = in.SliceFrom(i + 1)
		off += i + 1
		if in.Len() == 0 {
			return "", ErrIncomplete
		}
		r, n := mem.DecodeRune(in)
		u, ok := unescape[r]
		if !ok {
			return "", &InvalidError{Rune: r, Offset: off - 1}
		}
		dec.WriteRune(u)
		in = in.SliceFrom(n)
		off += n

		// Look for the next escape sequence, and if one is not found we can blit
		// the rest of the input and go home.
		i = mem.IndexByte(in, '\\')
		if i < 0 {
			tmp = mem.Append(tmp[:0], in)
			dec.Write(tmp)
			return dec.String(), nil
		}
	}
}
