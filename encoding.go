// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package nosr

import (
	"errors"
	"strings"

	"github.com/creachadair/nosr/internal/escape"
	"go4.org/mem"
)

// Quote encodes s as a quoted nosr string, enclosed in double quotation marks,
// such that Unquote recovers s.
func Quote(s string) string {
	buf := make([]byte, 0, len(s)+2)
	buf = append(buf, '"')
	buf = append(buf, escape.Quote(mem.S(s))...)
	buf = append(buf, '"')
	return string(buf)
}

// Unquote decodes a quoted nosr string. Double quotation marks are removed,
// and escape sequences are replaced with their unescaped equivalents:
//
//	\\  \n  \t  \r  \:  \"  \[  \]  \{  \}
//
// Any other escape is an error. If src contains no escapes, the result shares
// storage with src.
func Unquote(src string) (string, error) {
	if len(src) < 2 || !strings.HasPrefix(src, `"`) || !strings.HasSuffix(src, `"`) {
		return "", errors.New("missing quotations")
	}
	return escape.Unquote(src[1 : len(src)-1])
}
