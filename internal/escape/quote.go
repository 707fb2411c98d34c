// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package escape

import "go4.org/mem"

var controlEsc = [...]byte{
	'\n': 'n',
	'\r': 'r',
	'\t': 't',
	' ':  ' ', // sentinel
}

// Quote encodes src for inclusion in a quoted nosr string. Backslashes and
// double quotes are escaped, as are newline, return, and tab. All other bytes,
// including the structural characters, are copied unmodified.
func Quote(src mem.RO) []byte {
	buf := make([]byte, 0, src.Len()+2)
	for i := 0; i < src.Len(); i++ {
		b := src.At(i)
		switch {
		case b < ' ' && controlEsc[b] != 0:
			buf = append(buf, '\\', controlEsc[b])
		case b == '\\' || b == '"':
			buf = append(buf, '\\', b)
		default:
			buf = append(buf, b)
		}
	}
	return buf
}
