// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package nosr

import "fmt"

// A Span describes a contiguous span of a source input.
type Span struct {
	Pos int // the start offset, 0-based
	Len int // the length in bytes
}

// NewSpan constructs a Span starting at pos and covering n bytes.
func NewSpan(pos, n int) Span { return Span{Pos: pos, Len: n} }

// End returns the end offset of s, 0-based (noninclusive).
func (s Span) End() int { return s.Pos + s.Len }

// Extract returns the substring of src covered by s.
// It panics if s is not within src.
func (s Span) Extract(src string) string { return src[s.Pos:s.End()] }

// Merge returns the smallest span enclosing both s and o.
//
// The spans must overlap or be adjacent. If there is a gap between them, the
// result silently includes the gap.
func (s Span) Merge(o Span) Span {
	pos := min(s.Pos, o.Pos)
	return Span{Pos: pos, Len: max(s.End(), o.End()) - pos}
}

func (s Span) String() string { return fmt.Sprintf("%d+%d", s.Pos, s.Len) }

// Locate returns the complete location of s in src, which must be the text s
// was derived from.
func (s Span) Locate(src string) Location {
	return Location{Span: s, First: lineCol(src, s.Pos), Last: lineCol(src, s.End())}
}

// A LineCol describes the line number and column offset of a location in
// source text.
type LineCol struct {
	Line   int // line number, 1-based
	Column int // byte offset of column in line, 0-based
}

func (lc LineCol) String() string { return fmt.Sprintf("%d:%d", lc.Line, lc.Column) }

// A Location describes the complete location of a range of source text,
// including line and column offsets.
type Location struct {
	Span
	First, Last LineCol
}

func (loc Location) String() string {
	if loc.First.Line == loc.Last.Line {
		return fmt.Sprintf("%d:%d-%d", loc.First.Line, loc.First.Column, loc.Last.Column)
	}
	return loc.First.String() + "-" + loc.Last.String()
}

// lineCol reports the line and column of offset pos in src.
func lineCol(src string, pos int) LineCol {
	pos = min(pos, len(src))
	lc := LineCol{Line: 1}
	for i := 0; i < pos; i++ {
		if src[i] == '\n' {
			lc.Line++
			lc.Column = 0
		} else {
			lc.Column++
		}
	}
	return lc
}
