// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package nosr

import (
	"strings"
	"unicode/utf8"
)

// Token is the type of a lexical token in the nosr grammar.
type Token byte

// Constants defining the valid Token values.
const (
	EOF       Token = iota // end of input
	Newline                // line feed, an entry separator
	LBrace                 // left brace "{"
	RBrace                 // right brace "}"
	LSquare                // left square bracket "["
	RSquare                // right square bracket "]"
	Colon                  // colon ":"
	Comma                  // comma ","
	Semicolon              // semicolon ";"
	String                 // quoted string
	Scalar                 // unquoted text

	// Do not modify the order of these constants without updating the
	// self-delimiting token check below.
)

var tokenStr = [...]string{
	EOF:       "end of input",
	Newline:   "newline",
	LBrace:    `"{"`,
	RBrace:    `"}"`,
	LSquare:   `"["`,
	RSquare:   `"]"`,
	Colon:     `":"`,
	Comma:     `","`,
	Semicolon: `";"`,
	String:    "string",
	Scalar:    "scalar",
}

func (t Token) String() string {
	v := int(t)
	if v >= len(tokenStr) {
		return "invalid token"
	}
	return tokenStr[v]
}

// isSeparator reports whether t separates the entries of a table or vector.
func (t Token) isSeparator() bool { return t == Newline || t == Comma || t == Semicolon }

// A Lexer reads lexical tokens from a source text. Each call to Next advances
// the lexer to the next token, or reports an error. Whitespace and comments
// are skipped and never reported as tokens.
//
// A Lexer holds no state beyond its current offset, which may be moved with
// SetPos.
type Lexer struct {
	src      string
	tok      Token
	pos, end int // start and end offsets of current token
}

// NewLexer constructs a new lexer that consumes input from src.
func NewLexer(src string) *Lexer { return &Lexer{src: src} }

// Next advances l to the next token of the input, or reports an error.
// At the end of the input, Next returns nil and the token is EOF; subsequent
// calls continue to report EOF.
//
// The error, if any, has concrete type [*Error] with kind UnclosedString or
// UnclosedComment.
func (l *Lexer) Next() error {
	for {
		l.skipSpace()
		l.pos = l.end
		if l.end >= len(l.src) {
			l.tok = EOF
			return nil
		}

		ch := l.src[l.end]
		switch ch {
		case '\n':
			l.end++
			l.tok = Newline
			return nil
		case '"':
			return l.scanString()
		case '#':
			if strings.HasPrefix(l.src[l.end:], "#*") {
				if err := l.skipBlockComment(); err != nil {
					return err
				}
			} else {
				l.skipLineComment()
			}
			continue // comments are invisible to the parser
		}

		// Handle punctuation.
		if t, ok := selfDelim(ch); ok {
			l.end++
			l.tok = t
			return nil
		}
		l.scanScalar()
		return nil
	}
}

// Token returns the type of the current token.
func (l *Lexer) Token() Token { return l.tok }

// Span returns the location span of the current token.
func (l *Lexer) Span() Span { return Span{Pos: l.pos, Len: l.end - l.pos} }

// Text returns the undecoded text of the current token. The result shares
// storage with the source.
func (l *Lexer) Text() string { return l.src[l.pos:l.end] }

// Pos returns the offset at which the lexer will resume scanning.
func (l *Lexer) Pos() int { return l.end }

// SetPos moves the lexer to offset pos. The offset must be 0 or a token
// boundary reported by an earlier span, so that it falls on the start of a
// UTF-8 encoded rune.
func (l *Lexer) SetPos(pos int) {
	l.pos, l.end = pos, pos
	l.tok = EOF
}

func (l *Lexer) skipSpace() {
	for l.end < len(l.src) && isSpace(l.src[l.end]) {
		l.end++
	}
}

// skipLineComment consumes a comment through the next line feed, inclusive.
func (l *Lexer) skipLineComment() {
	if i := strings.IndexByte(l.src[l.end:], '\n'); i >= 0 {
		l.end += i + 1
	} else {
		l.end = len(l.src)
	}
}

// skipBlockComment consumes a comment from "#*" through the first "*#".
func (l *Lexer) skipBlockComment() error {
	start := l.end
	if i := strings.Index(l.src[start+2:], "*#"); i >= 0 {
		l.end = start + 2 + i + 2
		return nil
	}
	l.end = len(l.src)
	return newError(UnclosedComment, Span{Pos: start, Len: l.end - start})
}

// scanString consumes a quoted string. Escapes are skipped but not checked;
// see Node.Text.
func (l *Lexer) scanString() error {
	start := l.end
	i := start + 1
	for i < len(l.src) {
		switch l.src[i] {
		case '"':
			l.end = i + 1
			l.tok = String
			return nil
		case '\\':
			if i+1 >= len(l.src) {
				i = len(l.src)
				continue
			}
			// Skip the escaped rune whole, so that the string ends on a rune
			// boundary regardless of what was escaped.
			_, n := utf8.DecodeRuneInString(l.src[i+1:])
			i += 1 + n
		default:
			i++
		}
	}
	l.end = len(l.src)
	return newError(UnclosedString, Span{Pos: start, Len: l.end - start})
}

// scanScalar consumes unquoted text up to the next space, structural
// character, or block comment.
func (l *Lexer) scanScalar() {
	i := l.end
	for i < len(l.src) {
		ch := l.src[i]
		if isSpace(ch) || ch == '\n' {
			break
		} else if _, ok := selfDelim(ch); ok {
			break
		} else if ch == '#' && i+1 < len(l.src) && l.src[i+1] == '*' {
			break
		}
		i++
	}
	l.end = i
	l.tok = Scalar
}

// isSpace reports whether ch is insignificant whitespace. Line feeds are
// significant, and are not included.
func isSpace(ch byte) bool { return ch == ' ' || ch == '\t' || ch == '\r' }

var self = [...]Token{LBrace, RBrace, LSquare, RSquare, Colon, Comma, Semicolon}

func selfDelim(ch byte) (Token, bool) {
	i := strings.IndexByte("{}[]:,;", ch)
	if i >= 0 {
		return self[i], true
	}
	return EOF, false
}
