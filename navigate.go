// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package nosr

// A Member is a single key-value entry of a table.
type Member struct {
	Key     string // the decoded key
	KeySpan Span   // the location of the key as written
	Value   Node
}

// Table returns the members of the table at n, mapped by key. If a key occurs
// more than once, the last occurrence wins. An empty table is not an error.
// A nested value closed by the wrong kind of delimiter is an UnexpectedChar
// error.
func (n Node) Table() (map[string]Node, error) {
	tab := make(map[string]Node)
	err := n.scanEntries(LBrace, func(e entry) (bool, error) {
		tab[e.key] = e.value
		return false, nil
	})
	if err != nil {
		return nil, err
	}
	return tab, nil
}

// Members returns the members of the table at n in source order, including
// any duplicate keys.
func (n Node) Members() ([]Member, error) {
	var mem []Member
	err := n.scanEntries(LBrace, func(e entry) (bool, error) {
		mem = append(mem, Member{Key: e.key, KeySpan: e.keySpan, Value: e.value})
		return false, nil
	})
	if err != nil {
		return nil, err
	}
	return mem, nil
}

// Tab returns the value of the first member of the table at n whose key
// equals key. Members after the match are not scanned.
func (n Node) Tab(key string) (Node, error) {
	var out Node
	found := false
	err := n.scanEntries(LBrace, func(e entry) (bool, error) {
		if e.key == key {
			out, found = e.value, true
		}
		return found, nil
	})
	if err != nil {
		return Node{}, err
	} else if !found {
		return Node{}, &Error{Kind: KeyNotFound, Span: n.span, Key: key}
	}
	return out, nil
}

// Vector returns the elements of the vector at n in order. An empty vector
// is not an error. As for Table, a nested value closed by the wrong kind of
// delimiter is an UnexpectedChar error.
func (n Node) Vector() ([]Node, error) {
	vec := []Node{}
	err := n.scanEntries(LSquare, func(e entry) (bool, error) {
		vec = append(vec, e.value)
		return false, nil
	})
	if err != nil {
		return nil, err
	}
	return vec, nil
}

// Vec returns the element at offset i of the vector at n. Elements after the
// match are not scanned.
func (n Node) Vec(i int) (Node, error) {
	var out Node
	found := false
	if i >= 0 {
		pos := 0
		err := n.scanEntries(LSquare, func(e entry) (bool, error) {
			if pos == i {
				out, found = e.value, true
			}
			pos++
			return found, nil
		})
		if err != nil {
			return Node{}, err
		}
	} else if err := n.guard(LSquare); err != nil {
		return Node{}, err
	}
	if !found {
		return Node{}, &Error{Kind: IndexOutOfBounds, Span: n.span, Index: i}
	}
	return out, nil
}

// Len reports the number of entries in the table or vector at n. Duplicate
// table keys are counted separately. If n is neither a table nor a vector,
// Len reports an error of kind NotATable.
func (n Node) Len() (int, error) {
	open := LBrace
	if n.Shape() == VectorShape {
		open = LSquare
	}
	var count int
	err := n.scanEntries(open, func(entry) (bool, error) { count++; return false, nil })
	if err != nil {
		return 0, err
	}
	return count, nil
}

// An entry is a single table member or vector element found by scanEntries.
// For vector elements the key is empty.
type entry struct {
	key     string
	keySpan Span
	value   Node
}

// guard reports an error if the text of n does not begin with the opening
// delimiter of a table (LBrace) or vector (LSquare).
func (n Node) guard(open Token) error {
	if s := n.trim(); s == "" || s[0] != open.char() {
		return n.shapeError(open)
	}
	return nil
}

func (n Node) shapeError(open Token) error {
	if open == LSquare {
		return newError(NotAVector, n.span)
	}
	return newError(NotATable, n.span)
}

// scanEntries re-scans the table (open == LBrace) or vector (open == LSquare)
// at n, calling f for each entry in source order. Scanning stops when f
// reports true or an error, or at the closing delimiter.
//
// The lexer is bounded at the end of n, so a value that is not closed within
// n is reported as unbalanced even if the source continues.
func (n Node) scanEntries(open Token, f func(entry) (bool, error)) error {
	if err := n.guard(open); err != nil {
		return err
	}
	w := &walker{lex: NewLexer(n.src[:n.span.End()]), src: n.src}
	w.lex.SetPos(n.span.Pos)
	if err := w.lex.Next(); err != nil {
		return err
	} else if w.lex.Token() != open {
		return n.shapeError(open)
	}

	closing := RBrace
	if open == LSquare {
		closing = RSquare
	}
	for {
		// Any run of separators, of any kind, is equivalent to one.
		if err := w.skipSeparators(); err != nil {
			return err
		}
		if w.lex.Token() == closing {
			return nil
		}

		var e entry
		if open == LBrace {
			if err := w.key(&e); err != nil {
				return err
			}
			if err := w.require(Colon); err != nil {
				return err
			}
			if err := w.advance(); err != nil {
				return err
			}
		}
		span, err := w.value()
		if err != nil {
			return err
		}
		e.value = Node{src: n.src, span: span}
		if done, err := f(e); err != nil || done {
			return err
		}
	}
}

// A walker holds the state of a single scan over a table or vector.
type walker struct {
	lex *Lexer
	src string
}

func (w *walker) advance() error { return w.lex.Next() }

func (w *walker) skipSeparators() error {
	for {
		if err := w.advance(); err != nil {
			return err
		} else if !w.lex.Token().isSeparator() {
			return nil
		}
	}
}

// require advances to the next token and reports an error if it is not tok,
// including at the end of input.
func (w *walker) require(tok Token) error {
	if err := w.advance(); err != nil {
		return err
	}
	if w.lex.Token() != tok {
		return charError(ExpectedChar, rune(tok.char()), w.lex.Span())
	}
	return nil
}

// key decodes the key at the current token into e.
func (w *walker) key(e *entry) error {
	e.keySpan = w.lex.Span()
	switch w.lex.Token() {
	case String:
		key, err := Node{src: w.src, span: e.keySpan}.Text()
		if err != nil {
			return err
		}
		e.key = key
	case Scalar:
		e.key = w.lex.Text()
	default:
		// Input ending at a key position is reported the same way.
		return charError(ExpectedChar, ':', e.keySpan)
	}
	return nil
}

// value reports the span of the value beginning at the current token.
// For a nested table or vector this is the whole balanced extent.
func (w *walker) value() (Span, error) {
	start := w.lex.Span()
	switch tok := w.lex.Token(); tok {
	case String, Scalar:
		return start, nil
	case LBrace, LSquare:
		end, err := w.balance(tok)
		if err != nil {
			return Span{}, err
		}
		return start.Merge(end), nil
	case EOF:
		return Span{}, newError(UnexpectedEOF, start)
	default:
		return Span{}, charError(UnexpectedChar, rune(tok.char()), start)
	}
}

// balance scans forward from an opening delimiter to the token that returns
// the nesting depth to zero, and returns its span. Braces and brackets share
// a single depth count.
func (w *walker) balance(open Token) (Span, error) {
	closing := RBrace
	if open == LSquare {
		closing = RSquare
	}
	for depth := 1; ; {
		if err := w.advance(); err != nil {
			return Span{}, err
		}
		switch tok := w.lex.Token(); tok {
		case LBrace, LSquare:
			depth++
		case RBrace, RSquare:
			depth--
			if depth == 0 {
				if tok != closing {
					return Span{}, charError(UnexpectedChar, rune(tok.char()), w.lex.Span())
				}
				return w.lex.Span(), nil
			}
		case EOF:
			return Span{}, newError(UnexpectedEOF, w.lex.Span())
		}
	}
}

// char returns the source character of a self-delimiting token, or 0.
func (t Token) char() byte {
	switch t {
	case Newline:
		return '\n'
	case LBrace:
		return '{'
	case RBrace:
		return '}'
	case LSquare:
		return '['
	case RSquare:
		return ']'
	case Colon:
		return ':'
	case Comma:
		return ','
	case Semicolon:
		return ';'
	}
	return 0
}
