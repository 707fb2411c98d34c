// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package query

import "github.com/creachadair/nosr"

// Exists returns a selection that reports true if its argument satisfies the
// specified query. The arguments have the same constraints as Path.
func Exists(keys ...any) Selection {
	q := Path(keys...)
	return func(n nosr.Node) bool {
		_, err := q.eval(n)
		return err == nil
	}
}

// Is returns a selection that reports true if its argument has shape s.
func Is(s nosr.Shape) Selection {
	return func(n nosr.Node) bool { return n.Shape() == s }
}

// IsNot returns a selection that reports true if its argument does not have
// shape s.
func IsNot(s nosr.Shape) Selection {
	return func(n nosr.Node) bool { return n.Shape() != s }
}

// Text returns a selection that reports true if its argument is a scalar
// whose decoded text satisfies f.
func Text(f func(string) bool) Selection {
	return func(n nosr.Node) bool {
		if n.Shape() != nosr.ScalarShape {
			return false
		}
		s, err := n.Text()
		return err == nil && f(s)
	}
}
