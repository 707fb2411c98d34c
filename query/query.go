// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package query implements structural queries over nosr documents.
//
// A query describes a syntactic substructure of a document, such as a table
// member, a vector element, or a path through nested values. Evaluating a
// query against a [nosr.Node] traverses the structure described by the query
// and returns the nodes it selects. Evaluation is lazy in the same way as
// navigation: only the portions of the source needed to answer the query are
// scanned.
//
// The simplest query is for a "path", a sequence of table keys and/or vector
// indices that describes a path from the root of a document. For example,
// given the document:
//
//	[{a: 1, b: 2}, {c: {d: true}, e: false}]
//
// the query
//
//	query.Path(1, "c", "d")
//
// selects the scalar "true".
package query

import (
	"errors"
	"fmt"

	"github.com/creachadair/nosr"
)

// Eval evaluates the given query beginning from root, returning the selected
// nodes in order, or an error. A query that selects nothing is not an error.
func Eval(root nosr.Node, q Query) ([]nosr.Node, error) {
	return q.eval(root)
}

// EvalOne evaluates the given query beginning from root, and reports an error
// unless it selects exactly one node.
func EvalOne(root nosr.Node, q Query) (nosr.Node, error) {
	vs, err := q.eval(root)
	if err != nil {
		return nosr.Node{}, err
	} else if len(vs) != 1 {
		return nosr.Node{}, fmt.Errorf("query selected %d nodes, want 1", len(vs))
	}
	return vs[0], nil
}

// A Query describes a traversal of a nosr document.
type Query interface {
	eval(nosr.Node) ([]nosr.Node, error)
}

// Path traverses a sequence of nested table keys or vector indices from the
// root. If no keys are specified, the root is selected. Each key must be a
// string, an int, or a Query; Path panics for any other type.
func Path(keys ...any) Query {
	if len(keys) == 1 {
		return pathElem(keys[0])
	}
	pq := make(Seq, 0, len(keys))
	for _, key := range keys {
		q := pathElem(key)
		if sq, ok := q.(Seq); ok {
			pq = append(pq, sq...)
		} else {
			pq = append(pq, q)
		}
	}
	return pq
}

func pathElem(key any) Query {
	switch t := key.(type) {
	case string:
		return Key(t)
	case int:
		return Index(t)
	case Query:
		return t
	default:
		panic(fmt.Sprintf("invalid path element %T", key))
	}
}

// Key selects the value of the first member of a table with the given key.
func Key(key string) Query { return keyQuery(key) }

type keyQuery string

func (k keyQuery) eval(n nosr.Node) ([]nosr.Node, error) {
	v, err := n.Tab(string(k))
	if err != nil {
		return nil, err
	}
	return []nosr.Node{v}, nil
}

// Index selects the element of a vector at offset i. A negative offset counts
// from the end of the vector.
func Index(i int) Query { return indexQuery(i) }

type indexQuery int

func (q indexQuery) eval(n nosr.Node) ([]nosr.Node, error) {
	idx := int(q)
	if idx < 0 {
		size, err := vectorLen(n)
		if err != nil {
			return nil, err
		}
		idx += size
		if idx < 0 {
			return nil, &nosr.Error{Kind: nosr.IndexOutOfBounds, Span: n.Span(), Index: int(q)}
		}
	}
	v, err := n.Vec(idx)
	if err != nil {
		return nil, err
	}
	return []nosr.Node{v}, nil
}

// vectorLen reports the length of n, which must be a vector.
func vectorLen(n nosr.Node) (int, error) {
	if n.Shape() != nosr.VectorShape {
		return 0, &nosr.Error{Kind: nosr.NotAVector, Span: n.Span()}
	}
	return n.Len()
}

// Seq is a sequential composition of queries. An empty sequence selects the
// root; otherwise, each query is applied to every node selected by the
// previous query in the sequence, and the results are concatenated.
type Seq []Query

func (q Seq) eval(n nosr.Node) ([]nosr.Node, error) {
	cur := []nosr.Node{n}
	for _, sq := range q {
		var next []nosr.Node
		for _, c := range cur {
			vs, err := sq.eval(c)
			if err != nil {
				return nil, err
			}
			next = append(next, vs...)
		}
		cur = next
	}
	return cur, nil
}

// Alt is a query that selects among a sequence of alternatives. The result of
// the first alternative that does not report an error is returned. If there
// are no alternatives, the query fails on all inputs.
type Alt []Query

func (q Alt) eval(n nosr.Node) ([]nosr.Node, error) {
	for _, alt := range q {
		if vs, err := alt.eval(n); err == nil {
			return vs, nil
		}
	}
	return nil, errors.New("no matching alternatives")
}

// Glob selects the values of all the members of a table, or all the elements
// of a vector, in source order. Any other input selects nothing.
func Glob() Query { return globQuery{} }

type globQuery struct{}

func (globQuery) eval(n nosr.Node) ([]nosr.Node, error) { return children(n) }

// children returns the member values of a table or the elements of a vector.
// Scalars and empty nodes have no children.
func children(n nosr.Node) ([]nosr.Node, error) {
	switch n.Shape() {
	case nosr.TableShape:
		mem, err := n.Members()
		if err != nil {
			return nil, err
		}
		out := make([]nosr.Node, len(mem))
		for i, m := range mem {
			out[i] = m.Value
		}
		return out, nil
	case nosr.VectorShape:
		return n.Vector()
	default:
		return nil, nil
	}
}

// Each applies a query to each member value of a table or each element of a
// vector, and concatenates the results. It fails if the input is not a table
// or vector, or if the query fails for any element. The arguments have the
// same constraints as Path.
func Each(keys ...any) Query { return eachQuery{Path(keys...)} }

type eachQuery struct{ Query }

func (q eachQuery) eval(n nosr.Node) ([]nosr.Node, error) {
	if s := n.Shape(); s != nosr.TableShape && s != nosr.VectorShape {
		return nil, fmt.Errorf("got %v, want table or vector", s)
	}
	elts, err := children(n)
	if err != nil {
		return nil, err
	}
	var out []nosr.Node
	for i, elt := range elts {
		vs, err := q.Query.eval(elt)
		if err != nil {
			return nil, fmt.Errorf("index %d: %w", i, err)
		}
		out = append(out, vs...)
	}
	return out, nil
}

// Recur applies a query to its input and each of its recursive descendants,
// and concatenates the results of those that succeed, in source order. It
// fails if the query does not succeed anywhere. The arguments have the same
// constraints as Path.
func Recur(keys ...any) Query { return recQuery{Path(keys...)} }

type recQuery struct{ Query }

func (q recQuery) eval(n nosr.Node) ([]nosr.Node, error) {
	var out []nosr.Node
	matched := false

	stk := []nosr.Node{n}
	for len(stk) != 0 {
		next := stk[len(stk)-1]
		stk = stk[:len(stk)-1]

		if vs, err := q.Query.eval(next); err == nil {
			out = append(out, vs...)
			matched = true
		}

		kids, err := children(next)
		if err != nil {
			return nil, err
		}
		// N.B. Push in reverse order, so we visit in source order.
		for i := len(kids) - 1; i >= 0; i-- {
			stk = append(stk, kids[i])
		}
	}

	if !matched {
		return nil, errors.New("no matches")
	}
	return out, nil
}

// Slice selects the elements of a vector from offsets lo to hi. The range
// includes lo but excludes hi. Negative offsets select from the end of the
// vector. If hi == 0, the length of the vector is used.
func Slice(lo, hi int) Query { return sliceQuery{lo, hi} }

type sliceQuery struct{ lo, hi int }

func (q sliceQuery) eval(n nosr.Node) ([]nosr.Node, error) {
	if n.Shape() != nosr.VectorShape {
		return nil, &nosr.Error{Kind: nosr.NotAVector, Span: n.Span()}
	}
	vec, err := n.Vector()
	if err != nil {
		return nil, err
	}
	lox := q.lo
	if lox < 0 {
		lox += len(vec)
	}
	hix := q.hi
	if hix <= 0 {
		hix += len(vec)
	}
	if lox < 0 || lox > len(vec) {
		return nil, fmt.Errorf("index %d out of range (0..%d)", q.lo, len(vec))
	} else if hix < 0 || hix > len(vec) {
		return nil, fmt.Errorf("index %d out of range (0..%d)", q.hi, len(vec))
	} else if lox > hix {
		return nil, fmt.Errorf("index start %d > end %d", q.lo, q.hi)
	}
	return vec[lox:hix], nil
}

// Pick selects the elements at the designated offsets of a vector, in the
// order given. Negative offsets select from the end of the vector.
func Pick(offsets ...int) Query { return pickQuery(offsets) }

type pickQuery []int

func (q pickQuery) eval(n nosr.Node) ([]nosr.Node, error) {
	if n.Shape() != nosr.VectorShape {
		return nil, &nosr.Error{Kind: nosr.NotAVector, Span: n.Span()}
	}
	vec, err := n.Vector()
	if err != nil {
		return nil, err
	}
	out := make([]nosr.Node, 0, len(q))
	for _, off := range q {
		idx := off
		if idx < 0 {
			idx += len(vec)
		}
		if idx < 0 || idx >= len(vec) {
			return nil, &nosr.Error{Kind: nosr.IndexOutOfBounds, Span: n.Span(), Index: off}
		}
		out = append(out, vec[idx])
	}
	return out, nil
}

// Selection selects the member values of a table, or the elements of a
// vector, for which the function returns true. Any other input selects
// nothing.
type Selection func(nosr.Node) bool

func (q Selection) eval(n nosr.Node) ([]nosr.Node, error) {
	elts, err := children(n)
	if err != nil {
		return nil, err
	}
	var out []nosr.Node
	for _, elt := range elts {
		if q(elt) {
			out = append(out, elt)
		}
	}
	return out, nil
}

// Select is a convenience function that converts f into a Selection.
func Select(f func(nosr.Node) bool) Selection { return Selection(f) }
