// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package nosrjson converts nosr documents to JSON.
//
// Tables become JSON objects and vectors become JSON arrays. Since a nosr
// scalar has no intrinsic type, each scalar is converted as follows:
//
//   - A quoted string becomes a JSON string.
//   - Unquoted text that is a valid JSON number, true, false, or null is
//     copied as written.
//   - The special values inf, -inf, and nan become the strings "Infinity",
//     "-Infinity", and "NaN".
//   - Any other unquoted text becomes a JSON string.
//
// An empty document converts to null.
package nosrjson

import (
	"strings"

	"github.com/creachadair/nosr"
	"github.com/tailscale/hujson"
)

// Options control the conversion of a document to JSON. A nil *Options is
// ready for use and provides default values.
type Options struct {
	// If true, format the output with indentation and line breaks.
	// Otherwise the output is compact.
	Format bool

	// Scalars selects how scalar values are converted.
	Scalars ScalarMode
}

func (o *Options) format() bool { return o != nil && o.Format }

func (o *Options) scalars() ScalarMode {
	if o == nil {
		return Infer
	}
	return o.Scalars
}

// ScalarMode selects how scalar values are converted to JSON.
type ScalarMode byte

const (
	// Infer converts unquoted text that looks like a JSON literal as a
	// literal, and everything else as a string.
	Infer ScalarMode = iota

	// AsString converts every scalar to a JSON string.
	AsString
)

// Marshal converts the value at n to JSON text.
func Marshal(n nosr.Node, opts *Options) ([]byte, error) {
	v, err := converter{mode: opts.scalars()}.value(n)
	if err != nil {
		return nil, err
	}
	if opts.format() {
		v.Format()
	}
	return v.Pack(), nil
}

// Convert converts the value at n to a JSON syntax tree, using the default
// options.
func Convert(n nosr.Node) (hujson.Value, error) {
	return converter{mode: Infer}.value(n)
}

type converter struct {
	mode ScalarMode
}

func (c converter) value(n nosr.Node) (hujson.Value, error) {
	switch n.Shape() {
	case nosr.TableShape:
		return c.object(n)
	case nosr.VectorShape:
		return c.array(n)
	case nosr.ScalarShape:
		lit, err := c.scalar(n)
		if err != nil {
			return hujson.Value{}, err
		}
		return hujson.Value{Value: lit}, nil
	default:
		return hujson.Value{Value: hujson.Literal("null")}, nil
	}
}

// object converts a table. A key that occurs more than once keeps the
// position of its first occurrence and the value of its last.
func (c converter) object(n nosr.Node) (hujson.Value, error) {
	mem, err := n.Members()
	if err != nil {
		return hujson.Value{}, err
	}
	obj := &hujson.Object{Members: make([]hujson.ObjectMember, 0, len(mem))}
	pos := make(map[string]int)
	for _, m := range mem {
		v, err := c.value(m.Value)
		if err != nil {
			return hujson.Value{}, err
		}
		if i, ok := pos[m.Key]; ok {
			obj.Members[i].Value = v
			continue
		}
		pos[m.Key] = len(obj.Members)
		obj.Members = append(obj.Members, hujson.ObjectMember{
			Name:  hujson.Value{Value: hujson.String(m.Key)},
			Value: v,
		})
	}
	return hujson.Value{Value: obj}, nil
}

func (c converter) array(n nosr.Node) (hujson.Value, error) {
	vec, err := n.Vector()
	if err != nil {
		return hujson.Value{}, err
	}
	arr := &hujson.Array{Elements: make([]hujson.ArrayElement, len(vec))}
	for i, elt := range vec {
		v, err := c.value(elt)
		if err != nil {
			return hujson.Value{}, err
		}
		arr.Elements[i] = v
	}
	return hujson.Value{Value: arr}, nil
}

func (c converter) scalar(n nosr.Node) (hujson.Literal, error) {
	text, err := n.Text()
	if err != nil {
		return nil, err
	}
	if c.mode == AsString || strings.HasPrefix(strings.TrimSpace(n.Raw()), `"`) {
		return hujson.String(text), nil
	}
	switch text {
	case "inf", "-inf", "nan":
		f, err := n.Double()
		if err != nil {
			return nil, err
		}
		return hujson.Float(f), nil
	}
	if lit := hujson.Literal(text); lit.IsValid() {
		return lit, nil
	}
	return hujson.String(text), nil
}
