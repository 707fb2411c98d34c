// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package query

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

/*
Grammar:

  expr = root steps
  root = "$"
 steps = step [steps]
  step = "." name
  step = ".." name
  step = "[" value "]"
  name = WORD
  name = "'" QTEXT "'"
  name = "*"
 value = name
 value = INDEX ["," INDEX]...
 value = [INDEX] ":" [INDEX]

  WORD = RE `[\w-]+`
 QTEXT = RE `[^']*`
 INDEX = RE `-?\d+`
*/

// ParsePath parses s as a path expression and returns the corresponding
// query. A path expression is a subset of JSONPath:
//
//	$               the root
//	.name ['name']  the value of a table member (Key)
//	[2] [-1]        the element of a vector at an offset (Index)
//	[0,2]           several elements of a vector (Pick)
//	[1:3] [1:]      a range of elements of a vector (Slice)
//	.* [*]          all member values or elements (Glob)
//	..name ..*      a step applied at every depth (Recur)
//
// For example, "$.servers[0].ports[*]" selects all the ports of the first
// server. Filter and script expressions are not supported.
func ParsePath(s string) (Query, error) {
	t, ok := strings.CutPrefix(s, "$")
	if !ok {
		return nil, errors.New("missing root marker")
	}
	pq := Seq{}
	for t != "" {
		q, rest, err := parseStep(t)
		if err != nil {
			return nil, fmt.Errorf("offset %d: %w", len(s)-len(t), err)
		}
		pq = append(pq, q)
		t = rest
	}
	if len(pq) == 1 {
		return pq[0], nil
	}
	return pq, nil
}

// MustParsePath is as ParsePath, but panics if s is not a valid path.
func MustParsePath(s string) Query {
	q, err := ParsePath(s)
	if err != nil {
		panic(fmt.Sprintf("invalid path %q: %v", s, err))
	}
	return q
}

func parseStep(s string) (_ Query, rest string, _ error) {
	if t, ok := strings.CutPrefix(s, ".."); ok {
		q, u, err := parseName(t)
		if err != nil {
			return nil, s, fmt.Errorf("invalid ..name: %w", err)
		}
		return Recur(q), u, nil
	}
	if t, ok := strings.CutPrefix(s, "."); ok {
		q, u, err := parseName(t)
		if err != nil {
			return nil, s, fmt.Errorf("invalid .name: %w", err)
		}
		return q, u, nil
	}
	if t, ok := strings.CutPrefix(s, "["); ok {
		q, u, err := parseValue(t)
		if err != nil {
			return nil, t, err
		}
		u, ok := strings.CutPrefix(u, "]")
		if !ok {
			return nil, u, errors.New("missing close bracket")
		}
		return q, u, nil
	}
	return nil, s, errors.New("invalid path step")
}

func parseName(s string) (_ Query, rest string, _ error) {
	if t, ok := strings.CutPrefix(s, "*"); ok {
		return Glob(), t, nil
	}
	if m := wordRE.FindStringSubmatch(s); m != nil {
		return Key(m[1]), s[len(m[0]):], nil
	}
	if m := quoteRE.FindStringSubmatch(s); m != nil {
		return Key(m[1]), s[len(m[0]):], nil
	}
	return nil, s, errors.New("invalid name")
}

func parseValue(s string) (_ Query, rest string, _ error) {
	if strings.HasPrefix(s, "?(") || strings.HasPrefix(s, "(") {
		return nil, s, errors.New("filter and script expressions are not supported")
	}

	// Slices: [lo:hi], [lo:], [:hi]
	var loText string
	t := s
	if m := indexRE.FindStringSubmatch(t); m != nil {
		loText = m[1]
		t = t[len(m[0]):]
	}
	if u, ok := strings.CutPrefix(t, ":"); ok {
		var lo, hi int
		if loText != "" {
			v, err := strconv.Atoi(loText)
			if err != nil {
				return nil, s, fmt.Errorf("invalid slice start %q", loText)
			}
			lo = v
		}
		if m := indexRE.FindStringSubmatch(u); m != nil {
			v, err := strconv.Atoi(m[1])
			if err != nil {
				return nil, u, fmt.Errorf("invalid slice end %q", m[1])
			}
			hi = v
			u = u[len(m[0]):]
		} else if loText == "" {
			return nil, u, errors.New("invalid slice")
		}
		return Slice(lo, hi), u, nil
	}

	// Indices: [i], [i,j,...]
	if m := indexListRE.FindStringSubmatch(s); m != nil {
		var offs []int
		for _, f := range strings.Split(m[1], ",") {
			v, err := strconv.Atoi(f)
			if err != nil {
				return nil, s, fmt.Errorf("invalid index %q", f)
			}
			offs = append(offs, v)
		}
		rest := s[len(m[0]):]
		if len(offs) == 1 {
			return Index(offs[0]), rest, nil
		}
		return Pick(offs...), rest, nil
	}

	if q, rest, err := parseName(s); err == nil {
		return q, rest, nil
	}
	return nil, s, fmt.Errorf("invalid value: %q", s)
}

var (
	wordRE      = regexp.MustCompile(`^([\w-]+)`)
	indexRE     = regexp.MustCompile(`^(-?\d+)`)
	indexListRE = regexp.MustCompile(`^(-?\d+(?:,-?\d+)*)`)
	quoteRE     = regexp.MustCompile(`^'([^']*)'`)
)
