// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package nosr_test

import (
	"testing"

	"github.com/creachadair/nosr"
)

func TestSpan(t *testing.T) {
	const src = "hello world"
	if got := nosr.NewSpan(0, 5).Extract(src); got != "hello" {
		t.Errorf("Extract: got %q, want hello", got)
	}
	if got := nosr.NewSpan(6, 5).Extract(src); got != "world" {
		t.Errorf("Extract: got %q, want world", got)
	}
	if got := nosr.NewSpan(6, 5).End(); got != 11 {
		t.Errorf("End: got %d, want 11", got)
	}

	tests := []struct {
		a, b, want nosr.Span
	}{
		{nosr.NewSpan(5, 5), nosr.NewSpan(8, 4), nosr.NewSpan(5, 7)},  // overlapping
		{nosr.NewSpan(8, 4), nosr.NewSpan(5, 5), nosr.NewSpan(5, 7)},  // commuted
		{nosr.NewSpan(0, 3), nosr.NewSpan(3, 2), nosr.NewSpan(0, 5)},  // adjacent
		{nosr.NewSpan(2, 10), nosr.NewSpan(4, 1), nosr.NewSpan(2, 10)}, // nested
		{nosr.NewSpan(0, 1), nosr.NewSpan(9, 1), nosr.NewSpan(0, 10)},  // gap included
	}
	for _, test := range tests {
		if got := test.a.Merge(test.b); got != test.want {
			t.Errorf("%v.Merge(%v): got %v, want %v", test.a, test.b, got, test.want)
		}
	}
}

func TestLocation(t *testing.T) {
	const src = "{\n  name: Alice\n  tags: [a,\n    b]\n}"
	root := mustDocument(t, src)
	tests := []struct {
		path []any
		want string
	}{
		{nil, "1:0-5:1"},
		{[]any{"name"}, "2:8-13"},
		{[]any{"tags"}, "3:8-4:6"},
		{[]any{"tags", 1}, "4:4-5"},
	}
	for _, test := range tests {
		n := root
		for _, elt := range test.path {
			var err error
			switch e := elt.(type) {
			case string:
				n, err = n.Tab(e)
			case int:
				n, err = n.Vec(e)
			}
			if err != nil {
				t.Fatalf("Path %v: %v", test.path, err)
			}
		}
		if got := n.Location().String(); got != test.want {
			t.Errorf("Location %v: got %q, want %q", test.path, got, test.want)
		}
	}
}
