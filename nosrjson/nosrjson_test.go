// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package nosrjson_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/creachadair/nosr"
	"github.com/creachadair/nosr/nosrjson"
	"github.com/tailscale/hujson"
)

func mustDocument(t *testing.T, src string) nosr.Node {
	t.Helper()
	root, err := nosr.Document(src)
	if err != nil {
		t.Fatalf("Document %q: %v", src, err)
	}
	return root
}

func TestConvert(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		// Empty
		{"", "null"},
		{"  # nothing here\n", "null"},

		// Scalars
		{"42", "42"},
		{"-3.5e9", "-3.5e9"},
		{"true", "true"},
		{"null", "null"},
		{"hello", `"hello"`},
		{`"42"`, `"42"`},
		{`"tab\there"`, `"tab\there"`},
		{`"a\:b\{c\}"`, `"a:b{c}"`},
		{"007", `"007"`},
		{"+5", `"+5"`},
		{"1.", `"1."`},
		{"inf", `"Infinity"`},
		{"-inf", `"-Infinity"`},
		{"nan", `"NaN"`},
		{"Inf", `"Inf"`},
		{"世界", `"世界"`},

		// Collections
		{"{}", "{}"},
		{"[]", "[]"},
		{"[1, two; 3\n]", `[1,"two",3]`},
		{`{a: 1, "b c": [x, {y: null}]}`, `{"a":1,"b c":["x",{"y":null}]}`},
		{"{\n  a: 1\n  b: 2\n  a: 3\n}", `{"a":3,"b":2}`},
		{"[[], {}, [[]]]", "[[],{},[[]]]"},
	}
	for _, test := range tests {
		v, err := nosrjson.Convert(mustDocument(t, test.input))
		if err != nil {
			t.Errorf("Convert %q: unexpected error: %v", test.input, err)
			continue
		}
		if got := v.String(); got != test.want {
			t.Errorf("Convert %q:\n got %s\nwant %s", test.input, got, test.want)
		}
		if !json.Valid(v.Pack()) {
			t.Errorf("Convert %q: output is not valid JSON: %s", test.input, v.Pack())
		}
	}
}

func TestMarshal(t *testing.T) {
	root := mustDocument(t, `{
  name: demo    # the name
  port: 8080
  debug: false
  tags: [a; "b c"]
}`)

	t.Run("Default", func(t *testing.T) {
		got, err := nosrjson.Marshal(root, nil)
		if err != nil {
			t.Fatalf("Marshal: unexpected error: %v", err)
		}
		const want = `{"name":"demo","port":8080,"debug":false,"tags":["a","b c"]}`
		if string(got) != want {
			t.Errorf("Marshal:\n got %s\nwant %s", got, want)
		}
	})

	t.Run("AsString", func(t *testing.T) {
		got, err := nosrjson.Marshal(root, &nosrjson.Options{Scalars: nosrjson.AsString})
		if err != nil {
			t.Fatalf("Marshal: unexpected error: %v", err)
		}
		const want = `{"name":"demo","port":"8080","debug":"false","tags":["a","b c"]}`
		if string(got) != want {
			t.Errorf("Marshal:\n got %s\nwant %s", got, want)
		}
	})

	t.Run("Format", func(t *testing.T) {
		compact, err := nosrjson.Marshal(root, nil)
		if err != nil {
			t.Fatalf("Marshal: unexpected error: %v", err)
		}
		got, err := nosrjson.Marshal(root, &nosrjson.Options{Format: true})
		if err != nil {
			t.Fatalf("Marshal: unexpected error: %v", err)
		}
		t.Logf("Formatted output:\n%s", got)
		if !bytes.HasSuffix(got, []byte("\n")) {
			t.Error("Formatted output does not end with a newline")
		}
		if !json.Valid(got) {
			t.Errorf("Formatted output is not valid JSON:\n%s", got)
		}
		small, err := hujson.Minimize(got)
		if err != nil {
			t.Fatalf("Minimize: %v", err)
		}
		if !bytes.Equal(small, compact) {
			t.Errorf("Minimized output:\n got %s\nwant %s", small, compact)
		}
	})
}

func TestErrors(t *testing.T) {
	tests := []struct {
		input string
		kind  nosr.ErrorKind
	}{
		{"{ a: [1, 2 }", nosr.UnexpectedChar},
		{"[1, 2", nosr.UnexpectedEOF},
		{`{ a: "\q" }`, nosr.InvalidEscape},
		{`[ok, "bad\u"]`, nosr.InvalidEscape},
		{"{ a b }", nosr.ExpectedChar},
	}
	for _, test := range tests {
		v, err := nosrjson.Convert(mustDocument(t, test.input))
		if err == nil {
			t.Errorf("Convert %q: got %s, want error", test.input, v.Pack())
			continue
		}
		if !errors.Is(err, test.kind) {
			t.Errorf("Convert %q: got error %v, want %v", test.input, err, test.kind)
		}
		if _, err := nosrjson.Marshal(mustDocument(t, test.input), nil); err == nil {
			t.Errorf("Marshal %q: got no error, want %v", test.input, test.kind)
		}
	}
}
