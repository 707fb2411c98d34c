// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package nosr_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/creachadair/nosr"
)

// benchInput constructs a table of n members, each holding a small nested
// table.
func benchInput(n int) string {
	var sb strings.Builder
	sb.WriteString("{\n")
	for i := 0; i < n; i++ {
		fmt.Fprintf(&sb, "  key%d: { id: %d, name: \"item %d\", tags: [a, b, c] }\n", i, i, i)
	}
	sb.WriteString("}\n")
	return sb.String()
}

func BenchmarkNavigate(b *testing.B) {
	input := benchInput(1000)
	b.Logf("Benchmark input: %d bytes", len(input))
	root, err := nosr.Document(input)
	if err != nil {
		b.Fatalf("Document: %v", err)
	}

	b.Run("Lexer", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			lex := nosr.NewLexer(input)
			for lex.Next() == nil && lex.Token() != nosr.EOF {
			}
		}
	})

	b.Run("Table", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			if _, err := root.Table(); err != nil {
				b.Fatalf("Table: %v", err)
			}
		}
	})

	b.Run("TabFirst", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			if _, err := root.Tab("key0"); err != nil {
				b.Fatalf("Tab: %v", err)
			}
		}
	})

	b.Run("TabLast", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			if _, err := root.Tab("key999"); err != nil {
				b.Fatalf("Tab: %v", err)
			}
		}
	})
}
