// Copyright 2026 The ccheck Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parser

import (
	"testing"

	"github.com/asmwarrior/ccheck/pkg/ast"
	"github.com/asmwarrior/ccheck/pkg/source"
	"github.com/openconfig/gnmi/errdiff"
)

// topLevelKinds collects the ast.Kind of every top-level declaration,
// followed by ast.KBlock when that declaration has a function body,
// used to assert the parse tree has the expected shape without hand-writing
// every token slot (mirrors the teacher's equal helper in
// pkg/yang/parse_test.go, generalized from a flat Statement tree to
// this package's typed AST).
func topLevelKinds(m *ast.Module) []ast.Kind {
	var out []ast.Kind
	m.Each(func(g *ast.GDecln) {
		out = append(out, g.Kind())
		if g.Body != nil {
			out = append(out, ast.KBlock)
		}
	})
	return out
}

func TestParseRoundTrip(t *testing.T) {
	for _, tt := range []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"simple decl", "int x;\n"},
		{"function def", "int f(void)\n{\n\treturn 0;\n}\n"},
		{"struct", "struct point {\n\tint x;\n\tint y;\n};\n"},
		{"enum", "enum color { RED, GREEN, BLUE };\n"},
		{"pointer decl", "char *p, **pp;\n"},
		{"array decl", "int a[10];\n"},
		{"control flow", "void f(void)\n{\n\tif (x)\n\t\ty = 1;\n\telse\n\t\ty = 2;\n\twhile (x)\n\t\tx--;\n}\n"},
		{"expr precedence", "int x = a + b * c - d / e % f;\n"},
		{"sizeof type", "int n = sizeof(int);\n"},
		{"sizeof expr", "int n = sizeof(x);\n"},
		{"comments and preproc", "#include <stdio.h>\n// hi\nint x; /* c */\n"},
	} {
		t.Run(tt.name, func(t *testing.T) {
			m, err := Parse(source.NewString(tt.in), "test.c")
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.in, err)
			}
			if got := m.Text(); got != tt.in {
				t.Fatalf("Parse(%q) round-trip = %q, want %q", tt.in, got, tt.in)
			}
		})
	}
}

func TestParseFunctionShape(t *testing.T) {
	m, err := Parse(source.NewString("int f(void)\n{\n\treturn 0;\n}\n"), "test.c")
	if err != nil {
		t.Fatalf("Parse error = %v", err)
	}
	var g *ast.GDecln
	m.Root.Each(func(x *ast.GDecln) { g = x })
	if g == nil {
		t.Fatal("no top-level declaration parsed")
	}
	if g.Body == nil || !g.Body.Braces {
		t.Fatalf("expected a braced function body, got %+v", g.Body)
	}
	var stmtKinds []ast.Kind
	g.Body.Each(func(s ast.Stmt) { stmtKinds = append(stmtKinds, s.Kind()) })
	want := []ast.Kind{ast.KStReturn}
	if len(stmtKinds) != len(want) || stmtKinds[0] != want[0] {
		t.Fatalf("body statements = %v, want %v", stmtKinds, want)
	}
}

func TestParseTypedefSizeof(t *testing.T) {
	m, err := Parse(source.NewString("typedef int myint;\nint n = sizeof(myint);\n"), "test.c")
	if err != nil {
		t.Fatalf("Parse error = %v", err)
	}
	var decls []*ast.GDecln
	m.Root.Each(func(g *ast.GDecln) { decls = append(decls, g) })
	if len(decls) != 2 {
		t.Fatalf("got %d top-level decls, want 2", len(decls))
	}
	nDecl := decls[1]
	var entry *ast.DListEntry
	nDecl.Decls.Each(func(e *ast.DListEntry) { entry = e })
	sz, ok := entry.Init.(*ast.ESizeof)
	if !ok {
		t.Fatalf("initializer = %T, want *ast.ESizeof", entry.Init)
	}
	if !sz.IsType {
		t.Fatalf("sizeof(myint) parsed as expression, want type-name (typedef lookahead, SPEC_FULL.md §F)")
	}
}

func TestParseSyntaxError(t *testing.T) {
	_, err := Parse(source.NewString("int x = ;\n"), "test.c")
	if diff := errdiff.Check(err, "unexpected"); diff != "" {
		t.Error(diff)
	}
}
