// Copyright 2026 The ccheck Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lexer

import (
	"runtime"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/asmwarrior/ccheck/pkg/srcpos"
)

// line returns the line number from which it was called, so a failing
// table-driven case can be traced back to its source row.
func line() int {
	_, _, l, _ := runtime.Caller(1)
	return l
}

func kinds(toks []*Token) []Kind {
	var out []Kind
	for _, t := range toks {
		out = append(out, t.Kind)
	}
	return out
}

func lexAll(input string) []*Token {
	l := NewFromString(input)
	var toks []*Token
	for {
		t := l.Next()
		if t == nil {
			break
		}
		toks = append(toks, t)
		if t.Kind == EOF {
			break
		}
	}
	return toks
}

func TestLexKinds(t *testing.T) {
	for _, tt := range []struct {
		line int
		in   string
		want []Kind
	}{
		{line(), "", []Kind{EOF}},
		{line(), "x", []Kind{Ident, EOF}},
		{line(), "int x;", []Kind{KwInt, Space, Ident, Semi, EOF}},
		{line(), "if(x){}", []Kind{KwIf, LParen, Ident, RParen, LBrace, RBrace, EOF}},
		{line(), "a->b", []Kind{Ident, Arrow, Ident, EOF}},
		{line(), "a++", []Kind{Ident, Inc, EOF}},
		{line(), "a<<=1", []Kind{Ident, ShlAssign, Number, EOF}},
		{line(), "1...2", []Kind{Number, Ellipsis, Number, EOF}},
		{line(), "\t\t", []Kind{Tab, EOF}},
		{line(), "  \t", []Kind{Space, Tab, EOF}},
		{line(), "\n", []Kind{Newline, EOF}},
		{line(), "// hi\n", []Kind{Comment, Newline, EOF}},
		{line(), "/* hi */", []Kind{Comment, EOF}},
		{line(), "/** doc */", []Kind{DSComment, EOF}},
		{line(), "/**/", []Kind{Comment, EOF}},
		{line(), `"hi"`, []Kind{StrLit, EOF}},
		{line(), `'a'`, []Kind{CharLit, EOF}},
		{line(), "0x1AuL", []Kind{Number, EOF}},
		{line(), "#define X 1\n", []Kind{Preproc, Newline, EOF}},
		{line(), "  #define X 1\n", []Kind{Space, Preproc, Newline, EOF}},
		{line(), "a #b", []Kind{Ident, Space, Hash, Ident, EOF}},
	} {
		toks := lexAll(tt.in)
		got := kinds(toks)
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("line %d: lexAll(%q) kinds mismatch (-want +got):\n%s", tt.line, tt.in, diff)
		}
	}
}

func TestLexRoundTrip(t *testing.T) {
	// Property 1 (spec.md §8): concatenating every token's Text
	// reproduces the input byte-for-byte.
	for _, in := range []string{
		"",
		"int main(void) {\n\treturn 0;\n}\n",
		"  #define X 1  \n// comment\r\nfoo(\"a\\\"b\", 'c');\n",
		"/* multi\nline */ struct s { int a, b; };\n",
	} {
		toks := lexAll(in)
		var got string
		for _, tk := range toks {
			got += tk.Text
		}
		if got != in {
			t.Errorf("round trip mismatch: got %q, want %q", got, in)
		}
	}
}

func TestLexPositions(t *testing.T) {
	toks := lexAll("int x;\n")
	opts := cmpopts.IgnoreFields(Token{}, "UserData")
	want := &Token{
		Kind: KwInt, Text: "int",
		Bpos: srcpos.Position{Line: 1, Col: 1},
		Epos: srcpos.Position{Line: 1, Col: 3},
	}
	if diff := cmp.Diff(want, toks[0], opts); diff != "" {
		t.Errorf("first token mismatch (-want +got):\n%s", diff)
	}
}

func TestLexUnterminatedString(t *testing.T) {
	toks := lexAll("\"abc\n")
	if kinds(toks)[0] != Invalid {
		t.Fatalf("expected Invalid token for unterminated string, got %v", kinds(toks))
	}
}
