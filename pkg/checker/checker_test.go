// Copyright 2026 The ccheck Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package checker

import (
	"testing"

	"github.com/asmwarrior/ccheck/pkg/ast"
	"github.com/asmwarrior/ccheck/pkg/lexer"
)

// buildModule lexes src in full (every byte, including whitespace)
// into a fresh Module, mirroring what pkg/parser does while it
// consumes tokens to build an AST. It also returns the subsequence of
// "significant" tokens (everything but whitespace/comments) for tests
// to wire up hand-built AST nodes against, by index.
func buildModule(t *testing.T, src string) (*Module, []*Token) {
	t.Helper()
	m := NewModule("test.c")
	lx := lexer.NewFromString(src)
	var sig []*Token
	for {
		lt := lx.Next()
		if lt == nil {
			break
		}
		ct := m.Append(lt)
		if !lt.Kind.IsWhitespace() && !lt.Kind.IsComment() && lt.Kind != lexer.EOF {
			sig = append(sig, ct)
		}
	}
	return m, sig
}

func slot(t *Token) ast.TokenSlot {
	if t == nil {
		return nil
	}
	return t
}

// S2: wrong indentation in a function body.
func TestCheckerS2WrongIndentation(t *testing.T) {
	src := "int f(void)\n{\n  return 0;\n}\n"
	m, sig := buildModule(t, src)
	// sig: int f ( void ) { return 0 ; }
	g := ast.NewGDecln()
	specs := ast.NewDSpecs()
	basic := ast.NewTSBasic()
	basic.TKeyword = slot(sig[0]) // "int"
	specs.Specs.PushBack(basic)
	g.Specs = specs

	dl := ast.NewDList()
	entry := ast.NewDListEntry()
	fn := ast.NewDFun()
	fn.Inner = func() ast.Declarator {
		id := ast.NewDIdent()
		id.TIdent = slot(sig[1]) // "f"
		return id
	}()
	fn.TLParen = slot(sig[2])
	fn.TRParen = slot(sig[4])
	param := ast.NewParam()
	pspecs := ast.NewDSpecs()
	pbasic := ast.NewTSBasic()
	pbasic.TKeyword = slot(sig[3]) // "void"
	pspecs.Specs.PushBack(pbasic)
	param.Specs = pspecs
	param.Decl = ast.NewDNoIdent()
	fn.Params.PushBack(param)
	entry.Decl = fn
	dl.Entries.PushBack(entry)
	g.Decls = dl

	body := ast.NewBlock()
	body.Braces = true
	body.TLBrace = slot(sig[5]) // "{"
	body.TRBrace = slot(sig[9]) // "}"
	ret := ast.NewStReturn()
	ret.TKeyword = slot(sig[6]) // "return"
	zero := ast.NewEInt()
	zero.TValue = slot(sig[7]) // "0"
	ret.Value = zero
	ret.TScolon = slot(sig[8]) // ";"
	body.Stmts.PushBack(ret)
	g.Body = body

	root := ast.NewModule()
	root.Decls.PushBack(g)

	c := NewChecker("test.c", false)
	c.Walk(root)
	CheckIndentation(c.Report, m, false)

	msgs := c.Report.Strings()
	wantTabs := false
	wantSpaces := false
	for _, msg := range msgs {
		if msg == "test.c:3:3: Wrong indentation: found 0 tabs, should be 1 tabs" {
			wantTabs = true
		}
		if msg == "test.c:3:3: Non-continuation line should not have any spaces for indentation (found 2)" {
			wantSpaces = true
		}
	}
	if !wantTabs || !wantSpaces {
		t.Fatalf("missing expected diagnostics, got %v", msgs)
	}

	// Fix mode must produce the corrected output.
	m2, sig2 := buildModule(t, src)
	g2, root2 := cloneS2AST(sig2)
	_ = g2
	cf := NewChecker("test.c", true)
	cf.Walk(root2)
	CheckIndentation(cf.Report, m2, true)
	got := m2.Text()
	want := "int f(void)\n{\n\treturn 0;\n}\n"
	if got != want {
		t.Fatalf("fix output = %q, want %q", got, want)
	}
}

// cloneS2AST rebuilds the same AST shape as TestCheckerS2WrongIndentation
// against a second token stream (needed because repairs mutate the
// sequence tests read from).
func cloneS2AST(sig []*Token) (*ast.GDecln, *ast.Module) {
	g := ast.NewGDecln()
	specs := ast.NewDSpecs()
	basic := ast.NewTSBasic()
	basic.TKeyword = slot(sig[0])
	specs.Specs.PushBack(basic)
	g.Specs = specs

	dl := ast.NewDList()
	entry := ast.NewDListEntry()
	fn := ast.NewDFun()
	id := ast.NewDIdent()
	id.TIdent = slot(sig[1])
	fn.Inner = id
	fn.TLParen = slot(sig[2])
	fn.TRParen = slot(sig[4])
	param := ast.NewParam()
	pspecs := ast.NewDSpecs()
	pbasic := ast.NewTSBasic()
	pbasic.TKeyword = slot(sig[3])
	pspecs.Specs.PushBack(pbasic)
	param.Specs = pspecs
	param.Decl = ast.NewDNoIdent()
	fn.Params.PushBack(param)
	entry.Decl = fn
	dl.Entries.PushBack(entry)
	g.Decls = dl

	body := ast.NewBlock()
	body.Braces = true
	body.TLBrace = slot(sig[5])
	body.TRBrace = slot(sig[9])
	ret := ast.NewStReturn()
	ret.TKeyword = slot(sig[6])
	zero := ast.NewEInt()
	zero.TValue = slot(sig[7])
	ret.Value = zero
	ret.TScolon = slot(sig[8])
	body.Stmts.PushBack(ret)
	g.Body = body

	root := ast.NewModule()
	root.Decls.PushBack(g)
	return g, root
}

// S3: missing space before a cuddled opening brace.
func TestCheckerS3SpaceBeforeBrace(t *testing.T) {
	src := "if (x){\n\treturn;\n}\n"
	check := func(fix bool) (*Module, *Report) {
		m, sig := buildModule(t, src)
		// sig: if ( x ) { return ; }
		st := ast.NewStIf()
		st.TKeyword = slot(sig[0])
		st.TLParen = slot(sig[1])
		xid := ast.NewEIdent()
		xid.TIdent = slot(sig[2])
		st.Cond = xid
		st.TRParen = slot(sig[3])
		then := ast.NewBlock()
		then.Braces = true
		then.TLBrace = slot(sig[4])
		then.TRBrace = slot(sig[7])
		ret := ast.NewStReturn()
		ret.TKeyword = slot(sig[5])
		ret.TScolon = slot(sig[6])
		then.Stmts.PushBack(ret)
		st.Then = then

		root := ast.NewModule()
		g := ast.NewGDecln() // unused wrapper not needed; walk st directly
		_ = g
		c := NewChecker("test.c", fix)
		c.walkStmt(Scope{Fix: fix}, st)
		_ = root
		return m, c.Report
	}

	_, r := check(false)
	found := false
	for _, msg := range r.Strings() {
		if msg == "test.c:1:7: Expected single space before block opening brace." {
			found = true
		}
	}
	if !found {
		t.Fatalf("missing brace-spacing diagnostic, got %v", r.Strings())
	}

	m2, _ := check(true)
	if got, want := m2.Text(), "if (x) {\n\treturn;\n}\n"; got != want {
		t.Fatalf("fix output = %q, want %q", got, want)
	}
}

// S4: unexpected whitespace after '(' in a call.
func TestCheckerS4SpaceAfterParen(t *testing.T) {
	src := "f( x);\n"
	build := func(fix bool) (*Module, *Report) {
		m, sig := buildModule(t, src)
		// sig: f ( x ) ;
		call := ast.NewEFuncall()
		callee := ast.NewEIdent()
		callee.TIdent = slot(sig[0])
		call.Callee = callee
		call.TLParen = slot(sig[1])
		xid := ast.NewEIdent()
		xid.TIdent = slot(sig[2])
		arg := ast.NewArg()
		arg.Value = xid
		call.Args.PushBack(arg)
		call.TRParen = slot(sig[3])

		st := ast.NewStExpr()
		st.Value = call
		st.TScolon = slot(sig[4])

		c := NewChecker("test.c", fix)
		c.walkStmt(Scope{Fix: fix}, st)
		return m, c.Report
	}

	_, r := build(false)
	found := false
	for _, msg := range r.Strings() {
		if msg == "test.c:1:3: Unexpected whitespace after '('." {
			found = true
		}
	}
	if !found {
		t.Fatalf("missing paren-spacing diagnostic, got %v", r.Strings())
	}

	m2, _ := build(true)
	if got, want := m2.Text(), "f(x);\n"; got != want {
		t.Fatalf("fix output = %q, want %q", got, want)
	}
}

// S1: trailing whitespace at end of line.
func TestCheckerS1TrailingWhitespace(t *testing.T) {
	src := "int x = 1;  \n"
	m, _ := buildModule(t, src)
	r := newReport("test.c")
	CheckIndentation(r, m, false)
	found := false
	for _, msg := range r.Strings() {
		if msg == "test.c:1:12: Whitespace at end of line" {
			found = true
		}
	}
	if !found {
		t.Fatalf("missing trailing-whitespace diagnostic, got %v", r.Strings())
	}

	m2, sig2 := buildModule(t, src)
	// The AST walk marks the declaration head as beginning its line;
	// without it the indentation pass treats line 1 as a continuation.
	sig2[0].LBegin = true
	r2 := newReport("test.c")
	CheckIndentation(r2, m2, true)
	if got, want := m2.Text(), "int x = 1;\n"; got != want {
		t.Fatalf("fix output = %q, want %q", got, want)
	}
}

// S6: case label dedent inside a switch.
func TestCheckerS6CaseLabelDedent(t *testing.T) {
	src := "switch (x) {\n\tcase 1:\n\t\tbreak;\n}\n"
	m, sig := buildModule(t, src)
	// sig: switch ( x ) { case 1 : break ; }
	sw := ast.NewStSwitch()
	sw.TKeyword = slot(sig[0])
	sw.TLParen = slot(sig[1])
	xid := ast.NewEIdent()
	xid.TIdent = slot(sig[2])
	sw.Cond = xid
	sw.TRParen = slot(sig[3])

	body := ast.NewBlock()
	body.Braces = true
	body.TLBrace = slot(sig[4])
	body.TRBrace = slot(sig[10])

	lbl := ast.NewStCLabel()
	lbl.TKeyword = slot(sig[5])
	one := ast.NewEInt()
	one.TValue = slot(sig[6])
	lbl.Value = one
	lbl.TColon = slot(sig[7])
	body.Stmts.PushBack(lbl)

	brk := ast.NewStBreak()
	brk.TKeyword = slot(sig[8])
	brk.TScolon = slot(sig[9])
	body.Stmts.PushBack(brk)

	sw.Body = body

	c := NewChecker("test.c", false)
	c.walkStmt(Scope{Fix: false}, sw)
	CheckIndentation(c.Report, m, false)
	if !c.Report.Clean() {
		t.Fatalf("expected no diagnostics for well-formed case label, got %v", c.Report.Strings())
	}
}
