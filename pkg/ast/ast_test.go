// Copyright 2026 The ccheck Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ast

import "testing"

func TestModuleEachOrder(t *testing.T) {
	m := NewModule()
	a, b, c := NewGDecln(), NewGDecln(), NewGDecln()
	m.Decls.PushBack(a)
	m.Decls.PushBack(b)
	m.Decls.PushBack(c)

	var got []*GDecln
	m.Each(func(g *GDecln) { got = append(got, g) })
	if len(got) != 3 || got[0] != a || got[1] != b || got[2] != c {
		t.Fatalf("Each order = %v, want [a b c]", got)
	}
}

func TestParentLink(t *testing.T) {
	m := NewModule()
	g := NewGDecln()
	g.SetParent(m)
	if g.Parent() != Node(m) {
		t.Fatalf("Parent() = %v, want m", g.Parent())
	}
	if g.Kind() != KGDecln {
		t.Fatalf("Kind() = %v, want KGDecln", g.Kind())
	}
}

func TestBlockEachStmtOrder(t *testing.T) {
	blk := NewBlock()
	s1, s2 := NewStBreak(), NewStContinue()
	blk.Stmts.PushBack(s1)
	blk.Stmts.PushBack(s2)

	var got []Stmt
	blk.Each(func(s Stmt) { got = append(got, s) })
	if len(got) != 2 || got[0] != Stmt(s1) || got[1] != Stmt(s2) {
		t.Fatalf("Each order = %v", got)
	}
}

func TestDeclaratorVariantsSatisfyInterface(t *testing.T) {
	var ds []Declarator = []Declarator{
		NewDIdent(), NewDNoIdent(), NewDParen(), NewDPtr(), NewDFun(), NewDArray(),
	}
	for _, d := range ds {
		if d == nil {
			t.Fatal("nil declarator")
		}
	}
}

func TestExprVariantsSatisfyInterface(t *testing.T) {
	var es []Expr = []Expr{
		NewEInt(), NewEChar(), NewEString(), NewEIdent(), NewEParen(),
		NewEBinop(), NewETCond(), NewEComma(), NewEFuncall(), NewEIndex(),
		NewEDeref(), NewEAddr(), NewESizeof(), NewEMember(), NewEIndMember(),
		NewEUSign(), NewELNot(), NewEBNot(), NewEPreAdj(), NewEPostAdj(),
	}
	for _, e := range es {
		if e == nil {
			t.Fatal("nil expr")
		}
	}
}

func TestStmtVariantsSatisfyInterface(t *testing.T) {
	var ss []Stmt = []Stmt{
		NewStBreak(), NewStContinue(), NewStGoto(), NewStReturn(), NewStIf(),
		NewStWhile(), NewStDo(), NewStFor(), NewStSwitch(), NewStCLabel(),
		NewStGLabel(), NewStExpr(), NewBlock(),
	}
	for _, s := range ss {
		if s == nil {
			t.Fatal("nil stmt")
		}
	}
}
