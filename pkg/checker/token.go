// Copyright 2026 The ccheck Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package checker implements the AST-driven spacing classifier and
// the line-oriented indentation pass of spec.md §4.3: it walks a
// parsed ast.Module, classifies every token slot's whitespace
// requirement, and either reports a Diagnostic or repairs the live
// token stream in place.
package checker

import (
	"github.com/asmwarrior/ccheck/pkg/lexer"
	"github.com/asmwarrior/ccheck/pkg/srcpos"
	"github.com/asmwarrior/ccheck/pkg/tokseq"
)

// Token wraps a lexer.Token inside the mutable module sequence
// (spec.md §3 "Checker token"). It implements ast.TokenSlot via Lex,
// so AST token-slot fields can hold a *Token without pkg/ast needing
// to import pkg/checker.
type Token struct {
	tokseq.Link

	module *Module
	tok    *lexer.Token

	// IndLvl is the indentation level assigned by the AST walk.
	IndLvl int
	// LBegin is set when this token must be the first non-whitespace
	// token on its line.
	LBegin bool
}

// NewToken wraps lt as a checker token owned by m and records the
// wrapper in lt.UserData. The caller is responsible for linking it
// into m.Seq.
func NewToken(m *Module, lt *lexer.Token) *Token {
	t := &Token{module: m, tok: lt}
	lt.UserData = t
	return t
}

// Lex returns the wrapped lexer token.
func (t *Token) Lex() *lexer.Token { return t.tok }

// SeqLink gives Token its tokseq.Elem membership.
func (t *Token) SeqLink() *tokseq.Link { return &t.Link }

// Module returns the module t is linked into.
func (t *Token) Module() *Module { return t.module }

// Range returns the source range of the wrapped lexer token.
func (t *Token) Range() srcpos.Range { return t.tok.Range() }

// Next returns the checker token following t in its module's
// sequence, or nil.
func Next(t *Token) *Token {
	if e := tokseq.Next(t); e != nil {
		return e.(*Token)
	}
	return nil
}

// Prev returns the checker token preceding t in its module's
// sequence, or nil.
func Prev(t *Token) *Token {
	if e := tokseq.Prev(t); e != nil {
		return e.(*Token)
	}
	return nil
}
