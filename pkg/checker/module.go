// Copyright 2026 The ccheck Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package checker

import (
	"github.com/asmwarrior/ccheck/pkg/ast"
	"github.com/asmwarrior/ccheck/pkg/lexer"
	"github.com/asmwarrior/ccheck/pkg/tokseq"
)

// Module owns the live sequence of checker Tokens for one translation
// unit, plus the AST built over it (spec.md §3 "Lifecycles": the
// lexer allocates tokens; ownership transfers to the module sequence
// on append; destroying the module destroys every linked token).
type Module struct {
	File string
	Seq  tokseq.List // of *Token, strictly ordered by source position
	Root *ast.Module
}

// NewModule returns an empty Module for file (used only in
// diagnostics; may be "").
func NewModule(file string) *Module {
	return &Module{File: file}
}

// Append wraps lt as a new Token owned by m and links it onto the
// back of m.Seq, returning it.
func (m *Module) Append(lt *lexer.Token) *Token {
	t := NewToken(m, lt)
	m.Seq.PushBack(t)
	return t
}

// Front returns the first token of the sequence, or nil.
func (m *Module) Front() *Token {
	if e := m.Seq.Front(); e != nil {
		return e.(*Token)
	}
	return nil
}

// Text concatenates every linked token's raw text in sequence order,
// reproducing the source (spec.md §6 "Output").
func (m *Module) Text() string {
	var s []byte
	m.Seq.Each(func(e tokseq.Elem) {
		s = append(s, e.(*Token).Lex().Text...)
	})
	return string(s)
}
