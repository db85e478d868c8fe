// Copyright 2026 The ccheck Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ast

import "github.com/asmwarrior/ccheck/pkg/tokseq"

// Declarator is the common interface for the declarator variants of
// spec.md §3: dident, dnoident, dparen, dptr, dfun, darray.
type Declarator interface {
	Node
	declarator()
}

// DIdent is a direct-declarator naming an identifier.
type DIdent struct {
	Base
	TIdent TokenSlot
}

func NewDIdent() *DIdent  { return &DIdent{Base: newBase(KDIdent)} }
func (*DIdent) declarator() {}

// DNoIdent is an abstract direct-declarator with no identifier (e.g.
// an anonymous parameter or the base case of a pointer/array chain
// with no name at the bottom).
type DNoIdent struct {
	Base
}

func NewDNoIdent() *DNoIdent { return &DNoIdent{Base: newBase(KDNoIdent)} }
func (*DNoIdent) declarator() {}

// DParen is a parenthesized declarator, '(' declarator ')'.
type DParen struct {
	Base
	TLParen, TRParen TokenSlot
	Inner            Declarator
}

func NewDParen() *DParen  { return &DParen{Base: newBase(KDParen)} }
func (*DParen) declarator() {}

// DPtr is a pointer declarator: '*' tqual* inner.
type DPtr struct {
	Base
	TStar TokenSlot
	Quals tokseq.List // of *TQual
	Inner Declarator
}

func NewDPtr() *DPtr { return &DPtr{Base: newBase(KDPtr)} }
func (*DPtr) declarator() {}

func (p *DPtr) EachQual(f func(*TQual)) {
	p.Quals.Each(func(e tokseq.Elem) { f(e.(*TQual)) })
}

// DFun is a function declarator: direct-declarator '(' params ')'.
type DFun struct {
	Base
	Inner            Declarator
	TLParen, TRParen TokenSlot
	Params           tokseq.List // of *Param
}

func NewDFun() *DFun { return &DFun{Base: newBase(KDFun)} }
func (*DFun) declarator() {}

func (f *DFun) EachParam(fn func(*Param)) {
	f.Params.Each(func(e tokseq.Elem) { fn(e.(*Param)) })
}

// Param is one parameter-list entry: declaration specifiers plus an
// optional (possibly abstract) declarator, and its separating comma.
type Param struct {
	Base
	Specs      *DSpecs
	Decl       Declarator // may be *DNoIdent
	TComma     TokenSlot  // nil on the last parameter
}

func NewParam() *Param { return &Param{Base: newBase(KParam)} }

// DArray is an array declarator: direct-declarator '[' size? ']'.
type DArray struct {
	Base
	Inner            Declarator
	TLBracket, TRBracket TokenSlot
	Size             Expr // nil if no size given
}

func NewDArray() *DArray { return &DArray{Base: newBase(KDArray)} }
func (*DArray) declarator() {}

// DList is an ordered, comma-separated sequence of declarator
// entries following a declaration's specifiers.
type DList struct {
	Base
	Entries tokseq.List // of *DListEntry
}

func NewDList() *DList { return &DList{Base: newBase(KDList)} }

func (l *DList) Each(f func(*DListEntry)) {
	l.Entries.Each(func(e tokseq.Elem) { f(e.(*DListEntry)) })
}

// DListEntry is one entry of a DList: a declarator, an optional
// initializer, and its separating comma.
type DListEntry struct {
	Base
	Decl   Declarator
	TEq    TokenSlot // nil if no initializer
	Init   Expr      // nil if no initializer
	TComma TokenSlot // nil on the last entry
}

func NewDListEntry() *DListEntry { return &DListEntry{Base: newBase(KDListEntry)} }
