// Copyright 2026 The ccheck Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ast

import "github.com/asmwarrior/ccheck/pkg/tokseq"

// GDecln is a global declaration or function definition: declaration
// specifiers plus a declarator list, and either a trailing ';' or a
// function body block (spec.md §3).
type GDecln struct {
	Base
	Specs  *DSpecs
	Decls  *DList
	Body   *Block // nil for a plain declaration
	TScolon TokenSlot
}

func NewGDecln() *GDecln { return &GDecln{Base: newBase(KGDecln)} }

// Block is a brace-delimited statement sequence. Braces is false for
// an unbraced single-statement body (spec.md §4.3's else/if/while/for
// handling); in that case TLBrace/TRBrace are nil and Stmts holds
// exactly one statement.
type Block struct {
	Base
	Braces          bool
	TLBrace, TRBrace TokenSlot
	Stmts           tokseq.List // of Stmt
}

func NewBlock() *Block { return &Block{Base: newBase(KBlock)} }

func (*Block) stmt() {}

func (b *Block) Each(f func(Stmt)) {
	b.Stmts.Each(func(e tokseq.Elem) { f(e.(Stmt)) })
}

// DSpecs is the ordered sequence of declaration specifiers
// (storage-class, type, qualifier, function specifiers) preceding a
// declarator list. Order among them is not enforced (spec.md §4.2).
type DSpecs struct {
	Base
	Specs tokseq.List // of Node (SClass, TQual, FSpec, TSBasic, TSIdent, TSRecord, TSEnum)
}

func NewDSpecs() *DSpecs { return &DSpecs{Base: newBase(KDSpecs)} }

func (d *DSpecs) Each(f func(Node)) {
	d.Specs.Each(func(e tokseq.Elem) { f(e.(Node)) })
}

// SQList is a specifier-qualifier list, as used inside struct/union
// member declarations and type-name-only contexts (e.g. sizeof).
type SQList struct {
	Base
	Specs tokseq.List // of Node
}

func NewSQList() *SQList { return &SQList{Base: newBase(KSQList)} }

func (s *SQList) Each(f func(Node)) {
	s.Specs.Each(func(e tokseq.Elem) { f(e.(Node)) })
}

// SClass is a one-token storage-class specifier (typedef, extern,
// static, auto, register).
type SClass struct {
	Base
	TKeyword TokenSlot
}

func NewSClass() *SClass { return &SClass{Base: newBase(KSClass)} }

// TQual is a one-token type qualifier (const, restrict, volatile).
type TQual struct {
	Base
	TKeyword TokenSlot
}

func NewTQual() *TQual { return &TQual{Base: newBase(KTQual)} }

// FSpec is a one-token function specifier (inline).
type FSpec struct {
	Base
	TKeyword TokenSlot
}

func NewFSpec() *FSpec { return &FSpec{Base: newBase(KFSpec)} }

// TSBasic is a basic type specifier keyword (void, char, int, ...).
type TSBasic struct {
	Base
	TKeyword TokenSlot
}

func NewTSBasic() *TSBasic { return &TSBasic{Base: newBase(KTSBasic)} }

// TSIdent is a type specifier that names a (presumed typedef)
// identifier.
type TSIdent struct {
	Base
	TIdent TokenSlot
}

func NewTSIdent() *TSIdent { return &TSIdent{Base: newBase(KTSIdent)} }

// TSRecord is a struct/union type specifier, with a possible tag
// identifier and a possible member list.
type TSRecord struct {
	Base
	TKeyword          TokenSlot // "struct" or "union"
	TIdent            TokenSlot // optional tag
	TLBrace, TRBrace  TokenSlot // present iff HasBody
	Members           tokseq.List // of *GDecln (member declarations), empty if no body
	HasBody           bool
}

func NewTSRecord() *TSRecord { return &TSRecord{Base: newBase(KTSRecord)} }

func (r *TSRecord) EachMember(f func(*GDecln)) {
	r.Members.Each(func(e tokseq.Elem) { f(e.(*GDecln)) })
}

// TSEnum is an enum type specifier, with a possible tag identifier
// and comma-separated named enumerators.
type TSEnum struct {
	Base
	TKeyword         TokenSlot
	TIdent           TokenSlot // optional tag
	TLBrace, TRBrace TokenSlot
	Enumerators      tokseq.List // of *Enumerator
	HasBody          bool
}

func NewTSEnum() *TSEnum { return &TSEnum{Base: newBase(KTSEnum)} }

func (e *TSEnum) Each(f func(*Enumerator)) {
	e.Enumerators.Each(func(x tokseq.Elem) { f(x.(*Enumerator)) })
}

// Enumerator is one "NAME" or "NAME = expr" entry of an enum body,
// plus its optional separating comma.
type Enumerator struct {
	Base
	TIdent TokenSlot
	TEq    TokenSlot // nil if no initializer
	Value  Expr      // nil if no initializer
	TComma TokenSlot // nil on the last enumerator
}

func NewEnumerator() *Enumerator { return &Enumerator{Base: newBase(KEnumerator)} }
