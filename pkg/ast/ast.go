// Copyright 2026 The ccheck Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ast implements the AST data model of spec.md §3: a tagged
// variant node family whose concrete nodes retain named slots
// referencing the token(s) that produced them.
package ast

import (
	"github.com/asmwarrior/ccheck/pkg/lexer"
	"github.com/asmwarrior/ccheck/pkg/tokseq"
)

// Kind discriminates the AST node variants enumerated in spec.md §3.
type Kind int

const (
	KModule Kind = iota
	KGDecln
	KBlock
	KDSpecs
	KSQList
	KSClass
	KTQual
	KFSpec
	KTSBasic
	KTSIdent
	KTSRecord
	KTSEnum
	KEnumerator
	KDIdent
	KDNoIdent
	KDParen
	KDPtr
	KDFun
	KDArray
	KDList
	KDListEntry
	KParam
	KArg

	KStBreak
	KStContinue
	KStGoto
	KStReturn
	KStIf
	KStWhile
	KStDo
	KStFor
	KStSwitch
	KStCLabel
	KStGLabel
	KStExpr

	KEInt
	KEChar
	KEString
	KEIdent
	KEParen
	KEBinop
	KETCond
	KEComma
	KEFuncall
	KEIndex
	KEDeref
	KEAddr
	KESizeof
	KEMember
	KEIndMember
	KEUSign
	KELNot
	KEBNot
	KEPreAdj
	KEPostAdj
)

var kindNames = [...]string{
	KModule: "module", KGDecln: "gdecln", KBlock: "block", KDSpecs: "dspecs",
	KSQList: "sqlist", KSClass: "sclass", KTQual: "tqual", KFSpec: "fspec",
	KTSBasic: "tsbasic", KTSIdent: "tsident", KTSRecord: "tsrecord", KTSEnum: "tsenum",
	KEnumerator: "enumerator", KDIdent: "dident", KDNoIdent: "dnoident", KDParen: "dparen",
	KDPtr: "dptr", KDFun: "dfun", KDArray: "darray", KDList: "dlist", KDListEntry: "dlistentry",
	KParam: "param", KArg: "arg",
	KStBreak: "break", KStContinue: "continue", KStGoto: "goto", KStReturn: "return",
	KStIf: "if", KStWhile: "while", KStDo: "do", KStFor: "for", KStSwitch: "switch",
	KStCLabel: "clabel", KStGLabel: "glabel", KStExpr: "stexpr",
	KEInt: "eint", KEChar: "echar", KEString: "estring", KEIdent: "eident",
	KEParen: "eparen", KEBinop: "ebinop", KETCond: "etcond", KEComma: "ecomma",
	KEFuncall: "efuncall", KEIndex: "eindex", KEDeref: "ederef", KEAddr: "eaddr",
	KESizeof: "esizeof", KEMember: "emember", KEIndMember: "eindmember",
	KEUSign: "eusign", KELNot: "elnot", KEBNot: "ebnot",
	KEPreAdj: "epreadj", KEPostAdj: "epostadj",
}

func (k Kind) String() string {
	if int(k) >= 0 && int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "?"
}

// Node is the common interface every concrete AST node satisfies.
// Kind discriminates the tagged variant; Parent returns the node last
// recorded with SetParent, or nil if none was. pkg/parser does not
// call SetParent, so Parent is nil on every node it builds. This
// matches the teacher's Node
// interface in pkg/yang/node.go generalized from a single "Node"
// struct family to a true tagged union.
type Node interface {
	Kind() Kind
	Parent() Node
	SetParent(Node)
}

// TokenSlot is the back-reference handle an AST token slot holds: a
// checker token (defined in pkg/checker, which implements this
// interface structurally to avoid an import cycle ast<->checker). A
// nil TokenSlot means the slot is absent (spec.md §3).
type TokenSlot interface {
	Lex() *lexer.Token
}

// Base is embedded by every concrete node. It carries the Kind tag,
// the parent back-link, and the intrusive tokseq.Link that lets a
// node be strung onto a sibling List (spec.md §9 "Parent
// back-pointers for iteration").
type Base struct {
	tokseq.Link
	kind   Kind
	parent Node
}

func (b *Base) Kind() Kind        { return b.kind }
func (b *Base) Parent() Node      { return b.parent }
func (b *Base) SetParent(p Node)  { b.parent = p }
func (b *Base) SeqLink() *tokseq.Link { return &b.Link }

func newBase(k Kind) Base { return Base{kind: k} }

// Module is the AST root: an ordered sequence of top-level
// declarations (spec.md §3 "module owns an ordered sequence of
// top-level declarations").
type Module struct {
	Base
	Decls tokseq.List // of *GDecln
}

// NewModule returns an empty module AST root.
func NewModule() *Module {
	return &Module{Base: newBase(KModule)}
}

// Each calls f for every top-level declaration, in source order.
func (m *Module) Each(f func(*GDecln)) {
	m.Decls.Each(func(e tokseq.Elem) { f(e.(*GDecln)) })
}
