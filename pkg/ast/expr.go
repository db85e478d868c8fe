// Copyright 2026 The ccheck Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ast

import "github.com/asmwarrior/ccheck/pkg/tokseq"

// Expr is the common interface for every expression variant in
// spec.md §3.
type Expr interface {
	Node
	expr()
}

// EInt is an integer constant.
type EInt struct {
	Base
	TValue TokenSlot
}

func NewEInt() *EInt { return &EInt{Base: newBase(KEInt)} }
func (*EInt) expr()  {}

// EChar is a character-literal constant.
type EChar struct {
	Base
	TValue TokenSlot
}

func NewEChar() *EChar { return &EChar{Base: newBase(KEChar)} }
func (*EChar) expr()   {}

// EString is a (possibly concatenated) string literal.
type EString struct {
	Base
	TValue TokenSlot
}

func NewEString() *EString { return &EString{Base: newBase(KEString)} }
func (*EString) expr()     {}

// EIdent is an identifier reference.
type EIdent struct {
	Base
	TIdent TokenSlot
}

func NewEIdent() *EIdent { return &EIdent{Base: newBase(KEIdent)} }
func (*EIdent) expr()    {}

// EParen is a parenthesized expression.
type EParen struct {
	Base
	TLParen, TRParen TokenSlot
	Inner            Expr
}

func NewEParen() *EParen { return &EParen{Base: newBase(KEParen)} }
func (*EParen) expr()    {}

// EBinop is a binary operator expression (also covers assignment and
// comma is its own EComma, per spec.md's explicit ecomma variant).
type EBinop struct {
	Base
	Left   Expr
	TOp    TokenSlot
	Right  Expr
}

func NewEBinop() *EBinop { return &EBinop{Base: newBase(KEBinop)} }
func (*EBinop) expr()    {}

// ETCond is the ternary conditional, cond ? then : else.
type ETCond struct {
	Base
	Cond             Expr
	TQuest           TokenSlot
	Then             Expr
	TColon           TokenSlot
	Else             Expr
}

func NewETCond() *ETCond { return &ETCond{Base: newBase(KETCond)} }
func (*ETCond) expr()    {}

// EComma is the comma operator, left , right.
type EComma struct {
	Base
	Left   Expr
	TComma TokenSlot
	Right  Expr
}

func NewEComma() *EComma { return &EComma{Base: newBase(KEComma)} }
func (*EComma) expr()    {}

// EFuncall is a function call with an ordered argument list.
type EFuncall struct {
	Base
	Callee           Expr
	TLParen, TRParen TokenSlot
	Args             tokseq.List // of *Arg
}

func NewEFuncall() *EFuncall { return &EFuncall{Base: newBase(KEFuncall)} }
func (*EFuncall) expr()      {}

func (f *EFuncall) EachArg(fn func(*Arg)) {
	f.Args.Each(func(e tokseq.Elem) { fn(e.(*Arg)) })
}

// Arg is one call-argument entry plus its optional separating comma.
type Arg struct {
	Base
	Value  Expr
	TComma TokenSlot // nil on the last argument
}

func NewArg() *Arg { return &Arg{Base: newBase(KArg)} }

// EIndex is array subscripting, base[index].
type EIndex struct {
	Base
	Array                Expr
	TLBracket, TRBracket TokenSlot
	Index                Expr
}

func NewEIndex() *EIndex { return &EIndex{Base: newBase(KEIndex)} }
func (*EIndex) expr()    {}

// EDeref is unary '*' dereference.
type EDeref struct {
	Base
	TStar   TokenSlot
	Operand Expr
}

func NewEDeref() *EDeref { return &EDeref{Base: newBase(KEDeref)} }
func (*EDeref) expr()    {}

// EAddr is unary '&' address-of.
type EAddr struct {
	Base
	TAmp    TokenSlot
	Operand Expr
}

func NewEAddr() *EAddr { return &EAddr{Base: newBase(KEAddr)} }
func (*EAddr) expr()   {}

// ESizeof is sizeof(expr) or sizeof(type-name) (spec.md §4.2's
// one-token-lookahead special case; IsType records which).
type ESizeof struct {
	Base
	TKeyword, TLParen, TRParen TokenSlot
	IsType                     bool
	TypeSpecs                  *SQList // non-nil iff IsType
	TypeDecl                   Declarator // abstract declarator, may be nil
	Operand                    Expr       // non-nil iff !IsType
}

func NewESizeof() *ESizeof { return &ESizeof{Base: newBase(KESizeof)} }
func (*ESizeof) expr()     {}

// EMember is '.' struct/union member access.
type EMember struct {
	Base
	Operand Expr
	TDot    TokenSlot
	TIdent  TokenSlot
}

func NewEMember() *EMember { return &EMember{Base: newBase(KEMember)} }
func (*EMember) expr()     {}

// EIndMember is '->' struct/union member access through a pointer.
type EIndMember struct {
	Base
	Operand Expr
	TArrow  TokenSlot
	TIdent  TokenSlot
}

func NewEIndMember() *EIndMember { return &EIndMember{Base: newBase(KEIndMember)} }
func (*EIndMember) expr()        {}

// EUSign is a unary +/- sign expression.
type EUSign struct {
	Base
	TOp     TokenSlot
	Operand Expr
}

func NewEUSign() *EUSign { return &EUSign{Base: newBase(KEUSign)} }
func (*EUSign) expr()    {}

// ELNot is logical negation, '!'.
type ELNot struct {
	Base
	TBang   TokenSlot
	Operand Expr
}

func NewELNot() *ELNot { return &ELNot{Base: newBase(KELNot)} }
func (*ELNot) expr()   {}

// EBNot is bitwise negation, '~'.
type EBNot struct {
	Base
	TTilde  TokenSlot
	Operand Expr
}

func NewEBNot() *EBNot { return &EBNot{Base: newBase(KEBNot)} }
func (*EBNot) expr()   {}

// EPreAdj is prefix ++/--.
type EPreAdj struct {
	Base
	TOp     TokenSlot
	Operand Expr
}

func NewEPreAdj() *EPreAdj { return &EPreAdj{Base: newBase(KEPreAdj)} }
func (*EPreAdj) expr()     {}

// EPostAdj is postfix ++/--.
type EPostAdj struct {
	Base
	Operand Expr
	TOp     TokenSlot
}

func NewEPostAdj() *EPostAdj { return &EPostAdj{Base: newBase(KEPostAdj)} }
func (*EPostAdj) expr()      {}
