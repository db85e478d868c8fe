// Copyright 2026 The ccheck Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parser

import (
	"github.com/asmwarrior/ccheck/pkg/ast"
	"github.com/asmwarrior/ccheck/pkg/lexer"
)

// parseDeclarator parses spec.md §4.2's "declarator := ('*' tqual*)*
// direct-declarator": a run of leading pointer wrappers (each with
// its own trailing qualifier run) around a direct-declarator.
func (p *parser) parseDeclarator() ast.Declarator {
	if p.peekKind() != lexer.Star {
		return p.parseDirectDeclarator()
	}
	ptr := ast.NewDPtr()
	ptr.TStar = p.next()
	for {
		k := p.peekKind()
		if k != lexer.KwConst && k != lexer.KwRestrict && k != lexer.KwVolatile {
			break
		}
		q := ast.NewTQual()
		q.TKeyword = p.next()
		ptr.Quals.PushBack(q)
	}
	ptr.Inner = p.parseDeclarator()
	return ptr
}

// parseDirectDeclarator parses "direct-declarator := (identifier |
// '(' declarator ')') ( '(' params ')' | '[' size? ']' )*".
func (p *parser) parseDirectDeclarator() ast.Declarator {
	var base ast.Declarator
	switch p.peekKind() {
	case lexer.Ident:
		id := ast.NewDIdent()
		id.TIdent = p.next()
		base = id
	case lexer.LParen:
		pd := ast.NewDParen()
		pd.TLParen = p.next()
		pd.Inner = p.parseDeclarator()
		pd.TRParen = p.expect(lexer.RParen, "')'")
		base = pd
	default:
		base = ast.NewDNoIdent()
	}
	for {
		switch p.peekKind() {
		case lexer.LParen:
			fn := ast.NewDFun()
			fn.Inner = base
			fn.TLParen = p.next()
			p.parseParams(fn)
			fn.TRParen = p.expect(lexer.RParen, "')'")
			base = fn
		case lexer.LBracket:
			arr := ast.NewDArray()
			arr.Inner = base
			arr.TLBracket = p.next()
			if p.peekKind() != lexer.RBracket {
				arr.Size = p.parseAssignExpr()
			}
			arr.TRBracket = p.expect(lexer.RBracket, "']'")
			base = arr
		default:
			return base
		}
	}
}

// parseParams parses a function declarator's parameter list, each
// entry a dspecs plus an optional (possibly abstract) declarator.
// Variadic "..." trailers are not modeled — spec.md §4.2's grammar
// coverage for params names only declarator entries.
func (p *parser) parseParams(fn *ast.DFun) {
	if p.peekKind() == lexer.RParen {
		return
	}
	for {
		param := ast.NewParam()
		specs, _ := p.parseDSpecs()
		param.Specs = specs
		param.Decl = p.parseDeclarator()
		fn.Params.PushBack(param)
		if p.peekKind() == lexer.Comma {
			param.TComma = p.next()
			continue
		}
		return
	}
}
