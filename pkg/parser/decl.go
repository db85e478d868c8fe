// Copyright 2026 The ccheck Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parser

import (
	"github.com/asmwarrior/ccheck/pkg/ast"
	"github.com/asmwarrior/ccheck/pkg/lexer"
)

// parseGDecln parses one top-level "dspecs dlist (';' | block)" per
// spec.md §4.2 ("module := gdecln*"), tracking any name introduced by
// a "typedef" storage-class specifier into p.typedefNames so later
// sizeof(...) lookaheads can resolve it (SPEC_FULL.md §F).
func (p *parser) parseGDecln() *ast.GDecln {
	g := ast.NewGDecln()
	specs, hasTypedef := p.parseDSpecs()
	g.Specs = specs

	if p.peekKind() == lexer.Semi {
		g.TScolon = p.next()
		return g
	}

	g.Decls = p.parseDList()
	if hasTypedef {
		g.Decls.Each(func(e *ast.DListEntry) {
			if name := declaredName(e.Decl); name != "" {
				p.typedefNames[name] = true
			}
		})
	}

	if p.peekKind() == lexer.LBrace {
		g.Body = p.parseBlock(true)
		return g
	}
	g.TScolon = p.expect(lexer.Semi, "';'")
	return g
}

// parseMemberDecln parses one struct/union member declaration: it
// never has a function body, unlike a top-level gdecln.
func (p *parser) parseMemberDecln() *ast.GDecln {
	g := ast.NewGDecln()
	specs, _ := p.parseDSpecs()
	g.Specs = specs
	if p.peekKind() == lexer.Semi {
		g.TScolon = p.next()
		return g
	}
	g.Decls = p.parseDList()
	g.TScolon = p.expect(lexer.Semi, "';'")
	return g
}

// declaredName returns the identifier a (possibly pointer/array/
// function-wrapped) declarator ultimately names, or "" for an
// abstract declarator with no identifier.
func declaredName(d ast.Declarator) string {
	switch n := d.(type) {
	case *ast.DIdent:
		return n.TIdent.Lex().Text
	case *ast.DPtr:
		return declaredName(n.Inner)
	case *ast.DParen:
		return declaredName(n.Inner)
	case *ast.DFun:
		return declaredName(n.Inner)
	case *ast.DArray:
		return declaredName(n.Inner)
	default:
		return ""
	}
}

// parseDSpecs parses the declaration-specifier sequence of spec.md
// §4.2 ("dspecs is a sequence of any mix of storage-class specifiers,
// type specifiers..., type qualifiers, and function specifiers; order
// among them is not enforced"). It stops at the first token that
// cannot start a specifier, which begins the following declarator.
// The returned bool reports whether a "typedef" storage-class
// specifier was seen.
func (p *parser) parseDSpecs() (*ast.DSpecs, bool) {
	specs := ast.NewDSpecs()
	sawTypeSpec := false
	hasTypedef := false
	for {
		t := p.peek()
		if t == nil {
			return specs, hasTypedef
		}
		switch t.Lex().Kind {
		case lexer.KwTypedef:
			hasTypedef = true
			n := ast.NewSClass()
			n.TKeyword = p.next()
			specs.Specs.PushBack(n)
		case lexer.KwExtern, lexer.KwStatic, lexer.KwAuto, lexer.KwRegister:
			n := ast.NewSClass()
			n.TKeyword = p.next()
			specs.Specs.PushBack(n)
		case lexer.KwConst, lexer.KwRestrict, lexer.KwVolatile:
			n := ast.NewTQual()
			n.TKeyword = p.next()
			specs.Specs.PushBack(n)
		case lexer.KwInline:
			n := ast.NewFSpec()
			n.TKeyword = p.next()
			specs.Specs.PushBack(n)
		case lexer.KwVoid, lexer.KwChar, lexer.KwShort, lexer.KwInt, lexer.KwLong,
			lexer.KwSigned, lexer.KwUnsigned, lexer.KwFloat, lexer.KwDouble:
			n := ast.NewTSBasic()
			n.TKeyword = p.next()
			specs.Specs.PushBack(n)
			sawTypeSpec = true
		case lexer.KwStruct, lexer.KwUnion:
			specs.Specs.PushBack(p.parseTSRecord())
			sawTypeSpec = true
		case lexer.KwEnum:
			specs.Specs.PushBack(p.parseTSEnum())
			sawTypeSpec = true
		case lexer.Ident:
			if sawTypeSpec || !p.typedefNames[t.Lex().Text] {
				return specs, hasTypedef
			}
			n := ast.NewTSIdent()
			n.TIdent = p.next()
			specs.Specs.PushBack(n)
			sawTypeSpec = true
		default:
			return specs, hasTypedef
		}
	}
}

// parseSQList parses a specifier-qualifier list: the type-name-only
// subset of dspecs used inside sizeof's type-name form (spec.md §4.2).
// Struct/union member declarations use parseDSpecs instead; sizeof's
// type-name form has no declarator list around it, hence the separate
// entry point.
func (p *parser) parseSQList() *ast.SQList {
	l := ast.NewSQList()
	sawTypeSpec := false
	for {
		t := p.peek()
		if t == nil {
			return l
		}
		switch t.Lex().Kind {
		case lexer.KwConst, lexer.KwRestrict, lexer.KwVolatile:
			n := ast.NewTQual()
			n.TKeyword = p.next()
			l.Specs.PushBack(n)
		case lexer.KwVoid, lexer.KwChar, lexer.KwShort, lexer.KwInt, lexer.KwLong,
			lexer.KwSigned, lexer.KwUnsigned, lexer.KwFloat, lexer.KwDouble:
			n := ast.NewTSBasic()
			n.TKeyword = p.next()
			l.Specs.PushBack(n)
			sawTypeSpec = true
		case lexer.KwStruct, lexer.KwUnion:
			l.Specs.PushBack(p.parseTSRecord())
			sawTypeSpec = true
		case lexer.KwEnum:
			l.Specs.PushBack(p.parseTSEnum())
			sawTypeSpec = true
		case lexer.Ident:
			if sawTypeSpec || !p.typedefNames[t.Lex().Text] {
				return l
			}
			n := ast.NewTSIdent()
			n.TIdent = p.next()
			l.Specs.PushBack(n)
			sawTypeSpec = true
		default:
			return l
		}
	}
}

// parseTSRecord parses a struct/union type specifier: the keyword, an
// optional tag, and an optional brace-delimited member list.
func (p *parser) parseTSRecord() *ast.TSRecord {
	r := ast.NewTSRecord()
	r.TKeyword = p.next() // struct or union
	if p.peekKind() == lexer.Ident {
		r.TIdent = p.next()
	}
	if p.peekKind() != lexer.LBrace {
		return r
	}
	r.HasBody = true
	r.TLBrace = p.next()
	for p.peekKind() != lexer.RBrace && p.peekKind() != lexer.EOF {
		before := p.peek()
		r.Members.PushBack(p.parseMemberDecln())
		if p.peek() == before {
			break
		}
	}
	r.TRBrace = p.expect(lexer.RBrace, "'}'")
	return r
}

// parseTSEnum parses an enum type specifier: the keyword, an optional
// tag, and an optional brace-delimited, comma-separated enumerator
// list.
func (p *parser) parseTSEnum() *ast.TSEnum {
	e := ast.NewTSEnum()
	e.TKeyword = p.next() // enum
	if p.peekKind() == lexer.Ident {
		e.TIdent = p.next()
	}
	if p.peekKind() != lexer.LBrace {
		return e
	}
	e.HasBody = true
	e.TLBrace = p.next()
	for p.peekKind() != lexer.RBrace && p.peekKind() != lexer.EOF {
		en := ast.NewEnumerator()
		en.TIdent = p.expect(lexer.Ident, "enumerator name")
		if p.peekKind() == lexer.Assign {
			en.TEq = p.next()
			en.Value = p.parseAssignExpr()
		}
		if p.peekKind() == lexer.Comma {
			en.TComma = p.next()
		}
		e.Enumerators.PushBack(en)
		if en.TComma == nil {
			break
		}
	}
	e.TRBrace = p.expect(lexer.RBrace, "'}'")
	return e
}

// parseDList parses a comma-separated declarator list, each entry
// optionally followed by "= initializer".
func (p *parser) parseDList() *ast.DList {
	dl := ast.NewDList()
	for {
		e := ast.NewDListEntry()
		e.Decl = p.parseDeclarator()
		if p.peekKind() == lexer.Assign {
			e.TEq = p.next()
			e.Init = p.parseAssignExpr()
		}
		dl.Entries.PushBack(e)
		if p.peekKind() == lexer.Comma {
			e.TComma = p.next()
			continue
		}
		return dl
	}
}
