// Copyright 2026 The ccheck Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parser

import (
	"github.com/asmwarrior/ccheck/pkg/ast"
	"github.com/asmwarrior/ccheck/pkg/lexer"
	"github.com/asmwarrior/ccheck/pkg/tokseq"
)

// parseBlock parses a statement body: a brace-delimited sequence when
// the next token is '{', otherwise a single unbraced statement
// (spec.md §4.3's else/if/while/for/do handling of both forms). The
// cuddle argument is unused here — cuddling is purely a checker-side
// spacing decision (spec.md §4.3) and has no bearing on parsing.
func (p *parser) parseBlock(cuddle bool) *ast.Block {
	_ = cuddle
	b := ast.NewBlock()
	if p.peekKind() != lexer.LBrace {
		b.Braces = false
		if st := p.parseStmt(); st != nil {
			b.Stmts.PushBack(st.(tokseq.Elem))
		}
		return b
	}
	b.Braces = true
	b.TLBrace = p.next()
	for p.peekKind() != lexer.RBrace && p.peekKind() != lexer.EOF {
		before := p.peek()
		st := p.parseStmt()
		if st == nil {
			break
		}
		b.Stmts.PushBack(st.(tokseq.Elem))
		if p.peek() == before {
			break
		}
	}
	b.TRBrace = p.expect(lexer.RBrace, "'}'")
	return b
}

// parseStmt dispatches on the next token's kind to the statement
// variants enumerated in spec.md §3.
func (p *parser) parseStmt() ast.Stmt {
	t := p.peek()
	if t == nil {
		return nil
	}
	switch t.Lex().Kind {
	case lexer.LBrace:
		return p.parseBlock(false)
	case lexer.KwBreak:
		s := ast.NewStBreak()
		s.TKeyword = p.next()
		s.TScolon = p.expect(lexer.Semi, "';'")
		return s
	case lexer.KwContinue:
		s := ast.NewStContinue()
		s.TKeyword = p.next()
		s.TScolon = p.expect(lexer.Semi, "';'")
		return s
	case lexer.KwGoto:
		s := ast.NewStGoto()
		s.TKeyword = p.next()
		s.TIdent = p.expect(lexer.Ident, "label name")
		s.TScolon = p.expect(lexer.Semi, "';'")
		return s
	case lexer.KwReturn:
		s := ast.NewStReturn()
		s.TKeyword = p.next()
		if p.peekKind() != lexer.Semi {
			s.Value = p.parseExpr()
		}
		s.TScolon = p.expect(lexer.Semi, "';'")
		return s
	case lexer.KwIf:
		return p.parseIf()
	case lexer.KwWhile:
		return p.parseWhile()
	case lexer.KwDo:
		return p.parseDo()
	case lexer.KwFor:
		return p.parseFor()
	case lexer.KwSwitch:
		return p.parseSwitch()
	case lexer.KwCase, lexer.KwDefault:
		return p.parseCLabel()
	case lexer.Semi:
		s := ast.NewStExpr()
		s.TScolon = p.next()
		return s
	case lexer.Ident:
		if n := p.peekAt(1); n != nil && n.Lex().Kind == lexer.Colon {
			s := ast.NewStGLabel()
			s.TIdent = p.next()
			s.TColon = p.next()
			return s
		}
		return p.parseExprStmt()
	default:
		return p.parseExprStmt()
	}
}

func (p *parser) parseExprStmt() ast.Stmt {
	s := ast.NewStExpr()
	s.Value = p.parseExpr()
	s.TScolon = p.expect(lexer.Semi, "';'")
	return s
}

func (p *parser) parseIf() ast.Stmt {
	s := ast.NewStIf()
	s.TKeyword = p.next()
	s.TLParen = p.expect(lexer.LParen, "'('")
	s.Cond = p.parseExpr()
	s.TRParen = p.expect(lexer.RParen, "')'")
	s.Then = p.parseBlock(true)
	if p.peekKind() == lexer.KwElse {
		s.TElse = p.next()
		s.Else = p.parseBlock(true)
	}
	return s
}

func (p *parser) parseWhile() ast.Stmt {
	s := ast.NewStWhile()
	s.TKeyword = p.next()
	s.TLParen = p.expect(lexer.LParen, "'('")
	s.Cond = p.parseExpr()
	s.TRParen = p.expect(lexer.RParen, "')'")
	s.Body = p.parseBlock(true)
	return s
}

func (p *parser) parseDo() ast.Stmt {
	s := ast.NewStDo()
	s.TDo = p.next()
	s.Body = p.parseBlock(true)
	s.TWhile = p.expect(lexer.KwWhile, "'while'")
	s.TLParen = p.expect(lexer.LParen, "'('")
	s.Cond = p.parseExpr()
	s.TRParen = p.expect(lexer.RParen, "')'")
	s.TScolon = p.expect(lexer.Semi, "';'")
	return s
}

func (p *parser) parseFor() ast.Stmt {
	s := ast.NewStFor()
	s.TKeyword = p.next()
	s.TLParen = p.expect(lexer.LParen, "'('")
	if p.peekKind() != lexer.Semi {
		s.Init = p.parseExpr()
	}
	s.TScolon1 = p.expect(lexer.Semi, "';'")
	if p.peekKind() != lexer.Semi {
		s.Cond = p.parseExpr()
	}
	s.TScolon2 = p.expect(lexer.Semi, "';'")
	if p.peekKind() != lexer.RParen {
		s.Post = p.parseExpr()
	}
	s.TRParen = p.expect(lexer.RParen, "')'")
	s.Body = p.parseBlock(true)
	return s
}

func (p *parser) parseSwitch() ast.Stmt {
	s := ast.NewStSwitch()
	s.TKeyword = p.next()
	s.TLParen = p.expect(lexer.LParen, "'('")
	s.Cond = p.parseExpr()
	s.TRParen = p.expect(lexer.RParen, "')'")
	s.Body = p.parseBlock(true)
	return s
}

func (p *parser) parseCLabel() ast.Stmt {
	s := ast.NewStCLabel()
	s.TKeyword = p.next() // "case" or "default"
	if s.TKeyword.Lex().Kind == lexer.KwCase {
		s.Value = p.parseExpr()
	}
	s.TColon = p.expect(lexer.Colon, "':'")
	return s
}
