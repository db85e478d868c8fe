// Copyright 2026 The ccheck Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parser

import (
	"github.com/asmwarrior/ccheck/pkg/ast"
	"github.com/asmwarrior/ccheck/pkg/checker"
	"github.com/asmwarrior/ccheck/pkg/lexer"
)

// The expression grammar of spec.md §4.2: "the standard C precedence
// climbing from comma at lowest precedence through assignment,
// ternary, logical-or/and, bit-or/xor/and, equality, relational,
// shift, additive, multiplicative, cast/unary, postfix, primary."
// There is no distinct cast-expression AST node (spec.md §3 lists no
// ecast variant), so the cast/unary tier is just the unary level;
// "(type-name)" written before an expression has no special form here
// and is simply a parenthesized expression, as literal text (the
// grammar coverage line calls sizeof the only context-sensitive
// decision the parser makes).

func (p *parser) parseExpr() ast.Expr {
	e := p.parseAssignExpr()
	for p.peekKind() == lexer.Comma {
		c := ast.NewEComma()
		c.Left = e
		c.TComma = p.next()
		c.Right = p.parseAssignExpr()
		e = c
	}
	return e
}

func isAssignOp(k lexer.Kind) bool {
	switch k {
	case lexer.Assign, lexer.MulAssign, lexer.DivAssign, lexer.ModAssign,
		lexer.AddAssign, lexer.SubAssign, lexer.ShlAssign, lexer.ShrAssign,
		lexer.AndAssign, lexer.XorAssign, lexer.OrAssign:
		return true
	}
	return false
}

// parseAssignExpr parses the right-associative assignment tier.
func (p *parser) parseAssignExpr() ast.Expr {
	left := p.parseTernary()
	if !isAssignOp(p.peekKind()) {
		return left
	}
	b := ast.NewEBinop()
	b.Left = left
	b.TOp = p.next()
	b.Right = p.parseAssignExpr()
	return b
}

// parseTernary parses "cond ? then : else", right-associative in the
// else branch per the standard C grammar.
func (p *parser) parseTernary() ast.Expr {
	cond := p.parseLogicalOr()
	if p.peekKind() != lexer.Quest {
		return cond
	}
	t := ast.NewETCond()
	t.Cond = cond
	t.TQuest = p.next()
	t.Then = p.parseExpr()
	t.TColon = p.expect(lexer.Colon, "':'")
	t.Else = p.parseAssignExpr()
	return t
}

// parseBinaryLevel parses a left-associative binary-operator tier:
// next parses one operand, and any of ops may chain further operands
// at this same tier.
func (p *parser) parseBinaryLevel(next func() ast.Expr, ops ...lexer.Kind) ast.Expr {
	left := next()
	for {
		k := p.peekKind()
		hit := false
		for _, op := range ops {
			if k == op {
				hit = true
				break
			}
		}
		if !hit {
			return left
		}
		b := ast.NewEBinop()
		b.Left = left
		b.TOp = p.next()
		b.Right = next()
		left = b
	}
}

func (p *parser) parseLogicalOr() ast.Expr { return p.parseBinaryLevel(p.parseLogicalAnd, lexer.PipePipe) }
func (p *parser) parseLogicalAnd() ast.Expr { return p.parseBinaryLevel(p.parseBitOr, lexer.AmpAmp) }
func (p *parser) parseBitOr() ast.Expr       { return p.parseBinaryLevel(p.parseBitXor, lexer.Pipe) }
func (p *parser) parseBitXor() ast.Expr      { return p.parseBinaryLevel(p.parseBitAnd, lexer.Hat) }
func (p *parser) parseBitAnd() ast.Expr      { return p.parseBinaryLevel(p.parseEquality, lexer.Amp) }
func (p *parser) parseEquality() ast.Expr {
	return p.parseBinaryLevel(p.parseRelational, lexer.Eq, lexer.Ne)
}
func (p *parser) parseRelational() ast.Expr {
	return p.parseBinaryLevel(p.parseShift, lexer.Lt, lexer.Gt, lexer.Le, lexer.Ge)
}
func (p *parser) parseShift() ast.Expr {
	return p.parseBinaryLevel(p.parseAdditive, lexer.Shl, lexer.Shr)
}
func (p *parser) parseAdditive() ast.Expr {
	return p.parseBinaryLevel(p.parseMultiplicative, lexer.Plus, lexer.Minus)
}
func (p *parser) parseMultiplicative() ast.Expr {
	return p.parseBinaryLevel(p.parseUnary, lexer.Star, lexer.Slash, lexer.Percent)
}

// parseUnary parses the cast/unary tier: prefix ++/--, unary +/-,
// logical/bitwise negation, dereference, address-of, sizeof, or falls
// through to postfix.
func (p *parser) parseUnary() ast.Expr {
	t := p.peek()
	if t == nil {
		return p.parsePostfix()
	}
	switch t.Lex().Kind {
	case lexer.Inc, lexer.Dec:
		e := ast.NewEPreAdj()
		e.TOp = p.next()
		e.Operand = p.parseUnary()
		return e
	case lexer.Plus, lexer.Minus:
		e := ast.NewEUSign()
		e.TOp = p.next()
		e.Operand = p.parseUnary()
		return e
	case lexer.Bang:
		e := ast.NewELNot()
		e.TBang = p.next()
		e.Operand = p.parseUnary()
		return e
	case lexer.Tilde:
		e := ast.NewEBNot()
		e.TTilde = p.next()
		e.Operand = p.parseUnary()
		return e
	case lexer.Star:
		e := ast.NewEDeref()
		e.TStar = p.next()
		e.Operand = p.parseUnary()
		return e
	case lexer.Amp:
		e := ast.NewEAddr()
		e.TAmp = p.next()
		e.Operand = p.parseUnary()
		return e
	case lexer.KwSizeof:
		return p.parseSizeof()
	default:
		return p.parsePostfix()
	}
}

// parseSizeof implements spec.md §4.2's one-token-lookahead special
// case: "sizeof ( X )" where X begins with a type-specifier keyword,
// a type qualifier, a record/enum introducer, or a known typedef name
// (SPEC_FULL.md §F) parses as a type-name; otherwise sizeof parses a
// parenthesized (or unparenthesized unary) expression.
func (p *parser) parseSizeof() ast.Expr {
	s := ast.NewESizeof()
	s.TKeyword = p.next()
	if p.peekKind() == lexer.LParen && p.startsTypeName(p.peekAt(1)) {
		s.IsType = true
		s.TLParen = p.next()
		s.TypeSpecs = p.parseSQList()
		if p.peekKind() != lexer.RParen {
			s.TypeDecl = p.parseDeclarator()
		}
		s.TRParen = p.expect(lexer.RParen, "')'")
		return s
	}
	s.Operand = p.parseUnary()
	return s
}

func (p *parser) startsTypeName(t *checker.Token) bool {
	if t == nil {
		return false
	}
	k := t.Lex().Kind
	if lexer.IsTypeSpecifierKeyword(k) {
		return true
	}
	return k == lexer.Ident && p.typedefNames[t.Lex().Text]
}

// parsePostfix parses a primary expression followed by any number of
// postfix operators: subscripting, calls, member access, and
// post-increment/decrement.
func (p *parser) parsePostfix() ast.Expr {
	e := p.parsePrimary()
	for {
		switch p.peekKind() {
		case lexer.LBracket:
			idx := ast.NewEIndex()
			idx.Array = e
			idx.TLBracket = p.next()
			idx.Index = p.parseExpr()
			idx.TRBracket = p.expect(lexer.RBracket, "']'")
			e = idx
		case lexer.LParen:
			call := ast.NewEFuncall()
			call.Callee = e
			call.TLParen = p.next()
			p.parseArgs(call)
			call.TRParen = p.expect(lexer.RParen, "')'")
			e = call
		case lexer.Dot:
			m := ast.NewEMember()
			m.Operand = e
			m.TDot = p.next()
			m.TIdent = p.expect(lexer.Ident, "member name")
			e = m
		case lexer.Arrow:
			m := ast.NewEIndMember()
			m.Operand = e
			m.TArrow = p.next()
			m.TIdent = p.expect(lexer.Ident, "member name")
			e = m
		case lexer.Inc, lexer.Dec:
			adj := ast.NewEPostAdj()
			adj.Operand = e
			adj.TOp = p.next()
			e = adj
		default:
			return e
		}
	}
}

func (p *parser) parseArgs(call *ast.EFuncall) {
	if p.peekKind() == lexer.RParen {
		return
	}
	for {
		arg := ast.NewArg()
		arg.Value = p.parseAssignExpr()
		call.Args.PushBack(arg)
		if p.peekKind() == lexer.Comma {
			arg.TComma = p.next()
			continue
		}
		return
	}
}

// parsePrimary parses the innermost expression forms: literals,
// identifiers, and parenthesized expressions.
func (p *parser) parsePrimary() ast.Expr {
	t := p.peek()
	if t == nil {
		p.errorf(nil, "unexpected end of file in expression")
		return ast.NewEIdent()
	}
	switch t.Lex().Kind {
	case lexer.Number:
		e := ast.NewEInt()
		e.TValue = p.next()
		return e
	case lexer.CharLit:
		e := ast.NewEChar()
		e.TValue = p.next()
		return e
	case lexer.StrLit:
		e := ast.NewEString()
		e.TValue = p.next()
		// Adjacent string-literal concatenation (C99 §6.4.5): later
		// literals are still linked into the token sequence but do
		// not get their own estring node, matching spec.md §3's
		// one-token-per-literal node shape.
		for p.peekKind() == lexer.StrLit {
			p.next()
		}
		return e
	case lexer.Ident:
		e := ast.NewEIdent()
		e.TIdent = p.next()
		return e
	case lexer.LParen:
		pe := ast.NewEParen()
		pe.TLParen = p.next()
		pe.Inner = p.parseExpr()
		pe.TRParen = p.expect(lexer.RParen, "')'")
		return pe
	default:
		p.errorf(t, "unexpected %s in expression", t.Lex().Kind)
		p.next()
		return ast.NewEIdent()
	}
}
