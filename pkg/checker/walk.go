// Copyright 2026 The ccheck Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package checker

import "github.com/asmwarrior/ccheck/pkg/ast"

// Checker drives the AST-walking spacing pass of spec.md §4.3 over one
// parsed module, accumulating Diagnostics (check mode) or repairing
// the token stream in place (fix mode).
type Checker struct {
	Report *Report
	fix    bool
}

// NewChecker returns a Checker for file, reporting if fix is false
// and repairing the live token stream in place if fix is true.
func NewChecker(file string, fix bool) *Checker {
	return &Checker{Report: newReport(file), fix: fix}
}

// Walk visits every top-level declaration of m's AST, at indentation
// level zero.
func (c *Checker) Walk(m *ast.Module) {
	top := Scope{IndLvl: 0, Fix: c.fix}
	m.Each(func(g *ast.GDecln) { c.walkGDecln(top, g) })
}

// WalkStmt visits a single statement at indentation level zero,
// exported so callers that parse a bare statement fragment (without a
// surrounding declaration) can still drive the checker over it.
func (c *Checker) WalkStmt(st ast.Stmt) {
	c.walkStmt(Scope{IndLvl: 0, Fix: c.fix}, st)
}

// tok type-asserts an ast.TokenSlot (always either nil or a
// *Token, since pkg/parser only ever constructs slots this package
// owns) back to its concrete checker token. A nil slot yields nil.
func tok(slot ast.TokenSlot) *Token {
	if slot == nil {
		return nil
	}
	return slot.(*Token)
}

func (c *Checker) r() *Report { return c.Report }

// noWSInside enforces spec.md §4.3's worked S4 rule — no
// whitespace directly inside a paren pair — generalized to every
// paired delimiter in the grammar (parens, brackets).
func (c *Checker) noWSInside(s Scope, open, close *Token, openCh, closeCh string) {
	if open != nil {
		NoWSAfter(c.r(), s, open, "Unexpected whitespace after '"+openCh+"'.")
	}
	if close != nil {
		NoWSBefore(c.r(), s, close, "Unexpected whitespace before '"+closeCh+"'.")
	}
}

// ---- declarations -----------------------------------------------

func (c *Checker) walkGDecln(s Scope, g *ast.GDecln) {
	first := true
	if g.Specs != nil {
		c.walkDSpecs(s, g.Specs, &first)
	}
	if g.Decls != nil {
		c.walkDList(s, g.Decls, &first)
	}
	if g.Body != nil {
		// Function body: braces lbegin at the outer indentation
		// (spec.md §4.3 "Function body").
		c.walkBlock(s, g.Body, false)
		return
	}
	if t := tok(g.TScolon); t != nil {
		NoWSBefore(c.r(), s, t, "Unexpected whitespace before ';'.")
		NSBreakAfter(c.r(), s, t, "Unexpected whitespace after ';'.")
	}
}

// leadToken applies lbegin to x if this is the first token of the
// enclosing declaration/statement head (consuming *first), else
// marks it a continuation with a leading space.
func (c *Checker) leadToken(s Scope, x *Token, first *bool, headMsg string) {
	if x == nil {
		return
	}
	if *first {
		LBegin(c.r(), s, x, headMsg)
		*first = false
		return
	}
	BreakSpaceBefore(c.r(), s, x, "Expected a space before '"+x.Lex().Text+"'.")
}

func (c *Checker) walkDSpecs(s Scope, d *ast.DSpecs, first *bool) {
	d.Each(func(n ast.Node) { c.walkSpecNode(s, n, first) })
}

func (c *Checker) walkSQList(s Scope, d *ast.SQList, first *bool) {
	d.Each(func(n ast.Node) { c.walkSpecNode(s, n, first) })
}

func (c *Checker) walkSpecNode(s Scope, n ast.Node, first *bool) {
	switch v := n.(type) {
	case *ast.SClass:
		c.leadToken(s, tok(v.TKeyword), first, "Declaration should begin a new line.")
	case *ast.TQual:
		c.leadToken(s, tok(v.TKeyword), first, "Declaration should begin a new line.")
	case *ast.FSpec:
		c.leadToken(s, tok(v.TKeyword), first, "Declaration should begin a new line.")
	case *ast.TSBasic:
		c.leadToken(s, tok(v.TKeyword), first, "Declaration should begin a new line.")
	case *ast.TSIdent:
		c.leadToken(s, tok(v.TIdent), first, "Declaration should begin a new line.")
	case *ast.TSRecord:
		c.walkTSRecord(s, v, first)
	case *ast.TSEnum:
		c.walkTSEnum(s, v, first)
	}
}

func (c *Checker) walkTSRecord(s Scope, r *ast.TSRecord, first *bool) {
	c.leadToken(s, tok(r.TKeyword), first, "Declaration should begin a new line.")
	if t := tok(r.TIdent); t != nil {
		BreakSpaceBefore(c.r(), s, t, "Expected a space before the tag name.")
	}
	if !r.HasBody {
		return
	}
	// struct/union opening brace is cuddled K&R-style (worked S3's
	// rule generalized), its members form a nested scope whose heads
	// are lbegin (spec.md §4.3 "Record/enum member indentation").
	NBSpaceBefore(c.r(), s, tok(r.TLBrace), "Expected single space before block opening brace.")
	inner := s.Nested()
	r.EachMember(func(m *ast.GDecln) { c.walkGDecln(inner, m) })
	LBegin(c.r(), s, tok(r.TRBrace), "Closing brace should begin a new line.")
}

func (c *Checker) walkTSEnum(s Scope, e *ast.TSEnum, first *bool) {
	c.leadToken(s, tok(e.TKeyword), first, "Declaration should begin a new line.")
	if t := tok(e.TIdent); t != nil {
		BreakSpaceBefore(c.r(), s, t, "Expected a space before the tag name.")
	}
	if !e.HasBody {
		return
	}
	NBSpaceBefore(c.r(), s, tok(e.TLBrace), "Expected single space before block opening brace.")
	inner := s.Nested()
	e.Each(func(en *ast.Enumerator) { c.walkEnumerator(inner, en) })
	LBegin(c.r(), s, tok(e.TRBrace), "Closing brace should begin a new line.")
}

func (c *Checker) walkEnumerator(s Scope, e *ast.Enumerator) {
	first := true
	c.leadToken(s, tok(e.TIdent), &first, "Enumerator should begin a new line.")
	if t := tok(e.TEq); t != nil {
		BreakSpaceBefore(c.r(), s, t, "Expected a space before '='.")
	}
	if e.Value != nil {
		c.walkExpr(s, e.Value)
	}
	if t := tok(e.TComma); t != nil {
		NoWSBefore(c.r(), s, t, "Unexpected whitespace before ','.")
	}
}

func (c *Checker) walkDList(s Scope, l *ast.DList, first *bool) {
	l.Each(func(e *ast.DListEntry) {
		c.walkDeclaratorHead(s, e.Decl, first)
		if t := tok(e.TEq); t != nil {
			BreakSpaceBefore(c.r(), s, t, "Expected a space before '='.")
		}
		if e.Init != nil {
			c.walkExpr(s, e.Init)
		}
		if t := tok(e.TComma); t != nil {
			NoWSBefore(c.r(), s, t, "Unexpected whitespace before ','.")
		}
	})
}

// walkDeclaratorHead walks a declarator, treating its first concrete
// token as the declaration head (consuming *first) the way every
// other leading specifier does.
func (c *Checker) walkDeclaratorHead(s Scope, d ast.Declarator, first *bool) {
	c.walkDeclarator(s, d, first)
}

func (c *Checker) walkDeclarator(s Scope, d ast.Declarator, first *bool) {
	switch v := d.(type) {
	case *ast.DIdent:
		c.leadToken(s, tok(v.TIdent), first, "Declarator should begin a new line.")
	case *ast.DNoIdent:
		// no token of its own
	case *ast.DParen:
		c.leadToken(s, tok(v.TLParen), first, "Declarator should begin a new line.")
		c.walkDeclarator(s, v.Inner, first)
		if t := tok(v.TRParen); t != nil {
			NoWSBefore(c.r(), s, t, "Unexpected whitespace before ')'.")
		}
	case *ast.DPtr:
		c.leadToken(s, tok(v.TStar), first, "Declarator should begin a new line.")
		v.EachQual(func(q *ast.TQual) {
			c.leadToken(s, tok(q.TKeyword), first, "Declarator should begin a new line.")
		})
		c.walkDeclarator(s, v.Inner, first)
	case *ast.DFun:
		c.walkDeclarator(s, v.Inner, first)
		c.noWSInside(s, tok(v.TLParen), tok(v.TRParen), "(", ")")
		v.EachParam(func(p *ast.Param) {
			pf := true
			if p.Specs != nil {
				c.walkDSpecs(s, p.Specs, &pf)
			}
			c.walkDeclarator(s, p.Decl, &pf)
			if t := tok(p.TComma); t != nil {
				NoWSBefore(c.r(), s, t, "Unexpected whitespace before ','.")
				BreakSpaceAfter(c.r(), s, t, "Expected a space after ','.")
			}
		})
	case *ast.DArray:
		c.walkDeclarator(s, v.Inner, first)
		c.noWSInside(s, tok(v.TLBracket), tok(v.TRBracket), "[", "]")
		if v.Size != nil {
			c.walkExpr(s, v.Size)
		}
	}
}

// ---- blocks and statements ----------------------------------------

// walkBlock walks a block body. cuddleOpen selects the K&R cuddled
// style used by control-flow statement bodies (the opening brace
// joins the previous line with a single preceding space, per worked
// example S3); when false (function bodies) the opening brace
// is lbegin, its own line, per spec.md §4.3 "Function body".
func (c *Checker) walkBlock(s Scope, b *ast.Block, cuddleOpen bool) {
	if b.Braces {
		if cuddleOpen {
			NBSpaceBefore(c.r(), s, tok(b.TLBrace), "Expected single space before block opening brace.")
		} else {
			LBegin(c.r(), s, tok(b.TLBrace), "Opening brace should begin a new line.")
		}
		inner := s.Nested()
		b.Each(func(st ast.Stmt) { c.walkStmt(inner, st) })
		LBegin(c.r(), s, tok(b.TRBrace), "Closing brace should begin a new line.")
		return
	}
	inner := s.Nested()
	b.Each(func(st ast.Stmt) { c.walkStmt(inner, st) })
}

func (c *Checker) walkStmt(s Scope, st ast.Stmt) {
	switch v := st.(type) {
	case *ast.StBreak:
		LBegin(c.r(), s, tok(v.TKeyword), "Statement should begin a new line.")
		if t := tok(v.TScolon); t != nil {
			NoWSBefore(c.r(), s, t, "Unexpected whitespace before ';'.")
			NSBreakAfter(c.r(), s, t, "Unexpected whitespace after ';'.")
		}
	case *ast.StContinue:
		LBegin(c.r(), s, tok(v.TKeyword), "Statement should begin a new line.")
		if t := tok(v.TScolon); t != nil {
			NoWSBefore(c.r(), s, t, "Unexpected whitespace before ';'.")
			NSBreakAfter(c.r(), s, t, "Unexpected whitespace after ';'.")
		}
	case *ast.StGoto:
		LBegin(c.r(), s, tok(v.TKeyword), "Statement should begin a new line.")
		BreakSpaceBefore(c.r(), s, tok(v.TIdent), "Expected a space before the label name.")
		if t := tok(v.TScolon); t != nil {
			NoWSBefore(c.r(), s, t, "Unexpected whitespace before ';'.")
			NSBreakAfter(c.r(), s, t, "Unexpected whitespace after ';'.")
		}
	case *ast.StReturn:
		LBegin(c.r(), s, tok(v.TKeyword), "Statement should begin a new line.")
		if v.Value != nil {
			BreakSpaceBefore(c.r(), s, firstTokOfExpr(v.Value), "Expected a space before the return value.")
			c.walkExpr(s, v.Value)
		}
		if t := tok(v.TScolon); t != nil {
			NoWSBefore(c.r(), s, t, "Unexpected whitespace before ';'.")
			NSBreakAfter(c.r(), s, t, "Unexpected whitespace after ';'.")
		}
	case *ast.StIf:
		LBegin(c.r(), s, tok(v.TKeyword), "Statement should begin a new line.")
		NBSpaceBefore(c.r(), s, tok(v.TLParen), "Expected single space after 'if'.")
		c.noWSInside(s, tok(v.TLParen), tok(v.TRParen), "(", ")")
		c.walkExpr(s, v.Cond)
		c.walkBlock(s, v.Then, true)
		if v.Else != nil {
			elseMsg := "'else' should begin a new line."
			if v.Then.Braces {
				NBSpaceBefore(c.r(), s, tok(v.TElse), "Expected single space before 'else'.")
			} else {
				LBegin(c.r(), s, tok(v.TElse), elseMsg)
			}
			c.walkBlock(s, v.Else, true)
		}
	case *ast.StWhile:
		LBegin(c.r(), s, tok(v.TKeyword), "Statement should begin a new line.")
		NBSpaceBefore(c.r(), s, tok(v.TLParen), "Expected single space after 'while'.")
		c.noWSInside(s, tok(v.TLParen), tok(v.TRParen), "(", ")")
		c.walkExpr(s, v.Cond)
		c.walkBlock(s, v.Body, true)
	case *ast.StDo:
		LBegin(c.r(), s, tok(v.TDo), "Statement should begin a new line.")
		c.walkBlock(s, v.Body, true)
		NBSpaceBefore(c.r(), s, tok(v.TWhile), "Expected single space before 'while'.")
		NBSpaceBefore(c.r(), s, tok(v.TLParen), "Expected single space after 'while'.")
		c.noWSInside(s, tok(v.TLParen), tok(v.TRParen), "(", ")")
		c.walkExpr(s, v.Cond)
		if t := tok(v.TScolon); t != nil {
			NoWSBefore(c.r(), s, t, "Unexpected whitespace before ';'.")
			NSBreakAfter(c.r(), s, t, "Unexpected whitespace after ';'.")
		}
	case *ast.StFor:
		LBegin(c.r(), s, tok(v.TKeyword), "Statement should begin a new line.")
		NBSpaceBefore(c.r(), s, tok(v.TLParen), "Expected single space after 'for'.")
		NoWSAfter(c.r(), s, tok(v.TLParen), "Unexpected whitespace after '('.")
		if v.Init != nil {
			c.walkExpr(s, v.Init)
		}
		if t := tok(v.TScolon1); t != nil {
			NoWSBefore(c.r(), s, t, "Unexpected whitespace before ';'.")
			BreakSpaceAfter(c.r(), s, t, "Expected a space after ';'.")
		}
		if v.Cond != nil {
			c.walkExpr(s, v.Cond)
		}
		if t := tok(v.TScolon2); t != nil {
			NoWSBefore(c.r(), s, t, "Unexpected whitespace before ';'.")
			BreakSpaceAfter(c.r(), s, t, "Expected a space after ';'.")
		}
		if v.Post != nil {
			c.walkExpr(s, v.Post)
		}
		NoWSBefore(c.r(), s, tok(v.TRParen), "Unexpected whitespace before ')'.")
		c.walkBlock(s, v.Body, true)
	case *ast.StSwitch:
		LBegin(c.r(), s, tok(v.TKeyword), "Statement should begin a new line.")
		NBSpaceBefore(c.r(), s, tok(v.TLParen), "Expected single space after 'switch'.")
		c.noWSInside(s, tok(v.TLParen), tok(v.TRParen), "(", ")")
		c.walkExpr(s, v.Cond)
		if v.Body.Braces {
			// Statements of a braced switch body sit two levels in, so
			// that the dedented case labels sit one level in.
			NBSpaceBefore(c.r(), s, tok(v.Body.TLBrace), "Expected single space before block opening brace.")
			inner := s.Nested().Nested()
			v.Body.Each(func(st ast.Stmt) { c.walkStmt(inner, st) })
			LBegin(c.r(), s, tok(v.Body.TRBrace), "Closing brace should begin a new line.")
		} else {
			c.walkBlock(s, v.Body, true)
		}
	case *ast.StCLabel:
		// Case and goto labels dedent by one (spec.md §4.3).
		LBegin(c.r(), s.Dedented(), tok(v.TKeyword), "Case label should begin a new line.")
		if v.Value != nil {
			BreakSpaceBefore(c.r(), s, firstTokOfExpr(v.Value), "Expected a space before the case value.")
			c.walkExpr(s, v.Value)
		}
		if t := tok(v.TColon); t != nil {
			NoWSBefore(c.r(), s, t, "Unexpected whitespace before ':'.")
		}
	case *ast.StGLabel:
		LBegin(c.r(), s.Dedented(), tok(v.TIdent), "Label should begin a new line.")
		if t := tok(v.TColon); t != nil {
			NoWSBefore(c.r(), s, t, "Unexpected whitespace before ':'.")
		}
	case *ast.StExpr:
		if v.Value != nil {
			LBegin(c.r(), s, firstTokOfExpr(v.Value), "Statement should begin a new line.")
			c.walkExpr(s, v.Value)
		} else if t := tok(v.TScolon); t != nil {
			LBegin(c.r(), s, t, "Statement should begin a new line.")
		}
		if t := tok(v.TScolon); t != nil {
			if v.Value != nil {
				NoWSBefore(c.r(), s, t, "Unexpected whitespace before ';'.")
			}
			NSBreakAfter(c.r(), s, t, "Unexpected whitespace after ';'.")
		}
	case *ast.Block:
		c.walkBlock(s, v, false)
	}
}

// ---- expressions ----------------------------------------------------

// firstTokOfExpr returns the leftmost concrete token of e, walking
// into the leftmost operand of any wrapping/binary/postfix node,
// used to apply lbegin to the statement head even though the AST
// node itself is an expression rather than a one-token slot.
func firstTokOfExpr(e ast.Expr) *Token {
	switch v := e.(type) {
	case *ast.EInt:
		return tok(v.TValue)
	case *ast.EChar:
		return tok(v.TValue)
	case *ast.EString:
		return tok(v.TValue)
	case *ast.EIdent:
		return tok(v.TIdent)
	case *ast.EParen:
		return tok(v.TLParen)
	case *ast.EBinop:
		return firstTokOfExpr(v.Left)
	case *ast.ETCond:
		return firstTokOfExpr(v.Cond)
	case *ast.EComma:
		return firstTokOfExpr(v.Left)
	case *ast.EFuncall:
		return firstTokOfExpr(v.Callee)
	case *ast.EIndex:
		return firstTokOfExpr(v.Array)
	case *ast.EDeref:
		return tok(v.TStar)
	case *ast.EAddr:
		return tok(v.TAmp)
	case *ast.ESizeof:
		return tok(v.TKeyword)
	case *ast.EMember:
		return firstTokOfExpr(v.Operand)
	case *ast.EIndMember:
		return firstTokOfExpr(v.Operand)
	case *ast.EUSign:
		return tok(v.TOp)
	case *ast.ELNot:
		return tok(v.TBang)
	case *ast.EBNot:
		return tok(v.TTilde)
	case *ast.EPreAdj:
		return tok(v.TOp)
	case *ast.EPostAdj:
		return firstTokOfExpr(v.Operand)
	}
	return nil
}

func (c *Checker) walkExpr(s Scope, e ast.Expr) {
	// Every expression's leftmost token is a potential continuation-
	// line head; record the scope's indentation level on it even
	// though it is not itself an lbegin slot.
	Any(c.r(), s, firstTokOfExpr(e))
	switch v := e.(type) {
	case *ast.EInt, *ast.EChar, *ast.EString, *ast.EIdent:
		// single-token leaves carry no internal spacing rule
	case *ast.EParen:
		c.noWSInside(s, tok(v.TLParen), tok(v.TRParen), "(", ")")
		c.walkExpr(s, v.Inner)
	case *ast.EBinop:
		c.walkExpr(s, v.Left)
		BreakSpaceBefore(c.r(), s, tok(v.TOp), "Expected a space before the operator.")
		BreakSpaceAfter(c.r(), s, tok(v.TOp), "Expected a space after the operator.")
		c.walkExpr(s, v.Right)
	case *ast.ETCond:
		c.walkExpr(s, v.Cond)
		BreakSpaceBefore(c.r(), s, tok(v.TQuest), "Expected a space before '?'.")
		BreakSpaceAfter(c.r(), s, tok(v.TQuest), "Expected a space after '?'.")
		c.walkExpr(s, v.Then)
		BreakSpaceBefore(c.r(), s, tok(v.TColon), "Expected a space before ':'.")
		BreakSpaceAfter(c.r(), s, tok(v.TColon), "Expected a space after ':'.")
		c.walkExpr(s, v.Else)
	case *ast.EComma:
		c.walkExpr(s, v.Left)
		NoWSBefore(c.r(), s, tok(v.TComma), "Unexpected whitespace before ','.")
		BreakSpaceAfter(c.r(), s, tok(v.TComma), "Expected a space after ','.")
		c.walkExpr(s, v.Right)
	case *ast.EFuncall:
		c.walkExpr(s, v.Callee)
		c.noWSInside(s, tok(v.TLParen), tok(v.TRParen), "(", ")")
		v.EachArg(func(a *ast.Arg) {
			c.walkExpr(s, a.Value)
			if t := tok(a.TComma); t != nil {
				NoWSBefore(c.r(), s, t, "Unexpected whitespace before ','.")
				BreakSpaceAfter(c.r(), s, t, "Expected a space after ','.")
			}
		})
	case *ast.EIndex:
		c.walkExpr(s, v.Array)
		c.noWSInside(s, tok(v.TLBracket), tok(v.TRBracket), "[", "]")
		c.walkExpr(s, v.Index)
	case *ast.EDeref:
		NoWSAfter(c.r(), s, tok(v.TStar), "Unexpected whitespace after unary '*'.")
		c.walkExpr(s, v.Operand)
	case *ast.EAddr:
		NoWSAfter(c.r(), s, tok(v.TAmp), "Unexpected whitespace after unary '&'.")
		c.walkExpr(s, v.Operand)
	case *ast.ESizeof:
		NBSpaceBefore(c.r(), s, tok(v.TLParen), "Expected single space after 'sizeof'.")
		c.noWSInside(s, tok(v.TLParen), tok(v.TRParen), "(", ")")
		if v.IsType {
			if v.TypeSpecs != nil {
				first := true
				c.walkSQList(s, v.TypeSpecs, &first)
			}
			if v.TypeDecl != nil {
				nf := false
				c.walkDeclarator(s, v.TypeDecl, &nf)
			}
		} else if v.Operand != nil {
			c.walkExpr(s, v.Operand)
		}
	case *ast.EMember:
		c.walkExpr(s, v.Operand)
		NoWSBefore(c.r(), s, tok(v.TDot), "Unexpected whitespace before '.'.")
		NoWSAfter(c.r(), s, tok(v.TDot), "Unexpected whitespace after '.'.")
	case *ast.EIndMember:
		c.walkExpr(s, v.Operand)
		NoWSBefore(c.r(), s, tok(v.TArrow), "Unexpected whitespace before '->'.")
		NoWSAfter(c.r(), s, tok(v.TArrow), "Unexpected whitespace after '->'.")
	case *ast.EUSign:
		NoWSAfter(c.r(), s, tok(v.TOp), "Unexpected whitespace after unary sign.")
		c.walkExpr(s, v.Operand)
	case *ast.ELNot:
		NoWSAfter(c.r(), s, tok(v.TBang), "Unexpected whitespace after '!'.")
		c.walkExpr(s, v.Operand)
	case *ast.EBNot:
		NoWSAfter(c.r(), s, tok(v.TTilde), "Unexpected whitespace after '~'.")
		c.walkExpr(s, v.Operand)
	case *ast.EPreAdj:
		NoWSAfter(c.r(), s, tok(v.TOp), "Unexpected whitespace after prefix operator.")
		c.walkExpr(s, v.Operand)
	case *ast.EPostAdj:
		c.walkExpr(s, v.Operand)
		NoWSBefore(c.r(), s, tok(v.TOp), "Unexpected whitespace before postfix operator.")
	}
}
