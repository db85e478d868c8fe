// Copyright 2026 The ccheck Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package parser implements the recursive-descent C99 parser of
// spec.md §4.2: declaration specifiers, declarators, struct/union/
// enum, statements, and the full expression grammar with precedence.
// It consumes a pkg/lexer stream, wraps every token (significant or
// whitespace) as a *checker.Token linked into a checker.Module's
// sequence, and builds an ast.Module whose token slots reference
// those same checker.Tokens — this is where lexing, token-sequence
// construction, and AST building meet, generalizing the teacher's
// push/pop token-stack parser in pkg/yang/parse.go from a flat
// Statement tree to a typed declaration/statement/expression AST.
package parser

import (
	"fmt"

	"github.com/asmwarrior/ccheck/pkg/ast"
	"github.com/asmwarrior/ccheck/pkg/checker"
	"github.com/asmwarrior/ccheck/pkg/lexer"
	"github.com/asmwarrior/ccheck/pkg/source"
)

// parser parses the contents of a single translation unit.
type parser struct {
	lex    *lexer.Lexer
	module *checker.Module

	// tokens is a LIFO stack of pushed-back significant tokens, so
	// the final token listed to push is the next one returned by
	// next (spec.md §4.2's one-token lookahead, generalized from the
	// teacher's parser.tokens stack in pkg/yang/parse.go).
	tokens []*checker.Token

	// typedefNames is the running set of names introduced by
	// "typedef" declarations seen so far (SPEC_FULL.md §F): consulted,
	// in addition to the builtin type-specifier keywords, when
	// resolving the sizeof(X) lookahead of spec.md §4.2.
	typedefNames map[string]bool

	errs []error
}

// Error is a syntax error located at a source position.
type Error struct {
	Tok *checker.Token
	Msg string
}

func (e *Error) Error() string {
	if e.Tok == nil {
		return e.Msg
	}
	return fmt.Sprintf("%s: %s", e.Tok.Range(), e.Msg)
}

// Parse reads all of src, lexes it in full, and parses it as a C99
// translation unit. Unless reading src fails (then the module is nil),
// it returns a non-nil *checker.Module whose Seq holds every emitted
// token (including whitespace and comments,
// spec.md §8 property 1); Root is populated with whatever top-level
// declarations were successfully parsed even when err is non-nil, so
// callers can still run the checker over partial input for
// diagnostics that don't depend on the broken portion.
func Parse(src source.Source, file string) (*checker.Module, error) {
	lx, err := lexer.New(src, file)
	if err != nil {
		return nil, err
	}
	p := &parser{
		lex:          lx,
		module:       checker.NewModule(file),
		typedefNames: map[string]bool{},
	}
	root := ast.NewModule()
	p.module.Root = root

	for {
		if p.peek() == nil || p.peekKind() == lexer.EOF {
			break
		}
		before := p.peek()
		g := p.parseGDecln()
		if g == nil {
			break
		}
		root.Decls.PushBack(g)
		if p.peek() == before {
			// parseGDecln made no progress; stop rather than loop
			// forever on unparseable trailing input.
			break
		}
	}

	if len(p.errs) == 0 {
		return p.module, nil
	}
	msgs := make([]string, len(p.errs))
	for i, e := range p.errs {
		msgs[i] = e.Error()
	}
	return p.module, fmt.Errorf("%d parse error(s):\n%s", len(p.errs), joinLines(msgs))
}

// ParseStatement reads all of src and parses it as a single statement
// (spec.md §4.2's stmt production), rather than a full translation
// unit. It exists for callers exercising the checker over a bare
// statement fragment — an if/switch/while/etc. with no enclosing
// function — that module-level Parse's gdecln* grammar has no path
// into. Like Parse, it returns a non-nil *checker.Module whose Seq
// holds every emitted token, unless reading src fails.
func ParseStatement(src source.Source, file string) (*checker.Module, ast.Stmt, error) {
	lx, err := lexer.New(src, file)
	if err != nil {
		return nil, nil, err
	}
	p := &parser{
		lex:          lx,
		module:       checker.NewModule(file),
		typedefNames: map[string]bool{},
	}
	st := p.parseStmt()

	// Drain any trailing tokens (trailing whitespace/newline after the
	// statement) into the module so Seq and Text() still cover every
	// byte of src, matching Parse's round-trip guarantee.
	for p.next() != nil {
	}

	if len(p.errs) == 0 {
		return p.module, st, nil
	}
	msgs := make([]string, len(p.errs))
	for i, e := range p.errs {
		msgs[i] = e.Error()
	}
	return p.module, st, fmt.Errorf("%d parse error(s):\n%s", len(p.errs), joinLines(msgs))
}

func joinLines(lines []string) string {
	out := ""
	for i, l := range lines {
		if i > 0 {
			out += "\n"
		}
		out += l
	}
	return out
}

// push pushes tokens back onto the input stream so they are the next
// ones returned by next, in reverse order (the last one listed is
// returned first) — mirrors parser.push in pkg/yang/parse.go.
func (p *parser) push(toks ...*checker.Token) {
	p.tokens = append(p.tokens, toks...)
}

// pop returns the most recently pushed token, or nil.
func (p *parser) pop() *checker.Token {
	if n := len(p.tokens); n > 0 {
		n--
		t := p.tokens[n]
		p.tokens = p.tokens[:n]
		return t
	}
	return nil
}

// peekKind reports the kind of the next significant token without
// consuming it.
func (p *parser) peekKind() lexer.Kind {
	t := p.peek()
	if t == nil {
		return lexer.EOF
	}
	return t.Lex().Kind
}

// peek returns the next significant token without consuming it.
func (p *parser) peek() *checker.Token {
	t := p.next()
	if t != nil {
		p.push(t)
	}
	return t
}

// peekAt returns the token n significant tokens ahead (0 is the next
// token) without consuming any of them.
func (p *parser) peekAt(n int) *checker.Token {
	var toks []*checker.Token
	for i := 0; i <= n; i++ {
		t := p.next()
		toks = append(toks, t)
		if t == nil {
			break
		}
	}
	for i := len(toks) - 1; i >= 0; i-- {
		if toks[i] != nil {
			p.push(toks[i])
		}
	}
	if n < len(toks) {
		return toks[n]
	}
	return nil
}

// next returns the next significant token, consuming it, or nil at
// end of input. Whitespace, comment, and preprocessor-line tokens are
// linked into the module sequence but never returned here — spec.md's
// grammar has no production for preprocessor directives, so ccheck
// treats a preproc line the same as a comment: carried in the token
// sequence (and checked for indentation by pkg/checker) but invisible
// to the parser. §8's round-trip property is preserved because every
// skipped token is still appended to p.module.Seq.
func (p *parser) next() *checker.Token {
	if t := p.pop(); t != nil {
		return t
	}
	for {
		lt := p.lex.Next()
		if lt == nil {
			return nil
		}
		ct := p.module.Append(lt)
		k := ct.Lex().Kind
		if k.IsWhitespace() || k.IsComment() || k == lexer.Preproc {
			continue
		}
		return ct
	}
}

// errorf records a syntax error at t's position (or with no position
// if t is nil, e.g. at end of input) and continues parsing so later
// errors in the same file are still reported (spec.md §7: "the parser
// records an error... and continues").
func (p *parser) errorf(t *checker.Token, format string, args ...interface{}) {
	p.errs = append(p.errs, &Error{Tok: t, Msg: fmt.Sprintf(format, args...)})
}

// expect consumes and returns the next token if it has kind k,
// otherwise records a syntax error and returns the unconsumed token's
// slot as nil.
func (p *parser) expect(k lexer.Kind, what string) *checker.Token {
	t := p.next()
	if t == nil {
		p.errorf(nil, "unexpected end of file, expected %s", what)
		return nil
	}
	if t.Lex().Kind != k {
		p.errorf(t, "unexpected %s, expected %s", t.Lex().Kind, what)
		p.push(t)
		return nil
	}
	return t
}
