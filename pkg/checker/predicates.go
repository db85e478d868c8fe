// Copyright 2026 The ccheck Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package checker

import (
	"github.com/asmwarrior/ccheck/pkg/lexer"
	"github.com/asmwarrior/ccheck/pkg/srcpos"
)

// The spacing predicates of spec.md §4.3. Each is called once per
// addressed token slot during the AST walk, with the Scope in effect
// at that point in the tree. In check mode (Fix == false) a violation
// appends a Diagnostic to r; in fix mode (Fix == true) the token
// stream is repaired in place and nothing is reported. A nil x (an
// absent optional token slot) is always a silent no-op.

// Any records x's indentation level and otherwise imposes no spacing
// requirement on it (spec.md §4.3 "any"). A nil x (an absent
// optional slot) is a no-op.
func Any(r *Report, s Scope, x *Token) {
	if x == nil {
		return
	}
	x.IndLvl = s.IndLvl
}

// LBegin requires x to be the first non-whitespace token on its
// physical line (spec.md §4.3 "lbegin"): every statement and
// declaration head is addressed this way. A nil x is a no-op.
func LBegin(r *Report, s Scope, x *Token, msg string) {
	if x == nil {
		return
	}
	x.IndLvl = s.IndLvl
	x.LBegin = true
	if firstOnLine(x) {
		return
	}
	if s.Fix {
		repairLBegin(x, s.IndLvl)
		return
	}
	r.add(at(x), "%s", msg)
}

// isSpaceTab reports whether t is a single Space or Tab token.
func isSpaceTab(t *Token) bool {
	return t != nil && (t.Lex().Kind == lexer.Space || t.Lex().Kind == lexer.Tab)
}

// at pins a diagnostic to the single byte x begins at, matching the
// worked examples of spec.md §8, which all locate a violation at one
// point rather than spanning a token's full range.
func at(x *Token) srcpos.Range {
	return srcpos.Single(x.Range().Begin)
}

// afterRange reports the position to diagnose an "after x" violation
// at: the offending token following x when there is one, else x's own
// position, matching the worked examples of spec.md §8 which locate
// the diagnostic at the offending whitespace byte, not at x itself.
func afterRange(x, n *Token) srcpos.Range {
	if n != nil {
		return at(n)
	}
	return at(x)
}

// NoWSBefore requires no space or tab immediately before x, though a
// line break is permitted (spec.md §4.3 "nows-before").
func NoWSBefore(r *Report, s Scope, x *Token, msg string) {
	if x == nil {
		return
	}
	x.IndLvl = s.IndLvl
	p := Prev(x)
	if !isSpaceTab(p) {
		return
	}
	if s.Fix {
		removeSpaceTabBefore(x)
		return
	}
	r.add(at(x), "%s", msg)
}

// NoWSAfter requires no space or tab immediately after x (spec.md
// §4.3 "nows-after").
func NoWSAfter(r *Report, s Scope, x *Token, msg string) {
	if x == nil {
		return
	}
	n := Next(x)
	if !isSpaceTab(n) {
		return
	}
	if s.Fix {
		removeSpaceTabAfter(x)
		return
	}
	r.add(afterRange(x, n), "%s", msg)
}

// NSBreakAfter requires either no whitespace or a single line break
// immediately after x — no space or tab is permitted there (spec.md
// §4.3 "nsbrk-after": "there must be either no whitespace or a
// single newline (no spaces/tabs) immediately after").
func NSBreakAfter(r *Report, s Scope, x *Token, msg string) {
	if x == nil {
		return
	}
	n := Next(x)
	if !isSpaceTab(n) {
		return
	}
	if s.Fix {
		removeSpaceTabAfter(x)
		return
	}
	r.add(afterRange(x, n), "%s", msg)
}

// BreakSpaceBefore requires either a line break or exactly one space
// before x, but not zero whitespace (spec.md §4.3 "brkspace-before").
func BreakSpaceBefore(r *Report, s Scope, x *Token, msg string) {
	if x == nil {
		return
	}
	x.IndLvl = s.IndLvl
	p := Prev(x)
	if p != nil && (p.Lex().Kind == lexer.Newline || firstOnLine(x) ||
		(p.Lex().Kind == lexer.Space && p.Lex().Text == " " && !isSpaceTab(Prev(p)))) {
		return
	}
	if s.Fix {
		removeWhitespaceBefore(x)
		insertBefore(x, lexer.Space, " ")
		return
	}
	r.add(at(x), "%s", msg)
}

// BreakSpaceAfter requires either a line break or exactly one space
// after x (spec.md §4.3 "brkspace-after").
func BreakSpaceAfter(r *Report, s Scope, x *Token, msg string) {
	if x == nil {
		return
	}
	n := Next(x)
	if n != nil && (n.Lex().Kind == lexer.Newline ||
		(n.Lex().Kind == lexer.Space && n.Lex().Text == " ")) {
		after := Next(n)
		if n.Lex().Kind == lexer.Newline || after == nil || after.Lex().Kind != lexer.Space {
			return
		}
	}
	if s.Fix {
		removeWhitespaceAfter(x)
		insertAfter(x, lexer.Space, " ")
		return
	}
	r.add(afterRange(x, n), "%s", msg)
}

// NBSpaceBefore requires exactly one space immediately before x and
// forbids a line break there (spec.md §4.3 "nbspace-before": the
// mirror of nsbrk-after, used for tokens that must stay glued to the
// end of the previous line — e.g. the space before a K&R opening
// brace).
func NBSpaceBefore(r *Report, s Scope, x *Token, msg string) {
	if x == nil {
		return
	}
	p := Prev(x)
	if p != nil && p.Lex().Kind == lexer.Space && p.Lex().Text == " " && !isSpaceTab(Prev(p)) {
		return
	}
	if s.Fix {
		removeWhitespaceBefore(x)
		insertBefore(x, lexer.Space, " ")
		return
	}
	r.add(at(x), "%s", msg)
}
