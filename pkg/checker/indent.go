// Copyright 2026 The ccheck Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package checker

import (
	"github.com/asmwarrior/ccheck/pkg/lexer"
	"github.com/asmwarrior/ccheck/pkg/srcpos"
)

const maxLineLength = 80

// CheckIndentation runs the second, line-oriented pass of spec.md
// §4.3 over m's token sequence: leading-whitespace shape per physical
// line, trailing whitespace, and line length. It must run after the
// AST walk has assigned IndLvl/LBegin to every line-leading token.
func CheckIndentation(r *Report, m *Module, fix bool) {
	line := m.Front()
	for line != nil {
		line = checkOneLine(r, line, fix)
	}
}

// checkOneLine processes the physical line starting at first (the
// first token after the previous newline, or the start of the
// sequence) and returns the first token of the following line, or
// nil at end of sequence.
func checkOneLine(r *Report, first *Token, fix bool) *Token {
	tabs, spaces, extra, leadingLen, afterWS := 0, 0, 0, 0, first
	for afterWS != nil {
		switch afterWS.Lex().Kind {
		case lexer.Tab:
			if spaces > 0 || extra > 0 {
				extra++
			} else {
				tabs += len(afterWS.Lex().Text)
			}
			leadingLen += len(afterWS.Lex().Text)
			afterWS = Next(afterWS)
			continue
		case lexer.Space:
			if extra > 0 {
				extra++
			} else {
				spaces += len(afterWS.Lex().Text)
			}
			leadingLen += len(afterWS.Lex().Text)
			afterWS = Next(afterWS)
			continue
		}
		break
	}
	tokStart := afterWS
	nextLine := scanRestOfLine(r, tokStart, leadingLen, fix)

	if tokStart == nil {
		return nextLine
	}
	k := tokStart.Lex().Kind
	if k == lexer.Newline || k == lexer.Comment || k == lexer.DSComment || k == lexer.EOF {
		return nextLine
	}
	lbegin := tokStart.LBegin || k == lexer.Preproc

	bad := extra > 0
	bad = bad || (lbegin && spaces != 0)
	bad = bad || (!lbegin && spaces != 4)
	bad = bad || (tabs != tokStart.IndLvl)

	if !bad {
		return nextLine
	}
	if !fix {
		pos := srcpos.Single(tokStart.Range().Begin)
		// Each condition of spec.md §4.3 steps 4-7 is independent; more
		// than one may fire for the same line (worked example S2 reports
		// both a tab-count and a leading-space violation at once).
		if tabs != tokStart.IndLvl {
			r.add(pos, "Wrong indentation: found %d tabs, should be %d tabs", tabs, tokStart.IndLvl)
		}
		if extra > 0 {
			r.add(pos, "Mixing tabs and spaces for indentation")
		} else if lbegin && spaces != 0 {
			r.add(pos, "Non-continuation line should not have any spaces for indentation (found %d)", spaces)
		} else if !lbegin && spaces != 4 {
			r.add(pos, "Continuation line should be indented by exactly 4 spaces beyond its tab level (found %d)", spaces)
		}
		return nextLine
	}

	// Repair: delete the whole leading whitespace run and reinstall
	// tokStart.IndLvl tabs, plus 4 spaces if this is a continuation
	// line (spec.md §4.3 step 8).
	removeLeadingRun(first, tokStart)
	if tokStart.IndLvl > 0 {
		insertBefore(tokStart, lexer.Tab, repeatString("\t", tokStart.IndLvl))
	}
	if !lbegin {
		insertBefore(tokStart, lexer.Space, "    ")
	}
	return nextLine
}

// removeLeadingRun unlinks every token in [first, upTo).
func removeLeadingRun(first, upTo *Token) {
	t := first
	for t != nil && t != upTo {
		next := Next(t)
		remove(t)
		t = next
	}
}

func repeatString(s string, n int) string {
	out := make([]byte, 0, len(s)*n)
	for i := 0; i < n; i++ {
		out = append(out, s...)
	}
	return string(out)
}

// scanRestOfLine walks forward from tokStart (the first
// non-leading-whitespace token of the line, or nil if the sequence
// ends within the leading whitespace itself) to the line's
// terminating newline, checking trailing whitespace and the
// 80-column limit, and returns the first token of the following
// line, or nil at end of sequence.
func scanRestOfLine(r *Report, tokStart *Token, leadingLen int, fix bool) *Token {
	if tokStart == nil {
		return nil
	}
	col := leadingLen
	var trailingStart, trailingEnd *Token
	t := tokStart
	for t != nil {
		k := t.Lex().Kind
		if k == lexer.Newline {
			if trailingStart != nil {
				if fix {
					removeLeadingRun(trailingStart, t)
				} else {
					r.add(srcpos.Single(trailingEnd.Range().End), "Whitespace at end of line")
				}
			}
			if col > maxLineLength {
				r.add(t.Range(), "Line too long (%d columns, limit %d)", col, maxLineLength)
			}
			return Next(t)
		}
		col += len(t.Lex().Text)
		if k == lexer.Space || k == lexer.Tab {
			if trailingStart == nil {
				trailingStart = t
			}
			trailingEnd = t
		} else {
			trailingStart, trailingEnd = nil, nil
		}
		t = Next(t)
	}
	if trailingStart != nil && !fix {
		r.add(srcpos.Single(trailingEnd.Range().End), "Whitespace at end of line")
	}
	if col > maxLineLength {
		r.add(srcpos.Single(tokStart.Range().Begin), "Line too long (%d columns, limit %d)", col, maxLineLength)
	}
	return nil
}
