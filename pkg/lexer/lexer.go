// Copyright 2026 The ccheck Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lexer

import (
	"strings"
	"unicode/utf8"

	"github.com/asmwarrior/ccheck/pkg/source"
	"github.com/asmwarrior/ccheck/pkg/srcpos"
)

const eofRune = -1

// stateFn represents one state of the lexer, returning the state to
// run next. A nil return ends lexing.
type stateFn func(*Lexer) stateFn

// Lexer consumes an entire translation unit's bytes, buffered in
// memory (spec.md §5: a single call processes one translation unit),
// and emits a lazy, pull-based sequence of Tokens.
type Lexer struct {
	file  string
	input string

	pos              int // byte offset of the next unread byte
	start            int // byte offset where the current token begins
	line, col        int // position of the next unread byte
	sline, scol      int // position where the current token begins
	lastLine, lastCol int // position of the most recently consumed byte
	width            int // width in bytes of the last rune returned by next

	bol   bool // true if no non-whitespace token has been seen on this line yet
	queue []*Token
	state stateFn
}

// New reads all of src's bytes and returns a Lexer ready to tokenize
// them. file is used only for Token positions' error-reporting
// context carried alongside the Lexer (callers attach it themselves;
// Token itself carries no file field, matching spec.md §3).
func New(src source.Source, file string) (*Lexer, error) {
	input, err := readAll(src)
	if err != nil {
		return nil, err
	}
	return &Lexer{
		file:  file,
		input: input,
		line:  1,
		col:   1,
		bol:   true,
		state: lexGround,
	}, nil
}

// NewFromString is a convenience constructor over an in-memory
// string, used heavily by tests.
func NewFromString(input string) *Lexer {
	return &Lexer{
		input: input,
		line:  1,
		col:   1,
		bol:   true,
		state: lexGround,
	}
}

func readAll(src source.Source) (string, error) {
	var b strings.Builder
	buf := make([]byte, 4096)
	for {
		n, err := src.Read(buf)
		if err != nil {
			return "", err
		}
		if n == 0 {
			break
		}
		b.Write(buf[:n])
	}
	return b.String(), nil
}

// Next returns the next Token from the input. The final Token emitted
// has Kind EOF; calling Next again after that returns nil.
func (l *Lexer) Next() *Token {
	for {
		if len(l.queue) > 0 {
			t := l.queue[0]
			l.queue = l.queue[1:]
			return t
		}
		if l.state == nil {
			return nil
		}
		l.state = l.state(l)
	}
}

// next returns the next rune in the input, or eofRune at end of
// input, advancing the cursor.
func (l *Lexer) next() rune {
	if l.pos >= len(l.input) {
		l.width = 0
		return eofRune
	}
	r, w := utf8.DecodeRuneInString(l.input[l.pos:])
	l.pos += w
	l.width = w
	l.lastLine, l.lastCol = l.line, l.col
	if r == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col += w
	}
	return r
}

// backup undoes the most recent call to next. It must not be called
// twice in a row.
func (l *Lexer) backup() {
	if l.width == 0 {
		return
	}
	l.pos -= l.width
	l.line, l.col = l.lastLine, l.lastCol
	l.width = 0
}

// peek returns, without consuming, the next rune.
func (l *Lexer) peek() rune {
	r := l.next()
	l.backup()
	return r
}

// peekAt returns, without consuming anything, the rune n runes ahead
// of the cursor (peekAt(0) == peek()). It is used for punctuator
// maximal munch and comment-opening lookahead.
func (l *Lexer) peekAt(n int) rune {
	p := l.pos
	for i := 0; i < n; i++ {
		if p >= len(l.input) {
			return eofRune
		}
		_, w := utf8.DecodeRuneInString(l.input[p:])
		p += w
	}
	if p >= len(l.input) {
		return eofRune
	}
	r, _ := utf8.DecodeRuneInString(l.input[p:])
	return r
}

// acceptRun consumes a maximal run of runes found in valid, returning
// true if at least one was consumed.
func (l *Lexer) acceptRun(valid string) bool {
	any := false
	for strings.ContainsRune(valid, l.next()) {
		any = true
	}
	l.backup()
	return any
}

// atLineContinuation reports whether the cursor is positioned at a
// backslash immediately followed by a newline (spec.md §E). If so it
// consumes the continuation and returns true, leaving the cursor
// positioned just after the folded newline.
func (l *Lexer) atLineContinuation() bool {
	if l.peek() != '\\' {
		return false
	}
	switch l.peekAt(1) {
	case '\n':
		l.next() // backslash
		l.next() // newline
		return true
	case '\r':
		if l.peekAt(2) == '\n' {
			l.next()
			l.next()
			l.next()
			return true
		}
	}
	return false
}

// consume marks everything up to the current cursor as belonging to
// the token about to be emitted.
func (l *Lexer) consume() {
	l.start = l.pos
}

func (l *Lexer) beginToken() {
	l.sline, l.scol = l.line, l.col
}

// emit queues a token of kind k covering [start, pos) and resets the
// cursor for the next token.
func (l *Lexer) emit(k Kind) *Token {
	t := &Token{
		Kind: k,
		Text: l.input[l.start:l.pos],
		Bpos: srcpos.Position{Line: l.sline, Col: l.scol},
	}
	// Epos is the position of the token's last byte, found by
	// advancing from Bpos over every byte before it.
	t.Epos = t.Bpos
	for i := 0; i+1 < len(t.Text); i++ {
		if t.Text[i] == '\n' {
			t.Epos.Line++
			t.Epos.Col = 1
		} else {
			t.Epos.Col++
		}
	}
	if t.Text == "" {
		t.Bpos = srcpos.Position{Line: l.line, Col: l.col}
		t.Epos = t.Bpos
	}
	l.queue = append(l.queue, t)
	l.consume()
	if k != Space && k != Tab {
		l.bol = k == Newline
	}
	return t
}

// lexGround dispatches on the first rune of a new token.
func lexGround(l *Lexer) stateFn {
	l.beginToken()
	switch c := l.peek(); c {
	case eofRune:
		l.emit(EOF)
		return nil
	case ' ':
		l.acceptRun(" ")
		l.emit(Space)
		return lexGround
	case '\t':
		l.acceptRun("\t")
		l.emit(Tab)
		return lexGround
	case '\n':
		l.next()
		l.emit(Newline)
		return lexGround
	case '\r':
		if l.peekAt(1) == '\n' {
			l.next()
			l.next()
			l.emit(Newline)
			return lexGround
		}
		l.next()
		l.emit(Invalid)
		return lexGround
	case '#':
		if l.bol {
			return lexPreproc
		}
		l.next()
		if l.peek() == '#' {
			l.next()
			l.emit(HashHash)
		} else {
			l.emit(Hash)
		}
		return lexGround
	case '/':
		return lexSlash
	case '"':
		l.next()
		return lexString
	case '\'':
		l.next()
		return lexChar
	default:
		switch {
		case c == '_' || isAlpha(c):
			return lexIdentifier
		case isDigit(c):
			return lexNumber
		default:
			return lexPunct
		}
	}
}

func isAlpha(r rune) bool { return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') }
func isDigit(r rune) bool { return r >= '0' && r <= '9' }
func isHexDigit(r rune) bool {
	return isDigit(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}
func isIdentRune(r rune) bool { return r == '_' || isAlpha(r) || isDigit(r) }

// lexSlash disambiguates '/', "//", "/*", and "/**".
func lexSlash(l *Lexer) stateFn {
	l.next() // '/'
	switch l.peek() {
	case '/':
		l.next()
		for {
			switch l.peek() {
			case '\n', eofRune:
				l.emit(Comment)
				return lexGround
			case '\\':
				if l.atLineContinuation() {
					continue
				}
				l.next()
			default:
				l.next()
			}
		}
	case '*':
		l.next()
		doc := l.peek() == '*' && l.peekAt(1) != '/'
		for {
			switch l.next() {
			case eofRune:
				l.emit(Invalid)
				return lexGround
			case '*':
				if l.peek() == '/' {
					l.next()
					if doc {
						l.emit(DSComment)
					} else {
						l.emit(Comment)
					}
					return lexGround
				}
			}
		}
	case '=':
		l.next()
		l.emit(DivAssign)
		return lexGround
	default:
		l.emit(Slash)
		return lexGround
	}
}

// lexPreproc reads a "#" as the first non-whitespace token of a
// physical line through to (not including) the terminating newline,
// honoring backslash-newline continuations.
func lexPreproc(l *Lexer) stateFn {
	for {
		switch c := l.peek(); c {
		case eofRune, '\n':
			l.emit(Preproc)
			return lexGround
		case '\\':
			if l.atLineContinuation() {
				continue
			}
			l.next()
		default:
			l.next()
		}
	}
}

// lexString reads a double-quoted string literal; the opening '"' has
// already been consumed.
func lexString(l *Lexer) stateFn {
	for {
		switch c := l.peek(); c {
		case eofRune, '\n':
			l.emit(Invalid)
			return lexGround
		case '"':
			l.next()
			l.emit(StrLit)
			return lexGround
		case '\\':
			if l.atLineContinuation() {
				continue
			}
			l.next()
			if l.peek() == eofRune {
				l.emit(Invalid)
				return lexGround
			}
			l.next()
		default:
			l.next()
		}
	}
}

// lexChar reads a single-quoted char literal; the opening '\'' has
// already been consumed.
func lexChar(l *Lexer) stateFn {
	for {
		switch c := l.peek(); c {
		case eofRune, '\n':
			l.emit(Invalid)
			return lexGround
		case '\'':
			l.next()
			l.emit(CharLit)
			return lexGround
		case '\\':
			if l.atLineContinuation() {
				continue
			}
			l.next()
			if l.peek() == eofRune {
				l.emit(Invalid)
				return lexGround
			}
			l.next()
		default:
			l.next()
		}
	}
}

// lexIdentifier reads [_A-Za-z][_A-Za-z0-9]*, folding line
// continuations in the middle of the spelling (spec.md §E).
func lexIdentifier(l *Lexer) stateFn {
	l.next()
	for {
		switch {
		case l.peek() == '\\' && l.atLineContinuation():
			continue
		case isIdentRune(l.peek()):
			l.next()
		default:
			text := l.input[l.start:l.pos]
			if k, ok := LookupKeyword(text); ok {
				l.emit(k)
			} else {
				l.emit(Ident)
			}
			return lexGround
		}
	}
}

// lexNumber reads a decimal/octal/hex integer constant with an
// optional u/l/ll suffix. Floating constants are accepted as the same
// Number kind (spec.md's grammar does not distinguish them for
// layout-checking purposes).
func lexNumber(l *Lexer) stateFn {
	if l.peek() == '0' {
		l.next()
		if l.peek() == 'x' || l.peek() == 'X' {
			l.next()
			l.acceptRun("0123456789abcdefABCDEF")
			l.emitNumberSuffix()
			return lexGround
		}
	}
	l.acceptRun("0123456789")
	if l.peek() == '.' && l.peekAt(1) != '.' {
		l.next()
		l.acceptRun("0123456789")
	}
	if c := l.peek(); c == 'e' || c == 'E' {
		l.next()
		if c := l.peek(); c == '+' || c == '-' {
			l.next()
		}
		l.acceptRun("0123456789")
	}
	l.emitNumberSuffix()
	return lexGround
}

func (l *Lexer) emitNumberSuffix() {
	l.acceptRun("uUlLfF")
	l.emit(Number)
}

// punctuators is the maximal-munch table, longest spellings first.
// Digraphs (spec.md §E) are included as alternate spellings of the
// brackets/brace/hash punctuators they stand in for.
var punctuators = []struct {
	text string
	kind Kind
}{
	{"%:%:", HashHash},
	{"<<=", ShlAssign},
	{">>=", ShrAssign},
	{"...", Ellipsis},
	{"->", Arrow},
	{"++", Inc},
	{"--", Dec},
	{"<<", Shl},
	{">>", Shr},
	{"<=", Le},
	{">=", Ge},
	{"==", Eq},
	{"!=", Ne},
	{"&&", AmpAmp},
	{"||", PipePipe},
	{"*=", MulAssign},
	{"/=", DivAssign},
	{"%=", ModAssign},
	{"+=", AddAssign},
	{"-=", SubAssign},
	{"&=", AndAssign},
	{"^=", XorAssign},
	{"|=", OrAssign},
	{"##", HashHash},
	{"<:", LBracket},
	{":>", RBracket},
	{"<%", LBrace},
	{"%>", RBrace},
	{"%:", Hash},
	{"[", LBracket}, {"]", RBracket},
	{"(", LParen}, {")", RParen},
	{"{", LBrace}, {"}", RBrace},
	{".", Dot},
	{"&", Amp}, {"*", Star}, {"+", Plus}, {"-", Minus}, {"~", Tilde}, {"!", Bang},
	{"/", Slash}, {"%", Percent}, {"<", Lt}, {">", Gt}, {"^", Hat}, {"|", Pipe},
	{"?", Quest}, {":", Colon}, {";", Semi}, {"=", Assign}, {",", Comma}, {"#", Hash},
}

// lexPunct matches the longest punctuator spelling starting at the
// cursor, or emits Invalid for one unrecognized byte.
func lexPunct(l *Lexer) stateFn {
	rest := l.input[l.pos:]
	for _, p := range punctuators {
		if strings.HasPrefix(rest, p.text) {
			for range p.text {
				l.next()
			}
			l.emit(p.kind)
			return lexGround
		}
	}
	l.next()
	l.emit(Invalid)
	return lexGround
}
