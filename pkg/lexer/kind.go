// Copyright 2026 The ccheck Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lexer

// Kind is a lexer token kind, the canonical names listed in spec.md
// §6.
type Kind int

const (
	Invalid Kind = iota
	EOF

	Space
	Tab
	Newline

	Comment
	DSComment // documentation comment, /** ... */
	Preproc   // preprocessor line, "#" through end of line

	Ident
	Number
	CharLit
	StrLit

	// Keywords.
	KwIf
	KwElse
	KwWhile
	KwDo
	KwFor
	KwSwitch
	KwCase
	KwDefault
	KwBreak
	KwContinue
	KwGoto
	KwReturn
	KwSizeof
	KwTypedef
	KwExtern
	KwStatic
	KwAuto
	KwRegister
	KwInline
	KwConst
	KwRestrict
	KwVolatile
	KwVoid
	KwChar
	KwShort
	KwInt
	KwLong
	KwSigned
	KwUnsigned
	KwFloat
	KwDouble
	KwStruct
	KwUnion
	KwEnum

	// Punctuators (maximal munch).
	LBracket // [
	RBracket // ]
	LParen   // (
	RParen   // )
	LBrace   // {
	RBrace   // }
	Dot      // .
	Arrow    // ->

	Inc // ++
	Dec // --
	Amp // &
	Star
	Plus
	Minus
	Tilde
	Bang

	Slash
	Percent
	Shl // <<
	Shr // >>
	Lt
	Gt
	Le
	Ge
	Eq  // ==
	Ne  // !=
	Hat // ^
	Pipe
	AmpAmp  // &&
	PipePipe

	Quest
	Colon
	Semi
	Ellipsis // ...

	Assign
	MulAssign
	DivAssign
	ModAssign
	AddAssign
	SubAssign
	ShlAssign
	ShrAssign
	AndAssign
	XorAssign
	OrAssign

	Comma
	Hash   // #
	HashHash // ##
)

var kindNames = map[Kind]string{
	Invalid: "invalid", EOF: "eof",
	Space: "space", Tab: "tab", Newline: "newline",
	Comment: "comment", DSComment: "dscomment", Preproc: "preproc",
	Ident: "ident", Number: "number", CharLit: "charlit", StrLit: "strlit",

	KwIf: "if", KwElse: "else", KwWhile: "while", KwDo: "do", KwFor: "for",
	KwSwitch: "switch", KwCase: "case", KwDefault: "default",
	KwBreak: "break", KwContinue: "continue", KwGoto: "goto", KwReturn: "return",
	KwSizeof: "sizeof", KwTypedef: "typedef", KwExtern: "extern", KwStatic: "static",
	KwAuto: "auto", KwRegister: "register", KwInline: "inline",
	KwConst: "const", KwRestrict: "restrict", KwVolatile: "volatile",
	KwVoid: "void", KwChar: "char", KwShort: "short", KwInt: "int", KwLong: "long",
	KwSigned: "signed", KwUnsigned: "unsigned", KwFloat: "float", KwDouble: "double",
	KwStruct: "struct", KwUnion: "union", KwEnum: "enum",

	LBracket: "[", RBracket: "]", LParen: "(", RParen: ")", LBrace: "{", RBrace: "}",
	Dot: ".", Arrow: "->", Inc: "++", Dec: "--", Amp: "&", Star: "*", Plus: "+",
	Minus: "-", Tilde: "~", Bang: "!", Slash: "/", Percent: "%", Shl: "<<", Shr: ">>",
	Lt: "<", Gt: ">", Le: "<=", Ge: ">=", Eq: "==", Ne: "!=", Hat: "^", Pipe: "|",
	AmpAmp: "&&", PipePipe: "||", Quest: "?", Colon: ":", Semi: ";", Ellipsis: "...",
	Assign: "=", MulAssign: "*=", DivAssign: "/=", ModAssign: "%=", AddAssign: "+=",
	SubAssign: "-=", ShlAssign: "<<=", ShrAssign: ">>=", AndAssign: "&=",
	XorAssign: "^=", OrAssign: "|=", Comma: ",", Hash: "#", HashHash: "##",
}

// String returns the canonical name of k.
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown"
}

// IsWhitespace reports whether k is one of the whitespace kinds.
func (k Kind) IsWhitespace() bool {
	return k == Space || k == Tab || k == Newline
}

// IsComment reports whether k is a comment or documentation comment.
func (k Kind) IsComment() bool {
	return k == Comment || k == DSComment
}

// IsKeyword reports whether k is a C99 keyword.
func (k Kind) IsKeyword() bool {
	return k >= KwIf && k <= KwEnum
}

// keywords maps identifier spellings to their keyword Kind.
var keywords = map[string]Kind{
	"if": KwIf, "else": KwElse, "while": KwWhile, "do": KwDo, "for": KwFor,
	"switch": KwSwitch, "case": KwCase, "default": KwDefault,
	"break": KwBreak, "continue": KwContinue, "goto": KwGoto, "return": KwReturn,
	"sizeof": KwSizeof, "typedef": KwTypedef, "extern": KwExtern, "static": KwStatic,
	"auto": KwAuto, "register": KwRegister, "inline": KwInline,
	"const": KwConst, "restrict": KwRestrict, "volatile": KwVolatile,
	"void": KwVoid, "char": KwChar, "short": KwShort, "int": KwInt, "long": KwLong,
	"signed": KwSigned, "unsigned": KwUnsigned, "float": KwFloat, "double": KwDouble,
	"struct": KwStruct, "union": KwUnion, "enum": KwEnum,
}

// LookupKeyword returns the keyword Kind for ident, and true, or
// (Invalid, false) if ident is not a keyword.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}

// IsTypeSpecifierKeyword reports whether k is one of the basic type
// specifier keywords ("void", "char", "int", ...), a record/enum
// introducer ("struct", "union", "enum") or a type qualifier
// ("const", "restrict", "volatile"), used by the parser's
// sizeof(...) lookahead (spec.md §4.2, §9).
func IsTypeSpecifierKeyword(k Kind) bool {
	switch k {
	case KwVoid, KwChar, KwShort, KwInt, KwLong, KwSigned, KwUnsigned,
		KwFloat, KwDouble, KwStruct, KwUnion, KwEnum,
		KwConst, KwRestrict, KwVolatile:
		return true
	}
	return false
}
