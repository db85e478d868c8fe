// Copyright 2026 The ccheck Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package lexer implements the lossless C99 lexer described in
// spec.md §4.1: every byte of input is emitted as exactly one typed
// token, including whitespace, comments, and preprocessor lines.
package lexer

import (
	"fmt"

	"github.com/asmwarrior/ccheck/pkg/srcpos"
)

// Token is an immutable lexer token: its Kind, the exact source bytes
// that produced it, and the positions of its first and last byte
// (spec.md §3's bpos/epos).
type Token struct {
	Kind Kind
	Text string
	Bpos srcpos.Position
	Epos srcpos.Position

	// UserData is the back-reference slot (spec.md §3's "udata")
	// consumers use to attach their own wrapper; pkg/checker stores
	// its *checker.Token here.
	UserData interface{}
}

// Range returns the inclusive source range spanned by t.
func (t *Token) Range() srcpos.Range {
	return srcpos.Range{Begin: t.Bpos, End: t.Epos}
}

// String returns a debug representation "kind text@range".
func (t *Token) String() string {
	if t == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s %q@%s", t.Kind, t.Text, t.Range())
}
