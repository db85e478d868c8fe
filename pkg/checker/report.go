// Copyright 2026 The ccheck Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package checker

import (
	"fmt"

	"github.com/asmwarrior/ccheck/pkg/srcpos"
)

// Diagnostic is one reported style violation (spec.md §6 output
// format: "file:LINE:COL: message" or "file:LINE:COL-LINE:COL:
// message").
type Diagnostic struct {
	Pos     srcpos.Range
	Message string
}

// String formats d without a file prefix; use Report.Strings for the
// full "file:..." form.
func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s", d.Pos, d.Message)
}

// Report accumulates Diagnostics in the deterministic order the AST
// walk and indentation pass produce them (spec.md §4.3
// "Determinism").
type Report struct {
	File        string
	Diagnostics []Diagnostic
}

func newReport(file string) *Report { return &Report{File: file} }

func (r *Report) add(pos srcpos.Range, format string, args ...interface{}) {
	r.Diagnostics = append(r.Diagnostics, Diagnostic{
		Pos:     pos,
		Message: fmt.Sprintf(format, args...),
	})
}

// Clean reports whether no violations were recorded.
func (r *Report) Clean() bool { return len(r.Diagnostics) == 0 }

// Strings renders every diagnostic as "file:line:col: message" (or
// the range form), one per Diagnostic, in report order.
func (r *Report) Strings() []string {
	out := make([]string, len(r.Diagnostics))
	for i, d := range r.Diagnostics {
		out[i] = fmt.Sprintf("%s: %s", d.Pos.WithFile(r.File), d.Message)
	}
	return out
}
