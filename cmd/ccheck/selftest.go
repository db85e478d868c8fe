// Copyright 2026 The ccheck Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/asmwarrior/ccheck/pkg/checker"
	"github.com/asmwarrior/ccheck/pkg/parser"
	"github.com/asmwarrior/ccheck/pkg/source"
)

// selfTestCase is one of the worked end-to-end scenarios of spec.md
// §8, driven directly against the library (ccheck --test is the
// "internal unit-test harness" spec.md §1/§6 scopes out of detail,
// specified only at its contract: run internal tests, exit nonzero
// on failure).
type selfTestCase struct {
	name       string
	src        string
	stmt       bool     // parse src as a bare statement (parser.ParseStatement) instead of a translation unit
	wantSubstr []string // every one of these must appear somewhere in a reported diagnostic
	wantFixed  string   // fix(src) must equal this exactly
}

var selfTestCases = []selfTestCase{
	{
		name:       "S1 trailing whitespace",
		src:        "int x = 1;  \n",
		wantSubstr: []string{"1:12", "end of line"},
		wantFixed:  "int x = 1;\n",
	},
	{
		name: "S2 wrong indentation",
		src:  "int f(void)\n{\n  return 0;\n}\n",
		wantSubstr: []string{
			"3:3", "Wrong indentation",
			"spaces for indentation",
		},
		wantFixed: "int f(void)\n{\n\treturn 0;\n}\n",
	},
	{
		name:       "S3 missing space before block brace",
		src:        "if (x){\n\treturn;\n}\n",
		stmt:       true,
		wantSubstr: []string{"1:7", "block opening brace"},
		wantFixed:  "if (x) {\n\treturn;\n}\n",
	},
	{
		name:       "S4 space after open paren",
		src:        "f( x);\n",
		wantSubstr: []string{"1:3", "after '('"},
		wantFixed:  "f(x);\n",
	},
	{
		name: "S5 else on new line, clean",
		src:  "if (x)\n\ty();\nelse\n\tz();\n",
		stmt: true,
	},
	{
		name: "S6 case label dedent, clean",
		src:  "switch (x) {\n\tcase 1:\n\t\tbreak;\n}\n",
		stmt: true,
	},
}

// runSelfTests runs every selfTestCase and reports results to w,
// returning a process exit status: 0 if every case passed, 1
// otherwise (spec.md §6 "--test ... exit nonzero on failure").
func runSelfTests(w io.Writer) int {
	failed := 0
	for _, tc := range selfTestCases {
		if err := tc.run(); err != nil {
			fmt.Fprintf(w, "FAIL %s: %v\n", tc.name, err)
			failed++
			continue
		}
		fmt.Fprintf(w, "ok   %s\n", tc.name)
	}
	fmt.Fprintf(w, "%d/%d passed\n", len(selfTestCases)-failed, len(selfTestCases))
	if failed > 0 {
		return 1
	}
	return 0
}

// checkOnce parses tc.src (as a statement or a translation unit,
// according to tc.stmt) and runs the checker over it in the given fix
// mode, returning the resulting module and report.
func (tc selfTestCase) checkOnce(fix bool) (*checker.Module, *checker.Report, error) {
	if tc.stmt {
		m, st, err := parser.ParseStatement(source.NewString(tc.src), "test.c")
		if err != nil {
			return nil, nil, err
		}
		c := checker.NewChecker("test.c", fix)
		c.WalkStmt(st)
		checker.CheckIndentation(c.Report, m, fix)
		return m, c.Report, nil
	}
	m, err := parser.Parse(source.NewString(tc.src), "test.c")
	if err != nil {
		return nil, nil, err
	}
	c := checker.NewChecker("test.c", fix)
	c.Walk(m.Root)
	checker.CheckIndentation(c.Report, m, fix)
	return m, c.Report, nil
}

func (tc selfTestCase) run() error {
	_, r, err := tc.checkOnce(false)
	if err != nil {
		return fmt.Errorf("parse: %v", err)
	}
	got := r.Strings()

	if len(tc.wantSubstr) == 0 && len(got) != 0 {
		return fmt.Errorf("expected a clean check, got diagnostics: %v", got)
	}
	for _, want := range tc.wantSubstr {
		found := false
		for _, g := range got {
			if strings.Contains(g, want) {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("no diagnostic contains %q; got %v", want, got)
		}
	}

	if tc.wantFixed == "" {
		return nil
	}
	fixMod, _, err := tc.checkOnce(true)
	if err != nil {
		return fmt.Errorf("parse (fix): %v", err)
	}
	if out := fixMod.Text(); out != tc.wantFixed {
		return fmt.Errorf("fix produced %q, want %q", out, tc.wantFixed)
	}
	return nil
}
