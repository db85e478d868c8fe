// Copyright 2026 The ccheck Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/asmwarrior/ccheck/pkg/checker"
	"github.com/asmwarrior/ccheck/pkg/parser"
	"github.com/asmwarrior/ccheck/pkg/source"
)

// parseFile reads path, parses it as a C99 translation unit, and
// returns the resulting module (nil only when the file cannot be
// opened or read; otherwise whatever AST parser.Parse managed to
// build) and any fatal parse error.
func parseFile(path string) (*checker.Module, error) {
	src, err := source.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer src.Close()
	return parser.Parse(src, path)
}

// runCheck checks every path in check mode (spec.md §7: style
// violations are non-fatal diagnostics, but the process exits
// nonzero if any were reported). A parse error on any file is fatal
// for that file only; processing continues with the remaining paths,
// but the overall exit status is nonzero.
func runCheck(w io.Writer, paths []string) int {
	dirty := false
	for _, path := range paths {
		m, err := parseFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			dirty = true
			continue
		}
		c := checker.NewChecker(path, false)
		c.Walk(m.Root)
		checker.CheckIndentation(c.Report, m, false)
		for _, s := range c.Report.Strings() {
			fmt.Fprintln(w, s)
		}
		if !c.Report.Clean() {
			dirty = true
		}
	}
	if dirty {
		return 1
	}
	return 0
}

// runFix rewrites every path in place (spec.md §6 "Fix mode file
// handling"): the rewritten content replaces path, and the original
// is preserved as path+".orig" unless that backup already exists.
// Fix-mode exit status is zero unless a fatal error occurred
// (spec.md §7); style violations repaired in fix mode are never
// reported.
func runFix(w io.Writer, paths []string) int {
	failed := false
	for _, path := range paths {
		m, err := parseFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			failed = true
			continue
		}
		c := checker.NewChecker(path, true)
		c.Walk(m.Root)
		checker.CheckIndentation(c.Report, m, true)

		if err := backupOriginal(path); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			failed = true
			continue
		}
		if err := os.WriteFile(path, []byte(m.Text()), 0644); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			failed = true
		}
	}
	if failed {
		return 1
	}
	return 0
}

// backupOriginal copies path to path+".orig" unless that file already
// exists (spec.md §6: "preserving the original as <path>.orig if one
// does not already exist").
func backupOriginal(path string) error {
	backup := path + ".orig"
	if _, err := os.Stat(backup); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return os.WriteFile(backup, data, 0644)
}
