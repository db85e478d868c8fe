// Copyright 2026 The ccheck Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Program ccheck checks (and optionally fixes) the layout of C99
// source files against the rules of spec.md §4.3: indentation,
// spacing around punctuation, line breaks, line-length limits, and
// trailing whitespace.
//
// Usage: ccheck [--fix] PATH ...
//        ccheck --test
//        ccheck --dump-ast PATH
//        ccheck --dump-toks PATH
package main

import (
	"fmt"
	"os"

	"github.com/pborman/getopt"
)

var stop = os.Exit

func main() {
	var fix, runTests, dumpAST, dumpToks, help bool

	getopt.BoolVarLong(&fix, "fix", 0, "rewrite each file in place after checking, preserving the original as PATH.orig")
	getopt.BoolVarLong(&runTests, "test", 0, "run the internal unit tests and exit nonzero on failure")
	getopt.BoolVarLong(&dumpAST, "dump-ast", 0, "print the parsed AST of each PATH instead of checking it")
	getopt.BoolVarLong(&dumpToks, "dump-toks", 0, "print the raw token stream of each PATH instead of checking it")
	getopt.BoolVarLong(&help, "help", '?', "display help")
	getopt.SetParameters("PATH ...")

	if err := getopt.Getopt(func(o getopt.Option) bool { return true }); err != nil {
		fmt.Fprintln(os.Stderr, err)
		getopt.CommandLine.PrintUsage(os.Stderr)
		stop(1)
		return
	}

	if help {
		getopt.CommandLine.PrintUsage(os.Stderr)
		stop(0)
		return
	}

	if runTests {
		stop(runSelfTests(os.Stdout))
		return
	}

	paths := getopt.Args()
	if len(paths) == 0 {
		fmt.Fprintln(os.Stderr, "ccheck: no input files")
		getopt.CommandLine.PrintUsage(os.Stderr)
		stop(1)
		return
	}

	switch {
	case dumpAST:
		stop(runDump(os.Stdout, paths, dumpASTOne))
	case dumpToks:
		stop(runDump(os.Stdout, paths, dumpToksOne))
	case fix:
		stop(runFix(os.Stdout, paths))
	default:
		stop(runCheck(os.Stdout, paths))
	}
}
