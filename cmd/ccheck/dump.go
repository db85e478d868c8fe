// Copyright 2026 The ccheck Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"reflect"

	"github.com/asmwarrior/ccheck/pkg/ast"
	"github.com/asmwarrior/ccheck/pkg/lexer"
	"github.com/asmwarrior/ccheck/pkg/source"
	"github.com/asmwarrior/ccheck/pkg/tokseq"
	"github.com/kylelemons/godebug/pretty"
)

// dumper is one of dumpASTOne/dumpToksOne.
type dumper func(w io.Writer, path string) error

// runDump runs d over every path, reporting any error to stderr; it
// returns a process exit status (spec.md §7: a fatal error is
// nonzero, everything else is zero — dumps never report style
// violations).
func runDump(w io.Writer, paths []string, d dumper) int {
	failed := false
	for _, path := range paths {
		if err := d(w, path); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			failed = true
		}
	}
	if failed {
		return 1
	}
	return 0
}

// dumpToksOne prints the raw lexer token stream of path, one token
// per line, as "kind \"text\"@range" (spec.md §E's --dump-toks,
// analogous to the teacher's token.String()).
func dumpToksOne(w io.Writer, path string) error {
	src, err := source.OpenFile(path)
	if err != nil {
		return err
	}
	defer src.Close()
	lx, err := lexer.New(src, path)
	if err != nil {
		return err
	}
	for {
		t := lx.Next()
		if t == nil {
			break
		}
		fmt.Fprintln(w, t.String())
		if t.Kind == lexer.EOF {
			break
		}
	}
	return nil
}

// dumpASTOne parses path and pretty-prints its AST (spec.md §E's
// --dump-ast, using godebug/pretty as the teacher's marshal_test.go
// does for tree dumps).
func dumpASTOne(w io.Writer, path string) error {
	m, err := parseFile(path)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, pretty.Sprint(astTree(m.Root)))
	return nil
}

var (
	nodeType      = reflect.TypeOf((*ast.Node)(nil)).Elem()
	tokenSlotType = reflect.TypeOf((*ast.TokenSlot)(nil)).Elem()
	baseType      = reflect.TypeOf(ast.Base{})
	listType      = reflect.TypeOf(tokseq.List{})
)

// astTree converts an ast.Node into a plain map/slice tree suitable
// for pretty.Sprint: struct field names become map keys, token slots
// become their raw text, and tokseq.List fields become child slices.
// Generic over every node kind via reflection, since the node family
// is a tagged union with no single shared field layout (spec.md §3).
func astTree(n ast.Node) interface{} {
	if n == nil || reflect.ValueOf(n).IsNil() {
		return nil
	}
	out := map[string]interface{}{"kind": n.Kind().String()}
	v := reflect.ValueOf(n).Elem()
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if sf.Type == baseType {
			continue
		}
		fv := v.Field(i)
		switch {
		case sf.Type == listType:
			lst := fv.Addr().Interface().(*tokseq.List)
			var children []interface{}
			lst.Each(func(e tokseq.Elem) {
				if nd, ok := e.(ast.Node); ok {
					children = append(children, astTree(nd))
				}
			})
			if len(children) > 0 {
				out[sf.Name] = children
			}
		case sf.Type == tokenSlotType:
			if !fv.IsNil() {
				out[sf.Name] = fv.Interface().(ast.TokenSlot).Lex().Text
			}
		case sf.Type.Kind() == reflect.Bool:
			out[sf.Name] = fv.Bool()
		case sf.Type.Implements(nodeType):
			if !fv.IsNil() {
				out[sf.Name] = astTree(fv.Interface().(ast.Node))
			}
		}
	}
	return out
}
