// Copyright 2026 The ccheck Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package source

import (
	"io"
	"testing"

	"github.com/asmwarrior/ccheck/pkg/srcpos"
)

func TestStringReadAll(t *testing.T) {
	s := NewString("ab\ncd")
	var got []byte
	buf := make([]byte, 2)
	for {
		n, err := s.Read(buf)
		if err != nil {
			t.Fatalf("Read: %v", err)
		}
		if n == 0 {
			break
		}
		got = append(got, buf[:n]...)
	}
	if string(got) != "ab\ncd" {
		t.Fatalf("got %q", got)
	}
}

func TestStringPosition(t *testing.T) {
	s := NewString("ab\ncd")
	buf := make([]byte, 3) // "ab\n"
	if _, err := s.Read(buf); err != nil && err != io.EOF {
		t.Fatalf("Read: %v", err)
	}
	if got, want := s.Position(), (srcpos.Position{Line: 2, Col: 1}); got != want {
		t.Errorf("Position() = %v, want %v", got, want)
	}
}
