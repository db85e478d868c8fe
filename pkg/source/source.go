// Copyright 2026 The ccheck Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package source implements the pull-based byte source the lexer
// reads from. It is deliberately thin: spec.md scopes the input
// source as an external collaborator, specified only at its contract
// (Read/Position).
package source

import (
	"io"
	"os"

	"github.com/asmwarrior/ccheck/pkg/srcpos"
)

// Source is a pull interface over a byte stream that also tracks its
// own current (line, col).
type Source interface {
	// Read fills buf and returns the number of bytes read. It
	// returns 0, nil at end of input (never io.EOF; callers test
	// n == 0).
	Read(buf []byte) (int, error)
	// Position returns the position of the next unread byte.
	Position() srcpos.Position
}

// tracker advances a running (line, col) over bytes already delivered
// to the caller, shared by File and String.
type tracker struct {
	line, col int
}

func newTracker() tracker { return tracker{line: 1, col: 1} }

func (t *tracker) advance(b []byte) {
	for _, c := range b {
		if c == '\n' {
			t.line++
			t.col = 1
		} else {
			t.col++
		}
	}
}

func (t tracker) position() srcpos.Position {
	return srcpos.Position{Line: t.line, Col: t.col}
}

// File is a Source backed by an *os.File.
type File struct {
	f   *os.File
	pos tracker
}

// OpenFile opens path for reading and returns a File source.
func OpenFile(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return &File{f: f, pos: newTracker()}, nil
}

// NewFile wraps an already-open file handle.
func NewFile(f *os.File) *File {
	return &File{f: f, pos: newTracker()}
}

func (s *File) Read(buf []byte) (int, error) {
	n, err := s.f.Read(buf)
	if err == io.EOF {
		err = nil
	}
	s.pos.advance(buf[:n])
	return n, err
}

func (s *File) Position() srcpos.Position { return s.pos.position() }

// Close closes the underlying file.
func (s *File) Close() error { return s.f.Close() }

// String is a Source backed by an in-memory string, primarily used by
// tests.
type String struct {
	data string
	off  int
	pos  tracker
}

// NewString returns a Source over data.
func NewString(data string) *String {
	return &String{data: data, pos: newTracker()}
}

func (s *String) Read(buf []byte) (int, error) {
	if s.off >= len(s.data) {
		return 0, nil
	}
	n := copy(buf, s.data[s.off:])
	s.off += n
	s.pos.advance(buf[:n])
	return n, nil
}

func (s *String) Position() srcpos.Position { return s.pos.position() }
