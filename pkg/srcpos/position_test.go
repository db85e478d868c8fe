// Copyright 2026 The ccheck Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package srcpos

import "testing"

func TestPositionString(t *testing.T) {
	for _, tt := range []struct {
		p    Position
		want string
	}{
		{Position{1, 1}, "1:1"},
		{Position{42, 7}, "42:7"},
	} {
		if got := tt.p.String(); got != tt.want {
			t.Errorf("Position{%d,%d}.String() = %q, want %q", tt.p.Line, tt.p.Col, got, tt.want)
		}
	}
}

func TestRangeString(t *testing.T) {
	for _, tt := range []struct {
		r    Range
		want string
	}{
		{Single(Position{3, 3}), "3:3"},
		{Range{Position{1, 12}, Position{1, 12}}, "1:12"},
		{Range{Position{1, 1}, Position{2, 5}}, "1:1-2:5"},
	} {
		if got := tt.r.String(); got != tt.want {
			t.Errorf("Range.String() = %q, want %q", got, tt.want)
		}
	}
}

func TestRangeWithFile(t *testing.T) {
	r := Range{Position{1, 12}, Position{1, 12}}
	if got, want := r.WithFile("file.c"), "file.c:1:12"; got != want {
		t.Errorf("WithFile = %q, want %q", got, want)
	}
	if got, want := r.WithFile(""), "1:12"; got != want {
		t.Errorf("WithFile(\"\") = %q, want %q", got, want)
	}
}
