// Copyright 2026 The ccheck Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tokseq

import "testing"

type item struct {
	Link
	v int
}

func (it *item) SeqLink() *Link { return &it.Link }

func collect(l *List) []int {
	var out []int
	l.Each(func(e Elem) { out = append(out, e.(*item).v) })
	return out
}

func TestPushBack(t *testing.T) {
	l := &List{}
	a, b, c := &item{v: 1}, &item{v: 2}, &item{v: 3}
	l.PushBack(a)
	l.PushBack(b)
	l.PushBack(c)

	if got, want := collect(l), []int{1, 2, 3}; !eq(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	if l.Front() != Elem(a) || l.Back() != Elem(c) {
		t.Fatalf("front/back wrong")
	}
	if l.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", l.Len())
	}
}

func TestInsertBeforeAfter(t *testing.T) {
	l := &List{}
	a, c := &item{v: 1}, &item{v: 3}
	l.PushBack(a)
	l.PushBack(c)

	b := &item{v: 2}
	l.InsertBefore(b, c)
	if got, want := collect(l), []int{1, 2, 3}; !eq(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}

	z := &item{v: 0}
	l.InsertAfter(z, a)
	if got, want := collect(l), []int{1, 0, 2, 3}; !eq(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestRemove(t *testing.T) {
	l := &List{}
	a, b, c := &item{v: 1}, &item{v: 2}, &item{v: 3}
	l.PushBack(a)
	l.PushBack(b)
	l.PushBack(c)

	l.Remove(b)
	if got, want := collect(l), []int{1, 3}; !eq(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	if l.Linked(b) {
		t.Fatalf("b still linked after Remove")
	}
	l.Remove(a)
	if l.Front() != Elem(c) {
		t.Fatalf("Front() after removing head = %v, want c", l.Front())
	}
	l.Remove(c)
	if l.Front() != nil || l.Back() != nil || l.Len() != 0 {
		t.Fatalf("list not empty after removing all elements")
	}
}

func eq(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
