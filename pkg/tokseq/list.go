// Copyright 2026 The ccheck Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tokseq implements the intrusive doubly linked sequence that
// both the checker's live token stream and AST sibling lists are
// strung on. Unlike container/list, the link fields live directly on
// the element (via Link), so an element can unlink or splice itself
// without a separate wrapper value.
package tokseq

// Elem is anything that can be strung on a List: it owns one Link.
type Elem interface {
	SeqLink() *Link
}

// Link holds the sibling pointers embedded in a List element. Types
// that want to participate in a List embed a Link field and implement
// Elem by returning its address.
type Link struct {
	prev, next Elem
	list       *List
}

// Next returns the element following e in its list, or nil if e is
// last or unlinked.
func Next(e Elem) Elem {
	if e == nil {
		return nil
	}
	return e.SeqLink().next
}

// Prev returns the element preceding e in its list, or nil if e is
// first or unlinked.
func Prev(e Elem) Elem {
	if e == nil {
		return nil
	}
	return e.SeqLink().prev
}

// List is an intrusive doubly linked sequence of Elem values.
type List struct {
	front, back Elem
	n           int
}

// Front returns the first element, or nil if the list is empty.
func (l *List) Front() Elem { return l.front }

// Back returns the last element, or nil if the list is empty.
func (l *List) Back() Elem { return l.back }

// Len returns the number of elements currently linked into l.
func (l *List) Len() int { return l.n }

// PushBack appends e to the end of l.
func (l *List) PushBack(e Elem) {
	lk := e.SeqLink()
	lk.list = l
	lk.next = nil
	lk.prev = l.back
	if l.back != nil {
		l.back.SeqLink().next = e
	} else {
		l.front = e
	}
	l.back = e
	l.n++
}

// InsertBefore splices e into l immediately before mark. mark must
// already be linked into l.
func (l *List) InsertBefore(e, mark Elem) {
	mlk := mark.SeqLink()
	lk := e.SeqLink()
	lk.list = l
	lk.next = mark
	lk.prev = mlk.prev
	if mlk.prev != nil {
		mlk.prev.SeqLink().next = e
	} else {
		l.front = e
	}
	mlk.prev = e
	l.n++
}

// InsertAfter splices e into l immediately after mark. mark must
// already be linked into l.
func (l *List) InsertAfter(e, mark Elem) {
	mlk := mark.SeqLink()
	lk := e.SeqLink()
	lk.list = l
	lk.prev = mark
	lk.next = mlk.next
	if mlk.next != nil {
		mlk.next.SeqLink().prev = e
	} else {
		l.back = e
	}
	mlk.next = e
	l.n++
}

// Remove unlinks e from l. It is a no-op if e is not linked into l.
func (l *List) Remove(e Elem) {
	lk := e.SeqLink()
	if lk.list != l {
		return
	}
	if lk.prev != nil {
		lk.prev.SeqLink().next = lk.next
	} else {
		l.front = lk.next
	}
	if lk.next != nil {
		lk.next.SeqLink().prev = lk.prev
	} else {
		l.back = lk.prev
	}
	lk.prev, lk.next, lk.list = nil, nil, nil
	l.n--
}

// Linked reports whether e is currently linked into l.
func (l *List) Linked(e Elem) bool {
	return e != nil && e.SeqLink().list == l
}

// Each calls f for every element of l, front to back. f may remove or
// replace the current element's neighbors but must not remove the
// current element itself.
func (l *List) Each(f func(Elem)) {
	for e := l.front; e != nil; e = Next(e) {
		f(e)
	}
}
