// Copyright (C) 2019-2024, Frostworks, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package linked

// ListElement is an element of a linked list.
type ListElement[T any] struct {
	next, prev *ListElement[T]
	list       *List[T]

	Value T
}

// Next returns the next list element or nil.
func (e *ListElement[T]) Next() *ListElement[T] {
	if p := e.next; e.list != nil && p != &e.list.root {
		return p
	}
	return nil
}

// Prev returns the previous list element or nil.
func (e *ListElement[T]) Prev() *ListElement[T] {
	if p := e.prev; e.list != nil && p != &e.list.root {
		return p
	}
	return nil
}

// List implements a doubly linked list with a sentinel node, in the style of
// container/list, but with generics and reusable elements.
type List[T any] struct {
	// root is the sentinel. root.next is the front of the list and root.prev
	// is the back.
	root ListElement[T]
	len  int
}

func NewList[T any]() *List[T] {
	l := &List[T]{}
	l.root.next = &l.root
	l.root.prev = &l.root
	return l
}

func (l *List[T]) Len() int {
	return l.len
}

// Front returns the element at the front of the list or nil.
func (l *List[T]) Front() *ListElement[T] {
	if l.len == 0 {
		return nil
	}
	return l.root.next
}

// Back returns the element at the back of the list or nil.
func (l *List[T]) Back() *ListElement[T] {
	if l.len == 0 {
		return nil
	}
	return l.root.prev
}

// Remove removes [e] from l if [e] is an element of list l.
func (l *List[T]) Remove(e *ListElement[T]) {
	if e.list != l {
		return
	}
	e.prev.next = e.next
	e.next.prev = e.prev
	e.next = nil
	e.prev = nil
	e.list = nil
	l.len--
}

// PushFront inserts [e] at the front of list l. If [e] is already in a list,
// the list is not modified.
func (l *List[T]) PushFront(e *ListElement[T]) {
	l.insertAfter(e, &l.root)
}

// PushBack inserts [e] at the back of list l. If [e] is already in a list, the
// list is not modified.
func (l *List[T]) PushBack(e *ListElement[T]) {
	l.insertAfter(e, l.root.prev)
}

// MoveToFront moves [e] to the front of list l if [e] is an element of list l.
func (l *List[T]) MoveToFront(e *ListElement[T]) {
	if e.list != l || l.root.next == e {
		return
	}
	l.unlink(e)
	l.link(e, &l.root)
}

// MoveToBack moves [e] to the back of list l if [e] is an element of list l.
func (l *List[T]) MoveToBack(e *ListElement[T]) {
	if e.list != l || l.root.prev == e {
		return
	}
	l.unlink(e)
	l.link(e, l.root.prev)
}

func (l *List[T]) insertAfter(e, at *ListElement[T]) {
	if e.list != nil {
		return
	}
	l.link(e, at)
	e.list = l
	l.len++
}

func (l *List[T]) link(e, at *ListElement[T]) {
	e.prev = at
	e.next = at.next
	e.prev.next = e
	e.next.prev = e
}

func (l *List[T]) unlink(e *ListElement[T]) {
	e.prev.next = e.next
	e.next.prev = e.prev
}
