// Package linkstack implements a generic singly-linked LIFO stack.
//
// Every mutation moves ownership of the chain explicitly: the head slot is
// emptied before a node is built on top of it or unlinked from it, and
// teardown walks the chain iteratively instead of recursing per node.
//
// A List is not safe for concurrent use. Values returned by PeekMut and the
// cursors produced by Iter and IterMut are valid only while the list is not
// otherwise accessed.
package linkstack

import (
	"fmt"
	"strings"
)

// List is a LIFO stack of T. The zero value is an empty list ready to use.
type List[T any] struct {
	head link[T]
	size int
}

// New returns an empty list.
func New[T any]() *List[T] {
	return &List[T]{}
}

// Len returns the number of elements in the list.
func (l *List[T]) Len() int {
	if l == nil {
		return 0
	}
	return l.size
}

// IsEmpty reports whether the list holds no elements.
func (l *List[T]) IsEmpty() bool {
	return l.Len() == 0
}

// Push places elem on top of the list.
func (l *List[T]) Push(elem T) {
	if l == nil {
		return
	}
	n := &node[T]{elem: elem, next: l.head.take()}
	l.head = link[T]{node: n}
	l.size++
}

// Pop removes and returns the top element.
// It returns false and leaves the list unchanged when the list is empty.
func (l *List[T]) Pop() (T, bool) {
	var zero T
	if l == nil || l.head.empty() {
		return zero, false
	}
	n := l.head.take().node
	l.head = n.next.take()
	l.size--
	return n.elem, true
}

// Peek returns a copy of the top element without removing it.
func (l *List[T]) Peek() (T, bool) {
	var zero T
	if l == nil || l.head.empty() {
		return zero, false
	}
	return l.head.node.elem, true
}

// PeekMut returns a pointer to the top element for in-place modification.
// The pointer must not be used after the list is next mutated, and the list
// must not be read or written through any other path while it is held.
func (l *List[T]) PeekMut() (*T, bool) {
	if l == nil || l.head.empty() {
		return nil, false
	}
	return &l.head.node.elem, true
}

// Drop releases every element and leaves the list empty.
// The chain is unthreaded iteratively, so auxiliary space does not grow
// with the length of the list.
func (l *List[T]) Drop() {
	if l == nil {
		return
	}
	unthread(l.head.take())
	l.size = 0
}

// String renders the elements from top to bottom, e.g. "[3 2 1]".
func (l *List[T]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, it := 0, l.Iter(); ; i++ {
		v, ok := it.Next()
		if !ok {
			break
		}
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprint(&b, v)
	}
	b.WriteByte(']')
	return b.String()
}
