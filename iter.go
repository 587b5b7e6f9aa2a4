package linkstack

// IntoIter yields the elements of a list by value, consuming them.
type IntoIter[T any] struct {
	list List[T]
}

// IntoIter moves every element of l into a consuming iterator.
// l is left empty and may be reused independently of the iterator.
func (l *List[T]) IntoIter() *IntoIter[T] {
	it := &IntoIter[T]{}
	if l == nil {
		return it
	}
	it.list.head = l.head.take()
	it.list.size = l.size
	l.size = 0
	return it
}

// Next pops the next element.
func (it *IntoIter[T]) Next() (T, bool) {
	return it.list.Pop()
}

// Len returns the number of elements not yet produced.
func (it *IntoIter[T]) Len() int {
	return it.list.Len()
}

// Drop releases the elements not yet produced.
func (it *IntoIter[T]) Drop() {
	it.list.Drop()
}

// Iter yields copies of the elements of a list from top to bottom.
// The list must not be mutated while an Iter is in use.
type Iter[T any] struct {
	cur *node[T]
}

// Iter returns a read-only cursor positioned at the top of l.
func (l *List[T]) Iter() *Iter[T] {
	if l == nil {
		return &Iter[T]{}
	}
	return &Iter[T]{cur: l.head.node}
}

// Next returns the element under the cursor and advances past it.
func (it *Iter[T]) Next() (T, bool) {
	var zero T
	n := it.cur
	if n == nil {
		return zero, false
	}
	it.cur = n.next.node
	return n.elem, true
}

// IterMut yields pointers to the elements of a list from top to bottom.
// The iterator must be the only access path to the list while in use.
type IterMut[T any] struct {
	cur *node[T]
}

// IterMut returns a mutable cursor positioned at the top of l.
func (l *List[T]) IterMut() *IterMut[T] {
	if l == nil {
		return &IterMut[T]{}
	}
	return &IterMut[T]{cur: l.head.node}
}

// Next returns a pointer to the element under the cursor and advances past
// it. The cursor is cleared before the successor is derived from the taken
// node, so the iterator never holds two positions at once.
func (it *IterMut[T]) Next() (*T, bool) {
	n := it.cur
	it.cur = nil
	if n == nil {
		return nil, false
	}
	it.cur = n.next.node
	return &n.elem, true
}
