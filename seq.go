package linkstack

import (
	"iter"

	"github.com/jacoelho/linkstack/internal/xiter"
)

// All yields copies of the elements from top to bottom.
// Each range loop starts a fresh cursor. The list must not be mutated
// during the loop.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		xiter.FromNext(l.Iter().Next)(yield)
	}
}

// AllMut yields pointers to the elements from top to bottom.
// The loop body may write through each pointer but must not otherwise
// access the list.
func (l *List[T]) AllMut() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		xiter.FromNext(l.IterMut().Next)(yield)
	}
}

// Drain moves the elements out of l and yields them from top to bottom.
// l is empty as soon as Drain returns, and the sequence can be ranged over
// only once. Elements left behind by an early break are released when the
// loop ends.
func (l *List[T]) Drain() iter.Seq[T] {
	it := l.IntoIter()
	return xiter.FromNextRelease(it.Next, it.Drop)
}
