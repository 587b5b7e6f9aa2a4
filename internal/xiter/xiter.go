package xiter

import "iter"

// FromNext exposes a pull-style next function as an iterator sequence.
func FromNext[T any](next func() (T, bool)) iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			item, ok := next()
			if !ok || !yield(item) {
				return
			}
		}
	}
}

// FromNextRelease is FromNext with a release hook run once the sequence
// stops, whether it was exhausted or the consumer broke out early.
func FromNextRelease[T any](next func() (T, bool), release func()) iter.Seq[T] {
	return func(yield func(T) bool) {
		if release != nil {
			defer release()
		}
		for {
			item, ok := next()
			if !ok || !yield(item) {
				return
			}
		}
	}
}

// Count returns how many values are yielded by a sequence.
func Count[T any](seq iter.Seq[T]) int {
	n := 0
	for range seq {
		n++
	}
	return n
}
