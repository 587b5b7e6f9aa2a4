package linkstack_test

import (
	"testing"

	"github.com/jacoelho/linkstack"
)

func BenchmarkPushPop(b *testing.B) {
	l := linkstack.New[int]()

	b.ReportAllocs()
	for b.Loop() {
		l.Push(1)
		if _, ok := l.Pop(); !ok {
			b.Fatal("Pop() reported no value")
		}
	}
}

func BenchmarkIter(b *testing.B) {
	l := newList()
	for i := range 1024 {
		l.Push(i)
	}

	b.ReportAllocs()
	for b.Loop() {
		sum := 0
		for v := range l.All() {
			sum += v
		}
		if sum == 0 {
			b.Fatal("All() yielded nothing")
		}
	}
}

func BenchmarkDrop(b *testing.B) {
	const n = 100_000

	b.ReportAllocs()
	for b.Loop() {
		l := linkstack.New[int]()
		for i := range n {
			l.Push(i)
		}
		l.Drop()
		if !l.IsEmpty() {
			b.Fatal("list not empty after Drop")
		}
	}
}
