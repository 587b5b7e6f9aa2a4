package linkstack

// node is one cell of the chain. It is owned by exactly one link.
type node[T any] struct {
	elem T
	next link[T]
}

// link is an ownership slot holding at most one node.
type link[T any] struct {
	node *node[T]
}

// take moves the content out of the slot and leaves it empty.
func (l *link[T]) take() link[T] {
	out := *l
	l.node = nil
	return out
}

func (l link[T]) empty() bool {
	return l.node == nil
}

// unthread releases the chain owned by l one node at a time.
// Each node's next slot is emptied before the node is discarded, so no
// discarded node keeps its successors reachable.
func unthread[T any](l link[T]) {
	cur := l
	for !cur.empty() {
		cur = cur.node.next.take()
	}
}
