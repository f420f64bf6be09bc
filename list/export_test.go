// SPDX-License-Identifier: MIT

package list

// Test bridge: white-box helpers compiled into the test binary only.
//
// Provided surface:
//   - NewChainForTest: a bare head ⇄ values… ⇄ tail chain with no owning List,
//     for exercising iterator traversal in isolation.
//   - CheckLinksForTest: walks l in both directions and reports whether the
//     sentinel invariants and the size counter agree with the chain.

// NewChainForTest returns iterators at the first and one-past-last nodes of a
// detached chain holding values.
func NewChainForTest[E any](values ...E) (first Iterator[E], end Iterator[E]) {
	head, tail := &node[E]{}, &node[E]{}
	head.next, tail.prev = tail, head
	var v E
	for _, v = range values {
		n := &node[E]{element: v, prev: tail.prev, next: tail}
		tail.prev.next = n
		tail.prev = n
	}

	return Iterator[E]{head.next}, Iterator[E]{tail}
}

// CheckLinksForTest verifies that:
//   - walking forward from head reaches tail in exactly Len() steps,
//   - walking backward from tail reaches head in exactly Len() steps,
//   - every node's neighbours point back at it,
//   - head.prev and tail.next are nil.
func CheckLinksForTest[E any](l *List[E]) bool {
	l.lazyInit()
	if l.head.prev != nil || l.tail.next != nil {
		return false
	}
	forward := 0
	for n := &l.head; n != &l.tail; n = n.next {
		if n.next == nil || n.next.prev != n {
			return false
		}
		forward++
	}
	backward := 0
	for n := &l.tail; n != &l.head; n = n.prev {
		if n.prev == nil || n.prev.next != n {
			return false
		}
		backward++
	}

	return forward-1 == l.size && backward-1 == l.size
}
