// SPDX-License-Identifier: MIT
//
// File: ops.go
// Role: whole-list conveniences: Reverse, Resize, RemoveIf/Remove, snapshots
//       and range-over-func iteration.

package list

import "iter"

// Reverse reverses the order of the elements by swapping each node's links.
// Iterators stay attached to their nodes.
// Complexity: O(n), no allocation.
func (l *List[E]) Reverse() {
	if l.size < 2 {
		return
	}
	first, last := l.head.next, l.tail.prev
	var next *node[E]
	for n := first; n != &l.tail; n = next {
		next = n.next
		n.prev, n.next = n.next, n.prev
	}
	l.head.next = last
	last.prev = &l.head
	l.tail.prev = first
	first.next = &l.tail
}

// Resize grows l to n elements by appending fill, or shrinks it to n by
// erasing from the back. A negative n is treated as 0.
func (l *List[E]) Resize(n int, fill E) {
	if n < 0 {
		n = 0
	}
	for l.size > n {
		l.PopBack()
	}
	for l.size < n {
		l.PushBack(fill)
	}
}

// RemoveIf erases every element for which pred returns true and reports how
// many were erased.
func (l *List[E]) RemoveIf(pred func(E) bool) int {
	removed := 0
	it, end := l.Begin(), l.End()
	for it != end {
		if pred(it.Value()) {
			it = l.Erase(it)
			removed++

			continue
		}
		it.Advance()
	}

	return removed
}

// Remove erases every element equal to v and reports how many were erased.
func Remove[E comparable](l *List[E], v E) int {
	return l.RemoveIf(func(x E) bool { return x == v })
}

// Values returns the elements in order as a new slice.
func (l *List[E]) Values() []E {
	out := make([]E, 0, l.size)
	for v := range l.All() {
		out = append(out, v)
	}

	return out
}

// All yields the elements front to back. The list must not be structurally
// modified during iteration except through Set on the current element.
func (l *List[E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		if l.size == 0 {
			return
		}
		for n := l.head.next; n != &l.tail; n = n.next {
			if !yield(n.element) {
				return
			}
		}
	}
}

// Backward yields the elements back to front.
func (l *List[E]) Backward() iter.Seq[E] {
	return func(yield func(E) bool) {
		if l.size == 0 {
			return
		}
		for n := l.tail.prev; n != &l.head; n = n.prev {
			if !yield(n.element) {
				return
			}
		}
	}
}
