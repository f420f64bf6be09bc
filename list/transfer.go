// SPDX-License-Identifier: MIT
//
// File: transfer.go
// Role: the transfer primitive and the public Splice family on top of it.
// Policy:
//   - transfer is pure pointer surgery: it never allocates, never touches an
//     element and never updates a size counter.
//   - Splice* own the size bookkeeping of both participating lists.

package list

// transfer relinks the run [first, last) so that it sits immediately before
// pos. first and last must delimit a forward range of one chain; pos may be in
// another chain but must not lie strictly inside the run.
//
// pos == first and pos == last both mean "move the run to where it already
// is" and return without relinking, since relinking would close the run into
// a cycle.
//
// Complexity: O(1), four link pairs rewritten.
func transfer[E any](pos, first, last *node[E]) {
	if first == last || pos == first || pos == last {
		return
	}
	lastIn := last.prev

	// Stage 1: close the gap left in the source chain.
	first.prev.next = last
	last.prev = first.prev

	// Stage 2: hang the run between pos.prev and pos.
	before := pos.prev
	before.next = first
	first.prev = before
	lastIn.next = pos
	pos.prev = lastIn
}

// distance counts the nodes in [first, last).
func distance[E any](first, last *node[E]) int {
	n := 0
	for ; first != last; first = first.next {
		n++
	}

	return n
}

// Splice moves every element of other before pos, leaving other empty.
// l.Splice(pos, l) is a no-op.
// Complexity: O(1).
func (l *List[E]) Splice(pos Position[E], other *List[E]) {
	if l == other || other.size == 0 {
		return
	}
	l.lazyInit()
	n := other.size
	transfer(pos.at(), other.head.next, &other.tail)
	other.size = 0
	l.size += n
}

// SpliceOne moves the single element at it, owned by other, before pos.
// other may be l.
// Complexity: O(1).
func (l *List[E]) SpliceOne(pos Position[E], other *List[E], it Position[E]) {
	first := it.at()
	last := first.next
	p := pos.at()
	if p == first || p == last {
		return
	}
	l.lazyInit()
	transfer(p, first, last)
	if l != other {
		other.size--
		l.size++
	}
}

// SpliceRange moves [first, last), owned by other, before pos. other may be
// l, in which case pos must not lie inside the range.
// Complexity: O(k) to count the k moved nodes when other != l, O(1) otherwise.
func (l *List[E]) SpliceRange(pos Position[E], other *List[E], first, last Position[E]) {
	f, e := first.at(), last.at()
	if f == e {
		return
	}
	l.lazyInit()
	if l != other {
		k := distance(f, e)
		other.size -= k
		l.size += k
	}
	transfer(pos.at(), f, e)
}
