// SPDX-License-Identifier: MIT
//
// File: list.go
// Role: construction, capacity, element access, insertion/removal,
//       copy/move/swap of whole lists.
// Policy:
//   - Every exported method calls lazyInit first so the zero List works.
//   - Insert/Erase are the only places that allocate or release nodes.

package list

// New returns an empty list.
func New[E any]() *List[E] {
	l := new(List[E])
	l.lazyInit()

	return l
}

// Of returns a list holding values in order.
// Complexity: O(len(values)).
func Of[E any](values ...E) *List[E] {
	l := New[E]()
	for _, v := range values {
		l.PushBack(v)
	}

	return l
}

// lazyInit wires the sentinel pair of a zero List.
func (l *List[E]) lazyInit() {
	if l.head.next == nil {
		l.head.next = &l.tail
		l.tail.prev = &l.head
		l.size = 0
	}
}

// Len returns the number of elements. O(1).
func (l *List[E]) Len() int { return l.size }

// Empty reports whether the list has no elements. O(1).
func (l *List[E]) Empty() bool { return l.size == 0 }

// Begin returns a position at the first element, or End() if empty.
func (l *List[E]) Begin() Iterator[E] {
	l.lazyInit()

	return Iterator[E]{l.head.next}
}

// End returns the one-past-the-last position (the tail sentinel).
func (l *List[E]) End() Iterator[E] {
	l.lazyInit()

	return Iterator[E]{&l.tail}
}

// CBegin is Begin without write access.
func (l *List[E]) CBegin() ConstIterator[E] { return l.Begin().Const() }

// CEnd is End without write access.
func (l *List[E]) CEnd() ConstIterator[E] { return l.End().Const() }

// Front returns the first element; ok is false when the list is empty.
func (l *List[E]) Front() (v E, ok bool) {
	if l.size == 0 {
		return v, false
	}

	return l.head.next.element, true
}

// Back returns the last element; ok is false when the list is empty.
func (l *List[E]) Back() (v E, ok bool) {
	if l.size == 0 {
		return v, false
	}

	return l.tail.prev.element, true
}

// Insert links a new node holding v immediately before pos and returns a
// position at it. pos may be End().
// Complexity: O(1).
func (l *List[E]) Insert(pos Iterator[E], v E) Iterator[E] {
	l.lazyInit()
	at := pos.n
	n := &node[E]{element: v, prev: at.prev, next: at}
	at.prev.next = n
	at.prev = n
	l.size++

	return Iterator[E]{n}
}

// Erase unlinks the node at pos and returns a position at its successor.
// Erasing a sentinel panics with PanicEraseSentinel; pos must otherwise
// belong to l.
// Complexity: O(1).
func (l *List[E]) Erase(pos Iterator[E]) Iterator[E] {
	l.lazyInit()
	n := pos.n
	if n == &l.tail || n == &l.head {
		panic(PanicEraseSentinel)
	}
	next := n.next
	n.prev.next = next
	next.prev = n.prev
	n.prev, n.next = nil, nil // drop links so stale iterators cannot walk the chain
	l.size--

	return Iterator[E]{next}
}

// PushFront inserts v before the first element.
func (l *List[E]) PushFront(v E) { l.Insert(l.Begin(), v) }

// PushBack inserts v after the last element.
func (l *List[E]) PushBack(v E) { l.Insert(l.End(), v) }

// PopFront removes and returns the first element; ok is false when empty.
func (l *List[E]) PopFront() (v E, ok bool) {
	if l.size == 0 {
		return v, false
	}
	it := l.Begin()
	v = it.Value()
	l.Erase(it)

	return v, true
}

// PopBack removes and returns the last element; ok is false when empty.
func (l *List[E]) PopBack() (v E, ok bool) {
	if l.size == 0 {
		return v, false
	}
	it := l.End().Prev()
	v = it.Value()
	l.Erase(it)

	return v, true
}

// Clear erases every element. The sentinels survive.
// Complexity: O(n).
func (l *List[E]) Clear() {
	l.lazyInit()
	for l.size > 0 {
		l.Erase(l.Begin())
	}
}

// Clone returns an independent deep copy: new nodes, new sentinels, elements
// copied by assignment.
// Complexity: O(n).
func (l *List[E]) Clone() *List[E] {
	c := New[E]()
	if l.size == 0 {
		return c
	}
	for n := l.head.next; n != &l.tail; n = n.next {
		c.PushBack(n.element)
	}

	return c
}

// Assign replaces the contents of l with a deep copy of src. The replacement
// is built in full before l is touched, so l.Assign(l) leaves l unchanged.
// Complexity: O(len(l) + len(src)).
func (l *List[E]) Assign(src *List[E]) {
	replacement := src.Clone()
	l.Swap(replacement)
	replacement.Clear()
}

// Move returns a new list that owns every node of src, leaving src empty.
// Complexity: O(1).
func Move[E any](src *List[E]) *List[E] {
	dst := New[E]()
	dst.Swap(src)

	return dst
}

// MoveFrom discards the contents of l and takes ownership of every node of
// src, leaving src empty. l.MoveFrom(l) is a no-op.
// Complexity: O(len(l)) to release the old nodes, O(1) for the transfer.
func (l *List[E]) MoveFrom(src *List[E]) {
	if l == src {
		return
	}
	l.Clear()
	l.Swap(src)
}

// Swap exchanges the element chains of l and other.
// Complexity: O(1).
func (l *List[E]) Swap(other *List[E]) {
	if l == other {
		return
	}
	l.lazyInit()
	other.lazyInit()
	lFirst, lLast, lSize := l.head.next, l.tail.prev, l.size
	oFirst, oLast, oSize := other.head.next, other.tail.prev, other.size
	l.adopt(oFirst, oLast, oSize)
	other.adopt(lFirst, lLast, lSize)
}

// adopt makes first…last (n nodes) the chain of l. n == 0 resets l to empty
// and ignores first/last.
func (l *List[E]) adopt(first, last *node[E], n int) {
	l.size = n
	if n == 0 {
		l.head.next = &l.tail
		l.tail.prev = &l.head

		return
	}
	l.head.next = first
	first.prev = &l.head
	l.tail.prev = last
	last.next = &l.tail
}
