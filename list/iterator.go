// SPDX-License-Identifier: MIT
//
// File: iterator.go
// Role: Iterator / ConstIterator position types.
// Policy:
//   - Both types are a single node pointer; traversal is shared through succ/pred.
//   - No bounds checks: stepping past a sentinel is legal, reading there is not.

package list

// Position is implemented by Iterator and ConstIterator. It lets Splice and
// Equal accept either capability without a conversion at the call site.
type Position[E any] interface {
	at() *node[E]
}

// Iterator is a read-write position in a List.
type Iterator[E any] struct {
	n *node[E]
}

// ConstIterator is a read-only position in a List.
type ConstIterator[E any] struct {
	n *node[E]
}

func succ[E any](n *node[E]) *node[E] { return n.next }
func pred[E any](n *node[E]) *node[E] { return n.prev }

func (it Iterator[E]) at() *node[E]      { return it.n }
func (it ConstIterator[E]) at() *node[E] { return it.n }

// Next returns the position after it.
func (it Iterator[E]) Next() Iterator[E] { return Iterator[E]{succ(it.n)} }

// Prev returns the position before it.
func (it Iterator[E]) Prev() Iterator[E] { return Iterator[E]{pred(it.n)} }

// Advance moves it to the next position in place and returns it, so that
// `it.Advance().Value()` reads the successor (prefix ++). For postfix
// semantics keep a copy first: `old := it; it.Advance()`.
func (it *Iterator[E]) Advance() *Iterator[E] {
	it.n = succ(it.n)
	return it
}

// Retreat moves it to the previous position in place and returns it.
func (it *Iterator[E]) Retreat() *Iterator[E] {
	it.n = pred(it.n)
	return it
}

// Value returns the element at it.
func (it Iterator[E]) Value() E { return it.n.element }

// Ref returns a pointer to the element at it, valid until the node is erased.
func (it Iterator[E]) Ref() *E { return &it.n.element }

// Set overwrites the element at it.
func (it Iterator[E]) Set(v E) { it.n.element = v }

// Const drops write access.
func (it Iterator[E]) Const() ConstIterator[E] { return ConstIterator[E]{it.n} }

// Equal reports whether it and p reference the same node.
func (it Iterator[E]) Equal(p Position[E]) bool { return it.n == p.at() }

// Next returns the position after it.
func (it ConstIterator[E]) Next() ConstIterator[E] { return ConstIterator[E]{succ(it.n)} }

// Prev returns the position before it.
func (it ConstIterator[E]) Prev() ConstIterator[E] { return ConstIterator[E]{pred(it.n)} }

// Advance moves it to the next position in place and returns it.
func (it *ConstIterator[E]) Advance() *ConstIterator[E] {
	it.n = succ(it.n)
	return it
}

// Retreat moves it to the previous position in place and returns it.
func (it *ConstIterator[E]) Retreat() *ConstIterator[E] {
	it.n = pred(it.n)
	return it
}

// Value returns the element at it.
func (it ConstIterator[E]) Value() E { return it.n.element }

// Equal reports whether it and p reference the same node.
func (it ConstIterator[E]) Equal(p Position[E]) bool { return it.n == p.at() }
