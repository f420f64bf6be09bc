// SPDX-License-Identifier: MIT

package pqueue

import "golang.org/x/exp/constraints"

// binomialNode uses the left-child / next-sibling layout: a tree of rank k
// is a root whose leftChild chain holds trees of rank k-1 … 0.
type binomialNode[E any] struct {
	element     E
	leftChild   *binomialNode[E]
	nextSibling *binomialNode[E]
}

// BinomialQueue is a min-priority queue backed by a binomial forest.
// trees[k] is nil or a binomial tree of exactly 2^k elements, so the set of
// occupied ranks is the binary representation of size.
type BinomialQueue[E any] struct {
	trees []*binomialNode[E]
	size  int
	less  LessFunc[E]
}

// NewBinomialQueue returns an empty queue ordered by less.
func NewBinomialQueue[E any](less LessFunc[E]) *BinomialQueue[E] {
	if less == nil {
		panic(PanicNilLess)
	}

	return &BinomialQueue[E]{trees: make([]*binomialNode[E], 1), less: less}
}

// NewOrderedBinomialQueue returns an empty queue ordered by <.
func NewOrderedBinomialQueue[E constraints.Ordered]() *BinomialQueue[E] {
	return NewBinomialQueue(orderedLess[E])
}

// Len returns the number of queued elements.
func (q *BinomialQueue[E]) Len() int { return q.size }

// Empty reports whether the queue holds nothing.
func (q *BinomialQueue[E]) Empty() bool { return q.size == 0 }

// Clear drops every tree.
func (q *BinomialQueue[E]) Clear() {
	clear(q.trees)
	q.size = 0
}

// capacity is the largest size the current forest length can represent.
func (q *BinomialQueue[E]) capacity() int { return 1<<len(q.trees) - 1 }

// Min returns the smallest element.
func (q *BinomialQueue[E]) Min() (E, error) {
	if q.size == 0 {
		var zero E
		return zero, ErrUnderflow
	}

	return q.trees[q.findMinIndex()].element, nil
}

// Insert adds x by merging a one-element queue.
func (q *BinomialQueue[E]) Insert(x E) {
	one := BinomialQueue[E]{
		trees: []*binomialNode[E]{{element: x}},
		size:  1,
		less:  q.less,
	}
	q.Merge(&one)
}

// DeleteMin removes and returns the smallest element. The children of the
// minimum root form a queue of their own, which is merged back.
func (q *BinomialQueue[E]) DeleteMin() (E, error) {
	if q.size == 0 {
		var zero E
		return zero, ErrUnderflow
	}

	minIndex := q.findMinIndex()
	root := q.trees[minIndex]
	minItem := root.element

	// Stage 1: the children of a rank-k root are trees of rank k-1 … 0.
	deleted := BinomialQueue[E]{
		trees: make([]*binomialNode[E], max(minIndex, 1)),
		size:  1<<minIndex - 1,
		less:  q.less,
	}
	child := root.leftChild
	for j := minIndex - 1; j >= 0; j-- {
		deleted.trees[j] = child
		child = child.nextSibling
		deleted.trees[j].nextSibling = nil
	}

	// Stage 2: cut the root out and merge its children back.
	q.trees[minIndex] = nil
	q.size -= deleted.size + 1
	q.Merge(&deleted)

	return minItem, nil
}

// Merge moves every element of rhs into q, leaving rhs empty. q.Merge(q) is a
// no-op.
//
// Implementation: binary addition over ranks. At rank i the inputs are this
// tree, rhs's tree and the carry; two or three present trees combine into a
// carry of rank i+1.
func (q *BinomialQueue[E]) Merge(rhs *BinomialQueue[E]) {
	if q == rhs || rhs.size == 0 {
		return
	}

	q.size += rhs.size
	if q.size > q.capacity() {
		grown := make([]*binomialNode[E], max(len(q.trees), len(rhs.trees))+1)
		copy(grown, q.trees)
		q.trees = grown
	}

	var carry, t1, t2 *binomialNode[E]
	for i, j := 0, 1; j <= q.size; i, j = i+1, j*2 {
		t1 = q.trees[i]
		t2 = nil
		if i < len(rhs.trees) {
			t2 = rhs.trees[i]
		}

		whichCase := 0
		if t1 != nil {
			whichCase |= 1
		}
		if t2 != nil {
			whichCase |= 2
		}
		if carry != nil {
			whichCase |= 4
		}

		switch whichCase {
		case 0, 1: // nothing, or only this
		case 2: // only rhs
			q.trees[i] = t2
			rhs.trees[i] = nil
		case 3: // this and rhs
			carry = q.combineTrees(t1, t2)
			q.trees[i] = nil
			rhs.trees[i] = nil
		case 4: // only carry
			q.trees[i] = carry
			carry = nil
		case 5: // this and carry
			carry = q.combineTrees(t1, carry)
			q.trees[i] = nil
		case 6: // rhs and carry
			carry = q.combineTrees(t2, carry)
			rhs.trees[i] = nil
		case 7: // all three
			q.trees[i] = carry
			carry = q.combineTrees(t1, t2)
			rhs.trees[i] = nil
		}
	}

	clear(rhs.trees)
	rhs.size = 0
}

// combineTrees links two trees of equal rank; the larger root becomes the
// first child of the smaller one.
func (q *BinomialQueue[E]) combineTrees(t1, t2 *binomialNode[E]) *binomialNode[E] {
	if q.less(t2.element, t1.element) {
		t1, t2 = t2, t1
	}
	t2.nextSibling = t1.leftChild
	t1.leftChild = t2

	return t1
}

// findMinIndex returns the rank of the tree whose root is smallest. The
// queue must not be empty.
func (q *BinomialQueue[E]) findMinIndex() int {
	i := 0
	for q.trees[i] == nil {
		i++
	}
	minIndex := i
	for ; i < len(q.trees); i++ {
		if q.trees[i] != nil && q.less(q.trees[i].element, q.trees[minIndex].element) {
			minIndex = i
		}
	}

	return minIndex
}

// Clone returns a deep copy of q.
func (q *BinomialQueue[E]) Clone() *BinomialQueue[E] {
	c := &BinomialQueue[E]{trees: make([]*binomialNode[E], len(q.trees)), size: q.size, less: q.less}
	for i, t := range q.trees {
		c.trees[i] = cloneTree(t)
	}

	return c
}

func cloneTree[E any](n *binomialNode[E]) *binomialNode[E] {
	if n == nil {
		return nil
	}

	return &binomialNode[E]{
		element:     n.element,
		leftChild:   cloneTree(n.leftChild),
		nextSibling: cloneTree(n.nextSibling),
	}
}
