// SPDX-License-Identifier: MIT

// Package bst implements an unbalanced binary search tree used as an ordered
// set.
//
// Insert ignores duplicates. Remove of a node with two children overwrites
// it with the minimum of its right subtree and removes that minimum instead.
// Depth, and therefore every operation, is O(h) with h between log n and n.
//
// Errors:
//
//	ErrEmptyTree - Min/Max on an empty tree.
package bst

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/exp/constraints"
)

// ErrEmptyTree is returned by Min and Max when the tree holds nothing.
var ErrEmptyTree = errors.New("bst: empty tree")

// PanicNilLess is raised by New when less is nil.
const PanicNilLess = "bst: nil less function"

// LessFunc reports whether a orders before b. Two values are equal when
// neither is less than the other.
type LessFunc[E any] func(a, b E) bool

type binaryNode[E any] struct {
	element     E
	left, right *binaryNode[E]
}

// Tree is a binary search tree set of E.
type Tree[E any] struct {
	root *binaryNode[E]
	size int
	less LessFunc[E]
}

// New returns an empty tree ordered by less.
func New[E any](less LessFunc[E]) *Tree[E] {
	if less == nil {
		panic(PanicNilLess)
	}

	return &Tree[E]{less: less}
}

// NewOrdered returns an empty tree ordered by <.
func NewOrdered[E constraints.Ordered]() *Tree[E] {
	return New(func(a, b E) bool { return a < b })
}

// Len returns the number of stored elements.
func (t *Tree[E]) Len() int { return t.size }

// Empty reports whether the tree holds nothing.
func (t *Tree[E]) Empty() bool { return t.root == nil }

// Contains reports whether x is stored.
func (t *Tree[E]) Contains(x E) bool {
	n := t.root
	for n != nil {
		switch {
		case t.less(x, n.element):
			n = n.left
		case t.less(n.element, x):
			n = n.right
		default:
			return true
		}
	}

	return false
}

// Min returns the smallest element.
func (t *Tree[E]) Min() (E, error) {
	var zero E
	if t.root == nil {
		return zero, ErrEmptyTree
	}

	return findMin(t.root).element, nil
}

// Max returns the largest element.
func (t *Tree[E]) Max() (E, error) {
	var zero E
	if t.root == nil {
		return zero, ErrEmptyTree
	}
	n := t.root
	for n.right != nil {
		n = n.right
	}

	return n.element, nil
}

// Insert adds x and reports whether it was absent.
func (t *Tree[E]) Insert(x E) bool {
	var inserted bool
	t.root, inserted = t.insert(x, t.root)
	if inserted {
		t.size++
	}

	return inserted
}

func (t *Tree[E]) insert(x E, n *binaryNode[E]) (*binaryNode[E], bool) {
	if n == nil {
		return &binaryNode[E]{element: x}, true
	}
	var inserted bool
	switch {
	case t.less(x, n.element):
		n.left, inserted = t.insert(x, n.left)
	case t.less(n.element, x):
		n.right, inserted = t.insert(x, n.right)
	}

	return n, inserted
}

// Remove deletes x and reports whether it was present.
func (t *Tree[E]) Remove(x E) bool {
	var removed bool
	t.root, removed = t.remove(x, t.root)
	if removed {
		t.size--
	}

	return removed
}

func (t *Tree[E]) remove(x E, n *binaryNode[E]) (*binaryNode[E], bool) {
	if n == nil {
		return nil, false
	}
	var removed bool
	switch {
	case t.less(x, n.element):
		n.left, removed = t.remove(x, n.left)
	case t.less(n.element, x):
		n.right, removed = t.remove(x, n.right)
	case n.left != nil && n.right != nil:
		n.element = findMin(n.right).element
		n.right, _ = t.remove(n.element, n.right)
		removed = true
	case n.left != nil:
		return n.left, true
	default:
		return n.right, true
	}

	return n, removed
}

func findMin[E any](n *binaryNode[E]) *binaryNode[E] {
	for n.left != nil {
		n = n.left
	}

	return n
}

// Clear removes every element.
func (t *Tree[E]) Clear() {
	t.root = nil
	t.size = 0
}

// Clone returns a structurally identical deep copy.
func (t *Tree[E]) Clone() *Tree[E] {
	return &Tree[E]{root: clone(t.root), size: t.size, less: t.less}
}

func clone[E any](n *binaryNode[E]) *binaryNode[E] {
	if n == nil {
		return nil
	}

	return &binaryNode[E]{element: n.element, left: clone(n.left), right: clone(n.right)}
}

// Ascend calls fn on each element in increasing order until fn returns false.
func (t *Tree[E]) Ascend(fn func(E) bool) {
	ascend(t.root, fn)
}

func ascend[E any](n *binaryNode[E], fn func(E) bool) bool {
	if n == nil {
		return true
	}

	return ascend(n.left, fn) && fn(n.element) && ascend(n.right, fn)
}

// Values returns the elements in increasing order.
func (t *Tree[E]) Values() []E {
	out := make([]E, 0, t.size)
	t.Ascend(func(x E) bool {
		out = append(out, x)

		return true
	})

	return out
}

// Height returns the number of edges on the longest root-to-leaf path, or -1
// for an empty tree.
func (t *Tree[E]) Height() int { return height(t.root) }

func height[E any](n *binaryNode[E]) int {
	if n == nil {
		return -1
	}

	return 1 + max(height(n.left), height(n.right))
}

// String renders the elements in sorted order, one per line, or
// "Empty tree" when there are none.
func (t *Tree[E]) String() string {
	if t.root == nil {
		return "Empty tree"
	}
	var b strings.Builder
	t.Ascend(func(x E) bool {
		fmt.Fprintln(&b, x)

		return true
	})

	return strings.TrimSuffix(b.String(), "\n")
}
