// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: node layout, List header, comparator type and panic messages.

package list

import "golang.org/x/exp/constraints"

// Panic messages for programmer errors. Exported so tests can match them
// without magic strings.
const (
	// PanicEraseSentinel is raised by Erase when pos is Begin()-1 or End().
	PanicEraseSentinel = "list: erase of sentinel node"

	// PanicNilLess is raised by MergeFunc and SortFunc when less is nil.
	PanicNilLess = "list: nil LessFunc"
)

// maxBuckets bounds the Sort bucket array. Bucket k holds a run of 2^k
// elements, so 64 buckets cover any list whose length fits in a machine word.
const maxBuckets = 64

// LessFunc reports whether a must sort before b. It must be a strict weak
// ordering; anything else is out of contract for Merge and Sort.
type LessFunc[E any] func(a, b E) bool

// node is the storage unit of a List. Sentinels are nodes whose element is
// never read.
type node[E any] struct {
	element E
	prev    *node[E]
	next    *node[E]
}

// List is a doubly linked sequence of E.
//
// Invariants:
//   - head.next == &tail and tail.prev == &head when the list is empty.
//   - head.next … tail.prev enumerates every live element in order.
//   - size equals the number of non-sentinel nodes between head and tail.
//   - head.prev and tail.next stay nil; the chain is bounded, not circular.
type List[E any] struct {
	head node[E]
	tail node[E]
	size int
}

// orderedLess is the LessFunc used by the constraints.Ordered entry points.
func orderedLess[E constraints.Ordered](a, b E) bool { return a < b }
