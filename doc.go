// Package dsakit is a set of generic, single-goroutine data structures and
// algorithms built around a doubly linked list with node-relinking splice,
// merge and sort.
//
// What is inside?
//
//	list/      - doubly linked List[E] with sentinels, bidirectional
//	             iterators, O(1) Splice, stable Merge and bottom-up Sort
//	vector/    - growable Vector[E] with explicit size/capacity and
//	             bounds-checked access
//	queue/     - singly linked FIFO Queue[E]
//	bst/       - unbalanced binary search Tree[E] with in-order traversal
//	pqueue/    - min-priority queues: array BinaryHeap[E] and mergeable
//	             BinomialQueue[E]
//	hashtable/ - ChainedSet[K] over list buckets and ProbingSet[K] with
//	             quadratic probing, plus hashing and prime helpers
//	sorting/   - insertion, Shell, heap, merge and quick sorts, quickselect
//	             and LSD string radix sorts
//
// Conventions shared by every package:
//
//   - Generic over the element type. Ordered element types get a plain
//     constructor or function; any other type takes a strict weak LessFunc
//     (the ...Func variants).
//   - Recoverable conditions (empty container, bad index or rank) are
//     sentinel errors wrapped with context; test them with errors.Is.
//   - Programmer errors (nil comparator, erasing a sentinel) panic with an
//     exported message constant.
//   - No type is safe for concurrent use; callers synchronize.
//
// Quick example:
//
//	l := list.Of(5, 1, 4)
//	list.Sort(l)          // 1 4 5
//	m := list.Of(2, 3)
//	list.Merge(l, m)      // l = 1 2 3 4 5, m empty
//
//	go get github.com/katalvlaran/dsakit
package dsakit
