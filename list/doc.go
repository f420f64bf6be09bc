// Package list provides a generic doubly linked sequence container with
// constant-time insertion and removal at any position, bidirectional
// iteration, and three node-relinking operations built on a single
// transfer primitive:
//
//   - Splice: move a contiguous run of nodes before a position, possibly
//     across two lists, in O(1) (plus O(k) to count a k-node range).
//   - Merge: fold one sorted list into another, stable, allocation-free.
//   - Sort: bottom-up carry/bucket merge sort, stable, O(n log n) time,
//     no node allocation, O(log n) auxiliary list headers.
//
// Layering (each layer uses only the one below):
//
//	List → transfer → Merge → Sort
//
// Structure:
//
//	head ⇄ n₁ ⇄ n₂ ⇄ … ⇄ nₖ ⇄ tail
//
// head and tail are sentinel nodes embedded in the List value. They hold no
// element and are always present, so Begin() == End() on an empty list and no
// operation needs a nil check on its neighbours. A List must therefore not be
// copied by value once used; use Clone, Assign, Move or Swap instead. The zero
// List is an empty list ready to use.
//
// Iterators:
//
//	Iterator[E]      - read-write position (Value, Ref, Set)
//	ConstIterator[E] - read-only position (Value)
//
// Both are plain node references with identical traversal (Next/Prev,
// Advance/Retreat) and compare by node identity, across types, via Equal.
// Stepping one past End() or one before Begin() is legal; reading through
// such an iterator, through a sentinel, or through an erased node is
// undefined and is not checked.
//
// Ordering:
//
//	Merge / Sort            - element types satisfying constraints.Ordered
//	MergeFunc / SortFunc    - any element type with a strict weak LessFunc
//
// Ties keep their relative order: during a merge an element already in the
// receiving list precedes an equal element coming from the other list.
//
// Errors:
//
// No operation returns an error. Precondition violations are undefined, with
// one cheap guard: Erase on a sentinel panics with PanicEraseSentinel. A nil
// LessFunc panics with PanicNilLess.
//
// Concurrency: none. A List and every list touched by Splice/Merge/Sort must be
// exclusively owned by the caller for the duration of the call.
package list
