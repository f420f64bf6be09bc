// SPDX-License-Identifier: MIT
//
// File: sort.go
// Role: non-recursive bottom-up merge sort built on SpliceOne, MergeFunc and Swap.

package list

import "golang.org/x/exp/constraints"

// Sort orders l ascending. See SortFunc.
func Sort[E constraints.Ordered](l *List[E]) {
	l.SortFunc(orderedLess[E])
}

// SortFunc orders l by less, stably, without allocating any node.
//
// Implementation (binary-counter merge sort):
//   - buckets[k] is either empty or a sorted run of exactly 2^k elements.
//   - Repeatedly move the first element of l into carry, then propagate:
//     while buckets[k] is non-empty, merge carry into it and swap the result
//     back into carry, moving to k+1. Drop carry into the first empty bucket.
//   - When l is empty, fold every bucket into the highest one (older runs
//     receive newer ones, keeping ties in input order) and swap it into l.
//
// Only carry and the bucket headers are auxiliary; nodes are relinked, never
// copied. Empty and single-element lists return immediately.
//
// Complexity: O(n log n) comparisons, O(log n) list headers.
func (l *List[E]) SortFunc(less LessFunc[E]) {
	if less == nil {
		panic(PanicNilLess)
	}
	if l.size < 2 {
		return
	}

	var (
		carry   List[E]
		buckets [maxBuckets]List[E]
		fill    int // buckets[fill:] have never been used
		k       int
	)
	for l.size > 0 {
		carry.SpliceOne(carry.Begin(), l, l.Begin())
		for k = 0; k < fill && !buckets[k].Empty(); k++ {
			buckets[k].MergeFunc(&carry, less)
			carry.Swap(&buckets[k])
		}
		carry.Swap(&buckets[k])
		if k == fill {
			fill++
		}
	}

	for k = 1; k < fill; k++ {
		buckets[k].MergeFunc(&buckets[k-1], less)
	}
	l.Swap(&buckets[fill-1])
}
