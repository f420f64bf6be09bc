// SPDX-License-Identifier: MIT
//
// File: merge.go
// Role: stable in-place merge of two sorted lists using transfer only.

package list

import "golang.org/x/exp/constraints"

// Merge folds other into l. Both must be sorted ascending; the result is
// sorted ascending and other is left empty. See MergeFunc.
func Merge[E constraints.Ordered](l, other *List[E]) {
	l.MergeFunc(other, orderedLess[E])
}

// MergeFunc folds other into l under less. Both lists must already be sorted
// by less. Afterwards l holds len(l)+len(other) elements in order and other is
// empty; no node is allocated or released.
//
// Implementation:
//   - Walk l with cursor c1 and other with cursor c2.
//   - While *c2 < *c1, extend a run from c2 over every element still less than
//     *c1, then transfer that run before c1 in one relink.
//   - Otherwise step c1.
//   - When l is exhausted, transfer whatever remains of other to the end.
//
// Ties: an element of other moves only when strictly less, so among equal
// elements those already in l come first. The merge is stable.
//
// Edge cases: l.MergeFunc(l, less) and an empty other are no-ops.
//
// Complexity: O(len(l) + len(other)) comparisons at most.
func (l *List[E]) MergeFunc(other *List[E], less LessFunc[E]) {
	if less == nil {
		panic(PanicNilLess)
	}
	if l == other || other.size == 0 {
		return
	}
	l.lazyInit()
	moved := other.size

	c1, end1 := l.head.next, &l.tail
	c2, end2 := other.head.next, &other.tail
	var run *node[E]
	for c1 != end1 && c2 != end2 {
		if !less(c2.element, c1.element) {
			c1 = c1.next
			continue
		}
		run = c2.next
		for run != end2 && less(run.element, c1.element) {
			run = run.next
		}
		transfer(c1, c2, run)
		c2 = run
	}
	if c2 != end2 {
		transfer(end1, c2, end2)
	}

	l.size += moved
	other.size = 0
}
