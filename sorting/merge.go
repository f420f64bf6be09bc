// SPDX-License-Identifier: MIT
//
// File: merge.go
// Role: top-down merge sort with a single scratch buffer.

package sorting

import "golang.org/x/exp/constraints"

// MergeSort sorts a ascending. See MergeSortFunc.
func MergeSort[E constraints.Ordered](a []E) {
	MergeSortFunc(a, orderedLess[E])
}

// MergeSortFunc sorts a by less, stably, in O(n log n) time using one
// len(a) scratch slice shared by every level of the recursion.
func MergeSortFunc[E any](a []E, less LessFunc[E]) {
	mustLess(less)
	if len(a) < 2 {
		return
	}
	tmp := make([]E, len(a))
	mergeSort(a, tmp, 0, len(a)-1, less)
}

func mergeSort[E any](a, tmp []E, left, right int, less LessFunc[E]) {
	if left >= right {
		return
	}
	center := (left + right) / 2
	mergeSort(a, tmp, left, center, less)
	mergeSort(a, tmp, center+1, right, less)
	merge(a, tmp, left, center+1, right, less)
}

// merge combines the sorted runs a[leftPos:rightPos] and a[rightPos:rightEnd+1].
// Ties take the left element first.
func merge[E any](a, tmp []E, leftPos, rightPos, rightEnd int, less LessFunc[E]) {
	leftEnd := rightPos - 1
	start := leftPos
	k := leftPos
	for leftPos <= leftEnd && rightPos <= rightEnd {
		if less(a[rightPos], a[leftPos]) {
			tmp[k] = a[rightPos]
			rightPos++
		} else {
			tmp[k] = a[leftPos]
			leftPos++
		}
		k++
	}
	k += copy(tmp[k:], a[leftPos:leftEnd+1])
	copy(tmp[k:], a[rightPos:rightEnd+1])
	copy(a[start:rightEnd+1], tmp[start:rightEnd+1])
}
