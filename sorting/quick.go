// SPDX-License-Identifier: MIT
//
// File: quick.go
// Role: quicksort and quickselect sharing median-of-three partitioning.

package sorting

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// QuickSort sorts a ascending. See QuickSortFunc.
func QuickSort[E constraints.Ordered](a []E) {
	quickSort(a, 0, len(a)-1, orderedLess[E])
}

// QuickSortFunc sorts a by less. Subarrays shorter than Cutoff+1 are finished
// with insertion sort. Not stable.
func QuickSortFunc[E any](a []E, less LessFunc[E]) {
	mustLess(less)
	quickSort(a, 0, len(a)-1, less)
}

// QuickSelect rearranges a so that its k-th smallest element (1-based) is at
// a[k-1], with no larger element before it and no smaller one after it.
func QuickSelect[E constraints.Ordered](a []E, k int) error {
	return QuickSelectFunc(a, k, orderedLess[E])
}

// QuickSelectFunc is QuickSelect ordered by less.
func QuickSelectFunc[E any](a []E, k int, less LessFunc[E]) error {
	mustLess(less)
	if k < 1 || k > len(a) {
		return fmt.Errorf("QuickSelect: k=%d with %d elements: %w", k, len(a), ErrBadRank)
	}
	quickSelect(a, 0, len(a)-1, k, less)

	return nil
}

// median3 orders a[left], a[center], a[right], parks the median at a[right-1]
// and returns it. a[left] and a[right] then bound the partition scans.
func median3[E any](a []E, left, right int, less LessFunc[E]) E {
	center := (left + right) / 2
	if less(a[center], a[left]) {
		a[left], a[center] = a[center], a[left]
	}
	if less(a[right], a[left]) {
		a[left], a[right] = a[right], a[left]
	}
	if less(a[right], a[center]) {
		a[center], a[right] = a[right], a[center]
	}
	a[center], a[right-1] = a[right-1], a[center]

	return a[right-1]
}

// partition splits a[left..right] around its median-of-three pivot and
// returns the pivot's final index. Requires right-left >= Cutoff.
func partition[E any](a []E, left, right int, less LessFunc[E]) int {
	pivot := median3(a, left, right, less)
	i, j := left, right-1
	for {
		for i++; less(a[i], pivot); i++ {
		}
		for j--; less(pivot, a[j]); j-- {
		}
		if i >= j {
			break
		}
		a[i], a[j] = a[j], a[i]
	}
	a[i], a[right-1] = a[right-1], a[i]

	return i
}

func quickSort[E any](a []E, left, right int, less LessFunc[E]) {
	if left+Cutoff > right {
		if left < right {
			insertionSort(a[left:right+1], less)
		}

		return
	}
	i := partition(a, left, right, less)
	quickSort(a, left, i-1, less)
	quickSort(a, i+1, right, less)
}

// quickSelect narrows to the side of the pivot holding index k-1.
func quickSelect[E any](a []E, left, right, k int, less LessFunc[E]) {
	for left+Cutoff <= right {
		i := partition(a, left, right, less)
		switch {
		case k <= i:
			right = i - 1
		case k > i+1:
			left = i + 1
		default:
			return
		}
	}
	insertionSort(a[left:right+1], less)
}
