// SPDX-License-Identifier: MIT
//
// File: elementary.go
// Role: insertion, Shell and heap sorts.

package sorting

import "golang.org/x/exp/constraints"

// InsertionSort sorts a ascending. See InsertionSortFunc.
func InsertionSort[E constraints.Ordered](a []E) {
	insertionSort(a, orderedLess[E])
}

// InsertionSortFunc sorts a by less, stably, in O(n²) worst-case time.
func InsertionSortFunc[E any](a []E, less LessFunc[E]) {
	mustLess(less)
	insertionSort(a, less)
}

func insertionSort[E any](a []E, less LessFunc[E]) {
	for p := 1; p < len(a); p++ {
		tmp := a[p]
		j := p
		for ; j > 0 && less(tmp, a[j-1]); j-- {
			a[j] = a[j-1]
		}
		a[j] = tmp
	}
}

// ShellSort sorts a ascending. See ShellSortFunc.
func ShellSort[E constraints.Ordered](a []E) {
	shellSort(a, orderedLess[E])
}

// ShellSortFunc sorts a by less with Shell's increments n/2, n/4, …, 1.
func ShellSortFunc[E any](a []E, less LessFunc[E]) {
	mustLess(less)
	shellSort(a, less)
}

func shellSort[E any](a []E, less LessFunc[E]) {
	for gap := len(a) / 2; gap > 0; gap /= 2 {
		for i := gap; i < len(a); i++ {
			tmp := a[i]
			j := i
			for ; j >= gap && less(tmp, a[j-gap]); j -= gap {
				a[j] = a[j-gap]
			}
			a[j] = tmp
		}
	}
}

// HeapSort sorts a ascending. See HeapSortFunc.
func HeapSort[E constraints.Ordered](a []E) {
	heapSort(a, orderedLess[E])
}

// HeapSortFunc sorts a by less: build a max-heap in place, then repeatedly
// swap the maximum behind the shrinking heap.
func HeapSortFunc[E any](a []E, less LessFunc[E]) {
	mustLess(less)
	heapSort(a, less)
}

func heapSort[E any](a []E, less LessFunc[E]) {
	n := len(a)
	for i := n/2 - 1; i >= 0; i-- {
		percDown(a, i, n, less)
	}
	for j := n - 1; j > 0; j-- {
		a[0], a[j] = a[j], a[0]
		percDown(a, 0, j, less)
	}
}

// percDown sifts a[i] down within the max-heap a[:n] (children of i are
// 2i+1 and 2i+2).
func percDown[E any](a []E, i, n int, less LessFunc[E]) {
	tmp := a[i]
	for child := 2*i + 1; child < n; child = 2*i + 1 {
		if child+1 < n && less(a[child], a[child+1]) {
			child++
		}
		if !less(tmp, a[child]) {
			break
		}
		a[i] = a[child]
		i = child
	}
	a[i] = tmp
}
