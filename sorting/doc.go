// SPDX-License-Identifier: MIT

// Package sorting provides in-place array sorts and selection over slices.
//
// Comparison sorts, each with an Ordered form and a ...Func form taking a
// strict weak LessFunc:
//
//	InsertionSort   O(n²), stable, fastest on tiny or nearly sorted input
//	ShellSort       gaps n/2, n/4, …, 1; not stable
//	HeapSort        in-place max-heap; O(n log n) worst case, not stable
//	MergeSort       top-down, one n-element buffer; stable
//	QuickSort       median-of-three pivot, insertion sort below Cutoff
//	QuickSelect     k-th smallest into a[k-1], expected O(n)
//
// String radix sorts order byte-wise, which is Go's string ordering:
//
//	RadixSortFixed      LSD with 256 buckets; all strings one length
//	CountingRadixSort   LSD with counting passes and a ping-pong buffer
//	RadixSort           LSD over strings of length at most maxLen
//
// Input that violates a radix sort's length contract is rejected with
// ErrLengthMismatch before any element moves.
package sorting
