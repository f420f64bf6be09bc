// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: sentinel errors, panic messages, LessFunc and shared helpers.

package sorting

import (
	"errors"

	"golang.org/x/exp/constraints"
)

// Cutoff is the subarray length below which QuickSort and QuickSelect
// fall back to insertion sort.
const Cutoff = 10

// radix is the number of byte buckets used by the string sorts.
const radix = 256

var (
	// ErrBadRank is returned by QuickSelect for k outside [1, len(a)].
	ErrBadRank = errors.New("sorting: rank out of range")

	// ErrLengthMismatch is returned by the radix sorts for a string whose
	// length breaks the sort's contract.
	ErrLengthMismatch = errors.New("sorting: string length mismatch")
)

// PanicNilLess is raised by every ...Func sort given a nil LessFunc.
const PanicNilLess = "sorting: nil less function"

// LessFunc reports whether a orders strictly before b.
type LessFunc[E any] func(a, b E) bool

func orderedLess[E constraints.Ordered](a, b E) bool { return a < b }

func mustLess[E any](less LessFunc[E]) {
	if less == nil {
		panic(PanicNilLess)
	}
}

// IsSorted reports whether a is in ascending order.
func IsSorted[E constraints.Ordered](a []E) bool {
	return IsSortedFunc(a, orderedLess[E])
}

// IsSortedFunc reports whether no element of a orders before its predecessor.
func IsSortedFunc[E any](a []E, less LessFunc[E]) bool {
	mustLess(less)
	for i := 1; i < len(a); i++ {
		if less(a[i], a[i-1]) {
			return false
		}
	}

	return true
}
