// SPDX-License-Identifier: MIT

// Package pqueue implements two min-priority queues over a caller-supplied
// ordering:
//
//   - BinaryHeap: implicit 1-based array heap. Insert and DeleteMin are
//     O(log n); building from a slice is O(n).
//   - BinomialQueue: forest of binomial trees indexed by rank. Insert and
//     DeleteMin are O(log n) worst case; Merge of two queues is O(log n).
//
// Both queues accept duplicates and pop the minimum under less. Neither is
// safe for concurrent use.
//
// Errors:
//
//	ErrUnderflow - Min/DeleteMin on an empty queue.
package pqueue

import (
	"errors"

	"golang.org/x/exp/constraints"
)

// ErrUnderflow is returned when reading from an empty queue.
var ErrUnderflow = errors.New("pqueue: underflow")

// PanicNilLess is raised by constructors given a nil LessFunc.
const PanicNilLess = "pqueue: nil less function"

// DefaultCapacity is the initial BinaryHeap array size.
const DefaultCapacity = 100

// LessFunc reports whether a has higher priority (is smaller) than b.
type LessFunc[E any] func(a, b E) bool

// Option configures a BinaryHeap at construction.
type Option func(*options)

type options struct {
	capacity int
}

// WithCapacity sets the initial number of heap slots. Values below 1 keep
// DefaultCapacity.
func WithCapacity(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.capacity = n
		}
	}
}

func orderedLess[E constraints.Ordered](a, b E) bool { return a < b }
