// SPDX-License-Identifier: MIT

package pqueue

import "golang.org/x/exp/constraints"

// BinaryHeap is a min-heap stored in array[1:size+1]; the children of slot i
// are 2i and 2i+1. Slot 0 is unused.
type BinaryHeap[E any] struct {
	array []E
	size  int
	less  LessFunc[E]
}

// NewBinaryHeap returns an empty heap ordered by less.
func NewBinaryHeap[E any](less LessFunc[E], opts ...Option) *BinaryHeap[E] {
	if less == nil {
		panic(PanicNilLess)
	}
	o := options{capacity: DefaultCapacity}
	for _, opt := range opts {
		opt(&o)
	}

	return &BinaryHeap[E]{array: make([]E, o.capacity+1), less: less}
}

// NewOrderedBinaryHeap returns an empty heap ordered by <.
func NewOrderedBinaryHeap[E constraints.Ordered](opts ...Option) *BinaryHeap[E] {
	return NewBinaryHeap(orderedLess[E], opts...)
}

// BinaryHeapFrom copies items into a new heap and establishes heap order in
// linear time.
func BinaryHeapFrom[E any](less LessFunc[E], items []E) *BinaryHeap[E] {
	h := NewBinaryHeap(less, WithCapacity(len(items)+10))
	copy(h.array[1:], items)
	h.size = len(items)
	h.buildHeap()

	return h
}

// Len returns the number of queued elements.
func (h *BinaryHeap[E]) Len() int { return h.size }

// Empty reports whether the heap holds nothing.
func (h *BinaryHeap[E]) Empty() bool { return h.size == 0 }

// Clear drops every element but keeps the array.
func (h *BinaryHeap[E]) Clear() {
	clear(h.array)
	h.size = 0
}

// Min returns the smallest element.
func (h *BinaryHeap[E]) Min() (E, error) {
	if h.size == 0 {
		var zero E
		return zero, ErrUnderflow
	}

	return h.array[1], nil
}

// Insert adds x, percolating it up from a new hole at the end. The array
// doubles when full.
func (h *BinaryHeap[E]) Insert(x E) {
	if h.size == len(h.array)-1 {
		grown := make([]E, 2*len(h.array))
		copy(grown, h.array)
		h.array = grown
	}
	h.size++
	hole := h.size
	for ; hole > 1 && h.less(x, h.array[hole/2]); hole /= 2 {
		h.array[hole] = h.array[hole/2]
	}
	h.array[hole] = x
}

// DeleteMin removes and returns the smallest element.
func (h *BinaryHeap[E]) DeleteMin() (E, error) {
	var zero E
	if h.size == 0 {
		return zero, ErrUnderflow
	}
	minItem := h.array[1]
	h.array[1] = h.array[h.size]
	h.array[h.size] = zero
	h.size--
	if h.size > 0 {
		h.percolateDown(1)
	}

	return minItem, nil
}

func (h *BinaryHeap[E]) buildHeap() {
	for i := h.size / 2; i > 0; i-- {
		h.percolateDown(i)
	}
}

// percolateDown sinks the element at hole until both children are not less.
func (h *BinaryHeap[E]) percolateDown(hole int) {
	tmp := h.array[hole]
	var child int
	for ; hole*2 <= h.size; hole = child {
		child = hole * 2
		if child != h.size && h.less(h.array[child+1], h.array[child]) {
			child++
		}
		if !h.less(h.array[child], tmp) {
			break
		}
		h.array[hole] = h.array[child]
	}
	h.array[hole] = tmp
}
