// SPDX-License-Identifier: MIT

// Package vector implements a flat growable array with O(1) indexed access
// and amortised O(1) append.
//
// Capacity policy: a new Vector reserves SpareCapacity slots beyond its
// initial size; Resize past capacity reserves twice the requested size;
// PushBack on a full vector doubles capacity (plus one).
//
// Errors:
//
//	ErrIndexOutOfRange - At/Set with index outside [0, Len()).
//	ErrEmpty           - Front/Back/PopBack on an empty vector.
//	ErrNegativeSize    - New/Resize/Reserve with a negative argument.
package vector

import (
	"errors"
	"fmt"
)

// SpareCapacity is the headroom allocated on construction.
const SpareCapacity = 16

var (
	// ErrIndexOutOfRange indicates an index outside [0, Len()).
	ErrIndexOutOfRange = errors.New("vector: index out of range")

	// ErrEmpty indicates an element access on an empty vector.
	ErrEmpty = errors.New("vector: empty vector")

	// ErrNegativeSize indicates a negative size or capacity argument.
	ErrNegativeSize = errors.New("vector: negative size")
)

// Vector is a growable array of E. The zero value is an empty vector.
type Vector[E any] struct {
	objects []E // len(objects) is the capacity; [0, size) is live
	size    int
}

// New returns a vector of initSize zero elements.
func New[E any](initSize int) (*Vector[E], error) {
	if initSize < 0 {
		return nil, fmt.Errorf("New(%d): %w", initSize, ErrNegativeSize)
	}

	return &Vector[E]{objects: make([]E, initSize+SpareCapacity), size: initSize}, nil
}

// Of returns a vector holding a copy of values.
func Of[E any](values ...E) *Vector[E] {
	v := &Vector[E]{objects: make([]E, len(values)+SpareCapacity), size: len(values)}
	copy(v.objects, values)

	return v
}

// Len returns the number of elements.
func (v *Vector[E]) Len() int { return v.size }

// Cap returns the number of slots allocated.
func (v *Vector[E]) Cap() int { return len(v.objects) }

// Empty reports whether Len() == 0.
func (v *Vector[E]) Empty() bool { return v.size == 0 }

// At returns the element at index i.
func (v *Vector[E]) At(i int) (E, error) {
	var zero E
	if i < 0 || i >= v.size {
		return zero, fmt.Errorf("At(%d) with size %d: %w", i, v.size, ErrIndexOutOfRange)
	}

	return v.objects[i], nil
}

// Set overwrites the element at index i.
func (v *Vector[E]) Set(i int, x E) error {
	if i < 0 || i >= v.size {
		return fmt.Errorf("Set(%d) with size %d: %w", i, v.size, ErrIndexOutOfRange)
	}
	v.objects[i] = x

	return nil
}

// Front returns the first element.
func (v *Vector[E]) Front() (E, error) {
	var zero E
	if v.size == 0 {
		return zero, ErrEmpty
	}

	return v.objects[0], nil
}

// Back returns the last element.
func (v *Vector[E]) Back() (E, error) {
	var zero E
	if v.size == 0 {
		return zero, ErrEmpty
	}

	return v.objects[v.size-1], nil
}

// PushBack appends x, doubling capacity when full.
func (v *Vector[E]) PushBack(x E) {
	if v.size == len(v.objects) {
		v.reserve(2*len(v.objects) + 1)
	}
	v.objects[v.size] = x
	v.size++
}

// PopBack removes and returns the last element.
func (v *Vector[E]) PopBack() (E, error) {
	var zero E
	if v.size == 0 {
		return zero, ErrEmpty
	}
	v.size--
	x := v.objects[v.size]
	v.objects[v.size] = zero

	return x, nil
}

// Resize sets Len() to n. Growing past capacity reserves 2n slots; new
// elements are zero values. Shrinking clears the dropped slots.
func (v *Vector[E]) Resize(n int) error {
	if n < 0 {
		return fmt.Errorf("Resize(%d): %w", n, ErrNegativeSize)
	}
	if n > len(v.objects) {
		v.reserve(2 * n)
	}
	var zero E
	for i := n; i < v.size; i++ {
		v.objects[i] = zero
	}
	v.size = n

	return nil
}

// Reserve ensures Cap() >= n. It never shrinks.
func (v *Vector[E]) Reserve(n int) error {
	if n < 0 {
		return fmt.Errorf("Reserve(%d): %w", n, ErrNegativeSize)
	}
	v.reserve(n)

	return nil
}

func (v *Vector[E]) reserve(n int) {
	if n <= len(v.objects) {
		return
	}
	grown := make([]E, n)
	copy(grown, v.objects[:v.size])
	v.objects = grown
}

// Clone returns a deep copy with the same capacity.
func (v *Vector[E]) Clone() *Vector[E] {
	c := &Vector[E]{objects: make([]E, len(v.objects)), size: v.size}
	copy(c.objects, v.objects[:v.size])

	return c
}

// Values returns the live elements as a new slice.
func (v *Vector[E]) Values() []E {
	out := make([]E, v.size)
	copy(out, v.objects[:v.size])

	return out
}
