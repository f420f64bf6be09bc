// SPDX-License-Identifier: MIT

// Package queue implements a singly linked FIFO queue.
//
// Push appends at the tail, Pop drops the head; both are O(1). Front and Back
// read the two ends. A Queue owns its nodes and must not be copied by value;
// the zero Queue is empty and ready to use.
package queue

import (
	"errors"
	"iter"
)

// ErrEmptyQueue is returned by Front, Back and Pop on an empty queue.
var ErrEmptyQueue = errors.New("queue: empty queue")

type node[E any] struct {
	element E
	next    *node[E]
}

// Queue is a FIFO of E.
type Queue[E any] struct {
	head *node[E]
	tail *node[E]
	size int
}

// New returns an empty queue.
func New[E any]() *Queue[E] { return &Queue[E]{} }

// Len returns the number of queued elements.
func (q *Queue[E]) Len() int { return q.size }

// Empty reports whether the queue holds nothing.
func (q *Queue[E]) Empty() bool { return q.size == 0 }

// Push appends x at the tail.
func (q *Queue[E]) Push(x E) {
	n := &node[E]{element: x}
	if q.size == 0 {
		q.head, q.tail = n, n
	} else {
		q.tail.next = n
		q.tail = n
	}
	q.size++
}

// Pop drops the head element and returns it.
func (q *Queue[E]) Pop() (E, error) {
	var zero E
	if q.size == 0 {
		return zero, ErrEmptyQueue
	}
	n := q.head
	q.head = n.next
	n.next = nil
	q.size--
	if q.size == 0 {
		q.tail = nil
	}

	return n.element, nil
}

// Front returns the head element.
func (q *Queue[E]) Front() (E, error) {
	var zero E
	if q.size == 0 {
		return zero, ErrEmptyQueue
	}

	return q.head.element, nil
}

// Back returns the tail element.
func (q *Queue[E]) Back() (E, error) {
	var zero E
	if q.size == 0 {
		return zero, ErrEmptyQueue
	}

	return q.tail.element, nil
}

// Clear drops every element.
func (q *Queue[E]) Clear() {
	for n := q.head; n != nil; {
		next := n.next
		n.next = nil
		n = next
	}
	q.head, q.tail, q.size = nil, nil, 0
}

// All yields the elements head to tail without dequeuing them.
func (q *Queue[E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		for n := q.head; n != nil; n = n.next {
			if !yield(n.element) {
				return
			}
		}
	}
}
