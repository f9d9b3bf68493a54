// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package pq provides a priority queue, built on heap.Heap, that supports
// changing the priority of an element at an arbitrary position, that is,
// the increase/decrease key operation used by schedulers and shortest path
// algorithms.
package pq

import (
	"iter"

	"cloudeng.io/heapq/container"
	"cloudeng.io/heapq/container/heap"
	"golang.org/x/exp/constraints"
)

// PQ is a max priority queue: the tip is the largest element.
// The zero value is an empty queue ready for use. It is not safe for
// concurrent use.
type PQ[T constraints.Ordered] struct {
	h heap.Heap[T]
}

// New returns a new priority queue, opts are passed to heap.New.
func New[T constraints.Ordered](opts ...heap.Option[T]) *PQ[T] {
	return &PQ[T]{h: *heap.New(opts...)}
}

// FromSeq returns a priority queue containing the values yielded by seq.
func FromSeq[T constraints.Ordered](seq iter.Seq[T], opts ...heap.Option[T]) *PQ[T] {
	return &PQ[T]{h: *heap.FromSeq(seq, opts...)}
}

// FromTraversable returns a priority queue containing a copy of the
// contents of src.
func FromTraversable[T constraints.Ordered](src container.Traversable[T], opts ...heap.Option[T]) *PQ[T] {
	return &PQ[T]{h: *heap.FromTraversable(src, opts...)}
}

// FromDrainable returns a priority queue containing the contents of
// src, which is cleared.
func FromDrainable[T constraints.Ordered](src container.Drainable[T], opts ...heap.Option[T]) *PQ[T] {
	return &PQ[T]{h: *heap.FromDrainable(src, opts...)}
}

// Clone returns a deep copy of the queue, opts are passed to
// heap.Heap.Clone.
func (q *PQ[T]) Clone(opts ...heap.Option[T]) *PQ[T] {
	return &PQ[T]{h: *q.h.Clone(opts...)}
}

// Take returns a new queue that owns the receiver's contents, leaving
// the receiver empty.
func (q *PQ[T]) Take() *PQ[T] {
	return &PQ[T]{h: *q.h.Take()}
}

// Len returns the number of elements in the queue.
func (q *PQ[T]) Len() int { return q.h.Len() }

// Empty returns true if the queue contains no elements.
func (q *PQ[T]) Empty() bool { return q.h.Empty() }

// Clear removes all elements from the queue.
func (q *PQ[T]) Clear() { q.h.Clear() }

// Tip returns, but does not remove, the highest priority element.
func (q *PQ[T]) Tip() (T, error) { return q.h.Top() }

// Top is an alias for Tip.
func (q *PQ[T]) Top() (T, error) { return q.h.Top() }

// Insert adds v to the queue.
func (q *PQ[T]) Insert(v T) { q.h.Insert(v) }

// RemoveTip removes the highest priority element.
func (q *PQ[T]) RemoveTip() error { return q.h.RemoveTip() }

// TipNRemove removes and returns the highest priority element.
func (q *PQ[T]) TipNRemove() (T, error) { return q.h.TipNRemove() }

// IsHeap returns true if the queue's heap invariant holds.
func (q *PQ[T]) IsHeap() bool { return q.h.IsHeap() }

// Verify returns a non-nil error if the queue's heap invariant does
// not hold.
func (q *PQ[T]) Verify() error { return q.h.Verify() }

// At returns the element at position i of the queue's array
// representation, as used by Change.
func (q *PQ[T]) At(i int) (T, error) { return q.h.At(i) }

// Values returns a copy of the queue's array representation.
func (q *PQ[T]) Values() []T { return q.h.Values() }

// All returns an iterator over the queue's array representation.
func (q *PQ[T]) All() iter.Seq[T] { return q.h.All() }

// Change replaces the element at position index with v and restores
// the heap invariant with a single sift towards the root, if v is larger
// than the value it replaces, or towards the leaves if it is smaller.
// The queue is unchanged if index is out of range.
func (q *PQ[T]) Change(index int, v T) error {
	old, err := q.h.At(index)
	if err != nil {
		return err
	}
	if err := q.h.Set(index, v); err != nil {
		return err
	}
	switch {
	case v > old:
		return q.h.SiftUp(index)
	case v < old:
		return q.h.SiftDown(index)
	}
	return nil
}

// Index returns the position of the first element, in the queue's
// array representation, that is equal to v, or -1 if there is none.
func (q *PQ[T]) Index(v T) int {
	i := 0
	for e := range q.h.All() {
		if e == v {
			return i
		}
		i++
	}
	return -1
}

// ChangeValue is like Change but locates the element to be changed by
// value using Index. It returns an error wrapping
// container.ErrIndexOutOfRange if old is not in the queue.
func (q *PQ[T]) ChangeValue(old, v T) error {
	return q.Change(q.Index(old), v)
}
