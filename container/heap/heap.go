// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package heap provides an array backed binary max-heap. The heap's
// elements are stored in a vector.Vector that is interpreted as a complete
// binary tree, with the children of the i'th element stored at 2i+1 and
// 2i+2. The largest element is always at index 0.
//
// A Heap is not safe for concurrent use.
package heap

import (
	"fmt"
	"iter"

	"cloudeng.io/errors"
	"cloudeng.io/heapq/container"
	"cloudeng.io/heapq/container/vector"
	"golang.org/x/exp/constraints"
)

// ErrNotHeap is returned by Verify when the heap invariant does not hold.
var ErrNotHeap = errors.New("heap invariant violated")

// Heap is a binary max-heap. Floating point NaNs do not have a total
// order and must not be stored in a Heap. The zero value is an empty heap
// ready for use.
type Heap[T constraints.Ordered] struct {
	store    vector.Vector[T]
	callback func(iv, jv T, i, j int)
}

// New returns a new heap. If WithData is specified the heap is built
// from a copy of that data.
func New[T constraints.Ordered](opts ...Option[T]) *Heap[T] {
	var o options[T]
	for _, fn := range opts {
		fn(&o)
	}
	h := &Heap[T]{callback: o.callback}
	if o.data != nil {
		h.store = *vector.FromSlice(o.data)
		h.Heapify()
	}
	h.store.Reserve(o.capacity)
	return h
}

func fromVector[T constraints.Ordered](v *vector.Vector[T], opts []Option[T]) *Heap[T] {
	var o options[T]
	for _, fn := range opts {
		fn(&o)
	}
	h := &Heap[T]{store: *v, callback: o.callback}
	h.store.Reserve(o.capacity)
	h.Heapify()
	return h
}

// FromSeq returns a heap containing the values yielded by seq.
func FromSeq[T constraints.Ordered](seq iter.Seq[T], opts ...Option[T]) *Heap[T] {
	return fromVector(vector.FromSeq(seq), opts)
}

// FromTraversable returns a heap containing a copy of the contents of src.
func FromTraversable[T constraints.Ordered](src container.Traversable[T], opts ...Option[T]) *Heap[T] {
	v := &vector.Vector[T]{}
	v.Reserve(src.Len())
	for e := range src.All() {
		v.Append(e)
	}
	return fromVector(v, opts)
}

// FromDrainable returns a heap containing the contents of src, which is
// cleared.
func FromDrainable[T constraints.Ordered](src container.Drainable[T], opts ...Option[T]) *Heap[T] {
	h := FromTraversable(src, opts...)
	src.Clear()
	return h
}

// Clone returns a deep copy of the heap. The copy has no callback unless
// one is supplied using WithCallback. WithData is ignored.
func (h *Heap[T]) Clone(opts ...Option[T]) *Heap[T] {
	var o options[T]
	for _, fn := range opts {
		fn(&o)
	}
	c := &Heap[T]{store: *h.store.Clone(), callback: o.callback}
	c.store.Reserve(o.capacity)
	return c
}

// Take returns a new heap that owns the receiver's contents and
// callback, leaving the receiver empty.
func (h *Heap[T]) Take() *Heap[T] {
	return &Heap[T]{store: *h.store.Take(), callback: h.callback}
}

// Len returns the number of elements in the heap.
func (h *Heap[T]) Len() int {
	return h.store.Len()
}

// Empty returns true if the heap contains no elements.
func (h *Heap[T]) Empty() bool {
	return h.store.Empty()
}

// Clear removes all elements from the heap.
func (h *Heap[T]) Clear() {
	h.store.Clear()
}

// IsHeap returns true if the heap invariant holds for every element.
// An empty heap is a heap.
func (h *Heap[T]) IsHeap() bool {
	return h.violation() < 0
}

// Verify is like IsHeap but returns an error, wrapping ErrNotHeap, that
// describes the first parent and child found out of order.
func (h *Heap[T]) Verify() error {
	p := h.violation()
	if p < 0 {
		return nil
	}
	d := h.store.Data()
	c := LeftChild(p)
	if r := RightChild(p); r < len(d) && d[p] < d[r] {
		c = r
	}
	return fmt.Errorf("%w: [%d] %v < [%d] %v", ErrNotHeap, p, d[p], c, d[c])
}

// violation returns the first parent that is smaller than one of its
// children, or -1.
func (h *Heap[T]) violation() int {
	d := h.store.Data()
	n := len(d)
	for i := 0; i < n/2; i++ {
		if l := LeftChild(i); l < n && d[i] < d[l] {
			return i
		}
		if r := RightChild(i); r < n && d[i] < d[r] {
			return i
		}
	}
	return -1
}

// Heapify restores the heap invariant for the entire heap in O(n) time.
func (h *Heap[T]) Heapify() {
	n := h.store.Len()
	for i := n/2 - 1; i >= 0; i-- {
		h.siftDown(i, n)
	}
}

// Insert adds v to the heap.
func (h *Heap[T]) Insert(v T) {
	h.store.Append(v)
	h.siftUp(h.store.Len() - 1)
}

// Top returns, but does not remove, the largest element.
func (h *Heap[T]) Top() (T, error) {
	v, err := h.store.Front()
	if err != nil {
		return v, fmt.Errorf("top: %w", err)
	}
	return v, nil
}

// Front is an alias for Top.
func (h *Heap[T]) Front() (T, error) {
	return h.Top()
}

// Back returns the last element of the heap's array representation,
// which is always a leaf.
func (h *Heap[T]) Back() (T, error) {
	v, err := h.store.Back()
	if err != nil {
		return v, fmt.Errorf("back: %w", err)
	}
	return v, nil
}

// Exists returns true if v is stored in the heap. It is a linear scan
// that skips subtrees whose root is smaller than v.
func (h *Heap[T]) Exists(v T) bool {
	return h.exists(0, v)
}

func (h *Heap[T]) exists(i int, v T) bool {
	d := h.store.Data()
	if i >= len(d) || d[i] < v {
		return false
	}
	if d[i] == v {
		return true
	}
	return h.exists(LeftChild(i), v) || h.exists(RightChild(i), v)
}

// RemoveTip removes the largest element.
func (h *Heap[T]) RemoveTip() error {
	_, err := h.TipNRemove()
	return err
}

// TipNRemove removes and returns the largest element.
func (h *Heap[T]) TipNRemove() (T, error) {
	n := h.store.Len()
	if n == 0 {
		var zero T
		return zero, fmt.Errorf("remove: %w", container.ErrEmptyStructure)
	}
	top := h.store.Data()[0]
	h.swap(0, n-1)
	h.store.Resize(n - 1)
	if n > 1 {
		h.siftDown(0, n-1)
	}
	return top, nil
}

// Sort sorts the heap's elements into ascending order in place using
// heap sort. The result is no longer a max-heap unless it contains
// fewer than two elements; call Heapify to restore the invariant.
func (h *Heap[T]) Sort() {
	n := h.store.Len()
	if n < 2 {
		return
	}
	h.Heapify()
	for i := n - 1; i > 0; i-- {
		h.swap(0, i)
		h.siftDown(0, i)
	}
}

// At returns the element at index i of the heap's array representation.
func (h *Heap[T]) At(i int) (T, error) {
	return h.store.At(i)
}

// Set overwrites the element at index i without restoring the heap
// invariant. The caller is responsible for calling SiftUp, SiftDown or
// Heapify as appropriate.
func (h *Heap[T]) Set(i int, v T) error {
	return h.store.Set(i, v)
}

// Values returns a copy of the heap's array representation.
func (h *Heap[T]) Values() []T {
	return h.store.Values()
}

// All returns an iterator over the heap's array representation.
func (h *Heap[T]) All() iter.Seq[T] {
	return h.store.All()
}

// Equal returns true if a and b have identical array representations.
func Equal[T constraints.Ordered](a, b *Heap[T]) bool {
	return vector.Equal(&a.store, &b.store)
}
