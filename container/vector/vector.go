// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package vector provides a contiguous, resizable and bounds checked
// sequence that is used as the backing store for other containers.
package vector

import (
	"iter"

	"cloudeng.io/heapq/container"
)

// minCap is the smallest capacity allocated when a vector grows.
const minCap = 4

// Vector is a contiguous, zero-indexed sequence of elements. It grows
// geometrically and, once it is less than a quarter full, shrinks to the
// smallest power of two that holds its elements.
// The zero value is an empty vector ready for use.
type Vector[T any] struct {
	storage []T // len(storage) is the size, cap(storage) the capacity.
}

// New returns a vector containing n zero values.
func New[T any](n int) *Vector[T] {
	v := &Vector[T]{}
	v.Resize(n)
	return v
}

// FromSlice returns a vector containing a copy of s.
func FromSlice[T any](s []T) *Vector[T] {
	v := &Vector[T]{}
	if len(s) == 0 {
		return v
	}
	v.storage = make([]T, len(s), capFor(len(s)))
	copy(v.storage, s)
	return v
}

// FromSeq returns a vector containing the values yielded by seq, in the
// order that they are yielded.
func FromSeq[T any](seq iter.Seq[T]) *Vector[T] {
	v := &Vector[T]{}
	for e := range seq {
		v.Append(e)
	}
	return v
}

func capFor(n int) int {
	c := minCap
	for c < n {
		c <<= 1
	}
	return c
}

// Len returns the number of elements in the vector.
func (v *Vector[T]) Len() int {
	return len(v.storage)
}

// Empty returns true if the vector contains no elements.
func (v *Vector[T]) Empty() bool {
	return len(v.storage) == 0
}

// Cap returns the number of elements the vector can hold before it
// must reallocate its storage.
func (v *Vector[T]) Cap() int {
	return cap(v.storage)
}

// At returns the i'th element.
func (v *Vector[T]) At(i int) (T, error) {
	if err := container.CheckIndex(i, len(v.storage)); err != nil {
		var zero T
		return zero, err
	}
	return v.storage[i], nil
}

// Set overwrites the i'th element.
func (v *Vector[T]) Set(i int, e T) error {
	if err := container.CheckIndex(i, len(v.storage)); err != nil {
		return err
	}
	v.storage[i] = e
	return nil
}

// Front returns the first element.
func (v *Vector[T]) Front() (T, error) {
	if len(v.storage) == 0 {
		var zero T
		return zero, container.ErrEmptyStructure
	}
	return v.storage[0], nil
}

// Back returns the last element.
func (v *Vector[T]) Back() (T, error) {
	if len(v.storage) == 0 {
		var zero T
		return zero, container.ErrEmptyStructure
	}
	return v.storage[len(v.storage)-1], nil
}

// Swap exchanges the i'th and j'th elements. The indices are not
// checked beyond the runtime's own bounds checks.
func (v *Vector[T]) Swap(i, j int) {
	v.storage[i], v.storage[j] = v.storage[j], v.storage[i]
}

// Resize sets the number of elements to n. Elements beyond n are
// discarded, new elements are zero values. Resize(0) is equivalent
// to Clear.
func (v *Vector[T]) Resize(n int) {
	size := len(v.storage)
	switch {
	case n <= 0:
		v.Clear()
	case n > size:
		if n > cap(v.storage) {
			ns := make([]T, size, capFor(n))
			copy(ns, v.storage)
			v.storage = ns
		}
		v.storage = v.storage[:n]
	case n < size:
		clear(v.storage[n:size])
		v.storage = v.storage[:n]
		if c := cap(v.storage); c > minCap && n < c/4 {
			ns := make([]T, n, capFor(n))
			copy(ns, v.storage)
			v.storage = ns
		}
	}
}

// Reserve ensures that the vector can hold at least n elements without
// reallocating its storage.
func (v *Vector[T]) Reserve(n int) {
	if n <= cap(v.storage) {
		return
	}
	ns := make([]T, len(v.storage), capFor(n))
	copy(ns, v.storage)
	v.storage = ns
}

// Append adds e to the end of the vector.
func (v *Vector[T]) Append(e T) {
	n := len(v.storage)
	v.Resize(n + 1)
	v.storage[n] = e
}

// Clear discards all elements and the storage used to hold them.
func (v *Vector[T]) Clear() {
	v.storage = nil
}

// Data returns the vector's elements. The returned slice shares storage
// with the vector and is only valid until the next call that changes the
// vector's size.
func (v *Vector[T]) Data() []T {
	return v.storage
}

// Values returns a copy of the vector's elements.
func (v *Vector[T]) Values() []T {
	if len(v.storage) == 0 {
		return nil
	}
	return append([]T(nil), v.storage...)
}

// All returns an iterator over the elements from first to last.
func (v *Vector[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, e := range v.storage {
			if !yield(e) {
				return
			}
		}
	}
}

// Backward returns an iterator over the elements from last to first.
func (v *Vector[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := len(v.storage) - 1; i >= 0; i-- {
			if !yield(v.storage[i]) {
				return
			}
		}
	}
}

// Map calls fn for each element, allowing it to be modified in place.
func (v *Vector[T]) Map(fn func(*T)) {
	for i := range v.storage {
		fn(&v.storage[i])
	}
}

// Clone returns a deep copy of the vector.
func (v *Vector[T]) Clone() *Vector[T] {
	return FromSlice(v.storage)
}

// Take returns a new vector that owns the receiver's storage, leaving
// the receiver empty.
func (v *Vector[T]) Take() *Vector[T] {
	n := &Vector[T]{storage: v.storage}
	v.storage = nil
	return n
}

// Equal returns true if a and b contain the same elements in the
// same order.
func Equal[T comparable](a, b *Vector[T]) bool {
	if a.Len() != b.Len() {
		return false
	}
	for i, e := range a.storage {
		if e != b.storage[i] {
			return false
		}
	}
	return true
}
