// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package heap

import "golang.org/x/exp/constraints"

type options[T constraints.Ordered] struct {
	capacity int
	data     []T
	callback func(iv, jv T, i, j int)
}

// Option represents the options that can be passed to New and the
// other constructors in this package.
type Option[T constraints.Ordered] func(*options[T])

// WithCapacity sets the initial capacity of the heap's storage.
func WithCapacity[T constraints.Ordered](n int) Option[T] {
	return func(o *options[T]) {
		o.capacity = n
	}
}

// WithData sets the initial contents of the heap. The data is copied
// and then heapified. It is ignored by FromSeq, FromTraversable and
// FromDrainable.
func WithData[T constraints.Ordered](data []T) Option[T] {
	return func(o *options[T]) {
		o.data = data
	}
}

// WithCallback provides a callback function that is called after every
// swap with the values now stored at i and j. It can be used to track
// the location of elements, for example to supply the index expected by
// pq.PQ.Change. Elements appended by Insert are not reported until they
// are first moved.
func WithCallback[T constraints.Ordered](fn func(iv, jv T, i, j int)) Option[T] {
	return func(o *options[T]) {
		o.callback = fn
	}
}
