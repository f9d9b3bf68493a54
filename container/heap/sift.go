// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package heap

import "cloudeng.io/heapq/container"

// Parent returns the index of the parent of i, or -1 for the root.
func Parent(i int) int {
	if i <= 0 {
		return -1
	}
	return (i - 1) / 2
}

// LeftChild returns the index of the left child of i.
func LeftChild(i int) int { return (2 * i) + 1 }

// RightChild returns the index of the right child of i.
func RightChild(i int) int { return (2 * i) + 2 }

// HasParent returns true if i is a non-root element of the heap.
func (h *Heap[T]) HasParent(i int) bool {
	return i > 0 && i < h.store.Len()
}

// HasLeftChild returns true if the i'th element has a left child.
func (h *Heap[T]) HasLeftChild(i int) bool {
	return i >= 0 && LeftChild(i) < h.store.Len()
}

// HasRightChild returns true if the i'th element has a right child.
func (h *Heap[T]) HasRightChild(i int) bool {
	return i >= 0 && RightChild(i) < h.store.Len()
}

// SiftUp moves the i'th element towards the root until it is no larger
// than its parent. Equal elements are never exchanged.
func (h *Heap[T]) SiftUp(i int) error {
	if err := container.CheckIndex(i, h.store.Len()); err != nil {
		return err
	}
	h.siftUp(i)
	return nil
}

// SiftDown moves the i'th element towards the leaves until it is no
// smaller than either of its children.
func (h *Heap[T]) SiftDown(i int) error {
	n := h.store.Len()
	if err := container.CheckIndex(i, n); err != nil {
		return err
	}
	h.siftDown(i, n)
	return nil
}

func (h *Heap[T]) siftUp(j int) {
	d := h.store.Data()
	for j > 0 {
		i := (j - 1) / 2 // parent
		if d[j] <= d[i] {
			break
		}
		h.swap(i, j)
		j = i
	}
}

// siftDown considers only the first n elements, which allows Sort to
// shrink the active range without resizing the store.
func (h *Heap[T]) siftDown(i0, n int) bool {
	d := h.store.Data()
	i := i0
	for {
		j1 := LeftChild(i)
		if j1 >= n || j1 < 0 { // j1 < 0 after int overflow
			break
		}
		j := j1
		if j2 := j1 + 1; j2 < n && d[j2] > d[j1] {
			j = j2
		}
		if d[j] <= d[i] {
			break
		}
		h.swap(i, j)
		i = j
	}
	return i > i0
}

func (h *Heap[T]) swap(i, j int) {
	if i == j {
		return
	}
	d := h.store.Data()
	d[i], d[j] = d[j], d[i]
	if h.callback != nil {
		h.callback(d[i], d[j], i, j)
	}
}
