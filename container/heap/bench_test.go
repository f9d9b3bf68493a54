// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package heap_test

import (
	stdheap "container/heap"
	"sort"
	"testing"

	"cloudeng.io/heapq/container/heap"
)

// maxInts implements container/heap.Interface as a max-heap.
type maxInts []int

func (h maxInts) Len() int           { return len(h) }
func (h maxInts) Less(i, j int) bool { return h[i] > h[j] }
func (h maxInts) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *maxInts) Push(x any) {
	*h = append(*h, x.(int))
}

func (h *maxInts) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}

const benchmarkInputSize = 10000

func BenchmarkStdHeap(b *testing.B) {
	keys := uniformRand(0, benchmarkInputSize)
	h := &maxInts{}
	for b.Loop() {
		for _, k := range keys {
			stdheap.Push(h, k)
		}
		for h.Len() > 0 {
			_ = stdheap.Pop(h).(int)
		}
	}
}

func BenchmarkHeap(b *testing.B) {
	keys := uniformRand(0, benchmarkInputSize)
	h := heap.New[int]()
	for b.Loop() {
		for _, k := range keys {
			h.Insert(k)
		}
		for !h.Empty() {
			_, _ = h.TipNRemove()
		}
	}
}

func BenchmarkHeapify(b *testing.B) {
	keys := uniformRand(0, benchmarkInputSize)
	for b.Loop() {
		_ = heap.New(heap.WithData(keys))
	}
}

func BenchmarkHeapSort(b *testing.B) {
	keys := uniformRand(0, benchmarkInputSize)
	for b.Loop() {
		h := heap.New(heap.WithData(keys))
		h.Sort()
	}
}

func BenchmarkStdSort(b *testing.B) {
	keys := uniformRand(0, benchmarkInputSize)
	s := make([]int, len(keys))
	for b.Loop() {
		copy(s, keys)
		sort.Ints(s)
	}
}
