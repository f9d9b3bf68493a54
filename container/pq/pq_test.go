// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package pq_test

import (
	"errors"
	"fmt"
	"math/rand"
	"reflect"
	"slices"
	"sort"
	"testing"

	"cloudeng.io/heapq/container"
	"cloudeng.io/heapq/container/heap"
	"cloudeng.io/heapq/container/pq"
	"cloudeng.io/heapq/container/vector"
)

var (
	_ container.Clearable        = (*pq.PQ[int])(nil)
	_ container.Traversable[int] = (*pq.PQ[int])(nil)
)

func ExamplePQ_Change() {
	q := pq.FromSeq(slices.Values([]int{30, 20, 15, 10, 5}))
	if err := q.Change(q.Index(15), 1); err != nil {
		panic(err)
	}
	tip, _ := q.Tip()
	fmt.Println(tip, q.Values())
	if err := q.Change(q.Index(10), 40); err != nil {
		panic(err)
	}
	tip, _ = q.Tip()
	fmt.Println(tip, q.Values())
	// Output:
	// 30 [30 20 1 10 5]
	// 40 [40 30 1 20 5]
}

func multiset(v []int) []int {
	s := slices.Clone(v)
	sort.Ints(s)
	return s
}

func TestScenario(t *testing.T) {
	q := pq.New(heap.WithData([]int{30, 20, 15, 10, 5}))
	if err := q.ChangeValue(15, 1); err != nil {
		t.Fatal(err)
	}
	if tip, _ := q.Tip(); tip != 30 {
		t.Errorf("got %v, want 30", tip)
	}
	if err := q.ChangeValue(10, 40); err != nil {
		t.Fatal(err)
	}
	if tip, _ := q.Tip(); tip != 40 {
		t.Errorf("got %v, want 40", tip)
	}
	if err := q.Verify(); err != nil {
		t.Error(err)
	}
	if err := q.ChangeValue(1000, 1); !errors.Is(err, container.ErrIndexOutOfRange) {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestChangeErrors(t *testing.T) {
	q := pq.New[int]()
	if err := q.Change(0, 1); !errors.Is(err, container.ErrIndexOutOfRange) {
		t.Errorf("unexpected error: %v", err)
	}
	for _, v := range []int{5, 3, 9} {
		q.Insert(v)
	}
	before := q.Values()
	for _, idx := range []int{3, 100, -1} {
		err := q.Change(idx, 42)
		var ie *container.IndexError
		if !errors.As(err, &ie) {
			t.Fatalf("%v: unexpected error: %v", idx, err)
		}
		if got, want := ie.Index, idx; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
		if got, want := q.Values(), before; !reflect.DeepEqual(got, want) {
			t.Errorf("failed change modified the queue: got %v, want %v", got, want)
		}
	}
}

func TestChangeRandom(t *testing.T) {
	rnd := rand.New(rand.NewSource(0)) // #nosec: G404
	for n := 1; n < 40; n++ {
		values := make([]int, n)
		for i := range values {
			values[i] = rnd.Intn(50)
		}
		q := pq.FromTraversable[int](vector.FromSlice(values))
		for range 50 {
			idx := rnd.Intn(n)
			v := rnd.Intn(100)
			before := q.Values()
			if err := q.Change(idx, v); err != nil {
				t.Fatal(err)
			}
			if err := q.Verify(); err != nil {
				t.Fatalf("%v: change %v to %v: %v", before, idx, v, err)
			}
			if got, want := q.Len(), n; got != want {
				t.Errorf("got %v, want %v", got, want)
			}
			expected := slices.Clone(before)
			expected[idx] = v
			if got, want := multiset(q.Values()), multiset(expected); !reflect.DeepEqual(got, want) {
				t.Errorf("got %v, want %v", got, want)
			}
		}
	}
}

func TestChangeEqual(t *testing.T) {
	q := pq.New(heap.WithData([]int{9, 7, 8, 7}))
	before := q.Values()
	if err := q.Change(1, 7); err != nil {
		t.Fatal(err)
	}
	if got, want := q.Values(), before; !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestDelegation(t *testing.T) {
	src := vector.FromSlice([]int{4, 1, 3, 2, 16, 9, 10})
	q := pq.FromDrainable[int](src)
	if !src.Empty() {
		t.Errorf("source was not drained")
	}
	if tip, _ := q.Top(); tip != 16 {
		t.Errorf("got %v, want 16", tip)
	}
	q.Insert(20)
	c := q.Clone()
	v, err := q.TipNRemove()
	if err != nil || v != 20 {
		t.Errorf("got %v, %v, want 20", v, err)
	}
	if err := q.RemoveTip(); err != nil {
		t.Fatal(err)
	}
	if tip, _ := q.Tip(); tip != 10 {
		t.Errorf("got %v, want 10", tip)
	}
	if got, want := c.Len(), 8; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	e, err := c.At(0)
	if err != nil || e != 20 {
		t.Errorf("got %v, %v, want 20", e, err)
	}

	m := c.Take()
	if !c.Empty() || m.Len() != 8 {
		t.Errorf("got %v %v, want 0 8", c.Len(), m.Len())
	}
	if got, want := slices.Collect(m.All()), m.Values(); !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}

	q.Clear()
	if !q.IsHeap() || !q.Empty() {
		t.Errorf("cleared queue is not empty")
	}
	if _, err := q.Tip(); !errors.Is(err, container.ErrEmptyStructure) {
		t.Errorf("unexpected error: %v", err)
	}
	if err := q.RemoveTip(); !errors.Is(err, container.ErrEmptyStructure) {
		t.Errorf("unexpected error: %v", err)
	}
	if _, err := q.TipNRemove(); !errors.Is(err, container.ErrEmptyStructure) {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestTrackedChange(t *testing.T) {
	// Use the swap callback to keep track of where each task lives so
	// that its priority can be changed without a search.
	where := map[int]int{}
	q := pq.New(heap.WithCallback(func(iv, jv int, i, j int) {
		where[iv] = i
		where[jv] = j
	}))
	for _, v := range []int{1, 2, 3, 4, 5, 6, 7, 8} {
		where[v] = q.Len()
		q.Insert(v)
	}
	delete(where, 4)
	if err := q.Change(q.Index(4), 100); err != nil {
		t.Fatal(err)
	}
	where[100] = 0
	for v, i := range where {
		if got, _ := q.At(i); got != v {
			t.Errorf("%v: got %v at %v", v, got, i)
		}
	}
	if tip, _ := q.Tip(); tip != 100 {
		t.Errorf("got %v, want 100", tip)
	}
}

func TestZeroValue(t *testing.T) {
	var q pq.PQ[int]
	if err := q.Change(0, 1); !errors.Is(err, container.ErrIndexOutOfRange) {
		t.Errorf("unexpected error: %v", err)
	}
	for _, v := range []int{5, 3, 9} {
		q.Insert(v)
	}
	if err := q.ChangeValue(3, 20); err != nil {
		t.Fatal(err)
	}
	if tip, _ := q.Tip(); tip != 20 {
		t.Errorf("got %v, want 20", tip)
	}
	if err := q.Verify(); err != nil {
		t.Error(err)
	}
}

func TestCloneDoesNotTrack(t *testing.T) {
	moves := 0
	q := pq.New(heap.WithData([]int{5, 4, 3}), heap.WithCallback(func(_, _ int, _, _ int) {
		moves++
	}))
	c := q.Clone()
	if err := c.ChangeValue(3, 100); err != nil {
		t.Fatal(err)
	}
	if got, want := moves, 0; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if err := q.ChangeValue(3, 100); err != nil {
		t.Fatal(err)
	}
	if got, want := moves, 1; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}
