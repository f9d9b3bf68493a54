// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package container_test

import (
	"errors"
	"testing"

	"cloudeng.io/heapq/container"
)

func TestCheckIndex(t *testing.T) {
	for _, tc := range []struct {
		i, size int
		ok      bool
	}{
		{0, 1, true},
		{3, 4, true},
		{0, 0, false},
		{4, 4, false},
		{-1, 4, false},
	} {
		err := container.CheckIndex(tc.i, tc.size)
		if got, want := err == nil, tc.ok; got != want {
			t.Errorf("%v/%v: got %v, want %v", tc.i, tc.size, got, want)
			continue
		}
		if tc.ok {
			continue
		}
		if !errors.Is(err, container.ErrIndexOutOfRange) {
			t.Errorf("%v/%v: unexpected error: %v", tc.i, tc.size, err)
		}
		var ie *container.IndexError
		if !errors.As(err, &ie) {
			t.Fatalf("%v/%v: not an IndexError: %T", tc.i, tc.size, err)
		}
		if got, want := ie.Index, tc.i; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
		if got, want := ie.Size, tc.size; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
	}
	if got, want := container.CheckIndex(7, 2).Error(), "index out of range: index 7, size 2"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}
