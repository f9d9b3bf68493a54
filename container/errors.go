// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package container

import (
	"fmt"

	"cloudeng.io/errors"
)

var (
	// ErrEmptyStructure is returned when reading or removing an element
	// from an empty container.
	ErrEmptyStructure = errors.New("empty structure")

	// ErrIndexOutOfRange is returned when an index lies outside of
	// [0, size).
	ErrIndexOutOfRange = errors.New("index out of range")
)

// IndexError records an out of range access. It wraps ErrIndexOutOfRange.
type IndexError struct {
	Index int
	Size  int
}

// Error implements error.
func (e *IndexError) Error() string {
	return fmt.Sprintf("%v: index %d, size %d", ErrIndexOutOfRange, e.Index, e.Size)
}

// Unwrap returns ErrIndexOutOfRange.
func (e *IndexError) Unwrap() error {
	return ErrIndexOutOfRange
}

// CheckIndex returns an *IndexError if i is not in [0, size).
func CheckIndex(i, size int) error {
	if i < 0 || i >= size {
		return &IndexError{Index: i, Size: size}
	}
	return nil
}
