// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package container defines the capabilities shared by the containers in
// this module and the errors they return. Each capability is a separate
// interface; concrete containers implement only the ones they support.
package container

import "iter"

// Container is implemented by all containers.
type Container interface {
	Len() int
	Empty() bool
}

// Clearable is implemented by containers that can discard all of their
// elements.
type Clearable interface {
	Container
	Clear()
}

// Resizable is implemented by containers whose size can be set directly.
// Resize(0) is equivalent to Clear.
type Resizable interface {
	Clearable
	Resize(n int)
}

// Traversable is implemented by containers that can yield their elements
// in some order without modifying themselves.
type Traversable[T any] interface {
	Container
	All() iter.Seq[T]
}

// Mappable is implemented by containers that allow their elements to be
// modified in place.
type Mappable[T any] interface {
	Traversable[T]
	Map(fn func(*T))
}

// Drainable is implemented by containers whose contents can be moved
// into another container, that is, copied and then cleared.
type Drainable[T any] interface {
	Traversable[T]
	Clear()
}

// Indexable is implemented by containers that support bounds checked
// positional access.
type Indexable[T any] interface {
	At(i int) (T, error)
	Set(i int, v T) error
}

// Sortable is implemented by containers that can sort themselves in place.
type Sortable interface {
	Sort()
}
