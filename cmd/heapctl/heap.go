// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"

	"cloudeng.io/heapq/container/heap"
	"cloudeng.io/logging/ctxlog"
)

type heapResult struct {
	Top    int   `yaml:"top"`
	Values []int `yaml:"values"`
}

type valuesResult struct {
	Values []int `yaml:"values"`
}

// buildHeap parses args, sets up logging and returns a heap built from
// the parsed values.
func buildHeap(ctx context.Context, fv any, args []string) (context.Context, func(), *heap.Heap[int], error) {
	fl := fv.(*CommonFlags)
	ctx, closer, err := withLogger(ctx, fl)
	if err != nil {
		return ctx, nil, nil, err
	}
	values, err := parseInts(args)
	if err != nil {
		closer()
		return ctx, nil, nil, err
	}
	h := heap.New(heap.WithData(values))
	ctxlog.Logger(ctx).Debug("heap built", "size", h.Len(), "input", values)
	return ctx, closer, h, nil
}

func (c *command) heapify(ctx context.Context, fv any, args []string) error {
	ctx, closer, h, err := buildHeap(ctx, fv, args)
	if err != nil {
		return err
	}
	defer closer()
	top, err := h.Top()
	if err != nil {
		return err
	}
	res := heapResult{Top: top, Values: h.Values()}
	ctxlog.Logger(ctx).Info("heapify", "top", top)
	return c.write(fv.(*CommonFlags).Output, res, func(w io.Writer) {
		fmt.Fprintf(w, "top: %v\n", res.Top)
		fmt.Fprintf(w, "heap: %v\n", res.Values)
	})
}

func (c *command) sort(ctx context.Context, fv any, args []string) error {
	ctx, closer, h, err := buildHeap(ctx, fv, args)
	if err != nil {
		return err
	}
	defer closer()
	h.Sort()
	res := valuesResult{Values: h.Values()}
	ctxlog.Logger(ctx).Info("sort", "size", len(res.Values))
	return c.write(fv.(*CommonFlags).Output, res, func(w io.Writer) {
		fmt.Fprintln(w, res.Values)
	})
}

func (c *command) drain(ctx context.Context, fv any, args []string) error {
	ctx, closer, h, err := buildHeap(ctx, fv, args)
	if err != nil {
		return err
	}
	defer closer()
	res := valuesResult{Values: make([]int, 0, h.Len())}
	for !h.Empty() {
		v, err := h.TipNRemove()
		if err != nil {
			return err
		}
		res.Values = append(res.Values, v)
	}
	ctxlog.Logger(ctx).Info("drain", "size", len(res.Values))
	return c.write(fv.(*CommonFlags).Output, res, func(w io.Writer) {
		fmt.Fprintln(w, res.Values)
	})
}
