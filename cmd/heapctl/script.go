// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"slices"

	"cloudeng.io/cmdutil/cmdyaml"
	"cloudeng.io/errors"
	"cloudeng.io/heapq/container/heap"
	"cloudeng.io/heapq/container/pq"
	"cloudeng.io/logging/ctxlog"
)

// ErrUnknownOp is returned for script steps with an unrecognised operation.
var ErrUnknownOp = errors.New("unknown operation")

// Script is a sequence of priority queue operations applied to a queue
// built from Initial, for example:
//
//	initial: [30, 20, 15, 10, 5]
//	steps:
//	  - op: change-value
//	    old: 15
//	    value: 1
//	  - op: tip
type Script struct {
	Initial     []int  `yaml:"initial"`
	StopOnError bool   `yaml:"stop-on-error"`
	Steps       []Step `yaml:"steps"`
}

// Step is a single operation. Index is used by change, Old by
// change-value and Value by insert, change and change-value.
type Step struct {
	Op    string `yaml:"op"`
	Index int    `yaml:"index"`
	Old   int    `yaml:"old"`
	Value int    `yaml:"value"`
}

// StepResult records the outcome of a step and the queue's array
// representation once it has completed.
type StepResult struct {
	Step   int    `yaml:"step"`
	Op     string `yaml:"op"`
	Result []int  `yaml:"result,omitempty"`
	Heap   []int  `yaml:"heap"`
	Error  string `yaml:"error,omitempty"`
}

// Run applies the script's steps in order. Failed steps are recorded in
// their results and in the returned error, and processing continues
// unless StopOnError is set.
func (s *Script) Run(ctx context.Context) ([]StepResult, error) {
	logger := ctxlog.Logger(ctx)
	q := pq.FromSeq(slices.Values(s.Initial))
	results := make([]StepResult, 0, len(s.Steps))
	errs := &errors.M{}
	for i, st := range s.Steps {
		res, err := st.apply(q)
		res.Step, res.Op, res.Heap = i, st.Op, q.Values()
		if err != nil {
			err = errors.Annotate(fmt.Sprintf("step %d: %s", i, st.Op), err)
			res.Error = err.Error()
			errs.Append(err)
		}
		logger.Debug("step", "step", i, "op", st.Op, "heap", res.Heap, "error", res.Error)
		results = append(results, res)
		if err != nil && s.StopOnError {
			break
		}
	}
	logger.Info("script", "steps", len(results), "size", q.Len())
	return results, errs.Err()
}

func (st Step) apply(q *pq.PQ[int]) (StepResult, error) {
	var res StepResult
	switch st.Op {
	case "insert":
		q.Insert(st.Value)
	case "tip":
		v, err := q.Tip()
		if err != nil {
			return res, err
		}
		res.Result = []int{v}
	case "remove-tip":
		return res, q.RemoveTip()
	case "tip-n-remove":
		v, err := q.TipNRemove()
		if err != nil {
			return res, err
		}
		res.Result = []int{v}
	case "change":
		return res, q.Change(st.Index, st.Value)
	case "change-value":
		return res, q.ChangeValue(st.Old, st.Value)
	case "clear":
		q.Clear()
	case "size":
		res.Result = []int{q.Len()}
	case "sort":
		// Sorting is applied to a copy so that the queue is unchanged.
		h := heap.New(heap.WithData(q.Values()))
		h.Sort()
		res.Result = h.Values()
	case "verify":
		return res, q.Verify()
	default:
		return res, fmt.Errorf("%w: %q", ErrUnknownOp, st.Op)
	}
	return res, nil
}

func (c *command) run(ctx context.Context, fv any, args []string) error {
	fl := fv.(*RunFlags)
	ctx, closer, err := withLogger(ctx, &fl.CommonFlags)
	if err != nil {
		return err
	}
	defer closer()
	var script Script
	if err := cmdyaml.ParseConfigFileStrict(ctx, args[0], &script); err != nil {
		return err
	}
	script.StopOnError = script.StopOnError || fl.StopOnError
	results, runErr := script.Run(ctx)
	err = c.write(fl.Output, results, func(w io.Writer) {
		for _, r := range results {
			fmt.Fprintf(w, "%d %s:", r.Step, r.Op)
			if r.Result != nil {
				fmt.Fprintf(w, " result=%v", r.Result)
			}
			fmt.Fprintf(w, " heap=%v", r.Heap)
			if len(r.Error) > 0 {
				fmt.Fprintf(w, " error=%q", r.Error)
			}
			fmt.Fprintln(w)
		}
	})
	return errors.NewM(runErr, err)
}
