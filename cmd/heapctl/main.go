// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command heapctl builds, sorts and drains max-heaps of integers and runs
// scripts of priority queue operations against them.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/subcmd"
	"cloudeng.io/logging/ctxlog"
	"gopkg.in/yaml.v3"
)

const cmdSpec = `name: heapctl
summary: build, sort and drain max-heaps and run priority queue scripts
commands:
  - name: heapify
    summary: build a heap from the supplied integers and print its array representation
    arguments:
      - <integer>
      - ...
  - name: sort
    summary: heap sort the supplied integers into ascending order
    arguments:
      - <integer>
      - ...
  - name: drain
    summary: build a heap and repeatedly remove its largest element
    arguments:
      - <integer>
      - ...
  - name: run
    summary: run a yaml script of priority queue operations
    arguments:
      - <script.yaml>
`

// CommonFlags are accepted by all heapctl commands.
type CommonFlags struct {
	cmdutil.LoggingFlags
	Output string `subcmd:"output,text,'output format: text or yaml'"`
}

type RunFlags struct {
	CommonFlags
	StopOnError bool `subcmd:"stop-on-error,false,stop at the first failing step regardless of the script's setting"`
}

// command holds the state shared by all of the runners.
type command struct {
	out io.Writer
}

func newCommandSet(cmd *command) *subcmd.CommandSetYAML {
	cmdSet := subcmd.MustFromYAML(cmdSpec)
	cmdSet.Set("heapify").MustRunnerAndFlags(cmd.heapify,
		subcmd.MustRegisteredFlagSet(&CommonFlags{}))
	cmdSet.Set("sort").MustRunnerAndFlags(cmd.sort,
		subcmd.MustRegisteredFlagSet(&CommonFlags{}))
	cmdSet.Set("drain").MustRunnerAndFlags(cmd.drain,
		subcmd.MustRegisteredFlagSet(&CommonFlags{}))
	cmdSet.Set("run").MustRunnerAndFlags(cmd.run,
		subcmd.MustRegisteredFlagSet(&RunFlags{}))
	return cmdSet
}

func main() {
	subcmd.Dispatch(context.Background(), newCommandSet(&command{out: os.Stdout}))
}

// withLogger configures a logger as per the logging flags and stores it
// in the returned context. The returned function closes any log file.
func withLogger(ctx context.Context, fl *CommonFlags) (context.Context, func(), error) {
	logger, err := fl.LoggingConfig().NewLogger()
	if err != nil {
		return ctx, nil, err
	}
	return ctxlog.WithLogger(ctx, logger.Logger), func() { logger.Close() }, nil
}

func parseInts(args []string) ([]int, error) {
	values := make([]int, len(args))
	for i, a := range args {
		v, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %q is not an integer: %w", i, a, err)
		}
		values[i] = v
	}
	return values, nil
}

// write prints v as yaml, or as text using the supplied function.
func (c *command) write(format string, v any, text func(io.Writer)) error {
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(c.out)
		defer enc.Close()
		return enc.Encode(v)
	case "text", "":
		text(c.out)
		return nil
	}
	return fmt.Errorf("unsupported output format: %q", format)
}
