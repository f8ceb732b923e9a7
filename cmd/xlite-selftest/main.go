// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// xlite-selftest runs the harness's own cases and verifies that exactly
// the failures they provoke on purpose are reported.  It exits with
// status 1 if the reported failures differ from the expected ones or a
// case panics.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"github.com/slukits/xlite"
	"github.com/slukits/xlite/internal/selftest"
)

func main() {
	os.Exit(run(os.Stdout, os.Stderr))
}

func run(stdout, stderr io.Writer) (code int) {
	defer func() {
		if r := recover(); r != nil {
			color.New(color.FgRed).Fprintf(stderr, "Unhandled panic: %v\n", r)
			code = 1
		}
	}()

	selftest.Reset()
	c := &xlite.Collector{}
	xlite.RunAll(c)
	if c.Count() == selftest.ExpectedFailures() {
		fmt.Fprintf(stdout, "%d cases reported the %d expected failures\n",
			xlite.Default().Len(), c.Count())
		return 0
	}

	color.New(color.FgRed).Fprintf(stderr,
		"Did not get expected failures: expected %d, got %d\n",
		selftest.ExpectedFailures(), c.Count())
	for _, f := range c.Failures() {
		fmt.Fprintf(stderr, "%s: %s: %s@%d\n",
			f.TestName, f.Message, f.FileName, f.LineNumber)
	}
	return 1
}
