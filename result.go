// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package xlite

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/exp/slices"
)

// Result is the sink of a registry run.  Every failed assertion ends up
// in an AddFailure call while TestsEnded is called once after all cases
// of a run have been executed.  Counter is the default implementation;
// Collector gathers failures for later inspection.  Embedding a Counter
// and overwriting AddFailure replaces how failures are recorded:
//
//	type quiet struct {
//	    *xlite.Counter
//	    ff []xlite.Failure
//	}
//
//	func (q *quiet) AddFailure(f xlite.Failure) { q.ff = append(q.ff, f) }
type Result interface {
	AddFailure(Failure)
	TestsEnded()
}

// Counted is implemented by results which know how many failures they
// have recorded so far.
type Counted interface {
	Count() int
}

const (
	noFailures = "There were no test failures"
	failures   = "There were %d failures"
)

// Counter is the default Result.  It prints each reported failure as
// one line to Out and counts it.  At the end of a run it prints a
// summary line.  A nil Out defaults to os.Stdout.  The zero value is
// ready to use.
type Counter struct {
	Out   io.Writer
	count int
}

// NewCounter returns a Counter printing to given writer.
func NewCounter(out io.Writer) *Counter { return &Counter{Out: out} }

func (c *Counter) out() io.Writer {
	if c.Out == nil {
		return os.Stdout
	}
	return c.Out
}

// AddFailure prints given failure and increments the failure count.
func (c *Counter) AddFailure(f Failure) {
	fmt.Fprintln(c.out(), f.String())
	c.count++
}

// Count returns the number of failures reported to c.
func (c *Counter) Count() int { return c.count }

// TestsEnded prints the number of failures or that there were none.
// The summary is colored if colored output is enabled (see
// color.NoColor).
func (c *Counter) TestsEnded() {
	if c.count > 0 {
		color.New(color.FgRed).Fprintf(c.out(), failures+"\n", c.count)
		return
	}
	color.New(color.FgGreen).Fprintln(c.out(), noFailures)
}

// Collector is a Result which collects failures instead of printing
// them.  It is the result to use when the harness tests itself.  The
// zero value is ready to use.
type Collector struct {
	failures []Failure
	ended    bool
}

// AddFailure appends given failure to the collected failures.
func (c *Collector) AddFailure(f Failure) {
	c.failures = append(c.failures, f)
}

// TestsEnded flags the collector's run as ended.
func (c *Collector) TestsEnded() { c.ended = true }

// Ended reports if TestsEnded was called.
func (c *Collector) Ended() bool { return c.ended }

// Count returns the number of collected failures.
func (c *Collector) Count() int { return len(c.failures) }

// Failures returns a copy of the collected failures in the order they
// were reported.
func (c *Collector) Failures() []Failure {
	return slices.Clone(c.failures)
}
