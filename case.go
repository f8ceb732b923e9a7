// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package xlite

import "fmt"

// Runner is the body of a test case.  Implement it to define a case
// without the Test helper:
//
//	type failTest struct{}
//
//	func (failTest) Run(t *xlite.T) { t.Fail("expected failure") }
//
//	var _ = xlite.Register("failTest", failTest{})
type Runner interface {
	Run(t *T)
}

// RunnerFunc adapts an ordinary function to a Runner.
type RunnerFunc func(t *T)

// Run calls f(t).
func (f RunnerFunc) Run(t *T) { f(t) }

// Case is a named test case.  Cases are linked into a Registry which
// runs them; a case knows its successor in that registry's list only
// for the sake of the list order.  A case is linked at most once and
// never unlinked.
type Case struct {
	name   string
	body   Runner
	next   *Case
	linked bool
}

// New returns a case with given name and body which is not yet linked
// into any registry.  New panics if given body is nil.
func New(name string, body Runner) *Case {
	if f, ok := body.(RunnerFunc); body == nil || ok && f == nil {
		panic(fmt.Errorf("xlite: case %q has no body", name))
	}
	return &Case{name: name, body: body}
}

// Name returns the case's name which is also the TestName of its
// failures.
func (c *Case) Name() string { return c.name }

// Next returns the case following c in its registry or nil.
func (c *Case) Next() *Case { return c.next }

// Run executes c's body reporting its failures to given result.
func (c *Case) Run(r Result) { c.run(r) }

// run executes c's body and returns the number of failures its T
// reported.
func (c *Case) run(r Result) int {
	t := &T{c: c, r: r}
	c.body.Run(t)
	return t.failed
}

// Fail reports unconditionally a failure with given description at
// given location to given result and returns false.  Fail is the
// primitive all checks report through.
func (c *Case) Fail(r Result, description string, loc Location) bool {
	r.AddFailure(Failure{
		Message:    description,
		TestName:   c.name,
		FileName:   loc.File,
		LineNumber: loc.Line,
	})
	return false
}

// Check fails with given description iff given condition is false.  It
// returns the condition.
func (c *Case) Check(
	r Result, condition bool, description string, loc Location,
) bool {
	if !condition {
		c.Fail(r, description, loc)
	}
	return condition
}
