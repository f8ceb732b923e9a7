// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package xlite

import (
	"fmt"
	"sync"

	"golang.org/x/exp/slices"
)

// Registry is a list of test cases and the means to run them.  Cases
// are inserted at the list's head, i.e. a registry runs its cases in
// the reverse order they were added.  A Registry is not safe for
// concurrent use: all cases are expected to be added (typically during
// package initialization) before a registry is run.  The zero value is
// an empty registry ready to use.
type Registry struct {
	head   *Case
	n      int
	logger Logger
}

var (
	defaultRegistry *Registry
	initDefault     sync.Once
)

// Default returns the process wide registry which Register, Test and
// AddSuite add to.  It is created at its first use.
func Default() *Registry {
	initDefault.Do(func() { defaultRegistry = NewRegistry() })
	return defaultRegistry
}

// NewRegistry returns a new empty registry independent of Default.
func NewRegistry() *Registry { return &Registry{logger: NullLogger()} }

// SetLogger sets the logger a registry reports which cases it runs to.
// A nil logger discards the logs.
func (r *Registry) SetLogger(l Logger) {
	if l == nil {
		l = NullLogger()
	}
	r.logger = l
}

// Logger returns the logger set by SetLogger or the NullLogger.
func (r *Registry) Logger() Logger { return r.log() }

func (r *Registry) log() Logger {
	if r.logger == nil {
		return NullLogger()
	}
	return r.logger
}

// Add links given case as new head into the registry and returns it.
// Add panics if given case is already linked into a registry.
func (r *Registry) Add(c *Case) *Case {
	if c.linked {
		panic(fmt.Errorf("xlite: case %q registered twice", c.name))
	}
	c.next, c.linked = r.head, true
	r.head = c
	r.n++
	return c
}

// Len returns the number of registered cases.
func (r *Registry) Len() int { return r.n }

// Cases returns the registered cases in the order they are run.
func (r *Registry) Cases() []*Case {
	cc := make([]*Case, 0, r.n)
	for c := r.head; c != nil; c = c.next {
		cc = append(cc, c)
	}
	return cc
}

// Names returns the sorted names of the registered cases.
func (r *Registry) Names() []string {
	nn := make([]string, 0, r.n)
	for c := r.head; c != nil; c = c.next {
		nn = append(nn, c.name)
	}
	slices.Sort(nn)
	return nn
}

// RunAll runs every registered case once reporting to given result and
// calls the result's TestsEnded afterwards.  Failing assertions don't
// stop a run but a panicking case does: the panic is not recovered,
// i.e. the remaining cases are not run and TestsEnded is not called.
func (r *Registry) RunAll(res Result) { r.RunMatching(res, nil) }

// RunMatching runs like RunAll the registered cases but only those
// whose name is accepted by given filter.  A nil filter accepts all
// cases.
func (r *Registry) RunMatching(res Result, keep Filter) {
	for c := r.head; c != nil; c = c.next {
		if keep != nil && !keep(c.name) {
			r.log().Printf("skipping %s", c.name)
			continue
		}
		r.log().Printf("running %s", c.name)
		n := c.run(res)
		r.log().Printf("%s: %d failures", c.name, n)
	}
	res.TestsEnded()
}

// RunAll runs all cases of the Default registry.
func RunAll(res Result) { Default().RunAll(res) }

// Register adds a new case with given name and body to the Default
// registry and returns it.  Assigning its return value to a package
// level variable is all it takes to declare a case:
//
//	var _ = xlite.Register("checkTest", checkTest{})
func Register(name string, body Runner) *Case {
	return Default().Add(New(name, body))
}

// Test declares in the Default registry the case name of the group of
// cases group:
//
//	var _ = xlite.Test("Stack", "pop_of_empty_fails", func(t *xlite.T) {
//	    _, err := (&Stack{}).Pop()
//	    t.Check(err != nil)
//	})
//
// The case's name is "<group>/<name>".  Test panics if given body is
// nil.
func Test(group, name string, body func(t *T)) *Case {
	return Register(group+"/"+name, RunnerFunc(body))
}
