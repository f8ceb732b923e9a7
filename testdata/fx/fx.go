// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package fx provides xlite test-fixture suites.
//
// Each test-fixture suite embeds the FixtureLog ensuring that all
// loggings during a suite's case runs are appended to the
// *Logs*-property which then can be evaluated after the suite's cases
// have run.  Fixture suites are added to a registry created by the
// test, never to the default registry.
package fx

import (
	"strings"

	"github.com/slukits/xlite"
)

// FixtureLog collects the logs of a fixture suite's cases.
type FixtureLog struct {
	Logs []string
}

// Log appends given message to the fixture's logs.  Log is not a case
// since its argument is not a *xlite.T.
func (fl *FixtureLog) Log(msg string) {
	fl.Logs = append(fl.Logs, msg)
}

// String returns the logs joined by newlines.
func (fl *FixtureLog) String() string {
	return strings.Join(fl.Logs, "\n")
}

// Stack has two cases, Pushes and Pops_empty, besides methods which
// must not be taken for cases.
type Stack struct {
	FixtureLog
	items []int
}

func (s *Stack) Pushes(t *xlite.T) {
	s.Log(t.Name())
	s.items = append(s.items, 42)
	xlite.CheckEqual(t, 1, len(s.items))
}

func (s *Stack) Pops_empty(t *xlite.T) {
	s.Log(t.Name())
	s.items = nil
	t.Fail("pop of empty stack")
}

// Len has no argument.
func (s *Stack) Len() int { return len(s.items) }

// Push has an argument other than *xlite.T.
func (s *Stack) Push(i int) { s.items = append(s.items, i) }

// Peek returns a value.
func (s *Stack) Peek(t *xlite.T) bool { return len(s.items) > 0 }

// Pair has an additional argument.
func (s *Stack) Pair(t *xlite.T, i int) {}

// Panicking has a single case which panics.
type Panicking struct{ FixtureLog }

func (p *Panicking) Panics(t *xlite.T) {
	p.Log(t.Name())
	panic("fixture panic")
}

// Empty has no cases.
type Empty struct{}

// Helper has cases whose assertions are reported from a helper
// function at the call site of the helper.
type Helper struct{ FixtureLog }

func (h *Helper) Uses_helper(t *xlite.T) {
	h.Log(t.Name())
	checkPositive(t, xlite.Here(0), -1)
}

func checkPositive(t *xlite.T, loc xlite.Location, n int) bool {
	return t.CheckAt(loc, n > 0, "not positive")
}
