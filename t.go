// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package xlite

// T instances are passed to a case's body.  They bind the running case
// to the Result of the current run and provide the assertions a body
// uses:
//
//	var _ = xlite.Test("Sqrt", "of_16", func(t *xlite.T) {
//	    t.Check(math.Sqrt(16) == 4)
//	    xlite.CheckApproxEqual(t, 4.0, math.Sqrt(16), 1e-15)
//	})
//
// Every assertion captures the source location it was called from.
// Assertions which are called from a helper function should use the
// At-variants together with Here to report the helper's call site
// instead.  Generic assertions are functions, e.g. CheckEqual, since
// methods can't have type parameters.
type T struct {
	c      *Case
	r      Result
	failed int
}

// Name returns the name of the running case.
func (t *T) Name() string { return t.c.name }

// Result returns the result failures of the running case are reported
// to.
func (t *T) Result() Result { return t.r }

// Fail reports unconditionally a failure with given description and
// returns false.
func (t *T) Fail(description string) bool {
	return t.report(Here(1), description)
}

// FailAt reports unconditionally a failure with given description at
// given location and returns false.
func (t *T) FailAt(loc Location, description string) bool {
	return t.report(loc, description)
}

// conditionFallback is the message of a failed Check whose condition's
// source text can't be recovered.
const conditionFallback = "condition"

// Check fails iff given condition is false and returns the condition.
// The failure's message is the optionally given description.  Is none
// given the source text of the condition-argument is used, i.e.
//
//	t.Check(len(ss) == 2)
//
// reports "len(ss) == 2" if it fails.
func (t *T) Check(condition bool, description ...string) bool {
	if condition {
		return true
	}
	loc := Here(1)
	return t.report(loc, describe(loc, "Check", description))
}

// CheckAt fails at given location with given description iff given
// condition is false.  It returns the condition.
func (t *T) CheckAt(loc Location, condition bool, description string) bool {
	if !condition {
		t.report(loc, description)
	}
	return condition
}

func describe(loc Location, method string, dd []string) string {
	if len(dd) > 0 {
		return dd[0]
	}
	if src, ok := expressions.argument(loc, method); ok {
		return src
	}
	return conditionFallback
}

// Failed returns the number of failures t reported so far.
func (t *T) Failed() int { return t.failed }

// report is the primitive every assertion of t fails through.
func (t *T) report(loc Location, msg string) bool {
	t.failed++
	return t.c.Fail(t.r, msg, loc)
}
