// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package xlite

import (
	"fmt"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/exp/constraints"
)

// eqErr is the format-string for failed equality assertions.
const eqErr = "expected: %v but received: %v"

// orderErr is the format-string for failed ordering assertions.
const orderErr = "expected %v not %s actual %v"

// CheckEqual fails the running case of given T and returns false iff
// expected != actual; otherwise true is returned.
func CheckEqual[V comparable](t *T, expected, actual V) bool {
	if expected == actual {
		return true
	}
	return t.report(Here(1), fmt.Sprintf(eqErr, expected, actual))
}

// CheckLE fails and returns false iff not expected <= actual.
func CheckLE[V constraints.Ordered](t *T, expected, actual V) bool {
	if expected <= actual {
		return true
	}
	return t.report(Here(1), fmt.Sprintf(orderErr, expected, "<=", actual))
}

// CheckLT fails and returns false iff not expected < actual.
func CheckLT[V constraints.Ordered](t *T, expected, actual V) bool {
	if expected < actual {
		return true
	}
	return t.report(Here(1), fmt.Sprintf(orderErr, expected, "<", actual))
}

// CheckGT fails and returns false iff not expected > actual.
func CheckGT[V constraints.Ordered](t *T, expected, actual V) bool {
	if expected > actual {
		return true
	}
	return t.report(Here(1), fmt.Sprintf(orderErr, expected, ">", actual))
}

// CheckGE fails and returns false iff not expected >= actual.
func CheckGE[V constraints.Ordered](t *T, expected, actual V) bool {
	if expected >= actual {
		return true
	}
	return t.report(Here(1), fmt.Sprintf(orderErr, expected, ">=", actual))
}

// Number constrains the types CheckApproxEqual accepts, i.e. types
// supporting subtraction, negation and ordering.
type Number interface {
	constraints.Signed | constraints.Float
}

// CheckApproxEqual passes iff |expected - actual| <= threshold.
// Otherwise it fails with the message of a failed CheckEqual and
// returns false.  Note that a NaN on either side never passes.
func CheckApproxEqual[V Number](t *T, expected, actual, threshold V) bool {
	if abs(expected-actual) <= threshold {
		return true
	}
	return t.report(Here(1), fmt.Sprintf(eqErr, expected, actual))
}

func abs[V Number](v V) V {
	if v < 0 {
		return -v
	}
	return v
}

// Null is the text a missing text buffer is compared as.
const Null = "<null>"

// CheckText compares two text buffers of which either may be missing.
// A nil buffer is replaced by the text Null before the comparison, i.e.
// two nil buffers are equal while a nil and a non-nil buffer report
// Null in the failure message.
func CheckText(t *T, expected, actual *string) bool {
	e, a := Null, Null
	if expected != nil {
		e = *expected
	}
	if actual != nil {
		a = *actual
	}
	if e == a {
		return true
	}
	return t.report(Here(1), fmt.Sprintf(eqErr, e, a))
}

// CheckBytes compares two byte buffers as text like CheckText does,
// i.e. a nil buffer is compared as the text Null.
func CheckBytes(t *T, expected, actual []byte) bool {
	e, a := textOf(expected), textOf(actual)
	if e == a {
		return true
	}
	return t.report(Here(1), fmt.Sprintf(eqErr, e, a))
}

func textOf(bb []byte) string {
	if bb == nil {
		return Null
	}
	return string(bb)
}

// CheckDeepEqual fails iff given values are not equal according to
// cmp.Equal with given options.  It covers values which are not
// comparable by ==, e.g. slices and maps.  The failure message is the
// one of a failed CheckEqual followed by the diff of the values.  NOTE
// cmp.Equal panics on unexported struct fields unless an option handles
// them.
func CheckDeepEqual(
	t *T, expected, actual interface{}, opts ...cmp.Option,
) bool {
	if cmp.Equal(expected, actual, opts...) {
		return true
	}
	return t.report(Here(1), fmt.Sprintf(eqErr, expected, actual)+
		"\n"+cmp.Diff(expected, actual, opts...))
}
