// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package selftest declares the cases the harness tests itself with.
// Importing it adds its cases to the default registry.  Each case
// counts the failures it provokes on purpose; after a run of the
// default registry ExpectedFailures must equal the number of reported
// failures.  Cases are declared in all three ways the harness offers:
// by xlite.Test, by xlite.Register of a Runner and by xlite.AddSuite.
package selftest

var expected int

func expectFailure() { expected++ }

// ExpectedFailures returns the number of failures the cases provoked
// on purpose since the last Reset.
func ExpectedFailures() int { return expected }

// Reset zeroes the expected failures before a new run.
func Reset() { expected = 0 }

func ptr(s string) *string { return &s }
