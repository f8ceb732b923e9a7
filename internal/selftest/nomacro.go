// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package selftest

import "github.com/slukits/xlite"

// The cases of checks.go declared as Runner implementations.

type failTest struct{}

func (failTest) Run(t *xlite.T) {
	t.Fail("Expected failure")
	expectFailure()
}

var _ = xlite.Register("XLiteTest::FailTest", failTest{})

type checkTest struct{}

func (checkTest) Run(t *xlite.T) {
	t.Check(false, "expected false")
	expectFailure()
	t.Check(true, "expect no error")
}

var _ = xlite.Register("XLiteTest::CheckTest", checkTest{})

// checkEqualTest mixes explicit locations with the generic checks.
type checkEqualTest struct{}

func (checkEqualTest) Run(t *xlite.T) {
	actual := "The rain in Spain"
	t.CheckAt(xlite.Here(0), "The Rain in Spain" == actual,
		"expected: The Rain in Spain but received: "+actual)
	expectFailure()
	xlite.CheckEqual(t, "The rain in Spain", actual)
}

var _ = xlite.Register("XLiteTest::CheckEqualTest", checkEqualTest{})
