// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package selftest

import (
	"math"

	"github.com/slukits/xlite"
)

var _ = xlite.Test("XLiteTest", "Fail", func(t *xlite.T) {
	t.Fail("Expected failure")
	expectFailure()
})

var _ = xlite.Test("XLiteTest", "Check", func(t *xlite.T) {
	t.Check(false)
	expectFailure()
	t.Check(true)
})

var _ = xlite.Test("XLiteTest", "CheckEqual", func(t *xlite.T) {
	actual := "The rain in Spain"
	xlite.CheckEqual(t, "The Rain in Spain", actual)
	expectFailure()
	xlite.CheckEqual(t, "The rain in Spain", actual)
})

var _ = xlite.Test("XLiteTest", "CheckApproxEqual", func(t *xlite.T) {
	xlite.CheckApproxEqual(t, 4.0, math.Sqrt(16.0), 1.0e-15)
	xlite.CheckApproxEqual(t, 2.5, 3.0, 1.0)
	xlite.CheckApproxEqual(t, 2.5, 3.0, 0.1)
	expectFailure()
})

var _ = xlite.Test("XLiteTest", "CheckText", func(t *xlite.T) {
	actual := "aardvark"
	xlite.CheckText(t, ptr("aardvark"), &actual)
	xlite.CheckText(t, ptr("giraffe"), &actual)
	expectFailure()
	xlite.CheckText(t, nil, nil)
	xlite.CheckText(t, nil, &actual)
	expectFailure()
})
