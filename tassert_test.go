// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package xlite_test

import (
	"math"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slukits/xlite"
)

// run runs given body as case "fx" and returns its failures.
func run(body func(t *xlite.T)) []xlite.Failure {
	c := &xlite.Collector{}
	xlite.New("fx", xlite.RunnerFunc(body)).Run(c)
	return c.Failures()
}

// messages returns the messages of given failures.
func messages(ff []xlite.Failure) []string {
	mm := []string{}
	for _, f := range ff {
		mm = append(mm, f.Message)
	}
	return mm
}

func Test_fail_reports_given_description_at_call_site(t *testing.T) {
	var line int
	var ok bool
	ff := run(func(x *xlite.T) {
		_, _, line, _ = runtime.Caller(0)
		ok = x.Fail("Expected failure")
	})
	require.Len(t, ff, 1)
	assert.False(t, ok)
	assert.Equal(t, "Expected failure", ff[0].Message)
	assert.Equal(t, "fx", ff[0].TestName)
	assert.Equal(t, "tassert_test.go", filepath.Base(ff[0].FileName))
	assert.Equal(t, line+1, ff[0].LineNumber)
}

func Test_check_fails_iff_condition_is_false(t *testing.T) {
	var passed, failed bool
	ff := run(func(x *xlite.T) {
		passed = x.Check(true)
		failed = x.Check(false, "expected false")
	})
	assert.True(t, passed)
	assert.False(t, failed)
	assert.Equal(t, []string{"expected false"}, messages(ff))
}

func Test_at_variants_report_given_location(t *testing.T) {
	loc := xlite.Location{File: "helper.go", Line: 7}
	ff := run(func(x *xlite.T) {
		x.FailAt(loc, "failed at")
		x.CheckAt(loc, true, "passes")
		x.CheckAt(loc, false, "checked at")
	})
	require.Len(t, ff, 2)
	for _, f := range ff {
		assert.Equal(t, "helper.go", f.FileName)
		assert.Equal(t, 7, f.LineNumber)
	}
	assert.Equal(t, []string{"failed at", "checked at"}, messages(ff))
}

func Test_t_counts_its_failures(t *testing.T) {
	var failed int
	var res xlite.Result
	c := &xlite.Collector{}
	xlite.New("fx", xlite.RunnerFunc(func(x *xlite.T) {
		x.Fail("one")
		xlite.CheckEqual(x, "a", "b")
		failed, res = x.Failed(), x.Result()
	})).Run(c)
	assert.Equal(t, 2, failed)
	assert.Same(t, c, res)
}

func Test_fail_check_and_check_equal_report_three_failures(t *testing.T) {
	ff := run(func(x *xlite.T) {
		x.Fail("Expected failure")
		x.Check(false, "false")
		xlite.CheckEqual(x, 1, 2)
		x.Check(true)
	})
	assert.Equal(t, []string{
		"Expected failure", "false", "expected: 1 but received: 2",
	}, messages(ff))
}

func Test_check_equal(t *testing.T) {
	var ok []bool
	ff := run(func(x *xlite.T) {
		actual := "The rain in Spain"
		ok = append(ok, xlite.CheckEqual(x, "The Rain in Spain", actual))
		ok = append(ok, xlite.CheckEqual(x, "The rain in Spain", actual))
	})
	assert.Equal(t, []bool{false, true}, ok)
	assert.Equal(t, []string{
		"expected: The Rain in Spain but received: The rain in Spain",
	}, messages(ff))
}

func Test_ordering_checks(t *testing.T) {
	var ok []bool
	ff := run(func(x *xlite.T) {
		ok = append(ok,
			xlite.CheckLE(x, 1, 1), xlite.CheckLE(x, 2, 1),
			xlite.CheckLT(x, 1, 2), xlite.CheckLT(x, 1, 1),
			xlite.CheckGT(x, "b", "a"), xlite.CheckGT(x, 1.5, 2.5),
			xlite.CheckGE(x, 2, 2), xlite.CheckGE(x, 1, 2),
		)
	})
	assert.Equal(t, []bool{true, false, true, false, true, false, true,
		false}, ok)
	assert.Equal(t, []string{
		"expected 2 not <= actual 1",
		"expected 1 not < actual 1",
		"expected 1.5 not > actual 2.5",
		"expected 1 not >= actual 2",
	}, messages(ff))
}

func Test_check_approx_equal(t *testing.T) {
	var ok []bool
	ff := run(func(x *xlite.T) {
		ok = append(ok,
			xlite.CheckApproxEqual(x, 4.0, math.Sqrt(16.0), 1.0e-15),
			xlite.CheckApproxEqual(x, 2.5, 3.0, 1.0),
			xlite.CheckApproxEqual(x, 2.5, 3.0, 0.1),
			xlite.CheckApproxEqual(x, 3, 5, 2),
			xlite.CheckApproxEqual(x, 5, 3, 1),
			xlite.CheckApproxEqual(x, math.NaN(), math.NaN(), 1),
		)
	})
	assert.Equal(t, []bool{true, true, false, true, false, false}, ok)
	assert.Equal(t, []string{
		"expected: 2.5 but received: 3",
		"expected: 5 but received: 3",
		"expected: NaN but received: NaN",
	}, messages(ff))
}

func text(s string) *string { return &s }

func Test_check_text_treats_missing_text_as_null(t *testing.T) {
	var ok []bool
	ff := run(func(x *xlite.T) {
		actual := "aardvark"
		ok = append(ok,
			xlite.CheckText(x, text("aardvark"), &actual),
			xlite.CheckText(x, text("giraffe"), &actual),
			xlite.CheckText(x, nil, nil),
			xlite.CheckText(x, nil, &actual),
			xlite.CheckText(x, &actual, nil),
			xlite.CheckText(x, text(xlite.Null), nil),
		)
	})
	assert.Equal(t, []bool{true, false, true, false, false, true}, ok)
	assert.Equal(t, []string{
		"expected: giraffe but received: aardvark",
		"expected: <null> but received: aardvark",
		"expected: aardvark but received: <null>",
	}, messages(ff))
}

func Test_check_bytes_compares_as_text(t *testing.T) {
	var ok []bool
	ff := run(func(x *xlite.T) {
		ok = append(ok,
			xlite.CheckBytes(x, []byte("a"), []byte("a")),
			xlite.CheckBytes(x, nil, nil),
			xlite.CheckBytes(x, []byte{}, []byte{}),
			xlite.CheckBytes(x, []byte("a"), nil),
		)
	})
	assert.Equal(t, []bool{true, true, true, false}, ok)
	assert.Equal(t, []string{"expected: a but received: <null>"},
		messages(ff))
}

func Test_check_deep_equal_reports_diff(t *testing.T) {
	var ok []bool
	ff := run(func(x *xlite.T) {
		ok = append(ok,
			xlite.CheckDeepEqual(x, []int{1, 2}, []int{1, 2}),
			xlite.CheckDeepEqual(x,
				map[string]int{"a": 1}, map[string]int{"a": 2}),
		)
	})
	assert.Equal(t, []bool{true, false}, ok)
	require.Len(t, ff, 1)
	assert.Contains(t, ff[0].Message,
		"expected: map[a:1] but received: map[a:2]\n")
	assert.Contains(t, ff[0].Message, "-")
	assert.Contains(t, ff[0].Message, "+")
}

func Test_checks_report_their_call_site(t *testing.T) {
	var lines []int
	ff := run(func(x *xlite.T) {
		_, _, line, _ := runtime.Caller(0)
		xlite.CheckEqual(x, 1, 2)
		xlite.CheckLT(x, 2, 1)
		xlite.CheckApproxEqual(x, 1, 3, 1)
		xlite.CheckText(x, nil, text("a"))
		xlite.CheckBytes(x, nil, []byte("a"))
		xlite.CheckDeepEqual(x, []int{1}, []int{2})
		lines = []int{line + 1, line + 2, line + 3, line + 4, line + 5,
			line + 6}
	})
	require.Len(t, ff, len(lines))
	for i, f := range ff {
		assert.Equal(t, "tassert_test.go", filepath.Base(f.FileName))
		assert.Equal(t, lines[i], f.LineNumber)
	}
}
