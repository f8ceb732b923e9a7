// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package selftest

import "github.com/slukits/xlite"

// Ordering groups the cases for the ordering, byte buffer and
// structural checks.
type Ordering struct{}

var _ = xlite.AddSuite(&Ordering{})

func (s *Ordering) Less_or_equal(t *xlite.T) {
	xlite.CheckLE(t, 1, 1)
	xlite.CheckLE(t, 2, 1)
	expectFailure()
}

func (s *Ordering) Less(t *xlite.T) {
	xlite.CheckLT(t, 1, 2)
	xlite.CheckLT(t, 1, 1)
	expectFailure()
}

func (s *Ordering) Greater(t *xlite.T) {
	xlite.CheckGT(t, "b", "a")
	xlite.CheckGT(t, 1.0, 2.0)
	expectFailure()
}

func (s *Ordering) Greater_or_equal(t *xlite.T) {
	xlite.CheckGE(t, 2, 2)
	xlite.CheckGE(t, 1, 2)
	expectFailure()
}

func (s *Ordering) Bytes(t *xlite.T) {
	xlite.CheckBytes(t, nil, nil)
	xlite.CheckBytes(t, []byte("a"), nil)
	expectFailure()
}

func (s *Ordering) Deep_equal(t *xlite.T) {
	xlite.CheckDeepEqual(t, []int{1, 2}, []int{1, 2})
	xlite.CheckDeepEqual(t,
		map[string]int{"a": 1}, map[string]int{"a": 2})
	expectFailure()
}
