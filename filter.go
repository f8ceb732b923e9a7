// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.
//
// The regex name filters follow the test filters of
// github.com/launchdarkly/sse-contract-tests (framework/filter.go).

package xlite

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Filter decides by a case's name if the case is run.
type Filter func(name string) bool

// RegexFilters selects cases by name: a case runs if it matches any
// MustMatch pattern (or none is defined) and no MustNotMatch pattern.
type RegexFilters struct {
	MustMatch    RegexList
	MustNotMatch RegexList
}

// AsFilter is the Filter of r.
func (r RegexFilters) AsFilter(name string) bool {
	if r.MustNotMatch.Matches(name) {
		return false
	}
	return !r.MustMatch.IsDefined() || r.MustMatch.Matches(name)
}

// IsDefined returns true if any pattern is set.
func (r RegexFilters) IsDefined() bool {
	return r.MustMatch.IsDefined() || r.MustNotMatch.IsDefined()
}

// RegexList is a list of regular expressions which is filled by
// repeated command line flags; it implements pflag's Value.
type RegexList []*regexp.Regexp

// String returns the quoted patterns joined by " or ".
func (rl RegexList) String() string {
	quoted := make([]string, len(rl))
	for i, rx := range rl {
		quoted[i] = strconv.Quote(rx.String())
	}
	return strings.Join(quoted, " or ")
}

// Set compiles given pattern and appends it to the list.
func (rl *RegexList) Set(pattern string) error {
	rx, err := regexp.Compile(pattern)
	if err != nil {
		return fmt.Errorf("invalid regex: %w", err)
	}
	*rl = append(*rl, rx)
	return nil
}

// Type names the flag value type in usage messages.
func (rl *RegexList) Type() string { return "regex" }

// IsDefined returns true if the list has at least one pattern.
func (rl RegexList) IsDefined() bool { return len(rl) > 0 }

// Matches returns true if any pattern of the list matches given name.
func (rl RegexList) Matches(name string) bool {
	for _, rx := range rl {
		if rx.MatchString(name) {
			return true
		}
	}
	return false
}
