// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package xlite

import (
	"fmt"
	"runtime"
)

// Failure records everything knowable about a failed assertion: its
// message, the name of the case it failed in and the source location
// of the assertion's call.  A Failure is a value; it is created once per
// failing assertion and handed over to a Result.
type Failure struct {
	Message    string
	TestName   string
	FileName   string
	LineNumber int
}

// failureFmt is the format-string of a failure's report line.
const failureFmt = "%s:%d: test \"%s\" failed"

// String renders given failure the way the default result reports it:
//
//	<file>:<line>: test "<message>" failed
func (f Failure) String() string {
	return fmt.Sprintf(failureFmt, f.FileName, f.LineNumber, f.Message)
}

// Location is the source location of an assertion's call site.
type Location struct {
	File string
	Line int
}

// unknownFile is reported if a call site can't be determined.
const unknownFile = "???"

// Here returns the location of the function call skip frames above
// Here's caller, i.e. Here(0) is the location where Here was called
// while Here(1) is the location where the function calling Here was
// called.
func Here(skip int) Location {
	_, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return Location{File: unknownFile}
	}
	return Location{File: file, Line: line}
}
