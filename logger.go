// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.
//
// The null and capturing loggers follow the test loggers of
// github.com/launchdarkly/sse-contract-tests (framework/logger.go).

package xlite

import (
	"fmt"
	"sync"
)

// Logger is the debug logger of a Registry.  A *log.Logger satisfies
// it.
type Logger interface {
	Printf(format string, args ...interface{})
}

type nullLogger struct{}

func (nullLogger) Printf(string, ...interface{}) {}

// NullLogger returns a Logger discarding everything.
func NullLogger() Logger { return nullLogger{} }

// CapturingLogger keeps the formatted messages logged to it in memory,
// e.g. to inspect what a registry run logged.  The zero value is ready
// to use.
type CapturingLogger struct {
	mutex    sync.Mutex
	messages []string
}

// Printf appends the formatted message.
func (l *CapturingLogger) Printf(format string, args ...interface{}) {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	l.messages = append(l.messages, fmt.Sprintf(format, args...))
}

// Messages returns a copy of the logged messages in logging order.
func (l *CapturingLogger) Messages() []string {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	return append([]string{}, l.messages...)
}
