// Copyright 2026 the Kubegen Authors.
// SPDX-License-Identifier: Apache-2.0

package output

import "fmt"

// WriteError indicates a file could not be rendered or written.
type WriteError struct {
	msg string
}

func NewWriteError(format string, args ...interface{}) WriteError {
	return WriteError{msg: fmt.Sprintf(format, args...)}
}

func (e WriteError) Error() string { return e.msg }
