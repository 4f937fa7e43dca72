// Copyright 2026 the Kubegen Authors.
// SPDX-License-Identifier: Apache-2.0

package configfile

import "fmt"

// NotSupportedError reports an output no renderer can handle.
type NotSupportedError struct {
	msg string
}

func NewNotSupportedError(msg string, args ...interface{}) NotSupportedError {
	return NotSupportedError{msg: fmt.Sprintf(msg, args...)}
}

func (e NotSupportedError) Error() string { return e.msg }
