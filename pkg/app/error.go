// Copyright 2026 the Kubegen Authors.
// SPDX-License-Identifier: Apache-2.0

package app

import "fmt"

// InvalidParamError indicates an App was constructed with an invalid
// parameter.
type InvalidParamError struct {
	msg string
}

func NewInvalidParamError(format string, args ...interface{}) InvalidParamError {
	return InvalidParamError{msg: fmt.Sprintf(format, args...)}
}

func (e InvalidParamError) Error() string { return e.msg }
