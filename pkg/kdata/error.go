// Copyright 2026 the Kubegen Authors.
// SPDX-License-Identifier: Apache-2.0

package kdata

import "fmt"

// InvalidParamError reports a KData reference that the caller cannot use.
type InvalidParamError struct {
	msg string
}

func NewInvalidParamError(msg string, args ...interface{}) InvalidParamError {
	return InvalidParamError{msg: fmt.Sprintf(msg, args...)}
}

func (e InvalidParamError) Error() string { return e.msg }
