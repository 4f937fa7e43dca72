// Copyright 2026 the Kubegen Authors.
// SPDX-License-Identifier: Apache-2.0

package patch

import "fmt"

// InvalidPatchError reports a patch that cannot be applied: a malformed
// pointer, an unresolvable path, or a failed test operation.
type InvalidPatchError struct {
	msg string
}

func NewInvalidPatchError(msg string, args ...interface{}) InvalidPatchError {
	return InvalidPatchError{msg: fmt.Sprintf(msg, args...)}
}

func (e InvalidPatchError) Error() string { return e.msg }
