// Copyright 2026 the Kubegen Authors.
// SPDX-License-Identifier: Apache-2.0

package data

// DisabledError is returned when a disabled value is resolved with
// raiseIfDisabled set.
type DisabledError struct{}

func NewDisabledError() DisabledError { return DisabledError{} }

func (e DisabledError) Error() string {
	return "Cannot get data value: data is disabled"
}
