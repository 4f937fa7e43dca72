// Copyright 2026 the Kubegen Authors.
// SPDX-License-Identifier: Apache-2.0

package builder

import "fmt"

// NotFoundError indicates a lookup of an unknown object name.
type NotFoundError struct {
	msg string
}

func NewNotFoundError(format string, args ...interface{}) NotFoundError {
	return NotFoundError{msg: fmt.Sprintf(format, args...)}
}

func (e NotFoundError) Error() string { return e.msg }

// InvalidNameError indicates an object or build-item name outside the
// builder's tables.
type InvalidNameError struct {
	msg string
}

func NewInvalidNameError(format string, args ...interface{}) InvalidNameError {
	return InvalidNameError{msg: fmt.Sprintf(format, args...)}
}

func (e InvalidNameError) Error() string { return e.msg }

// BuildError indicates a build request the builder cannot serve.
type BuildError struct {
	msg string
}

func NewBuildError(format string, args ...interface{}) BuildError {
	return BuildError{msg: fmt.Sprintf(format, args...)}
}

func (e BuildError) Error() string { return e.msg }
