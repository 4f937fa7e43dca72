// Copyright 2026 the Kubegen Authors.
// SPDX-License-Identifier: Apache-2.0

package kresource

import "fmt"

// NotFoundError reports a resource name not registered in the database.
type NotFoundError struct {
	Kind string
	Name string
}

func NewNotFoundError(kind, name string) NotFoundError {
	return NotFoundError{Kind: kind, Name: name}
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("Could not find %s %q", e.Kind, e.Name)
}

// InvalidParamError reports a profile configuration problem.
type InvalidParamError struct {
	msg string
}

func NewInvalidParamError(msg string, args ...interface{}) InvalidParamError {
	return InvalidParamError{msg: fmt.Sprintf(msg, args...)}
}

func (e InvalidParamError) Error() string { return e.msg }
