// Copyright 2026 the Kubegen Authors.
// SPDX-License-Identifier: Apache-2.0

package yamlgen

import "fmt"

// RenderError reports a value that cannot be rendered to YAML.
type RenderError struct {
	msg string
}

func NewRenderError(msg string, args ...interface{}) RenderError {
	return RenderError{msg: fmt.Sprintf(msg, args...)}
}

func (e RenderError) Error() string { return e.msg }
