// Copyright 2026 the Kubegen Authors.
// SPDX-License-Identifier: Apache-2.0

// Package ui is a thin abstraction over user output, so generated files
// and diagnostics can be printed to a tty or captured in tests.
package ui

import (
	"io"
)

type UI interface {
	Printf(str string, args ...interface{})
	Debugf(str string, args ...interface{})
	Warnf(str string, args ...interface{})
	DebugWriter() io.Writer
}
