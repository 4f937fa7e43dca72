// Copyright 2026 the Kubegen Authors.
// SPDX-License-Identifier: Apache-2.0

package option

import (
	"fmt"
	"strings"

	"github.com/kubegen/kubegen/pkg/merge"
)

// UnknownOptionError reports an option set outside the defined schema.
type UnknownOptionError struct {
	Name string
}

func NewUnknownOptionError(name string) UnknownOptionError {
	return UnknownOptionError{Name: name}
}

func (e UnknownOptionError) Error() string {
	return fmt.Sprintf("Unknown option: %q", e.Name)
}

// NotFoundError reports a dotted path that does not resolve to a value.
type NotFoundError struct {
	Name string
}

func NewNotFoundError(name string) NotFoundError {
	return NotFoundError{Name: name}
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("Could not find option %q", e.Name)
}

// InvalidTypeError reports a resolved value that violates its definition.
type InvalidTypeError struct {
	msg string
}

func NewInvalidTypeError(msg string, args ...interface{}) InvalidTypeError {
	return InvalidTypeError{msg: fmt.Sprintf(msg, args...)}
}

func NewRequiredOptionError(name string) InvalidTypeError {
	return NewInvalidTypeError("Option %q is required", name)
}

func NewTypeNotAllowedError(name string, value interface{}, def *Def) InvalidTypeError {
	names := []string{}
	if !def.Required {
		names = append(names, `"null"`)
	}
	for _, t := range def.AllowedTypes {
		names = append(names, fmt.Sprintf("%q", t.String()))
	}
	return NewInvalidTypeError("Type %q for option %q is not in the allowed types (%s)",
		merge.TypeName(value), name, strings.Join(names, ", "))
}

func (e InvalidTypeError) Error() string { return e.msg }

// InvalidDefinitionError reports a schema leaf that is not a definition.
type InvalidDefinitionError struct {
	Definition interface{}
}

func NewInvalidDefinitionError(definition interface{}) InvalidDefinitionError {
	return InvalidDefinitionError{Definition: definition}
}

func (e InvalidDefinitionError) Error() string {
	return fmt.Sprintf("Invalid option definition type: \"%v\"", e.Definition)
}
