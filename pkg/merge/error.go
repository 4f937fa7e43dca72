// Copyright 2026 the Kubegen Authors.
// SPDX-License-Identifier: Apache-2.0

package merge

import (
	"fmt"

	"github.com/kubegen/kubegen/pkg/orderedmap"
	"github.com/kubegen/kubegen/pkg/yamlstyle"
)

// ConflictError reports an irreconcilable merge of two values at a path.
type ConflictError struct {
	Path         Path
	BaseType     string
	IncomingType string
}

func NewConflictError(path Path, base, incoming interface{}) *ConflictError {
	return &ConflictError{Path: path, BaseType: TypeName(base), IncomingType: TypeName(incoming)}
}

func (e *ConflictError) Error() string {
	if len(e.Path) > 0 {
		return fmt.Sprintf("Type conflict at '%s': %s, %s", e.Path, e.BaseType, e.IncomingType)
	}
	return fmt.Sprintf("Type conflict: %s, %s", e.BaseType, e.IncomingType)
}

// UnknownKeyError reports a key that a non-creating merge refused to create.
type UnknownKeyError struct {
	Path Path
}

func NewUnknownKeyError(path Path) *UnknownKeyError {
	return &UnknownKeyError{Path: path}
}

func (e *UnknownKeyError) Error() string {
	return fmt.Sprintf("Unknown option: \"%s\"", e.Path)
}

// TypeName returns the descriptor used in merge diagnostics. Styled strings
// report as plain strings since they merge as one family.
func TypeName(v interface{}) string {
	switch v.(type) {
	case nil:
		return "null"
	case *orderedmap.Map:
		return "map"
	case []interface{}:
		return "array"
	case string, yamlstyle.String:
		return "string"
	case bool:
		return "boolean"
	case int, int32, int64, uint, uint32, uint64:
		return "integer"
	case float32, float64:
		return "float"
	default:
		return fmt.Sprintf("%T", v)
	}
}
