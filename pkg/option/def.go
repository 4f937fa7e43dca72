// Copyright 2026 the Kubegen Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package option declares builder option schemas and resolves option values.

A schema is a tree of nested maps whose leaves are *Def. Concrete option
values set by users may override schema leaves, reference the root options
namespace (Root), or compute their value on demand (Value).
*/
package option

import (
	"reflect"

	"github.com/kubegen/kubegen/pkg/merge"
	"github.com/kubegen/kubegen/pkg/orderedmap"
	"github.com/kubegen/kubegen/pkg/yamlstyle"
)

// Format documents the advanced shape of an option value. Builders use it
// to decide whether a value is a plain tree or a typed reference that needs
// special handling.
type Format int

const (
	FormatAny Format = iota
	FormatEnv
	FormatVolume
)

// IsKData reports whether the format marks a Kubernetes data reference.
func (f Format) IsKData() bool { return f == FormatEnv || f == FormatVolume }

// Def is an option definition, the leaf of a schema tree.
type Def struct {
	Required     bool
	DefaultValue interface{}
	Format       Format
	AllowedTypes []Type
}

// Type is a named runtime-type predicate used by AllowedTypes checks.
type Type interface {
	Matches(value interface{}) bool
	String() string
}

type typePredicate struct {
	name    string
	matches func(value interface{}) bool
}

func (t typePredicate) Matches(value interface{}) bool { return t.matches(value) }
func (t typePredicate) String() string                 { return t.name }

var (
	String = Type(typePredicate{"string", func(v interface{}) bool {
		switch v.(type) {
		case string, yamlstyle.String:
			return true
		}
		return false
	}})

	Int = Type(typePredicate{"integer", func(v interface{}) bool {
		switch v.(type) {
		case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
			return true
		}
		return false
	}})

	Float = Type(typePredicate{"float", func(v interface{}) bool {
		switch v.(type) {
		case float32, float64:
			return true
		}
		return false
	}})

	Bool = Type(typePredicate{"boolean", func(v interface{}) bool {
		_, ok := v.(bool)
		return ok
	}})

	Map = Type(typePredicate{"map", func(v interface{}) bool {
		_, ok := v.(*orderedmap.Map)
		return ok
	}})

	Array = Type(typePredicate{"array", func(v interface{}) bool {
		_, ok := v.([]interface{})
		return ok
	}})
)

// TypeOf builds a predicate matching the exact runtime type of sample.
// Useful for custom marker types that have no predefined predicate.
func TypeOf(sample interface{}) Type {
	sampleType := reflect.TypeOf(sample)
	return typePredicate{merge.TypeName(sample), func(v interface{}) bool {
		return reflect.TypeOf(v) == sampleType
	}}
}
