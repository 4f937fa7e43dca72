// Copyright 2026 the Kubegen Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package kdata marks option values that reference Kubernetes value sources
(ConfigMap items, Secret items, literal values) and expands them into the
container env / pod volume trees Kubernetes expects.
*/
package kdata

import (
	"github.com/kubegen/kubegen/pkg/orderedmap"
)

// KData is a typed reference to a Kubernetes value source. The set of
// variants is closed.
type KData interface {
	kdata()
}

// Value is a literal value.
type Value struct {
	Value interface{}
}

// ConfigMap references one item of a ConfigMap.
type ConfigMap struct {
	Name string
	Key  string
}

// Secret references one item of a Secret.
type Secret struct {
	Name string
	Key  string
}

// ConfigMapManual references a whole ConfigMap, with an optional tree
// merged over the generated reference.
type ConfigMapManual struct {
	Name  string
	Merge *orderedmap.Map
}

// SecretManual references a whole Secret, with an optional tree merged
// over the generated reference.
type SecretManual struct {
	Name  string
	Merge *orderedmap.Map
}

func (Value) kdata()           {}
func (ConfigMap) kdata()       {}
func (Secret) kdata()          {}
func (ConfigMapManual) kdata() {}
func (SecretManual) kdata()    {}

// IsKData reports whether value is a KData reference. When allowed is
// non-empty, a KData outside the allowed set is an error.
func IsKData(value interface{}, allowed ...KData) (bool, error) {
	kd, ok := value.(KData)
	if !ok {
		return false, nil
	}
	if len(allowed) == 0 {
		return true, nil
	}
	for _, al := range allowed {
		if sameVariant(kd, al) {
			return true, nil
		}
	}
	return false, NewInvalidParamError("KData type %T not allowed", value)
}

func sameVariant(a, b KData) bool {
	switch a.(type) {
	case Value:
		_, ok := b.(Value)
		return ok
	case ConfigMap:
		_, ok := b.(ConfigMap)
		return ok
	case Secret:
		_, ok := b.(Secret)
		return ok
	case ConfigMapManual:
		_, ok := b.(ConfigMapManual)
		return ok
	default:
		_, ok := b.(SecretManual)
		return ok
	}
}
