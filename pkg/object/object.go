// Copyright 2026 the Kubegen Authors.
// SPDX-License-Identifier: Apache-2.0

// Package object wraps a generated Kubernetes document with the identity
// used to locate it for patching and output.
package object

import (
	"github.com/kubegen/kubegen/pkg/data"
)

// Object is a single Kubernetes document (Pod, StatefulSet, Secret, ...)
// tagged with lookup identity. Name locates the object, Source is normally
// the builder name and Instance the builder basename.
type Object struct {
	Name     string
	Source   string
	Instance string

	Value interface{}
}

// New wraps value, cleaning it of conditional wrappers in place.
func New(value interface{}, name, source, instance string) (*Object, error) {
	cleaned, err := data.Clean(value, true)
	if err != nil {
		return nil, err
	}
	return &Object{Name: name, Source: source, Instance: instance, Value: cleaned}, nil
}
