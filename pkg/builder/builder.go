// Copyright 2026 the Kubegen Authors.
// SPDX-License-Identifier: Apache-2.0

// Package builder defines the contract for manifest builders and the
// shared plumbing they embed.
package builder

import (
	"github.com/kubegen/kubegen/pkg/object"
	"github.com/kubegen/kubegen/pkg/patch"
)

// Builder generates Kubernetes object trees for a set of named builds.
// Implementations typically embed Base and provide BuildNames and
// InternalBuild.
type Builder interface {
	// OptionGet resolves a builder option by dotted name.
	OptionGet(name string) (interface{}, error)

	// BuildNames lists the builds this builder can generate.
	BuildNames() []string

	// BuildNamesRequired lists the builds that must be generated for the
	// builder's output to function.
	BuildNamesRequired() []string

	// BuildItemNames lists the object names the builds can emit.
	BuildItemNames() []string

	// InternalBuild generates the items of a single build, without
	// applying patches.
	InternalBuild(buildName string) ([]interface{}, error)

	// Patches returns the filtered patches applied after building.
	Patches() []patch.FilterPatch
}

// Base carries the object-name table and patch registration shared by
// builders. Embed it and override what the build needs.
type Base struct {
	objectNames map[string]string
	patches     []patch.FilterPatch
}

// NewBase copies names into a fresh object-name table.
func NewBase(names map[string]string) *Base {
	b := &Base{objectNames: map[string]string{}}
	b.ObjectNamesUpdate(names)
	return b
}

// ObjectName returns the configured name for an object the builder emits.
func (b *Base) ObjectName(name string) (string, error) {
	value, ok := b.objectNames[name]
	if !ok {
		return "", NewNotFoundError("Object name %q not found", name)
	}
	return value, nil
}

// ObjectNames returns a copy of the object-name table.
func (b *Base) ObjectNames() map[string]string {
	names := map[string]string{}
	for name, value := range b.objectNames {
		names[name] = value
	}
	return names
}

// ObjectNamesUpdate sets names, adding keys as needed.
func (b *Base) ObjectNamesUpdate(names map[string]string) {
	for name, value := range names {
		b.objectNames[name] = value
	}
}

// ObjectNamesChange overrides names that are already in the table.
func (b *Base) ObjectNamesChange(names map[string]string) error {
	for name := range names {
		if _, ok := b.objectNames[name]; !ok {
			return NewInvalidNameError("Unknown object name %q", name)
		}
	}
	for name, value := range names {
		b.objectNames[name] = value
	}
	return nil
}

// SetPatches registers the filtered patches applied after building.
func (b *Base) SetPatches(patches []patch.FilterPatch) {
	b.patches = patches
}

func (b *Base) Patches() []patch.FilterPatch { return b.patches }

func (b *Base) BuildNamesRequired() []string { return nil }

func (b *Base) BuildItemNames() []string { return nil }

// Build generates the named builds and applies the builder's patches over
// the combined items.
func Build(b Builder, buildNames ...string) ([]interface{}, error) {
	known := b.BuildNames()

	var items []interface{}
	for _, buildName := range buildNames {
		if !containsName(known, buildName) {
			return nil, NewBuildError(`Unknown build name: "%s"`, buildName)
		}
		built, err := b.InternalBuild(buildName)
		if err != nil {
			return nil, err
		}
		items = append(items, built...)
	}

	return patch.FilterApply(items, b.Patches())
}

// BuildAll generates every build the builder knows.
func BuildAll(b Builder) ([]interface{}, error) {
	return Build(b, b.BuildNames()...)
}

// EnsureBuildNames reports whether buildNames covers every required build.
func EnsureBuildNames(b Builder, buildNames ...string) bool {
	for _, required := range b.BuildNamesRequired() {
		if !containsName(buildNames, required) {
			return false
		}
	}
	return true
}

// CheckObjectMustHave verifies that items contains an Object for every
// name in names. source names the build being checked, for the error
// message.
func CheckObjectMustHave(items []interface{}, names []string, source string) error {
	for _, mustHave := range names {
		found := false
		for _, item := range items {
			if obj, ok := item.(*object.Object); ok && obj.Name == mustHave {
				found = true
				break
			}
		}
		if !found {
			return NewInvalidNameError("Missing item %q in %q", mustHave, source)
		}
	}
	return nil
}

func containsName(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}
