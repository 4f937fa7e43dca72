// Copyright 2026 the Kubegen Authors.
// SPDX-License-Identifier: Apache-2.0

package patch

import (
	"github.com/kubegen/kubegen/pkg/object"
)

// Filter decides whether a generated item should receive a set of patches.
type Filter interface {
	IsInclude(item interface{}) bool
}

// FilterFunc adapts a function into a Filter.
type FilterFunc func(item interface{}) bool

func (f FilterFunc) IsInclude(item interface{}) bool { return f(item) }

// ObjectFilter filters by object identity. All the identity conditions set
// must hold; when Funcs is set, at least one of them must accept the item.
type ObjectFilter struct {
	Names     []string
	Sources   []string
	Instances []string
	Funcs     []func(item interface{}) bool
}

func (f ObjectFilter) IsInclude(item interface{}) bool {
	obj, isObject := item.(*object.Object)
	if !isObject && (f.Names != nil || f.Sources != nil || f.Instances != nil) {
		// Identity filters cannot match a raw tree.
		return false
	}

	if isObject {
		if f.Names != nil && !contains(f.Names, obj.Name) {
			return false
		}
		if f.Sources != nil && !contains(f.Sources, obj.Source) {
			return false
		}
		if f.Instances != nil && !contains(f.Instances, obj.Instance) {
			return false
		}
	}

	if f.Funcs != nil {
		for _, fn := range f.Funcs {
			if fn(item) {
				return true
			}
		}
		return false
	}

	return true
}

func contains(list []string, value string) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}
	return false
}

// FilterCheck reports whether at least one filter accepts the item. A nil
// filter list accepts everything.
func FilterCheck(item interface{}, filters []Filter) bool {
	if filters == nil {
		return true
	}
	for _, f := range filters {
		if f.IsInclude(item) {
			return true
		}
	}
	return false
}

// FilterPatch is a set of patches applied to the items accepted by at
// least one of its filters.
type FilterPatch struct {
	Filters []Filter
	Patches []Patch
}

// FilterApply runs each FilterPatch over items, patching the accepted ones
// in place, and returns items. Object items are patched through their
// Value; raw trees are patched directly.
func FilterApply(items []interface{}, filterPatches []FilterPatch) ([]interface{}, error) {
	for i, item := range items {
		for _, fp := range filterPatches {
			if !FilterCheck(item, fp.Filters) {
				continue
			}
			if obj, ok := item.(*object.Object); ok {
				newValue, err := Apply(obj.Value, fp.Patches)
				if err != nil {
					return nil, err
				}
				obj.Value = newValue
			} else {
				newItem, err := Apply(item, fp.Patches)
				if err != nil {
					return nil, err
				}
				items[i] = newItem
				item = newItem
			}
		}
	}
	return items, nil
}
