// Copyright 2026 the Kubegen Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package data provides conditional values: wrappers that carry a payload and
an enabled flag. Disabled values are semantically absent and are removed
from any containing tree by Clean before rendering.

The set of variants is closed: DisabledData, ValueData, MergeData and
ConfigDataMerge. Values are immutable after construction.
*/
package data

import (
	"github.com/kubegen/kubegen/pkg/merge"
	"github.com/kubegen/kubegen/pkg/orderedmap"
)

// Data is a value that may be disabled. The payload returned by GetValue
// may itself be a Data, a scalar, or a tree containing more Data nodes.
type Data interface {
	IsEnabled() bool
	GetValue() (interface{}, error)
	DeepCopyAsInterface() interface{}

	conditionalData()
}

// DisabledData is the always-disabled sentinel.
type DisabledData struct{}

func (DisabledData) IsEnabled() bool                    { return false }
func (DisabledData) GetValue() (interface{}, error)     { return nil, nil }
func (d DisabledData) DeepCopyAsInterface() interface{} { return d }
func (DisabledData) conditionalData()                   {}

// ValueData is a plain conditional holder.
type ValueData struct {
	Value   interface{}
	Enabled bool
}

// NewValueData wraps value; disabledIfNil forces the wrapper off when the
// value is nil.
func NewValueData(value interface{}, enabled bool, disabledIfNil bool) ValueData {
	if disabledIfNil && value == nil {
		enabled = false
	}
	return ValueData{Value: value, Enabled: enabled}
}

func (d ValueData) IsEnabled() bool                { return d.Enabled }
func (d ValueData) GetValue() (interface{}, error) { return d.Value, nil }
func (d ValueData) DeepCopyAsInterface() interface{} {
	return ValueData{Value: orderedmap.DeepCopyTree(d.Value), Enabled: d.Enabled}
}
func (ValueData) conditionalData() {}

// MergeData marks a tree that a ConfigDataMerge should merge over its
// payload instead of its DefaultMerge.
type MergeData struct {
	Value interface{}
}

func (MergeData) IsEnabled() bool                  { return true }
func (d MergeData) GetValue() (interface{}, error) { return d.Value, nil }
func (d MergeData) DeepCopyAsInterface() interface{} {
	return MergeData{Value: orderedmap.DeepCopyTree(d.Value)}
}
func (MergeData) conditionalData() {}

// ConfigDataMerge is the merge-aware variant: resolving it deep-merges a
// configured tree into its payload. When Config is a MergeData its value is
// merged; otherwise DefaultMerge (when set) is merged.
type ConfigDataMerge struct {
	Value        interface{}
	Enabled      bool
	DefaultMerge interface{}
	Config       interface{}
}

func (d ConfigDataMerge) IsEnabled() bool { return d.Enabled }

func (d ConfigDataMerge) GetValue() (interface{}, error) {
	if mergeData, ok := d.Config.(MergeData); ok {
		val, err := mergeData.GetValue()
		if err != nil {
			return nil, err
		}
		return merge.Default.Merge(d.Value, val)
	}
	if d.DefaultMerge != nil {
		return merge.Default.Merge(d.Value, d.DefaultMerge)
	}
	return d.Value, nil
}

func (d ConfigDataMerge) DeepCopyAsInterface() interface{} {
	return ConfigDataMerge{
		Value:        orderedmap.DeepCopyTree(d.Value),
		Enabled:      d.Enabled,
		DefaultMerge: orderedmap.DeepCopyTree(d.DefaultMerge),
		Config:       orderedmap.DeepCopyTree(d.Config),
	}
}

func (ConfigDataMerge) conditionalData() {}

// GetValue resolves value transitively: a non-Data value passes through
// unchanged, an enabled Data resolves its payload, a disabled Data yields
// nil (or DisabledError when raiseIfDisabled).
func GetValue(value interface{}, raiseIfDisabled bool) (interface{}, error) {
	for {
		d, ok := value.(Data)
		if !ok {
			return value, nil
		}
		if !d.IsEnabled() {
			if raiseIfDisabled {
				return nil, NewDisabledError()
			}
			return nil, nil
		}
		val, err := d.GetValue()
		if err != nil {
			return nil, err
		}
		value = val
	}
}

// IsNone reports whether value is nil, disabled, or transitively resolves
// to nil.
func IsNone(value interface{}) bool {
	d, ok := value.(Data)
	if !ok {
		return value == nil
	}
	if !d.IsEnabled() {
		return true
	}
	val, err := d.GetValue()
	if err != nil {
		return false
	}
	return IsNone(val)
}
