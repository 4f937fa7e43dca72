// Copyright 2026 the Kubegen Authors.
// SPDX-License-Identifier: Apache-2.0

package kdata

import (
	"fmt"

	"github.com/kubegen/kubegen/pkg/data"
	"github.com/kubegen/kubegen/pkg/merge"
	"github.com/kubegen/kubegen/pkg/orderedmap"
	"github.com/kubegen/kubegen/pkg/yamlstyle"
)

// EnvAllowed lists the KData variants usable as container env values.
func EnvAllowed() []KData {
	return []KData{Value{}, ConfigMap{}, Secret{}}
}

// VolumeAllowed lists the KData variants usable as pod volume sources.
func VolumeAllowed() []KData {
	return []KData{Value{}, ConfigMap{}, Secret{}}
}

// EnvInfo builds a container.env entry from value, which may be a KData
// reference or a raw tree. baseValue (normally carrying the env name) is
// merged with the expansion; defaultValue is used when value is nil.
// When enabled is false, or disableIfNil is set and no value resolves, a
// disabled conditional is returned so the entry drops out of the manifest.
func EnvInfo(baseValue *orderedmap.Map, value, defaultValue interface{}, enabled, disableIfNil bool) (interface{}, error) {
	if !enabled {
		return data.ValueData{Enabled: false}, nil
	}
	if disableIfNil && defaultValue == nil && value == nil {
		return data.DisabledData{}, nil
	}

	if kd, ok := value.(KData); ok {
		switch typedKD := kd.(type) {
		case Value:
			defaultValue = orderedmap.NewMapWithItems([]orderedmap.MapItem{
				{Key: "value", Value: yamlstyle.NewQuoted(fmt.Sprintf("%v", typedKD.Value))},
			})
		case ConfigMap:
			defaultValue = orderedmap.NewMapWithItems([]orderedmap.MapItem{
				{Key: "valueFrom", Value: orderedmap.NewMapWithItems([]orderedmap.MapItem{
					{Key: "configMapKeyRef", Value: orderedmap.NewMapWithItems([]orderedmap.MapItem{
						{Key: "name", Value: typedKD.Name},
						{Key: "key", Value: typedKD.Key},
					})},
				})},
			})
		case Secret:
			defaultValue = orderedmap.NewMapWithItems([]orderedmap.MapItem{
				{Key: "valueFrom", Value: orderedmap.NewMapWithItems([]orderedmap.MapItem{
					{Key: "secretKeyRef", Value: orderedmap.NewMapWithItems([]orderedmap.MapItem{
						{Key: "name", Value: typedKD.Name},
						{Key: "key", Value: typedKD.Key},
					})},
				})},
			})
		default:
			return nil, NewInvalidParamError("Unsupported KData: %T", kd)
		}
	} else if value != nil {
		defaultValue = value
	}

	return finishInfo(baseValue, defaultValue, disableIfNil)
}

// VolumeInfo builds a podSpec.volumes entry from value, which may be a
// KData reference or a raw tree. keyPath overrides the mount path of the
// referenced item; empty means the item key.
func VolumeInfo(baseValue *orderedmap.Map, value, defaultValue interface{}, keyPath string, enabled, disableIfNil bool) (interface{}, error) {
	if !enabled {
		return data.ValueData{Enabled: false}, nil
	}
	if disableIfNil && defaultValue == nil && value == nil {
		return data.ValueData{Enabled: false}, nil
	}

	if kd, ok := value.(KData); ok {
		switch typedKD := kd.(type) {
		case Value:
			defaultValue = typedKD.Value
		case ConfigMap:
			defaultValue = orderedmap.NewMapWithItems([]orderedmap.MapItem{
				{Key: "configMap", Value: orderedmap.NewMapWithItems([]orderedmap.MapItem{
					{Key: "name", Value: typedKD.Name},
					{Key: "items", Value: []interface{}{
						orderedmap.NewMapWithItems([]orderedmap.MapItem{
							{Key: "key", Value: typedKD.Key},
							{Key: "path", Value: itemPath(typedKD.Key, keyPath)},
						}),
					}},
				})},
			})
		case Secret:
			defaultValue = orderedmap.NewMapWithItems([]orderedmap.MapItem{
				{Key: "secret", Value: orderedmap.NewMapWithItems([]orderedmap.MapItem{
					{Key: "secretName", Value: typedKD.Name},
					{Key: "items", Value: []interface{}{
						orderedmap.NewMapWithItems([]orderedmap.MapItem{
							{Key: "key", Value: typedKD.Key},
							{Key: "path", Value: itemPath(typedKD.Key, keyPath)},
						}),
					}},
				})},
			})
		default:
			return nil, NewInvalidParamError("Unsupported KData: %T", kd)
		}
	} else if value != nil {
		defaultValue = value
	}

	return finishInfo(baseValue, defaultValue, disableIfNil)
}

func finishInfo(baseValue *orderedmap.Map, defaultValue interface{}, disableIfNil bool) (interface{}, error) {
	if baseValue == nil {
		baseValue = orderedmap.NewMap()
	}
	if defaultValue == nil {
		if disableIfNil {
			return data.ValueData{Enabled: false}, nil
		}
		return baseValue, nil
	}
	return merge.Default.Merge(baseValue, defaultValue)
}

func itemPath(key, keyPath string) string {
	if keyPath != "" {
		return keyPath
	}
	return key
}
