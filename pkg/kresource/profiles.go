// Copyright 2026 the Kubegen Authors.
// SPDX-License-Identifier: Apache-2.0

package kresource

import (
	"github.com/kubegen/kubegen/pkg/merge"
	"github.com/kubegen/kubegen/pkg/option"
	"github.com/kubegen/kubegen/pkg/orderedmap"
	"github.com/kubegen/kubegen/pkg/provider"
)

func persistentVolumeBase(name string, spec *orderedmap.Map) *orderedmap.Map {
	return orderedmap.NewMapWithItems([]orderedmap.MapItem{
		{Key: "apiVersion", Value: "v1"},
		{Key: "kind", Value: "PersistentVolume"},
		{Key: "metadata", Value: orderedmap.NewMapWithItems([]orderedmap.MapItem{
			{Key: "name", Value: name},
		})},
		{Key: "spec", Value: spec},
	})
}

func finishVolume(base *orderedmap.Map, mergeConfig *orderedmap.Map, storageClass string) (interface{}, error) {
	result, err := mergeOver(base, mergeConfig)
	if err != nil {
		return nil, err
	}
	if storageClass != "" {
		result, err = merge.Default.Merge(result, orderedmap.NewMapWithItems([]orderedmap.MapItem{
			{Key: "spec", Value: orderedmap.NewMapWithItems([]orderedmap.MapItem{
				{Key: "storageClassName", Value: storageClass},
			})},
		}))
		if err != nil {
			return nil, err
		}
	}
	return result, nil
}

func configValue(config *orderedmap.Map, key string) (interface{}, bool) {
	if config == nil {
		return nil, false
	}
	return config.Get(key)
}

// EmptyDirProfile builds volumes backed by node-local ephemeral storage.
type EmptyDirProfile struct {
	StorageClass string
}

func (p EmptyDirProfile) Build(prov *provider.Provider, name string, config, mergeConfig *orderedmap.Map) (interface{}, error) {
	base := persistentVolumeBase(resolveName(config, name), orderedmap.NewMapWithItems([]orderedmap.MapItem{
		{Key: "emptyDir", Value: orderedmap.NewMap()},
	}))
	return finishVolume(base, mergeConfig, p.StorageClass)
}

// HostPathProfile builds volumes backed by a path on the node filesystem.
// The entry config must carry a "hostPath" mapping.
type HostPathProfile struct {
	StorageClass string
}

func (p HostPathProfile) Build(prov *provider.Provider, name string, config, mergeConfig *orderedmap.Map) (interface{}, error) {
	hostPath, found := configValue(config, "hostPath")
	if !found {
		return nil, NewInvalidParamError(`"hostPath" config is required`)
	}
	base := persistentVolumeBase(resolveName(config, name), orderedmap.NewMapWithItems([]orderedmap.MapItem{
		{Key: "hostPath", Value: hostPath},
	}))
	return finishVolume(base, mergeConfig, p.StorageClass)
}

// NFSProfile builds volumes backed by an NFS export. The entry config must
// carry an "nfs" mapping.
type NFSProfile struct {
	StorageClass string
}

func (p NFSProfile) Build(prov *provider.Provider, name string, config, mergeConfig *orderedmap.Map) (interface{}, error) {
	nfs, found := configValue(config, "nfs")
	if !found {
		return nil, NewInvalidParamError(`"nfs" config is required`)
	}
	base := persistentVolumeBase(resolveName(config, name), orderedmap.NewMapWithItems([]orderedmap.MapItem{
		{Key: "nfs", Value: nfs},
	}))
	return finishVolume(base, mergeConfig, p.StorageClass)
}

// CSIProfile builds volumes backed by a CSI driver. When Driver is set it
// seeds the csi block, letting the entry config override or extend it; the
// entry config must carry a "csi" mapping when Driver is empty.
type CSIProfile struct {
	StorageClass string
	Driver       string
}

func (p CSIProfile) Build(prov *provider.Provider, name string, config, mergeConfig *orderedmap.Map) (interface{}, error) {
	csi := orderedmap.NewMap()
	if p.Driver != "" {
		csi.Set("driver", p.Driver)
	}
	if configCSI, found := configValue(config, "csi"); found {
		merged, err := merge.Default.Merge(csi, configCSI)
		if err != nil {
			return nil, err
		}
		csi = merged.(*orderedmap.Map)
	} else if p.Driver == "" {
		return nil, NewInvalidParamError(`"csi" config is required`)
	}

	base := persistentVolumeBase(resolveName(config, name), orderedmap.NewMapWithItems([]orderedmap.MapItem{
		{Key: "csi", Value: csi},
	}))
	return finishVolume(base, mergeConfig, p.StorageClass)
}

// ClaimDefaultProfile builds claims, copying access modes and storage
// requests from the bound persistent volume when the claim does not set
// its own.
type ClaimDefaultProfile struct {
	StorageClass string
}

func (p ClaimDefaultProfile) Build(prov *provider.Provider, db *Database, name string, config, mergeConfig *orderedmap.Map) (interface{}, error) {
	var volume *orderedmap.Map
	if volumeName, found := configValue(config, "persistentVolume"); found {
		built, err := db.PersistentVolumeBuild(prov, volumeName.(string))
		if err != nil {
			return nil, err
		}
		volume = built[0].(*orderedmap.Map)
	}

	metadata := orderedmap.NewMapWithItems([]orderedmap.MapItem{
		{Key: "name", Value: resolveName(config, name)},
	})
	if namespace, found := configValue(config, "namespace"); found {
		metadata.Set("namespace", namespace)
	}

	spec := orderedmap.NewMap()
	if p.StorageClass != "" {
		spec.Set("storageClassName", p.StorageClass)
	}
	if volume != nil {
		if className, err := option.DictGetValue(volume, "spec.storageClassName"); err == nil && className != nil {
			spec.Set("storageClassName", className)
		}
	}

	base := orderedmap.NewMapWithItems([]orderedmap.MapItem{
		{Key: "apiVersion", Value: "v1"},
		{Key: "kind", Value: "PersistentVolumeClaim"},
		{Key: "metadata", Value: metadata},
		{Key: "spec", Value: spec},
	})

	result, err := mergeOver(base, mergeConfig)
	if err != nil {
		return nil, err
	}
	resultMap := result.(*orderedmap.Map)

	if volume != nil {
		if !option.DictHasName(resultMap, "spec.accessModes") && option.DictHasName(volume, "spec.accessModes") {
			modes, _ := option.DictGetValue(volume, "spec.accessModes")
			resultSpec, _ := resultMap.Get("spec")
			resultSpec.(*orderedmap.Map).Set("accessModes", modes)
		}
		if !option.DictHasName(resultMap, "spec.resources.requests.storage") && option.DictHasName(volume, "spec.capacity.storage") {
			storage, _ := option.DictGetValue(volume, "spec.capacity.storage")
			result, err = merge.Default.Merge(resultMap, orderedmap.NewMapWithItems([]orderedmap.MapItem{
				{Key: "spec", Value: orderedmap.NewMapWithItems([]orderedmap.MapItem{
					{Key: "resources", Value: orderedmap.NewMapWithItems([]orderedmap.MapItem{
						{Key: "requests", Value: orderedmap.NewMapWithItems([]orderedmap.MapItem{
							{Key: "storage", Value: storage},
						})},
					})},
				})},
			}))
			if err != nil {
				return nil, err
			}
		}
	}

	return result, nil
}

func resolveName(config *orderedmap.Map, name string) string {
	if v, found := configValue(config, "name"); found {
		if configName, ok := v.(string); ok {
			return configName
		}
	}
	return name
}
