// Copyright 2026 the Kubegen Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package kresource manages cluster-level resources shared between builders:
storage classes, persistent volumes and persistent volume claims.

Resources are registered by name in a Database and built on demand using
the volume/claim profiles configured for the target provider.
*/
package kresource

import (
	"github.com/kubegen/kubegen/pkg/merge"
	"github.com/kubegen/kubegen/pkg/orderedmap"
	"github.com/kubegen/kubegen/pkg/provider"
)

// PersistentVolumeProfile builds a PersistentVolume tree for a particular
// storage technology. config carries per-volume settings; mergeConfig is
// merged over the built tree.
type PersistentVolumeProfile interface {
	Build(prov *provider.Provider, name string, config *orderedmap.Map, mergeConfig *orderedmap.Map) (interface{}, error)
}

// PersistentVolumeClaimProfile builds a PersistentVolumeClaim tree,
// optionally binding it to a persistent volume registered in the database.
type PersistentVolumeClaimProfile interface {
	Build(prov *provider.Provider, db *Database, name string, config *orderedmap.Map, mergeConfig *orderedmap.Map) (interface{}, error)
}

type resourceEntry struct {
	name        string
	config      *orderedmap.Map
	mergeConfig *orderedmap.Map
}

// Database accumulates named cluster resources and builds them for a
// provider. Not safe for concurrent mutation.
type Database struct {
	storageClasses []resourceEntry
	volumes        []resourceEntry
	claims         []resourceEntry

	volumeProfile PersistentVolumeProfile
	claimProfile  PersistentVolumeClaimProfile
}

func NewDatabase() *Database {
	return &Database{claimProfile: ClaimDefaultProfile{}}
}

// SetPersistentVolumeProfile selects the profile used to build the
// registered persistent volumes.
func (d *Database) SetPersistentVolumeProfile(profile PersistentVolumeProfile) {
	d.volumeProfile = profile
}

// SetPersistentVolumeClaimProfile selects the profile used to build the
// registered persistent volume claims.
func (d *Database) SetPersistentVolumeClaimProfile(profile PersistentVolumeClaimProfile) {
	d.claimProfile = profile
}

func (d *Database) StorageClassAdd(name string, config, mergeConfig *orderedmap.Map) {
	d.storageClasses = append(d.storageClasses, resourceEntry{name, config, mergeConfig})
}

func (d *Database) PersistentVolumeAdd(name string, config, mergeConfig *orderedmap.Map) {
	d.volumes = append(d.volumes, resourceEntry{name, config, mergeConfig})
}

func (d *Database) PersistentVolumeClaimAdd(name string, config, mergeConfig *orderedmap.Map) {
	d.claims = append(d.claims, resourceEntry{name, config, mergeConfig})
}

func findEntry(entries []resourceEntry, name string) (resourceEntry, bool) {
	for _, entry := range entries {
		if entry.name == name {
			return entry, true
		}
	}
	return resourceEntry{}, false
}

// StorageClassBuild builds the storage classes registered under the given
// names.
func (d *Database) StorageClassBuild(prov *provider.Provider, names ...string) ([]interface{}, error) {
	var result []interface{}
	for _, name := range names {
		entry, found := findEntry(d.storageClasses, name)
		if !found {
			return nil, NewNotFoundError("storage class", name)
		}

		tree := orderedmap.NewMapWithItems([]orderedmap.MapItem{
			{Key: "apiVersion", Value: "storage.k8s.io/v1"},
			{Key: "kind", Value: "StorageClass"},
			{Key: "metadata", Value: orderedmap.NewMapWithItems([]orderedmap.MapItem{
				{Key: "name", Value: resolveName(entry.config, entry.name)},
			})},
		})
		merged, err := mergeOver(tree, entry.mergeConfig)
		if err != nil {
			return nil, err
		}
		result = append(result, merged)
	}
	return result, nil
}

// PersistentVolumeBuild builds the persistent volumes registered under the
// given names using the configured volume profile.
func (d *Database) PersistentVolumeBuild(prov *provider.Provider, names ...string) ([]interface{}, error) {
	if d.volumeProfile == nil {
		return nil, NewInvalidParamError("Persistent volume profile is not set")
	}

	var result []interface{}
	for _, name := range names {
		entry, found := findEntry(d.volumes, name)
		if !found {
			return nil, NewNotFoundError("persistent volume", name)
		}
		built, err := d.volumeProfile.Build(prov, name, entry.config, entry.mergeConfig)
		if err != nil {
			return nil, err
		}
		result = append(result, built)
	}
	return result, nil
}

// PersistentVolumeClaimBuild builds the persistent volume claims
// registered under the given names using the configured claim profile.
func (d *Database) PersistentVolumeClaimBuild(prov *provider.Provider, names ...string) ([]interface{}, error) {
	if d.claimProfile == nil {
		return nil, NewInvalidParamError("Persistent volume claim profile is not set")
	}

	var result []interface{}
	for _, name := range names {
		entry, found := findEntry(d.claims, name)
		if !found {
			return nil, NewNotFoundError("persistent volume claim", name)
		}
		built, err := d.claimProfile.Build(prov, d, name, entry.config, entry.mergeConfig)
		if err != nil {
			return nil, err
		}
		result = append(result, built)
	}
	return result, nil
}

func mergeOver(base *orderedmap.Map, mergeConfig *orderedmap.Map) (interface{}, error) {
	if mergeConfig == nil {
		return base, nil
	}
	return merge.Default.Merge(base, mergeConfig)
}
