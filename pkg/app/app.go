// Copyright 2026 the Kubegen Authors.
// SPDX-License-Identifier: Apache-2.0

// Package app carries the per-run context shared by all builders: the
// target provider, the root options and the cluster resource database.
package app

import (
	goversion "github.com/hashicorp/go-version"

	"github.com/kubegen/kubegen/pkg/kresource"
	"github.com/kubegen/kubegen/pkg/option"
	"github.com/kubegen/kubegen/pkg/provider"
)

// DefaultKubernetesVersion is the Kubernetes version targeted when none is
// configured.
const DefaultKubernetesVersion = "1.19.0"

// App is the top-level generation context.
type App struct {
	provider          *provider.Provider
	options           *option.Options
	kubernetesVersion *goversion.Version
	resources         *kresource.Database
}

// New builds an App. A nil options uses an empty root namespace; an empty
// kubernetesVersion targets DefaultKubernetesVersion.
func New(prov *provider.Provider, options *option.Options, kubernetesVersion string) (*App, error) {
	if options == nil {
		options = option.NewFree(nil)
	}
	if kubernetesVersion == "" {
		kubernetesVersion = DefaultKubernetesVersion
	}

	parsedVersion, err := goversion.NewVersion(kubernetesVersion)
	if err != nil {
		return nil, NewInvalidParamError("Parsing Kubernetes version: %s", err)
	}

	return &App{
		provider:          prov,
		options:           options,
		kubernetesVersion: parsedVersion,
		resources:         kresource.NewDatabase(),
	}, nil
}

func (a *App) Provider() *provider.Provider { return a.provider }

// KubernetesVersion is the targeted cluster version. Builders use it to
// emit version-appropriate API groups.
func (a *App) KubernetesVersion() *goversion.Version { return a.kubernetesVersion }

// Resources is the cluster resource database shared by all builders.
func (a *App) Resources() *kresource.Database { return a.resources }

// OptionGet resolves a root option by dotted name.
func (a *App) OptionGet(name string) (interface{}, error) {
	return a.options.ValueGet(name)
}

// OptionRootGet resolves a builder option against opts, dereferencing
// root-namespace references through this App's options.
func (a *App) OptionRootGet(opts *option.Options, name string) (interface{}, error) {
	return option.RootGet(opts, name, a.options, true)
}

// SecretDataEncode encodes a secret value using the provider's encoding.
func (a *App) SecretDataEncode(data string) string {
	return a.provider.SecretDataEncode(data)
}

// SecretDataEncodeBytes encodes raw secret bytes using the provider's
// encoding.
func (a *App) SecretDataEncodeBytes(data []byte) []byte {
	return a.provider.SecretDataEncodeBytes(data)
}

// QuotedSingle selects the quote character for generic quoted scalars in
// rendered YAML.
func (a *App) QuotedSingle() bool { return true }

// StorageClassBuild generates the named storage classes.
func (a *App) StorageClassBuild(names ...string) ([]interface{}, error) {
	built, err := a.resources.StorageClassBuild(a.provider, names...)
	if err != nil {
		return nil, err
	}
	return a.provider.ObjectsCheck(built), nil
}

// PersistentVolumeBuild generates the named persistent volumes.
func (a *App) PersistentVolumeBuild(names ...string) ([]interface{}, error) {
	built, err := a.resources.PersistentVolumeBuild(a.provider, names...)
	if err != nil {
		return nil, err
	}
	return a.provider.ObjectsCheck(built), nil
}

// PersistentVolumeClaimBuild generates the named persistent volume claims.
func (a *App) PersistentVolumeClaimBuild(names ...string) ([]interface{}, error) {
	built, err := a.resources.PersistentVolumeClaimBuild(a.provider, names...)
	if err != nil {
		return nil, err
	}
	return a.provider.ObjectsCheck(built), nil
}
