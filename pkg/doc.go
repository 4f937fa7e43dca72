// Copyright 2026 the Kubegen Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package pkg is the collection of packages that make up the implementation
of kubegen.

The codebase is organized into well-defined layers, with packages dependent
on each other only to the degree required.

# Entry Point

kubegen is built into a single executable:

	./cmd/kubegen   // a command-line tool

# Commands

	pkg/cmd       // cobra commands: version, convert
	pkg/cmd/ui    // user output abstraction

# Generation

An app.App holds the run-wide context: the target provider, the root
options and the cluster resource database. Builders turn options into
Kubernetes object trees, patches adjust the built trees, and the output
project writes the rendered files.

	pkg/app
	pkg/builder
	pkg/provider
	pkg/kresource
	pkg/output

# Configuration

Options pair a definition schema with user-supplied values. Data wrappers
carry conditional values through trees, and KData references cluster
values (ConfigMaps, Secrets) from option values.

	pkg/option
	pkg/data
	pkg/kdata
	pkg/configfile

# Trees

Manifests are built as insertion-ordered trees: mappings are
orderedmap.Map, sequences are plain slices, and leaves may be styled
scalars. The merge package combines trees, patch edits them through
RFC 6901 pointers, and yamlgen renders them to YAML.

	pkg/orderedmap
	pkg/yamlstyle
	pkg/merge
	pkg/patch
	pkg/object
	pkg/yamlgen

# Utilities

	pkg/version
*/
package pkg
