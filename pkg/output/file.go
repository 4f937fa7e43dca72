// Copyright 2026 the Kubegen Authors.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"strings"

	"github.com/kubegen/kubegen/pkg/object"
	"github.com/kubegen/kubegen/pkg/orderedmap"
	"github.com/kubegen/kubegen/pkg/yamlgen"
)

// ShellScriptFile is a shell script. It renders with a "#!/bin/bash"
// header and is marked executable.
type ShellScriptFile struct {
	*FileBase
}

func NewShellScriptFile(filename string) *ShellScriptFile {
	return &ShellScriptFile{FileBase: NewFileBase(filename, false)}
}

func (f *ShellScriptFile) Executable() bool { return true }

func (f *ShellScriptFile) Render(dumper *Dumper) (string, error) {
	body, err := f.FileBase.Render(dumper)
	if err != nil {
		return "", err
	}
	return strings.Join([]string{"#!/bin/bash", "", body, ""}, "\n"), nil
}

// YAMLFile is a generic YAML file. Tree values render as YAML documents
// separated by "---"; other values go through the dumper.
type YAMLFile struct {
	*FileBase

	gen *yamlgen.Generator
}

func NewYAMLFile(filename string, isSequence bool, gen *yamlgen.Generator) *YAMLFile {
	return &YAMLFile{FileBase: NewFileBase(filename, isSequence), gen: gen}
}

func (f *YAMLFile) Render(dumper *Dumper) (string, error) {
	return renderYAMLData(f.data, f.gen, dumper, false)
}

// KubernetesFile is a YAML file of Kubernetes manifests. Raw values are
// written outside the document separation so scripts can interleave
// comments and generated documents.
type KubernetesFile struct {
	*FileBase

	gen *yamlgen.Generator
}

func NewKubernetesFile(filename string, gen *yamlgen.Generator) *KubernetesFile {
	return &KubernetesFile{FileBase: NewFileBase(filename, true), gen: gen}
}

func (f *KubernetesFile) Render(dumper *Dumper) (string, error) {
	return renderYAMLData(f.data, f.gen, dumper, true)
}

func renderYAMLData(data []interface{}, gen *yamlgen.Generator, dumper *Dumper, rawOutside bool) (string, error) {
	var parts []string
	first := true
	for _, item := range data {
		if rawOutside {
			if raw, ok := item.(Raw); ok {
				part, err := dumper.Dump(raw)
				if err != nil {
					return "", err
				}
				parts = append(parts, part)
				continue
			}
		}

		if seq, ok := item.([]interface{}); ok && len(seq) == 0 {
			continue
		}
		if !first {
			parts = append(parts, "---")
		}
		first = false

		switch item.(type) {
		case *orderedmap.Map, []interface{}, *object.Object:
			part, err := gen.Generate(item)
			if err != nil {
				return "", err
			}
			parts = append(parts, strings.TrimSuffix(part, "\n"))
		default:
			part, err := dumper.Dump(item)
			if err != nil {
				return "", err
			}
			parts = append(parts, part)
		}
	}
	if len(parts) == 0 {
		return "", nil
	}
	return strings.Join(parts, "\n") + "\n", nil
}
