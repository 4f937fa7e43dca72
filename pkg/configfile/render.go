// Copyright 2026 the Kubegen Authors.
// SPDX-License-Identifier: Apache-2.0

package configfile

import (
	"bytes"
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/kubegen/kubegen/pkg/orderedmap"
	"github.com/kubegen/kubegen/pkg/yamlgen"
)

// Renderer turns a config file output into file contents.
type Renderer interface {
	Supports(output Output) bool
	Render(output Output) (string, error)
}

// RawStrRenderer renders raw string outputs unchanged.
type RawStrRenderer struct{}

func (r RawStrRenderer) Supports(output Output) bool { return output.Kind == KindRawStr }

func (r RawStrRenderer) Render(output Output) (string, error) {
	if !r.Supports(output) {
		return "", NewNotSupportedError("Config file output not supported: %v", output.Kind)
	}
	return fmt.Sprintf("%v", output.Value), nil
}

// SysCtlRenderer renders mappings in the ini-like sectionless sysctl
// format, one "name = value" per line with dotted key paths.
type SysCtlRenderer struct {
	Separator string
}

func NewSysCtlRenderer() SysCtlRenderer {
	return SysCtlRenderer{Separator: "."}
}

func (r SysCtlRenderer) Supports(output Output) bool {
	switch output.Kind {
	case KindDictSingleLevel, KindDictDualLevel, KindDict:
		return true
	}
	return false
}

func (r SysCtlRenderer) Render(output Output) (string, error) {
	if !r.Supports(output) {
		return "", NewNotSupportedError("Config file output not supported: %v", output.Kind)
	}
	m, ok := output.Value.(*orderedmap.Map)
	if !ok {
		return "", NewNotSupportedError("Expected mapping config file value, but was %T", output.Value)
	}

	var buf bytes.Buffer

	Flatten(m, r.Separator).Iterate(func(k, v interface{}) {
		if buf.Len() > 0 {
			buf.WriteString("\n")
		}
		fmt.Fprintf(&buf, "%v = %v", k, v)
	})
	return buf.String(), nil
}

// YAMLRenderer renders mappings as YAML.
type YAMLRenderer struct {
	gen *yamlgen.Generator
}

func NewYAMLRenderer(gen *yamlgen.Generator) YAMLRenderer {
	return YAMLRenderer{gen: gen}
}

func (r YAMLRenderer) Supports(output Output) bool {
	switch output.Kind {
	case KindDictSingleLevel, KindDictDualLevel, KindDict:
		return true
	}
	return false
}

func (r YAMLRenderer) Render(output Output) (string, error) {
	if !r.Supports(output) {
		return "", NewNotSupportedError("Config file output not supported: %v", output.Kind)
	}
	return r.gen.Generate(output.Value)
}

// TOMLRenderer renders mappings as TOML. Key order follows TOML encoding
// rules rather than the mapping's insertion order.
type TOMLRenderer struct{}

func (r TOMLRenderer) Supports(output Output) bool {
	switch output.Kind {
	case KindDictSingleLevel, KindDictDualLevel, KindDict:
		return true
	}
	return false
}

func (r TOMLRenderer) Render(output Output) (string, error) {
	if !r.Supports(output) {
		return "", NewNotSupportedError("Config file output not supported: %v", output.Kind)
	}
	m, ok := output.Value.(*orderedmap.Map)
	if !ok {
		return "", NewNotSupportedError("Expected mapping config file value, but was %T", output.Value)
	}

	var buf bytes.Buffer

	err := toml.NewEncoder(&buf).Encode(orderedmap.Conversion{Object: m}.AsUnorderedStringMaps())
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}

// MultiRenderer tries renderers in order and uses the first that supports
// the output.
type MultiRenderer struct {
	Renderers []Renderer
}

func NewMultiRenderer(renderers ...Renderer) MultiRenderer {
	return MultiRenderer{Renderers: renderers}
}

func (r MultiRenderer) Supports(output Output) bool {
	for _, renderer := range r.Renderers {
		if renderer.Supports(output) {
			return true
		}
	}
	return false
}

func (r MultiRenderer) Render(output Output) (string, error) {
	for _, renderer := range r.Renderers {
		if renderer.Supports(output) {
			return renderer.Render(output)
		}
	}
	return "", NewNotSupportedError("Config file output not supported: %v", output.Kind)
}
