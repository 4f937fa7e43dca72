// Copyright 2026 the Kubegen Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package configfile abstracts application configuration files embedded in
generated objects (eg a ConfigMap carrying a prometheus.yml).

A ConfigFile produces a typed Output; a Renderer turns an Output into the
text placed in the object. Builders pick the renderer matching the format
their application expects.
*/
package configfile

import (
	"github.com/kubegen/kubegen/pkg/option"
)

// Kind tags the shape of a config file output so renderers can decide
// whether they support it.
type Kind int

const (
	KindRawStr Kind = iota
	// KindDictSingleLevel is a mapping with no nested mappings.
	KindDictSingleLevel
	// KindDictDualLevel is a mapping with exactly one level of nesting.
	KindDictDualLevel
	// KindDict is a mapping of any depth.
	KindDict
)

// Output is a config file value tagged with its shape.
type Output struct {
	Kind  Kind
	Value interface{}
}

func NewRawStrOutput(value string) Output {
	return Output{Kind: KindRawStr, Value: value}
}

func NewDictSingleLevelOutput(value interface{}) Output {
	return Output{Kind: KindDictSingleLevel, Value: value}
}

func NewDictDualLevelOutput(value interface{}) Output {
	return Output{Kind: KindDictDualLevel, Value: value}
}

func NewDictOutput(value interface{}) Output {
	return Output{Kind: KindDict, Value: value}
}

// ConfigFile produces configuration file contents resolved against the
// options of the builder embedding it.
type ConfigFile interface {
	GetValue(options option.Getter) (Output, error)
}

// RawStr is a config file with fixed string contents.
type RawStr struct {
	Value string
}

func (c RawStr) GetValue(options option.Getter) (Output, error) {
	return NewRawStrOutput(c.Value), nil
}

// ExtensionData carries the config data being built across extensions.
type ExtensionData struct {
	Data interface{}
}

// Extension modifies config file data before it is finished.
type Extension interface {
	Process(configFile ConfigFile, data *ExtensionData, options option.Getter) error
}

// ExtendSource supplies the initial and final value of an extendable
// config file.
type ExtendSource interface {
	InitValue(options option.Getter) (*ExtensionData, error)
	FinishValue(options option.Getter, data *ExtensionData) (Output, error)
}

// Extend is a ConfigFile whose contents pass through a chain of
// extensions between initialization and finishing.
type Extend struct {
	source     ExtendSource
	extensions []Extension
}

func NewExtend(source ExtendSource, extensions ...Extension) *Extend {
	return &Extend{source: source, extensions: extensions}
}

// ExtensionAdd appends extensions to the processing chain.
func (e *Extend) ExtensionAdd(extensions ...Extension) {
	e.extensions = append(e.extensions, extensions...)
}

func (e *Extend) GetValue(options option.Getter) (Output, error) {
	data, err := e.source.InitValue(options)
	if err != nil {
		return Output{}, err
	}
	for _, extension := range e.extensions {
		err = extension.Process(e, data, options)
		if err != nil {
			return Output{}, err
		}
	}
	return e.source.FinishValue(options, data)
}
