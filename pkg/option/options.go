// Copyright 2026 the Kubegen Authors.
// SPDX-License-Identifier: Apache-2.0

package option

import (
	"strings"

	"github.com/kubegen/kubegen/pkg/data"
	"github.com/kubegen/kubegen/pkg/orderedmap"
)

// Options pairs a schema of defined options with concrete values. When a
// schema is present only defined options may be set; a nil schema allows
// free-form values. Read-only after construction.
type Options struct {
	defined *orderedmap.Map
	values  *orderedmap.Map
}

// New builds an Options store, eagerly validating values against defined.
func New(defined *orderedmap.Map, values *orderedmap.Map) (*Options, error) {
	err := checkDefinitions(nil, defined, values)
	if err != nil {
		return nil, err
	}
	return &Options{defined: defined, values: values}, nil
}

// NewFree builds an Options store with no schema.
func NewFree(values *orderedmap.Map) *Options {
	return &Options{values: values}
}

func checkDefinitions(path []string, defined *orderedmap.Map, values *orderedmap.Map) error {
	if defined == nil || values == nil {
		return nil
	}

	return values.IterateErr(func(key, value interface{}) error {
		name, _ := key.(string)
		defValue, found := defined.Get(name)
		if !found {
			return NewUnknownOptionError(strings.Join(append(path, name), "."))
		}
		if _, isDef := defValue.(*Def); isDef {
			return nil
		}
		if valueMap, ok := value.(*orderedmap.Map); ok {
			defMap, _ := defValue.(*orderedmap.Map)
			return checkDefinitions(append(path, name), defMap, valueMap)
		}
		return nil
	})
}

// ValueDefinitionGet returns the definition at the dotted path and the raw
// value set for it. When no value was set, the definition itself is
// returned as the raw value so callers can substitute its default.
func (o *Options) ValueDefinitionGet(name string) (*Def, interface{}, error) {
	defValue, err := DictGetValue(o.defined, name)
	if err != nil {
		return nil, nil, err
	}
	def, ok := defValue.(*Def)
	if !ok {
		return nil, nil, NewInvalidDefinitionError(defValue)
	}
	if o.values != nil && DictHasName(o.values, name) {
		value, err := DictGetValue(o.values, name)
		if err != nil {
			return nil, nil, err
		}
		return def, value, nil
	}
	return def, def, nil
}

// ValueGet returns the raw value at the dotted path.
func (o *Options) ValueGet(name string) (interface{}, error) {
	if o.defined == nil {
		return DictGetValue(o.values, name)
	}
	_, value, err := o.ValueDefinitionGet(name)
	return value, err
}

// Getter resolves option values by dotted name. Builders and applications
// implement it for their own option namespaces.
type Getter interface {
	OptionGet(name string) (interface{}, error)
}

// RootGet resolves the option at name through the full resolution chain:
// Root references are dereferenced against rootOpts, definitions yield
// their default, Value placeholders are computed, the result is checked
// against the definition's allowed types, and conditional values are
// cleaned unless handleData is false.
func RootGet(opts *Options, name string, rootOpts *Options, handleData bool) (interface{}, error) {
	def, value, err := opts.ValueDefinitionGet(name)
	if err != nil {
		return nil, err
	}

	if root, ok := value.(Root); ok {
		if rootOpts == nil {
			return nil, NewInvalidTypeError("Cannot get option from root")
		}
		value, err = rootOpts.ValueGet(root.Name)
		if err != nil {
			return nil, err
		}
	}

	if valueDef, ok := value.(*Def); ok {
		value = valueDef.DefaultValue
	}

	if optValue, ok := value.(Value); ok {
		value, err = optValue.GetValue(name, def)
		if err != nil {
			return nil, err
		}
	}

	if _, isData := value.(data.Data); !isData {
		if value == nil {
			if def.Required {
				return nil, NewRequiredOptionError(name)
			}
		} else if len(def.AllowedTypes) > 0 {
			matched := false
			for _, t := range def.AllowedTypes {
				if t.Matches(value) {
					matched = true
					break
				}
			}
			if !matched {
				return nil, NewTypeNotAllowedError(name, value, def)
			}
		}
	}

	if handleData {
		return data.Clean(value, false)
	}
	return value, nil
}
