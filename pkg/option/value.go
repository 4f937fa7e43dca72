// Copyright 2026 the Kubegen Authors.
// SPDX-License-Identifier: Apache-2.0

package option

// Root references an option in the root options namespace. Builder users
// set it to forward a builder option to a globally configured value.
type Root struct {
	Name string
}

// Value computes an option value on demand. name is the dotted path being
// resolved; def is the matching definition when one exists.
type Value interface {
	GetValue(name string, def *Def) (interface{}, error)
}

// DefaultValue resolves to the definition's default value.
type DefaultValue struct{}

func (DefaultValue) GetValue(name string, def *Def) (interface{}, error) {
	if def != nil {
		return def.DefaultValue, nil
	}
	return nil, nil
}

// FuncValue adapts a function into a Value.
type FuncValue func(name string, def *Def) (interface{}, error)

func (f FuncValue) GetValue(name string, def *Def) (interface{}, error) {
	return f(name, def)
}
