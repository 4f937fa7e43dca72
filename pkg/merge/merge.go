// Copyright 2026 the Kubegen Authors.
// SPDX-License-Identifier: Apache-2.0

package merge

import (
	"fmt"
	"strings"

	"github.com/kubegen/kubegen/pkg/orderedmap"
	"github.com/kubegen/kubegen/pkg/yamlstyle"
)

// Path is the sequence of mapping keys walked to reach the current value.
type Path []string

func (p Path) String() string { return strings.Join(p, ".") }

func (p Path) Child(key interface{}) Path {
	child := make(Path, len(p), len(p)+1)
	copy(child, p)
	return append(child, fmt.Sprintf("%v", key))
}

// Fallback combines two values the per-type strategies did not handle.
// Returning handled=false passes the pair to the next fallback in the chain.
type Fallback func(path Path, base, incoming interface{}) (result interface{}, handled bool)

// BaseHook may substitute the base value at a path before strategy
// selection (e.g. resolving a conditional-value wrapper).
type BaseHook func(path Path, base interface{}) (interface{}, error)

// Merger merges trees under a fixed strategy configuration. Fields are set
// at construction and never mutated afterwards.
type Merger struct {
	// CreateKeys controls the mapping strategy: when false, a key present
	// in incoming but absent from base fails the merge.
	CreateKeys bool
	Fallbacks  []Fallback
	BaseHook   BaseHook
}

var (
	// Default merges mappings permissively and lets same-typed scalars
	// override.
	Default = &Merger{CreateKeys: true, Fallbacks: []Fallback{OverrideFallback}}

	// NoCreate rejects mapping keys that do not already exist in base,
	// enforcing closed option sets at merge time.
	NoCreate = &Merger{CreateKeys: false, Fallbacks: []Fallback{OverrideFallback}}

	// DataAware additionally resolves conditional-value wrappers found in
	// base and applies the styled-string tie-break. Used for patch merges.
	DataAware = &Merger{
		CreateKeys: true,
		Fallbacks:  []Fallback{StyledStringFallback, OverrideFallback},
		BaseHook:   ConditionalBaseHook,
	}
)

// Merge combines incoming into base, mutating base's containers, and
// returns the merged value. All failures are immediate and fatal.
func (m *Merger) Merge(base, incoming interface{}) (interface{}, error) {
	return m.value(nil, base, incoming)
}

func (m *Merger) value(path Path, base, incoming interface{}) (interface{}, error) {
	if m.BaseHook != nil {
		var err error
		base, err = m.BaseHook(path, base)
		if err != nil {
			return nil, err
		}
	}

	if baseMap, ok := base.(*orderedmap.Map); ok {
		if incomingMap, ok := incoming.(*orderedmap.Map); ok {
			return baseMap, m.mergeMap(path, baseMap, incomingMap)
		}
	}

	if baseSeq, ok := base.([]interface{}); ok {
		if incomingSeq, ok := incoming.([]interface{}); ok {
			return append(baseSeq, incomingSeq...), nil
		}
	}

	for _, fallback := range m.Fallbacks {
		if result, handled := fallback(path, base, incoming); handled {
			return result, nil
		}
	}

	return nil, NewConflictError(path, base, incoming)
}

// mergeMap walks incoming's keys in order: existing keys merge recursively,
// new keys are created (or rejected when CreateKeys is false). Base's key
// order is preserved, extended by incoming's new keys in incoming order.
func (m *Merger) mergeMap(path Path, base, incoming *orderedmap.Map) error {
	return incoming.IterateErr(func(k, v interface{}) error {
		current, found := base.Get(k)
		if !found {
			if !m.CreateKeys {
				return NewUnknownKeyError(path.Child(k))
			}
			base.Set(k, v)
			return nil
		}

		merged, err := m.value(path.Child(k), current, v)
		if err != nil {
			return err
		}
		base.Set(k, merged)
		return nil
	})
}

// OverrideFallback lets incoming win when both values share the same
// runtime type; mismatched types stay unhandled and become a conflict.
func OverrideFallback(_ Path, base, incoming interface{}) (interface{}, bool) {
	if TypeName(base) == TypeName(incoming) {
		return incoming, true
	}
	return nil, false
}

// StyledStringFallback applies the tagged-string tie-break: a styled
// incoming keeps its own style (even against a styled base), a styled base
// wraps a plain incoming's text in the base style, plain strings override.
func StyledStringFallback(_ Path, base, incoming interface{}) (interface{}, bool) {
	baseStr, baseIsStyled := asStringValue(base)
	incomingStr, incomingIsStyled := asStringValue(incoming)
	if baseStr == nil || incomingStr == nil {
		return nil, false
	}

	switch {
	case incomingIsStyled:
		return incoming, true
	case baseIsStyled:
		return yamlstyle.NewInstance(base.(yamlstyle.String), *incomingStr), true
	default:
		return incoming, true
	}
}

// ConditionalBaseHook substitutes a conditional-value wrapper in base with
// its resolved payload; a disabled wrapper becomes an empty container of
// the payload's shape so incoming can still merge into something.
func ConditionalBaseHook(_ Path, base interface{}) (interface{}, error) {
	for {
		wrapper, ok := base.(interface {
			IsEnabled() bool
			GetValue() (interface{}, error)
		})
		if !ok {
			return base, nil
		}
		if wrapper.IsEnabled() {
			val, err := wrapper.GetValue()
			if err != nil {
				return nil, err
			}
			base = val
			continue
		}
		payload, _ := wrapper.GetValue()
		switch payload.(type) {
		case *orderedmap.Map:
			return orderedmap.NewMap(), nil
		case []interface{}:
			return []interface{}{}, nil
		default:
			return nil, nil
		}
	}
}

func asStringValue(v interface{}) (*string, bool) {
	switch typedVal := v.(type) {
	case string:
		return &typedVal, false
	case yamlstyle.String:
		return &typedVal.Value, true
	default:
		return nil, false
	}
}
