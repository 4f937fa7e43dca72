// Copyright 2026 the Kubegen Authors.
// SPDX-License-Identifier: Apache-2.0

package data

import (
	"github.com/kubegen/kubegen/pkg/orderedmap"
)

// Clean removes disabled values from value and resolves enabled ones,
// recursing through maps and sequences. Map keys holding a disabled value
// are deleted; sequence items holding a disabled value are removed. When
// inPlace is false the input is deep-copied first and left untouched.
func Clean(value interface{}, inPlace bool) (interface{}, error) {
	if !inPlace {
		value = orderedmap.DeepCopyTree(value)
	}
	return cleanValue(value)
}

func cleanValue(value interface{}) (interface{}, error) {
	resolved, err := GetValue(value, false)
	if err != nil {
		return nil, err
	}

	switch typedVal := resolved.(type) {
	case *orderedmap.Map:
		return cleanMap(typedVal)
	case []interface{}:
		return cleanSeq(typedVal)
	default:
		return typedVal, nil
	}
}

func cleanMap(m *orderedmap.Map) (*orderedmap.Map, error) {
	for _, key := range m.Keys() {
		val, _ := m.Get(key)
		if d, ok := val.(Data); ok && !d.IsEnabled() {
			m.Delete(key)
			continue
		}
		cleaned, err := cleanValue(val)
		if err != nil {
			return nil, err
		}
		m.Set(key, cleaned)
	}
	return m, nil
}

func cleanSeq(seq []interface{}) ([]interface{}, error) {
	// Deleting back to front keeps earlier indexes stable.
	for i := len(seq) - 1; i >= 0; i-- {
		if d, ok := seq[i].(Data); ok && !d.IsEnabled() {
			seq = append(seq[:i], seq[i+1:]...)
			continue
		}
		cleaned, err := cleanValue(seq[i])
		if err != nil {
			return nil, err
		}
		seq[i] = cleaned
	}
	return seq, nil
}
