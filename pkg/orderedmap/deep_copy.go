// Copyright 2026 the Kubegen Authors.
// SPDX-License-Identifier: Apache-2.0

package orderedmap

func (m *Map) DeepCopy() *Map {
	newItems := make([]MapItem, 0, len(m.items))
	for _, item := range m.items {
		newItems = append(newItems, MapItem{Key: item.Key, Value: DeepCopyTree(item.Value)})
	}
	return &Map{newItems}
}

func (m *Map) DeepCopyAsInterface() interface{} { return m.DeepCopy() }

// DeepCopyTree copies a document tree: maps and sequences are rebuilt,
// leaves implementing DeepCopyAsInterface are delegated to, any other leaf
// is kept as-is (scalars are value-like).
func DeepCopyTree(val interface{}) interface{} {
	switch typedVal := val.(type) {
	case *Map:
		return typedVal.DeepCopy()
	case []interface{}:
		newItems := make([]interface{}, len(typedVal))
		for i, item := range typedVal {
			newItems[i] = DeepCopyTree(item)
		}
		return newItems
	case interface{ DeepCopyAsInterface() interface{} }:
		return typedVal.DeepCopyAsInterface()
	default:
		return typedVal
	}
}
