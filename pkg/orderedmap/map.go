// Copyright 2026 the Kubegen Authors.
// SPDX-License-Identifier: Apache-2.0

package orderedmap

import (
	"encoding/json"
	"reflect"
)

// Map is an insertion-ordered mapping. The zero value is not usable; build
// instances with NewMap or NewMapWithItems.
type Map struct {
	items []MapItem
}

// MapItem is a single key/value pair of a Map.
type MapItem struct {
	Key   interface{}
	Value interface{}
}

func NewMap() *Map {
	return &Map{}
}

func NewMapWithItems(items []MapItem) *Map {
	return &Map{items}
}

// Set assigns value to key, keeping the key's original position when it is
// already present and appending it otherwise.
func (m *Map) Set(key, value interface{}) {
	for i, item := range m.items {
		if m.isKeyEq(item.Key, key) {
			item.Value = value
			m.items[i] = item
			return
		}
	}
	m.items = append(m.items, MapItem{key, value})
}

func (m *Map) Get(key interface{}) (interface{}, bool) {
	for _, item := range m.items {
		if m.isKeyEq(item.Key, key) {
			return item.Value, true
		}
	}
	return nil, false
}

func (m *Map) Has(key interface{}) bool {
	_, found := m.Get(key)
	return found
}

func (m *Map) Delete(key interface{}) bool {
	for i, item := range m.items {
		if m.isKeyEq(item.Key, key) {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return true
		}
	}
	return false
}

func (m *Map) isKeyEq(key1, key2 interface{}) bool {
	return reflect.DeepEqual(key1, key2)
}

func (m *Map) Keys() (keys []interface{}) {
	m.Iterate(func(k, _ interface{}) {
		keys = append(keys, k)
	})
	return
}

func (m *Map) Iterate(iterFunc func(k, v interface{})) {
	for _, item := range m.items {
		iterFunc(item.Key, item.Value)
	}
}

func (m *Map) IterateErr(iterFunc func(k, v interface{}) error) error {
	for _, item := range m.items {
		err := iterFunc(item.Key, item.Value)
		if err != nil {
			return err
		}
	}
	return nil
}

// Items exposes the backing pair slice. Mutating an item's Value through it
// mutates the map; callers that iterate and delete must walk it in reverse.
func (m *Map) Items() []MapItem { return m.items }

func (m *Map) SetItemValue(i int, value interface{}) { m.items[i].Value = value }

func (m *Map) DeleteItem(i int) {
	m.items = append(m.items[:i], m.items[i+1:]...)
}

func (m *Map) Len() int { return len(m.items) }

// Below methods disallow marshaling of Map directly; trees must be rendered
// through the yamlgen package which understands the marker leaf types.
var _ []json.Marshaler = []json.Marshaler{&Map{}}

func (*Map) MarshalYAML() (interface{}, error) { panic("Unexpected marshaling of *orderedmap.Map") }
func (*Map) MarshalJSON() ([]byte, error)      { panic("Unexpected marshaling of *orderedmap.Map") }
