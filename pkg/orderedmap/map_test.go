// Copyright 2026 the Kubegen Authors.
// SPDX-License-Identifier: Apache-2.0

package orderedmap_test

import (
	"testing"

	"github.com/kubegen/kubegen/pkg/orderedmap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetKeepsInsertionOrder(t *testing.T) {
	m := orderedmap.NewMap()
	m.Set("b", 1)
	m.Set("a", 2)
	m.Set("c", 3)
	m.Set("a", 4) // update must not reorder

	assert.Equal(t, []interface{}{"b", "a", "c"}, m.Keys())

	val, found := m.Get("a")
	require.True(t, found)
	assert.Equal(t, 4, val)
}

func TestDeleteShiftsRemainingKeys(t *testing.T) {
	m := orderedmap.NewMapWithItems([]orderedmap.MapItem{
		{Key: "a", Value: 1},
		{Key: "b", Value: 2},
		{Key: "c", Value: 3},
	})

	require.True(t, m.Delete("b"))
	assert.Equal(t, []interface{}{"a", "c"}, m.Keys())
	assert.False(t, m.Delete("b"))
}

func TestDeepCopyTreeDetachesNestedContainers(t *testing.T) {
	inner := orderedmap.NewMap()
	inner.Set("key", "value")
	tree := orderedmap.NewMapWithItems([]orderedmap.MapItem{
		{Key: "nested", Value: inner},
		{Key: "list", Value: []interface{}{1, inner}},
	})

	copied := orderedmap.DeepCopyTree(tree).(*orderedmap.Map)

	innerCopy, found := copied.Get("nested")
	require.True(t, found)
	innerCopy.(*orderedmap.Map).Set("key", "changed")

	val, _ := inner.Get("key")
	assert.Equal(t, "value", val)
}

func TestConversionFromUnorderedMapsSortsKeys(t *testing.T) {
	result := orderedmap.Conversion{Object: map[string]interface{}{
		"b": 1,
		"a": []interface{}{map[string]interface{}{"z": 1, "y": 2}},
	}}.FromUnorderedMaps()

	m := result.(*orderedmap.Map)
	assert.Equal(t, []interface{}{"a", "b"}, m.Keys())

	seq, _ := m.Get("a")
	nested := seq.([]interface{})[0].(*orderedmap.Map)
	assert.Equal(t, []interface{}{"y", "z"}, nested.Keys())
}

func TestConversionRoundTrip(t *testing.T) {
	input := map[string]interface{}{
		"key": []interface{}{map[string]interface{}{"nestedKey": "nestedValue"}},
	}

	ordered := orderedmap.Conversion{Object: input}.FromUnorderedMaps()
	back := orderedmap.Conversion{Object: ordered}.AsUnorderedStringMaps()

	assert.Equal(t, input, back)
}
