// Copyright 2026 the Kubegen Authors.
// SPDX-License-Identifier: Apache-2.0

package merge_test

import (
	"fmt"
	"testing"

	fuzz "github.com/google/gofuzz"
	"github.com/kubegen/kubegen/pkg/merge"
	"github.com/kubegen/kubegen/pkg/orderedmap"
	"github.com/kubegen/kubegen/pkg/yamlstyle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeDisjointKeysYieldsUnion(t *testing.T) {
	base := orderedmap.NewMapWithItems([]orderedmap.MapItem{
		{Key: "a", Value: 1},
		{Key: "b", Value: 2},
	})
	incoming := orderedmap.NewMapWithItems([]orderedmap.MapItem{
		{Key: "d", Value: 4},
		{Key: "c", Value: 3},
	})

	result, err := merge.Default.Merge(base, incoming)
	require.NoError(t, err)

	merged := result.(*orderedmap.Map)
	assert.Same(t, base, merged)
	assert.Equal(t, []interface{}{"a", "b", "d", "c"}, merged.Keys())
}

func TestMergeNestedMaps(t *testing.T) {
	base := orderedmap.NewMapWithItems([]orderedmap.MapItem{
		{Key: "spec", Value: orderedmap.NewMapWithItems([]orderedmap.MapItem{
			{Key: "replicas", Value: 1},
			{Key: "paused", Value: false},
		})},
	})
	incoming := orderedmap.NewMapWithItems([]orderedmap.MapItem{
		{Key: "spec", Value: orderedmap.NewMapWithItems([]orderedmap.MapItem{
			{Key: "replicas", Value: 3},
		})},
	})

	_, err := merge.Default.Merge(base, incoming)
	require.NoError(t, err)

	spec, _ := base.Get("spec")
	replicas, _ := spec.(*orderedmap.Map).Get("replicas")
	paused, _ := spec.(*orderedmap.Map).Get("paused")
	assert.Equal(t, 3, replicas)
	assert.Equal(t, false, paused)
}

func TestMergeSequencesAppend(t *testing.T) {
	base := orderedmap.NewMapWithItems([]orderedmap.MapItem{
		{Key: "args", Value: []interface{}{"--a", "--b"}},
	})
	incoming := orderedmap.NewMapWithItems([]orderedmap.MapItem{
		{Key: "args", Value: []interface{}{"--b", "--c"}},
	})

	_, err := merge.Default.Merge(base, incoming)
	require.NoError(t, err)

	args, _ := base.Get("args")
	assert.Equal(t, []interface{}{"--a", "--b", "--b", "--c"}, args)
}

func TestNoCreateRejectsNewKeys(t *testing.T) {
	base := orderedmap.NewMapWithItems([]orderedmap.MapItem{
		{Key: "foo", Value: orderedmap.NewMapWithItems([]orderedmap.MapItem{
			{Key: "bar", Value: 1},
		})},
	})
	incoming := orderedmap.NewMapWithItems([]orderedmap.MapItem{
		{Key: "foo", Value: orderedmap.NewMapWithItems([]orderedmap.MapItem{
			{Key: "nobar", Value: 2},
		})},
	})

	_, err := merge.NoCreate.Merge(base, incoming)
	require.Error(t, err)

	unknownKeyErr, ok := err.(*merge.UnknownKeyError)
	require.True(t, ok)
	assert.Equal(t, `Unknown option: "foo.nobar"`, unknownKeyErr.Error())
}

func TestMergeTypeConflictNamesPath(t *testing.T) {
	base := orderedmap.NewMapWithItems([]orderedmap.MapItem{
		{Key: "spec", Value: orderedmap.NewMapWithItems([]orderedmap.MapItem{
			{Key: "port", Value: 8080},
		})},
	})
	incoming := orderedmap.NewMapWithItems([]orderedmap.MapItem{
		{Key: "spec", Value: orderedmap.NewMapWithItems([]orderedmap.MapItem{
			{Key: "port", Value: "8080"},
		})},
	})

	_, err := merge.Default.Merge(base, incoming)
	require.Error(t, err)
	assert.Equal(t, "Type conflict at 'spec.port': integer, string", err.Error())
}

func TestMergeScalarOverride(t *testing.T) {
	base := orderedmap.NewMapWithItems([]orderedmap.MapItem{{Key: "image", Value: "app:1.0"}})
	incoming := orderedmap.NewMapWithItems([]orderedmap.MapItem{{Key: "image", Value: "app:2.0"}})

	_, err := merge.Default.Merge(base, incoming)
	require.NoError(t, err)

	image, _ := base.Get("image")
	assert.Equal(t, "app:2.0", image)
}

func TestStyledStringTieBreaks(t *testing.T) {
	tests := []struct {
		description string
		base        interface{}
		incoming    interface{}
		expected    interface{}
	}{
		{"plain into styled keeps base style", yamlstyle.NewQuoted("gami"), "bai", yamlstyle.NewQuoted("bai")},
		{"styled into plain adopts incoming style", "gami", yamlstyle.NewQuoted("bai"), yamlstyle.NewQuoted("bai")},
		{"styled into styled keeps incoming style", yamlstyle.NewQuoted("gami"), yamlstyle.NewLiteral("bai"), yamlstyle.NewLiteral("bai")},
		{"plain into plain overrides", "gami", "bai", "bai"},
	}

	for _, tc := range tests {
		base := orderedmap.NewMapWithItems([]orderedmap.MapItem{{Key: "shin", Value: tc.base}})
		incoming := orderedmap.NewMapWithItems([]orderedmap.MapItem{{Key: "shin", Value: tc.incoming}})

		_, err := merge.DataAware.Merge(base, incoming)
		require.NoError(t, err, tc.description)

		result, _ := base.Get("shin")
		assert.Equal(t, tc.expected, result, tc.description)
	}
}

type enabledStub struct{ value interface{} }

func (s enabledStub) IsEnabled() bool                { return true }
func (s enabledStub) GetValue() (interface{}, error) { return s.value, nil }

type disabledStub struct{ value interface{} }

func (s disabledStub) IsEnabled() bool                { return false }
func (s disabledStub) GetValue() (interface{}, error) { return s.value, nil }

func TestDataAwareResolvesWrappedBase(t *testing.T) {
	base := orderedmap.NewMapWithItems([]orderedmap.MapItem{
		{Key: "shin", Value: enabledStub{orderedmap.NewMapWithItems([]orderedmap.MapItem{
			{Key: "gami", Value: "hai"},
		})}},
	})
	incoming := orderedmap.NewMapWithItems([]orderedmap.MapItem{
		{Key: "shin", Value: orderedmap.NewMapWithItems([]orderedmap.MapItem{
			{Key: "tari", Value: "bai"},
		})},
	})

	_, err := merge.DataAware.Merge(base, incoming)
	require.NoError(t, err)

	shin := mustGet(t, base, "shin").(*orderedmap.Map)
	assert.Equal(t, "hai", mustGet(t, shin, "gami"))
	assert.Equal(t, "bai", mustGet(t, shin, "tari"))
}

func TestDataAwareDisabledWrapperBecomesEmptyShape(t *testing.T) {
	base := orderedmap.NewMapWithItems([]orderedmap.MapItem{
		{Key: "shin", Value: disabledStub{orderedmap.NewMap()}},
	})
	incoming := orderedmap.NewMapWithItems([]orderedmap.MapItem{
		{Key: "shin", Value: orderedmap.NewMapWithItems([]orderedmap.MapItem{
			{Key: "tari", Value: "bai"},
		})},
	})

	_, err := merge.DataAware.Merge(base, incoming)
	require.NoError(t, err)

	shin := mustGet(t, base, "shin").(*orderedmap.Map)
	assert.Equal(t, []interface{}{"tari"}, shin.Keys())
}

// Same-typed scalar pairs must always merge without conflict, whatever the
// values are.
func TestMergeFuzzedScalarsNeverConflict(t *testing.T) {
	fuzzer := fuzz.New()

	for i := 0; i < 100; i++ {
		var strVal string
		var intVal int
		fuzzer.Fuzz(&strVal)
		fuzzer.Fuzz(&intVal)

		base := orderedmap.NewMapWithItems([]orderedmap.MapItem{
			{Key: "s", Value: fmt.Sprintf("base-%d", i)},
			{Key: "i", Value: i},
		})
		incoming := orderedmap.NewMapWithItems([]orderedmap.MapItem{
			{Key: "s", Value: strVal},
			{Key: "i", Value: intVal},
		})

		_, err := merge.Default.Merge(base, incoming)
		require.NoError(t, err)

		mergedStr, _ := base.Get("s")
		mergedInt, _ := base.Get("i")
		assert.Equal(t, strVal, mergedStr)
		assert.Equal(t, intVal, mergedInt)
	}
}

func mustGet(t *testing.T, m *orderedmap.Map, key interface{}) interface{} {
	t.Helper()
	val, found := m.Get(key)
	require.True(t, found, "key %v not found", key)
	return val
}
