// Copyright 2026 the Kubegen Authors.
// SPDX-License-Identifier: Apache-2.0

package patch_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kubegen/kubegen/pkg/data"
	"github.com/kubegen/kubegen/pkg/object"
	"github.com/kubegen/kubegen/pkg/orderedmap"
	"github.com/kubegen/kubegen/pkg/patch"
	"github.com/kubegen/kubegen/pkg/yamlstyle"
)

func nestedDoc(t *testing.T) *object.Object {
	obj, err := object.New(orderedmap.NewMapWithItems([]orderedmap.MapItem{
		{Key: "foo", Value: "bar"},
		{Key: "shin", Value: orderedmap.NewMapWithItems([]orderedmap.MapItem{
			{Key: "gami", Value: "hai"},
			{Key: "shami", Value: "nai"},
		})},
	}), "x", "y", "z")
	require.NoError(t, err)
	return obj
}

func flatDoc(t *testing.T) *object.Object {
	obj, err := object.New(orderedmap.NewMapWithItems([]orderedmap.MapItem{
		{Key: "foo", Value: "bar"},
		{Key: "shin", Value: "gami"},
	}), "x", "y", "z")
	require.NoError(t, err)
	return obj
}

func addTari() []patch.Patch {
	return []patch.Patch{
		{Op: patch.OpAdd, Path: patch.MustNewPointerFromString("/shin/tari"), Value: "bai"},
	}
}

func shinMap(t *testing.T, obj *object.Object) *orderedmap.Map {
	shin, found := obj.Value.(*orderedmap.Map).Get("shin")
	require.True(t, found)
	return shin.(*orderedmap.Map)
}

func TestFilterApplyMatchingName(t *testing.T) {
	obj := nestedDoc(t)

	_, err := patch.FilterApply([]interface{}{obj}, []patch.FilterPatch{
		{Filters: []patch.Filter{patch.ObjectFilter{Names: []string{"x"}}}, Patches: addTari()},
	})
	require.NoError(t, err)

	assert.Equal(t, []interface{}{"gami", "shami", "tari"}, shinMap(t, obj).Keys())
}

func TestFilterApplyNonMatching(t *testing.T) {
	for _, filter := range []patch.Filter{
		patch.ObjectFilter{Names: []string{"a"}},
		patch.ObjectFilter{Sources: []string{"b"}},
		patch.ObjectFilter{Instances: []string{"c"}},
		patch.ObjectFilter{Names: []string{"a"}, Sources: []string{"y"}, Instances: []string{"z"}},
	} {
		obj := nestedDoc(t)

		_, err := patch.FilterApply([]interface{}{obj}, []patch.FilterPatch{
			{Filters: []patch.Filter{filter}, Patches: addTari()},
		})
		require.NoError(t, err)

		assert.False(t, shinMap(t, obj).Has("tari"))
	}
}

func TestFilterApplyAllIdentityConditions(t *testing.T) {
	obj := nestedDoc(t)

	_, err := patch.FilterApply([]interface{}{obj}, []patch.FilterPatch{
		{
			Filters: []patch.Filter{patch.ObjectFilter{
				Names: []string{"x"}, Sources: []string{"y"}, Instances: []string{"z"},
			}},
			Patches: addTari(),
		},
	})
	require.NoError(t, err)

	assert.True(t, shinMap(t, obj).Has("tari"))
}

func TestFilterApplyFuncFilter(t *testing.T) {
	obj := flatDoc(t)

	matcher := func(name string) patch.Filter {
		return patch.FilterFunc(func(item interface{}) bool {
			return item.(*object.Object).Name == name
		})
	}

	_, err := patch.FilterApply([]interface{}{obj}, []patch.FilterPatch{
		{Filters: []patch.Filter{matcher("x")}, Patches: []patch.Patch{
			{Op: patch.OpAdd, Path: patch.MustNewPointerFromString("/tari"), Value: "bai"},
		}},
		{Filters: []patch.Filter{matcher("k")}, Patches: []patch.Patch{
			{Op: patch.OpAdd, Path: patch.MustNewPointerFromString("/gari"), Value: "sai"},
		}},
	})
	require.NoError(t, err)

	m := obj.Value.(*orderedmap.Map)
	assert.True(t, m.Has("tari"))
	assert.False(t, m.Has("gari"))
}

func TestFilterApplyAnyFilterAccepts(t *testing.T) {
	obj := flatDoc(t)

	_, err := patch.FilterApply([]interface{}{obj}, []patch.FilterPatch{
		{
			Filters: []patch.Filter{
				patch.ObjectFilter{Names: []string{"a"}},
				patch.ObjectFilter{Names: []string{"x"}},
			},
			Patches: []patch.Patch{
				{Op: patch.OpAdd, Path: patch.MustNewPointerFromString("/tari"), Value: "bai"},
			},
		},
	})
	require.NoError(t, err)

	assert.True(t, obj.Value.(*orderedmap.Map).Has("tari"))
}

func TestFilterApplyAnyFuncAccepts(t *testing.T) {
	named := func(name string) func(item interface{}) bool {
		return func(item interface{}) bool { return item.(*object.Object).Name == name }
	}

	obj := flatDoc(t)

	_, err := patch.FilterApply([]interface{}{obj}, []patch.FilterPatch{
		{
			Filters: []patch.Filter{patch.ObjectFilter{Funcs: []func(interface{}) bool{named("a"), named("b")}}},
			Patches: []patch.Patch{{Op: patch.OpAdd, Path: patch.MustNewPointerFromString("/tari"), Value: "bai"}},
		},
	})
	require.NoError(t, err)
	assert.False(t, obj.Value.(*orderedmap.Map).Has("tari"))

	_, err = patch.FilterApply([]interface{}{obj}, []patch.FilterPatch{
		{
			Filters: []patch.Filter{patch.ObjectFilter{Funcs: []func(interface{}) bool{named("a"), named("x")}}},
			Patches: []patch.Patch{{Op: patch.OpAdd, Path: patch.MustNewPointerFromString("/tari"), Value: "bai"}},
		},
	})
	require.NoError(t, err)
	assert.True(t, obj.Value.(*orderedmap.Map).Has("tari"))
}

func TestFilterApplyRawTreeWithIdentityFilter(t *testing.T) {
	tree := orderedmap.NewMapWithItems([]orderedmap.MapItem{{Key: "foo", Value: "bar"}})

	items, err := patch.FilterApply([]interface{}{tree}, []patch.FilterPatch{
		{Filters: []patch.Filter{patch.ObjectFilter{Names: []string{"x"}}}, Patches: []patch.Patch{
			{Op: patch.OpAdd, Path: patch.MustNewPointerFromString("/tari"), Value: "bai"},
		}},
	})
	require.NoError(t, err)

	assert.False(t, items[0].(*orderedmap.Map).Has("tari"))
}

func TestApplyToDataValue(t *testing.T) {
	// Conditional wrappers are cleaned when the object is built, so the
	// pointer resolves into the unwrapped tree.
	obj, err := object.New(orderedmap.NewMapWithItems([]orderedmap.MapItem{
		{Key: "foo", Value: "bar"},
		{Key: "shin", Value: data.ValueData{
			Value: orderedmap.NewMapWithItems([]orderedmap.MapItem{
				{Key: "gami", Value: "hai"},
				{Key: "shami", Value: "nai"},
			}),
			Enabled: true,
		}},
	}), "x", "", "")
	require.NoError(t, err)

	_, err = patch.FilterApply([]interface{}{obj}, []patch.FilterPatch{
		{Filters: []patch.Filter{patch.ObjectFilter{Names: []string{"x"}}}, Patches: addTari()},
	})
	require.NoError(t, err)

	assert.Equal(t, []interface{}{"gami", "shami", "tari"}, shinMap(t, obj).Keys())
}

func TestReplaceStyledWithPlain(t *testing.T) {
	obj, err := object.New(orderedmap.NewMapWithItems([]orderedmap.MapItem{
		{Key: "shin", Value: yamlstyle.NewQuoted("gami")},
	}), "x", "", "")
	require.NoError(t, err)

	_, err = patch.Apply(obj.Value, []patch.Patch{
		{Op: patch.OpReplace, Path: patch.MustNewPointerFromString("/shin"), Value: "bai"},
	})
	require.NoError(t, err)

	val, _ := obj.Value.(*orderedmap.Map).Get("shin")
	assert.Equal(t, "bai", val)
}

func TestMergeStyledTieBreak(t *testing.T) {
	base := orderedmap.NewMapWithItems([]orderedmap.MapItem{
		{Key: "quoted", Value: yamlstyle.NewQuoted("gami")},
		{Key: "styled", Value: yamlstyle.NewQuoted("gami")},
		{Key: "plain", Value: "gami"},
	})

	_, err := patch.Apply(base, []patch.Patch{
		{Op: patch.OpMerge, Path: patch.Pointer{}, Value: orderedmap.NewMapWithItems([]orderedmap.MapItem{
			{Key: "quoted", Value: "bai"},
			{Key: "styled", Value: yamlstyle.NewLiteral("bai")},
			{Key: "plain", Value: yamlstyle.NewLiteral("bai")},
		})},
	})
	require.NoError(t, err)

	quoted, _ := base.Get("quoted")
	assert.Equal(t, yamlstyle.NewQuoted("bai"), quoted)

	styled, _ := base.Get("styled")
	assert.Equal(t, yamlstyle.NewLiteral("bai"), styled)

	plain, _ := base.Get("plain")
	assert.Equal(t, yamlstyle.NewLiteral("bai"), plain)
}

func TestApplySequenceOps(t *testing.T) {
	doc := orderedmap.NewMapWithItems([]orderedmap.MapItem{
		{Key: "ports", Value: []interface{}{80, 443}},
	})

	_, err := patch.Apply(doc, []patch.Patch{
		{Op: patch.OpAdd, Path: patch.MustNewPointerFromString("/ports/1"), Value: 8080},
		{Op: patch.OpAdd, Path: patch.MustNewPointerFromString("/ports/-"), Value: 9090},
		{Op: patch.OpRemove, Path: patch.MustNewPointerFromString("/ports/0")},
		{Op: patch.OpReplace, Path: patch.MustNewPointerFromString("/ports/0"), Value: 8081},
	})
	require.NoError(t, err)

	ports, _ := doc.Get("ports")
	assert.Equal(t, []interface{}{8081, 443, 9090}, ports)
}

func TestApplyTestOp(t *testing.T) {
	doc := orderedmap.NewMapWithItems([]orderedmap.MapItem{{Key: "foo", Value: "bar"}})

	_, err := patch.Apply(doc, []patch.Patch{
		{Op: patch.OpTest, Path: patch.MustNewPointerFromString("/foo"), Value: "bar"},
	})
	require.NoError(t, err)

	_, err = patch.Apply(doc, []patch.Patch{
		{Op: patch.OpTest, Path: patch.MustNewPointerFromString("/foo"), Value: "nope"},
	})
	require.Error(t, err)
}

func TestApplyErrors(t *testing.T) {
	doc := orderedmap.NewMapWithItems([]orderedmap.MapItem{{Key: "foo", Value: "bar"}})

	_, err := patch.Apply(doc, []patch.Patch{
		{Op: patch.OpReplace, Path: patch.MustNewPointerFromString("/missing"), Value: 1},
	})
	require.Error(t, err)
	assert.Equal(t, `Member "missing" not found in pointer "/missing"`, err.Error())

	_, err = patch.Apply(doc, []patch.Patch{
		{Op: patch.OpRemove, Path: patch.MustNewPointerFromString("/nope")},
	})
	require.Error(t, err)

	_, err = patch.Apply(doc, []patch.Patch{
		{Op: "frobnicate", Path: patch.MustNewPointerFromString("/foo")},
	})
	require.Error(t, err)
}

func TestPointerEscaping(t *testing.T) {
	doc := orderedmap.NewMapWithItems([]orderedmap.MapItem{
		{Key: "a/b", Value: orderedmap.NewMapWithItems([]orderedmap.MapItem{
			{Key: "c~d", Value: 1},
		})},
	})

	_, err := patch.Apply(doc, []patch.Patch{
		{Op: patch.OpReplace, Path: patch.MustNewPointerFromString("/a~1b/c~0d"), Value: 2},
	})
	require.NoError(t, err)

	inner, _ := doc.Get("a/b")
	val, _ := inner.(*orderedmap.Map).Get("c~d")
	assert.Equal(t, 2, val)

	ptr, err := patch.NewPointerFromString("/a~1b/c~0d")
	require.NoError(t, err)
	assert.Equal(t, "/a~1b/c~0d", ptr.String())
}

func TestPointerInvalid(t *testing.T) {
	_, err := patch.NewPointerFromString("foo")
	require.Error(t, err)
}
