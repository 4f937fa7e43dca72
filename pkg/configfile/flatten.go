// Copyright 2026 the Kubegen Authors.
// SPDX-License-Identifier: Apache-2.0

package configfile

import (
	"fmt"

	"github.com/kubegen/kubegen/pkg/orderedmap"
)

// Flatten collapses a nested mapping to a single level, joining key paths
// with sep ("a" + sep + "b").
func Flatten(m *orderedmap.Map, sep string) *orderedmap.Map {
	result := orderedmap.NewMap()
	flattenInto(result, m, "", sep)
	return result
}

func flattenInto(result, m *orderedmap.Map, prefix, sep string) {
	m.Iterate(func(k, v interface{}) {
		key := fmt.Sprintf("%v", k)
		if prefix != "" {
			key = prefix + sep + key
		}
		if nested, ok := v.(*orderedmap.Map); ok {
			flattenInto(result, nested, key, sep)
			return
		}
		result.Set(key, v)
	})
}
