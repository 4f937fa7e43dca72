// Copyright 2026 the Kubegen Authors.
// SPDX-License-Identifier: Apache-2.0

package option

import (
	"strings"

	"github.com/kubegen/kubegen/pkg/orderedmap"
)

// DictGetValue walks tree along a dotted path (eg "config.service_port")
// and returns the value it reaches.
func DictGetValue(tree interface{}, name string) (interface{}, error) {
	current := tree
	for _, chunk := range strings.Split(name, ".") {
		currentMap, ok := current.(*orderedmap.Map)
		if !ok {
			return nil, NewNotFoundError(name)
		}
		val, found := currentMap.Get(chunk)
		if !found {
			return nil, NewNotFoundError(name)
		}
		current = val
	}
	return current, nil
}

// DictHasName reports whether tree has a value at the dotted path.
func DictHasName(tree interface{}, name string) bool {
	current := tree
	for _, chunk := range strings.Split(name, ".") {
		currentMap, ok := current.(*orderedmap.Map)
		if !ok {
			return false
		}
		val, found := currentMap.Get(chunk)
		if !found {
			return false
		}
		current = val
	}
	return true
}
