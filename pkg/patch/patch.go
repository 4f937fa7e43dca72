// Copyright 2026 the Kubegen Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package patch applies JSON-patch style operations to generated objects.

Beyond the RFC 6902 add/remove/replace/test set there is a "merge"
operation that deep-merges the patch value over the target value,
respecting conditional wrappers and styled strings.
*/
package patch

import (
	"reflect"

	"github.com/kubegen/kubegen/pkg/merge"
	"github.com/kubegen/kubegen/pkg/orderedmap"
)

type Op string

const (
	OpAdd     Op = "add"
	OpRemove  Op = "remove"
	OpReplace Op = "replace"
	OpMerge   Op = "merge"
	OpTest    Op = "test"
)

// Patch is a single operation targeting the value at Path.
type Patch struct {
	Op    Op
	Path  Pointer
	Value interface{}
}

// MustNewPointerFromString parses a pointer, panicking on malformed input.
// Intended for pointer literals.
func MustNewPointerFromString(str string) Pointer {
	ptr, err := NewPointerFromString(str)
	if err != nil {
		panic(err.Error())
	}
	return ptr
}

// Apply runs patches against doc in order, mutating it in place, and
// returns the resulting document. The result differs from doc only when a
// patch replaces the document root.
func Apply(doc interface{}, patches []Patch) (interface{}, error) {
	for _, p := range patches {
		var err error
		doc, err = p.apply(doc)
		if err != nil {
			return nil, err
		}
	}
	return doc, nil
}

func (p Patch) apply(doc interface{}) (interface{}, error) {
	switch p.Op {
	case OpAdd, OpRemove, OpReplace, OpMerge, OpTest:
	default:
		return nil, NewInvalidPatchError("Unknown patch operation %q", string(p.Op))
	}
	return p.applyTokens(doc, p.Path.tokens)
}

func (p Patch) applyTokens(node interface{}, tokens []string) (interface{}, error) {
	if len(tokens) == 0 {
		return p.applyRoot(node)
	}

	switch typedNode := node.(type) {
	case *orderedmap.Map:
		if len(tokens) == 1 {
			err := p.applyToMap(typedNode, tokens[0])
			return typedNode, err
		}
		child, found := typedNode.Get(tokens[0])
		if !found {
			return nil, NewInvalidPatchError("Member %q not found in pointer %q", tokens[0], p.Path.String())
		}
		newChild, err := p.applyTokens(child, tokens[1:])
		if err != nil {
			return nil, err
		}
		typedNode.Set(tokens[0], newChild)
		return typedNode, nil

	case []interface{}:
		if len(tokens) == 1 {
			return p.applyToSeq(typedNode, tokens[0])
		}
		idx, err := arrayIndex(tokens[0], len(typedNode), false)
		if err != nil {
			return nil, err
		}
		newChild, err := p.applyTokens(typedNode[idx], tokens[1:])
		if err != nil {
			return nil, err
		}
		typedNode[idx] = newChild
		return typedNode, nil

	default:
		return nil, NewInvalidPatchError("Cannot traverse %s at pointer %q",
			merge.TypeName(node), p.Path.String())
	}
}

func (p Patch) applyRoot(node interface{}) (interface{}, error) {
	switch p.Op {
	case OpAdd, OpReplace:
		return p.Value, nil
	case OpMerge:
		return merge.DataAware.Merge(node, p.Value)
	case OpTest:
		if !treeEqual(node, p.Value) {
			return nil, NewInvalidPatchError("Test operation failed at document root")
		}
		return node, nil
	default:
		return nil, NewInvalidPatchError("Cannot remove document root")
	}
}

func (p Patch) applyToMap(m *orderedmap.Map, key string) error {
	switch p.Op {
	case OpAdd:
		m.Set(key, p.Value)
		return nil

	case OpRemove:
		if !m.Delete(key) {
			return NewInvalidPatchError("Member %q not found in pointer %q", key, p.Path.String())
		}
		return nil

	case OpReplace:
		if !m.Has(key) {
			return NewInvalidPatchError("Member %q not found in pointer %q", key, p.Path.String())
		}
		m.Set(key, p.Value)
		return nil

	case OpTest:
		current, found := m.Get(key)
		if !found {
			return NewInvalidPatchError("Member %q not found in pointer %q", key, p.Path.String())
		}
		if !treeEqual(current, p.Value) {
			return NewInvalidPatchError("Test operation failed at pointer %q", p.Path.String())
		}
		return nil

	default: // OpMerge
		current, found := m.Get(key)
		if !found {
			return NewInvalidPatchError("Member %q not found in pointer %q", key, p.Path.String())
		}
		merged, err := merge.DataAware.Merge(current, p.Value)
		if err != nil {
			return err
		}
		m.Set(key, merged)
		return nil
	}
}

func (p Patch) applyToSeq(seq []interface{}, token string) (interface{}, error) {
	idx, err := arrayIndex(token, len(seq), p.Op == OpAdd)
	if err != nil {
		return nil, err
	}

	switch p.Op {
	case OpAdd:
		seq = append(seq, nil)
		copy(seq[idx+1:], seq[idx:])
		seq[idx] = p.Value
		return seq, nil

	case OpRemove:
		return append(seq[:idx], seq[idx+1:]...), nil

	case OpReplace:
		seq[idx] = p.Value
		return seq, nil

	case OpTest:
		if !treeEqual(seq[idx], p.Value) {
			return nil, NewInvalidPatchError("Test operation failed at pointer %q", p.Path.String())
		}
		return seq, nil

	default: // OpMerge
		merged, err := merge.DataAware.Merge(seq[idx], p.Value)
		if err != nil {
			return nil, err
		}
		seq[idx] = merged
		return seq, nil
	}
}

func treeEqual(a, b interface{}) bool { return reflect.DeepEqual(a, b) }
