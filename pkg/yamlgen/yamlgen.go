// Copyright 2026 the Kubegen Authors.
// SPDX-License-Identifier: Apache-2.0

// Package yamlgen renders generated object trees as YAML, honoring scalar
// style tags and dropping disabled conditional values.
package yamlgen

import (
	"bytes"

	"gopkg.in/yaml.v3"

	"github.com/kubegen/kubegen/pkg/data"
	"github.com/kubegen/kubegen/pkg/object"
	"github.com/kubegen/kubegen/pkg/option"
	"github.com/kubegen/kubegen/pkg/orderedmap"
	"github.com/kubegen/kubegen/pkg/yamlstyle"
)

// Generator renders values as YAML documents. QuotedSingle selects the
// quote character used for the generic quoted style; providers that favor
// double quotes set it to false.
type Generator struct {
	QuotedSingle bool
}

func NewGenerator(quotedSingle bool) *Generator {
	return &Generator{QuotedSingle: quotedSingle}
}

// Generate renders value as a YAML document. A []interface{} of documents
// renders as a multi-document stream.
func (g *Generator) Generate(value interface{}) (string, error) {
	docs, isMulti := value.([]interface{})
	if !isMulti {
		docs = []interface{}{value}
	}

	var buf bytes.Buffer

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)

	for _, doc := range docs {
		node, err := g.node(doc)
		if err != nil {
			return "", err
		}
		err = enc.Encode(node)
		if err != nil {
			return "", err
		}
	}

	err := enc.Close()
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}

func (g *Generator) node(value interface{}) (*yaml.Node, error) {
	switch typedVal := value.(type) {
	case nil:
		return nullNode(), nil

	case *object.Object:
		return g.node(typedVal.Value)

	case *option.Def:
		return nil, NewRenderError("Option definition cannot be rendered to YAML")

	case data.Data:
		if !typedVal.IsEnabled() {
			return nullNode(), nil
		}
		val, err := typedVal.GetValue()
		if err != nil {
			return nil, err
		}
		return g.node(val)

	case *orderedmap.Map:
		node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		err := typedVal.IterateErr(func(k, v interface{}) error {
			if d, ok := v.(data.Data); ok && !d.IsEnabled() {
				return nil
			}
			keyNode, err := g.node(k)
			if err != nil {
				return err
			}
			valNode, err := g.node(v)
			if err != nil {
				return err
			}
			node.Content = append(node.Content, keyNode, valNode)
			return nil
		})
		if err != nil {
			return nil, err
		}
		return node, nil

	case []interface{}:
		node := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, item := range typedVal {
			if d, ok := item.(data.Data); ok && !d.IsEnabled() {
				continue
			}
			itemNode, err := g.node(item)
			if err != nil {
				return nil, err
			}
			node.Content = append(node.Content, itemNode)
		}
		return node, nil

	case yamlstyle.String:
		node := g.scalarNode(typedVal.Value)
		node.Style = g.scalarStyle(typedVal.Style)
		return node, nil

	default:
		return g.scalarNode(value), nil
	}
}

func nullNode() *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
}

func (g *Generator) scalarNode(value interface{}) *yaml.Node {
	node := &yaml.Node{}
	err := node.Encode(value)
	if err != nil {
		// Scalars losslessly representable in YAML cannot fail to encode.
		panic("yamlgen: " + err.Error())
	}
	return node
}

func (g *Generator) scalarStyle(style yamlstyle.Style) yaml.Style {
	switch style {
	case yamlstyle.SingleQuoted:
		return yaml.SingleQuotedStyle
	case yamlstyle.DoubleQuoted:
		return yaml.DoubleQuotedStyle
	case yamlstyle.Folded:
		return yaml.FoldedStyle
	case yamlstyle.Literal:
		return yaml.LiteralStyle
	default: // yamlstyle.Quoted
		if g.QuotedSingle {
			return yaml.SingleQuotedStyle
		}
		return yaml.DoubleQuotedStyle
	}
}
