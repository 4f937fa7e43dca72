// Copyright 2026 the Kubegen Authors.
// SPDX-License-Identifier: Apache-2.0

// Package yamlstyle provides string values tagged with a rendering-style
// hint. The engines treat them as ordinary strings except for the merge
// tie-break rule; the yamlgen package turns the hint into the matching YAML
// scalar style.
package yamlstyle

import "fmt"

// Style is the closed set of rendering hints a String can carry.
type Style int

const (
	// Quoted defers the quote character to the generator default.
	Quoted Style = iota
	SingleQuoted
	DoubleQuoted
	// Folded renders with the '>' block style.
	Folded
	// Literal renders with the '|' block style.
	Literal
)

func (s Style) String() string {
	switch s {
	case Quoted:
		return "quoted"
	case SingleQuoted:
		return "single-quoted"
	case DoubleQuoted:
		return "double-quoted"
	case Folded:
		return "folded"
	case Literal:
		return "literal"
	default:
		panic(fmt.Sprintf("unknown yamlstyle.Style: %d", int(s)))
	}
}

// String is a string scalar carrying a rendering style.
type String struct {
	Value string
	Style Style
}

func NewQuoted(value string) String       { return String{value, Quoted} }
func NewSingleQuoted(value string) String { return String{value, SingleQuoted} }
func NewDoubleQuoted(value string) String { return String{value, DoubleQuoted} }
func NewFolded(value string) String       { return String{value, Folded} }
func NewLiteral(value string) String      { return String{value, Literal} }

// NewInstance wraps value in base's style. Its content is not used.
func NewInstance(base String, value string) String {
	return String{Value: value, Style: base.Style}
}
