// Copyright 2026 the Kubegen Authors.
// SPDX-License-Identifier: Apache-2.0

package patch

import (
	"strconv"
	"strings"
)

// Pointer is a JSON pointer (RFC 6901) resolved over ordered-map trees.
// The empty pointer refers to the whole document; the token "-" refers to
// the position past the end of an array.
type Pointer struct {
	tokens []string
}

// NewPointerFromString parses a pointer such as "/spec/ports/0/name".
func NewPointerFromString(str string) (Pointer, error) {
	if str == "" {
		return Pointer{}, nil
	}
	if !strings.HasPrefix(str, "/") {
		return Pointer{}, NewInvalidPatchError("Invalid pointer %q: must start with \"/\"", str)
	}

	var tokens []string
	for _, token := range strings.Split(str[1:], "/") {
		token = strings.ReplaceAll(token, "~1", "/")
		token = strings.ReplaceAll(token, "~0", "~")
		tokens = append(tokens, token)
	}
	return Pointer{tokens: tokens}, nil
}

func (p Pointer) String() string {
	var str strings.Builder
	for _, token := range p.tokens {
		token = strings.ReplaceAll(token, "~", "~0")
		token = strings.ReplaceAll(token, "/", "~1")
		str.WriteString("/")
		str.WriteString(token)
	}
	return str.String()
}

// IsRoot reports whether the pointer refers to the whole document.
func (p Pointer) IsRoot() bool { return len(p.tokens) == 0 }

// Parent returns the pointer to the container holding the referenced
// value, plus the final token. Calling it on the root pointer is invalid.
func (p Pointer) Parent() (Pointer, string) {
	last := len(p.tokens) - 1
	return Pointer{tokens: p.tokens[:last]}, p.tokens[last]
}

func arrayIndex(token string, length int, forAdd bool) (int, error) {
	if token == "-" {
		if !forAdd {
			return 0, NewInvalidPatchError(`Index "-" is only valid when adding`)
		}
		return length, nil
	}
	idx, err := strconv.Atoi(token)
	if err != nil {
		return 0, NewInvalidPatchError("Invalid array index %q", token)
	}
	max := length
	if !forAdd {
		max = length - 1
	}
	if idx < 0 || idx > max {
		return 0, NewInvalidPatchError("Array index %d out of range", idx)
	}
	return idx, nil
}
