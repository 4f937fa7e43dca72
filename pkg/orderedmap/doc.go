// Copyright 2026 the Kubegen Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package orderedmap provides the mapping type used in all generated document
trees: keys are unique and iteration follows insertion order, matching the
key ordering of the rendered YAML.

A document tree is an interface{} value where mappings are *orderedmap.Map,
sequences are []interface{}, and everything else is a scalar leaf.
*/
package orderedmap
