// Copyright 2026 the Kubegen Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package merge deep-merges document trees.

Mappings merge key by key (recursively), sequences append, and everything
else runs through an ordered fallback chain; when no fallback produces a
result the merge fails with a conflict naming the dotted path. Mergers
mutate their base argument and are configured once at package init; the
package-level mergers are stateless and safe to share.
*/
package merge
