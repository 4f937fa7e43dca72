// Copyright 2026 the Kubegen Authors.
// SPDX-License-Identifier: Apache-2.0

package version

// Version is set via ldflags at release time.
var Version = "0.9.0"
