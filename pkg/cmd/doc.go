// Copyright 2026 the Kubegen Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package cmd is home to the kubegen "commands" -- instances of cobra.Command
(not to be confused with ./cmd which contains the bootstrapping for executing
kubegen as a binary).

For a list of commands run:

	$ kubegen help
*/
package cmd
