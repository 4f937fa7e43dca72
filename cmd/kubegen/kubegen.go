// Copyright 2026 the Kubegen Authors.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"os"

	uierrs "github.com/cppforlife/go-cli-ui/errors"

	"github.com/kubegen/kubegen/pkg/cmd"
)

func main() {
	command := cmd.NewDefaultKubegenCmd()

	err := command.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "kubegen: Error: %s\n", uierrs.NewMultiLineError(err))
		os.Exit(1)
	}
}
