// Copyright 2026 the Kubegen Authors.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"github.com/cppforlife/cobrautil"
	"github.com/spf13/cobra"

	"github.com/kubegen/kubegen/pkg/version"
)

type KubegenOptions struct{}

func NewDefaultKubegenOptions() *KubegenOptions {
	return &KubegenOptions{}
}

func NewDefaultKubegenCmd() *cobra.Command {
	return NewKubegenCmd(NewDefaultKubegenOptions())
}

func NewKubegenCmd(o *KubegenOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "kubegen",
		Version: version.Version,
		Short:   "kubegen generates Kubernetes manifests from configuration",
		Long: `kubegen generates Kubernetes manifests from configuration.

Builders assemble manifest trees from options, patches adjust them, and
output projects write the numbered YAML files and scripts to apply them.`,
	}

	// Affects children as well
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	// Disable docs header
	cmd.DisableAutoGenTag = true

	cmd.AddCommand(NewVersionCmd(NewVersionOptions()))
	cmd.AddCommand(NewConvertCmd(NewConvertOptions()))

	// Reconfigure Commands
	cobrautil.VisitCommands(cmd, cobrautil.ReconfigureCmdWithSubcmd,
		cobrautil.DisallowExtraArgs, cobrautil.WrapRunEForCmd(cobrautil.ResolveFlagsForCmd))

	return cmd
}
