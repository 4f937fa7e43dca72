// Copyright 2026 the Kubegen Authors.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/kubegen/kubegen/pkg/cmd/ui"
)

type ConvertOptions struct {
	Files []string
	Debug bool
}

func NewConvertOptions() *ConvertOptions {
	return &ConvertOptions{}
}

// NewConvertCmd converts YAML documents to JSON, a convenience for turning
// existing manifests into tree literals.
func NewConvertCmd(o *ConvertOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert YAML documents to JSON",
		RunE:  func(_ *cobra.Command, _ []string) error { return o.Run() },
	}
	cmd.Flags().StringArrayVarP(&o.Files, "file", "f", nil, "File (ie local path, -) (can be specified multiple times)")
	cmd.Flags().BoolVar(&o.Debug, "debug", false, "Enable debug output")
	return cmd
}

func (o *ConvertOptions) Run() error {
	ui := ui.NewTTY(o.Debug)
	t1 := time.Now()

	defer func() {
		ui.Debugf("total: %s\n", time.Now().Sub(t1))
	}()

	for _, path := range o.Files {
		data, err := o.readFile(path)
		if err != nil {
			return err
		}
		err = o.convert(data, ui)
		if err != nil {
			return fmt.Errorf("Converting %s: %s", path, err)
		}
	}

	return nil
}

func (o *ConvertOptions) readFile(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func (o *ConvertOptions) convert(data []byte, ui ui.UI) error {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	for {
		var doc interface{}
		err := decoder.Decode(&doc)
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		encoded, err := json.MarshalIndent(plainValue(doc), "", "  ")
		if err != nil {
			return err
		}
		ui.Printf("%s\n", encoded)
	}
}

// plainValue rewrites decoded YAML values so they are JSON-marshalable.
// Non-string map keys become their string representation.
func plainValue(value interface{}) interface{} {
	switch typedVal := value.(type) {
	case map[string]interface{}:
		result := map[string]interface{}{}
		for k, v := range typedVal {
			result[k] = plainValue(v)
		}
		return result
	case map[interface{}]interface{}:
		result := map[string]interface{}{}
		for k, v := range typedVal {
			result[fmt.Sprintf("%v", k)] = plainValue(v)
		}
		return result
	case []interface{}:
		result := make([]interface{}, len(typedVal))
		for i, v := range typedVal {
			result[i] = plainValue(v)
		}
		return result
	default:
		return value
	}
}
