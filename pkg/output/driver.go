// Copyright 2026 the Kubegen Authors.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"os"
	"path/filepath"

	"github.com/kubegen/kubegen/pkg/cmd/ui"
)

// Driver writes rendered files to their destination.
type Driver interface {
	WriteFile(file File, filename string, contents string) error
}

// DirectoryDriver writes files into a directory, marking executables.
type DirectoryDriver struct {
	path string
}

func NewDirectoryDriver(path string) (*DirectoryDriver, error) {
	err := os.MkdirAll(path, 0755)
	if err != nil {
		return nil, NewWriteError("Creating output directory: %s", err)
	}
	return &DirectoryDriver{path: path}, nil
}

func (d *DirectoryDriver) WriteFile(file File, filename string, contents string) error {
	mode := os.FileMode(0644)
	if file.Executable() {
		mode = 0755
	}

	err := os.WriteFile(filepath.Join(d.path, filename), []byte(contents), mode)
	if err != nil {
		return NewWriteError("Writing file %q: %s", filename, err)
	}
	return nil
}

// PrintDriver prints files to the UI, framed by begin/end banners.
type PrintDriver struct {
	ui ui.UI
}

func NewPrintDriver(ui ui.UI) *PrintDriver {
	return &PrintDriver{ui: ui}
}

func (d *PrintDriver) WriteFile(file File, filename string, contents string) error {
	d.ui.Printf("****** BEGIN FILE: %s ********\n", filename)
	d.ui.Printf("%s\n", contents)
	d.ui.Printf("****** END FILE: %s ********\n", filename)
	return nil
}
