// Copyright 2026 the Kubegen Authors.
// SPDX-License-Identifier: Apache-2.0

// Package output collects generated content into named files and writes
// them through pluggable drivers. Files can be sequenced, in which case
// they receive a numeric prefix in dependency order, and can reference
// each other by file ID through ${FILE_id} templates.
package output

import (
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
)

// Raw marks a string to be written as-is, outside any document separation
// the file format performs.
type Raw string

// FileTemplate marks a string whose ${FILE_id} references are replaced
// with the output filenames of the project's files.
type FileTemplate string

// Dumper converts appended data to strings, expanding file templates
// against the project's file-ID table.
type Dumper struct {
	fileIDs map[string]string
}

func NewDumper(fileIDs map[string]string) *Dumper {
	return &Dumper{fileIDs: fileIDs}
}

// Dump renders a single appended data item to a string.
func (d *Dumper) Dump(data interface{}) (string, error) {
	switch typedData := data.(type) {
	case FileTemplate:
		return d.expand(string(typedData))
	case Raw:
		return string(typedData), nil
	case string:
		return typedData, nil
	case []byte:
		return string(typedData), nil
	default:
		return fmt.Sprintf("%v", data), nil
	}
}

func (d *Dumper) expand(template string) (string, error) {
	var missing []string
	expanded := os.Expand(template, func(name string) string {
		value, ok := d.fileIDs[name]
		if !ok {
			missing = append(missing, name)
		}
		return value
	})
	if len(missing) > 0 {
		return "", NewWriteError("Unknown file reference %q in template", missing[0])
	}
	return expanded, nil
}

// File is a single output file being assembled.
type File interface {
	Filename() string
	FileID() string
	IsSequence() bool
	Executable() bool

	// OutputFilename returns the filename to write. seq is the position
	// in the project's sequence, or -1 for non-sequenced files.
	OutputFilename(seq int) (string, error)

	Append(data interface{})
	Render(dumper *Dumper) (string, error)
}

// FileBase implements the common parts of File. The specialized file
// types embed it.
type FileBase struct {
	filename   string
	fileID     string
	isSequence bool
	data       []interface{}
}

func NewFileBase(filename string, isSequence bool) *FileBase {
	return &FileBase{
		filename:   filename,
		fileID:     strings.ReplaceAll(uuid.New().String(), "-", ""),
		isSequence: isSequence,
	}
}

func (f *FileBase) Filename() string { return f.filename }

// FileID identifies this file in ${FILE_id} templates.
func (f *FileBase) FileID() string { return f.fileID }

func (f *FileBase) IsSequence() bool { return f.isSequence }

func (f *FileBase) Executable() bool { return false }

func (f *FileBase) OutputFilename(seq int) (string, error) {
	if !f.isSequence {
		return f.filename, nil
	}
	if seq < 0 {
		return "", NewWriteError("Sequence is required for sequence files")
	}
	return fmt.Sprintf("%03d-%s", seq+1, f.filename), nil
}

// Append adds data to the file. Accepted values depend on the file type;
// all types accept strings, Raw and FileTemplate.
func (f *FileBase) Append(data interface{}) {
	f.data = append(f.data, data)
}

func (f *FileBase) Render(dumper *Dumper) (string, error) {
	var parts []string
	for _, item := range f.data {
		part, err := dumper.Dump(item)
		if err != nil {
			return "", err
		}
		parts = append(parts, part)
	}
	return strings.Join(parts, "\n"), nil
}
