// Copyright 2026 the Kubegen Authors.
// SPDX-License-Identifier: Apache-2.0

package output

import "fmt"

// Project collects output files and controls the numbering of sequenced
// files. Sequenced files are numbered in the order they were appended.
type Project struct {
	single   []File
	sequence []File
}

func NewProject() *Project {
	return &Project{}
}

// Append adds a file to the project.
func (p *Project) Append(file File) {
	if file.IsSequence() {
		p.sequence = append(p.sequence, file)
	} else {
		p.single = append(p.single, file)
	}
}

// Output renders every file and writes it through the driver. All file
// IDs resolve regardless of ordering, so files can reference files
// appended after them.
func (p *Project) Output(driver Driver) error {
	fileIDs := map[string]string{}
	err := p.eachFile(func(file File, seq int) error {
		filename, err := file.OutputFilename(seq)
		if err != nil {
			return err
		}
		fileIDs[fmt.Sprintf("FILE_%s", file.FileID())] = filename
		return nil
	})
	if err != nil {
		return err
	}

	dumper := NewDumper(fileIDs)

	return p.eachFile(func(file File, seq int) error {
		filename, err := file.OutputFilename(seq)
		if err != nil {
			return err
		}
		contents, err := file.Render(dumper)
		if err != nil {
			return err
		}
		return driver.WriteFile(file, filename, contents)
	})
}

func (p *Project) eachFile(visit func(file File, seq int) error) error {
	for seq, file := range p.sequence {
		if err := visit(file, seq); err != nil {
			return err
		}
	}
	for _, file := range p.single {
		if err := visit(file, -1); err != nil {
			return err
		}
	}
	return nil
}
