// Copyright 2026 the Kubegen Authors.
// SPDX-License-Identifier: Apache-2.0

package output_test

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kubegen/kubegen/pkg/cmd/ui"
	"github.com/kubegen/kubegen/pkg/orderedmap"
	"github.com/kubegen/kubegen/pkg/output"
	"github.com/kubegen/kubegen/pkg/yamlgen"
)

type capturedFile struct {
	filename   string
	contents   string
	executable bool
}

type captureDriver struct {
	files []capturedFile
}

func (d *captureDriver) WriteFile(file output.File, filename string, contents string) error {
	d.files = append(d.files, capturedFile{filename, contents, file.Executable()})
	return nil
}

func TestOutputFilenameSequence(t *testing.T) {
	file := output.NewFileBase("app.yaml", true)

	filename, err := file.OutputFilename(0)
	require.NoError(t, err)
	assert.Equal(t, "001-app.yaml", filename)

	filename, err = file.OutputFilename(11)
	require.NoError(t, err)
	assert.Equal(t, "012-app.yaml", filename)

	_, err = file.OutputFilename(-1)
	require.Error(t, err)
	assert.Equal(t, "Sequence is required for sequence files", err.Error())
}

func TestOutputFilenameSingle(t *testing.T) {
	file := output.NewFileBase("create.sh", false)

	filename, err := file.OutputFilename(-1)
	require.NoError(t, err)
	assert.Equal(t, "create.sh", filename)
}

func TestShellScriptFile(t *testing.T) {
	file := output.NewShellScriptFile("create.sh")
	file.Append("kubectl apply -f app.yaml")

	assert.True(t, file.Executable())
	assert.False(t, file.IsSequence())

	contents, err := file.Render(output.NewDumper(nil))
	require.NoError(t, err)
	assert.Equal(t, "#!/bin/bash\n\nkubectl apply -f app.yaml\n", contents)
}

func TestKubernetesFile(t *testing.T) {
	file := output.NewKubernetesFile("app.yaml", yamlgen.NewGenerator(true))
	file.Append(output.Raw("# generated, do not edit"))
	file.Append(orderedmap.NewMapWithItems([]orderedmap.MapItem{
		{Key: "apiVersion", Value: "v1"},
		{Key: "kind", Value: "Namespace"},
	}))
	file.Append(orderedmap.NewMapWithItems([]orderedmap.MapItem{
		{Key: "apiVersion", Value: "v1"},
		{Key: "kind", Value: "ServiceAccount"},
	}))

	contents, err := file.Render(output.NewDumper(nil))
	require.NoError(t, err)
	assert.Equal(t, "# generated, do not edit\n"+
		"apiVersion: v1\nkind: Namespace\n"+
		"---\n"+
		"apiVersion: v1\nkind: ServiceAccount\n", contents)
}

func TestKubernetesFileSkipsEmptySequences(t *testing.T) {
	file := output.NewKubernetesFile("app.yaml", yamlgen.NewGenerator(true))
	file.Append([]interface{}{})
	file.Append(orderedmap.NewMapWithItems([]orderedmap.MapItem{
		{Key: "kind", Value: "Namespace"},
	}))

	contents, err := file.Render(output.NewDumper(nil))
	require.NoError(t, err)
	assert.Equal(t, "kind: Namespace\n", contents)
}

func TestProjectFileTemplate(t *testing.T) {
	project := output.NewProject()

	appFile := output.NewKubernetesFile("app.yaml", yamlgen.NewGenerator(true))
	appFile.Append(orderedmap.NewMapWithItems([]orderedmap.MapItem{
		{Key: "kind", Value: "Namespace"},
	}))
	project.Append(appFile)

	script := output.NewShellScriptFile("create.sh")
	script.Append(output.FileTemplate(fmt.Sprintf("kubectl apply -f ${FILE_%s}", appFile.FileID())))
	project.Append(script)

	driver := &captureDriver{}
	require.NoError(t, project.Output(driver))

	require.Len(t, driver.files, 2)
	assert.Equal(t, "001-app.yaml", driver.files[0].filename)
	assert.Equal(t, "create.sh", driver.files[1].filename)
	assert.Equal(t, "#!/bin/bash\n\nkubectl apply -f 001-app.yaml\n", driver.files[1].contents)
	assert.True(t, driver.files[1].executable)
}

func TestProjectUnknownFileReference(t *testing.T) {
	project := output.NewProject()

	script := output.NewShellScriptFile("create.sh")
	script.Append(output.FileTemplate("kubectl apply -f ${FILE_nope}"))
	project.Append(script)

	err := project.Output(&captureDriver{})
	require.Error(t, err)
	assert.Equal(t, `Unknown file reference "FILE_nope" in template`, err.Error())
}

func TestDirectoryDriver(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")

	driver, err := output.NewDirectoryDriver(dir)
	require.NoError(t, err)

	project := output.NewProject()
	script := output.NewShellScriptFile("create.sh")
	script.Append("kubectl apply -f app.yaml")
	project.Append(script)

	require.NoError(t, project.Output(driver))

	contents, err := os.ReadFile(filepath.Join(dir, "create.sh"))
	require.NoError(t, err)
	assert.Equal(t, "#!/bin/bash\n\nkubectl apply -f app.yaml\n", string(contents))

	if runtime.GOOS != "windows" {
		info, err := os.Stat(filepath.Join(dir, "create.sh"))
		require.NoError(t, err)
		assert.NotZero(t, info.Mode()&0111)
	}
}

func TestPrintDriver(t *testing.T) {
	stdout := bytes.NewBufferString("")

	project := output.NewProject()
	file := output.NewYAMLFile("config.yaml", false, yamlgen.NewGenerator(true))
	file.Append(orderedmap.NewMapWithItems([]orderedmap.MapItem{
		{Key: "key", Value: "value"},
	}))
	project.Append(file)

	require.NoError(t, project.Output(output.NewPrintDriver(ui.NewCustomWriterTTY(false, stdout, nil))))

	assert.Equal(t, "****** BEGIN FILE: config.yaml ********\n"+
		"key: value\n\n"+
		"****** END FILE: config.yaml ********\n", stdout.String())
}
