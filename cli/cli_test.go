package cli

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDefinition = `{
	"name": "Line Clearance",
	"parameters": [{"id": "bp1", "label": "Batch Number", "type": "SINGLE_LINE", "mandatory": true}],
	"stages": [{
		"name": "Intake",
		"tasks": [{
			"id": 101,
			"name": "Collect Info",
			"parameters": [
				{"id": "p1", "label": "Operator Name", "type": "SINGLE_LINE", "mandatory": true},
				{"id": "p2", "label": "Cleared", "type": "SINGLE_SELECT",
					"data": [{"id": "o1", "name": "Yes"}, {"id": "o2", "name": "No"}]}
			],
			"automations": [{"triggerType": "TASK_COMPLETED", "actionType": "SET_PROPERTY", "displayName": "Notify"}]
		}]
	}]
}`

func runCommand(t *testing.T, args ...string) error {
	t.Helper()
	cmd := RootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	return cmd.Execute()
}

func TestExportCmd(t *testing.T) {
	t.Run("Should export a single definition file to both formats", func(t *testing.T) {
		dir := t.TempDir()
		input := filepath.Join(dir, "process.json")
		require.NoError(t, os.WriteFile(input, []byte(sampleDefinition), 0o644))
		outDir := filepath.Join(dir, "out")

		require.NoError(t, runCommand(t, "export", input, "-o", outDir))

		data, err := os.ReadFile(filepath.Join(outDir, "process.csv"))
		require.NoError(t, err)
		text := string(data)
		assert.True(t, strings.HasPrefix(text, "Stage|Task|"))
		assert.Contains(t, text, "Create Job Form")
		assert.Contains(t, text, "Collect Info")
		assert.Contains(t, text, "Yes • No")

		_, err = os.Stat(filepath.Join(outDir, "process.xlsx"))
		require.NoError(t, err)
	})

	t.Run("Should honor the format flag", func(t *testing.T) {
		dir := t.TempDir()
		input := filepath.Join(dir, "process.json")
		require.NoError(t, os.WriteFile(input, []byte(sampleDefinition), 0o644))
		outDir := filepath.Join(dir, "out")

		require.NoError(t, runCommand(t, "export", input, "-o", outDir, "--format", "csv"))

		_, err := os.Stat(filepath.Join(outDir, "process.csv"))
		require.NoError(t, err)
		_, err = os.Stat(filepath.Join(outDir, "process.xlsx"))
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("Should skip malformed archive entries and process the rest", func(t *testing.T) {
		dir := t.TempDir()
		input := filepath.Join(dir, "batch.zip")
		f, err := os.Create(input)
		require.NoError(t, err)
		zw := zip.NewWriter(f)
		good, err := zw.Create("good.json")
		require.NoError(t, err)
		_, err = good.Write([]byte(sampleDefinition))
		require.NoError(t, err)
		bad, err := zw.Create("bad.json")
		require.NoError(t, err)
		_, err = bad.Write([]byte(`{"name": `))
		require.NoError(t, err)
		require.NoError(t, zw.Close())
		require.NoError(t, f.Close())
		outDir := filepath.Join(dir, "out")

		require.NoError(t, runCommand(t, "export", input, "-o", outDir, "--format", "csv"))

		data, err := os.ReadFile(filepath.Join(outDir, "batch.csv"))
		require.NoError(t, err)
		assert.Contains(t, string(data), "Collect Info")
	})

	t.Run("Should reject an invalid format flag", func(t *testing.T) {
		dir := t.TempDir()
		input := filepath.Join(dir, "process.json")
		require.NoError(t, os.WriteFile(input, []byte(sampleDefinition), 0o644))
		outDir := filepath.Join(dir, "out")

		err := runCommand(t, "export", input, "-o", outDir, "--format", "tsv")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "validation failed")
		// A rejected run must not leave partial output behind.
		_, statErr := os.Stat(outDir)
		assert.True(t, os.IsNotExist(statErr))
	})

	t.Run("Should split on the first rune of a multi-byte separator", func(t *testing.T) {
		t.Setenv("NARRATION_SEPARATOR", "•")
		dir := t.TempDir()
		input := filepath.Join(dir, "process.json")
		require.NoError(t, os.WriteFile(input, []byte(sampleDefinition), 0o644))
		outDir := filepath.Join(dir, "out")

		require.NoError(t, runCommand(t, "export", input, "-o", outDir, "--format", "csv"))

		data, err := os.ReadFile(filepath.Join(outDir, "process.csv"))
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(string(data), "Stage•Task•"))
	})

	t.Run("Should fail when the input does not exist", func(t *testing.T) {
		err := runCommand(t, "export", filepath.Join(t.TempDir(), "missing.json"))
		require.Error(t, err)
	})
}
