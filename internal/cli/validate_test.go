package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ampere07/operationmobileapp-sub006/internal/config"
)

const validScreenCUE = `
screen: custom: {
	title: "Custom"
	columns: [
		{key: "id", label: "ID", width: 10, fields: ["id"]},
		{key: "name", label: "Name", width: 20, fields: ["name"]},
	]
	search: ["name"]
}
`

const invalidScreenCUE = `
screen: broken: {
	columns: [
		{key: "id", label: "ID", width: 10, fields: ["id"], kind: "wat"},
	]
}
`

func writeScreenDir(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, src := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(src), 0o644))
	}
	return dir
}

func TestValidateCommand_Valid(t *testing.T) {
	dir := writeScreenDir(t, map[string]string{"custom.cue": validScreenCUE})

	buf := &bytes.Buffer{}
	rootOpts := testRootOpts("text", config.Config{})
	cmd := NewValidateCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{dir})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "1 screen(s) valid")
	assert.Contains(t, buf.String(), "custom")
}

func TestValidateCommand_Invalid(t *testing.T) {
	dir := writeScreenDir(t, map[string]string{"broken.cue": invalidScreenCUE})

	buf := &bytes.Buffer{}
	rootOpts := testRootOpts("text", config.Config{})
	cmd := NewValidateCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{dir})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, buf.String(), "error(s)")
}

func TestValidateCommand_MissingDir(t *testing.T) {
	buf := &bytes.Buffer{}
	rootOpts := testRootOpts("text", config.Config{})
	cmd := NewValidateCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{filepath.Join(t.TempDir(), "nope")})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, buf.String(), "not found")
}
