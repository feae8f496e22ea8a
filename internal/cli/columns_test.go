package cli

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ampere07/operationmobileapp-sub006/internal/config"
)

func stateConfig(t *testing.T) config.Config {
	t.Helper()
	return config.Config{StateDB: filepath.Join(t.TempDir(), "state.db")}
}

func runColumns(t *testing.T, cfg config.Config, args ...string) string {
	t.Helper()
	buf := &bytes.Buffer{}
	rootOpts := testRootOpts("text", cfg)
	cmd := NewColumnsCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	require.NoError(t, cmd.Execute())
	return buf.String()
}

func TestColumnsShowDefaults(t *testing.T) {
	out := runColumns(t, stateConfig(t), "show", "billing")
	assert.Contains(t, out, "[x] id")
	assert.Contains(t, out, "[x] balance")
}

func TestColumnsTogglePersists(t *testing.T) {
	cfg := stateConfig(t)

	out := runColumns(t, cfg, "toggle", "billing", "balance")
	assert.NotContains(t, out, "balance")

	// A fresh command run reloads the layout from the store.
	out = runColumns(t, cfg, "show", "billing")
	assert.Contains(t, out, "[ ] balance")
	assert.Contains(t, out, "[x] id")
}

func TestColumnsToggleUnknownColumn(t *testing.T) {
	rootOpts := testRootOpts("text", stateConfig(t))
	cmd := NewColumnsCommand(rootOpts)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"toggle", "billing", "nope"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestColumnsReorderPersists(t *testing.T) {
	cfg := stateConfig(t)

	out := runColumns(t, cfg, "reorder", "billing", "balance", "id")
	assert.Contains(t, out, "order:")

	out = runColumns(t, cfg, "show", "billing")
	balanceIdx := indexOfLine(out, "balance")
	idIdx := indexOfLine(out, "[x] id")
	require.GreaterOrEqual(t, balanceIdx, 0)
	require.GreaterOrEqual(t, idIdx, 0)
	assert.Less(t, balanceIdx, idIdx)
}

func TestColumnsReset(t *testing.T) {
	cfg := stateConfig(t)

	runColumns(t, cfg, "toggle", "billing", "balance")
	out := runColumns(t, cfg, "reset", "billing")
	assert.Contains(t, out, "reset view state")

	out = runColumns(t, cfg, "show", "billing")
	assert.Contains(t, out, "[x] balance")
}

func indexOfLine(s, substr string) int {
	idx := -1
	for i, line := range bytes.Split([]byte(s), []byte("\n")) {
		if bytes.Contains(line, []byte(substr)) {
			idx = i
			break
		}
	}
	return idx
}
