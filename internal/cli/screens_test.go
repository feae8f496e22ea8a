package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ampere07/operationmobileapp-sub006/internal/config"
)

func TestScreensCommand_Text(t *testing.T) {
	buf := &bytes.Buffer{}
	rootOpts := testRootOpts("text", config.Config{})
	cmd := NewScreensCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())

	output := buf.String()
	assert.Contains(t, output, "billing")
	assert.Contains(t, output, "applications")
	assert.Contains(t, output, "job_orders")
}

func TestScreensCommand_JSON(t *testing.T) {
	buf := &bytes.Buffer{}
	rootOpts := testRootOpts("json", config.Config{})
	cmd := NewScreensCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)

	data, err := json.Marshal(resp.Data)
	require.NoError(t, err)
	var infos []ScreenInfo
	require.NoError(t, json.Unmarshal(data, &infos))
	require.NotEmpty(t, infos)

	names := make([]string, len(infos))
	for i, info := range infos {
		names[i] = info.Name
	}
	assert.Contains(t, names, "billing")
	assert.Contains(t, names, "transactions")
}
