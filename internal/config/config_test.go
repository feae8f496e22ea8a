package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "opsview.yaml")
	src := `
api_base_url: https://ops.example.com/api
state_db: /tmp/state.db
page_size: 25
theme: light
`
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://ops.example.com/api", cfg.APIBaseURL)
	assert.Equal(t, "/tmp/state.db", cfg.StateDB)
	assert.Equal(t, 25, cfg.PageSize)
	assert.Equal(t, "light", cfg.Theme)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "opsview.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`api_base_url: http://x`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "dark", cfg.Theme)
	assert.NotEmpty(t, cfg.StateDB)
}

func TestLoad_Invalid(t *testing.T) {
	dir := t.TempDir()

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte(`theme: solarized`), 0o644))
	_, err := Load(bad)
	assert.ErrorContains(t, err, "theme must be")

	malformed := filepath.Join(dir, "malformed.yaml")
	require.NoError(t, os.WriteFile(malformed, []byte("{::"), 0o644))
	_, err = Load(malformed)
	assert.Error(t, err)
}

func TestLoadOrDefault_MissingFileYieldsDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := LoadOrDefault("")
	require.NoError(t, err)
	assert.Equal(t, Default().Theme, cfg.Theme)
}
