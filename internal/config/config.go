// Package config loads the console's YAML configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the opsview.yaml file.
type Config struct {
	// APIBaseURL is the console API the record sources fetch from.
	APIBaseURL string `yaml:"api_base_url,omitempty"`

	// DataFile, when set, reads records from a local JSON file instead of
	// the API. Useful offline and for demos.
	DataFile string `yaml:"data_file,omitempty"`

	// StateDB is the SQLite file view state persists to. Empty disables
	// persistence.
	StateDB string `yaml:"state_db,omitempty"`

	// ScreensDir overrides the built-in screen definitions with a directory
	// of CUE files.
	ScreensDir string `yaml:"screens_dir,omitempty"`

	// PageSize overrides every screen's declared page size when > 0.
	PageSize int `yaml:"page_size,omitempty"`

	// Theme selects the TUI palette ("dark" or "light"). Injected into the
	// render layer; the view engine never reads it.
	Theme string `yaml:"theme,omitempty"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		StateDB: defaultStatePath(),
		Theme:   "dark",
	}
}

// Load reads a config file, applying defaults for unset fields.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadOrDefault reads the given path if set, otherwise looks for
// opsview.yaml in the working directory and then under the user config dir.
// A missing file yields the defaults, not an error.
func LoadOrDefault(path string) (Config, error) {
	if path != "" {
		return Load(path)
	}
	for _, candidate := range searchPaths() {
		if _, err := os.Stat(candidate); err == nil {
			return Load(candidate)
		}
	}
	return Default(), nil
}

// Validate checks field constraints.
func (c Config) Validate() error {
	if c.PageSize < 0 {
		return fmt.Errorf("page_size must be >= 0")
	}
	if c.Theme != "" && c.Theme != "dark" && c.Theme != "light" {
		return fmt.Errorf("theme must be dark or light, got %q", c.Theme)
	}
	return nil
}

func searchPaths() []string {
	paths := []string{"opsview.yaml"}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "opsview", "opsview.yaml"))
	}
	return paths
}

func defaultStatePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "opsview-state.db"
	}
	return filepath.Join(dir, "opsview", "state.db")
}
