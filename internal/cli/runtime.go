package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ampere07/operationmobileapp-sub006/internal/config"
	"github.com/ampere07/operationmobileapp-sub006/internal/screen"
	"github.com/ampere07/operationmobileapp-sub006/internal/source"
	"github.com/ampere07/operationmobileapp-sub006/internal/store"
	"github.com/ampere07/operationmobileapp-sub006/internal/view"
)

// loadScreens returns the screen set: the configured screens directory when
// set, otherwise the embedded definitions.
func loadScreens(cfg config.Config) (*screen.Set, error) {
	if cfg.ScreensDir == "" {
		return screen.Builtin(), nil
	}
	set, errs := screen.LoadDir(cfg.ScreensDir, screen.LoadModeFailFast)
	if len(errs) > 0 {
		return nil, WrapExitError(ExitCommandError, "loading screens", errs[0])
	}
	return set, nil
}

// resolveScreen looks up one screen by name, with a helpful error listing the
// known names.
func resolveScreen(set *screen.Set, name string) (*screen.Screen, error) {
	scr, ok := set.Get(name)
	if !ok {
		return nil, NewExitError(ExitCommandError,
			fmt.Sprintf("unknown screen %q (known: %s)", name, strings.Join(set.Names(), ", ")))
	}
	return scr, nil
}

// openKV opens the configured state database. The store is best-effort:
// open failures degrade to in-memory state with a warning rather than
// aborting the command.
func (o *RootOptions) openKV(cfg config.Config) (view.KV, func()) {
	if cfg.StateDB == "" {
		return view.NopKV{}, func() {}
	}
	if err := os.MkdirAll(filepath.Dir(cfg.StateDB), 0o755); err != nil {
		o.log.Warn().Err(err).Str("path", cfg.StateDB).Msg("state directory unavailable, view state will not persist")
		return view.NopKV{}, func() {}
	}
	st, err := store.Open(cfg.StateDB)
	if err != nil {
		o.log.Warn().Err(err).Str("path", cfg.StateDB).Msg("state store unavailable, view state will not persist")
		return view.NopKV{}, func() {}
	}
	return st, func() { st.Close() }
}

// openStore opens the state database for commands that manage persisted
// state directly. Unlike openKV this does not degrade.
func (o *RootOptions) openStore(cfg config.Config) (*store.Store, error) {
	if cfg.StateDB == "" {
		return nil, NewExitError(ExitCommandError, "no state_db configured")
	}
	if err := os.MkdirAll(filepath.Dir(cfg.StateDB), 0o755); err != nil {
		return nil, WrapExitError(ExitFailure, "creating state directory", err)
	}
	st, err := store.Open(cfg.StateDB)
	if err != nil {
		return nil, WrapExitError(ExitFailure, "opening state store", err)
	}
	return st, nil
}

// buildSource selects the record source from the config: a local data file
// when set, otherwise the API.
func (o *RootOptions) buildSource(cfg config.Config, dataFile string) (source.Source, error) {
	if dataFile == "" {
		dataFile = cfg.DataFile
	}
	if dataFile != "" {
		return source.NewFile(dataFile), nil
	}
	if cfg.APIBaseURL != "" {
		src, err := source.NewHTTP(cfg.APIBaseURL, o.log)
		if err != nil {
			return nil, WrapExitError(ExitCommandError, "invalid api_base_url", err)
		}
		return src, nil
	}
	return nil, NewExitError(ExitCommandError, "no record source configured (set api_base_url or data_file, or pass --data)")
}
