package screen

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

//go:embed screens.cue
var builtinCUE string

// LoadMode controls how errors are handled during screen loading.
type LoadMode int

const (
	// LoadModeFailFast stops on the first error encountered.
	LoadModeFailFast LoadMode = iota
	// LoadModeCollectAll collects all errors before returning.
	LoadModeCollectAll
)

// Set is a named collection of compiled screens.
type Set struct {
	screens map[string]*Screen
	names   []string // sorted
}

// Builtin compiles the embedded screen definitions. The embedded pack is
// assumed valid; a compile failure here is a build defect, so it panics.
func Builtin() *Set {
	set, errs := compileSource("screens.cue", builtinCUE, LoadModeFailFast)
	if len(errs) > 0 {
		panic(fmt.Sprintf("builtin screens failed to compile: %v", errs[0]))
	}
	return set
}

// LoadDir compiles every .cue file in dir into a screen set. Definitions in
// later files override same-named screens from earlier ones.
func LoadDir(dir string, mode LoadMode) (*Set, []error) {
	info, err := os.Stat(dir)
	if os.IsNotExist(err) {
		return nil, []error{fmt.Errorf("screens directory not found: %s", dir)}
	}
	if err != nil {
		return nil, []error{fmt.Errorf("accessing screens directory: %w", err)}
	}
	if !info.IsDir() {
		return nil, []error{fmt.Errorf("not a directory: %s", dir)}
	}

	var files []string
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, []error{fmt.Errorf("scanning screens directory: %w", err)}
	}
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".cue") {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}
	if len(files) == 0 {
		return nil, []error{fmt.Errorf("no CUE files found in %s", dir)}
	}
	sort.Strings(files)

	merged := &Set{screens: make(map[string]*Screen)}
	var errs []error
	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			errs = append(errs, fmt.Errorf("reading %s: %w", file, err))
			if mode == LoadModeFailFast {
				return nil, errs
			}
			continue
		}
		set, fileErrs := compileSource(file, string(data), mode)
		errs = append(errs, fileErrs...)
		if mode == LoadModeFailFast && len(errs) > 0 {
			return nil, errs
		}
		if set != nil {
			for _, name := range set.Names() {
				merged.add(set.screens[name])
			}
		}
	}
	if len(errs) > 0 {
		return nil, errs
	}
	return merged, nil
}

// compileSource compiles one CUE source containing screen.<name> structs.
func compileSource(filename, src string, mode LoadMode) (*Set, []error) {
	ctx := cuecontext.New()
	v := ctx.CompileString(src, cue.Filename(filename))
	if err := v.Err(); err != nil {
		return nil, []error{formatCUEError(err)}
	}

	screenVal := v.LookupPath(cue.ParsePath("screen"))
	if !screenVal.Exists() {
		return nil, []error{fmt.Errorf("%s: no screen definitions found", filename)}
	}

	iter, err := screenVal.Fields()
	if err != nil {
		return nil, []error{formatCUEError(err)}
	}

	set := &Set{screens: make(map[string]*Screen)}
	var errs []error
	for iter.Next() {
		scr, err := CompileScreen(iter.Value())
		if err != nil {
			errs = append(errs, err)
			if mode == LoadModeFailFast {
				return nil, errs
			}
			continue
		}
		set.add(scr)
	}
	if len(errs) > 0 {
		return nil, errs
	}
	return set, nil
}

func (s *Set) add(scr *Screen) {
	if _, exists := s.screens[scr.Name]; !exists {
		s.names = append(s.names, scr.Name)
		sort.Strings(s.names)
	}
	s.screens[scr.Name] = scr
}

// Get returns the screen with the given name.
func (s *Set) Get(name string) (*Screen, bool) {
	scr, ok := s.screens[name]
	return scr, ok
}

// Names returns all screen names, sorted.
func (s *Set) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// Len returns the number of screens in the set.
func (s *Set) Len() int {
	return len(s.screens)
}
