package source

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/ampere07/operationmobileapp-sub006/internal/record"
)

// File reads records from a local JSON file: either a bare array (every
// scope gets the same records) or an object keyed by scope name. Used for
// offline work and demo data.
type File struct {
	path string
}

// NewFile builds a file source.
func NewFile(path string) *File {
	return &File{path: path}
}

// Fetch implements Source.
func (f *File) Fetch(_ context.Context, scope string) ([]record.R, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", f.path, err)
	}

	var byScope map[string]json.RawMessage
	if err := json.Unmarshal(data, &byScope); err == nil {
		raw, ok := byScope[scope]
		if !ok {
			return nil, fmt.Errorf("%s: no records for scope %q", f.path, scope)
		}
		return decodeRecords(raw)
	}

	return decodeRecords(data)
}
