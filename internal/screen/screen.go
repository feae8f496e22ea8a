package screen

import (
	"fmt"

	"github.com/ampere07/operationmobileapp-sub006/internal/record"
)

// Column is one declared column of a screen. Columns are static: defined once
// in the screen definition and never mutated at runtime - only their
// membership in the visible set and their position change, and that lives in
// the view layer.
type Column struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Width int    `json:"width"`
}

// Screen is the compiled definition of one list screen: its columns, the
// accessor table mapping column keys to raw record fields, the fields the
// free-text search covers, and how the category/location facet is derived.
type Screen struct {
	Name  string `json:"name"`
	Title string `json:"title"`

	Columns []Column `json:"columns"`

	// Accessors maps column keys (plus any extra derived keys such as the
	// category field) to their raw-field candidate chains.
	Accessors map[string]record.Accessor `json:"-"`

	// SearchFields are the column keys the free-text search matches against.
	SearchFields []string `json:"search_fields"`

	// CategoryField is the column key holding the location-like value the
	// category facet groups by. Empty when the screen derives location from
	// a composite address instead.
	CategoryField string `json:"category_field,omitempty"`

	// AddressField and AddressSegment derive a location for screens without
	// a direct location column: the raw address string is split on commas
	// and the segment at this index (trimmed) is the location.
	AddressField   string `json:"address_field,omitempty"`
	AddressSegment int    `json:"address_segment,omitempty"`

	// PageSize > 0 enables pagination with fixed-size pages.
	PageSize int `json:"page_size,omitempty"`
}

// Registry builds the field accessor registry for this screen.
func (s *Screen) Registry() *record.Registry {
	return record.NewRegistry(s.Accessors)
}

// ColumnKeys returns the declared column keys in declaration order.
func (s *Screen) ColumnKeys() []string {
	keys := make([]string, len(s.Columns))
	for i, c := range s.Columns {
		keys[i] = c.Key
	}
	return keys
}

// ColumnByKey returns the declared column with the given key.
func (s *Screen) ColumnByKey(key string) (Column, bool) {
	for _, c := range s.Columns {
		if c.Key == key {
			return c, true
		}
	}
	return Column{}, false
}

// Validate checks the structural invariants of a compiled screen: unique
// column keys, search fields and category field referencing declared
// accessors, and a sane page size.
func (s *Screen) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("screen name is required")
	}
	if len(s.Columns) == 0 {
		return fmt.Errorf("screen %q: at least one column is required", s.Name)
	}

	seen := make(map[string]bool, len(s.Columns))
	for _, c := range s.Columns {
		if c.Key == "" {
			return fmt.Errorf("screen %q: column key is required", s.Name)
		}
		if seen[c.Key] {
			return fmt.Errorf("screen %q: duplicate column key %q", s.Name, c.Key)
		}
		seen[c.Key] = true
	}

	for _, f := range s.SearchFields {
		if _, ok := s.Accessors[f]; !ok {
			return fmt.Errorf("screen %q: search field %q has no accessor", s.Name, f)
		}
	}
	if s.CategoryField != "" {
		if _, ok := s.Accessors[s.CategoryField]; !ok {
			return fmt.Errorf("screen %q: category field %q has no accessor", s.Name, s.CategoryField)
		}
	}
	if s.AddressSegment < 0 {
		return fmt.Errorf("screen %q: address segment must be >= 0", s.Name)
	}
	if s.PageSize < 0 {
		return fmt.Errorf("screen %q: page size must be >= 0", s.Name)
	}
	return nil
}
