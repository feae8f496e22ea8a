package view

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/ampere07/operationmobileapp-sub006/internal/record"
	"github.com/ampere07/operationmobileapp-sub006/internal/screen"
)

// CategoryAll is the sentinel category that passes every record.
const CategoryAll = "all"

// fold normalizes a string for case-insensitive comparison using Unicode
// case folding (not just ASCII lowercasing).
func fold(s string) string {
	return cases.Fold().String(s)
}

// Inputs are the filter inputs for one derivation pass.
type Inputs struct {
	Category string
	Search   string
	Funnel   Funnel
}

// Pipeline applies the screen's filters in fixed order: category first, then
// free-text search, then the funnel. The order matters for cost, not
// correctness - category and search are cheap coarse passes that shrink the
// set before the per-field funnel pass - and must not be reordered.
type Pipeline struct {
	scr *screen.Screen
	reg *record.Registry
}

// NewPipeline builds the filter pipeline for a screen.
func NewPipeline(scr *screen.Screen, reg *record.Registry) *Pipeline {
	return &Pipeline{scr: scr, reg: reg}
}

// Apply filters records through category, search, and funnel in order.
// The input slice is never mutated.
func (p *Pipeline) Apply(records []record.R, in Inputs) []record.R {
	out := p.applyCategory(records, in.Category)
	out = p.applySearch(out, in.Search)
	out = p.applyFunnel(out, in.Funnel)
	return out
}

// LocationOf derives the location-like value the category facet groups by.
// Screens with a direct location column resolve it through the accessor
// registry; screens without one split the composite address on commas and
// take a fixed positional segment.
func (p *Pipeline) LocationOf(rec record.R) string {
	if p.scr.CategoryField != "" {
		v := p.reg.Resolve(rec, p.scr.CategoryField)
		if v == record.Missing {
			return ""
		}
		return v
	}
	if p.scr.AddressField != "" {
		raw, ok := p.reg.Raw(rec, p.scr.AddressField)
		if !ok {
			return ""
		}
		parts := strings.Split(record.AsString(raw), ",")
		if p.scr.AddressSegment >= len(parts) {
			return ""
		}
		return strings.TrimSpace(parts[p.scr.AddressSegment])
	}
	return ""
}

func (p *Pipeline) applyCategory(records []record.R, category string) []record.R {
	if category == "" || category == CategoryAll {
		return records
	}
	want := fold(category)
	out := make([]record.R, 0, len(records))
	for _, rec := range records {
		if fold(p.LocationOf(rec)) == want {
			out = append(out, rec)
		}
	}
	return out
}

func (p *Pipeline) applySearch(records []record.R, search string) []record.R {
	if strings.TrimSpace(search) == "" {
		return records
	}
	needle := fold(strings.TrimSpace(search))
	out := make([]record.R, 0, len(records))
	for _, rec := range records {
		for _, field := range p.scr.SearchFields {
			v := p.reg.Resolve(rec, field)
			if v == record.Missing {
				continue
			}
			if strings.Contains(fold(v), needle) {
				out = append(out, rec)
				break
			}
		}
	}
	return out
}

func (p *Pipeline) applyFunnel(records []record.R, funnel Funnel) []record.R {
	if len(funnel) == 0 {
		return records
	}
	out := make([]record.R, 0, len(records))
	for _, rec := range records {
		if p.matchesFunnel(rec, funnel) {
			out = append(out, rec)
		}
	}
	return out
}

func (p *Pipeline) matchesFunnel(rec record.R, funnel Funnel) bool {
	for key, c := range funnel {
		raw, present := p.reg.Raw(rec, key)
		if !c.Match(raw, present) {
			return false
		}
	}
	return true
}
