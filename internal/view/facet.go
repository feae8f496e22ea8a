package view

import (
	"sort"

	"github.com/ampere07/operationmobileapp-sub006/internal/record"
)

// Facet is one derived category with a live record count. Facets are
// computed from the full (unfiltered) record set, never stored.
type Facet struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// FacetSource optionally enriches the facet list with configured categories
// (cities, regions) so that a category with zero current records still
// appears with a 0 count.
type FacetSource interface {
	FacetNames() []string
}

// Facets groups the record set by its derived location and returns the facet
// list: a synthetic "all" facet first (count = total), then the discovered
// and enriched categories sorted by name. Grouping is case-insensitive; the
// first-seen spelling (or the enrichment spelling) is used as the display
// name. Records with no derivable location are counted under "all" only.
func Facets(records []record.R, locate func(record.R) string, enrich FacetSource) []Facet {
	counts := make(map[string]int)
	names := make(map[string]string)

	if enrich != nil {
		for _, name := range enrich.FacetNames() {
			id := fold(name)
			if id == "" {
				continue
			}
			if _, ok := names[id]; !ok {
				names[id] = name
				counts[id] = 0
			}
		}
	}

	for _, rec := range records {
		loc := locate(rec)
		if loc == "" {
			continue
		}
		id := fold(loc)
		if _, ok := names[id]; !ok {
			names[id] = loc
		}
		counts[id]++
	}

	facets := make([]Facet, 0, len(counts)+1)
	for id, count := range counts {
		facets = append(facets, Facet{ID: id, Name: names[id], Count: count})
	}
	sort.Slice(facets, func(i, j int) bool {
		return facets[i].Name < facets[j].Name
	})

	return append([]Facet{{ID: CategoryAll, Name: "All", Count: len(records)}}, facets...)
}
