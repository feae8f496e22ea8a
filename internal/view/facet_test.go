package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticFacets []string

func (s staticFacets) FacetNames() []string { return s }

func TestFacets_GroupsWithAllFirst(t *testing.T) {
	p := newTestPipeline(t, testScreen())
	records := billingRecords()

	facets := Facets(records, p.LocationOf, nil)
	require.NotEmpty(t, facets)

	assert.Equal(t, Facet{ID: "all", Name: "All", Count: 3}, facets[0],
		"the synthetic all facet is first, count = total records")
	assert.Equal(t, []Facet{
		{ID: "angono", Name: "Angono", Count: 1},
		{ID: "binangonan", Name: "Binangonan", Count: 1},
		{ID: "teresa", Name: "Teresa", Count: 1},
	}, facets[1:])
}

func TestFacets_CaseInsensitiveGrouping(t *testing.T) {
	p := newTestPipeline(t, testScreen())
	records := billingRecords()
	records = append(records, map[string]any{"id": "40", "city": "BINANGONAN"})

	facets := Facets(records, p.LocationOf, nil)
	for _, f := range facets {
		if f.ID == "binangonan" {
			assert.Equal(t, 2, f.Count)
			assert.Equal(t, "Binangonan", f.Name, "first-seen spelling wins")
			return
		}
	}
	t.Fatal("binangonan facet not found")
}

func TestFacets_EnrichmentAddsZeroCountCategories(t *testing.T) {
	p := newTestPipeline(t, testScreen())
	records := billingRecords()

	facets := Facets(records, p.LocationOf, staticFacets{"Cardona", "Angono"})

	var cardona *Facet
	for i := range facets {
		if facets[i].ID == "cardona" {
			cardona = &facets[i]
		}
	}
	require.NotNil(t, cardona, "a configured city with no records still appears")
	assert.Equal(t, 0, cardona.Count)
}

func TestFacets_RecordsWithNoLocationCountUnderAllOnly(t *testing.T) {
	p := newTestPipeline(t, testScreen())
	records := billingRecords()
	records = append(records, map[string]any{"id": "50"}) // no city

	facets := Facets(records, p.LocationOf, nil)
	assert.Equal(t, 4, facets[0].Count)
	assert.Len(t, facets, 4, "no extra facet for the locationless record")
}
