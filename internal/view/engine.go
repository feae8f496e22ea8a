package view

import (
	"encoding/json"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ampere07/operationmobileapp-sub006/internal/record"
	"github.com/ampere07/operationmobileapp-sub006/internal/screen"
)

// Options configure an Engine instance.
type Options struct {
	// KV persists column layout and funnel state. Defaults to NopKV.
	KV KV
	// Facets optionally enriches the category facet list.
	Facets FacetSource
	// Logger receives persistence and fetch diagnostics.
	Logger zerolog.Logger
	// PageSize overrides the screen's declared page size when > 0.
	PageSize int
}

// Engine is one screen's record view engine: it owns the raw record set and
// the view state (search, category, funnel, sort, page, column layout) and
// derives the rendered row window from them. Derivation is synchronous,
// pure, and memoized - the snapshot is recomputed only when an input
// changed since the last call.
//
// The engine is not safe for concurrent use; all state is local to one UI
// session.
type Engine struct {
	scr      *screen.Screen
	reg      *record.Registry
	pipeline *Pipeline
	sorter   *Sorter
	layout   *Layout
	editor   FunnelEditor
	kv       KV
	facets   FacetSource
	log      zerolog.Logger

	records    []record.R
	fetchErr   error
	generation string

	search   string
	category string
	funnel   Funnel
	sort     SortState
	page     PageState

	dirty  bool
	cached Snapshot

	funnelKey string
}

// Row is one rendered row of the current page window.
type Row struct {
	ID    string
	Cells []string
}

// Snapshot is the fully derived view for the current inputs.
type Snapshot struct {
	Columns    []screen.Column
	Rows       []Row
	Total      int
	Filtered   int
	Page       int
	TotalPages int
	Sort       SortState
	Facets     []Facet
	Err        error
}

// New builds the engine for a screen, loading persisted view state.
func New(scr *screen.Screen, opts Options) *Engine {
	kv := opts.KV
	if kv == nil {
		kv = NopKV{}
	}

	reg := scr.Registry()
	size := scr.PageSize
	if opts.PageSize > 0 {
		size = opts.PageSize
	}

	e := &Engine{
		scr:       scr,
		reg:       reg,
		pipeline:  NewPipeline(scr, reg),
		sorter:    NewSorter(reg),
		kv:        kv,
		facets:    opts.Facets,
		log:       opts.Logger.With().Str("screen", scr.Name).Logger(),
		category:  CategoryAll,
		page:      PageState{Current: 1, Size: size},
		dirty:     true,
		funnelKey: "funnel:" + scr.Name,
	}
	e.layout = NewLayout(scr.Name, scr.ColumnKeys(), kv, e.log)
	e.loadFunnel()
	return e
}

// Screen returns the screen definition this engine renders.
func (e *Engine) Screen() *screen.Screen { return e.scr }

// Registry returns the screen's field accessor registry.
func (e *Engine) Registry() *record.Registry { return e.reg }

// loadFunnel restores a persisted funnel; malformed state is discarded.
func (e *Engine) loadFunnel() {
	raw, ok := e.kv.Get(e.funnelKey)
	if !ok {
		return
	}
	var f Funnel
	if err := json.Unmarshal([]byte(raw), &f); err != nil {
		e.log.Debug().Err(err).Msg("discarding malformed persisted funnel")
		return
	}
	e.funnel = f
}

func (e *Engine) persistFunnel() {
	data, err := json.Marshal(e.funnel)
	if err != nil {
		e.log.Warn().Err(err).Msg("encode funnel")
		return
	}
	if err := e.kv.Set(e.funnelKey, string(data)); err != nil {
		e.log.Warn().Err(err).Msg("persist funnel")
	}
}

// BeginFetch starts a new fetch generation and returns its token. A fetch
// completion carrying any other token is stale and will be discarded
// (last-fetch-wins).
func (e *Engine) BeginFetch() string {
	e.generation = uuid.Must(uuid.NewV7()).String()
	return e.generation
}

// CompleteFetch installs the results of a fetch if its generation is still
// current. On error the engine receives an empty record set plus the error
// flag; the derivation then operates over the empty set rather than
// throwing. Returns false when the completion was stale and ignored.
func (e *Engine) CompleteFetch(gen string, records []record.R, err error) bool {
	if gen != e.generation {
		e.log.Debug().Str("generation", gen).Msg("discarding stale fetch completion")
		return false
	}
	if err != nil {
		e.log.Warn().Err(err).Msg("fetch failed")
		records = nil
	}
	e.records = records
	e.fetchErr = err
	e.dirty = true
	return true
}

// SetRecords installs a record set directly, superseding any in-flight fetch.
func (e *Engine) SetRecords(records []record.R) {
	gen := e.BeginFetch()
	e.CompleteFetch(gen, records, nil)
}

// SetSearch updates the free-text search and resets to page 1.
func (e *Engine) SetSearch(text string) {
	if e.search == text {
		return
	}
	e.search = text
	e.page.Current = 1
	e.dirty = true
}

// Search returns the current free-text search.
func (e *Engine) Search() string { return e.search }

// SetCategory updates the category filter and resets to page 1.
func (e *Engine) SetCategory(category string) {
	if category == "" {
		category = CategoryAll
	}
	if e.category == category {
		return
	}
	e.category = category
	e.page.Current = 1
	e.dirty = true
}

// Category returns the current category filter.
func (e *Engine) Category() string { return e.category }

// SetFunnel immediately replaces the active funnel (no draft step), persists
// it, and resets to page 1.
func (e *Engine) SetFunnel(f Funnel) {
	e.funnel = f
	e.page.Current = 1
	e.dirty = true
	e.persistFunnel()
}

// Funnel returns the active funnel filter set.
func (e *Engine) Funnel() Funnel { return e.funnel }

// OpenFunnelEditor starts a draft editing session over the active funnel.
func (e *Engine) OpenFunnelEditor() *FunnelEditor {
	e.editor.Open(e.funnel)
	return &e.editor
}

// ApplyFunnelEditor commits the editor draft as the active funnel. No-op if
// the editor is not open.
func (e *Engine) ApplyFunnelEditor() {
	if applied := e.editor.Apply(); applied != nil {
		e.SetFunnel(applied)
	}
}

// CancelFunnelEditor discards the draft, leaving the active funnel untouched.
func (e *Engine) CancelFunnelEditor() {
	e.editor.Cancel()
}

// ClickSort advances the three-state sort cycle for a column header.
func (e *Engine) ClickSort(column string) {
	e.sort.Click(column)
	e.dirty = true
}

// Sort returns the current sort state.
func (e *Engine) Sort() SortState { return e.sort }

// SetPage moves to a page. The value is applied as-is and clamped during
// derivation when the filtered count makes it out of range.
func (e *Engine) SetPage(page int) {
	if page < 1 {
		page = 1
	}
	if e.page.Current == page {
		return
	}
	e.page.Current = page
	e.dirty = true
}

// Layout returns the column configuration model. Mutations made directly on
// it do not invalidate the snapshot; prefer the engine's column methods.
func (e *Engine) Layout() *Layout { return e.layout }

// ToggleColumn flips a column's visibility.
func (e *Engine) ToggleColumn(key string) {
	e.layout.Toggle(key)
	e.dirty = true
}

// SelectAllColumns makes every column visible.
func (e *Engine) SelectAllColumns() {
	e.layout.SelectAll()
	e.dirty = true
}

// DeselectAllColumns hides every column.
func (e *Engine) DeselectAllColumns() {
	e.layout.DeselectAll()
	e.dirty = true
}

// ReorderColumn moves dragged immediately before target in the display order.
func (e *Engine) ReorderColumn(dragged, target string) {
	e.layout.Reorder(dragged, target)
	e.dirty = true
}

// Snapshot derives the rendered view. The result is memoized: repeated calls
// without input changes return the cached value.
func (e *Engine) Snapshot() Snapshot {
	if !e.dirty {
		return e.cached
	}

	filtered := e.pipeline.Apply(e.records, Inputs{
		Category: e.category,
		Search:   e.search,
		Funnel:   e.funnel,
	})
	sorted := e.sorter.Sort(filtered, e.sort)

	totalPages := TotalPages(len(sorted), e.page.Size)
	if totalPages > 0 && e.page.Current > totalPages {
		e.page.Current = totalPages
	}
	start, end := Window(len(sorted), e.page)

	visible := e.layout.VisibleColumnsInOrder()
	columns := make([]screen.Column, 0, len(visible))
	for _, key := range visible {
		if col, ok := e.scr.ColumnByKey(key); ok {
			columns = append(columns, col)
		}
	}

	rows := make([]Row, 0, end-start)
	for _, rec := range sorted[start:end] {
		cells := make([]string, len(columns))
		for i, col := range columns {
			cells[i] = e.reg.Resolve(rec, col.Key)
		}
		rows = append(rows, Row{ID: rec.ID(), Cells: cells})
	}

	e.cached = Snapshot{
		Columns:    columns,
		Rows:       rows,
		Total:      len(e.records),
		Filtered:   len(sorted),
		Page:       e.page.Current,
		TotalPages: totalPages,
		Sort:       e.sort,
		Facets:     Facets(e.records, e.pipeline.LocationOf, e.facets),
		Err:        e.fetchErr,
	}
	e.dirty = false
	return e.cached
}
