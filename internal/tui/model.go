package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ampere07/operationmobileapp-sub006/internal/record"
	"github.com/ampere07/operationmobileapp-sub006/internal/source"
	"github.com/ampere07/operationmobileapp-sub006/internal/view"
)

type mode int

const (
	modeTable mode = iota
	modeSearch
	modeColumns
	modeFunnel
	modeFunnelEdit
)

const fetchTimeout = 30 * time.Second

type fetchDoneMsg struct {
	gen     string
	records []record.R
	err     error
}

type model struct {
	engine *view.Engine
	loader *source.Loader
	theme  styles

	width  int
	height int

	mode    mode
	loading bool

	// table
	colCursor int // index into the visible columns, drives sort clicks

	// search
	search textinput.Model

	// columns overlay
	columnCursor int

	// funnel overlay
	editor       *view.FunnelEditor
	funnelCursor int
	funnelInput  textinput.Model
	funnelErr    string
}

func newModel(engine *view.Engine, loader *source.Loader, theme string) model {
	search := textinput.New()
	search.Placeholder = "search"
	search.Prompt = "/ "
	search.CharLimit = 120

	funnelInput := textinput.New()
	funnelInput.Placeholder = "value or from..to"
	funnelInput.Prompt = "= "
	funnelInput.CharLimit = 120

	return model{
		engine:      engine,
		loader:      loader,
		theme:       newStyles(theme),
		search:      search,
		funnelInput: funnelInput,
		loading:     true,
	}
}

func (m model) Init() tea.Cmd {
	_, cmd := m.startFetch()
	return cmd
}

// startFetch begins a new fetch generation and returns the command that
// completes it. Stale completions are discarded by the engine.
func (m model) startFetch() (model, tea.Cmd) {
	gen := m.engine.BeginFetch()
	scope := m.engine.Screen().Name
	loader := m.loader
	m.loading = true
	return m, func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		records, err := loader.Fetch(ctx, scope)
		return fetchDoneMsg{gen: gen, records: records, err: err}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case fetchDoneMsg:
		if m.engine.CompleteFetch(msg.gen, msg.records, msg.err) {
			m.loading = false
		}
		return m, nil
	case tea.KeyMsg:
		switch m.mode {
		case modeSearch:
			return m.updateSearch(msg)
		case modeColumns:
			return m.updateColumns(msg)
		case modeFunnel:
			return m.updateFunnel(msg)
		case modeFunnelEdit:
			return m.updateFunnelEdit(msg)
		default:
			return m.updateTable(msg)
		}
	}
	return m, nil
}

// --- Table ---

func (m model) updateTable(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	snap := m.engine.Snapshot()
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "r":
		return m.startFetch()
	case "/":
		m.mode = modeSearch
		m.search.SetValue(m.engine.Search())
		m.search.CursorEnd()
		return m, m.search.Focus()
	case "left", "h":
		if m.colCursor > 0 {
			m.colCursor--
		}
	case "right", "l":
		if m.colCursor < len(snap.Columns)-1 {
			m.colCursor++
		}
	case "s", "enter":
		if m.colCursor < len(snap.Columns) {
			m.engine.ClickSort(snap.Columns[m.colCursor].Key)
		}
	case "n", "]", "pgdown":
		m.engine.SetPage(snap.Page + 1)
	case "p", "[", "pgup":
		m.engine.SetPage(snap.Page - 1)
	case "tab":
		m.cycleFacet(snap, 1)
	case "shift+tab":
		m.cycleFacet(snap, -1)
	case "c":
		m.mode = modeColumns
		m.columnCursor = 0
	case "f":
		m.mode = modeFunnel
		m.funnelCursor = 0
		m.funnelErr = ""
		m.editor = m.engine.OpenFunnelEditor()
	}
	return m, nil
}

// cycleFacet steps the category filter through the facet list.
func (m *model) cycleFacet(snap view.Snapshot, step int) {
	if len(snap.Facets) == 0 {
		return
	}
	current := 0
	for i, f := range snap.Facets {
		if f.ID == m.engine.Category() {
			current = i
			break
		}
	}
	next := (current + step + len(snap.Facets)) % len(snap.Facets)
	m.engine.SetCategory(snap.Facets[next].ID)
}

// --- Search ---

func (m model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "esc":
		m.mode = modeTable
		m.search.Blur()
		return m, nil
	case "ctrl+u":
		m.search.SetValue("")
		m.engine.SetSearch("")
		return m, nil
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	// The record set is local, so the search narrows on every keystroke.
	m.engine.SetSearch(m.search.Value())
	return m, cmd
}

// --- Columns overlay ---

func (m model) updateColumns(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	order := m.engine.Layout().Order()
	switch msg.String() {
	case "esc", "c", "q":
		m.mode = modeTable
		m.clampColCursor()
	case "up", "k":
		if m.columnCursor > 0 {
			m.columnCursor--
		}
	case "down", "j":
		if m.columnCursor < len(order)-1 {
			m.columnCursor++
		}
	case " ", "enter":
		if m.columnCursor < len(order) {
			m.engine.ToggleColumn(order[m.columnCursor])
		}
	case "K":
		if m.columnCursor > 0 {
			m.engine.ReorderColumn(order[m.columnCursor], order[m.columnCursor-1])
			m.columnCursor--
		}
	case "J":
		if m.columnCursor < len(order)-1 {
			dragged := order[m.columnCursor]
			if m.columnCursor+2 < len(order) {
				m.engine.ReorderColumn(dragged, order[m.columnCursor+2])
			} else {
				// Moving below the last slot: reorder the next one above us.
				m.engine.ReorderColumn(order[m.columnCursor+1], dragged)
			}
			m.columnCursor++
		}
	case "a":
		m.engine.SelectAllColumns()
	case "x":
		m.engine.DeselectAllColumns()
	}
	return m, nil
}

// clampColCursor keeps the sort cursor inside the visible column range after
// the layout changed.
func (m *model) clampColCursor() {
	visible := len(m.engine.Layout().VisibleColumnsInOrder())
	if m.colCursor >= visible {
		m.colCursor = visible - 1
	}
	if m.colCursor < 0 {
		m.colCursor = 0
	}
}

// --- Funnel overlay ---

func (m model) updateFunnel(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.engine.Screen().ColumnKeys()
	switch msg.String() {
	case "esc", "q":
		m.engine.CancelFunnelEditor()
		m.editor = nil
		m.mode = modeTable
	case "up", "k":
		if m.funnelCursor > 0 {
			m.funnelCursor--
		}
	case "down", "j":
		if m.funnelCursor < len(keys)-1 {
			m.funnelCursor++
		}
	case "enter":
		if m.funnelCursor < len(keys) {
			key := keys[m.funnelCursor]
			m.funnelInput.SetValue(view.FormatConstraint(m.editor.Draft()[key]))
			m.funnelInput.CursorEnd()
			m.funnelErr = ""
			m.mode = modeFunnelEdit
			return m, m.funnelInput.Focus()
		}
	case "d":
		if m.funnelCursor < len(keys) {
			m.editor.Clear(keys[m.funnelCursor])
		}
	case "a":
		m.engine.ApplyFunnelEditor()
		m.editor = nil
		m.mode = modeTable
	}
	return m, nil
}

func (m model) updateFunnelEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.engine.Screen().ColumnKeys()
	switch msg.String() {
	case "esc":
		m.funnelInput.Blur()
		m.mode = modeFunnel
		return m, nil
	case "enter":
		key := keys[m.funnelCursor]
		value := m.funnelInput.Value()
		if value == "" {
			m.editor.Clear(key)
		} else {
			c, err := view.ParseConstraint(value)
			if err != nil {
				m.funnelErr = err.Error()
				return m, nil
			}
			m.editor.Set(key, c)
		}
		m.funnelInput.Blur()
		m.funnelErr = ""
		m.mode = modeFunnel
		return m, nil
	}
	var cmd tea.Cmd
	m.funnelInput, cmd = m.funnelInput.Update(msg)
	return m, cmd
}
