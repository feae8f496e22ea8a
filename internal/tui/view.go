package tui

import (
	"fmt"
	"strings"

	"github.com/ampere07/operationmobileapp-sub006/internal/view"
)

func (m model) View() string {
	if m.width == 0 {
		return "loading..."
	}
	switch m.mode {
	case modeColumns:
		return m.viewColumns()
	case modeFunnel, modeFunnelEdit:
		return m.viewFunnel()
	default:
		return m.viewTable()
	}
}

func (m model) viewTable() string {
	snap := m.engine.Snapshot()
	var b strings.Builder

	b.WriteString(m.theme.title.Render(" " + m.engine.Screen().Title))
	if m.loading {
		b.WriteString(m.theme.dim.Render("  fetching..."))
	}
	b.WriteString("\n")

	if snap.Err != nil {
		b.WriteString(m.theme.errText.Render(" error: "+snap.Err.Error()) + "\n")
	}

	b.WriteString(m.renderFacets(snap))
	b.WriteString("\n")

	if m.mode == modeSearch {
		b.WriteString(" " + m.search.View() + "\n")
	} else if m.engine.Search() != "" {
		b.WriteString(m.theme.status.Render(" search: "+m.engine.Search()) + "\n")
	}

	if len(snap.Columns) == 0 {
		b.WriteString(m.theme.dim.Render(" (no visible columns - press c)\n"))
		return b.String()
	}

	widths := columnWidths(snap)

	// header
	var hdr strings.Builder
	for i, col := range snap.Columns {
		label := col.Label
		if snap.Sort.Active() && snap.Sort.Column == col.Key {
			if snap.Sort.Direction == view.Asc {
				label += " ▲"
			} else {
				label += " ▼"
			}
		}
		cell := " " + pad(label, widths[i]) + " "
		if i == m.colCursor {
			hdr.WriteString(m.theme.cursor.Render(cell))
		} else {
			hdr.WriteString(m.theme.header.Render(cell))
		}
	}
	b.WriteString(hdr.String())
	b.WriteString("\n")

	for _, row := range snap.Rows {
		for i, cell := range row.Cells {
			b.WriteString(" " + pad(cell, widths[i]) + " ")
		}
		b.WriteString("\n")
	}
	if len(snap.Rows) == 0 && !m.loading {
		b.WriteString(m.theme.dim.Render(" no records match\n"))
	}

	// status + help
	b.WriteString("\n")
	if snap.TotalPages > 0 {
		b.WriteString(m.theme.status.Render(fmt.Sprintf(" page %d/%d  %d of %d records",
			snap.Page, snap.TotalPages, snap.Filtered, snap.Total)))
	} else {
		b.WriteString(m.theme.status.Render(" no records"))
	}
	if len(m.engine.Funnel()) > 0 {
		b.WriteString(m.theme.badge.Render(fmt.Sprintf("  %d filter(s)", len(m.engine.Funnel()))))
	}
	b.WriteString("\n")
	b.WriteString(m.theme.dim.Render(" h/l column  s sort  n/p page  tab category  / search  f filters  c columns  r refresh  q quit"))
	return b.String()
}

func (m model) renderFacets(snap view.Snapshot) string {
	var parts []string
	for _, f := range snap.Facets {
		label := fmt.Sprintf("%s (%d)", f.Name, f.Count)
		if f.ID == m.engine.Category() {
			parts = append(parts, m.theme.active.Render(label))
		} else {
			parts = append(parts, m.theme.dim.Render(label))
		}
	}
	if len(parts) == 0 {
		return ""
	}
	return " " + strings.Join(parts, "  ")
}

func (m model) viewColumns() string {
	layout := m.engine.Layout()
	var b strings.Builder
	b.WriteString(m.theme.title.Render(" Columns"))
	b.WriteString("\n\n")

	for i, key := range layout.Order() {
		mark := "[ ]"
		if layout.IsVisible(key) {
			mark = "[x]"
		}
		label := key
		if col, ok := m.engine.Screen().ColumnByKey(key); ok {
			label = col.Label
		}
		line := fmt.Sprintf(" %s %-20s %s", mark, key, label)
		if i == m.columnCursor {
			b.WriteString(m.theme.cursor.Render(line))
		} else {
			b.WriteString(line)
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.theme.dim.Render(" j/k move  space toggle  J/K reorder  a all  x none  esc back"))
	return m.theme.overlay.Render(b.String())
}

func (m model) viewFunnel() string {
	scr := m.engine.Screen()
	var b strings.Builder
	b.WriteString(m.theme.title.Render(" Filters"))
	b.WriteString(m.theme.dim.Render("  (draft - a applies, esc discards)"))
	b.WriteString("\n\n")

	draft := view.Funnel{}
	if m.editor != nil {
		draft = m.editor.Draft()
	}
	for i, key := range scr.ColumnKeys() {
		value := view.FormatConstraint(draft[key])
		var line string
		if m.mode == modeFunnelEdit && i == m.funnelCursor {
			line = fmt.Sprintf(" %-20s %s", key, m.funnelInput.View())
		} else {
			line = fmt.Sprintf(" %-20s %s", key, value)
		}
		if i == m.funnelCursor && m.mode == modeFunnel {
			b.WriteString(m.theme.cursor.Render(line))
		} else {
			b.WriteString(line)
		}
		b.WriteString("\n")
	}

	if m.funnelErr != "" {
		b.WriteString("\n" + m.theme.errText.Render(" "+m.funnelErr))
	}
	b.WriteString("\n")
	b.WriteString(m.theme.dim.Render(" j/k move  enter edit  d clear  a apply  esc cancel"))
	return m.theme.overlay.Render(b.String())
}

// columnWidths sizes each visible column from its declared width, widened to
// fit the label and its sort indicator.
func columnWidths(snap view.Snapshot) []int {
	widths := make([]int, len(snap.Columns))
	for i, col := range snap.Columns {
		widths[i] = col.Width
		if widths[i] < 4 {
			widths[i] = 4
		}
		need := len([]rune(col.Label)) + 2
		if need > widths[i] {
			widths[i] = need
		}
	}
	return widths
}

// pad fits s into width runes, truncating with an ellipsis when too long.
func pad(s string, width int) string {
	runes := []rune(s)
	if len(runes) > width {
		if width <= 1 {
			return string(runes[:width])
		}
		return string(runes[:width-1]) + "…"
	}
	return s + strings.Repeat(" ", width-len(runes))
}
