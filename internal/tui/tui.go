// Package tui is the interactive terminal browser for record screens. It
// drives one view engine per session: all filtering, sorting, column layout
// and pagination goes through the engine, the TUI only renders snapshots
// and translates key presses into engine calls.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ampere07/operationmobileapp-sub006/internal/source"
	"github.com/ampere07/operationmobileapp-sub006/internal/view"
)

// Run starts the browser for one screen's engine and blocks until quit.
func Run(engine *view.Engine, loader *source.Loader, theme string) error {
	p := tea.NewProgram(newModel(engine, loader, theme), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
