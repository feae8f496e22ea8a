package tui

import "github.com/charmbracelet/lipgloss"

// styles is the palette for one theme.
type styles struct {
	title    lipgloss.Style
	header   lipgloss.Style
	cursor   lipgloss.Style
	active   lipgloss.Style
	dim      lipgloss.Style
	status   lipgloss.Style
	errText  lipgloss.Style
	overlay  lipgloss.Style
	badge    lipgloss.Style
}

func newStyles(theme string) styles {
	if theme == "light" {
		return styles{
			title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("4")),
			header:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("7")),
			cursor:  lipgloss.NewStyle().Background(lipgloss.Color("4")).Foreground(lipgloss.Color("15")),
			active:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2")),
			dim:     lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
			status:  lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
			errText: lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
			overlay: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
			badge:   lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
		}
	}
	return styles{
		title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		header:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Background(lipgloss.Color("8")),
		cursor:  lipgloss.NewStyle().Background(lipgloss.Color("4")).Foreground(lipgloss.Color("15")),
		active:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
		dim:     lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		status:  lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		errText: lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		overlay: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
		badge:   lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	}
}
