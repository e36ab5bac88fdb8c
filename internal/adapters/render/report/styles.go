package report

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title   lipgloss.Style
	header  lipgloss.Style
	mark    lipgloss.Style
	node    lipgloss.Style
	warning lipgloss.Style
	detail  lipgloss.Style
	empty   lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:   lipgloss.NewStyle().Bold(true),
		header:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		mark:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
		node:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		warning: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		detail:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		empty:   lipgloss.NewStyle().Faint(true),
	}
}
