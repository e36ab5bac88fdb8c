package report

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/nfdez/brainctl/internal/application"
	"github.com/nfdez/brainctl/internal/domain"
)

func renderActivationView(report application.ActivationReport, s styles) string {
	lines := []string{
		s.title.Render("Nodes activated"),
	}

	for _, entry := range report.Entries {
		mark := " "
		style := s.node
		if entry.Active {
			mark = "➤"
			style = s.mark
		}
		lines = append(lines, style.Render(fmt.Sprintf(" %s %s - %s", mark, entry.Node.ID, entry.Node.Name)))
	}

	if len(report.Missing) > 0 {
		lines = append(lines, "", s.warning.Render("Warning: some requested nodes were not activated:"))
		for _, node := range report.Missing {
			lines = append(lines, s.detail.Render(fmt.Sprintf("   %s - %s", node.ID, node.Name)))
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderStatusView(entries []domain.ActiveEntry, s styles) string {
	if len(entries) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left,
			s.title.Render("Current state"),
			s.empty.Render("No active nodes."),
		)
	}

	lines := []string{
		s.title.Render("Current state"),
		s.header.Render(fmt.Sprintf("active nodes: %d", len(entries))),
	}

	for i, entry := range entries {
		lines = append(lines, s.node.Render(fmt.Sprintf(" %d. %s - %s", i+1, entry.ID, entry.DisplayName())))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
