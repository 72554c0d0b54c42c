package tui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/kanbanpro/internal/tui/components"
)

// viewHelp renders the help screen centered in the terminal
func (m Model) viewHelp() string {
	km := m.Config.KeyMappings

	rows := []struct{ key, desc string }{
		{km.PrevColumn + " / " + km.NextColumn, "previous / next column"},
		{km.PrevTask + " / " + km.NextTask, "previous / next task"},
		{km.AddTask, "add a task to the selected column"},
		{keyLabel(km.GrabTask), "grab the selected task"},
		{keyLabel(km.GrabTask) + " / " + km.DropTask, "drop the grabbed task at the end of the column"},
		{km.Cancel, "cancel input or drag"},
		{km.ShowHelp, "toggle this help"},
		{km.Quit, "quit"},
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Render("Kanban Board Keys"))
	b.WriteString("\n\n")
	for _, r := range rows {
		fmt.Fprintf(&b, "  %-14s %s\n", r.key, r.desc)
	}

	return lipgloss.Place(
		m.UiState.Width(), m.UiState.Height(),
		lipgloss.Center, lipgloss.Center,
		components.HelpBoxStyle.Render(strings.TrimRight(b.String(), "\n")),
	)
}
