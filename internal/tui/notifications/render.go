package notifications

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/kanbanpro/internal/tui/state"
)

// Render renders a notification banner for the given level
func Render(level state.NotificationLevel, message string) string {
	style := styleFor(level)

	headerText := style.icon + " " + style.title
	maxWidth := max(lipgloss.Width(headerText), lipgloss.Width(message))

	header := lipgloss.NewStyle().
		Foreground(lipgloss.Color(style.foreground)).
		Bold(true).
		Width(maxWidth).
		Render(headerText)

	body := lipgloss.NewStyle().
		Foreground(lipgloss.Color(style.foreground)).
		Width(maxWidth).
		Render(message)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(style.background)).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(lipgloss.Left, header, body))
}

// RenderFromState renders a notification banner from a state.Notification
func RenderFromState(n state.Notification) string {
	return Render(n.Level, n.Message)
}

// RenderStack renders every notification stacked vertically, right aligned
// within width
func RenderStack(ns []state.Notification, width int) string {
	if len(ns) == 0 {
		return ""
	}
	banners := make([]string, len(ns))
	for i, n := range ns {
		banners[i] = RenderFromState(n)
	}
	stack := lipgloss.JoinVertical(lipgloss.Right, banners...)
	if width <= 0 {
		return stack
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Right, stack)
}
