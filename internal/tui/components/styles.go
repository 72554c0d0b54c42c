// Package components provides reusable UI components and styles.
// Call InitStyles() before use to initialize all style variables.
package components

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/kanbanpro/internal/config/colors"
	"github.com/thenoetrevino/kanbanpro/internal/tui/theme"
)

var (
	// ColumnStyle defines the appearance of kanban board columns
	ColumnStyle lipgloss.Style

	// SelectedColumnStyle highlights the column under the cursor
	SelectedColumnStyle lipgloss.Style

	// TaskStyle defines the appearance of individual tasks as cards
	TaskStyle lipgloss.Style

	// SelectedTaskStyle highlights the task under the cursor
	SelectedTaskStyle lipgloss.Style

	// GrabbedTaskStyle marks the task being dragged
	GrabbedTaskStyle lipgloss.Style

	// EmptyStyle renders the placeholder of an empty column
	EmptyStyle lipgloss.Style

	// InputBoxStyle frames the add task form
	InputBoxStyle lipgloss.Style

	// FormTitleStyle renders the title of the add task form
	FormTitleStyle lipgloss.Style

	// HelpBoxStyle defines the base style for help screen
	HelpBoxStyle lipgloss.Style

	// StatusBarStyle defines the base style for the status bar
	StatusBarStyle lipgloss.Style
)

func init() {
	InitStyles(*colors.Default())
}

// InitStyles initializes all styles with the given color scheme
func InitStyles(scheme colors.ColorScheme) {
	theme.Init(scheme)

	ColumnStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.ColumnBorder)).
		PaddingLeft(1).
		PaddingRight(1)

	SelectedColumnStyle = ColumnStyle.
		BorderForeground(lipgloss.Color(theme.Highlight))

	TaskStyle = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(theme.TaskBorder)).
		Foreground(lipgloss.Color(theme.Normal)).
		Padding(0, 1)

	SelectedTaskStyle = TaskStyle.
		Border(lipgloss.ThickBorder()).
		BorderForeground(lipgloss.Color(theme.SelectedBorder))

	GrabbedTaskStyle = TaskStyle.
		Border(lipgloss.DoubleBorder()).
		BorderForeground(lipgloss.Color(theme.GrabbedBorder))

	EmptyStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle)).
		Italic(true).
		Padding(1, 0)

	InputBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Highlight)).
		Padding(0, 1)

	FormTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.Highlight))

	HelpBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Highlight)).
		Padding(1, 2)

	StatusBarStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle))
}
