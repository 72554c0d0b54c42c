// Package styles holds the lipgloss styles used by human-readable CLI output.
// Styles render as plain text when stdout is not a terminal.
package styles

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/thenoetrevino/kanbanpro/internal/config/colors"
	"github.com/thenoetrevino/kanbanpro/internal/models"
)

var (
	// Text styles
	TitleStyle    lipgloss.Style
	SubtitleStyle lipgloss.Style // For ids and secondary details

	// Status styles
	SuccessStyle lipgloss.Style
	ErrorStyle   lipgloss.Style
	WarningStyle lipgloss.Style

	columnColors map[models.ColumnKey]string
)

func init() {
	Init(*colors.Default())
}

// Init initializes all CLI styles with the given color scheme
func Init(scheme colors.ColorScheme) {
	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.Accent))

	SubtitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Subtle))

	SuccessStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.InfoFg))

	ErrorStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.ErrorFg))

	WarningStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.WarningFg))

	columnColors = map[models.ColumnKey]string{
		models.ColumnTodo:       scheme.Todo,
		models.ColumnInProgress: scheme.InProgress,
		models.ColumnComplete:   scheme.Complete,
	}
}

// ColoredText renders text with a hex color
func ColoredText(text, hexColor string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(hexColor)).
		Render(text)
}

// BoldColoredText renders bold text with a hex color
func BoldColoredText(text, hexColor string) string {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(hexColor)).
		Render(text)
}

// ColumnHeading renders "Heading (count)" in the column's color
// Format: "Todo (3)"
func ColumnHeading(col models.Column) string {
	color := columnColors[col.Key]
	if color == "" {
		color = col.Key.Display().Color
	}
	return BoldColoredText(fmt.Sprintf("%s (%d)", col.Key.Display().Heading, col.Len()), color)
}
