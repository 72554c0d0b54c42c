package theme

import (
	"github.com/thenoetrevino/kanbanpro/internal/config/colors"
	"github.com/thenoetrevino/kanbanpro/internal/models"
)

// Colors holds the current theme colors, initialized by Init
var (
	Highlight      string
	Subtle         string
	Normal         string
	ColumnBorder   string
	TaskBorder     string
	SelectedBorder string
	GrabbedBorder  string
	InfoFg         string
	InfoBg         string
	WarningFg      string
	WarningBg      string
	ErrorFg        string
	ErrorBg        string

	columnColors = map[models.ColumnKey]string{}
)

// Init initializes the theme colors from the given color scheme
func Init(scheme colors.ColorScheme) {
	Highlight = scheme.Accent
	Subtle = scheme.Subtle
	Normal = scheme.Normal
	ColumnBorder = scheme.ColumnBorder
	TaskBorder = scheme.TaskBorder
	SelectedBorder = scheme.SelectedBorder
	GrabbedBorder = scheme.GrabbedBorder
	InfoFg = scheme.InfoFg
	InfoBg = scheme.InfoBg
	WarningFg = scheme.WarningFg
	WarningBg = scheme.WarningBg
	ErrorFg = scheme.ErrorFg
	ErrorBg = scheme.ErrorBg

	columnColors = map[models.ColumnKey]string{
		models.ColumnTodo:       scheme.Todo,
		models.ColumnInProgress: scheme.InProgress,
		models.ColumnComplete:   scheme.Complete,
	}
}

// ColumnColor returns the header color for key. Keys without a themed color
// use the board's display table.
func ColumnColor(key models.ColumnKey) string {
	if c := columnColors[key]; c != "" {
		return c
	}
	return key.Display().Color
}
