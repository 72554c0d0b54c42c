package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/kanbanpro/internal/models"
	"github.com/thenoetrevino/kanbanpro/internal/tui/theme"
)

// ColumnView carries everything RenderColumn needs
type ColumnView struct {
	Column       models.Column
	Selected     bool   // cursor is in this column
	SelectedTask int    // index of the highlighted task, -1 for none
	GrabbedID    string // id of the task being dragged, if any
	Width        int    // outer width including border
	Height       int    // outer height including border, 0 for auto
}

// RenderColumn renders a complete column with its heading and tasks.
//
// Layout:
//
//	{Heading} ({count})
//	▲ more above
//	{Task 1}
//	{Task 2}
//	▼ more below
func RenderColumn(v ColumnView) string {
	display := v.Column.Key.Display()

	header := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.ColumnColor(v.Column.Key))).
		Render(fmt.Sprintf("%s (%d)", display.Heading, v.Column.Len()))

	cardWidth := TaskCardWidth(v.Width)
	lines := []string{header}

	if v.Column.Len() == 0 {
		lines = append(lines, EmptyStyle.Render("No tasks"))
	} else {
		cards := make([]string, v.Column.Len())
		for i, task := range v.Column.Tasks {
			state := TaskNormal
			switch {
			case task.ID == v.GrabbedID:
				state = TaskGrabbed
			case v.Selected && i == v.SelectedTask:
				state = TaskSelected
			}
			cards[i] = RenderTask(task, state, cardWidth)
		}
		lines = append(lines, visibleCards(cards, v.SelectedTask, v.Height)...)
	}

	style := ColumnStyle
	if v.Selected {
		style = SelectedColumnStyle
	}
	style = style.Width(max(v.Width, style.GetHorizontalFrameSize()+1))
	if v.Height > 0 {
		style = style.Height(max(v.Height, style.GetVerticalBorderSize()+1))
	}

	return style.Render(strings.Join(lines, "\n"))
}

// visibleCards keeps the selected card on screen when the column is taller
// than height, adding scroll indicators for the hidden parts
func visibleCards(cards []string, selected, height int) []string {
	if height <= 0 {
		return cards
	}

	// border (2) + header (1) + both indicators (2)
	available := height - 5
	if available <= 0 {
		return cards[:1]
	}

	total := 0
	for _, c := range cards {
		total += taskHeight(c)
	}
	if total <= available+2 {
		return cards
	}

	start := max(selected, 0)
	used := 0
	end := start
	for end < len(cards) && used+taskHeight(cards[end]) <= available {
		used += taskHeight(cards[end])
		end++
	}
	for start > 0 && used+taskHeight(cards[start-1]) <= available {
		start--
		used += taskHeight(cards[start])
	}
	if end == start {
		end = start + 1
	}

	indicator := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle))
	out := []string{}
	if start > 0 {
		out = append(out, indicator.Render("▲ more above"))
	}
	out = append(out, cards[start:end]...)
	if end < len(cards) {
		out = append(out, indicator.Render("▼ more below"))
	}
	return out
}
