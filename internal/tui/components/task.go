package components

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/kanbanpro/internal/models"
)

// TaskState selects how a task card is drawn
type TaskState int

const (
	TaskNormal TaskState = iota
	TaskSelected
	TaskGrabbed
)

// RenderTask renders a single task as a card of the given outer width
func RenderTask(task models.Task, state TaskState, width int) string {
	style := TaskStyle
	switch state {
	case TaskSelected:
		style = SelectedTaskStyle
	case TaskGrabbed:
		style = GrabbedTaskStyle
	}

	// Width includes border and padding
	return style.Width(max(width, style.GetHorizontalFrameSize()+1)).Render(task.Content)
}

// TaskCardWidth returns the card width that fits a column of the given width
func TaskCardWidth(columnWidth int) int {
	return max(columnWidth-ColumnStyle.GetHorizontalFrameSize(), 4)
}

// taskHeight reports how many lines a rendered card occupies
func taskHeight(card string) int {
	return lipgloss.Height(card)
}
