package state

// Mode represents the current interaction mode of the TUI.
// Each mode determines which keyboard shortcuts are active and what UI is displayed.
type Mode int

const (
	NormalMode  Mode = iota // Default navigation mode
	AddTaskMode             // Typing the content of a new task
	DragMode                // A task is grabbed and follows the column cursor
	HelpMode                // Displaying help screen
)

// UIState manages the user interface state.
// This includes navigation (column/task selection), terminal dimensions,
// and the current interaction mode.
type UIState struct {
	selectedColumn int
	selectedTask   int
	width          int
	height         int
	mode           Mode
}

// NewUIState creates a new UIState with default values.
func NewUIState() *UIState {
	return &UIState{mode: NormalMode}
}

// SelectedColumn returns the index of the currently selected column.
func (s *UIState) SelectedColumn() int {
	return s.selectedColumn
}

// SetSelectedColumn updates the selected column index.
func (s *UIState) SetSelectedColumn(index int) {
	s.selectedColumn = index
}

// SelectedTask returns the index of the currently selected task.
func (s *UIState) SelectedTask() int {
	return s.selectedTask
}

// SetSelectedTask updates the selected task index.
func (s *UIState) SetSelectedTask(index int) {
	s.selectedTask = index
}

// ClampSelection keeps the selection inside numColumns columns and a column of
// taskCount tasks.
func (s *UIState) ClampSelection(numColumns, taskCount int) {
	s.selectedColumn = min(max(s.selectedColumn, 0), max(numColumns-1, 0))
	s.selectedTask = min(max(s.selectedTask, 0), max(taskCount-1, 0))
}

// Width returns the current terminal width.
func (s *UIState) Width() int {
	return s.width
}

// SetWidth updates the terminal width.
func (s *UIState) SetWidth(width int) {
	s.width = width
}

// Height returns the current terminal height.
func (s *UIState) Height() int {
	return s.height
}

// SetHeight updates the terminal height.
func (s *UIState) SetHeight(height int) {
	s.height = height
}

// ContentHeight returns the available height for the columns.
// This is terminal height minus the input and status bar, ensuring a minimum of 5.
func (s *UIState) ContentHeight() int {
	const inputHeight = 3
	const statusBarHeight = 2
	return max(s.height-inputHeight-statusBarHeight, 5)
}

// Mode returns the current interaction mode.
func (s *UIState) Mode() Mode {
	return s.mode
}

// SetMode updates the current interaction mode.
func (s *UIState) SetMode(mode Mode) {
	s.mode = mode
}
