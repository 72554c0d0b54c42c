package tui

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/kanbanpro/internal/tui/components"
	"github.com/thenoetrevino/kanbanpro/internal/tui/notifications"
	"github.com/thenoetrevino/kanbanpro/internal/tui/state"
)

// View renders the current state of the application
// This implements the "View" part of the Model-View-Update pattern
func (m Model) View() tea.View {
	var view tea.View
	view.AltScreen = true // Use alternate screen buffer
	view.Content = m.render()
	return view
}

// render draws the screen for the current mode
func (m Model) render() string {
	// Wait for terminal size to be initialized
	if m.UiState.Width() == 0 {
		return "Loading..."
	}

	if m.UiState.Mode() == state.HelpMode {
		return m.viewHelp()
	}

	sections := []string{m.viewBoard()}
	if m.UiState.Mode() == state.AddTaskMode {
		sections = append(sections, m.viewTaskForm())
	}
	if m.NotificationState.HasAny() {
		sections = append(sections, notifications.RenderStack(m.NotificationState.All(), m.UiState.Width()))
	}
	sections = append(sections, m.viewStatusBar())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// viewBoard renders the columns side by side, sharing the terminal width
func (m Model) viewBoard() string {
	columnWidth := max(m.UiState.Width()/len(m.columns), 12)
	grabbedID := ""
	if m.grabbed != nil {
		grabbedID = m.grabbed.TaskID
	}

	rendered := make([]string, len(m.columns))
	for i, key := range m.columns {
		col, _ := m.board.Column(key)
		col.Key = key
		selected := i == m.UiState.SelectedColumn()

		selectedTask := -1
		if selected && m.UiState.Mode() != state.DragMode {
			selectedTask = m.UiState.SelectedTask()
		}

		rendered[i] = components.RenderColumn(components.ColumnView{
			Column:       col,
			Selected:     selected,
			SelectedTask: selectedTask,
			GrabbedID:    grabbedID,
			Width:        columnWidth,
			Height:       m.UiState.ContentHeight(),
		})
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

// viewTaskForm renders the add task modal under the board
func (m Model) viewTaskForm() string {
	if m.FormState.TaskForm == nil {
		return ""
	}

	heading := m.getCurrentColumn().Key.Display().Heading
	title := components.FormTitleStyle.Render("Add New Task")
	subtitle := components.StatusBarStyle.Render("in " + heading)

	return components.InputBoxStyle.
		Width(max(m.UiState.Width()/2, 32)).
		Render(lipgloss.JoinVertical(lipgloss.Left, title+" "+subtitle, "", m.FormState.TaskForm.View()))
}

// viewStatusBar shows the keys that apply in the current mode
func (m Model) viewStatusBar() string {
	km := m.Config.KeyMappings
	var hints []string

	switch m.UiState.Mode() {
	case state.AddTaskMode:
		hints = []string{"enter next", "ctrl+s add", keyLabel(km.Cancel) + " cancel"}
	case state.DragMode:
		hints = []string{
			keyLabel(km.PrevColumn) + "/" + keyLabel(km.NextColumn) + " choose column",
			keyLabel(km.GrabTask) + "/" + keyLabel(km.DropTask) + " drop",
			keyLabel(km.Cancel) + " cancel",
		}
	default:
		hints = []string{
			keyLabel(km.AddTask) + " add",
			keyLabel(km.GrabTask) + " grab",
			keyLabel(km.ShowHelp) + " help",
			keyLabel(km.Quit) + " quit",
		}
	}

	return components.StatusBarStyle.Render(strings.Join(hints, " • "))
}

// keyLabel turns a key binding into something readable
func keyLabel(key string) string {
	if key == " " {
		return "space"
	}
	return key
}
