package tui

import (
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"charm.land/huh/v2"
	boardservice "github.com/thenoetrevino/kanbanpro/internal/services/board"
	"github.com/thenoetrevino/kanbanpro/internal/tui/state"
)

// updateTaskForm handles all messages while the add task form is open.
// Esc discards the form and ctrl+s adds the task without confirming.
func (m Model) updateTaskForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form := m.FormState.TaskForm
	if form == nil {
		m.UiState.SetMode(state.NormalMode)
		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		switch keyMsg.String() {
		case m.Config.KeyMappings.Cancel, "esc":
			return m.closeTaskForm()
		case "ctrl+s":
			m.FormState.TaskConfirm = true
			form.State = huh.StateCompleted
			return m.completeTaskForm()
		}
	}

	model, cmd := form.Update(msg)
	m.FormState.TaskForm = model.(*huh.Form)

	switch m.FormState.TaskForm.State {
	case huh.StateCompleted:
		return m.completeTaskForm()
	case huh.StateAborted:
		return m.closeTaskForm()
	}

	return m, cmd
}

// completeTaskForm adds the typed task to the selected column when the form
// was confirmed. Rejected content closes the form without adding anything.
func (m Model) completeTaskForm() (tea.Model, tea.Cmd) {
	col := m.getCurrentColumn()
	content := m.FormState.TaskContent
	confirmed := m.FormState.TaskConfirm

	m.FormState.ClearTaskForm()
	m.UiState.SetMode(state.NormalMode)

	if !confirmed {
		return m, tea.ClearScreen
	}

	if _, err := m.Service.AddTask(m.ctx, boardservice.AddTaskRequest{
		Column:  col.Key,
		Content: content,
	}); err != nil {
		slog.Debug("task not added", "column", col.Key, "error", err)
		return m, tea.ClearScreen
	}

	// The acknowledgment arrives as a task added event
	m.refreshBoard()
	return m, tea.ClearScreen
}

func (m Model) closeTaskForm() (tea.Model, tea.Cmd) {
	m.FormState.ClearTaskForm()
	m.UiState.SetMode(state.NormalMode)
	return m, tea.ClearScreen
}
