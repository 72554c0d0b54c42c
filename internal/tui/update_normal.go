package tui

import (
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/kanbanpro/internal/tui/huhforms"
	"github.com/thenoetrevino/kanbanpro/internal/tui/state"
)

func (m Model) handleNormalMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	km := m.Config.KeyMappings

	switch msg.String() {
	case km.Quit:
		return m.handleQuit()
	case km.ShowHelp:
		return m.handleShowHelp()
	case km.AddTask:
		return m.handleAddTask()
	case km.GrabTask:
		return m.handleGrabTask()
	case km.PrevColumn, "left":
		return m.handleNavigateLeft()
	case km.NextColumn, "right":
		return m.handleNavigateRight()
	case km.NextTask, "down":
		return m.handleNavigateDown()
	case km.PrevTask, "up":
		return m.handleNavigateUp()
	}

	return m, nil
}

func (m Model) handleQuit() (tea.Model, tea.Cmd) {
	if m.grabbed != nil {
		m.DragDrop.Cancel()
		m.grabbed = nil
	}
	m.Close()
	return m, tea.Quit
}

func (m Model) handleShowHelp() (tea.Model, tea.Cmd) {
	m.UiState.SetMode(state.HelpMode)
	return m, nil
}

func (m Model) handleNavigateLeft() (tea.Model, tea.Cmd) {
	if m.UiState.SelectedColumn() > 0 {
		m.UiState.SetSelectedColumn(m.UiState.SelectedColumn() - 1)
		m.UiState.SetSelectedTask(0)
	}
	return m, nil
}

func (m Model) handleNavigateRight() (tea.Model, tea.Cmd) {
	if m.UiState.SelectedColumn() < len(m.columns)-1 {
		m.UiState.SetSelectedColumn(m.UiState.SelectedColumn() + 1)
		m.UiState.SetSelectedTask(0)
	}
	return m, nil
}

func (m Model) handleNavigateUp() (tea.Model, tea.Cmd) {
	if m.UiState.SelectedTask() > 0 {
		m.UiState.SetSelectedTask(m.UiState.SelectedTask() - 1)
	}
	return m, nil
}

func (m Model) handleNavigateDown() (tea.Model, tea.Cmd) {
	if m.UiState.SelectedTask() < len(m.getCurrentTasks())-1 {
		m.UiState.SetSelectedTask(m.UiState.SelectedTask() + 1)
	}
	return m, nil
}

// handleAddTask opens the add task form for the selected column
func (m Model) handleAddTask() (tea.Model, tea.Cmd) {
	m.FormState.ClearTaskForm()
	m.FormState.TaskForm = huhforms.CreateTaskForm(&m.FormState.TaskContent, &m.FormState.TaskConfirm)
	m.UiState.SetMode(state.AddTaskMode)
	return m, m.FormState.TaskForm.Init()
}

// handleGrabTask starts dragging the selected task
func (m Model) handleGrabTask() (tea.Model, tea.Cmd) {
	task, ok := m.getCurrentTask()
	if !ok {
		return m, nil
	}

	col := m.getCurrentColumn()
	payload := m.DragDrop.OnDragStart(task, col.Key, m.UiState.SelectedTask())
	m.grabbed = &payload
	m.UiState.SetMode(state.DragMode)
	return m, nil
}
