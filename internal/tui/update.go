package tui

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/kanbanpro/internal/events"
	"github.com/thenoetrevino/kanbanpro/internal/tui/state"
)

// Update handles all messages and updates the model accordingly
// This implements the "Update" part of the Model-View-Update pattern
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		if msg.String() == "ctrl+c" {
			return m.handleQuit()
		}
		switch m.UiState.Mode() {
		case state.AddTaskMode:
			return m.updateTaskForm(msg)
		case state.DragMode:
			return m.handleDragMode(msg)
		case state.HelpMode:
			return m.handleHelpMode(msg)
		default:
			return m.handleNormalMode(msg)
		}

	case tea.WindowSizeMsg:
		m.UiState.SetWidth(msg.Width)
		m.UiState.SetHeight(msg.Height)
		if m.UiState.Mode() == state.AddTaskMode {
			return m.updateTaskForm(msg)
		}
		return m, nil

	case eventMsg:
		return m.handleEvent(events.Event(msg))

	case dismissNotificationMsg:
		m.NotificationState.Dismiss(msg.id)
		return m, nil

	case eventsClosedMsg:
		return m, nil
	}

	// Forms need to receive ALL messages, not just key presses
	if m.UiState.Mode() == state.AddTaskMode {
		return m.updateTaskForm(msg)
	}

	return m, nil
}

// handleEvent redraws after any board change. Adds and save failures are
// also surfaced as toasts; moves never are.
func (m Model) handleEvent(ev events.Event) (tea.Model, tea.Cmd) {
	m.refreshBoard()
	cmds := []tea.Cmd{waitForEvent(m.events)}

	switch ev.Type {
	case events.EventTaskAdded:
		id := m.NotificationState.Add(state.LevelInfo, "Task added successfully!")
		cmds = append(cmds, dismissAfter(id))
	case events.EventSaveFailed:
		id := m.NotificationState.Add(state.LevelError, fmt.Sprintf("Could not save board: %v", ev.Err))
		cmds = append(cmds, dismissAfter(id))
	}

	return m, tea.Batch(cmds...)
}

func (m Model) handleHelpMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	km := m.Config.KeyMappings
	switch msg.String() {
	case km.ShowHelp, km.Cancel, km.Quit:
		m.UiState.SetMode(state.NormalMode)
	}
	return m, nil
}
