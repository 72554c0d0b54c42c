package tui

import (
	"log/slog"

	tea "charm.land/bubbletea/v2"
	boardservice "github.com/thenoetrevino/kanbanpro/internal/services/board"
	"github.com/thenoetrevino/kanbanpro/internal/tui/state"
)

// handleDragMode moves the grabbed task's target between columns until it is
// dropped or the drag is cancelled
func (m Model) handleDragMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	km := m.Config.KeyMappings

	switch msg.String() {
	case km.GrabTask, km.DropTask:
		return m.handleDrop()
	case km.Cancel:
		return m.handleCancelDrag()
	case km.PrevColumn, "left":
		if m.UiState.SelectedColumn() > 0 {
			m.UiState.SetSelectedColumn(m.UiState.SelectedColumn() - 1)
		}
	case km.NextColumn, "right":
		if m.UiState.SelectedColumn() < len(m.columns)-1 {
			m.UiState.SetSelectedColumn(m.UiState.SelectedColumn() + 1)
		}
	}
	return m, nil
}

// handleDrop completes the drag at the end of the column under the cursor.
// Rejected drops leave the board untouched and are not reported.
func (m Model) handleDrop() (tea.Model, tea.Cmd) {
	if m.grabbed == nil {
		m.UiState.SetMode(state.NormalMode)
		return m, nil
	}

	payload := *m.grabbed
	m.grabbed = nil
	m.UiState.SetMode(state.NormalMode)

	dest := m.getCurrentColumn()
	moved, err := m.DragDrop.OnDrop(m.ctx, payload, dest.Key, boardservice.EndOfColumn)
	if err != nil {
		slog.Debug("drop ignored", "task_id", payload.TaskID, "dest", dest.Key, "error", err)
	}

	m.refreshBoard()
	if moved {
		m.UiState.SetSelectedTask(len(m.getCurrentTasks()) - 1)
	} else {
		m.restoreSelection(payload.TaskID)
	}
	return m, nil
}

func (m Model) handleCancelDrag() (tea.Model, tea.Cmd) {
	m.DragDrop.Cancel()
	if m.grabbed != nil {
		m.restoreSelection(m.grabbed.TaskID)
	}
	m.grabbed = nil
	m.UiState.SetMode(state.NormalMode)
	return m, nil
}

// restoreSelection puts the cursor back on taskID wherever it is
func (m *Model) restoreSelection(taskID string) {
	key, idx, ok := m.board.Find(taskID)
	if !ok {
		return
	}
	for i, k := range m.columns {
		if k == key {
			m.UiState.SetSelectedColumn(i)
			m.UiState.SetSelectedTask(idx)
			return
		}
	}
}
