package tui

import (
	"context"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/kanbanpro/internal/app"
	"github.com/thenoetrevino/kanbanpro/internal/config"
	"github.com/thenoetrevino/kanbanpro/internal/dnd"
	"github.com/thenoetrevino/kanbanpro/internal/events"
	"github.com/thenoetrevino/kanbanpro/internal/models"
	boardservice "github.com/thenoetrevino/kanbanpro/internal/services/board"
	"github.com/thenoetrevino/kanbanpro/internal/tui/components"
	"github.com/thenoetrevino/kanbanpro/internal/tui/state"
)

// eventBuffer is the subscription buffer for board events
const eventBuffer = 16

const loadFallbackMessage = "Stored board could not be read, starting from an empty board"

// Model represents the application state for the TUI
type Model struct {
	ctx      context.Context
	Service  boardservice.Service
	DragDrop *dnd.Controller
	Config   *config.Config

	// Board as last read from the service
	board   models.Board
	columns []models.ColumnKey

	// Drag in progress, nil when nothing is grabbed
	grabbed *dnd.Payload

	events      <-chan events.Event
	unsubscribe func()

	UiState           *state.UIState
	NotificationState *state.NotificationState
	FormState         *state.FormState
}

// New creates the TUI model over a running application
func New(ctx context.Context, a *app.App, cfg *config.Config) Model {
	components.InitStyles(cfg.ColorScheme)

	ch, unsubscribe := a.Events().Subscribe(eventBuffer)

	m := Model{
		ctx:               ctx,
		Service:           a.BoardService,
		DragDrop:          a.DragDrop,
		Config:            cfg,
		board:             a.BoardService.Board(),
		columns:           models.ColumnKeys(),
		events:            ch,
		unsubscribe:       unsubscribe,
		UiState:           state.NewUIState(),
		NotificationState: state.NewNotificationState(),
		FormState:         state.NewFormState(),
	}

	if a.BoardService.Metrics().LoadFallbacks > 0 {
		m.NotificationState.Add(state.LevelWarning, loadFallbackMessage)
	}
	return m
}

// Init initializes the Bubble Tea application
// Required by tea.Model interface
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{waitForEvent(m.events)}
	for _, n := range m.NotificationState.All() {
		cmds = append(cmds, dismissAfter(n.ID))
	}
	return tea.Batch(cmds...)
}

// Close stops listening for board events
func (m Model) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
	}
}

// refreshBoard re-reads the board and keeps the cursor inside it
func (m *Model) refreshBoard() {
	m.board = m.Service.Board()
	m.UiState.ClampSelection(len(m.columns), len(m.getCurrentTasks()))
}

// getCurrentColumn returns the column under the cursor
func (m Model) getCurrentColumn() models.Column {
	key := m.columns[m.UiState.SelectedColumn()]
	col, _ := m.board.Column(key)
	col.Key = key
	return col
}

// getCurrentTasks returns the tasks of the currently selected column
func (m Model) getCurrentTasks() []models.Task {
	return m.getCurrentColumn().Tasks
}

// getCurrentTask returns the currently selected task
// Returns false if the current column has no tasks
func (m Model) getCurrentTask() (models.Task, bool) {
	tasks := m.getCurrentTasks()
	idx := m.UiState.SelectedTask()
	if idx < 0 || idx >= len(tasks) {
		return models.Task{}, false
	}
	return tasks[idx], true
}
