// Package board is the state container for the kanban board. It owns the
// current board, applies mutations one at a time through the move engine,
// persists after every change and announces changes to subscribers.
package board

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sync"

	engine "github.com/thenoetrevino/kanbanpro/internal/board"
	"github.com/thenoetrevino/kanbanpro/internal/dnd"
	"github.com/thenoetrevino/kanbanpro/internal/events"
	"github.com/thenoetrevino/kanbanpro/internal/metrics"
	"github.com/thenoetrevino/kanbanpro/internal/models"
	"github.com/thenoetrevino/kanbanpro/internal/persistence"
)

// Service defines all board operations available to presentation layers
type Service interface {
	// Read operations
	Board() models.Board
	Metrics() metrics.Snapshot

	// Write operations
	AddTask(ctx context.Context, req AddTaskRequest) (*models.Task, error)
	MoveTask(ctx context.Context, req MoveTaskRequest) (bool, error)
}

// AddTaskRequest encapsulates all data needed to create a task
type AddTaskRequest struct {
	Column  models.ColumnKey
	Content string
}

// EndOfColumn as a DestIndex drops the task after the last task of the
// destination column as it stands when the move is applied
const EndOfColumn = math.MaxInt

// MoveTaskRequest describes a completed drop
type MoveTaskRequest struct {
	TaskID    string
	Source    models.ColumnKey
	Dest      models.ColumnKey
	DestIndex int // clamped into the destination column
}

// Option is a functional option for configuring the service
type Option func(*service)

// WithIDGenerator replaces the UUID-based task id source
func WithIDGenerator(ids engine.IDGenerator) Option {
	return func(s *service) {
		s.ids = ids
	}
}

// WithLogger sets the service logger
func WithLogger(logger *slog.Logger) Option {
	return func(s *service) {
		s.logger = logger
	}
}

// service implements Service interface
type service struct {
	mu          sync.Mutex
	board       models.Board
	adapter     *persistence.Adapter
	eventClient events.EventPublisher
	metrics     *metrics.Metrics
	ids         engine.IDGenerator
	logger      *slog.Logger
}

// NewService loads the stored board through adapter and returns a service
// holding it. eventClient may be nil.
func NewService(ctx context.Context, adapter *persistence.Adapter, eventClient events.EventPublisher, opts ...Option) Service {
	s := &service{
		adapter:     adapter,
		eventClient: eventClient,
		metrics:     adapter.Metrics(),
		ids:         engine.UUIDGenerator{},
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.board = adapter.Load(ctx)
	return s
}

// Board returns a copy of the current board
func (s *service) Board() models.Board {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.board.Clone()
}

// Metrics returns the current counters
func (s *service) Metrics() metrics.Snapshot {
	return s.metrics.GetSnapshot()
}

// AddTask appends a task to the end of req.Column. On success the board is
// persisted and exactly one task added event is published; a failed save is
// reported through a save failed event, never through the returned error.
// Events are published before the lock is released, so their sequence ids
// follow mutation order.
func (s *service) AddTask(ctx context.Context, req AddTaskRequest) (*models.Task, error) {
	if err := s.validateAddTask(req); err != nil {
		s.metrics.IncRejected()
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next, task, ok := engine.AddTask(s.board, req.Column, req.Content, s.ids)
	if !ok {
		s.metrics.IncRejected()
		return nil, ErrIDExhausted
	}
	s.board = next
	saveErr := s.adapter.Save(ctx, next)

	s.metrics.IncTasksAdded()
	s.logger.Debug("task added", "column", req.Column, "task_id", task.ID)

	s.publish(events.Event{Type: events.EventTaskAdded, Column: req.Column, Task: task})
	s.publishSaveFailure(saveErr)

	return &task, nil
}

// MoveTask relocates a task between columns. It reports false without error
// when source and destination are the same column.
func (s *service) MoveTask(ctx context.Context, req MoveTaskRequest) (bool, error) {
	if err := s.validateMoveTask(req); err != nil {
		s.metrics.IncRejected()
		return false, err
	}
	if req.Source == req.Dest {
		return false, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	src, _ := s.board.Column(req.Source)
	index := src.IndexOf(req.TaskID)
	if index < 0 {
		s.metrics.IncRejected()
		return false, fmt.Errorf("%w: %s in %s", ErrTaskNotFound, req.TaskID, req.Source)
	}
	task := src.Tasks[index]

	next, moved := engine.MoveTask(s.board, req.Source, req.Dest, req.TaskID, req.DestIndex)
	if !moved {
		return false, nil
	}
	s.board = next
	saveErr := s.adapter.Save(ctx, next)

	s.metrics.IncTasksMoved()
	s.logger.Debug("task moved",
		"task_id", req.TaskID,
		"from", req.Source,
		"to", req.Dest,
		"index", req.DestIndex)

	s.publish(events.Event{Type: events.EventTaskMoved, Column: req.Dest, Task: task})
	s.publishSaveFailure(saveErr)

	return true, nil
}

func (s *service) validateAddTask(req AddTaskRequest) error {
	if !req.Column.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownColumn, req.Column)
	}
	if models.NormalizeContent(req.Content) == "" {
		return ErrEmptyContent
	}
	return nil
}

func (s *service) validateMoveTask(req MoveTaskRequest) error {
	if req.TaskID == "" {
		return ErrEmptyTaskID
	}
	if !req.Source.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownColumn, req.Source)
	}
	if !req.Dest.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownColumn, req.Dest)
	}
	return nil
}

// publish sends an event if an event client exists
func (s *service) publish(event events.Event) {
	if s.eventClient == nil {
		return
	}
	s.eventClient.Publish(event)
}

func (s *service) publishSaveFailure(err error) {
	if err == nil {
		return
	}
	s.publish(events.Event{Type: events.EventSaveFailed, Err: err})
}

// DropHandler adapts a Service to the drag-and-drop controller
func DropHandler(s Service) dnd.DropFunc {
	return func(ctx context.Context, p dnd.Payload, dest models.ColumnKey, destIndex int) (bool, error) {
		return s.MoveTask(ctx, MoveTaskRequest{
			TaskID:    p.TaskID,
			Source:    p.SourceColumn,
			Dest:      dest,
			DestIndex: destIndex,
		})
	}
}
