package events

import (
	"time"

	"github.com/thenoetrevino/kanbanpro/internal/models"
)

// EventType indicates what kind of change occurred
type EventType string

const (
	// EventTaskAdded acknowledges a successful task creation; fired exactly once per add
	EventTaskAdded EventType = "task_added"
	// EventTaskMoved reports a relocation so views can redraw; never shown to the user
	EventTaskMoved EventType = "task_moved"
	// EventSaveFailed reports that a mutation could not be persisted
	EventSaveFailed EventType = "save_failed"
)

// Event represents a board change notification
type Event struct {
	Type       EventType
	Column     models.ColumnKey // Column the task ended up in
	Task       models.Task
	Err        error     // Set for EventSaveFailed
	Timestamp  time.Time // When the event occurred
	SequenceID int64     // Monotonically increasing sequence number for ordering
}
