// Package dnd maps drag-and-drop gestures onto board moves. The gesture
// recognizer itself (pointer tracking, HTML5 events, key presses) lives in the
// presentation layer; it only has to report drag start and drop.
package dnd

import (
	"context"
	"errors"
	"sync"

	"github.com/thenoetrevino/kanbanpro/internal/models"
)

// ErrNoActiveDrag is returned by OnDrop when the payload does not belong to
// the drag in progress, for example a second drop of the same gesture.
var ErrNoActiveDrag = errors.New("no matching drag in progress")

// Payload is what a drag carries from its source to the drop target
type Payload struct {
	TaskID       string           `json:"taskId"`
	SourceColumn models.ColumnKey `json:"sourceColumnKey"`
	SourceIndex  int              `json:"sourceIndex"`
}

// DropFunc performs the move for a completed drop and reports whether the
// board changed
type DropFunc func(ctx context.Context, p Payload, dest models.ColumnKey, destIndex int) (bool, error)

// DragDrop is the capability a presentation layer drives
type DragDrop interface {
	OnDragStart(task models.Task, column models.ColumnKey, index int) Payload
	OnDrop(ctx context.Context, p Payload, dest models.ColumnKey, destIndex int) (bool, error)
}

// Compile-time verification that *Controller implements DragDrop
var _ DragDrop = (*Controller)(nil)

// Controller tracks the single drag in progress and forwards each completed
// drop to its DropFunc exactly once.
type Controller struct {
	mu     sync.Mutex
	active *Payload
	drop   DropFunc
}

// NewController creates a controller that moves tasks with drop
func NewController(drop DropFunc) *Controller {
	return &Controller{drop: drop}
}

// OnDragStart begins a drag, replacing any drag that was never dropped
func (c *Controller) OnDragStart(task models.Task, column models.ColumnKey, index int) Payload {
	p := Payload{TaskID: task.ID, SourceColumn: column, SourceIndex: index}

	c.mu.Lock()
	c.active = &p
	c.mu.Unlock()

	return p
}

// OnDrop completes the drag described by p. The drag is consumed before the
// move runs, so a repeated drop of the same payload is rejected.
func (c *Controller) OnDrop(ctx context.Context, p Payload, dest models.ColumnKey, destIndex int) (bool, error) {
	c.mu.Lock()
	if c.active == nil || *c.active != p {
		c.mu.Unlock()
		return false, ErrNoActiveDrag
	}
	c.active = nil
	c.mu.Unlock()

	return c.drop(ctx, p, dest, destIndex)
}

// Cancel abandons the drag in progress, if any
func (c *Controller) Cancel() {
	c.mu.Lock()
	c.active = nil
	c.mu.Unlock()
}

// Active returns the drag in progress
func (c *Controller) Active() (Payload, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.active == nil {
		return Payload{}, false
	}
	return *c.active, true
}
