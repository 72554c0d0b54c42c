package dnd

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/kanbanpro/internal/models"
)

type recordedDrop struct {
	payload   Payload
	dest      models.ColumnKey
	destIndex int
}

func recordingController() (*Controller, *[]recordedDrop) {
	var drops []recordedDrop
	c := NewController(func(_ context.Context, p Payload, dest models.ColumnKey, destIndex int) (bool, error) {
		drops = append(drops, recordedDrop{p, dest, destIndex})
		return true, nil
	})
	return c, &drops
}

func TestController_DragStartPayload(t *testing.T) {
	c, _ := recordingController()

	p := c.OnDragStart(models.Task{ID: "task-1", Content: "x"}, models.ColumnTodo, 2)
	assert.Equal(t, Payload{TaskID: "task-1", SourceColumn: models.ColumnTodo, SourceIndex: 2}, p)

	active, ok := c.Active()
	require.True(t, ok)
	assert.Equal(t, p, active)
}

func TestController_DropForwardsExactlyOnce(t *testing.T) {
	c, drops := recordingController()
	ctx := context.Background()

	p := c.OnDragStart(models.Task{ID: "task-1"}, models.ColumnTodo, 0)

	moved, err := c.OnDrop(ctx, p, models.ColumnComplete, 3)
	require.NoError(t, err)
	assert.True(t, moved)

	_, err = c.OnDrop(ctx, p, models.ColumnComplete, 3)
	assert.True(t, errors.Is(err, ErrNoActiveDrag))

	require.Len(t, *drops, 1)
	assert.Equal(t, recordedDrop{p, models.ColumnComplete, 3}, (*drops)[0])

	_, ok := c.Active()
	assert.False(t, ok)
}

func TestController_DropWithoutDrag(t *testing.T) {
	c, drops := recordingController()

	_, err := c.OnDrop(context.Background(), Payload{TaskID: "task-1"}, models.ColumnComplete, 0)
	assert.True(t, errors.Is(err, ErrNoActiveDrag))
	assert.Empty(t, *drops)
}

func TestController_StalePayloadRejected(t *testing.T) {
	c, drops := recordingController()

	stale := c.OnDragStart(models.Task{ID: "task-1"}, models.ColumnTodo, 0)
	current := c.OnDragStart(models.Task{ID: "task-2"}, models.ColumnInProgress, 1)

	_, err := c.OnDrop(context.Background(), stale, models.ColumnComplete, 0)
	assert.True(t, errors.Is(err, ErrNoActiveDrag))

	_, err = c.OnDrop(context.Background(), current, models.ColumnComplete, 0)
	require.NoError(t, err)
	require.Len(t, *drops, 1)
	assert.Equal(t, "task-2", (*drops)[0].payload.TaskID)
}

func TestController_Cancel(t *testing.T) {
	c, drops := recordingController()

	p := c.OnDragStart(models.Task{ID: "task-1"}, models.ColumnTodo, 0)
	c.Cancel()

	_, err := c.OnDrop(context.Background(), p, models.ColumnComplete, 0)
	assert.True(t, errors.Is(err, ErrNoActiveDrag))
	assert.Empty(t, *drops)
}
