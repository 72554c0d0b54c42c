package testutil

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/thenoetrevino/kanbanpro/internal/app"
	engine "github.com/thenoetrevino/kanbanpro/internal/board"
	"github.com/thenoetrevino/kanbanpro/internal/database"
	"github.com/thenoetrevino/kanbanpro/internal/models"
	boardservice "github.com/thenoetrevino/kanbanpro/internal/services/board"
)

// QuietLogger discards everything
func QuietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// SequentialIDs yields task-1, task-2, ... so tests can predict ids
func SequentialIDs() engine.IDGenerator {
	n := 0
	return engine.IDGeneratorFunc(func() string {
		n++
		return fmt.Sprintf("task-%d", n)
	})
}

// NewTestApp creates an app over an in-memory store with predictable ids.
// The app is closed when the test ends.
func NewTestApp(t *testing.T) *app.App {
	t.Helper()

	a := app.NewWithStore(context.Background(), database.NewMemoryStore(), "kanban-columns",
		app.WithLogger(QuietLogger()),
		app.WithIDGenerator(SequentialIDs()))
	t.Cleanup(func() { _ = a.Close() })
	return a
}

// AddTasks adds each content to column in order and returns the created tasks
func AddTasks(t *testing.T, a *app.App, column models.ColumnKey, contents ...string) []models.Task {
	t.Helper()

	tasks := make([]models.Task, 0, len(contents))
	for _, content := range contents {
		task, err := a.BoardService.AddTask(context.Background(), boardservice.AddTaskRequest{
			Column:  column,
			Content: content,
		})
		if err != nil {
			t.Fatalf("Failed to add task %q: %v", content, err)
		}
		tasks = append(tasks, *task)
	}
	return tasks
}
