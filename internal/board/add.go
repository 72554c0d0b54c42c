// Package board implements the move engine: pure functions that create tasks
// and relocate them between columns. Every function takes a board and returns
// a new one; the input board is never modified.
package board

import (
	"github.com/thenoetrevino/kanbanpro/internal/models"
)

// maxIDAttempts bounds how often AddTask asks for a fresh id after a collision
const maxIDAttempts = 8

// AddTask appends a new task with the trimmed content to the end of the column.
//
// The returned bool is false, and b is returned unchanged, when the content is
// blank, the column key is unknown, or no unused id could be generated.
func AddTask(b models.Board, key models.ColumnKey, content string, ids IDGenerator) (models.Board, models.Task, bool) {
	content = models.NormalizeContent(content)
	if content == "" {
		return b, models.Task{}, false
	}

	col, ok := b.Column(key)
	if !ok {
		return b, models.Task{}, false
	}

	id, ok := uniqueID(b, ids)
	if !ok {
		return b, models.Task{}, false
	}

	task := models.Task{ID: id, Content: content}

	tasks := make([]models.Task, len(col.Tasks), len(col.Tasks)+1)
	copy(tasks, col.Tasks)
	col.Tasks = append(tasks, task)

	return b.With(col), task, true
}

// uniqueID draws ids until one is not already on the board
func uniqueID(b models.Board, ids IDGenerator) (string, bool) {
	if ids == nil {
		ids = UUIDGenerator{}
	}
	for range maxIDAttempts {
		id := ids.NewID()
		if id != "" && !b.HasTask(id) {
			return id, true
		}
	}
	return "", false
}
