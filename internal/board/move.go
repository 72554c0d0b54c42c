package board

import (
	"github.com/thenoetrevino/kanbanpro/internal/models"
)

// MoveTask relocates the task with taskID from the source column to the
// destination column, inserting it at destIndex clamped to [0, len(dest)].
//
// The move is a no-op (b is returned unchanged, false) when source and
// destination are the same column, when either key is unknown, or when the
// task is not in the source column. Reordering within a column is not
// supported.
func MoveTask(b models.Board, source, dest models.ColumnKey, taskID string, destIndex int) (models.Board, bool) {
	if source == dest {
		return b, false
	}

	src, ok := b.Column(source)
	if !ok {
		return b, false
	}
	dst, ok := b.Column(dest)
	if !ok {
		return b, false
	}

	idx := src.IndexOf(taskID)
	if idx < 0 {
		return b, false
	}
	task := src.Tasks[idx]

	src.Tasks = remove(src.Tasks, idx)
	dst.Tasks = insert(dst.Tasks, Clamp(destIndex, len(dst.Tasks)), task)

	return b.With(src, dst), true
}

// Clamp limits a drop index to the valid insertion range [0, length]
func Clamp(index, length int) int {
	return min(max(index, 0), length)
}

// remove returns a new slice without the element at i
func remove(tasks []models.Task, i int) []models.Task {
	out := make([]models.Task, 0, len(tasks)-1)
	out = append(out, tasks[:i]...)
	return append(out, tasks[i+1:]...)
}

// insert returns a new slice with task placed at i
func insert(tasks []models.Task, i int, task models.Task) []models.Task {
	out := make([]models.Task, 0, len(tasks)+1)
	out = append(out, tasks[:i]...)
	out = append(out, task)
	return append(out, tasks[i:]...)
}
