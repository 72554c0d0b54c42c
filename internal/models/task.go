package models

import "strings"

// Task represents a single card on the kanban board.
// ID is unique across the whole board, not just within its column.
type Task struct {
	ID      string `json:"id"`
	Content string `json:"content"`
}

// NormalizeContent trims user input before it becomes task content.
// An empty result means the input must be rejected.
func NormalizeContent(content string) string {
	return strings.TrimSpace(content)
}
