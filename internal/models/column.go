package models

import (
	"fmt"
	"strings"
)

// ColumnKey identifies one of the fixed workflow stages of the board.
type ColumnKey string

const (
	ColumnTodo       ColumnKey = "todo"
	ColumnInProgress ColumnKey = "inprogress"
	ColumnComplete   ColumnKey = "complete"
)

// columnOrder is the left-to-right order of the board
var columnOrder = [...]ColumnKey{ColumnTodo, ColumnInProgress, ColumnComplete}

// Display holds the presentation attributes of a column
type Display struct {
	Name    string // Label stored with the column, e.g. "InProgress"
	Heading string // Title rendered above the column, e.g. "Inprogress"
	Color   string // Hex background color of the column card
}

// displays is the complete mapping from key to presentation.
// Every ColumnKey constant has exactly one entry.
var displays = map[ColumnKey]Display{
	ColumnTodo:       {Name: "ToDo", Heading: "Todo", Color: "#FCA5A5"},
	ColumnInProgress: {Name: "InProgress", Heading: "Inprogress", Color: "#FDE047"},
	ColumnComplete:   {Name: "Complete", Heading: "Complete", Color: "#86EFAC"},
}

// ColumnKeys returns every column key in board order
func ColumnKeys() []ColumnKey {
	keys := make([]ColumnKey, len(columnOrder))
	copy(keys, columnOrder[:])
	return keys
}

// ParseColumnKey resolves user input to a column key.
// Matching is case-insensitive and accepts either the key or the display name,
// ignoring spaces, so "In Progress", "inprogress" and "InProgress" all match.
func ParseColumnKey(s string) (ColumnKey, error) {
	normalized := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), " ", ""))
	for _, key := range columnOrder {
		if normalized == string(key) || normalized == strings.ToLower(displays[key].Name) {
			return key, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownColumn, s)
}

// Valid reports whether k is one of the fixed column keys
func (k ColumnKey) Valid() bool {
	_, ok := displays[k]
	return ok
}

// Display returns the presentation attributes for k.
// Callers should only pass valid keys; there is no fallback entry.
func (k ColumnKey) Display() Display {
	return displays[k]
}

// Name returns the display label for k
func (k ColumnKey) Name() string {
	return displays[k].Name
}

// Index returns the position of k on the board, or -1 for unknown keys
func (k ColumnKey) Index() int {
	for i, key := range columnOrder {
		if key == k {
			return i
		}
	}
	return -1
}

func (k ColumnKey) String() string {
	return string(k)
}

// Column is a named, ordered collection of tasks.
// Position in Tasks is meaningful: it is both creation order and drop order.
type Column struct {
	Key   ColumnKey `json:"-"`
	Name  string    `json:"name"`
	Tasks []Task    `json:"tasks"`
}

// NewColumn returns an empty column for key with its display name
func NewColumn(key ColumnKey) Column {
	return Column{
		Key:   key,
		Name:  key.Name(),
		Tasks: []Task{},
	}
}

// IndexOf returns the position of the task with the given id, or -1
func (c Column) IndexOf(taskID string) int {
	for i, task := range c.Tasks {
		if task.ID == taskID {
			return i
		}
	}
	return -1
}

// Len returns the number of tasks in the column
func (c Column) Len() int {
	return len(c.Tasks)
}

// clone returns a copy of c that shares no task storage with it
func (c Column) clone() Column {
	tasks := make([]Task, len(c.Tasks))
	copy(tasks, c.Tasks)
	c.Tasks = tasks
	return c
}
