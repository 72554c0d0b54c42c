package models

import "fmt"

// Board maps every column key to its column. A valid board holds exactly the
// fixed key set and every task id appears in exactly one column.
//
// Boards are treated as values: code that changes a board builds a new one
// instead of editing the columns of an existing one.
type Board map[ColumnKey]Column

// DefaultBoard returns the fixed empty board used when nothing is persisted
func DefaultBoard() Board {
	b := make(Board, len(columnOrder))
	for _, key := range columnOrder {
		b[key] = NewColumn(key)
	}
	return b
}

// Column returns the column stored under key
func (b Board) Column(key ColumnKey) (Column, bool) {
	col, ok := b[key]
	if ok {
		col.Key = key
	}
	return col, ok
}

// Columns returns the columns in board order
func (b Board) Columns() []Column {
	cols := make([]Column, 0, len(columnOrder))
	for _, key := range columnOrder {
		if col, ok := b.Column(key); ok {
			cols = append(cols, col)
		}
	}
	return cols
}

// TaskCount returns the number of tasks across all columns
func (b Board) TaskCount() int {
	n := 0
	for _, col := range b {
		n += len(col.Tasks)
	}
	return n
}

// Find locates a task anywhere on the board
func (b Board) Find(taskID string) (ColumnKey, int, bool) {
	for _, key := range columnOrder {
		if idx := b[key].IndexOf(taskID); idx >= 0 {
			return key, idx, true
		}
	}
	return "", -1, false
}

// HasTask reports whether any column holds a task with the given id
func (b Board) HasTask(taskID string) bool {
	_, _, ok := b.Find(taskID)
	return ok
}

// Clone returns a deep copy of b
func (b Board) Clone() Board {
	out := make(Board, len(b))
	for key, col := range b {
		out[key] = col.clone()
	}
	return out
}

// With returns a copy of b with the given columns replaced.
// Columns not passed in are shared with b, which is safe because columns are
// never edited in place.
func (b Board) With(cols ...Column) Board {
	out := make(Board, len(b))
	for key, col := range b {
		out[key] = col
	}
	for _, col := range cols {
		out[col.Key] = col
	}
	return out
}

// Equal reports whether two boards hold the same columns, names and task order.
// A nil task list and an empty one are equal.
func (b Board) Equal(other Board) bool {
	if len(b) != len(other) {
		return false
	}
	for key, col := range b {
		o, ok := other[key]
		if !ok || col.Name != o.Name || len(col.Tasks) != len(o.Tasks) {
			return false
		}
		for i := range col.Tasks {
			if col.Tasks[i] != o.Tasks[i] {
				return false
			}
		}
	}
	return true
}

// Validate checks the board invariants: exact key set, non-empty ids and
// content, and board-wide id uniqueness.
func (b Board) Validate() error {
	for key := range b {
		if !key.Valid() {
			return fmt.Errorf("%w: %q", ErrUnknownColumn, key)
		}
	}

	seen := make(map[string]ColumnKey)
	for _, key := range columnOrder {
		col, ok := b[key]
		if !ok {
			return fmt.Errorf("%w: %s", ErrMissingColumn, key)
		}
		for _, task := range col.Tasks {
			if task.ID == "" {
				return fmt.Errorf("%w (column %s)", ErrEmptyTaskID, key)
			}
			if NormalizeContent(task.Content) == "" {
				return fmt.Errorf("%w (task %s)", ErrEmptyContent, task.ID)
			}
			if prev, dup := seen[task.ID]; dup {
				return fmt.Errorf("%w: %s in %s and %s", ErrDuplicateTaskID, task.ID, prev, key)
			}
			seen[task.ID] = key
		}
	}
	return nil
}
