package models

import "errors"

// Board validation errors
var (
	// ErrUnknownColumn indicates a key outside the fixed column set
	ErrUnknownColumn = errors.New("unknown column")

	// ErrMissingColumn indicates a board without one of the fixed columns
	ErrMissingColumn = errors.New("board is missing a column")

	// ErrDuplicateTaskID indicates a task id present more than once on the board
	ErrDuplicateTaskID = errors.New("duplicate task id")

	// ErrEmptyTaskID indicates a task without an id
	ErrEmptyTaskID = errors.New("task id cannot be empty")

	// ErrEmptyContent indicates a task whose trimmed content is empty
	ErrEmptyContent = errors.New("task content cannot be empty")
)
