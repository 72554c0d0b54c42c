package board

import "errors"

// Board mutation errors. A rejected mutation leaves the board untouched.
var (
	ErrEmptyContent  = errors.New("task content cannot be empty")
	ErrUnknownColumn = errors.New("unknown column")
	ErrEmptyTaskID   = errors.New("task ID cannot be empty")
	ErrTaskNotFound  = errors.New("task not found in source column")
	ErrIDExhausted   = errors.New("could not generate a unique task ID")
)
