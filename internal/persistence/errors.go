package persistence

import "errors"

// Snapshot decoding errors
var (
	// ErrMalformedSnapshot indicates stored data that is not JSON
	ErrMalformedSnapshot = errors.New("snapshot is not valid JSON")

	// ErrInvalidSnapshot indicates JSON that does not describe a board
	ErrInvalidSnapshot = errors.New("snapshot does not match the board format")
)
