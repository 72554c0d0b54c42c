package board

import "github.com/google/uuid"

// IDGenerator produces candidate task ids
type IDGenerator interface {
	NewID() string
}

// IDGeneratorFunc adapts a function to IDGenerator
type IDGeneratorFunc func() string

// NewID calls f
func (f IDGeneratorFunc) NewID() string {
	return f()
}

// UUIDGenerator generates ids of the form "task-<uuid>"
type UUIDGenerator struct{}

// NewID returns a fresh random task id
func (UUIDGenerator) NewID() string {
	return "task-" + uuid.NewString()
}
