package database

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when no value is stored under the key
var ErrNotFound = errors.New("key not found")

// KVStore is a durable key-value store holding opaque blobs.
// Put overwrites any previous value stored under the key.
type KVStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Close() error
}

// Compile-time verification that every backend implements KVStore
var (
	_ KVStore = (*SQLiteStore)(nil)
	_ KVStore = (*RedisStore)(nil)
	_ KVStore = (*MemoryStore)(nil)
)
