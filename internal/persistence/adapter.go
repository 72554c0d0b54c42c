// Package persistence stores and restores the board as a single JSON snapshot
// under one well-known key of a database.KVStore.
package persistence

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/kanbanpro/internal/database"
	"github.com/thenoetrevino/kanbanpro/internal/metrics"
	"github.com/thenoetrevino/kanbanpro/internal/models"
)

// DefaultKey is the storage key the snapshot lives under
const DefaultKey = "kanban-columns"

// Adapter is the boundary between the board and durable storage
type Adapter struct {
	store   database.KVStore
	key     string
	metrics *metrics.Metrics
	logger  *slog.Logger
}

// Option is a functional option for configuring an Adapter
type Option func(*Adapter)

// WithKey overrides the storage key
func WithKey(key string) Option {
	return func(a *Adapter) {
		if key != "" {
			a.key = key
		}
	}
}

// WithMetrics records loads and saves on m
func WithMetrics(m *metrics.Metrics) Option {
	return func(a *Adapter) {
		a.metrics = m
	}
}

// WithLogger sets the logger for fallback and failure reports
func WithLogger(logger *slog.Logger) Option {
	return func(a *Adapter) {
		a.logger = logger
	}
}

// NewAdapter creates an adapter over store
func NewAdapter(store database.KVStore, opts ...Option) *Adapter {
	a := &Adapter{
		store: store,
		key:   DefaultKey,
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.metrics == nil {
		a.metrics = metrics.New()
	}
	if a.logger == nil {
		a.logger = slog.Default()
	}
	return a
}

// Key returns the storage key in use
func (a *Adapter) Key() string {
	return a.key
}

// Load reads the stored board. It never fails: a missing, unreadable or
// malformed snapshot yields the default board.
func (a *Adapter) Load(ctx context.Context) models.Board {
	a.metrics.IncLoads()

	data, err := a.store.Get(ctx, a.key)
	if errors.Is(err, database.ErrNotFound) {
		a.logger.Debug("no stored board, starting empty", "key", a.key)
		return models.DefaultBoard()
	}
	if err != nil {
		a.metrics.IncLoadFallbacks()
		a.logger.Warn("failed to read stored board, using default", "key", a.key, "error", err)
		return models.DefaultBoard()
	}

	b, err := Decode(data)
	if err != nil {
		a.metrics.IncLoadFallbacks()
		a.logger.Warn("stored board is malformed, using default", "key", a.key, "error", err)
		return models.DefaultBoard()
	}

	a.logger.Debug("loaded board", "key", a.key, "tasks", b.TaskCount())
	return b
}

// Save overwrites the stored snapshot with b. A returned error means only the
// durability step failed; it has already been logged and counted.
func (a *Adapter) Save(ctx context.Context, b models.Board) error {
	data, err := Encode(b)
	if err == nil {
		err = a.store.Put(ctx, a.key, data)
	}
	if err != nil {
		a.metrics.IncSaveFailures()
		a.logger.Error("failed to save board", "key", a.key, "error", err)
		return fmt.Errorf("failed to save board: %w", err)
	}

	a.metrics.IncSaves()
	return nil
}

// Metrics returns the counters the adapter records on
func (a *Adapter) Metrics() *metrics.Metrics {
	return a.metrics
}
