package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/kanbanpro/internal/config"
	"github.com/thenoetrevino/kanbanpro/internal/database"
	"github.com/thenoetrevino/kanbanpro/internal/dnd"
	"github.com/thenoetrevino/kanbanpro/internal/events"
	"github.com/thenoetrevino/kanbanpro/internal/persistence"
	boardservice "github.com/thenoetrevino/kanbanpro/internal/services/board"
)

// App holds all application services and provides dependency injection.
// This is the main application container that manages service lifecycles.
type App struct {
	store database.KVStore

	// Event system for live updates
	eventClient events.EventPublisher
	ownsEvents  bool

	// Service layer
	BoardService boardservice.Service
	DragDrop     *dnd.Controller
}

// New opens the store selected by cfg and builds the application on it
func New(ctx context.Context, cfg *config.Config, opts ...Option) (*App, error) {
	store, err := OpenStore(ctx, cfg.Storage)
	if err != nil {
		return nil, err
	}
	return NewWithStore(ctx, store, cfg.Storage.Key, opts...), nil
}

// NewWithStore builds the application over an already opened store. The App
// takes ownership of store and closes it in Close.
func NewWithStore(ctx context.Context, store database.KVStore, key string, opts ...Option) *App {
	cfg := &appConfig{logger: slog.Default()}
	for _, opt := range opts {
		opt(cfg)
	}

	a := &App{
		store:       store,
		eventClient: cfg.eventClient,
	}
	if a.eventClient == nil {
		a.eventClient = events.NewBus()
		a.ownsEvents = true
	}

	adapter := persistence.NewAdapter(store,
		persistence.WithKey(key),
		persistence.WithLogger(cfg.logger))

	serviceOpts := []boardservice.Option{boardservice.WithLogger(cfg.logger)}
	if cfg.ids != nil {
		serviceOpts = append(serviceOpts, boardservice.WithIDGenerator(cfg.ids))
	}

	a.BoardService = boardservice.NewService(ctx, adapter, a.eventClient, serviceOpts...)
	a.DragDrop = dnd.NewController(boardservice.DropHandler(a.BoardService))

	return a
}

// OpenStore opens the key-value store for the configured backend
func OpenStore(ctx context.Context, cfg config.StorageConfig) (database.KVStore, error) {
	switch cfg.Backend {
	case config.BackendSQLite:
		return database.OpenSQLiteStore(ctx, cfg.SQLitePath())
	case config.BackendRedis:
		return database.OpenRedisStore(ctx, cfg.RedisAddr, cfg.RedisDB)
	case config.BackendMemory:
		return database.NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("%w: %q", config.ErrUnknownBackend, cfg.Backend)
	}
}

// Events returns the publisher board changes are announced on
func (a *App) Events() events.EventPublisher {
	return a.eventClient
}

// Close releases the store and, when the App created it, the event bus
func (a *App) Close() error {
	var errs []error
	if a.ownsEvents {
		errs = append(errs, a.eventClient.Close())
	}
	errs = append(errs, a.store.Close())
	return errors.Join(errs...)
}
