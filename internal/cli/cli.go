package cli

import (
	"context"
	"fmt"

	"github.com/thenoetrevino/kanbanpro/internal/app"
	"github.com/thenoetrevino/kanbanpro/internal/cli/styles"
	"github.com/thenoetrevino/kanbanpro/internal/config"
	"github.com/thenoetrevino/kanbanpro/internal/logging"
)

// CLI represents the CLI application context
type CLI struct {
	App    *app.App // Application container with services
	Config *config.Config
	ctx    context.Context
	owned  bool
}

// appKey is the context key an injected *app.App is stored under
type appKey struct{}

// WithApp returns a context carrying a, which GetCLIFromContext will use
// instead of opening the configured store
func WithApp(ctx context.Context, a *app.App) context.Context {
	return context.WithValue(ctx, appKey{}, a)
}

// NewCLI loads configuration, starts logging and opens the configured store
func NewCLI(ctx context.Context) (*CLI, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	styles.Init(cfg.ColorScheme)

	if err := logging.Init(cfg.Storage.DataDir); err != nil {
		return nil, fmt.Errorf("failed to initialize logging: %w", err)
	}

	application, err := app.New(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	return &CLI{
		App:    application,
		Config: cfg,
		ctx:    ctx,
		owned:  true,
	}, nil
}

// GetCLIFromContext returns a CLI for the app injected with WithApp, or a
// freshly initialized one
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if a, ok := ctx.Value(appKey{}).(*app.App); ok && a != nil {
		return &CLI{App: a, Config: config.Default(), ctx: ctx}, nil
	}
	return NewCLI(ctx)
}

// Close cleans up CLI resources. An injected app is left open for its owner.
func (c *CLI) Close() error {
	if !c.owned {
		return nil
	}
	return c.App.Close()
}

// Context returns the context the CLI was created with
func (c *CLI) Context() context.Context {
	return c.ctx
}
