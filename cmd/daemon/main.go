// Command daemon serves the board API without a terminal, for running under
// a service manager such as systemd.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/thenoetrevino/kanbanpro/internal/app"
	"github.com/thenoetrevino/kanbanpro/internal/config"
	"github.com/thenoetrevino/kanbanpro/internal/logging"
	"github.com/thenoetrevino/kanbanpro/internal/server"
)

func main() {
	// Set up signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
		syscall.SIGQUIT,
	)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if err := logging.Init(cfg.Storage.DataDir); err != nil {
		slog.Error("failed to initialize logging", "error", err)
		os.Exit(1)
	}

	application, err := app.New(ctx, cfg)
	if err != nil {
		slog.Error("failed to open storage", "backend", cfg.Storage.Backend, "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := application.Close(); err != nil {
			slog.Error("failed to close storage", "error", err)
		}
	}()

	srv := server.New(application.BoardService, cfg.Server.ListenAddr, slog.Default())

	slog.Info("kanbanpro daemon starting",
		"listen_addr", cfg.Server.ListenAddr,
		"backend", cfg.Storage.Backend,
		"pid", os.Getpid())

	// Start the server (blocks until shutdown)
	if err := srv.Start(ctx); err != nil {
		slog.Error("daemon error", "error", err)
		os.Exit(1)
	}

	slog.Info("kanbanpro daemon shutting down gracefully")
}
