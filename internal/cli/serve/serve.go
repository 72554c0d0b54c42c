package serve

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/kanbanpro/internal/cli"
	"github.com/thenoetrevino/kanbanpro/internal/server"
)

// ServeCmd returns the serve command
func ServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the board over an HTTP JSON API",
		Long: `Serve the board over an HTTP JSON API for web front-ends.

Routes:
  GET  /api/board                 current board in snapshot format
  POST /api/columns/:key/tasks    {"content": "..."} appends a task
  POST /api/moves                 completed drop, moves a task between columns
  GET  /api/metrics               counters
  GET  /healthz                   liveness
`,
		Args: cobra.NoArgs,
		RunE: runServe,
	}

	cmd.Flags().String("addr", "", "Listen address (defaults to server.listen_addr from config)")

	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	formatter := &cli.OutputFormatter{}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(cli.ExitError, "INITIALIZATION_ERROR", err, "")
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("failed to close CLI", "error", err)
		}
	}()

	addr, _ := cmd.Flags().GetString("addr")
	if addr == "" {
		addr = cliInstance.Config.Server.ListenAddr
	}

	srv := server.New(cliInstance.App.BoardService, addr, slog.Default())
	fmt.Printf("Serving board API on http://%s (Ctrl+C to stop)\n", addr)

	if err := srv.Start(ctx); err != nil {
		return formatter.Fail(cli.ExitError, "SERVER_ERROR", err, "")
	}
	return nil
}
