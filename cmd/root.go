package cmd

import (
	"context"
	"fmt"
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/kanbanpro/internal/cli"
	"github.com/thenoetrevino/kanbanpro/internal/cli/board"
	configcmd "github.com/thenoetrevino/kanbanpro/internal/cli/config"
	"github.com/thenoetrevino/kanbanpro/internal/cli/serve"
	"github.com/thenoetrevino/kanbanpro/internal/cli/stats"
	"github.com/thenoetrevino/kanbanpro/internal/cli/task"
	"github.com/thenoetrevino/kanbanpro/internal/tui"
)

// NewRootCmd builds the kanbanpro command tree
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "kanbanpro",
		Short: "KanbanPro - A terminal-based kanban board",
		Long: `KanbanPro is a kanban board with three fixed columns: Todo, Inprogress and Complete.

Run without a subcommand to open the interactive board.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runTUI,
	}

	rootCmd.AddCommand(board.BoardCmd())
	rootCmd.AddCommand(task.TaskCmd())
	rootCmd.AddCommand(serve.ServeCmd())
	rootCmd.AddCommand(stats.StatsCmd())
	rootCmd.AddCommand(configcmd.ConfigCmd())

	return rootCmd
}

// Execute runs the root command
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}

func runTUI(cmd *cobra.Command, args []string) error {
	cliInstance, err := cli.GetCLIFromContext(cmd.Context())
	if err != nil {
		return cli.WithExitCode(cli.ExitError, err)
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("failed to close CLI", "error", err)
		}
	}()

	model := tui.New(cliInstance.Context(), cliInstance.App, cliInstance.Config)
	defer model.Close()

	p := tea.NewProgram(model, tea.WithContext(cmd.Context()))
	if _, err := p.Run(); err != nil {
		return cli.WithExitCode(cli.ExitError, fmt.Errorf("error running program: %w", err))
	}
	return nil
}
