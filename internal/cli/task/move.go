package task

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/kanbanpro/internal/cli"
	"github.com/thenoetrevino/kanbanpro/internal/models"
	boardservice "github.com/thenoetrevino/kanbanpro/internal/services/board"
)

// MoveCmd returns the task move subcommand
func MoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move",
		Short: "Move a task to another column",
		Long: `Move a task to another column, the same way a drag and drop does.

Without --index the task is dropped at the end of the destination column.
An index past either end is clamped. Moving within one column does nothing.

Examples:
  # Drop at the end of Complete
  kanbanpro task move --id task-1b2c --to complete

  # Drop at the top of InProgress, checking where it comes from
  kanbanpro task move --id task-1b2c --from todo --to "In Progress" --index 0

  # JSON output for agents
  kanbanpro task move --id task-1b2c --to complete --json
`,
		Args: cobra.NoArgs,
		RunE: runMove,
	}

	// Required flags
	cmd.Flags().String("id", "", "Task ID (required)")
	if err := cmd.MarkFlagRequired("id"); err != nil {
		slog.Error("failed to mark flag as required", "error", err)
	}
	cmd.Flags().String("to", "", "Destination column (required)")
	if err := cmd.MarkFlagRequired("to"); err != nil {
		slog.Error("failed to mark flag as required", "error", err)
	}

	// Optional flags
	cmd.Flags().String("from", "", "Source column (defaults to the task's current column)")
	cmd.Flags().Int("index", 0, "Drop position in the destination column (defaults to the end)")

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")

	return cmd
}

func runMove(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	taskID, _ := cmd.Flags().GetString("id")
	toArg, _ := cmd.Flags().GetString("to")
	fromArg, _ := cmd.Flags().GetString("from")
	destIndex, _ := cmd.Flags().GetInt("index")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	dest, err := cli.ParseColumnArg(formatter, toArg)
	if err != nil {
		return err
	}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(cli.ExitError, "INITIALIZATION_ERROR", err, "")
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("failed to close CLI", "error", err)
		}
	}()

	var source models.ColumnKey
	if fromArg != "" {
		if source, err = cli.ParseColumnArg(formatter, fromArg); err != nil {
			return err
		}
	} else {
		current, _, ok := cliInstance.App.BoardService.Board().Find(taskID)
		if !ok {
			return formatter.Fail(cli.ExitNotFound, "TASK_NOT_FOUND",
				fmt.Errorf("%w: %s", boardservice.ErrTaskNotFound, taskID),
				"Run 'kanbanpro board show' to list task IDs")
		}
		source = current
	}

	if !cmd.Flags().Changed("index") {
		destIndex = boardservice.EndOfColumn
	}

	moved, err := cliInstance.App.BoardService.MoveTask(ctx, boardservice.MoveTaskRequest{
		TaskID:    taskID,
		Source:    source,
		Dest:      dest,
		DestIndex: destIndex,
	})
	if err != nil {
		switch {
		case errors.Is(err, boardservice.ErrTaskNotFound):
			return formatter.Fail(cli.ExitNotFound, "TASK_NOT_FOUND", err,
				"Run 'kanbanpro board show' to see which column the task is in")
		case errors.Is(err, boardservice.ErrEmptyTaskID):
			return formatter.Fail(cli.ExitUsage, "MISSING_TASK_ID", err, "")
		default:
			return formatter.Fail(cli.ExitError, "MOVE_ERROR", err, "")
		}
	}

	// Quiet output names the task only when it actually moved
	if quietMode {
		if moved {
			fmt.Println(taskID)
		}
		return nil
	}

	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(map[string]any{
			"success":     true,
			"moved":       moved,
			"task_id":     taskID,
			"from_column": source,
			"to_column":   dest,
		})
	}

	// Same-column drops are a silent no-op
	if !moved {
		fmt.Printf("Task %s is already in '%s'\n", taskID, dest.Name())
	} else {
		fmt.Printf("Task %s moved to '%s'\n", taskID, dest.Name())
	}
	return nil
}
