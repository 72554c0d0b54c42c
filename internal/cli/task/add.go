package task

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/kanbanpro/internal/cli"
	"github.com/thenoetrevino/kanbanpro/internal/cli/styles"
	boardservice "github.com/thenoetrevino/kanbanpro/internal/services/board"
)

// AddCmd returns the task add subcommand
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <column> <content...>",
		Short: "Append a task to the end of a column",
		Long: `Append a task to the end of a column.

The column may be given by key or display name, case-insensitive.

Examples:
  kanbanpro task add todo Write spec
  kanbanpro task add "In Progress" "Review PR"

  # JSON output for agents
  kanbanpro task add todo Write spec --json

  # Quiet mode for bash capture
  TASK_ID=$(kanbanpro task add todo Write spec --quiet)
`,
		Args: cobra.MinimumNArgs(2),
		RunE: runAdd,
	}

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")

	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	column, err := cli.ParseColumnArg(formatter, args[0])
	if err != nil {
		return err
	}
	content := strings.Join(args[1:], " ")

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(cli.ExitError, "INITIALIZATION_ERROR", err, "")
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("failed to close CLI", "error", err)
		}
	}()

	task, err := cliInstance.App.BoardService.AddTask(ctx, boardservice.AddTaskRequest{
		Column:  column,
		Content: content,
	})
	if err != nil {
		if errors.Is(err, boardservice.ErrEmptyContent) {
			return formatter.Fail(cli.ExitValidation, "EMPTY_CONTENT", err, "Provide some text for the task")
		}
		return formatter.Fail(cli.ExitError, "TASK_ADD_ERROR", err, "")
	}

	if quietMode {
		fmt.Println(task.ID)
		return nil
	}

	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(map[string]any{
			"success": true,
			"column":  column,
			"task":    task,
		})
	}

	fmt.Println(styles.SuccessStyle.Render("Task added successfully!"))
	fmt.Printf("  ID: %s\n", task.ID)
	fmt.Printf("  Column: %s\n", column.Name())
	return nil
}
