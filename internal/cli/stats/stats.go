package stats

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/kanbanpro/internal/cli"
	"github.com/thenoetrevino/kanbanpro/internal/metrics"
	"github.com/thenoetrevino/kanbanpro/internal/models"
)

// StatsCmd returns the stats command
func StatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show task counts and storage health",
		Long: `Show task counts per column and the storage counters of this run.

A non-zero load fallback count means the stored board could not be read and
the empty default board was used instead.
`,
		Args: cobra.NoArgs,
		RunE: runStats,
	}

	cmd.Flags().Bool("json", false, "Output in JSON format")

	return cmd
}

func runStats(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	jsonOutput, _ := cmd.Flags().GetBool("json")
	formatter := &cli.OutputFormatter{JSON: jsonOutput}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(cli.ExitError, "INITIALIZATION_ERROR", err, "")
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("failed to close CLI", "error", err)
		}
	}()

	b := cliInstance.App.BoardService.Board()
	snapshot := cliInstance.App.BoardService.Metrics()

	counts := make(map[models.ColumnKey]int, len(b))
	for _, col := range b.Columns() {
		counts[col.Key] = col.Len()
	}

	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(map[string]any{
			"success": true,
			"columns": counts,
			"total":   b.TaskCount(),
			"metrics": snapshot,
		})
	}

	printHuman(b, snapshot)
	return nil
}

func printHuman(b models.Board, snapshot metrics.Snapshot) {
	fmt.Println("Tasks")
	for _, col := range b.Columns() {
		fmt.Printf("  %-12s %d\n", col.Name, col.Len())
	}
	fmt.Printf("  %-12s %d\n", "Total", b.TaskCount())

	fmt.Println("Storage")
	fmt.Printf("  %-15s %d\n", "Loads", snapshot.Loads)
	fmt.Printf("  %-15s %d\n", "Load fallbacks", snapshot.LoadFallbacks)
	fmt.Printf("  %-15s %d\n", "Saves", snapshot.Saves)
	fmt.Printf("  %-15s %d\n", "Save failures", snapshot.SaveFailures)
}
