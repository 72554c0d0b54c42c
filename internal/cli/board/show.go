package board

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/kanbanpro/internal/cli"
	"github.com/thenoetrevino/kanbanpro/internal/cli/styles"
	"github.com/thenoetrevino/kanbanpro/internal/models"
	"github.com/thenoetrevino/kanbanpro/internal/persistence"
)

// Output formats for board show
const (
	FormatText     = "text"
	FormatMarkdown = "markdown"
)

// ShowCmd returns the board show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print every column and its tasks",
		Long: `Print every column and its tasks in board order.

Examples:
  # Human-readable listing
  kanbanpro board show

  # The stored snapshot format, for agents and scripts
  kanbanpro board show --json

  # Rendered Markdown
  kanbanpro board show --format markdown
`,
		Args: cobra.NoArgs,
		RunE: runShow,
	}

	cmd.Flags().String("format", FormatText, "Output format: text or markdown")

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	jsonOutput, _ := cmd.Flags().GetBool("json")
	format, _ := cmd.Flags().GetString("format")

	formatter := &cli.OutputFormatter{JSON: jsonOutput}

	if format != FormatText && format != FormatMarkdown {
		return formatter.Fail(cli.ExitUsage, "INVALID_FORMAT",
			fmt.Errorf("unknown format %q", format), "Use --format text or --format markdown")
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

	b := cliInstance.App.BoardService.Board()

	if jsonOutput {
		data, err := persistence.Encode(b)
		if err != nil {
			return formatter.Fail(cli.ExitError, "ENCODE_ERROR", err, "")
		}
		return json.NewEncoder(os.Stdout).Encode(map[string]any{
			"success": true,
			"board":   json.RawMessage(data),
		})
	}

	if format == FormatMarkdown {
		rendered, err := renderMarkdown(Markdown(b))
		if err != nil {
			return formatter.Fail(cli.ExitError, "RENDER_ERROR", err, "")
		}
		fmt.Print(rendered)
		return nil
	}

	fmt.Print(Text(b))
	return nil
}

// Text formats the board as an indented plain-text listing
func Text(b models.Board) string {
	var sb strings.Builder
	for _, col := range b.Columns() {
		sb.WriteString(styles.ColumnHeading(col) + "\n")
		if col.Len() == 0 {
			sb.WriteString("  " + styles.SubtitleStyle.Render("(empty)") + "\n")
		}
		for _, task := range col.Tasks {
			fmt.Fprintf(&sb, "  - %s %s\n", task.Content, styles.SubtitleStyle.Render("["+task.ID+"]"))
		}
	}
	return sb.String()
}

// Markdown formats the board as a Markdown document, one section per column
func Markdown(b models.Board) string {
	var sb strings.Builder
	sb.WriteString("# Kanban Board\n")
	for _, col := range b.Columns() {
		fmt.Fprintf(&sb, "\n## %s (%d)\n\n", col.Key.Display().Heading, col.Len())
		if col.Len() == 0 {
			sb.WriteString("_No tasks_\n")
		}
		for _, task := range col.Tasks {
			fmt.Fprintf(&sb, "- %s `%s`\n", escapeMarkdown(task.Content), task.ID)
		}
	}
	return sb.String()
}

// markdownEscaper keeps task content literal inside a list item. Line breaks
// would end the item, so they become spaces.
var markdownEscaper = strings.NewReplacer(
	`\`, `\\`,
	"`", "\\`",
	"*", `\*`,
	"_", `\_`,
	"#", `\#`,
	"[", `\[`,
	"]", `\]`,
	"<", `\<`,
	">", `\>`,
	"|", `\|`,
	"~", `\~`,
	"\r\n", " ",
	"\r", " ",
	"\n", " ",
)

func escapeMarkdown(s string) string {
	return markdownEscaper.Replace(s)
}

func renderMarkdown(md string) (string, error) {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return "", err
	}
	return renderer.Render(md)
}
