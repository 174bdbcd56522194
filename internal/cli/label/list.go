package label

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/lbl/internal/cli"
	"github.com/thenoetrevino/lbl/internal/cli/styles"
)

// ListCmd returns the label list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List labels",
		Long: `List every label known to the backend.

Examples:
  # Human-readable list
  lbl label list

  # JSON output for agents
  lbl label list --json

  # Quiet mode (one ID per line)
  lbl label list --quiet
`,
		RunE: runList,
	}

	addOutputFlags(cmd, "Minimal output (IDs only)")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	// Initialize CLI
	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return cli.Fail(formatter, "INITIALIZATION_ERROR", err)
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("Error closing CLI", "error", err)
		}
	}()

	store := cliInstance.App.Store
	if err := store.LoadLabels(ctx); err != nil {
		// Message is the backend's own wording when it sent one
		if fmtErr := formatter.Error("LABEL_FETCH_ERROR", store.State().Message); fmtErr != nil {
			slog.Error("Error formatting error message", "error", fmtErr)
		}
		return cli.Exit(cli.ExitCodeFor(err), err)
	}
	labels := store.Labels()

	// Output based on mode
	if formatter.Quiet {
		for _, lbl := range labels {
			fmt.Fprintf(cmd.OutOrStdout(), "%d\n", lbl.ID)
		}
		return nil
	}

	if formatter.JSON {
		return formatter.JSONEnvelope(map[string]any{
			"success": true,
			"labels":  labels,
		})
	}

	// Human-readable output
	out := cmd.OutOrStdout()
	if len(labels) == 0 {
		fmt.Fprintln(out, "No labels found")
		return nil
	}

	fmt.Fprintln(out, styles.TitleStyle.Render("Labels:"))
	fmt.Fprintf(out, "  %-4s %-2s %-24s %-20s %s\n", "ID", "", "Name", "Slug", "Color")
	fmt.Fprintln(out, "  "+strings.Repeat("-", 64))
	for _, lbl := range labels {
		name := lbl.Name
		if lbl.Icon != "" {
			name = lbl.Icon + " " + name
		}
		fmt.Fprintf(out, "  %-4d %s %-24s %-20s %s\n",
			lbl.ID, styles.Swatch(lbl.Color), name, lbl.Slug, lbl.Color)
	}
	return nil
}
