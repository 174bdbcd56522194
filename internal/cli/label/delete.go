package label

import (
	"bufio"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/lbl/internal/cli"
	"github.com/thenoetrevino/lbl/internal/cli/styles"
	"golang.org/x/sync/errgroup"
)

// maxConcurrentDeletes bounds the requests in flight for one command
const maxConcurrentDeletes = 4

// DeleteCmd returns the label delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete labels",
		Long: `Delete one or more labels by ID (requires confirmation unless --force,
--json or --quiet). Several IDs are deleted concurrently.

Examples:
  # Delete with confirmation
  lbl label delete --id=1

  # Delete several labels, skipping confirmation
  lbl label delete --id=1 --id=2 --force

  # Quiet mode (no confirmation)
  lbl label delete --id=1 --quiet
`,
		RunE: runDelete,
	}

	// Required flags
	cmd.Flags().IntSlice("id", nil, "Label ID (required, repeatable)")
	if err := cmd.MarkFlagRequired("id"); err != nil {
		slog.Error("Error marking flag as required", "error", err)
	}

	// Optional flags
	cmd.Flags().Bool("force", false, "Skip confirmation")

	addOutputFlags(cmd, "Minimal output")

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	ids, _ := cmd.Flags().GetIntSlice("id")
	force, _ := cmd.Flags().GetBool("force")
	ids = dedupe(ids)
	for _, id := range ids {
		if id <= 0 {
			return usageError(formatter, "INVALID_ID", fmt.Sprintf("invalid label id %d", id))
		}
	}

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

	// Ask for confirmation unless force, quiet or JSON mode
	if !force && !formatter.Quiet && !formatter.JSON {
		if err := store.LoadLabels(ctx); err != nil {
			return cli.Fail(formatter, "LABEL_FETCH_ERROR", err)
		}
		names := make([]string, len(ids))
		for i, id := range ids {
			names[i] = "#" + strconv.Itoa(id)
			if lbl, ok := store.Label(id); ok {
				names[i] += " '" + lbl.Name + "'"
			}
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Delete label %s? (y/N): ", strings.Join(names, ", "))

		var response string
		if scanner := bufio.NewScanner(cmd.InOrStdin()); scanner.Scan() {
			response = scanner.Text()
		}
		if !cli.Confirm(response) {
			fmt.Fprintln(cmd.OutOrStdout(), "Cancelled")
			return nil
		}
	}

	// Failures are collected per ID rather than cancelling the siblings
	failures := make([]error, len(ids))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentDeletes)
	for i, id := range ids {
		g.Go(func() error {
			failures[i] = store.DeleteLabel(gctx, id)
			return nil
		})
	}
	_ = g.Wait()

	var (
		deleted  []int
		failed   = map[string]string{}
		firstErr error
	)
	for i, id := range ids {
		if failures[i] == nil {
			deleted = append(deleted, id)
			continue
		}
		failed[strconv.Itoa(id)] = failures[i].Error()
		if firstErr == nil {
			firstErr = failures[i]
		}
	}

	if firstErr != nil {
		slog.Warn("label delete failed",
			"failed", len(failed),
			"deleted", len(deleted),
			"last_error", store.State().DeleteError)
	}

	// Output based on mode
	switch {
	case formatter.JSON:
		if err := formatter.JSONEnvelope(map[string]any{
			"success": firstErr == nil,
			"deleted": deleted,
			"failed":  failed,
		}); err != nil {
			return err
		}
	case firstErr != nil:
		if fmtErr := formatter.FieldErrors("DELETE_ERROR", "some labels could not be deleted", failed); fmtErr != nil {
			slog.Error("Error formatting error message", "error", fmtErr)
		}
	}

	if !formatter.Quiet && !formatter.JSON {
		for _, id := range deleted {
			fmt.Fprintf(cmd.OutOrStdout(), "%s Label %d deleted successfully\n", styles.SuccessStyle.Render("✓"), id)
		}
	}

	if firstErr != nil {
		return cli.Exit(cli.ExitCodeFor(firstErr), firstErr)
	}
	return nil
}

func dedupe(ids []int) []int {
	seen := make(map[int]bool, len(ids))
	out := ids[:0:0]
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}
