package label

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/lbl/internal/cli"
	"github.com/thenoetrevino/lbl/internal/cli/styles"
	"github.com/thenoetrevino/lbl/internal/models"
)

// SaveCmd returns the label save subcommand
func SaveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "save",
		Short: "Create or update a label",
		Long: `Create a label, or update one when --id is given.

Fields the backend rejects are reported one per line and the command exits
with status 5.

Examples:
  # Create a label
  lbl label save --name="bug" --color="#FF0000"

  # Rename label 3, keeping its color and icon
  lbl label save --id=3 --name="defect"

  # Quiet mode for bash capture
  LABEL_ID=$(lbl label save --name="bug" --quiet)
`,
		RunE: runSave,
	}

	cmd.Flags().Int("id", 0, "Label ID to update (omit to create)")
	cmd.Flags().String("name", "", "Label name (required when creating)")
	cli.ColorFlag(cmd.Flags(), "Label color in hex format #RRGGBB")
	cmd.Flags().String("icon", "", "Label icon")

	addOutputFlags(cmd, "Minimal output (ID only)")

	return cmd
}

func runSave(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	labelID, _ := cmd.Flags().GetInt("id")
	name, _ := cmd.Flags().GetString("name")
	icon, _ := cmd.Flags().GetString("icon")
	color := cmd.Flags().Lookup("color").Value.String()

	nameProvided := cmd.Flags().Changed("name")
	colorProvided := cmd.Flags().Changed("color")
	iconProvided := cmd.Flags().Changed("icon")

	if labelID < 0 {
		return usageError(formatter, "INVALID_ID", "--id must be positive")
	}
	if labelID == 0 && !nameProvided {
		return usageError(formatter, "MISSING_FLAGS", "--name is required when creating a label")
	}
	if labelID > 0 && !nameProvided && !colorProvided && !iconProvided {
		return usageError(formatter, "MISSING_FLAGS", "at least one of --name, --color or --icon must be provided")
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

	label := &models.Label{}
	if labelID > 0 {
		// Start from the stored label so unset flags keep their values
		existing, err := cli.FindLabel(ctx, store, labelID)
		if err != nil {
			return cli.Fail(formatter, "LABEL_NOT_FOUND", err)
		}
		label = existing
	}
	if nameProvided {
		label.Name = name
	}
	if colorProvided {
		label.Color = color
	}
	if iconProvided {
		label.Icon = icon
	}

	created := label.IsNew()
	saved, err := store.SaveLabel(ctx, label)
	if err != nil {
		return cli.Fail(formatter, "LABEL_SAVE_ERROR", err)
	}

	// Output based on mode
	if formatter.Quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "%d\n", saved.ID)
		return nil
	}

	if formatter.JSON {
		return formatter.JSONEnvelope(map[string]any{
			"success": true,
			"created": created,
			"label":   saved,
		})
	}

	verb := "updated"
	if created {
		verb = "created"
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s Label '%s' %s successfully (ID: %d)\n",
		styles.SuccessStyle.Render("✓"), saved.Name, verb, saved.ID)
	fmt.Fprintf(out, "  Slug:  %s\n", saved.Slug)
	fmt.Fprintf(out, "  Color: %s %s\n", styles.Swatch(saved.Color), saved.Color)
	if saved.Icon != "" {
		fmt.Fprintf(out, "  Icon:  %s\n", saved.Icon)
	}
	return nil
}

func usageError(formatter *cli.OutputFormatter, code, msg string) error {
	if fmtErr := formatter.Error(code, msg); fmtErr != nil {
		slog.Error("Error formatting error message", "error", fmtErr)
	}
	return cli.Exit(cli.ExitUsage, errors.New(msg))
}
