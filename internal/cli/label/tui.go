package label

import (
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/lbl/internal/cli"
	"github.com/thenoetrevino/lbl/internal/tui"
)

// TUICmd returns the interactive label manager subcommand
func TUICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Manage labels interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cliInstance, err := cli.GetCLIFromContext(ctx)
			if err != nil {
				return err
			}
			defer func() {
				if err := cliInstance.Close(); err != nil {
					slog.Error("Error closing CLI", "error", err)
				}
			}()

			return tui.Run(ctx, cliInstance.App)
		},
	}
}
