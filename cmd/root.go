package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/lbl/internal/cli"
	"github.com/thenoetrevino/lbl/internal/cli/label"
	"github.com/thenoetrevino/lbl/internal/cli/styles"
	"github.com/thenoetrevino/lbl/internal/config"
	"github.com/thenoetrevino/lbl/internal/logging"
)

// logFile is closed once the command finished
var logFile io.Closer

var rootCmd = &cobra.Command{
	Use:   "lbl",
	Short: "lbl - manage labels from the terminal",
	Long: `lbl keeps a local cache of labels in sync with a label backend.

The backend is either a remote HTTP API or a local sqlite database,
chosen in ~/.config/lbl/config.yaml.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logFile != nil {
			_ = logFile.Close()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Config file (default $XDG_CONFIG_HOME/lbl/config.yaml)")
	rootCmd.PersistentFlags().String("backend", "", "Override the configured backend (http or local)")
	rootCmd.AddCommand(label.LabelCmd())
}

// setup loads the config, starts logging and hands the config to subcommands
func setup(cmd *cobra.Command, args []string) error {
	var (
		cfg *config.Config
		err error
	)
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		cfg, err = config.LoadFile(path)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		err = fmt.Errorf("failed to load config: %w", err)
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		return cli.Exit(cli.ExitUsage, err)
	}

	if backend, _ := cmd.Flags().GetString("backend"); backend != "" {
		cfg.Backend = backend
		if err := cfg.Validate(); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
			return cli.Exit(cli.ExitUsage, err)
		}
	}

	logFile, err = logging.Init(cfg.Log.Path, cfg.Log.Level)
	if err != nil {
		// Logging is best effort; the command still runs
		slog.Warn("failed to initialize log file", "error", err)
	}
	styles.Init(cfg.ColorScheme)

	slog.Debug("command starting", "command", cmd.CommandPath(), "backend", cfg.Backend)
	cmd.SetContext(cli.WithConfig(cmd.Context(), cfg))
	return nil
}

// Execute runs the root command. Interrupts cancel the command context so
// in-flight backend requests and the TUI shut down cleanly.
func Execute() error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	return rootCmd.ExecuteContext(ctx)
}
