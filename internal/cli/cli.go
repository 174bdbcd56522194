package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/lbl/internal/app"
	"github.com/thenoetrevino/lbl/internal/config"
)

// CLI represents the CLI application context
type CLI struct {
	App *app.App // Application container with the label store

	// ownsApp is false when the app was injected through the context
	ownsApp bool
}

// NewCLI initializes the CLI with the backend selected by cfg
func NewCLI(ctx context.Context, cfg *config.Config) (*CLI, error) {
	application, err := app.New(ctx, cfg, app.WithLogger(slog.Default()))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize app: %w", err)
	}

	return &CLI{
		App:     application,
		ownsApp: true,
	}, nil
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	if !c.ownsApp {
		return nil
	}
	return c.App.Close()
}
