package tui

import (
	"context"
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/lbl/internal/app"
	"github.com/thenoetrevino/lbl/internal/labels"
)

// Run starts the interactive label manager and blocks until it exits
func Run(ctx context.Context, a *app.App) error {
	updates, unsubscribe := a.Store.Subscribe()
	defer unsubscribe()

	model := NewModel(ctx, a.Store, a.Config, updates)
	p := tea.NewProgram(model, tea.WithContext(ctx))

	// The store resets the form from the goroutine that ran the save
	unregister := a.Forms.Register(labels.LabelFormName, func() {
		p.Send(formResetMsg{})
	})
	defer unregister()

	if _, err := p.Run(); err != nil {
		slog.Error("tui exited with error", "error", err)
		return err
	}
	return nil
}
