package app

import (
	"log/slog"

	"github.com/thenoetrevino/lbl/internal/api"
	"github.com/thenoetrevino/lbl/internal/labels"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	backend      api.LabelAPI
	formResetter labels.FormResetter
	logger       *slog.Logger
}

// WithBackend replaces the backend chosen by the config, mainly for tests
func WithBackend(backend api.LabelAPI) Option {
	return func(cfg *appConfig) {
		cfg.backend = backend
	}
}

// WithFormResetter replaces the app's FormRegistry as the store's reset hook
func WithFormResetter(r labels.FormResetter) Option {
	return func(cfg *appConfig) {
		cfg.formResetter = r
	}
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		cfg.logger = logger
	}
}
