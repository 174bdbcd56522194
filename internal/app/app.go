package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/lbl/internal/api"
	"github.com/thenoetrevino/lbl/internal/config"
	"github.com/thenoetrevino/lbl/internal/database"
	"github.com/thenoetrevino/lbl/internal/events"
	"github.com/thenoetrevino/lbl/internal/labels"
	labelservice "github.com/thenoetrevino/lbl/internal/services/label"
)

// App holds the label store and the backend it talks to.
// This is the main application container that manages their lifecycles.
type App struct {
	Config *config.Config

	// Store is the single source of label state
	Store *labels.Store

	// Forms receives the store's form reset requests
	Forms *FormRegistry

	// Event system for live updates
	events events.EventPublisher

	backend api.LabelAPI

	// repo is set only for the local backend
	repo *database.Repository

	logger *slog.Logger
}

// New builds the backend selected by cfg and a store over it.
func New(ctx context.Context, cfg *config.Config, opts ...Option) (*App, error) {
	if cfg == nil {
		cfg = config.Default()
	}

	ac := &appConfig{}
	for _, opt := range opts {
		opt(ac)
	}
	if ac.logger == nil {
		ac.logger = slog.Default()
	}

	a := &App{
		Config: cfg,
		Forms:  NewFormRegistry(),
		logger: ac.logger,
	}

	switch {
	case ac.backend != nil:
		a.backend = ac.backend
	case cfg.Backend == config.BackendHTTP:
		client, err := api.NewClient(cfg.API.BaseURL,
			api.WithToken(cfg.API.Token, cfg.API.TokenHeader),
			api.WithTimeout(cfg.API.Timeout),
			api.WithLogger(a.logger),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create api client: %w", err)
		}
		a.backend = client
	case cfg.Backend == config.BackendLocal:
		db, err := database.InitDB(ctx, cfg.Database.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to open label database: %w", err)
		}
		a.repo = database.NewRepository(db)
		a.backend = labelservice.NewService(a.repo, a.logger)
	default:
		return nil, fmt.Errorf("unknown backend %q", cfg.Backend)
	}

	a.events = events.NewBus(a.logger)

	var resetter labels.FormResetter = a.Forms
	if ac.formResetter != nil {
		resetter = ac.formResetter
	}

	a.Store = labels.NewStore(a.backend,
		labels.WithLogger(a.logger),
		labels.WithEventPublisher(a.events),
		labels.WithFormResetter(resetter),
	)

	a.logger.Debug("app initialized", "backend", a.backendName())
	return a, nil
}

// Backend returns the LabelAPI the store is synchronized with.
func (a *App) Backend() api.LabelAPI {
	return a.backend
}

// Close releases the event bus and, for the local backend, the database.
func (a *App) Close() error {
	var errs []error
	if err := a.Store.Close(); err != nil {
		errs = append(errs, err)
	}
	if err := a.events.Close(); err != nil {
		errs = append(errs, err)
	}
	if a.repo != nil {
		if err := a.repo.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close database: %w", err))
		}
	}
	return errors.Join(errs...)
}

func (a *App) backendName() string {
	switch {
	case a.repo != nil:
		return config.BackendLocal
	case a.Config.Backend == config.BackendHTTP:
		return config.BackendHTTP
	default:
		return "custom"
	}
}
