package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/thenoetrevino/tally/internal/config"
	"github.com/thenoetrevino/tally/internal/database"
	"github.com/thenoetrevino/tally/internal/database/memstore"
	labelservice "github.com/thenoetrevino/tally/internal/services/label"
	taskservice "github.com/thenoetrevino/tally/internal/services/task"
)

// App holds all application services and provides dependency injection.
// This is the main application container that manages service lifecycles.
type App struct {
	// Repository layer (sqlite or memory)
	repo   database.DataStore
	logger *slog.Logger

	// Service layer (business logic)
	TaskService  taskservice.Service
	LabelService labelservice.Service
}

// New creates a new App with all services initialized.
// This is the single entry point for creating the application container.
func New(repo database.DataStore, opts ...Option) *App {
	cfg := &appConfig{logger: slog.Default()}
	for _, opt := range opts {
		opt(cfg)
	}

	return &App{
		repo:         repo,
		logger:       cfg.logger,
		TaskService:  taskservice.NewService(repo, cfg.logger),
		LabelService: labelservice.NewService(repo, cfg.logger),
	}
}

// Open creates the store selected by cfg and wraps it in an App
func Open(ctx context.Context, cfg *config.Config, opts ...Option) (*App, error) {
	var repo database.DataStore
	switch cfg.Database.Backend {
	case config.BackendMemory:
		repo = memstore.New()
	case config.BackendSQLite:
		db, err := database.InitDB(ctx, cfg.Database.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		repo = database.NewRepository(db)
	default:
		return nil, fmt.Errorf("unknown database backend %q", cfg.Database.Backend)
	}

	a := New(repo, opts...)
	a.logger.Debug("store opened", "backend", cfg.Database.Backend)
	return a, nil
}

// Repo returns the underlying store
func (a *App) Repo() database.DataStore {
	return a.repo
}

// Logger returns the application logger
func (a *App) Logger() *slog.Logger {
	return a.logger
}

// Close releases the store if it holds resources
func (a *App) Close() error {
	if c, ok := a.repo.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
