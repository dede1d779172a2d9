package app

import (
	"database/sql"

	"github.com/thenoetrevino/lanekit/internal/config"
	"github.com/thenoetrevino/lanekit/internal/database"
	"github.com/thenoetrevino/lanekit/internal/layout"
	boardservice "github.com/thenoetrevino/lanekit/internal/services/board"
)

// App holds all application services and provides dependency injection.
// This is the main application container that manages service lifecycles.
type App struct {
	db *sql.DB

	// Repository layer (direct database access)
	repo database.DataStore

	// Config the container was built from
	Config *config.Config

	// Service layer (business logic)
	BoardService boardservice.Service

	// Layout caches the list view breakpoints for the configured columns
	Layout *layout.Calculator
}

// New creates a new App with all services initialized.
// A nil cfg uses config.Default().
func New(db *sql.DB, cfg *config.Config) *App {
	if cfg == nil {
		cfg = config.Default()
	}

	repo := database.NewRepository(db)

	return &App{
		db:           db,
		repo:         repo,
		Config:       cfg,
		BoardService: boardservice.NewService(repo),
		Layout:       layout.NewCalculator(cfg.Columns, cfg.Layout.Options),
	}
}

// Repo returns the underlying repository for direct database access.
func (a *App) Repo() database.DataStore {
	return a.repo
}

// ViewportPixels converts a terminal width in cells into layout pixels
func (a *App) ViewportPixels(cells int) int {
	return cells * a.Config.Layout.PixelsPerCell
}

// Close releases the database connection.
func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}
