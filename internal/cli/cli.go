package cli

import (
	"context"
	"fmt"

	"github.com/thenoetrevino/lanekit/internal/app"
	"github.com/thenoetrevino/lanekit/internal/config"
	"github.com/thenoetrevino/lanekit/internal/database"
	"github.com/thenoetrevino/lanekit/internal/testutil"
)

// CLI represents the CLI application context
type CLI struct {
	App *app.App // Application container with services

	// owned is false when the App was injected and belongs to the caller
	owned bool
}

// NewCLI initializes the CLI with the user's database and config
func NewCLI(ctx context.Context) (*CLI, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	db, err := database.InitDB(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return &CLI{
		App:   app.New(db, cfg),
		owned: true,
	}, nil
}

// GetCLIFromContext returns a CLI bound to the App stored in ctx by tests,
// or opens the user's database when none is present.
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if ctx != nil {
		if a, ok := ctx.Value(testutil.TestAppKey).(*app.App); ok && a != nil {
			return &CLI{App: a}, nil
		}
	}
	return NewCLI(ctx)
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	if !c.owned {
		return nil
	}
	return c.App.Close()
}
