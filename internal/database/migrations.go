package database

import (
	"context"
	"database/sql"
)

// runMigrations creates the database schema and seeds default data if needed
func runMigrations(ctx context.Context, db *sql.DB) error {
	// Create lanes table
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS lanes (
			key TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			position INTEGER NOT NULL
		)
	`)
	if err != nil {
		return err
	}

	// Create items table
	_, err = db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS items (
			key TEXT PRIMARY KEY,
			lane_key TEXT NOT NULL,
			title TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			position INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (lane_key) REFERENCES lanes(key) ON DELETE CASCADE
		)
	`)
	if err != nil {
		return err
	}

	// Create index for efficient queries
	_, err = db.ExecContext(ctx, `
		CREATE INDEX IF NOT EXISTS idx_items_lane
		ON items(lane_key, position)
	`)
	if err != nil {
		return err
	}

	// Seed default lanes if the table is empty
	return seedDefaultLanes(ctx, db)
}

// seedDefaultLanes inserts default lanes if the lanes table is empty
func seedDefaultLanes(ctx context.Context, db *sql.DB) error {
	var count int
	err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM lanes").Scan(&count)
	if err != nil {
		return err
	}

	// If lanes exist, don't seed
	if count > 0 {
		return nil
	}

	defaultLanes := []struct {
		key      string
		title    string
		position int
	}{
		{"todo", "Todo", 0},
		{"in-progress", "In Progress", 1},
		{"done", "Done", 2},
	}

	for _, lane := range defaultLanes {
		_, err := db.ExecContext(ctx,
			"INSERT INTO lanes (key, title, position) VALUES (?, ?, ?)",
			lane.key, lane.title, lane.position,
		)
		if err != nil {
			return err
		}
	}

	return nil
}
