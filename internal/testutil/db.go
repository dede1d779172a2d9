package testutil

import (
	"context"
	"database/sql"
	"testing"

	"github.com/thenoetrevino/lanekit/internal/database"
)

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

const TestAppKey ContextKey = "testApp"

// SetupTestDB creates an in-memory database with full schema and the
// default lanes (todo, in-progress, done)
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.Open(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	return db
}

// CreateTestLane appends a lane and returns its key
func CreateTestLane(t *testing.T, db *sql.DB, key, title string) string {
	t.Helper()
	_, err := db.ExecContext(context.Background(),
		"INSERT INTO lanes (key, title, position) VALUES (?, ?, (SELECT COALESCE(MAX(position), -1) + 1 FROM lanes))",
		key, title)
	if err != nil {
		t.Fatalf("Failed to create test lane: %v", err)
	}
	return key
}

// CreateTestItem appends an item to a lane and returns its key
func CreateTestItem(t *testing.T, db *sql.DB, laneKey, key, title string) string {
	t.Helper()
	var maxPosition int
	err := db.QueryRowContext(context.Background(),
		"SELECT COALESCE(MAX(position), -1) FROM items WHERE lane_key = ?", laneKey).Scan(&maxPosition)
	if err != nil && err != sql.ErrNoRows {
		t.Fatalf("Failed to get max position: %v", err)
	}

	_, err = db.ExecContext(context.Background(),
		"INSERT INTO items (key, lane_key, title, position) VALUES (?, ?, ?, ?)",
		key, laneKey, title, maxPosition+1)
	if err != nil {
		t.Fatalf("Failed to create test item: %v", err)
	}
	return key
}

// ItemPosition returns the lane and position stored for an item
func ItemPosition(t *testing.T, db *sql.DB, key string) (string, int) {
	t.Helper()
	var laneKey string
	var position int
	err := db.QueryRowContext(context.Background(),
		"SELECT lane_key, position FROM items WHERE key = ?", key).Scan(&laneKey, &position)
	if err != nil {
		t.Fatalf("Failed to read item %s: %v", key, err)
	}
	return laneKey, position
}
