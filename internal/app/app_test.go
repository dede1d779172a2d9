package app

import (
	"context"
	"database/sql"
	"testing"

	"github.com/thenoetrevino/lanekit/internal/config"
	"github.com/thenoetrevino/lanekit/internal/database"
	"github.com/thenoetrevino/lanekit/internal/models"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.Open(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	return db
}

func TestNew(t *testing.T) {
	db := setupTestDB(t)

	app := New(db, nil)
	defer func() { _ = app.Close() }()

	if app == nil {
		t.Fatal("Expected app to be created, got nil")
	}
	if app.BoardService == nil {
		t.Error("Expected BoardService to be initialized")
	}
	if app.Layout == nil {
		t.Error("Expected Layout calculator to be initialized")
	}
	if app.Repo() == nil {
		t.Error("Expected repository to be initialized")
	}

	snap, err := app.BoardService.GetBoard(context.Background())
	if err != nil {
		t.Fatalf("GetBoard failed: %v", err)
	}
	if snap.LaneCount() != 3 {
		t.Errorf("Expected 3 seeded lanes, got %d", snap.LaneCount())
	}
}

func TestNewUsesConfiguredLayout(t *testing.T) {
	db := setupTestDB(t)

	cfg := config.Default()
	cfg.Columns = []models.Column{{ID: "only", Title: "Only", MinWidth: 100}}
	cfg.Layout.Selectable = true
	cfg.Layout.PixelsPerCell = 10

	app := New(db, cfg)
	defer func() { _ = app.Close() }()

	got := app.Layout.Visible(app.ViewportPixels(80))
	want := []string{models.SelectionColumnID, "only"}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("Visible = %v, want %v", got, want)
	}
	if app.ViewportPixels(12) != 120 {
		t.Errorf("ViewportPixels(12) = %d, want 120", app.ViewportPixels(12))
	}
}

func TestClose(t *testing.T) {
	db := setupTestDB(t)

	app := New(db, nil)

	if err := app.Close(); err != nil {
		t.Errorf("Expected Close to succeed, got error: %v", err)
	}
}
