package database

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/thenoetrevino/lanekit/internal/board"
	"github.com/thenoetrevino/lanekit/internal/models"
)

func setupTestDB(t *testing.T) *Repository {
	t.Helper()
	db, err := Open(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return NewRepository(db)
}

func TestOpen_SeedsDefaultLanes(t *testing.T) {
	repo := setupTestDB(t)

	snap, err := repo.LoadBoard(context.Background())
	if err != nil {
		t.Fatalf("LoadBoard() failed: %v", err)
	}

	want := []string{"todo", "in-progress", "done"}
	if diff := cmp.Diff(want, snap.LaneKeys()); diff != "" {
		t.Errorf("LaneKeys() mismatch (-want +got):\n%s", diff)
	}
	if snap.ItemCount() != 0 {
		t.Errorf("ItemCount() = %d, want 0", snap.ItemCount())
	}
}

func TestOpen_MigrationsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.db")
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		db, err := Open(ctx, path)
		if err != nil {
			t.Fatalf("Open() #%d failed: %v", i, err)
		}
		snap, err := NewRepository(db).LoadBoard(ctx)
		if err != nil {
			t.Fatalf("LoadBoard() #%d failed: %v", i, err)
		}
		if snap.LaneCount() != 3 {
			t.Errorf("LaneCount() #%d = %d, want 3", i, snap.LaneCount())
		}
		_ = db.Close()
	}
}

func TestSaveLanes_PersistsMove(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()

	snap, err := repo.LoadBoard(ctx)
	if err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{"a", "b", "c"} {
		snap, err = board.AddItem(snap, "todo", models.Item{Key: key, Title: "Item " + key}, models.AppendIndex)
		if err != nil {
			t.Fatal(err)
		}
	}
	if err := repo.SaveLanes(ctx, snap, []string{"todo"}); err != nil {
		t.Fatalf("SaveLanes() failed: %v", err)
	}

	moved, err := board.Move(snap, &models.Move{SourceLane: "todo", SourceIndex: 1, DestLane: "done", DestIndex: 0})
	if err != nil {
		t.Fatal(err)
	}
	if err := repo.SaveLanes(ctx, moved, board.TouchedLanes(snap, moved)); err != nil {
		t.Fatalf("SaveLanes() after move failed: %v", err)
	}

	loaded, err := repo.LoadBoard(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(moved.Lanes(), loaded.Lanes()); diff != "" {
		t.Errorf("persisted board mismatch (-want +got):\n%s", diff)
	}
}

func TestSaveLanes_NewLaneAndOrder(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()

	snap, err := repo.LoadBoard(ctx)
	if err != nil {
		t.Fatal(err)
	}
	snap, err = board.AddLane(snap, models.Lane{Key: "review", Title: "Review"}, 2)
	if err != nil {
		t.Fatal(err)
	}
	if err := repo.SaveLanes(ctx, snap, nil); err != nil {
		t.Fatalf("SaveLanes() failed: %v", err)
	}

	loaded, err := repo.LoadBoard(ctx)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"todo", "in-progress", "review", "done"}
	if diff := cmp.Diff(want, loaded.LaneKeys()); diff != "" {
		t.Errorf("LaneKeys() mismatch (-want +got):\n%s", diff)
	}
}

func TestSaveLanes_UnknownLane(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()

	snap, err := repo.LoadBoard(ctx)
	if err != nil {
		t.Fatal(err)
	}
	err = repo.SaveLanes(ctx, snap, []string{"ghost"})
	if !errors.Is(err, models.ErrLaneNotFound) {
		t.Errorf("SaveLanes() error = %v, want ErrLaneNotFound", err)
	}
}

func TestSaveLanes_DeletesRemovedItems(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()

	snap, _ := repo.LoadBoard(ctx)
	for i, key := range []string{"a", "b", "c"} {
		var err error
		snap, err = board.AddItem(snap, "todo", models.Item{Key: key, Title: key}, i)
		if err != nil {
			t.Fatal(err)
		}
	}
	if err := repo.SaveLanes(ctx, snap, []string{"todo"}); err != nil {
		t.Fatal(err)
	}

	// Move a to done and delete b in one save
	next, err := board.Move(snap, &models.Move{SourceLane: "todo", SourceIndex: 0, DestLane: "done", DestIndex: 0})
	if err != nil {
		t.Fatal(err)
	}
	next, _, err = board.DeleteItem(next, "b")
	if err != nil {
		t.Fatal(err)
	}
	if err := repo.SaveLanes(ctx, next, board.TouchedLanes(snap, next)); err != nil {
		t.Fatalf("SaveLanes() failed: %v", err)
	}

	loaded, _ := repo.LoadBoard(ctx)
	if _, ok := loaded.Item("b"); ok {
		t.Error("deleted item b is still stored")
	}
	if lane, pos, ok := loaded.FindItem("a"); !ok || lane != "done" || pos != 0 {
		t.Errorf("a stored at %s/%d (found %v), want done/0", lane, pos, ok)
	}
	if lane, pos, ok := loaded.FindItem("c"); !ok || lane != "todo" || pos != 0 {
		t.Errorf("c stored at %s/%d (found %v), want todo/0", lane, pos, ok)
	}

	// Emptying a lane removes every row
	empty, _, _ := board.DeleteItem(next, "c")
	if err := repo.SaveLanes(ctx, empty, []string{"todo"}); err != nil {
		t.Fatal(err)
	}
	loaded, _ = repo.LoadBoard(ctx)
	if got := len(loaded.Items("todo")); got != 0 {
		t.Errorf("todo items = %d, want 0", got)
	}
}
