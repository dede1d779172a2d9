package board

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/thenoetrevino/lanekit/internal/board"
	"github.com/thenoetrevino/lanekit/internal/database"
	"github.com/thenoetrevino/lanekit/internal/models"
)

// Service defines all board operations. Each write loads the persisted
// board, applies the pure board engine and saves only the lanes it touched.
type Service interface {
	// Read operations
	GetBoard(ctx context.Context) (board.Snapshot, error)
	GetItem(ctx context.Context, key string) (models.Item, string, error)

	// Write operations
	MoveItem(ctx context.Context, m *models.Move) (board.Snapshot, error)
	AddLane(ctx context.Context, req AddLaneRequest) (board.Snapshot, error)
	AddItem(ctx context.Context, req AddItemRequest) (models.Item, board.Snapshot, error)
	UpdateItem(ctx context.Context, req UpdateItemRequest) (board.Snapshot, error)
	DeleteItem(ctx context.Context, key string) (board.Snapshot, error)
}

// AddLaneRequest encapsulates all data needed to create a lane
type AddLaneRequest struct {
	Key   string
	Title string
	Index int // models.AppendIndex appends
}

// AddItemRequest encapsulates all data needed to create an item
type AddItemRequest struct {
	LaneKey     string
	Key         string // Optional: generated when empty
	Title       string
	Description string
	Index       int // models.AppendIndex appends
}

// UpdateItemRequest encapsulates an item edit.
// Fields with pointers are optional - nil means don't update
type UpdateItemRequest struct {
	Key         string
	Title       *string
	Description *string
}

// service implements Service interface
type service struct {
	repo database.DataStore
}

// NewService creates a new board service
func NewService(repo database.DataStore) Service {
	return &service{repo: repo}
}

// GetBoard loads the current board
func (s *service) GetBoard(ctx context.Context) (board.Snapshot, error) {
	snap, err := s.repo.LoadBoard(ctx)
	if err != nil {
		return board.Snapshot{}, fmt.Errorf("failed to load board: %w", err)
	}
	return snap, nil
}

// GetItem returns an item and the key of its lane
func (s *service) GetItem(ctx context.Context, key string) (models.Item, string, error) {
	snap, err := s.GetBoard(ctx)
	if err != nil {
		return models.Item{}, "", err
	}
	laneKey, _, ok := snap.FindItem(key)
	if !ok {
		return models.Item{}, "", fmt.Errorf("%w: %s", models.ErrItemNotFound, key)
	}
	item, _ := snap.Item(key)
	return item, laneKey, nil
}

// MoveItem applies a drag-and-drop. A nil move is a cancelled drag and
// leaves the board untouched. When the move names its item, the source is
// taken from where that item is now rather than from the given indices.
func (s *service) MoveItem(ctx context.Context, m *models.Move) (board.Snapshot, error) {
	snap, err := s.GetBoard(ctx)
	if err != nil {
		return board.Snapshot{}, err
	}
	if m == nil {
		slog.Debug("drag cancelled, board unchanged")
		return snap, nil
	}

	m, err = resolveSource(snap, m)
	if err != nil {
		return snap, err
	}

	next, err := board.Move(snap, m)
	if err != nil {
		return snap, err
	}

	if err := s.save(ctx, snap, next); err != nil {
		return snap, err
	}

	slog.Info("item moved",
		"from_lane", m.SourceLane, "from_index", m.SourceIndex,
		"to_lane", m.DestLane, "to_index", m.DestIndex,
	)
	return next, nil
}

// AddLane validates and creates a lane
func (s *service) AddLane(ctx context.Context, req AddLaneRequest) (board.Snapshot, error) {
	req.Key = strings.TrimSpace(req.Key)
	if req.Key == "" {
		return board.Snapshot{}, ErrEmptyKey
	}
	if err := validateTitle(req.Title); err != nil {
		return board.Snapshot{}, err
	}

	snap, err := s.GetBoard(ctx)
	if err != nil {
		return board.Snapshot{}, err
	}

	next, err := board.AddLane(snap, models.Lane{Key: req.Key, Title: req.Title}, req.Index)
	if err != nil {
		return snap, err
	}
	if err := s.save(ctx, snap, next); err != nil {
		return snap, err
	}

	slog.Info("lane added", "lane", req.Key)
	return next, nil
}

// AddItem validates and creates an item, generating a key if none was given
func (s *service) AddItem(ctx context.Context, req AddItemRequest) (models.Item, board.Snapshot, error) {
	if err := validateTitle(req.Title); err != nil {
		return models.Item{}, board.Snapshot{}, err
	}

	snap, err := s.GetBoard(ctx)
	if err != nil {
		return models.Item{}, board.Snapshot{}, err
	}

	key := strings.TrimSpace(req.Key)
	if key == "" {
		key = newItemKey()
	}

	item := models.Item{Key: key, Title: req.Title, Description: req.Description}
	next, err := board.AddItem(snap, req.LaneKey, item, req.Index)
	if err != nil {
		return models.Item{}, snap, err
	}
	if err := s.save(ctx, snap, next); err != nil {
		return models.Item{}, snap, err
	}

	created, _ := next.Item(key)
	slog.Info("item added", "item", key, "lane", req.LaneKey)
	return created, next, nil
}

// UpdateItem edits an item's title and/or description
func (s *service) UpdateItem(ctx context.Context, req UpdateItemRequest) (board.Snapshot, error) {
	if req.Title == nil && req.Description == nil {
		return board.Snapshot{}, ErrNoChanges
	}
	if req.Title != nil {
		if err := validateTitle(*req.Title); err != nil {
			return board.Snapshot{}, err
		}
	}

	snap, err := s.GetBoard(ctx)
	if err != nil {
		return board.Snapshot{}, err
	}

	next, err := board.UpdateItem(snap, req.Key, func(item *models.Item) {
		if req.Title != nil {
			item.Title = *req.Title
		}
		if req.Description != nil {
			item.Description = *req.Description
		}
	})
	if err != nil {
		return snap, err
	}
	if err := s.save(ctx, snap, next); err != nil {
		return snap, err
	}

	return next, nil
}

// DeleteItem removes an item and renumbers its lane
func (s *service) DeleteItem(ctx context.Context, key string) (board.Snapshot, error) {
	snap, err := s.GetBoard(ctx)
	if err != nil {
		return board.Snapshot{}, err
	}

	next, _, err := board.DeleteItem(snap, key)
	if err != nil {
		return snap, err
	}

	// The lane rewrite deletes the row in the same transaction
	if err := s.save(ctx, snap, next); err != nil {
		return snap, err
	}

	slog.Info("item deleted", "item", key)
	return next, nil
}

// save persists the lanes that differ between before and after
func (s *service) save(ctx context.Context, before, after board.Snapshot) error {
	touched := board.TouchedLanes(before, after)
	if err := s.repo.SaveLanes(ctx, after, touched); err != nil {
		return fmt.Errorf("failed to save board: %w", err)
	}
	return nil
}

// resolveSource returns m with its source pointed at the current slot of
// m.ItemKey. Moves without a key are returned as is.
func resolveSource(snap board.Snapshot, m *models.Move) (*models.Move, error) {
	if m.ItemKey == "" {
		return m, nil
	}

	lane, index, ok := snap.FindItem(m.ItemKey)
	if !ok {
		return nil, fmt.Errorf("%w: %s", models.ErrItemNotFound, m.ItemKey)
	}
	if lane != m.SourceLane || index != m.SourceIndex {
		slog.Debug("item shifted since pick up",
			"item", m.ItemKey,
			"was_lane", m.SourceLane, "was_index", m.SourceIndex,
			"lane", lane, "index", index,
		)
	}

	resolved := *m
	resolved.SourceLane = lane
	resolved.SourceIndex = index
	return &resolved, nil
}

func validateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return ErrEmptyTitle
	}
	if len(title) > models.MaxTitleLength {
		return ErrTitleTooLong
	}
	return nil
}

// newItemKey returns a short random key
func newItemKey() string {
	return uuid.NewString()[:8]
}
