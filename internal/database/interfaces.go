// Package database defines repository interfaces for data access
package database

import (
	"context"

	"github.com/thenoetrevino/lanekit/internal/board"
)

// BoardReader loads the persisted board.
type BoardReader interface {
	LoadBoard(ctx context.Context) (board.Snapshot, error)
}

// BoardWriter persists changes computed by the board engine.
type BoardWriter interface {
	// SaveLanes writes every lane's title and position from snap, and the
	// items of the lanes named in laneKeys, in one transaction. Items missing
	// from a named lane are deleted.
	SaveLanes(ctx context.Context, snap board.Snapshot, laneKeys []string) error
}

// DataStore defines the unified interface for all data operations needed by
// the board service.
type DataStore interface {
	BoardReader
	BoardWriter
}
