package board

import (
	"fmt"
	"slices"

	"github.com/thenoetrevino/lanekit/internal/models"
)

// Move applies a single drag-and-drop to s.
//
// A nil move is a cancelled drag and returns s unchanged. Otherwise the item
// at SourceIndex is removed from the source lane and inserted into the
// destination lane at DestIndex, clamped to [0, len(dest)] where the length
// is measured after the removal. Both lanes are renumbered.
//
// Unknown lanes return ErrLaneNotFound; a source index outside the lane
// returns ErrInvalidIndex. s is never modified.
func Move(s Snapshot, m *models.Move) (Snapshot, error) {
	if m == nil {
		return s, nil
	}

	src := s.laneIndex(m.SourceLane)
	if src < 0 {
		return s, fmt.Errorf("source %w: %s", models.ErrLaneNotFound, m.SourceLane)
	}
	dst := s.laneIndex(m.DestLane)
	if dst < 0 {
		return s, fmt.Errorf("destination %w: %s", models.ErrLaneNotFound, m.DestLane)
	}

	srcItems := s.lanes[src].Items
	if m.SourceIndex < 0 || m.SourceIndex >= len(srcItems) {
		return s, fmt.Errorf("%w: source index %d in lane %s with %d items",
			models.ErrInvalidIndex, m.SourceIndex, m.SourceLane, len(srcItems))
	}

	next := s.clone()

	// 1. Remove from source
	moved := srcItems[m.SourceIndex]
	remaining := slices.Delete(slices.Clone(srcItems), m.SourceIndex, m.SourceIndex+1)

	// 2. Renumber source
	renumber(remaining)
	next.lanes[src].Items = remaining

	// 3. Insert into destination (already a fresh slice when src == dst)
	destItems := next.lanes[dst].Items
	if src != dst {
		destItems = slices.Clone(destItems)
	}
	at := clampIndex(m.DestIndex, len(destItems))
	destItems = slices.Insert(destItems, at, moved)

	// 4. Renumber destination
	renumber(destItems)
	next.lanes[dst].Items = destItems

	return next, nil
}

// clampIndex limits idx to [0, n].
func clampIndex(idx, n int) int {
	return max(0, min(idx, n))
}
