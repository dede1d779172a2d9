// Package board holds the lanes-to-items structure of a kanban board as an
// immutable Snapshot and applies drag-and-drop moves to it.
//
// Every operation returns a new Snapshot and leaves its input untouched, so a
// rendering layer can detect changes by comparing snapshots (or their
// fingerprints) instead of tracking mutations. After any operation the Order
// fields of every lane it touched are exactly 0..N-1 in list order.
package board

import (
	"fmt"
	"slices"

	"github.com/thenoetrevino/lanekit/internal/models"
)

// Snapshot is an immutable view of a board. The zero value is an empty board.
type Snapshot struct {
	lanes []models.Lane
}

// New builds a snapshot from lanes, copying them and renumbering each lane.
// Lane keys and item keys must be unique across the board.
func New(lanes ...models.Lane) (Snapshot, error) {
	seenLanes := make(map[string]bool, len(lanes))
	seenItems := make(map[string]bool)

	out := make([]models.Lane, len(lanes))
	for i, lane := range lanes {
		if seenLanes[lane.Key] {
			return Snapshot{}, fmt.Errorf("%w: %s", models.ErrDuplicateLane, lane.Key)
		}
		seenLanes[lane.Key] = true

		items := slices.Clone(lane.Items)
		for _, item := range items {
			if seenItems[item.Key] {
				return Snapshot{}, fmt.Errorf("%w: %s", models.ErrDuplicateItem, item.Key)
			}
			seenItems[item.Key] = true
		}
		renumber(items)

		out[i] = models.Lane{Key: lane.Key, Title: lane.Title, Items: items}
	}

	return Snapshot{lanes: out}, nil
}

// Lanes returns a deep copy of every lane in board order.
func (s Snapshot) Lanes() []models.Lane {
	out := make([]models.Lane, len(s.lanes))
	for i, lane := range s.lanes {
		out[i] = copyLane(lane)
	}
	return out
}

// Lane returns a copy of the lane with the given key.
func (s Snapshot) Lane(key string) (models.Lane, bool) {
	idx := s.laneIndex(key)
	if idx < 0 {
		return models.Lane{}, false
	}
	return copyLane(s.lanes[idx]), true
}

// Items returns a copy of a lane's items, or nil if the lane does not exist.
func (s Snapshot) Items(laneKey string) []models.Item {
	idx := s.laneIndex(laneKey)
	if idx < 0 {
		return nil
	}
	return slices.Clone(s.lanes[idx].Items)
}

// LaneKeys returns the lane keys in board order.
func (s Snapshot) LaneKeys() []string {
	keys := make([]string, len(s.lanes))
	for i, lane := range s.lanes {
		keys[i] = lane.Key
	}
	return keys
}

// LaneCount returns the number of lanes.
func (s Snapshot) LaneCount() int {
	return len(s.lanes)
}

// ItemCount returns the number of items across all lanes.
func (s Snapshot) ItemCount() int {
	n := 0
	for _, lane := range s.lanes {
		n += len(lane.Items)
	}
	return n
}

// FindItem locates an item by key.
func (s Snapshot) FindItem(key string) (laneKey string, index int, ok bool) {
	for _, lane := range s.lanes {
		for i, item := range lane.Items {
			if item.Key == key {
				return lane.Key, i, true
			}
		}
	}
	return "", -1, false
}

// Item returns a copy of the item with the given key.
func (s Snapshot) Item(key string) (models.Item, bool) {
	laneKey, idx, ok := s.FindItem(key)
	if !ok {
		return models.Item{}, false
	}
	return s.lanes[s.laneIndex(laneKey)].Items[idx], true
}

// Equal reports whether two snapshots hold the same lanes and items.
func (s Snapshot) Equal(other Snapshot) bool {
	return slices.EqualFunc(s.lanes, other.lanes, func(a, b models.Lane) bool {
		return a.Key == b.Key && a.Title == b.Title && slices.Equal(a.Items, b.Items)
	})
}

func (s Snapshot) laneIndex(key string) int {
	return slices.IndexFunc(s.lanes, func(l models.Lane) bool {
		return l.Key == key
	})
}

// clone copies the lane slice. Item slices stay shared until an operation
// replaces the ones it touches.
func (s Snapshot) clone() Snapshot {
	return Snapshot{lanes: slices.Clone(s.lanes)}
}

func copyLane(lane models.Lane) models.Lane {
	return models.Lane{Key: lane.Key, Title: lane.Title, Items: slices.Clone(lane.Items)}
}

// renumber sets Order to each item's index.
func renumber(items []models.Item) {
	for i := range items {
		items[i].Order = i
	}
}
