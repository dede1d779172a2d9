package board

import (
	"fmt"
	"slices"

	"github.com/thenoetrevino/lanekit/internal/models"
)

// AddLane inserts a lane at index (clamped; models.AppendIndex appends).
func AddLane(s Snapshot, lane models.Lane, index int) (Snapshot, error) {
	if s.laneIndex(lane.Key) >= 0 {
		return s, fmt.Errorf("%w: %s", models.ErrDuplicateLane, lane.Key)
	}
	for _, item := range lane.Items {
		if _, _, ok := s.FindItem(item.Key); ok {
			return s, fmt.Errorf("%w: %s", models.ErrDuplicateItem, item.Key)
		}
	}

	lane = copyLane(lane)
	renumber(lane.Items)

	if index == models.AppendIndex {
		index = len(s.lanes)
	}
	next := Snapshot{lanes: slices.Insert(slices.Clone(s.lanes), clampIndex(index, len(s.lanes)), lane)}
	return next, nil
}

// AddItem inserts item into a lane at index (clamped; models.AppendIndex
// appends) and renumbers the lane.
func AddItem(s Snapshot, laneKey string, item models.Item, index int) (Snapshot, error) {
	idx := s.laneIndex(laneKey)
	if idx < 0 {
		return s, fmt.Errorf("%w: %s", models.ErrLaneNotFound, laneKey)
	}
	if _, _, ok := s.FindItem(item.Key); ok {
		return s, fmt.Errorf("%w: %s", models.ErrDuplicateItem, item.Key)
	}

	items := slices.Clone(s.lanes[idx].Items)
	if index == models.AppendIndex {
		index = len(items)
	}
	items = slices.Insert(items, clampIndex(index, len(items)), item)
	renumber(items)

	next := s.clone()
	next.lanes[idx].Items = items
	return next, nil
}

// UpdateItem applies fn to a copy of the item. The item's Key and Order
// cannot be changed this way.
func UpdateItem(s Snapshot, key string, fn func(*models.Item)) (Snapshot, error) {
	laneKey, pos, ok := s.FindItem(key)
	if !ok {
		return s, fmt.Errorf("%w: %s", models.ErrItemNotFound, key)
	}
	idx := s.laneIndex(laneKey)

	items := slices.Clone(s.lanes[idx].Items)
	updated := items[pos]
	fn(&updated)
	updated.Key = items[pos].Key
	updated.Order = items[pos].Order
	items[pos] = updated

	next := s.clone()
	next.lanes[idx].Items = items
	return next, nil
}

// DeleteItem removes an item and renumbers its lane.
// The removed item is returned.
func DeleteItem(s Snapshot, key string) (Snapshot, models.Item, error) {
	laneKey, pos, ok := s.FindItem(key)
	if !ok {
		return s, models.Item{}, fmt.Errorf("%w: %s", models.ErrItemNotFound, key)
	}
	idx := s.laneIndex(laneKey)

	removed := s.lanes[idx].Items[pos]
	items := slices.Delete(slices.Clone(s.lanes[idx].Items), pos, pos+1)
	renumber(items)

	next := s.clone()
	next.lanes[idx].Items = items
	return next, removed, nil
}

// TouchedLanes returns the keys of lanes whose items differ between two
// snapshots, in the order they appear in after.
func TouchedLanes(before, after Snapshot) []string {
	var keys []string
	for _, lane := range after.lanes {
		prev, ok := before.Lane(lane.Key)
		if !ok || prev.Title != lane.Title || !slices.Equal(prev.Items, lane.Items) {
			keys = append(keys, lane.Key)
		}
	}
	return keys
}
