package state

import (
	"github.com/thenoetrevino/lanekit/internal/board"
	"github.com/thenoetrevino/lanekit/internal/models"
)

// DragState tracks the drag gesture together with the slot the carried item
// would land in if dropped now.
type DragState struct {
	gesture board.Drag
	target  board.Location

	// itemKey is the carried item, so the drop still finds it if the board
	// changed underneath
	itemKey string
}

// NewDragState creates an idle DragState.
func NewDragState() *DragState {
	return &DragState{}
}

// Active reports whether an item is being carried.
func (s *DragState) Active() bool {
	return s.gesture.Phase() == board.Dragging
}

// Begin picks up the item key found at (lane, index). The target starts at
// the source.
func (s *DragState) Begin(lane string, index int, key string) error {
	if err := s.gesture.Begin(lane, index); err != nil {
		return err
	}
	s.target = board.Location{Lane: lane, Index: index}
	s.itemKey = key
	return nil
}

// ItemKey returns the key of the carried item, or "" when idle.
func (s *DragState) ItemKey() string {
	if !s.Active() {
		return ""
	}
	return s.itemKey
}

// Source returns where the gesture started.
func (s *DragState) Source() (board.Location, bool) {
	return s.gesture.Source()
}

// Target returns the slot the item would be dropped into.
func (s *DragState) Target() board.Location {
	return s.target
}

// SetTarget moves the drop slot.
func (s *DragState) SetTarget(loc board.Location) {
	s.target = loc
}

// Drop ends the gesture at the current target. The move names the carried
// item.
func (s *DragState) Drop() (*models.Move, error) {
	target := s.target
	move, err := s.gesture.Drop(&target)
	if err != nil {
		return nil, err
	}
	move.ItemKey = s.itemKey
	s.itemKey = ""
	return move, nil
}

// Cancel abandons the gesture. The resulting move is nil.
func (s *DragState) Cancel() (*models.Move, error) {
	s.itemKey = ""
	return s.gesture.Drop(nil)
}

// LastOutcome reports how the previous gesture ended.
func (s *DragState) LastOutcome() board.Phase {
	return s.gesture.LastOutcome()
}

// TargetSlots returns how many insertion slots a lane offers to the carried
// item: one more than its item count, or the same count for the source lane
// since the item leaves it first.
func (s *DragState) TargetSlots(laneKey string, itemCount int) int {
	if src, ok := s.Source(); ok && src.Lane == laneKey {
		return max(1, itemCount)
	}
	return itemCount + 1
}
