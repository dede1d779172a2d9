package board

import "github.com/thenoetrevino/lanekit/internal/models"

// Phase is a state of the drag gesture state machine:
// Idle -> Dragging -> (DroppedValid | DroppedCancelled) -> Idle.
// The dropped phases are only ever reported by LastOutcome; a Drag is back
// to Idle as soon as Drop or Cancel returns.
type Phase int

const (
	Idle Phase = iota
	Dragging
	DroppedValid
	DroppedCancelled
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Dragging:
		return "dragging"
	case DroppedValid:
		return "dropped-valid"
	case DroppedCancelled:
		return "dropped-cancelled"
	default:
		return "unknown"
	}
}

// Location is a slot on the board.
type Location struct {
	Lane  string
	Index int
}

// Drag tracks one drag gesture at a time.
type Drag struct {
	phase  Phase
	source Location
	last   Phase
}

// Begin picks up the item at (lane, index).
func (d *Drag) Begin(lane string, index int) error {
	if d.phase == Dragging {
		return models.ErrDragInProgress
	}
	d.phase = Dragging
	d.source = Location{Lane: lane, Index: index}
	return nil
}

// Source returns where the current gesture started.
func (d *Drag) Source() (Location, bool) {
	if d.phase != Dragging {
		return Location{}, false
	}
	return d.source, true
}

// Drop ends the gesture. A nil dest cancels it and yields a nil move, which
// Move treats as a no-op.
func (d *Drag) Drop(dest *Location) (*models.Move, error) {
	if d.phase != Dragging {
		return nil, models.ErrNotDragging
	}
	d.phase = Idle

	if dest == nil {
		d.last = DroppedCancelled
		return nil, nil
	}

	d.last = DroppedValid
	return &models.Move{
		SourceLane:  d.source.Lane,
		SourceIndex: d.source.Index,
		DestLane:    dest.Lane,
		DestIndex:   dest.Index,
	}, nil
}

// Cancel abandons the gesture, if any.
func (d *Drag) Cancel() {
	if d.phase != Dragging {
		return
	}
	d.phase = Idle
	d.last = DroppedCancelled
}

// Phase returns Idle or Dragging.
func (d *Drag) Phase() Phase {
	return d.phase
}

// LastOutcome returns how the most recent gesture ended, or Idle if none has.
func (d *Drag) LastOutcome() Phase {
	return d.last
}
