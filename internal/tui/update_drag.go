package tui

import (
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/lanekit/internal/board"
	"github.com/thenoetrevino/lanekit/internal/tui/state"
)

// updateDrag handles keys while an item is being carried.
// Movement keys move the drop target, not the selection.
func (m Model) updateDrag(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case m.keys.PrevLane, "left":
		m.moveTargetLane(-1)
	case m.keys.NextLane, "right":
		m.moveTargetLane(1)
	case m.keys.PrevItem, "up":
		m.moveTargetIndex(-1)
	case m.keys.NextItem, "down":
		m.moveTargetIndex(1)

	case m.keys.Drop:
		return m.handleDrop()
	case m.keys.Cancel:
		_, _ = m.dragState.Cancel()
		m.uiState.SetMode(state.NormalMode)
		m.notificationState.Info("Move cancelled")
	}

	return m, nil
}

// moveTargetLane shifts the drop target delta lanes.
// The target index is clamped to the slots the new lane offers.
func (m *Model) moveTargetLane(delta int) {
	lanes := m.lanes()
	target := m.dragState.Target()

	idx := -1
	for i, lane := range lanes {
		if lane.Key == target.Lane {
			idx = i
			break
		}
	}
	next := idx + delta
	if idx < 0 || next < 0 || next >= len(lanes) {
		return
	}

	lane := lanes[next]
	slots := m.dragState.TargetSlots(lane.Key, len(lane.Items))
	m.dragState.SetTarget(board.Location{
		Lane:  lane.Key,
		Index: min(target.Index, slots-1),
	})
	m.uiState.EnsureLaneVisible(next)
}

// moveTargetIndex shifts the drop target delta slots within its lane
func (m *Model) moveTargetIndex(delta int) {
	target := m.dragState.Target()
	lane, ok := m.snapshot.Lane(target.Lane)
	if !ok {
		return
	}

	slots := m.dragState.TargetSlots(lane.Key, len(lane.Items))
	next := target.Index + delta
	if next < 0 || next >= slots {
		return
	}
	target.Index = next
	m.dragState.SetTarget(target)
}

// handleDrop applies the carried item's move through the board service
func (m Model) handleDrop() (tea.Model, tea.Cmd) {
	m.uiState.SetMode(state.NormalMode)

	move, err := m.dragState.Drop()
	if err != nil {
		m.notificationState.Error(err.Error())
		return m, nil
	}

	snap, err := m.app.BoardService.MoveItem(m.ctx, move)
	if err != nil {
		slog.Error("failed to move item", "error", err)
		m.notificationState.Error("Failed to move item: " + err.Error())
		return m, nil
	}

	m.setSnapshot(snap)
	if lane, index, ok := snap.FindItem(move.ItemKey); ok {
		m.selectItem(lane, index)
	}
	m.notificationState.Clear()
	return m, nil
}
