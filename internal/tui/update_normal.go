package tui

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/lanekit/internal/tui/state"
)

// updateNormal handles keys in NormalMode
func (m Model) updateNormal(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	switch key {
	case m.keys.Quit, "ctrl+c":
		return m, tea.Quit

	case m.keys.PrevLane, "left":
		m.navigateLane(-1)
	case m.keys.NextLane, "right":
		m.navigateLane(1)
	case m.keys.PrevItem, "up":
		m.navigateItem(-1)
	case m.keys.NextItem, "down":
		m.navigateItem(1)

	case m.keys.ScrollViewportLeft:
		m.uiState.ScrollViewportLeft()
	case m.keys.ScrollViewportRight:
		m.uiState.ScrollViewportRight(m.snapshot.LaneCount())

	case m.keys.PickUp:
		return m.handlePickUp()
	case m.keys.AddItem:
		return m.handleAddItem()
	case m.keys.DeleteItem:
		if _, ok := m.currentItem(); ok {
			m.uiState.SetMode(state.DeleteConfirmMode)
		}

	case m.keys.ToggleView:
		m.uiState.ToggleView()
	case m.keys.ShowHelp:
		m.uiState.SetMode(state.HelpMode)
	}

	return m, nil
}

// navigateLane moves the selection delta lanes, keeping the item index
func (m *Model) navigateLane(delta int) {
	next := m.uiState.SelectedLane() + delta
	if next < 0 || next >= m.snapshot.LaneCount() {
		return
	}
	m.uiState.SetSelectedLane(next)
	m.notificationState.Clear()
	m.clampSelection()
}

// navigateItem moves the selection delta items within the lane
func (m *Model) navigateItem(delta int) {
	lane, ok := m.currentLane()
	if !ok {
		return
	}
	next := m.uiState.SelectedItem() + delta
	if next < 0 || next >= len(lane.Items) {
		return
	}
	m.uiState.SetSelectedItem(next)
	m.clampSelection()
}

// handlePickUp starts dragging the selected item
func (m Model) handlePickUp() (tea.Model, tea.Cmd) {
	lane, ok := m.currentLane()
	if !ok {
		return m, nil
	}
	item, ok := m.currentItem()
	if !ok {
		return m, nil
	}

	if err := m.dragState.Begin(lane.Key, m.uiState.SelectedItem(), item.Key); err != nil {
		m.notificationState.Error(err.Error())
		return m, nil
	}
	m.uiState.SetMode(state.DragMode)
	m.notificationState.Info(fmt.Sprintf("Moving %q", item.Title))
	return m, nil
}

// handleAddItem opens the title prompt for the selected lane
func (m Model) handleAddItem() (tea.Model, tea.Cmd) {
	lane, ok := m.currentLane()
	if !ok {
		m.notificationState.Error("Add a lane first: lanekit lane add")
		return m, nil
	}
	m.inputState.Start(lane.Key)
	m.uiState.SetMode(state.AddItemMode)
	return m, m.inputState.Input.Focus()
}
