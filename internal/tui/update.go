package tui

import (
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/lanekit/internal/tui/state"
)

// Update handles all messages and updates the model accordingly
// This implements the "Update" part of the Model-View-Update pattern
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		m.uiState.SetWidth(msg.Width)
		m.uiState.SetHeight(msg.Height)
		m.clampSelection()
		return m, nil
	}

	// The add item prompt consumes everything, including cursor blinks
	if m.uiState.Mode() == state.AddItemMode {
		return m.updateAddItem(msg)
	}

	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, nil
	}

	switch m.uiState.Mode() {
	case state.DragMode:
		return m.updateDrag(keyMsg)
	case state.DeleteConfirmMode:
		return m.updateDeleteConfirm(keyMsg)
	case state.HelpMode:
		m.uiState.SetMode(state.NormalMode)
		return m, nil
	default:
		return m.updateNormal(keyMsg)
	}
}
