package tui

import (
	"fmt"
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/lanekit/internal/models"
	boardservice "github.com/thenoetrevino/lanekit/internal/services/board"
	"github.com/thenoetrevino/lanekit/internal/tui/state"
)

// updateAddItem handles the new item prompt
func (m Model) updateAddItem(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		switch keyMsg.String() {
		case "esc":
			m.inputState.Clear()
			m.uiState.SetMode(state.NormalMode)
			return m, nil
		case "enter":
			return m.submitAddItem()
		}
	}

	var cmd tea.Cmd
	m.inputState.Input, cmd = m.inputState.Input.Update(msg)
	return m, cmd
}

// submitAddItem appends the typed item to the prompt's lane
func (m Model) submitAddItem() (tea.Model, tea.Cmd) {
	laneKey := m.inputState.LaneKey
	title := m.inputState.TrimmedValue()
	m.inputState.Clear()
	m.uiState.SetMode(state.NormalMode)

	if title == "" {
		m.notificationState.Error("Item title cannot be empty")
		return m, nil
	}

	item, snap, err := m.app.BoardService.AddItem(m.ctx, boardservice.AddItemRequest{
		LaneKey: laneKey,
		Title:   title,
		Index:   models.AppendIndex,
	})
	if err != nil {
		slog.Error("failed to add item", "error", err)
		m.notificationState.Error("Failed to add item: " + err.Error())
		return m, nil
	}

	m.setSnapshot(snap)
	m.selectItem(laneKey, item.Order)
	m.notificationState.Info(fmt.Sprintf("Added %s", item.Key))
	return m, nil
}

// updateDeleteConfirm handles the delete confirmation dialog
func (m Model) updateDeleteConfirm(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		m.uiState.SetMode(state.NormalMode)
		item, ok := m.currentItem()
		if !ok {
			return m, nil
		}

		snap, err := m.app.BoardService.DeleteItem(m.ctx, item.Key)
		if err != nil {
			slog.Error("failed to delete item", "error", err)
			m.notificationState.Error("Failed to delete item: " + err.Error())
			return m, nil
		}
		m.setSnapshot(snap)
		m.notificationState.Info(fmt.Sprintf("Deleted %s", item.Key))

	case "n", "N", "esc":
		m.uiState.SetMode(state.NormalMode)
	}
	return m, nil
}
