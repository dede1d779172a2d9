package tui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/lanekit/internal/tui/state"
)

// View renders the current state of the application
// This implements the "View" part of the Model-View-Update pattern
func (m Model) View() tea.View {
	var view tea.View
	view.AltScreen = true

	// Wait for terminal size to be initialized
	if m.uiState.Width() == 0 {
		view.Content = "Loading..."
		return view
	}

	switch m.uiState.Mode() {
	case state.AddItemMode:
		view.Content = m.placeDialog(m.styles.InputBox.Render(
			fmt.Sprintf("New item in %s\n\n%s", m.inputState.LaneKey, m.inputState.Input.View()),
		))
		return view
	case state.DeleteConfirmMode:
		item, _ := m.currentItem()
		view.Content = m.placeDialog(m.styles.DeleteBox.Render(
			fmt.Sprintf("Delete %q?\n\n[y]es  [n]o", item.Title),
		))
		return view
	case state.HelpMode:
		view.Content = m.placeDialog(m.styles.HelpBox.Render(m.helpText()))
		return view
	}

	var body string
	if m.uiState.View() == state.ListView {
		body = m.renderList()
	} else {
		body = m.renderBoard()
	}

	view.Content = lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		"",
		body,
		"",
		m.renderStatusBar(),
	)
	return view
}

// placeDialog centers content on the screen
func (m Model) placeDialog(content string) string {
	return lipgloss.Place(
		m.uiState.Width(), m.uiState.Height(),
		lipgloss.Center, lipgloss.Center,
		content,
	)
}

func (m Model) renderHeader() string {
	name := "board"
	if m.uiState.View() == state.ListView {
		name = "list"
	}
	return m.styles.Header.Render("lanekit") + m.styles.Subtle.Render(" · "+name)
}

// renderStatusBar shows the mode badge and the current notification
func (m Model) renderStatusBar() string {
	badge := m.styles.ModeBadge.Render(m.uiState.Mode().String())

	msg, isErr := m.notificationState.Message()
	if msg == "" {
		msg = fmt.Sprintf("%s for help", m.keys.ShowHelp)
	}
	text := " " + msg
	if isErr {
		text = m.styles.ErrorText.Render(text)
	}

	line := badge + text
	pad := max(0, m.uiState.Width()-lipgloss.Width(line))
	return m.styles.StatusBar.Render(line + strings.Repeat(" ", pad))
}

func (m Model) helpText() string {
	k := m.keys
	rows := [][2]string{
		{k.PrevLane + "/" + k.NextLane, "previous/next lane"},
		{k.PrevItem + "/" + k.NextItem, "previous/next item"},
		{k.ScrollViewportLeft + "/" + k.ScrollViewportRight, "scroll lanes"},
		{k.PickUp, "pick up item"},
		{k.Drop, "drop item"},
		{k.Cancel, "cancel move"},
		{k.AddItem, "add item"},
		{k.DeleteItem, "delete item"},
		{k.ToggleView, "toggle board/list"},
		{k.Quit, "quit"},
	}

	var b strings.Builder
	b.WriteString(m.styles.Header.Render("Keys"))
	b.WriteString("\n\n")
	for _, row := range rows {
		fmt.Fprintf(&b, "%-10s %s\n", row[0], row[1])
	}
	b.WriteString("\n")
	b.WriteString(m.styles.Subtle.Render("press any key to close"))
	return b.String()
}
