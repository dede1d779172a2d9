package tui

import (
	"context"
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/lanekit/internal/app"
	"github.com/thenoetrevino/lanekit/internal/board"
	"github.com/thenoetrevino/lanekit/internal/config"
	"github.com/thenoetrevino/lanekit/internal/models"
	"github.com/thenoetrevino/lanekit/internal/tui/state"
)

// Model represents the application state for the TUI
type Model struct {
	ctx    context.Context
	app    *app.App
	keys   config.KeyMappings
	styles *Styles

	// snapshot is the board as last loaded or returned by the service
	snapshot board.Snapshot

	uiState           *state.UIState
	dragState         *state.DragState
	inputState        *state.InputState
	notificationState *state.NotificationState
}

// InitialModel creates and initializes the TUI model with the persisted board
func InitialModel(ctx context.Context, a *app.App) Model {
	cfg := a.Config

	m := Model{
		ctx:               ctx,
		app:               a,
		keys:              cfg.KeyMappings,
		styles:            NewStyles(cfg.ColorScheme, cfg.Layout.CardWidth),
		uiState:           state.NewUIState(cfg.Layout.CardWidth),
		dragState:         state.NewDragState(),
		inputState:        state.NewInputState(),
		notificationState: state.NewNotificationState(),
	}

	snap, err := a.BoardService.GetBoard(ctx)
	if err != nil {
		slog.Error("failed to load board", "error", err)
		m.notificationState.Error("Failed to load board: " + err.Error())
	}
	m.snapshot = snap

	return m
}

// Run starts the TUI and blocks until the user quits
func Run(ctx context.Context, a *app.App) error {
	p := tea.NewProgram(InitialModel(ctx, a), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

// Init initializes the Bubble Tea application
// Required by tea.Model interface
func (m Model) Init() tea.Cmd {
	return nil
}

// lanes returns the lanes of the current snapshot
func (m Model) lanes() []models.Lane {
	return m.snapshot.Lanes()
}

// currentLane returns the selected lane
func (m Model) currentLane() (models.Lane, bool) {
	lanes := m.lanes()
	idx := m.uiState.SelectedLane()
	if idx < 0 || idx >= len(lanes) {
		return models.Lane{}, false
	}
	return lanes[idx], true
}

// currentItem returns the selected item, if the selected lane has one
func (m Model) currentItem() (models.Item, bool) {
	lane, ok := m.currentLane()
	if !ok {
		return models.Item{}, false
	}
	idx := m.uiState.SelectedItem()
	if idx < 0 || idx >= len(lane.Items) {
		return models.Item{}, false
	}
	return lane.Items[idx], true
}

// setSnapshot replaces the board and keeps the selection in bounds
func (m *Model) setSnapshot(snap board.Snapshot) {
	m.snapshot = snap
	m.clampSelection()
}

// clampSelection keeps the selected lane and item within the board
func (m *Model) clampSelection() {
	lanes := m.lanes()
	if len(lanes) == 0 {
		m.uiState.SetSelectedLane(0)
		m.uiState.SetSelectedItem(0)
		m.uiState.ClampViewport(0)
		return
	}

	laneIdx := max(0, min(m.uiState.SelectedLane(), len(lanes)-1))
	m.uiState.SetSelectedLane(laneIdx)

	items := lanes[laneIdx].Items
	m.uiState.SetSelectedItem(max(0, min(m.uiState.SelectedItem(), len(items)-1)))

	m.uiState.ClampViewport(len(lanes))
	m.uiState.EnsureLaneVisible(laneIdx)
	m.uiState.EnsureItemVisible(lanes[laneIdx].Key, m.uiState.SelectedItem(), m.visibleCardCount())
}

// selectItem moves the selection to (laneKey, index)
func (m *Model) selectItem(laneKey string, index int) {
	for i, lane := range m.lanes() {
		if lane.Key == laneKey {
			m.uiState.SetSelectedLane(i)
			m.uiState.SetSelectedItem(index)
			break
		}
	}
	m.clampSelection()
}

// visibleCardCount is how many cards fit vertically in a lane.
// Each card takes 3 lines plus the lane title and border.
func (m Model) visibleCardCount() int {
	return max(1, (m.uiState.ContentHeight()-3)/3)
}
