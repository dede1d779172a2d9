package tui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/lanekit/internal/models"
)

// renderBoard renders the lanes inside the horizontal viewport
func (m Model) renderBoard() string {
	lanes := m.lanes()
	if len(lanes) == 0 {
		return m.styles.Subtle.Render("No lanes yet. Create one with: lanekit lane add --key todo --title Todo")
	}

	start := m.uiState.ViewportOffset()
	end := min(start+m.uiState.ViewportSize(), len(lanes))

	rendered := make([]string, 0, end-start+2)
	if start > 0 {
		rendered = append(rendered, m.styles.Subtle.Render("◀"))
	}
	for i := start; i < end; i++ {
		rendered = append(rendered, m.renderLane(i, lanes[i]))
	}
	if end < len(lanes) {
		rendered = append(rendered, m.styles.Subtle.Render("▶"))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

// renderLane renders one lane with its visible cards and, while dragging,
// the drop marker.
func (m Model) renderLane(idx int, lane models.Lane) string {
	dragging := m.dragState.Active()
	target := m.dragState.Target()
	source, _ := m.dragState.Source()

	title := m.styles.LaneTitle.Render(fmt.Sprintf("%s (%d)", lane.Title, len(lane.Items)))
	parts := []string{title}

	offset := m.uiState.ItemScrollOffset(lane.Key)
	visible := m.visibleCardCount()
	end := min(offset+visible, len(lane.Items))
	if offset > 0 {
		parts = append(parts, m.styles.Subtle.Render("▲"))
	}

	// Target indexes count slots with the carried item already removed
	inSource := dragging && lane.Key == source.Lane
	slots := len(lane.Items)
	if inSource {
		slots--
	}
	for i := offset; i < end; i++ {
		item := lane.Items[i]
		isSource := inSource && i == source.Index

		pos := i
		if inSource && source.Index < i {
			pos--
		}
		if dragging && !isSource && lane.Key == target.Lane && pos == target.Index {
			parts = append(parts, m.dropMarker())
		}

		parts = append(parts, m.renderCard(idx, i, item, isSource))
	}
	if dragging && lane.Key == target.Lane && target.Index >= slots && end == len(lane.Items) {
		parts = append(parts, m.dropMarker())
	}

	if end < len(lane.Items) {
		parts = append(parts, m.styles.Subtle.Render("▼"))
	}

	style := m.styles.Lane
	if idx == m.uiState.SelectedLane() {
		style = m.styles.SelectedLane
	}
	return style.Height(m.uiState.ContentHeight()).Render(strings.Join(parts, "\n"))
}

func (m Model) renderCard(laneIdx, itemIdx int, item models.Item, carried bool) string {
	style := m.styles.Card
	switch {
	case carried:
		style = m.styles.DraggedCard
	case laneIdx == m.uiState.SelectedLane() && itemIdx == m.uiState.SelectedItem():
		style = m.styles.SelectedCard
	}
	return style.Render(item.Title)
}

func (m Model) dropMarker() string {
	return m.styles.DropMarker.Render("▸ drop here")
}
