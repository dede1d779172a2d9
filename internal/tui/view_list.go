package tui

import (
	"fmt"
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/lanekit/internal/models"
)

// listRow is one item with the lane it belongs to
type listRow struct {
	laneIdx int
	lane    models.Lane
	itemIdx int
	item    models.Item
}

// listColumn is a column of the list view resolved to terminal cells
type listColumn struct {
	id    string
	title string
	cells int
}

// renderList renders every item as a table row. Which columns are shown is
// decided by the breakpoint calculator for the current terminal width.
func (m Model) renderList() string {
	cols := m.visibleListColumns()

	var rows []listRow
	for li, lane := range m.lanes() {
		for ii, item := range lane.Items {
			rows = append(rows, listRow{laneIdx: li, lane: lane, itemIdx: ii, item: item})
		}
	}

	lines := make([]string, 0, len(rows)+2)
	lines = append(lines, m.styles.ListHeader.Render(m.renderListLine(cols, func(c listColumn) string {
		return c.title
	})))

	if len(rows) == 0 {
		lines = append(lines, m.styles.Subtle.Render("No items"))
	}
	for _, row := range rows {
		selected := row.laneIdx == m.uiState.SelectedLane() && row.itemIdx == m.uiState.SelectedItem()
		line := m.renderListLine(cols, func(c listColumn) string {
			return listCell(c.id, row, selected)
		})
		if selected {
			lines = append(lines, m.styles.SelectedRow.Render(line))
		} else {
			lines = append(lines, m.styles.ListRow.Render(line))
		}
	}

	total := len(m.app.Layout.Columns())
	if hidden := total - countDataColumns(cols); hidden > 0 {
		lines = append(lines, "", m.styles.Subtle.Render(fmt.Sprintf("%d of %d columns hidden", hidden, total)))
	}

	return strings.Join(lines, "\n")
}

// visibleListColumns maps the visible column IDs for the terminal width to
// their titles and cell widths.
func (m Model) visibleListColumns() []listColumn {
	cfg := m.app.Config.Layout
	opts := m.app.Layout.Options()
	ppc := max(1, cfg.PixelsPerCell)

	defs := make(map[string]models.Column)
	for _, col := range m.app.Layout.Columns() {
		defs[col.ID] = col
	}

	ids := m.app.Layout.Visible(m.app.ViewportPixels(m.uiState.Width()))
	cols := make([]listColumn, 0, len(ids))
	for _, id := range ids {
		switch id {
		case models.SelectionColumnID:
			cols = append(cols, listColumn{id: id, cells: max(4, opts.SelectionWidth/ppc)})
		case models.OverflowColumnID:
			cols = append(cols, listColumn{id: id, cells: max(2, opts.OverflowWidth/ppc)})
		default:
			def := defs[id]
			cols = append(cols, listColumn{
				id:    id,
				title: def.Title,
				cells: max(3, def.Width(opts.DefaultMinWidth)/ppc),
			})
		}
	}
	return cols
}

// renderListLine lays out one row, each cell truncated to its column
func (m Model) renderListLine(cols []listColumn, value func(listColumn) string) string {
	cells := make([]string, len(cols))
	for i, c := range cols {
		cells[i] = lipgloss.NewStyle().
			Width(c.cells).
			MaxWidth(c.cells).
			PaddingRight(1).
			Render(value(c))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

// unknownCell fills columns that name no item field
const unknownCell = "?"

// listCell returns the text of column id for a row
func listCell(id string, row listRow, selected bool) string {
	switch id {
	case models.SelectionColumnID:
		if selected {
			return "[x]"
		}
		return "[ ]"
	case models.OverflowColumnID:
		return "⋯"
	case models.KeyColumnID:
		return row.item.Key
	case models.TitleColumnID:
		return row.item.Title
	case models.LaneColumnID:
		return row.lane.Title
	case models.OrderColumnID:
		return strconv.Itoa(row.item.Order)
	case models.DescriptionColumnID:
		first, _, _ := strings.Cut(row.item.Description, "\n")
		return first
	default:
		// config.Load rejects other IDs; a calculator built by hand may still carry one
		return unknownCell
	}
}

func countDataColumns(cols []listColumn) int {
	n := 0
	for _, c := range cols {
		if c.id != models.SelectionColumnID && c.id != models.OverflowColumnID {
			n++
		}
	}
	return n
}
