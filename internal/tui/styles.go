package tui

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/lanekit/internal/config"
)

// Styles holds every lipgloss style the board and list views use.
// They are derived from the configured color scheme.
type Styles struct {
	Header    lipgloss.Style
	Subtle    lipgloss.Style
	LaneTitle lipgloss.Style

	// Lanes
	Lane         lipgloss.Style
	SelectedLane lipgloss.Style

	// Cards
	Card         lipgloss.Style
	SelectedCard lipgloss.Style
	DraggedCard  lipgloss.Style
	DropMarker   lipgloss.Style

	// List view
	ListHeader  lipgloss.Style
	ListRow     lipgloss.Style
	SelectedRow lipgloss.Style

	// Dialogs
	InputBox  lipgloss.Style
	DeleteBox lipgloss.Style
	HelpBox   lipgloss.Style

	// Status bar
	StatusBar lipgloss.Style
	ModeBadge lipgloss.Style
	ErrorText lipgloss.Style
}

// NewStyles builds styles for the given color scheme.
// laneWidth is the rendered width of one lane including spacing.
func NewStyles(colors config.ColorScheme, laneWidth int) *Styles {
	// 2 spacing + 2 border + 2 padding
	laneContent := max(10, laneWidth-6)

	lane := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colors.LaneBorder)).
		Padding(0, 1).
		MarginRight(2).
		Width(laneContent + 4)

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colors.CardBorder)).
		Background(lipgloss.Color(colors.CardBackground)).
		Foreground(lipgloss.Color(colors.Normal)).
		Padding(0, 1).
		Width(laneContent)

	dialog := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(1, 2).
		Width(50)

	return &Styles{
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(colors.Accent)),
		Subtle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colors.Subtle)),
		LaneTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(colors.Title)),

		Lane:         lane,
		SelectedLane: lane.BorderForeground(lipgloss.Color(colors.Accent)),

		Card: card,
		SelectedCard: card.
			BorderForeground(lipgloss.Color(colors.SelectedBorder)).
			Background(lipgloss.Color(colors.SelectedBg)),
		DraggedCard: card.
			BorderForeground(lipgloss.Color(colors.DragBorder)).
			Foreground(lipgloss.Color(colors.Subtle)),
		DropMarker: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(colors.DropTarget)),

		ListHeader: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(colors.Title)),
		ListRow: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colors.Normal)),
		SelectedRow: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colors.Normal)).
			Background(lipgloss.Color(colors.SelectedBg)),

		InputBox:  dialog.BorderForeground(lipgloss.Color(colors.Create)),
		DeleteBox: dialog.BorderForeground(lipgloss.Color(colors.Delete)),
		HelpBox:   dialog.BorderForeground(lipgloss.Color(colors.Accent)),

		StatusBar: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colors.StatusBarText)).
			Background(lipgloss.Color(colors.StatusBarBg)),
		ModeBadge: lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Foreground(lipgloss.Color(colors.StatusBarBg)).
			Background(lipgloss.Color(colors.Accent)),
		ErrorText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colors.ErrorFg)).
			Background(lipgloss.Color(colors.ErrorBg)),
	}
}
