package models

// ============================================================================
// LAYOUT CONSTANTS
// ============================================================================

// Accessory column identifiers. They appear in breakpoint sets alongside
// user-defined column IDs.
const (
	SelectionColumnID = "_selection"
	OverflowColumnID  = "_overflow"
)

// Item field column identifiers. These are the data columns the list view
// knows how to fill from an item.
const (
	KeyColumnID         = "key"
	TitleColumnID       = "title"
	LaneColumnID        = "lane"
	OrderColumnID       = "order"
	DescriptionColumnID = "description"
)

// IsItemColumn reports whether id names an item field column.
func IsItemColumn(id string) bool {
	switch id {
	case KeyColumnID, TitleColumnID, LaneColumnID, OrderColumnID, DescriptionColumnID:
		return true
	}
	return false
}

// Default pixel widths used by the breakpoint calculator.
const (
	DefaultColumnMinWidth = 240
	DefaultSelectionWidth = 48
	DefaultOverflowWidth  = 48
	DefaultStaticSpacing  = 40
)

// ============================================================================
// BOARD CONSTANTS
// ============================================================================

// AppendIndex inserts an item after the last item of a lane.
const AppendIndex = -1

// MaxTitleLength is the longest item or lane title accepted by the service.
const MaxTitleLength = 255
