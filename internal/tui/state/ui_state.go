package state

// Mode represents the current interaction mode of the TUI.
// Each mode determines which keyboard shortcuts are active and what UI is displayed.
type Mode int

const (
	NormalMode        Mode = iota // Default navigation mode
	DragMode                      // Carrying an item to a new slot
	AddItemMode                   // Typing the title of a new item
	DeleteConfirmMode             // Confirming item deletion
	HelpMode                      // Displaying help screen
)

func (m Mode) String() string {
	switch m {
	case NormalMode:
		return "NORMAL"
	case DragMode:
		return "DRAG"
	case AddItemMode:
		return "ADD"
	case DeleteConfirmMode:
		return "DELETE"
	case HelpMode:
		return "HELP"
	default:
		return "?"
	}
}

// ViewKind selects between the kanban board and the flat list view.
type ViewKind int

const (
	BoardView ViewKind = iota
	ListView
)

// defaultLaneWidth is the width of one rendered lane including spacing:
// 40 content + 2 padding + 2 border + 2 spacing
const defaultLaneWidth = 46

// reservedWidth is kept free for margins and scroll indicators
const reservedWidth = 4

// UIState manages the user interface state.
// This includes navigation (lane/item selection), viewport scrolling,
// terminal dimensions, and the current interaction mode.
type UIState struct {
	selectedLane int
	selectedItem int

	// width and height are the terminal size in cells
	width  int
	height int

	mode Mode
	view ViewKind

	// viewportOffset is the index of the leftmost visible lane
	viewportOffset int

	// viewportSize is the number of lanes that fit on the screen
	viewportSize int

	// laneWidth is the rendered width of one lane, in cells
	laneWidth int

	// itemScrollOffsets tracks the vertical scroll offset per lane key
	itemScrollOffsets map[string]int
}

// NewUIState creates a new UIState with default values.
// laneWidth <= 0 uses the default lane width.
func NewUIState(laneWidth int) *UIState {
	if laneWidth <= 0 {
		laneWidth = defaultLaneWidth
	}
	return &UIState{
		mode:              NormalMode,
		view:              BoardView,
		viewportSize:      1, // Recalculated when width is set
		laneWidth:         laneWidth,
		itemScrollOffsets: make(map[string]int),
	}
}

// SelectedLane returns the index of the currently selected lane.
func (s *UIState) SelectedLane() int {
	return s.selectedLane
}

// SetSelectedLane updates the selected lane index.
func (s *UIState) SetSelectedLane(index int) {
	s.selectedLane = index
}

// SelectedItem returns the index of the currently selected item.
func (s *UIState) SelectedItem() int {
	return s.selectedItem
}

// SetSelectedItem updates the selected item index.
func (s *UIState) SetSelectedItem(index int) {
	s.selectedItem = index
}

// Width returns the current terminal width.
func (s *UIState) Width() int {
	return s.width
}

// SetWidth updates the terminal width and recalculates viewport size.
func (s *UIState) SetWidth(width int) {
	s.width = width
	s.calculateViewportSize()
}

// Height returns the current terminal height.
func (s *UIState) Height() int {
	return s.height
}

// SetHeight updates the terminal height.
func (s *UIState) SetHeight(height int) {
	s.height = height
}

// ContentHeight returns the available height for the main content area.
// This is terminal height minus header and status bar, ensuring a minimum of 5.
func (s *UIState) ContentHeight() int {
	const headerHeight = 2    // title + gap line
	const statusBarHeight = 2 // status bar + gap line
	return max(s.height-headerHeight-statusBarHeight, 5)
}

// Mode returns the current interaction mode.
func (s *UIState) Mode() Mode {
	return s.mode
}

// SetMode updates the current interaction mode.
func (s *UIState) SetMode(mode Mode) {
	s.mode = mode
}

// View returns which view is shown.
func (s *UIState) View() ViewKind {
	return s.view
}

// ToggleView switches between the board and the list view.
func (s *UIState) ToggleView() {
	if s.view == BoardView {
		s.view = ListView
	} else {
		s.view = BoardView
	}
}

// LaneWidth returns the rendered width of one lane.
func (s *UIState) LaneWidth() int {
	return s.laneWidth
}

// ViewportOffset returns the index of the leftmost visible lane.
func (s *UIState) ViewportOffset() int {
	return s.viewportOffset
}

// SetViewportOffset updates the viewport offset.
func (s *UIState) SetViewportOffset(offset int) {
	s.viewportOffset = offset
}

// ViewportSize returns the number of lanes that fit on screen.
func (s *UIState) ViewportSize() int {
	return s.viewportSize
}

// calculateViewportSize calculates how many lanes fit in the terminal width,
// always at least one.
func (s *UIState) calculateViewportSize() {
	if s.width == 0 {
		s.viewportSize = 1
		return
	}

	availableWidth := s.width - reservedWidth
	s.viewportSize = max(1, availableWidth/s.laneWidth)
}

// ClampViewport keeps the viewport within bounds after lanes change.
func (s *UIState) ClampViewport(lanesLen int) {
	if lanesLen == 0 {
		s.viewportOffset = 0
		return
	}
	if s.viewportOffset+s.viewportSize > lanesLen {
		s.viewportOffset = max(0, lanesLen-s.viewportSize)
	}
}

// ScrollViewportLeft scrolls the viewport one lane to the left.
// Returns true if scrolling occurred, false if already at leftmost position.
func (s *UIState) ScrollViewportLeft() bool {
	if s.viewportOffset > 0 {
		s.viewportOffset--
		return true
	}
	return false
}

// ScrollViewportRight scrolls the viewport one lane to the right.
// Returns true if scrolling occurred, false if already at rightmost position.
func (s *UIState) ScrollViewportRight(lanesLen int) bool {
	if s.viewportOffset+s.viewportSize < lanesLen {
		s.viewportOffset++
		return true
	}
	return false
}

// EnsureLaneVisible adjusts the viewport so that lane is on screen.
// This should be called after navigation or when the selection changes.
func (s *UIState) EnsureLaneVisible(lane int) {
	if lane < s.viewportOffset {
		s.viewportOffset = lane
	}
	if lane >= s.viewportOffset+s.viewportSize {
		s.viewportOffset = lane - s.viewportSize + 1
	}
}

// ItemScrollOffset returns the vertical scroll offset for a lane.
func (s *UIState) ItemScrollOffset(laneKey string) int {
	return s.itemScrollOffsets[laneKey]
}

// EnsureItemVisible adjusts the scroll offset of a lane so that index is
// within the visibleCount rows shown.
func (s *UIState) EnsureItemVisible(laneKey string, index, visibleCount int) {
	offset := s.itemScrollOffsets[laneKey]

	if index < offset {
		offset = index
	}
	if index >= offset+visibleCount {
		offset = index - visibleCount + 1
	}
	s.itemScrollOffsets[laneKey] = max(0, offset)
}
