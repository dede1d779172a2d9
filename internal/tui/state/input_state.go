package state

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	"github.com/thenoetrevino/lanekit/internal/models"
)

// InputState holds the single-line prompt used to add items.
type InputState struct {
	Input textinput.Model

	// LaneKey is the lane the new item goes into
	LaneKey string
}

// NewInputState creates an InputState with an unfocused text input.
func NewInputState() *InputState {
	ti := textinput.New()
	ti.Placeholder = "Item title"
	ti.CharLimit = models.MaxTitleLength
	return &InputState{Input: ti}
}

// Start clears the prompt and targets laneKey.
func (s *InputState) Start(laneKey string) {
	s.LaneKey = laneKey
	s.Input.Reset()
}

// Clear resets the prompt.
func (s *InputState) Clear() {
	s.LaneKey = ""
	s.Input.Reset()
	s.Input.Blur()
}

// TrimmedValue returns the typed text without surrounding whitespace.
func (s *InputState) TrimmedValue() string {
	return strings.TrimSpace(s.Input.Value())
}

// IsEmpty reports whether only whitespace has been typed.
func (s *InputState) IsEmpty() bool {
	return s.TrimmedValue() == ""
}
