package models

// Column describes one data column of a list/table view.
// The zero value of MinWidth means DefaultColumnMinWidth.
//
// HidePriority orders hideable columns as the width shrinks: a lower value is
// revealed first, so it hides last. A nil HidePriority sorts after every
// explicit priority, so that column is revealed last and hides first.
type Column struct {
	ID           string `json:"id" yaml:"id"`
	Title        string `json:"title" yaml:"title"`
	MinWidth     int    `json:"min_width,omitempty" yaml:"min_width,omitempty"`
	Hideable     bool   `json:"hideable,omitempty" yaml:"hideable,omitempty"`
	HidePriority *int   `json:"hide_priority,omitempty" yaml:"hide_priority,omitempty"`
	Sortable     bool   `json:"sortable,omitempty" yaml:"sortable,omitempty"`
}

// Priority returns the hide priority and whether one was set.
func (c Column) Priority() (int, bool) {
	if c.HidePriority == nil {
		return 0, false
	}
	return *c.HidePriority, true
}

// Width returns MinWidth, falling back to def when unset.
func (c Column) Width(def int) int {
	if c.MinWidth <= 0 {
		return def
	}
	return c.MinWidth
}
