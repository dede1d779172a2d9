package models

// Item is a single card on the board (or a row in the list view).
// Order is its zero-based index within its lane.
type Item struct {
	Key         string `json:"key"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Order       int    `json:"order"`
}

// GetID lets the CLI quiet formatter print an item's key.
func (i Item) GetID() string {
	return i.Key
}

// Lane is an ordered bucket of items (a kanban column).
type Lane struct {
	Key   string `json:"key"`
	Title string `json:"title"`
	Items []Item `json:"items"`
}

// GetID lets the CLI quiet formatter print a lane's key.
func (l Lane) GetID() string {
	return l.Key
}

// Move describes a single drag-and-drop. A nil *Move is a cancelled drag.
//
// ItemKey optionally names the carried item. The board service uses it to
// find the item's current slot when the board changed after the source was
// read; the engine itself only looks at the indices.
type Move struct {
	SourceLane  string `json:"source_lane"`
	SourceIndex int    `json:"source_index"`
	DestLane    string `json:"dest_lane"`
	DestIndex   int    `json:"dest_index"`
	ItemKey     string `json:"item_key,omitempty"`
}
