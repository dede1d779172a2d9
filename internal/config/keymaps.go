package config

// KeyMappings defines all configurable key bindings
type KeyMappings struct {
	// Items
	AddItem    string `yaml:"add_item"`
	DeleteItem string `yaml:"delete_item"`

	// Drag gesture
	PickUp string `yaml:"pick_up"`
	Drop   string `yaml:"drop"`
	Cancel string `yaml:"cancel"`

	// Navigation
	PrevLane            string `yaml:"prev_lane"`
	NextLane            string `yaml:"next_lane"`
	PrevItem            string `yaml:"prev_item"`
	NextItem            string `yaml:"next_item"`
	ScrollViewportLeft  string `yaml:"scroll_viewport_left"`
	ScrollViewportRight string `yaml:"scroll_viewport_right"`

	// Other
	ToggleView string `yaml:"toggle_view"`
	ShowHelp   string `yaml:"show_help"`
	Quit       string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		// Items
		AddItem:    "a",
		DeleteItem: "d",

		// Drag gesture
		PickUp: "space",
		Drop:   "enter",
		Cancel: "esc",

		// Navigation
		PrevLane:            "h",
		NextLane:            "l",
		PrevItem:            "k",
		NextItem:            "j",
		ScrollViewportLeft:  "[",
		ScrollViewportRight: "]",

		// Other
		ToggleView: "v",
		ShowHelp:   "?",
		Quit:       "q",
	}
}

// bindings returns pointers to every key binding
func (k *KeyMappings) bindings() []*string {
	return []*string{
		&k.AddItem, &k.DeleteItem,
		&k.PickUp, &k.Drop, &k.Cancel,
		&k.PrevLane, &k.NextLane, &k.PrevItem, &k.NextItem,
		&k.ScrollViewportLeft, &k.ScrollViewportRight,
		&k.ToggleView, &k.ShowHelp, &k.Quit,
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	dst, src := k.bindings(), defaults.bindings()
	for i := range dst {
		if *dst[i] == "" {
			*dst[i] = *src[i]
		}
	}
}
