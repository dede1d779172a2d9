package layout

import "github.com/thenoetrevino/lanekit/internal/models"

// Options controls the accessory columns and the fixed widths that feed the
// breakpoint calculation. Zero widths take the package defaults.
type Options struct {
	// Selectable adds the selection checkbox accessory column.
	Selectable bool `yaml:"selectable"`

	// HasActions adds the overflow menu accessory column.
	HasActions bool `yaml:"has_actions"`

	SelectionWidth  int `yaml:"selection_width"`
	OverflowWidth   int `yaml:"overflow_width"`
	StaticSpacing   int `yaml:"static_spacing"`
	DefaultMinWidth int `yaml:"default_min_width"`
}

// DefaultOptions returns options with every width set to its default and no
// accessory columns.
func DefaultOptions() Options {
	return Options{}.withDefaults()
}

func (o Options) withDefaults() Options {
	if o.SelectionWidth <= 0 {
		o.SelectionWidth = models.DefaultSelectionWidth
	}
	if o.OverflowWidth <= 0 {
		o.OverflowWidth = models.DefaultOverflowWidth
	}
	if o.StaticSpacing <= 0 {
		o.StaticSpacing = models.DefaultStaticSpacing
	}
	if o.DefaultMinWidth <= 0 {
		o.DefaultMinWidth = models.DefaultColumnMinWidth
	}
	return o
}

// accessoryWidth is the space taken by the enabled accessory columns.
func (o Options) accessoryWidth() int {
	width := 0
	if o.Selectable {
		width += o.SelectionWidth
	}
	if o.HasActions {
		width += o.OverflowWidth
	}
	return width
}
