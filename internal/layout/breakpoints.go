// Package layout computes which list columns fit in a container of a given
// width. Columns are packed by minimum width: non-hideable columns and the
// accessory columns are always shown, hideable columns are revealed one at a
// time in ascending hide-priority order as the container grows.
package layout

import (
	"cmp"
	"math"
	"slices"
	"sort"

	"github.com/thenoetrevino/lanekit/internal/models"
)

// Infinity is the threshold of the final breakpoint, which shows every column.
const Infinity = math.MaxInt

// Entry is one breakpoint: from Width upward (until the next entry) the
// Columns are visible.
type Entry struct {
	Width   int      `json:"width"`
	Columns []string `json:"columns"`
}

// Breakpoints is an ordered breakpoint map. Thresholds are strictly
// increasing and the last one is always Infinity.
type Breakpoints struct {
	entries []Entry
	always  []string
}

// Calculate builds the breakpoint map for cols.
func Calculate(cols []models.Column, opts Options) Breakpoints {
	opts = opts.withDefaults()

	visible := make(map[string]bool, len(cols))
	var hideable []models.Column

	base := opts.StaticSpacing + opts.accessoryWidth()
	for _, col := range cols {
		if col.Hideable {
			hideable = append(hideable, col)
			continue
		}
		base += col.Width(opts.DefaultMinWidth)
		visible[col.ID] = true
	}

	// Stable, so equal priorities keep definition order
	slices.SortStableFunc(hideable, compareHidePriority)

	var bp Breakpoints
	bp.always = displayOrder(cols, visible, opts)
	bp.add(base, bp.always)

	width := base
	for _, col := range hideable {
		width += col.Width(opts.DefaultMinWidth)
		visible[col.ID] = true
		bp.add(width, displayOrder(cols, visible, opts))
	}

	for _, col := range cols {
		visible[col.ID] = true
	}
	bp.add(Infinity, displayOrder(cols, visible, opts))

	return bp
}

// compareHidePriority orders explicit priorities ascending with unset
// priorities last.
func compareHidePriority(a, b models.Column) int {
	pa, okA := a.Priority()
	pb, okB := b.Priority()
	switch {
	case okA && okB:
		return cmp.Compare(pa, pb)
	case okA:
		return -1
	case okB:
		return 1
	default:
		return 0
	}
}

// displayOrder lists the visible IDs: selection first, columns in definition
// order, overflow last.
func displayOrder(cols []models.Column, visible map[string]bool, opts Options) []string {
	ids := make([]string, 0, len(visible)+2)
	if opts.Selectable {
		ids = append(ids, models.SelectionColumnID)
	}
	for _, col := range cols {
		if visible[col.ID] {
			ids = append(ids, col.ID)
		}
	}
	if opts.HasActions {
		ids = append(ids, models.OverflowColumnID)
	}
	return ids
}

// add appends an entry. A threshold equal to the previous one replaces it,
// since the later set is the wider one that still fits.
func (b *Breakpoints) add(width int, cols []string) {
	if n := len(b.entries); n > 0 && b.entries[n-1].Width >= width {
		b.entries[n-1].Columns = cols
		return
	}
	b.entries = append(b.entries, Entry{Width: width, Columns: cols})
}

// Visible returns the column IDs to show in a container of the given width:
// the set of the greatest threshold not above width, or the narrowest set
// when width is below every threshold.
func (b Breakpoints) Visible(width int) []string {
	if len(b.entries) == 0 {
		return nil
	}
	idx := sort.Search(len(b.entries), func(i int) bool {
		return b.entries[i].Width > width
	})
	if idx > 0 {
		idx--
	}
	return slices.Clone(b.entries[idx].Columns)
}

// IsVisible reports whether column id is shown at the given width.
func (b Breakpoints) IsVisible(width int, id string) bool {
	return slices.Contains(b.Visible(width), id)
}

// Thresholds returns the breakpoint widths in ascending order.
func (b Breakpoints) Thresholds() []int {
	widths := make([]int, len(b.entries))
	for i, e := range b.entries {
		widths[i] = e.Width
	}
	return widths
}

// Entries returns a copy of every breakpoint.
func (b Breakpoints) Entries() []Entry {
	out := make([]Entry, len(b.entries))
	for i, e := range b.entries {
		out[i] = Entry{Width: e.Width, Columns: slices.Clone(e.Columns)}
	}
	return out
}

// AlwaysVisible returns the non-hideable columns plus enabled accessories.
func (b Breakpoints) AlwaysVisible() []string {
	return slices.Clone(b.always)
}

// MinWidth is the narrowest threshold, the width needed by the always
// visible columns.
func (b Breakpoints) MinWidth() int {
	if len(b.entries) == 0 {
		return 0
	}
	return b.entries[0].Width
}
