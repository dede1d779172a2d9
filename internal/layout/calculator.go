package layout

import (
	"slices"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"github.com/thenoetrevino/lanekit/internal/models"
)

// Calculator caches a breakpoint map for one column configuration.
// The map is recomputed lazily, and only when a layout-relevant field of the
// columns or options changes. Titles and sortability do not invalidate it.
type Calculator struct {
	columns     []models.Column
	opts        Options
	fingerprint uint64
	cached      *Breakpoints
	recomputes  int
}

// NewCalculator creates a calculator for cols.
func NewCalculator(cols []models.Column, opts Options) *Calculator {
	c := &Calculator{
		columns: slices.Clone(cols),
		opts:    opts,
	}
	c.fingerprint = fingerprint(c.columns, c.opts)
	return c
}

// SetColumns replaces the column configuration.
// Returns true if the cached breakpoints were invalidated.
func (c *Calculator) SetColumns(cols []models.Column) bool {
	c.columns = slices.Clone(cols)
	return c.refresh()
}

// SetOptions replaces the options.
// Returns true if the cached breakpoints were invalidated.
func (c *Calculator) SetOptions(opts Options) bool {
	c.opts = opts
	return c.refresh()
}

func (c *Calculator) refresh() bool {
	fp := fingerprint(c.columns, c.opts)
	if fp == c.fingerprint {
		return false
	}
	c.fingerprint = fp
	c.cached = nil
	return true
}

// Columns returns the current column configuration.
func (c *Calculator) Columns() []models.Column {
	return slices.Clone(c.columns)
}

// Options returns the current options.
func (c *Calculator) Options() Options {
	return c.opts
}

// Breakpoints returns the cached map, computing it if needed.
func (c *Calculator) Breakpoints() Breakpoints {
	if c.cached == nil {
		bp := Calculate(c.columns, c.opts)
		c.cached = &bp
		c.recomputes++
	}
	return *c.cached
}

// Visible returns the column IDs shown at width.
func (c *Calculator) Visible(width int) []string {
	return c.Breakpoints().Visible(width)
}

// Recomputes returns how many times the map has been computed.
func (c *Calculator) Recomputes() int {
	return c.recomputes
}

// fingerprint hashes everything Calculate reads.
func fingerprint(cols []models.Column, opts Options) uint64 {
	opts = opts.withDefaults()
	hasher := xxhash.New()

	for _, col := range cols {
		_, _ = hasher.WriteString(col.ID)
		_, _ = hasher.Write([]byte{0})
		_, _ = hasher.WriteString(strconv.Itoa(col.MinWidth))
		_, _ = hasher.Write([]byte{0})
		_, _ = hasher.WriteString(strconv.FormatBool(col.Hideable))
		_, _ = hasher.Write([]byte{0})
		if p, ok := col.Priority(); ok {
			_, _ = hasher.WriteString(strconv.Itoa(p))
		}
		_, _ = hasher.Write([]byte{0, 0}) // Column separator
	}

	_, _ = hasher.WriteString(strconv.FormatBool(opts.Selectable))
	_, _ = hasher.WriteString(strconv.FormatBool(opts.HasActions))
	for _, w := range []int{opts.SelectionWidth, opts.OverflowWidth, opts.StaticSpacing, opts.DefaultMinWidth} {
		_, _ = hasher.Write([]byte{0})
		_, _ = hasher.WriteString(strconv.Itoa(w))
	}

	return hasher.Sum64()
}
