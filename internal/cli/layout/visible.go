package layout

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/lanekit/internal/cli"
	"github.com/thenoetrevino/lanekit/internal/layout"
)

// visibleColumns is the answer for a single container width
type visibleColumns struct {
	Width   int      `json:"width"`
	Columns []string `json:"columns"`
	Hidden  []string `json:"hidden"`
}

func (v visibleColumns) String() string {
	out := fmt.Sprintf("%d px: %s", v.Width, strings.Join(v.Columns, ", "))
	if len(v.Hidden) > 0 {
		out += fmt.Sprintf("\nhidden: %s", strings.Join(v.Hidden, ", "))
	}
	return out
}

// VisibleCmd returns the layout visible subcommand
func VisibleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "visible",
		Short: "Print the columns shown at a container width",
		Long: `Print the columns shown at a container width. The width is given in
pixels with --width, or in terminal cells with --cells (converted with the
configured pixels_per_cell).

Examples:
  lanekit layout visible --width 530
  lanekit layout visible --cells 120 --selectable
  lanekit layout visible --width 300 --columns columns.yaml --quiet
`,
		RunE: runVisible,
	}

	cmd.Flags().Int("width", 0, "Container width in pixels")
	cmd.Flags().Int("cells", 0, "Container width in terminal cells")
	cmd.MarkFlagsMutuallyExclusive("width", "cells")
	cmd.MarkFlagsOneRequired("width", "cells")

	addLayoutFlags(cmd)

	return cmd
}

func runVisible(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.FormatterFromFlags(cmd)

	width, _ := cmd.Flags().GetInt("width")
	cells, _ := cmd.Flags().GetInt("cells")
	if width < 0 || cells < 0 {
		return formatter.Usage("width must not be negative")
	}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(err)
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("failed to close CLI", "error", err)
		}
	}()

	if cmd.Flags().Changed("cells") {
		width = cliInstance.App.ViewportPixels(cells)
	}

	calc, err := calculatorFromFlags(cmd, cliInstance.App.Layout)
	if err != nil {
		slog.Error("failed to load columns", "error", err)
		return formatter.Fail(err)
	}

	bp := calc.Breakpoints()
	visible := bp.Visible(width)

	if formatter.Quiet {
		fmt.Println(strings.Join(visible, " "))
		return nil
	}

	return formatter.Success(visibleColumns{
		Width:   width,
		Columns: visible,
		Hidden:  hiddenColumns(bp, width),
	})
}

// hiddenColumns lists the columns of the widest entry not shown at width
func hiddenColumns(bp layout.Breakpoints, width int) []string {
	hidden := []string{}
	entries := bp.Entries()
	if len(entries) == 0 {
		return hidden
	}
	for _, id := range entries[len(entries)-1].Columns {
		if !bp.IsVisible(width, id) {
			hidden = append(hidden, id)
		}
	}
	return hidden
}
