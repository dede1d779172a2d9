package layout

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/lanekit/internal/cli"
	"github.com/thenoetrevino/lanekit/internal/cli/styles"
	"github.com/thenoetrevino/lanekit/internal/layout"
	"github.com/thenoetrevino/lanekit/internal/models"
)

// breakpointTable renders the breakpoint map as one row per threshold
type breakpointTable struct {
	Entries  []layout.Entry `json:"entries"`
	Always   []string       `json:"always_visible"`
	MinWidth int            `json:"min_width"`
	columns  []models.Column
}

func (t breakpointTable) String() string {
	var b strings.Builder
	for _, entry := range t.Entries {
		width := fmt.Sprintf("%6d", entry.Width)
		if entry.Width == layout.Infinity {
			width = fmt.Sprintf("%6s", "∞")
		}
		b.WriteString(styles.LabelStyle.Render(width))
		b.WriteString("  ")
		b.WriteString(styles.ValueStyle.Render(strings.Join(columnTitles(t.columns, entry.Columns), ", ")))
		b.WriteString("\n")
	}
	b.WriteString(styles.SubtitleStyle.Render("always visible: " + strings.Join(t.Always, ", ")))
	b.WriteString("\n")
	b.WriteString(styles.SubtitleStyle.Render(fmt.Sprintf("minimum width: %d px", t.MinWidth)))
	return b.String()
}

// BreakpointsCmd returns the layout breakpoints subcommand
func BreakpointsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "breakpoints",
		Short: "Print the width thresholds at which columns appear",
		Long: `Print the breakpoint map for the configured list columns: each row is
the minimum width (in pixels) from which that set of columns is shown.

Examples:
  lanekit layout breakpoints
  lanekit layout breakpoints --columns columns.jsonc --selectable --actions
  lanekit layout breakpoints --json
`,
		RunE: runBreakpoints,
	}

	addLayoutFlags(cmd)

	return cmd
}

func runBreakpoints(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.FormatterFromFlags(cmd)

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(err)
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("failed to close CLI", "error", err)
		}
	}()

	calc, err := calculatorFromFlags(cmd, cliInstance.App.Layout)
	if err != nil {
		slog.Error("failed to load columns", "error", err)
		return formatter.Fail(err)
	}

	bp := calc.Breakpoints()

	if formatter.Quiet {
		for _, width := range bp.Thresholds() {
			fmt.Println(width)
		}
		return nil
	}

	return formatter.Success(breakpointTable{
		Entries:  bp.Entries(),
		Always:   bp.AlwaysVisible(),
		MinWidth: bp.MinWidth(),
		columns:  calc.Columns(),
	})
}
