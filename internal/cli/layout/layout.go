package layout

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/lanekit/internal/cli"
	"github.com/thenoetrevino/lanekit/internal/config"
	"github.com/thenoetrevino/lanekit/internal/layout"
	"github.com/thenoetrevino/lanekit/internal/models"
)

// LayoutCmd returns the layout parent command
func LayoutCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Inspect list view column breakpoints",
	}

	cmd.AddCommand(BreakpointsCmd())
	cmd.AddCommand(VisibleCmd())

	return cmd
}

// addLayoutFlags registers the flags shared by every layout subcommand
func addLayoutFlags(cmd *cobra.Command) {
	cmd.Flags().String("columns", "", "Column definition file (.json, .jsonc, .yaml, .yml)")
	cmd.Flags().Bool("selectable", false, "Include the selection accessory column")
	cmd.Flags().Bool("actions", false, "Include the overflow actions accessory column")
	cli.AddOutputFlags(cmd)
}

// calculatorFromFlags returns the configured calculator, or a new one when
// --columns, --selectable or --actions override the config.
func calculatorFromFlags(cmd *cobra.Command, base *layout.Calculator) (*layout.Calculator, error) {
	flags := cmd.Flags()
	if !flags.Changed("columns") && !flags.Changed("selectable") && !flags.Changed("actions") {
		return base, nil
	}

	cols := base.Columns()
	opts := base.Options()

	if path, _ := cmd.Flags().GetString("columns"); path != "" {
		loaded, err := config.LoadColumns(path)
		if err != nil {
			return nil, err
		}
		cols = loaded
	}
	if cmd.Flags().Changed("selectable") {
		opts.Selectable, _ = cmd.Flags().GetBool("selectable")
	}
	if cmd.Flags().Changed("actions") {
		opts.HasActions, _ = cmd.Flags().GetBool("actions")
	}

	return layout.NewCalculator(cols, opts), nil
}

// columnTitles maps visible IDs to column titles; accessories keep their ID
func columnTitles(cols []models.Column, ids []string) []string {
	titles := make(map[string]string, len(cols))
	for _, col := range cols {
		titles[col.ID] = col.Title
	}

	out := make([]string, len(ids))
	for i, id := range ids {
		if title, ok := titles[id]; ok && title != "" {
			out[i] = title
		} else {
			out[i] = id
		}
	}
	return out
}
