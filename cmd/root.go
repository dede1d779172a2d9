package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/lanekit/internal/cli"
	"github.com/thenoetrevino/lanekit/internal/cli/board"
	"github.com/thenoetrevino/lanekit/internal/cli/item"
	"github.com/thenoetrevino/lanekit/internal/cli/lane"
	"github.com/thenoetrevino/lanekit/internal/cli/layout"
	"github.com/thenoetrevino/lanekit/internal/cli/styles"
	"github.com/thenoetrevino/lanekit/internal/config"
	"github.com/thenoetrevino/lanekit/internal/tui"
)

// NewRootCmd builds the lanekit command tree.
// Running it without a subcommand opens the interactive board.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "lanekit",
		Short: "Lanekit - A terminal kanban board with drag-and-drop",
		Long: `Lanekit is a terminal kanban board. Items are moved between lanes by
picking them up and dropping them into a new slot, and the list view
hides columns by priority as the terminal narrows.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			styles.Init(cfg.ColorScheme)
			return nil
		},
		RunE: runTUI,
	}

	rootCmd.AddCommand(board.BoardCmd())
	rootCmd.AddCommand(lane.LaneCmd())
	rootCmd.AddCommand(item.ItemCmd())
	rootCmd.AddCommand(layout.LayoutCmd())

	return rootCmd
}

func runTUI(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	c, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = c.Close() }()

	return tui.Run(ctx, c.App)
}

// Execute runs the root command
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}
