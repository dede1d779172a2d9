package board

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/lanekit/internal/cli"
)

// ShowCmd returns the board show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print every lane and its items in order",
		Long: `Print every lane and its items in order.

Examples:
  # Human-readable board
  lanekit board show

  # JSON output for agents
  lanekit board show --json

  # Lane keys only
  lanekit board show --quiet
`,
		RunE: runShow,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
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

	snap, err := cliInstance.App.BoardService.GetBoard(ctx)
	if err != nil {
		slog.Error("failed to load board", "error", err)
		return formatter.Fail(err)
	}

	if formatter.Quiet {
		for _, key := range snap.LaneKeys() {
			fmt.Println(key)
		}
		return nil
	}

	return formatter.Success(boardView(snap.Lanes()))
}
