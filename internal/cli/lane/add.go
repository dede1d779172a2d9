package lane

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/lanekit/internal/cli"
	"github.com/thenoetrevino/lanekit/internal/models"
	boardservice "github.com/thenoetrevino/lanekit/internal/services/board"
)

// AddCmd returns the lane add subcommand
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a lane to the board",
		Long: `Add a lane to the board.

Examples:
  # Append a lane
  lanekit lane add --key review --title "Review"

  # Insert as the second lane
  lanekit lane add --key blocked --title "Blocked" --index 1
`,
		RunE: runAdd,
	}

	cmd.Flags().String("key", "", "Lane key (required)")
	cmd.Flags().String("title", "", "Lane title (required)")
	cmd.Flags().Int("index", models.AppendIndex, "Position among lanes (default: append)")
	for _, name := range []string{"key", "title"} {
		if err := cmd.MarkFlagRequired(name); err != nil {
			slog.Error("failed to mark flag as required", "error", err)
		}
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.FormatterFromFlags(cmd)

	key, _ := cmd.Flags().GetString("key")
	title, _ := cmd.Flags().GetString("title")
	index, _ := cmd.Flags().GetInt("index")

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(err)
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("failed to close CLI", "error", err)
		}
	}()

	snap, err := cliInstance.App.BoardService.AddLane(ctx, boardservice.AddLaneRequest{
		Key:   key,
		Title: title,
		Index: index,
	})
	if err != nil {
		slog.Error("failed to add lane", "lane", key, "error", err)
		return formatter.Fail(err)
	}

	lane, _ := snap.Lane(key)
	if formatter.JSON || formatter.Quiet {
		return formatter.Success(lane)
	}

	fmt.Printf("✓ Lane '%s' added (key: %s)\n", lane.Title, lane.Key)
	fmt.Printf("  Lanes: %v\n", snap.LaneKeys())
	return nil
}
