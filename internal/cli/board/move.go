package board

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/lanekit/internal/cli"
	"github.com/thenoetrevino/lanekit/internal/models"
)

// MoveCmd returns the board move subcommand
func MoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move",
		Short: "Move an item to a position in any lane",
		Long: `Move an item to a position in any lane. Lanes are renumbered after
the move, and a destination index past the end appends.

Examples:
  # Move the first todo item to the top of done
  lanekit board move --from todo --from-index 0 --to done --to-index 0

  # Move an item by key to the end of a lane
  lanekit board move --item ab12cd34 --to in-progress

  # JSON output for agents
  lanekit board move --item ab12cd34 --to done --json
`,
		RunE: runMove,
	}

	cmd.Flags().String("item", "", "Key of the item to move")
	cmd.Flags().String("from", "", "Source lane key")
	cmd.Flags().Int("from-index", 0, "Index of the item in the source lane")
	cmd.Flags().String("to", "", "Destination lane key (required)")
	cmd.Flags().Int("to-index", 0, "Insertion index in the destination lane (default: append)")
	if err := cmd.MarkFlagRequired("to"); err != nil {
		slog.Error("failed to mark flag as required", "error", err)
	}
	cmd.MarkFlagsMutuallyExclusive("item", "from")

	cli.AddOutputFlags(cmd)

	return cmd
}

func runMove(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.FormatterFromFlags(cmd)

	itemKey, _ := cmd.Flags().GetString("item")
	fromLane, _ := cmd.Flags().GetString("from")
	fromIndex, _ := cmd.Flags().GetInt("from-index")
	toLane, _ := cmd.Flags().GetString("to")
	toIndex, _ := cmd.Flags().GetInt("to-index")

	if itemKey == "" && fromLane == "" {
		return formatter.Usage("either --item or --from is required")
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

	svc := cliInstance.App.BoardService
	snap, err := svc.GetBoard(ctx)
	if err != nil {
		return formatter.Fail(err)
	}

	if itemKey != "" {
		lane, index, ok := snap.FindItem(itemKey)
		if !ok {
			return formatter.FailWithSuggestion(
				fmt.Errorf("%w: %s", models.ErrItemNotFound, itemKey),
				"Run 'lanekit board show' to list item keys")
		}
		fromLane, fromIndex = lane, index
	}

	// Without --to-index the item goes to the end of the lane
	if !cmd.Flags().Changed("to-index") {
		toIndex = len(snap.Items(toLane))
	}

	move := &models.Move{
		SourceLane:  fromLane,
		SourceIndex: fromIndex,
		DestLane:    toLane,
		DestIndex:   toIndex,
		ItemKey:     itemKey,
	}

	var movedKey string
	if items := snap.Items(fromLane); fromIndex >= 0 && fromIndex < len(items) {
		movedKey = items[fromIndex].Key
	}

	next, err := svc.MoveItem(ctx, move)
	if err != nil {
		slog.Error("failed to move item", "error", err)
		return formatter.FailWithSuggestion(err, fmt.Sprintf("Available lanes: %v", snap.LaneKeys()))
	}

	item, _ := next.Item(movedKey)
	return formatter.Success(movedItem{Item: item, FromLane: fromLane, ToLane: toLane})
}
