package item

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/lanekit/internal/cli"
	"github.com/thenoetrevino/lanekit/internal/models"
	boardservice "github.com/thenoetrevino/lanekit/internal/services/board"
)

// AddCmd returns the item add subcommand
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an item to a lane",
		Long: `Add an item to a lane. Without --key a short random key is generated.

Examples:
  # Append to the first lane
  lanekit item add --title "Fix login"

  # Insert at the top of a lane
  lanekit item add --lane in-progress --title "Hotfix" --index 0

  # Description from stdin, capture the key
  KEY=$(echo "Steps to reproduce" | lanekit item add --title "Bug" --description - --quiet)
`,
		RunE: runAdd,
	}

	cmd.Flags().String("title", "", "Item title (required)")
	if err := cmd.MarkFlagRequired("title"); err != nil {
		slog.Error("failed to mark flag as required", "error", err)
	}

	cmd.Flags().String("lane", "", "Lane key (defaults to the first lane)")
	cmd.Flags().String("key", "", "Item key (defaults to a generated key)")
	cmd.Flags().String("description", "", "Item description (use - for stdin)")
	cmd.Flags().Int("index", models.AppendIndex, "Position in the lane (default: append)")

	cli.AddOutputFlags(cmd)

	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.FormatterFromFlags(cmd)

	title, _ := cmd.Flags().GetString("title")
	laneKey, _ := cmd.Flags().GetString("lane")
	key, _ := cmd.Flags().GetString("key")
	index, _ := cmd.Flags().GetInt("index")
	descFlag, _ := cmd.Flags().GetString("description")

	description, err := cli.ReadDescription(descFlag)
	if err != nil {
		return formatter.Fail(fmt.Errorf("reading description: %w", err))
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

	if laneKey == "" {
		snap, err := svc.GetBoard(ctx)
		if err != nil {
			return formatter.Fail(err)
		}
		keys := snap.LaneKeys()
		if len(keys) == 0 {
			return formatter.Fail(fmt.Errorf("%w: board has no lanes", models.ErrLaneNotFound))
		}
		laneKey = keys[0]
	}

	item, _, err := svc.AddItem(ctx, boardservice.AddItemRequest{
		LaneKey:     laneKey,
		Key:         key,
		Title:       title,
		Description: description,
		Index:       index,
	})
	if err != nil {
		slog.Error("failed to add item", "lane", laneKey, "error", err)
		return formatter.Fail(err)
	}

	if formatter.JSON || formatter.Quiet {
		return formatter.Success(item)
	}

	fmt.Printf("✓ Item '%s' added (key: %s)\n", item.Title, item.Key)
	fmt.Printf("  Lane: %s\n", laneKey)
	fmt.Printf("  Position: %d\n", item.Order)
	return nil
}
