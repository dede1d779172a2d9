package item

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/lanekit/internal/cli"
	boardservice "github.com/thenoetrevino/lanekit/internal/services/board"
)

// UpdateCmd returns the item update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Edit an item's title or description",
		Long: `Edit an item's title or description. Position is changed with
'lanekit board move'.

Examples:
  lanekit item update --key ab12cd34 --title "New title"
  cat notes.md | lanekit item update --key ab12cd34 --description -
`,
		RunE: runUpdate,
	}

	cmd.Flags().String("key", "", "Item key (required)")
	if err := cmd.MarkFlagRequired("key"); err != nil {
		slog.Error("failed to mark flag as required", "error", err)
	}

	cmd.Flags().String("title", "", "New title")
	cmd.Flags().String("description", "", "New description (use - for stdin)")

	cli.AddOutputFlags(cmd)

	return cmd
}

func runUpdate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.FormatterFromFlags(cmd)

	key, _ := cmd.Flags().GetString("key")

	req := boardservice.UpdateItemRequest{Key: key}
	if cmd.Flags().Changed("title") {
		title, _ := cmd.Flags().GetString("title")
		req.Title = &title
	}
	if cmd.Flags().Changed("description") {
		descFlag, _ := cmd.Flags().GetString("description")
		description, err := cli.ReadDescription(descFlag)
		if err != nil {
			return formatter.Fail(fmt.Errorf("reading description: %w", err))
		}
		req.Description = &description
	}

	if req.Title == nil && req.Description == nil {
		return formatter.Usage("at least one of --title or --description is required")
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

	snap, err := cliInstance.App.BoardService.UpdateItem(ctx, req)
	if err != nil {
		slog.Error("failed to update item", "item", key, "error", err)
		return formatter.Fail(err)
	}

	item, _ := snap.Item(key)
	if formatter.JSON || formatter.Quiet {
		return formatter.Success(item)
	}

	fmt.Printf("✓ Item '%s' updated\n", item.Key)
	return nil
}
