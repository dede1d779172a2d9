package item

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/lanekit/internal/cli"
)

// DeleteCmd returns the item delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete an item",
		Long: `Delete an item. The remaining items of its lane are renumbered.

Examples:
  lanekit item delete --key ab12cd34
`,
		RunE: runDelete,
	}

	cmd.Flags().String("key", "", "Item key (required)")
	if err := cmd.MarkFlagRequired("key"); err != nil {
		slog.Error("failed to mark flag as required", "error", err)
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.FormatterFromFlags(cmd)

	key, _ := cmd.Flags().GetString("key")

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
	item, laneKey, err := svc.GetItem(ctx, key)
	if err != nil {
		return formatter.Fail(err)
	}

	if _, err := svc.DeleteItem(ctx, key); err != nil {
		slog.Error("failed to delete item", "item", key, "error", err)
		return formatter.Fail(err)
	}

	if formatter.JSON || formatter.Quiet {
		return formatter.Success(item)
	}

	fmt.Printf("✓ Item '%s' deleted from '%s'\n", item.Title, laneKey)
	return nil
}
