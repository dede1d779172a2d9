package item

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/lanekit/internal/cli"
	"github.com/thenoetrevino/lanekit/internal/cli/styles"
	"github.com/thenoetrevino/lanekit/internal/models"
)

// itemDetail is an item together with the lane that holds it
type itemDetail struct {
	models.Item
	Lane string `json:"lane"`
}

// ShowCmd returns the item show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show an item with its rendered description",
		Long: `Show an item. Descriptions are rendered as markdown.

Examples:
  lanekit item show --key ab12cd34
  lanekit item show --key ab12cd34 --json
`,
		RunE: runShow,
	}

	cmd.Flags().String("key", "", "Item key (required)")
	if err := cmd.MarkFlagRequired("key"); err != nil {
		slog.Error("failed to mark flag as required", "error", err)
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
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

	item, laneKey, err := cliInstance.App.BoardService.GetItem(ctx, key)
	if err != nil {
		return formatter.FailWithSuggestion(err, "Run 'lanekit board show' to list item keys")
	}

	if formatter.JSON || formatter.Quiet {
		return formatter.Success(itemDetail{Item: item, Lane: laneKey})
	}

	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render(item.Title))
	b.WriteString("\n\n")
	b.WriteString(styles.Field("Key", item.Key))
	b.WriteString("\n")
	b.WriteString(styles.Field("Lane", laneKey))
	b.WriteString("\n")
	b.WriteString(styles.Field("Position", fmt.Sprintf("%d", item.Order)))
	b.WriteString("\n")
	b.WriteString(styles.SectionStyle.Render("Description"))
	b.WriteString("\n")
	b.WriteString(styles.RenderMarkdown(item.Description, styles.CardWidth-6))

	fmt.Println(styles.RenderCard(b.String()))
	return nil
}
