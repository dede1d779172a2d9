package board

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/lanekit/internal/cli/styles"
	"github.com/thenoetrevino/lanekit/internal/models"
)

// BoardCmd returns the board parent command
func BoardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Show, reorder and export the board",
	}

	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(MoveCmd())
	cmd.AddCommand(ExportCmd())

	return cmd
}

// boardView is the human-readable rendering of every lane
type boardView []models.Lane

func (v boardView) String() string {
	parts := make([]string, len(v))
	for i, lane := range v {
		parts[i] = styles.RenderLane(lane)
	}
	return strings.TrimRight(strings.Join(parts, "\n"), "\n")
}

// movedItem is the result of a move, keyed by the moved item for quiet mode
type movedItem struct {
	Item     models.Item `json:"item"`
	FromLane string      `json:"from_lane"`
	ToLane   string      `json:"to_lane"`
}

func (m movedItem) GetID() string {
	return m.Item.Key
}

func (m movedItem) String() string {
	if m.FromLane == m.ToLane {
		return fmt.Sprintf("✓ Item '%s' moved to position %d in '%s'", m.Item.Key, m.Item.Order, m.ToLane)
	}
	return fmt.Sprintf("✓ Item '%s' moved from '%s' to '%s' (position %d)", m.Item.Key, m.FromLane, m.ToLane, m.Item.Order)
}
