package board

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/natefinch/atomic"
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/lanekit/internal/cli"
	"github.com/thenoetrevino/lanekit/internal/models"
	"gopkg.in/yaml.v3"
)

// exportDoc is the on-disk shape of an exported board
type exportDoc struct {
	Fingerprint string        `json:"fingerprint" yaml:"fingerprint"`
	Lanes       []models.Lane `json:"lanes" yaml:"lanes"`
}

// exportResult reports where the board was written
type exportResult struct {
	Path  string `json:"path"`
	Lanes int    `json:"lanes"`
	Items int    `json:"items"`
}

func (r exportResult) GetID() string {
	return r.Path
}

func (r exportResult) String() string {
	return fmt.Sprintf("✓ Exported %d lanes (%d items) to %s", r.Lanes, r.Items, r.Path)
}

// ExportCmd returns the board export subcommand
func ExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the board to a JSON or YAML file",
		Long: `Write the board to a file. The file is replaced atomically, so readers
never observe a partial export. Files ending in .yaml or .yml are written as
YAML, everything else as JSON.

Examples:
  lanekit board export --out board.json
  lanekit board export --out board.yaml --quiet
`,
		RunE: runExport,
	}

	cmd.Flags().String("out", "", "Destination file (required)")
	if err := cmd.MarkFlagRequired("out"); err != nil {
		slog.Error("failed to mark flag as required", "error", err)
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runExport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.FormatterFromFlags(cmd)
	out, _ := cmd.Flags().GetString("out")

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
		return formatter.Fail(err)
	}

	doc := exportDoc{
		Fingerprint: fmt.Sprintf("%016x", snap.Fingerprint()),
		Lanes:       snap.Lanes(),
	}

	data, err := encodeExport(doc, filepath.Ext(out))
	if err != nil {
		return formatter.Fail(err)
	}

	if err := atomic.WriteFile(out, bytes.NewReader(data)); err != nil {
		slog.Error("failed to write export", "path", out, "error", err)
		return formatter.Fail(fmt.Errorf("writing %s: %w", out, err))
	}

	return formatter.Success(exportResult{Path: out, Lanes: snap.LaneCount(), Items: snap.ItemCount()})
}

func encodeExport(doc exportDoc, ext string) ([]byte, error) {
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		return yaml.Marshal(doc)
	default:
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	}
}
