package layout

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/lanekit/internal/cli"
	"github.com/thenoetrevino/lanekit/internal/layout"
	"github.com/thenoetrevino/lanekit/internal/testutil"
	clitest "github.com/thenoetrevino/lanekit/internal/testutil/cli"
)

// exampleColumns is the three-column table used throughout the layout docs:
// a fixed name column and two hideable columns, c2 revealed before c3.
const exampleColumns = `{
  // widths in pixels
  "columns": [
    {"id": "c1", "title": "Name", "min_width": 240},
    {"id": "c2", "title": "Status", "min_width": 100, "hideable": true, "hide_priority": 1},
    {"id": "c3", "title": "Owner", "min_width": 150, "hideable": true, "hide_priority": 2},
  ],
}`

func writeColumns(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "columns.jsonc")
	require.NoError(t, os.WriteFile(path, []byte(exampleColumns), 0o644))
	return path
}

func TestBreakpoints(t *testing.T) {
	_, app := clitest.SetupCLITest(t)
	path := writeColumns(t)

	t.Run("json entries", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, app, BreakpointsCmd(), []string{
			"--columns", path, "--json",
		})
		require.NoError(t, err)

		var result struct {
			Data struct {
				Entries  []layout.Entry `json:"entries"`
				Always   []string       `json:"always_visible"`
				MinWidth int            `json:"min_width"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal([]byte(output), &result))

		want := []layout.Entry{
			{Width: 280, Columns: []string{"c1"}},
			{Width: 380, Columns: []string{"c1", "c2"}},
			{Width: 530, Columns: []string{"c1", "c2", "c3"}},
			{Width: layout.Infinity, Columns: []string{"c1", "c2", "c3"}},
		}
		assert.Equal(t, want, result.Data.Entries)
		assert.Equal(t, []string{"c1"}, result.Data.Always)
		assert.Equal(t, 280, result.Data.MinWidth)
	})

	t.Run("quiet thresholds shift with accessories", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, app, BreakpointsCmd(), []string{
			"--columns", path, "--selectable", "--actions", "--quiet",
		})
		require.NoError(t, err)
		fields := strings.Fields(output)
		require.Len(t, fields, 4)
		// 48 selection + 48 overflow on top of the base
		assert.Equal(t, []string{"376", "476", "626"}, fields[:3])
	})

	t.Run("human readable uses titles", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, app, BreakpointsCmd(), []string{"--columns", path})
		require.NoError(t, err)
		assert.Contains(t, output, "Status")
		assert.Contains(t, output, "∞")
		assert.Contains(t, output, "minimum width: 280 px")
	})

	t.Run("configured columns by default", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, app, BreakpointsCmd(), []string{"--quiet"})
		require.NoError(t, err)
		assert.NotEmpty(t, strings.Fields(output))
	})
}

func TestVisible(t *testing.T) {
	_, app := clitest.SetupCLITest(t)
	path := writeColumns(t)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"below every threshold", []string{"--width", "100"}, "c1"},
		{"zero width", []string{"--width", "0"}, "c1"},
		{"exact threshold", []string{"--width", "380"}, "c1 c2"},
		{"between thresholds", []string{"--width", "529"}, "c1 c2"},
		{"everything", []string{"--width", "5000"}, "c1 c2 c3"},
		{"cells use pixels per cell", []string{"--cells", "50"}, "c1 c2"},
		{"selection accessory first", []string{"--width", "5000", "--selectable"}, "_selection c1 c2 c3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"--columns", path, "--quiet"}, tt.args...)
			output, err := clitest.ExecuteCLICommand(t, app, VisibleCmd(), args)
			require.NoError(t, err)
			assert.Equal(t, tt.want, strings.TrimSpace(output))
		})
	}

	t.Run("json reports hidden columns", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, app, VisibleCmd(), []string{
			"--columns", path, "--width", "300", "--json",
		})
		require.NoError(t, err)

		result := testutil.ParseJSON(t, output)
		data := result["data"].(map[string]any)
		assert.Equal(t, []any{"c2", "c3"}, data["hidden"])
	})

	t.Run("bad column file", func(t *testing.T) {
		bad := filepath.Join(t.TempDir(), "columns.toml")
		require.NoError(t, os.WriteFile(bad, []byte("x = 1"), 0o644))

		_, err := clitest.ExecuteCLICommand(t, app, VisibleCmd(), []string{"--columns", bad, "--width", "10", "--json"})
		require.Error(t, err)
		assert.Equal(t, cli.ExitDataErr, cli.ExitCodeFor(err))
	})
}
