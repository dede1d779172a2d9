package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/thenoetrevino/lanekit/internal/models"
)

func TestDefaultKeyMappings(t *testing.T) {
	defaults := DefaultKeyMappings()

	if defaults.Quit != "q" {
		t.Errorf("Default Quit key = %s, want q", defaults.Quit)
	}
	if defaults.AddItem != "a" {
		t.Errorf("Default AddItem key = %s, want a", defaults.AddItem)
	}
	if defaults.PickUp != "space" {
		t.Errorf("Default PickUp key = %s, want space", defaults.PickUp)
	}
	if defaults.ToggleView != "v" {
		t.Errorf("Default ToggleView key = %s, want v", defaults.ToggleView)
	}
}

func TestLoadConfigWithoutFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() without config file failed: %v", err)
	}

	if cfg.KeyMappings.Quit != "q" {
		t.Errorf("Loaded config Quit key = %s, want q (default)", cfg.KeyMappings.Quit)
	}
	if cfg.Layout.PixelsPerCell != defaultPixelsPerCell {
		t.Errorf("PixelsPerCell = %d, want %d", cfg.Layout.PixelsPerCell, defaultPixelsPerCell)
	}
	if len(cfg.Columns) != len(DefaultColumns()) {
		t.Errorf("Columns = %d, want %d defaults", len(cfg.Columns), len(DefaultColumns()))
	}
}

func TestLoadConfigWithFile(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tempDir)

	configDir := filepath.Join(tempDir, "lanekit")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		t.Fatalf("Failed to create config dir: %v", err)
	}

	configContent := `key_mappings:
  quit: "x"
  add_item: "n"
layout:
  selectable: true
  static_spacing: 16
  pixels_per_cell: 10
columns:
  - id: title
    title: Name
    min_width: 200
  - id: description
    title: Notes
    hideable: true
    hide_priority: 3
`
	configPath := filepath.Join(configDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte(configContent), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() with config file failed: %v", err)
	}

	if cfg.KeyMappings.Quit != "x" {
		t.Errorf("Loaded Quit key = %s, want x", cfg.KeyMappings.Quit)
	}
	if cfg.KeyMappings.AddItem != "n" {
		t.Errorf("Loaded AddItem key = %s, want n", cfg.KeyMappings.AddItem)
	}

	// Unspecified values should use defaults
	if cfg.KeyMappings.DeleteItem != "d" {
		t.Errorf("Loaded DeleteItem key = %s, want d (default)", cfg.KeyMappings.DeleteItem)
	}

	if !cfg.Layout.Selectable {
		t.Error("Expected layout.selectable to be loaded")
	}
	if cfg.Layout.StaticSpacing != 16 {
		t.Errorf("StaticSpacing = %d, want 16", cfg.Layout.StaticSpacing)
	}
	if cfg.Layout.PixelsPerCell != 10 {
		t.Errorf("PixelsPerCell = %d, want 10", cfg.Layout.PixelsPerCell)
	}
	if cfg.Layout.SelectionWidth != 48 {
		t.Errorf("SelectionWidth = %d, want default 48", cfg.Layout.SelectionWidth)
	}
	if cfg.Layout.CardWidth != defaultCardWidth {
		t.Errorf("CardWidth = %d, want default %d", cfg.Layout.CardWidth, defaultCardWidth)
	}

	if len(cfg.Columns) != 2 {
		t.Fatalf("Columns = %d, want 2", len(cfg.Columns))
	}
	if p, ok := cfg.Columns[1].Priority(); !ok || p != 3 {
		t.Errorf("description priority = %d (set=%v), want 3", p, ok)
	}
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tempDir)

	configDir := filepath.Join(tempDir, "lanekit")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		t.Fatalf("Failed to create config dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte("layout: [oops"), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	if _, err := Load(); err == nil {
		t.Error("Expected error for malformed config")
	}
}

func TestSaveConfig(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tempDir)

	cfg := &Config{
		KeyMappings: KeyMappings{
			Quit:    "x",
			AddItem: "n",
		},
	}

	// Apply defaults to fill missing fields
	cfg.applyDefaults()

	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	configPath := filepath.Join(tempDir, "lanekit", "config.yaml")
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Fatalf("Config file not created at %s", configPath)
	}

	cfg2, err := Load()
	if err != nil {
		t.Fatalf("Load() after Save() failed: %v", err)
	}

	if cfg2.KeyMappings.Quit != "x" {
		t.Errorf("Reloaded Quit key = %s, want x", cfg2.KeyMappings.Quit)
	}
	if cfg2.KeyMappings.AddItem != "n" {
		t.Errorf("Reloaded AddItem key = %s, want n", cfg2.KeyMappings.AddItem)
	}
	if cfg2.Layout.DefaultMinWidth != 240 {
		t.Errorf("Reloaded DefaultMinWidth = %d, want 240", cfg2.Layout.DefaultMinWidth)
	}
}

func TestLoadConfigUnknownListColumn(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tempDir)

	configDir := filepath.Join(tempDir, "lanekit")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		t.Fatalf("Failed to create config dir: %v", err)
	}
	configContent := `columns:
  - id: title
    title: Title
  - id: assignee
    title: Assignee
    hideable: true
`
	if err := os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte(configContent), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	_, err := Load()
	if !errors.Is(err, ErrUnknownColumn) {
		t.Fatalf("Load() error = %v, want ErrUnknownColumn", err)
	}
	if !strings.Contains(err.Error(), "assignee") {
		t.Errorf("error %q should name the unknown column", err)
	}
}

func TestValidateListColumns(t *testing.T) {
	if err := ValidateListColumns(DefaultColumns()); err != nil {
		t.Errorf("ValidateListColumns(DefaultColumns()) error = %v", err)
	}
	if err := ValidateListColumns([]models.Column{{ID: "title"}, {ID: "title"}}); err == nil {
		t.Error("ValidateListColumns() should reject duplicate IDs")
	}
}
