package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/thenoetrevino/lanekit/internal/layout"
	"github.com/thenoetrevino/lanekit/internal/models"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	KeyMappings KeyMappings     `yaml:"key_mappings"`
	ColorScheme ColorScheme     `yaml:"theme"`
	Layout      LayoutConfig    `yaml:"layout"`
	Columns     []models.Column `yaml:"columns,omitempty"`
}

// LayoutConfig holds breakpoint options plus the terminal geometry used to
// translate cells into pixels.
type LayoutConfig struct {
	layout.Options `yaml:",inline"`

	// PixelsPerCell converts terminal columns into layout pixels.
	PixelsPerCell int `yaml:"pixels_per_cell"`

	// CardWidth is the rendered width of one board lane, in cells.
	CardWidth int `yaml:"card_width"`
}

const (
	defaultPixelsPerCell = 8
	defaultCardWidth     = 46
)

// DefaultLayoutConfig returns the layout section used when none is configured
func DefaultLayoutConfig() LayoutConfig {
	return LayoutConfig{
		Options:       layout.DefaultOptions(),
		PixelsPerCell: defaultPixelsPerCell,
		CardWidth:     defaultCardWidth,
	}
}

// DefaultColumns returns the list view columns used when none are configured
func DefaultColumns() []models.Column {
	first, second := 1, 2
	return []models.Column{
		{ID: models.KeyColumnID, Title: "Key", MinWidth: 120},
		{ID: models.TitleColumnID, Title: "Title", MinWidth: 320, Sortable: true},
		{ID: models.LaneColumnID, Title: "Lane", MinWidth: 160, Hideable: true, HidePriority: &first, Sortable: true},
		{ID: models.OrderColumnID, Title: "#", MinWidth: 80, Hideable: true, HidePriority: &second},
		{ID: models.DescriptionColumnID, Title: "Description", MinWidth: 400, Hideable: true},
	}
}

// Default returns a config with every section at its defaults
func Default() *Config {
	config := &Config{
		KeyMappings: DefaultKeyMappings(),
		ColorScheme: DefaultColorScheme(),
		Layout:      DefaultLayoutConfig(),
		Columns:     DefaultColumns(),
	}
	return config
}

// loadThemeFile loads and merges theme from LANEKIT_THEME_FILE environment variable
func loadThemeFile(config *Config) {
	themeFile := os.Getenv("LANEKIT_THEME_FILE")
	if themeFile == "" {
		return
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		return
	}

	var themeConfig struct {
		Theme ColorScheme `yaml:"theme"`
	}

	if yaml.Unmarshal(themeData, &themeConfig) == nil {
		config.ColorScheme.MergeFrom(themeConfig.Theme)
	}
}

// Load loads config from the user's config directory
// Returns default config if file doesn't exist
func Load() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		// Return default config if we can't determine config path
		config := Default()
		loadThemeFile(config)
		return config, nil
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		config := Default()
		loadThemeFile(config)
		return config, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	loadThemeFile(&config)

	// Fill in any missing values with defaults
	config.applyDefaults()

	if err := ValidateListColumns(config.Columns); err != nil {
		return nil, fmt.Errorf("%s: %w", configPath, err)
	}

	return &config, nil
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}

	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o644)
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "lanekit", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "lanekit", "config.yaml"), nil
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	c.KeyMappings.applyDefaults()
	c.ColorScheme.ApplyDefaults()
	c.Layout.applyDefaults()
	if len(c.Columns) == 0 {
		c.Columns = DefaultColumns()
	}
}

// applyDefaults fills zero widths; accessory flags are kept as configured
func (l *LayoutConfig) applyDefaults() {
	defaults := DefaultLayoutConfig()

	if l.SelectionWidth <= 0 {
		l.SelectionWidth = defaults.SelectionWidth
	}
	if l.OverflowWidth <= 0 {
		l.OverflowWidth = defaults.OverflowWidth
	}
	if l.StaticSpacing <= 0 {
		l.StaticSpacing = defaults.StaticSpacing
	}
	if l.DefaultMinWidth <= 0 {
		l.DefaultMinWidth = defaults.DefaultMinWidth
	}
	if l.PixelsPerCell <= 0 {
		l.PixelsPerCell = defaults.PixelsPerCell
	}
	if l.CardWidth <= 0 {
		l.CardWidth = defaults.CardWidth
	}
}
