package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tailscale/hujson"
	"github.com/thenoetrevino/lanekit/internal/models"
	"gopkg.in/yaml.v3"
)

var (
	// ErrUnsupportedFormat is returned for column files that are neither JSON(C) nor YAML
	ErrUnsupportedFormat = errors.New("unsupported column file format")

	// ErrUnknownColumn is returned for list view columns that name no item field
	ErrUnknownColumn = errors.New("unknown list column")
)

// columnsFile is the document shape shared by every column file format
type columnsFile struct {
	Columns []models.Column `json:"columns" yaml:"columns"`
}

// LoadColumns reads column definitions from path. The format follows the
// extension: .json and .jsonc accept comments and trailing commas, .yaml and
// .yml are plain YAML.
func LoadColumns(path string) ([]models.Column, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading column file: %w", err)
	}

	cols, err := ParseColumns(data, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cols, nil
}

// ParseColumns decodes column definitions in the format named by ext
func ParseColumns(data []byte, ext string) ([]models.Column, error) {
	var doc columnsFile

	switch strings.ToLower(ext) {
	case ".json", ".jsonc":
		std, err := hujson.Standardize(data)
		if err != nil {
			return nil, fmt.Errorf("invalid JSONC: %w", err)
		}
		if err := json.Unmarshal(std, &doc); err != nil {
			return nil, fmt.Errorf("decoding columns: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("decoding columns: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	if err := validateColumns(doc.Columns); err != nil {
		return nil, err
	}
	return doc.Columns, nil
}

func validateColumns(cols []models.Column) error {
	seen := make(map[string]bool, len(cols))
	for i, col := range cols {
		if col.ID == "" {
			return fmt.Errorf("column %d: id cannot be empty", i)
		}
		if col.ID == models.SelectionColumnID || col.ID == models.OverflowColumnID {
			return fmt.Errorf("column %d: id %q is reserved", i, col.ID)
		}
		if seen[col.ID] {
			return fmt.Errorf("column %d: duplicate id %q", i, col.ID)
		}
		seen[col.ID] = true
	}
	return nil
}

// ValidateListColumns checks the columns the list view renders. On top of the
// generic checks every ID must name an item field.
func ValidateListColumns(cols []models.Column) error {
	if err := validateColumns(cols); err != nil {
		return err
	}
	for i, col := range cols {
		if !models.IsItemColumn(col.ID) {
			return fmt.Errorf("column %d: %w %q (want one of key, title, lane, order, description)",
				i, ErrUnknownColumn, col.ID)
		}
	}
	return nil
}
