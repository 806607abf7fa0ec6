// Package config provides configuration loading and validation for the CLI
// and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nitzanshifris/cv2web/internal/layout"
	"github.com/nitzanshifris/cv2web/internal/selection"
)

// Config represents the cv2web configuration that can be loaded from a JSON
// file. All fields are optional; missing values use the production defaults
// or must be provided via CLI flags. The numeric thresholds are the
// templates' behavioral contract; override them only when the portfolio
// templates change with them.
type Config struct {
	// Server
	Port        int    `json:"port,omitempty"`         // HTTP listen port
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL (empty disables run persistence)

	// Behavior
	Verbose bool `json:"verbose,omitempty"` // Print detailed analysis information

	// Layout thresholds
	RowLayoutMax  int `json:"row_layout_max,omitempty"`  // Largest item count rendered as a row (default 3)
	GridLayoutMax int `json:"grid_layout_max,omitempty"` // Largest item count rendered as a grid (default 9)

	// Adapter thresholds
	MinBentoItems int `json:"min_bento_items,omitempty"` // Bento grid minimum before card-stack fallback (default 3)

	// Selection thresholds
	SmartSectionThreshold int     `json:"smart_section_threshold,omitempty"` // Populated-section count that engages the smart path (default 7)
	LowRichness           float64 `json:"low_richness,omitempty"`            // Merge-suggestion boundary (default 0.25)
	HighRichness          float64 `json:"high_richness,omitempty"`           // Layout-upgrade boundary (default 0.75)

	// Archetype vocabulary (tunable tables, defaults built in)
	CreativeKeywords  []string `json:"creative_keywords,omitempty"`
	TechnicalKeywords []string `json:"technical_keywords,omitempty"`
}

// LoadConfig loads configuration from a JSON file. Returns an error if the
// file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config in %s: %w", path, err)
	}

	return &cfg, nil
}

// Validate checks value ranges for the fields that are set. Zero values are
// always valid (they mean "use the default").
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("port out of range: %d", c.Port)
	}
	if c.RowLayoutMax < 0 {
		return fmt.Errorf("row_layout_max cannot be negative: %d", c.RowLayoutMax)
	}
	if c.GridLayoutMax != 0 && c.RowLayoutMax != 0 && c.GridLayoutMax <= c.RowLayoutMax {
		return fmt.Errorf("grid_layout_max (%d) must exceed row_layout_max (%d)", c.GridLayoutMax, c.RowLayoutMax)
	}
	if c.LowRichness < 0 || c.LowRichness > 1 {
		return fmt.Errorf("low_richness out of range: %f", c.LowRichness)
	}
	if c.HighRichness < 0 || c.HighRichness > 1 {
		return fmt.Errorf("high_richness out of range: %f", c.HighRichness)
	}
	if c.LowRichness != 0 && c.HighRichness != 0 && c.LowRichness >= c.HighRichness {
		return fmt.Errorf("low_richness (%f) must be below high_richness (%f)", c.LowRichness, c.HighRichness)
	}
	return nil
}

// LayoutPolicy builds the layout policy from the configured thresholds,
// keeping defaults for unset fields.
func (c *Config) LayoutPolicy() layout.Policy {
	policy := layout.DefaultPolicy()
	if c.RowLayoutMax > 0 {
		policy.RowMax = c.RowLayoutMax
	}
	if c.GridLayoutMax > 0 {
		policy.GridMax = c.GridLayoutMax
	}
	return policy
}

// SelectionConfig builds the selector configuration from the configured
// thresholds, keeping defaults for unset fields.
func (c *Config) SelectionConfig() selection.Config {
	cfg := selection.DefaultConfig()
	cfg.Layout = c.LayoutPolicy()
	if c.MinBentoItems > 0 {
		cfg.MinBentoItems = c.MinBentoItems
	}
	if c.SmartSectionThreshold > 0 {
		cfg.SmartSectionThreshold = c.SmartSectionThreshold
	}
	if c.LowRichness > 0 {
		cfg.LowRichness = c.LowRichness
	}
	if c.HighRichness > 0 {
		cfg.HighRichness = c.HighRichness
	}
	if len(c.CreativeKeywords) > 0 {
		cfg.CreativeKeywords = c.CreativeKeywords
	}
	if len(c.TechnicalKeywords) > 0 {
		cfg.TechnicalKeywords = c.TechnicalKeywords
	}
	return cfg
}
