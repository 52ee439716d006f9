package config

import (
	"errors"
	"fmt"
)

// Limits for UI sizing values.
const (
	MinCardWidth     = 16
	MaxCardWidth     = 120
	MaxCardMaxLines  = 50
	MaxTooltipMargin = 10
)

// Config is the root configuration structure.
type Config struct {
	UI     UIConfig     `json:"ui" yaml:"ui"`
	Keymap KeymapConfig `json:"keymap" yaml:"keymap"`
}

// KeymapConfig holds key binding overrides, keyed by key.
type KeymapConfig struct {
	Overrides map[string]string `json:"overrides" yaml:"overrides"`
}

// UIConfig configures UI appearance.
type UIConfig struct {
	ShowFooter      bool        `json:"showFooter" yaml:"showFooter"`
	MarkdownPreview bool        `json:"markdownPreview" yaml:"markdownPreview"`
	CardWidth       int         `json:"cardWidth" yaml:"cardWidth"`
	CardMaxLines    int         `json:"cardMaxLines" yaml:"cardMaxLines"`
	TooltipMargin   int         `json:"tooltipMargin" yaml:"tooltipMargin"`
	Theme           ThemeConfig `json:"theme" yaml:"theme"`
}

// ThemeConfig configures the color theme.
type ThemeConfig struct {
	Name      string            `json:"name" yaml:"name"`
	Overrides map[string]string `json:"overrides,omitempty" yaml:"overrides,omitempty"` // user customizations on top
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Keymap: KeymapConfig{
			Overrides: make(map[string]string),
		},
		UI: UIConfig{
			ShowFooter:    true,
			CardWidth:     28,
			CardMaxLines:  6,
			TooltipMargin: 1,
			Theme: ThemeConfig{
				Name:      "default",
				Overrides: make(map[string]string),
			},
		},
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	var errs []error
	if c.UI.CardWidth < MinCardWidth || c.UI.CardWidth > MaxCardWidth {
		errs = append(errs, fmt.Errorf("ui.cardWidth %d out of range [%d, %d]", c.UI.CardWidth, MinCardWidth, MaxCardWidth))
	}
	if c.UI.CardMaxLines < 1 || c.UI.CardMaxLines > MaxCardMaxLines {
		errs = append(errs, fmt.Errorf("ui.cardMaxLines %d out of range [1, %d]", c.UI.CardMaxLines, MaxCardMaxLines))
	}
	if c.UI.TooltipMargin < 0 || c.UI.TooltipMargin > MaxTooltipMargin {
		errs = append(errs, fmt.Errorf("ui.tooltipMargin %d out of range [0, %d]", c.UI.TooltipMargin, MaxTooltipMargin))
	}
	if c.UI.Theme.Name == "" {
		c.UI.Theme.Name = "default"
	}
	return errors.Join(errs...)
}
