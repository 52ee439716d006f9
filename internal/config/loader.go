package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const configDir = ".config/corkboard"

// configFiles are tried in order when no path is given.
var configFiles = []string{"config.json", "config.yaml", "config.yml"}

// rawConfig is the unmarshaling intermediary. Pointer fields tell an
// explicit zero apart from an absent key.
type rawConfig struct {
	UI     rawUIConfig  `json:"ui" yaml:"ui"`
	Keymap KeymapConfig `json:"keymap" yaml:"keymap"`
}

type rawUIConfig struct {
	ShowFooter      *bool       `json:"showFooter" yaml:"showFooter"`
	MarkdownPreview *bool       `json:"markdownPreview" yaml:"markdownPreview"`
	CardWidth       *int        `json:"cardWidth" yaml:"cardWidth"`
	CardMaxLines    *int        `json:"cardMaxLines" yaml:"cardMaxLines"`
	TooltipMargin   *int        `json:"tooltipMargin" yaml:"tooltipMargin"`
	Theme           ThemeConfig `json:"theme" yaml:"theme"`
}

// Load loads configuration from the default location.
func Load() (*Config, error) {
	return LoadFrom("")
}

// LoadFrom loads configuration from a specific path.
// If path is empty, uses ConfigPath(). A missing file yields defaults.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = ConfigPath()
		if path == "" {
			return cfg, nil // no home directory
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	var raw rawConfig
	if err := unmarshal(path, data, &raw); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	mergeConfig(cfg, &raw)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func unmarshal(path string, data []byte, v any) error {
	if isYAML(path) {
		return yaml.Unmarshal(data, v)
	}
	return json.Unmarshal(data, v)
}

func isYAML(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

// mergeConfig merges raw config values into the config.
func mergeConfig(cfg *Config, raw *rawConfig) {
	// UI
	if raw.UI.ShowFooter != nil {
		cfg.UI.ShowFooter = *raw.UI.ShowFooter
	}
	if raw.UI.MarkdownPreview != nil {
		cfg.UI.MarkdownPreview = *raw.UI.MarkdownPreview
	}
	if raw.UI.CardWidth != nil {
		cfg.UI.CardWidth = *raw.UI.CardWidth
	}
	if raw.UI.CardMaxLines != nil {
		cfg.UI.CardMaxLines = *raw.UI.CardMaxLines
	}
	if raw.UI.TooltipMargin != nil {
		cfg.UI.TooltipMargin = *raw.UI.TooltipMargin
	}
	if raw.UI.Theme.Name != "" {
		cfg.UI.Theme.Name = raw.UI.Theme.Name
	}
	for k, v := range raw.UI.Theme.Overrides {
		cfg.UI.Theme.Overrides[k] = v
	}

	// Keymap
	for k, v := range raw.Keymap.Overrides {
		cfg.Keymap.Overrides[k] = v
	}
}

// ExpandPath expands ~ to home directory.
func ExpandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// ConfigPath returns the path to the config file: the first of
// config.json, config.yaml and config.yml that exists, else config.json.
func ConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return findConfig(filepath.Join(home, configDir))
}

func findConfig(dir string) string {
	for _, name := range configFiles {
		p := filepath.Join(dir, name)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return filepath.Join(dir, configFiles[0])
}
