package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// SaveTheme updates only ui.theme.name in the file at path. Every other key,
// including ones this package does not manage, is preserved. The format
// follows the file extension.
func SaveTheme(path, themeName string) error {
	doc := map[string]any{}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := unmarshal(path, data, &doc); err != nil {
			return fmt.Errorf("parse config %s: %w", path, err)
		}
		if doc == nil {
			doc = map[string]any{}
		}
	case !os.IsNotExist(err):
		return fmt.Errorf("read config: %w", err)
	}

	ui := childMap(doc, "ui")
	theme := childMap(ui, "theme")
	theme["name"] = themeName

	out, err := marshal(path, doc)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	return os.WriteFile(path, out, 0644)
}

// childMap returns doc[key] as a map, replacing any non-map value.
func childMap(doc map[string]any, key string) map[string]any {
	if m, ok := doc[key].(map[string]any); ok {
		return m
	}
	m := map[string]any{}
	doc[key] = m
	return m
}

func marshal(path string, v any) ([]byte, error) {
	if isYAML(path) {
		return yaml.Marshal(v)
	}
	return json.MarshalIndent(v, "", "  ")
}
