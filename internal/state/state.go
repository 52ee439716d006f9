// Package state persists small UI preferences between runs. It is separate
// from config: the user edits config, the program writes state.
package state

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
)

// State holds persistent user preferences.
type State struct {
	// ShowFooter is the last footer toggle; nil means follow config.
	ShowFooter *bool `json:"showFooter,omitempty"`
}

var (
	current *State
	mu      sync.RWMutex
	path    string
)

// Init loads state from the default location.
func Init() error {
	home, err := os.UserHomeDir()
	if err != nil {
		return err
	}
	return InitWithDir(filepath.Join(home, ".config", "corkboard"))
}

// InitWithDir loads state from a specified directory.
// This is primarily for testing to avoid reading real user state.
func InitWithDir(dir string) error {
	mu.Lock()
	path = filepath.Join(dir, "state.json")
	mu.Unlock()
	return Load()
}

// Load reads state from disk.
func Load() error {
	mu.Lock()
	defer mu.Unlock()

	current = &State{}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil // no state file yet, use defaults
	}
	if err != nil {
		return err
	}

	return json.Unmarshal(data, current)
}

// Save writes state to disk. It does nothing before Init.
func Save() error {
	mu.RLock()
	defer mu.RUnlock()

	if current == nil || path == "" {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(current, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// GetShowFooter returns the saved footer preference and whether one exists.
func GetShowFooter() (show, ok bool) {
	mu.RLock()
	defer mu.RUnlock()
	if current == nil || current.ShowFooter == nil {
		return false, false
	}
	return *current.ShowFooter, true
}

// SetShowFooter saves the footer preference.
func SetShowFooter(show bool) error {
	mu.Lock()
	if current == nil {
		current = &State{}
	}
	current.ShowFooter = &show
	mu.Unlock()
	return Save()
}
