// Package config provides preference persistence for the throbber demo.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

const currentStateVersion = 1

// HomeEnv overrides the directory holding the state file and debug log.
const HomeEnv = "THROBBER_HOME"

// AppState represents the demo's persistent state.
type AppState struct {
	Version int     `json:"version"`
	UI      UIState `json:"ui"`
}

func defaultAppState() AppState {
	return AppState{
		Version: currentStateVersion,
		UI: UIState{
			Demo: defaultDemoState(),
		},
	}
}

func (s *AppState) normalize() {
	if s == nil {
		return
	}
	if s.Version == 0 {
		s.Version = currentStateVersion
	}
	s.UI.Demo.normalize()
}

// GetConfigDir returns the path to the config directory, $THROBBER_HOME or
// ~/.throbber.
func GetConfigDir() (string, error) {
	if dir := os.Getenv(HomeEnv); dir != "" {
		return dir, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(homeDir, ".throbber"), nil
}

// EnsureConfigDir creates the config directory if it doesn't exist
func EnsureConfigDir() error {
	dir, err := GetConfigDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0755)
}

// getStateFilePath returns the path to the state.json file
func getStateFilePath() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "state.json"), nil
}

// LoadState loads the demo state from disk. A missing, empty or unreadable
// JSON file yields the defaults.
func LoadState() (*AppState, error) {
	stateFile, err := getStateFilePath()
	if err != nil {
		return nil, err
	}

	state := defaultAppState()

	data, err := os.ReadFile(stateFile)
	if errors.Is(err, os.ErrNotExist) {
		return &state, nil
	} else if err != nil {
		return nil, fmt.Errorf("read state file: %w", err)
	}
	if len(data) == 0 {
		return &state, nil
	}

	if err := json.Unmarshal(data, &state); err != nil {
		state = defaultAppState()
		return &state, nil
	}

	state.normalize()
	return &state, nil
}

// SaveState saves the demo state to disk
func SaveState(state *AppState) error {
	if state == nil {
		return errors.New("state cannot be nil")
	}

	if err := EnsureConfigDir(); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	state.normalize()

	stateFile, err := getStateFilePath()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}

	return os.WriteFile(stateFile, data, 0644)
}
