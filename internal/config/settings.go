package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Storage backends
const (
	BackendFile   = "file"
	BackendMemory = "memory"
	BackendSQLite = "sqlite"
)

// DefaultBackend is used when settings.json does not name one
const DefaultBackend = BackendSQLite

// DefaultLanguage matches the app's original audience
const DefaultLanguage = "tr"

// Settings represents the structure of $POMOTIMER_HOME/settings.json
type Settings struct {
	Backend     string `json:"backend,omitempty"`
	Debug       *bool  `json:"debug,omitempty"`
	Language    string `json:"language,omitempty"`
	MaxLogFiles *int   `json:"max_log_files,omitempty"`
}

// LoadSettings loads settings from settings.json. A missing file is not
// an error; defaults apply.
func LoadSettings() (*Settings, error) {
	data, err := os.ReadFile(GetSettingsPath())
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}
	return &settings, nil
}

// SaveSettings writes settings to settings.json, creating the data
// directory when needed
func SaveSettings(settings *Settings) error {
	path := GetSettingsPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}
	return nil
}

// ResolveBackend returns the configured storage backend with the default
// applied
func (s *Settings) ResolveBackend() string {
	switch s.Backend {
	case BackendFile, BackendMemory, BackendSQLite:
		return s.Backend
	default:
		return DefaultBackend
	}
}

// ResolveLanguage returns the configured language with the default
// applied
func (s *Settings) ResolveLanguage() string {
	if s.Language != "" {
		return s.Language
	}
	return DefaultLanguage
}
