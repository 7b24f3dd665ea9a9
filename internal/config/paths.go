package config

import (
	"os"
	"path/filepath"
)

// HomeEnvVar overrides the data directory, mainly for tests and for
// running several independent profiles side by side
const HomeEnvVar = "POMOTIMER_HOME"

// GetHomeDir returns the pomotimer data directory
// ($POMOTIMER_HOME or ~/.pomotimer)
func GetHomeDir() string {
	if custom := os.Getenv(HomeEnvVar); custom != "" {
		return ExpandPath(custom)
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		// Last resort: relative to the working directory
		return ".pomotimer"
	}
	return filepath.Join(homeDir, ".pomotimer")
}

// GetDBPath returns the SQLite database path
func GetDBPath() string {
	return filepath.Join(GetHomeDir(), "pomotimer.db")
}

// GetDataDir returns the directory for the file-backed store
func GetDataDir() string {
	return filepath.Join(GetHomeDir(), "data")
}

// GetSettingsPath returns the settings.json path
func GetSettingsPath() string {
	return filepath.Join(GetHomeDir(), "settings.json")
}

// ExpandPath expands a leading ~ to the user's home directory
func ExpandPath(path string) string {
	if len(path) == 0 || path[0] != '~' {
		return path
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(homeDir, path[1:])
}
