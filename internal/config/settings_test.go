package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettings_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv(HomeEnvVar, t.TempDir())

	settings, err := LoadSettings()
	require.NoError(t, err)
	assert.Equal(t, DefaultBackend, settings.ResolveBackend())
	assert.Equal(t, DefaultLanguage, settings.ResolveLanguage())
}

func TestSaveAndLoadSettings(t *testing.T) {
	t.Setenv(HomeEnvVar, t.TempDir())

	debug := true
	require.NoError(t, SaveSettings(&Settings{
		Backend:  BackendFile,
		Debug:    &debug,
		Language: "en",
	}))

	settings, err := LoadSettings()
	require.NoError(t, err)
	assert.Equal(t, BackendFile, settings.ResolveBackend())
	assert.Equal(t, "en", settings.ResolveLanguage())
	require.NotNil(t, settings.Debug)
	assert.True(t, *settings.Debug)
}

func TestLoadSettings_InvalidJSON(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(HomeEnvVar, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "settings.json"), []byte("{broken"), 0644))

	_, err := LoadSettings()
	assert.Error(t, err)
}

func TestResolveBackend_UnknownFallsBack(t *testing.T) {
	settings := &Settings{Backend: "cloud"}
	assert.Equal(t, DefaultBackend, settings.ResolveBackend())
}

func TestGetHomeDir_EnvOverride(t *testing.T) {
	t.Setenv(HomeEnvVar, "/tmp/pomo-test")
	assert.Equal(t, "/tmp/pomo-test", GetHomeDir())
	assert.Equal(t, filepath.Join("/tmp/pomo-test", "pomotimer.db"), GetDBPath())
}
