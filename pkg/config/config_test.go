package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 200, cfg.History.Show)
	assert.True(t, strings.HasSuffix(cfg.History.File, ".goterm_history"))
	assert.Equal(t, "0.0.0.0", cfg.Web.Host)
	assert.Equal(t, 5000, cfg.Web.Port)
	assert.Equal(t, "$", cfg.Prompt)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope", "config.json"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().Web.Port, cfg.Web.Port)
}

func TestLoadConfig_FileThenEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"web": {"host": "127.0.0.1", "port": 8080},
		"log_level": "debug"
	}`), 0o600))

	t.Setenv("GOTERM_WEB_PORT", "9191")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.Web.Host)
	// Environment beats the file.
	assert.Equal(t, 9191, cfg.Web.Port)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestSaveConfig_Roundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")

	cfg := DefaultConfig()
	cfg.History.Show = 50
	require.NoError(t, SaveConfig(path, cfg))

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 50, loaded.History.Show)
}

func TestResolveRuntimePaths(t *testing.T) {
	t.Run("explicit config path wins", func(t *testing.T) {
		t.Setenv(EnvGotermConfig, "/tmp/custom/goterm.json")
		t.Setenv(EnvGotermHome, "/tmp/ignored")

		paths := ResolveRuntimePaths()
		assert.Equal(t, "/tmp/custom/goterm.json", paths.ConfigPath)
		assert.Equal(t, "/tmp/custom", paths.HomeDir)
	})

	t.Run("home dir override", func(t *testing.T) {
		t.Setenv(EnvGotermConfig, "")
		t.Setenv(EnvGotermHome, "/tmp/goterm-home")

		paths := ResolveRuntimePaths()
		assert.Equal(t, "/tmp/goterm-home", paths.HomeDir)
		assert.Equal(t, filepath.Join("/tmp/goterm-home", "config.json"), paths.ConfigPath)
	})

	t.Run("defaults under user home", func(t *testing.T) {
		t.Setenv(EnvGotermConfig, "")
		t.Setenv(EnvGotermHome, "")

		paths := ResolveRuntimePaths()
		assert.True(t, strings.HasSuffix(paths.HomeDir, ".goterm"))
	})
}
