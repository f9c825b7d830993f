package config

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	EnvGotermConfig = "GOTERM_CONFIG"
	EnvGotermHome   = "GOTERM_HOME"
)

type RuntimePaths struct {
	HomeDir    string
	ConfigPath string
}

// ResolveRuntimePaths locates the goterm home directory and config file.
// GOTERM_CONFIG wins outright; GOTERM_HOME moves the whole directory;
// otherwise everything lives under ~/.goterm.
func ResolveRuntimePaths() RuntimePaths {
	if configPath := expandHome(strings.TrimSpace(os.Getenv(EnvGotermConfig))); configPath != "" {
		return RuntimePaths{HomeDir: filepath.Dir(configPath), ConfigPath: configPath}
	}

	homeDir := expandHome(strings.TrimSpace(os.Getenv(EnvGotermHome)))
	if homeDir == "" {
		homeDir = defaultGotermHome()
	}

	return RuntimePaths{HomeDir: homeDir, ConfigPath: filepath.Join(homeDir, "config.json")}
}

func defaultGotermHome() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ".goterm"
	}
	return filepath.Join(home, ".goterm")
}

// DefaultHistoryFile is the persisted command history, one line per entry.
func DefaultHistoryFile() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ".goterm_history"
	}
	return filepath.Join(home, ".goterm_history")
}

func expandHome(path string) string {
	if path == "" {
		return path
	}
	if path[0] == '~' {
		home, _ := os.UserHomeDir()
		if len(path) > 1 && path[1] == '/' {
			return home + path[1:]
		}
		return home
	}
	return path
}
