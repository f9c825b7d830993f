package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
)

type WebConfig struct {
	Host string `json:"host" env:"GOTERM_WEB_HOST"`
	Port int    `json:"port" env:"GOTERM_WEB_PORT"`
}

type HistoryConfig struct {
	File string `json:"file" env:"GOTERM_HISTORY_FILE"`
	// Show caps how many entries the history builtin displays. Storage is
	// unbounded; only the listing is truncated.
	Show int `json:"show" env:"GOTERM_HISTORY_SHOW"`
}

type Config struct {
	History HistoryConfig `json:"history"`
	Web     WebConfig     `json:"web"`
	// Prompt is the suffix rendered after the working directory.
	Prompt   string `json:"prompt" env:"GOTERM_PROMPT"`
	LogLevel string `json:"log_level" env:"GOTERM_LOG_LEVEL"`
	LogFile  string `json:"log_file" env:"GOTERM_LOG_FILE"`
}

func DefaultConfig() *Config {
	return &Config{
		History: HistoryConfig{
			File: DefaultHistoryFile(),
			Show: 200,
		},
		Web: WebConfig{
			Host: "0.0.0.0",
			Port: 5000,
		},
		Prompt:   "$",
		LogLevel: "warn",
	}
}

// LoadConfig reads the JSON config at path (missing file is not an error)
// and applies GOTERM_* environment overrides on top.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
	} else if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func SaveConfig(path string, cfg *Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o600)
}
