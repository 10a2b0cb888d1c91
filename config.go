package main

import (
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	defaultAPIEndpoint = "http://vp.localhost"

	// Records whose path contains this marker sort ahead of everything else.
	defaultPriorityFolder = "_auto-delete"
)

type uiConfig struct {
	Theme          string `yaml:"theme,omitempty"`
	APIEndpoint    string `yaml:"api_endpoint,omitempty"`
	PriorityFolder string `yaml:"priority_folder,omitempty"`
	PlayerCommand  string `yaml:"player_command,omitempty"`
}

// loadUIConfig reads ui.yaml from the config dir. Missing or malformed
// config yields defaults; the path is returned either way so saves land
// in the right place.
func loadUIConfig() (*uiConfig, string) {
	configDir := resolveConfigDir()
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return &uiConfig{}, filepath.Join(configDir, "ui.yaml")
	}
	path := filepath.Join(configDir, "ui.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		return &uiConfig{}, path
	}
	var cfg uiConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return &uiConfig{}, path
	}
	return &cfg, path
}

func saveUIConfig(cfg *uiConfig, path string) error {
	if cfg == nil {
		cfg = &uiConfig{}
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func resolveConfigDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "vptui")
}

func ensureDir(path string) error {
	return os.MkdirAll(path, 0o755)
}

func (c *uiConfig) apiEndpoint() string {
	if c != nil {
		if trimmed := strings.TrimSpace(c.APIEndpoint); trimmed != "" {
			return strings.TrimRight(trimmed, "/")
		}
	}
	return defaultAPIEndpoint
}

func (c *uiConfig) priorityFolder() string {
	if c != nil {
		if trimmed := strings.TrimSpace(c.PriorityFolder); trimmed != "" {
			return trimmed
		}
	}
	return defaultPriorityFolder
}

func (c *uiConfig) playerCommand() string {
	if c != nil {
		if trimmed := strings.TrimSpace(c.PlayerCommand); trimmed != "" {
			return trimmed
		}
	}
	return "mpv"
}
