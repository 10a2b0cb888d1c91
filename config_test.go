package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestUIConfigAccessorDefaults(t *testing.T) {
	tests := []struct {
		name string
		cfg  *uiConfig
		api  string
		prio string
		cmd  string
	}{
		{
			name: "nil config falls back everywhere",
			cfg:  nil,
			api:  "http://vp.localhost",
			prio: "_auto-delete",
			cmd:  "mpv",
		},
		{
			name: "empty config falls back everywhere",
			cfg:  &uiConfig{},
			api:  "http://vp.localhost",
			prio: "_auto-delete",
			cmd:  "mpv",
		},
		{
			name: "whitespace counts as unset",
			cfg:  &uiConfig{APIEndpoint: "  ", PriorityFolder: "\t", PlayerCommand: " "},
			api:  "http://vp.localhost",
			prio: "_auto-delete",
			cmd:  "mpv",
		},
		{
			name: "explicit values win, trailing slash trimmed",
			cfg: &uiConfig{
				APIEndpoint:    "http://media.lan:8080/",
				PriorityFolder: "_review",
				PlayerCommand:  "mpv-custom",
			},
			api:  "http://media.lan:8080",
			prio: "_review",
			cmd:  "mpv-custom",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cfg.apiEndpoint(); got != tt.api {
				t.Errorf("apiEndpoint() = %q, want %q", got, tt.api)
			}
			if got := tt.cfg.priorityFolder(); got != tt.prio {
				t.Errorf("priorityFolder() = %q, want %q", got, tt.prio)
			}
			if got := tt.cfg.playerCommand(); got != tt.cmd {
				t.Errorf("playerCommand() = %q, want %q", got, tt.cmd)
			}
		})
	}
}

func TestSaveUIConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ui.yaml")
	cfg := &uiConfig{Theme: "dark", APIEndpoint: "http://media.lan:8080"}

	if err := saveUIConfig(cfg, path); err != nil {
		t.Fatalf("saveUIConfig: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	content := string(data)
	if content == "" {
		t.Fatal("saved config is empty")
	}
	for _, want := range []string{"theme: dark", "api_endpoint: http://media.lan:8080"} {
		if !strings.Contains(content, want) {
			t.Errorf("saved config missing %q:\n%s", want, content)
		}
	}
}

func TestSaveUIConfigNilWritesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ui.yaml")
	if err := saveUIConfig(nil, path); err != nil {
		t.Fatalf("saveUIConfig(nil): %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config file not written: %v", err)
	}
}
