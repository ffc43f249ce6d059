package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestEndpoint(t *testing.T) {
	tests := []struct {
		host string
		want string
	}{
		{"localhost", LocalBaseURL},
		{"127.0.0.1", LocalBaseURL},
		{"example.com", ProductionBaseURL},
		{"", ProductionBaseURL},
		{"LOCALHOST", ProductionBaseURL}, // host matching is case-sensitive
	}

	for _, tt := range tests {
		if got := Endpoint(tt.host); got != tt.want {
			t.Errorf("Endpoint(%q) = %q, want %q", tt.host, got, tt.want)
		}
	}
}

func TestStatusLabel(t *testing.T) {
	tests := []struct {
		host string
		want string
	}{
		{"localhost", "Local"},
		{"127.0.0.1", "Local"},
		{"example.com", "Online"},
		{"", "Online"},
	}

	for _, tt := range tests {
		if got := StatusLabel(tt.host); got != tt.want {
			t.Errorf("StatusLabel(%q) = %q, want %q", tt.host, got, tt.want)
		}
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Host != "localhost" {
		t.Errorf("default host = %q, want localhost", cfg.Host)
	}
	if cfg.ToolsTimeoutSec != DefaultToolsTimeoutSec {
		t.Errorf("default tools timeout = %d, want %d", cfg.ToolsTimeoutSec, DefaultToolsTimeoutSec)
	}
	if cfg.ChatTimeoutSec != DefaultChatTimeoutSec {
		t.Errorf("default chat timeout = %d, want %d", cfg.ChatTimeoutSec, DefaultChatTimeoutSec)
	}
	if cfg.CopyToClipboard {
		t.Error("clipboard copy should be off by default")
	}
	if cfg.BaseURL() != LocalBaseURL {
		t.Errorf("default BaseURL = %q, want %q", cfg.BaseURL(), LocalBaseURL)
	}
}

func TestTimeoutDurations(t *testing.T) {
	cfg := Config{ToolsTimeoutSec: 5, ChatTimeoutSec: 60}

	if got := cfg.ToolsTimeout(); got != 5*time.Second {
		t.Errorf("ToolsTimeout = %v, want 5s", got)
	}
	if got := cfg.ChatTimeout(); got != 60*time.Second {
		t.Errorf("ChatTimeout = %v, want 60s", got)
	}

	// Zero and negative values fall back to the defaults.
	cfg = Config{}
	if got := cfg.ToolsTimeout(); got != DefaultToolsTimeoutSec*time.Second {
		t.Errorf("zero ToolsTimeout = %v, want default", got)
	}
	cfg = Config{ChatTimeoutSec: -1}
	if got := cfg.ChatTimeout(); got != DefaultChatTimeoutSec*time.Second {
		t.Errorf("negative ChatTimeout = %v, want default", got)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig with no file should not error: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("missing file should yield defaults, got %+v", cfg)
	}
}

func TestSaveAndLoadConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	want := Config{
		Host:            "example.com",
		ToolsTimeoutSec: 15,
		ChatTimeoutSec:  90,
		CopyToClipboard: true,
	}
	if err := SaveConfig(want); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}

	got, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if got != want {
		t.Errorf("round-trip mismatch: got %+v, want %+v", got, want)
	}
}

func TestLoadConfigCorruptFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".firechat")
	if err := os.MkdirAll(dir, 0o700); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.json"), []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig()
	if err == nil {
		t.Error("corrupt config should return an error")
	}
	if cfg != DefaultConfig() {
		t.Errorf("corrupt config should still yield usable defaults, got %+v", cfg)
	}
}
