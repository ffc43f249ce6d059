// Package config handles backend endpoint selection and user configuration
// for firechat.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Fixed backend endpoints. The locator picks one of these from the host
// name; there is no per-environment override.
const (
	LocalBaseURL      = "http://localhost:5000"
	ProductionBaseURL = "https://firecrawl-agent-backend.onrender.com"
)

// Default request timeouts, in seconds.
const (
	DefaultToolsTimeoutSec = 10
	DefaultChatTimeoutSec  = 180
)

// IsLocal reports whether the host names a local development backend.
func IsLocal(host string) bool {
	return host == "localhost" || host == "127.0.0.1"
}

// Endpoint returns the backend base URL for the given host name.
func Endpoint(host string) string {
	if IsLocal(host) {
		return LocalBaseURL
	}
	return ProductionBaseURL
}

// StatusLabel returns the connection label shown in the UI for a host.
func StatusLabel(host string) string {
	if IsLocal(host) {
		return "Local"
	}
	return "Online"
}

// Config represents the user configuration supplied at startup.
type Config struct {
	// Host selects the backend: "localhost"/"127.0.0.1" map to the local
	// development URL, anything else to the production URL.
	Host string `json:"host"`
	// ToolsTimeoutSec bounds the tool directory fetch.
	ToolsTimeoutSec int `json:"tools_timeout_sec"`
	// ChatTimeoutSec bounds a chat exchange before it is aborted.
	ChatTimeoutSec int `json:"chat_timeout_sec"`
	// CopyToClipboard copies each agent reply to the system clipboard.
	CopyToClipboard bool `json:"copy_to_clipboard"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Host:            "localhost",
		ToolsTimeoutSec: DefaultToolsTimeoutSec,
		ChatTimeoutSec:  DefaultChatTimeoutSec,
		CopyToClipboard: false,
	}
}

// BaseURL resolves the backend base URL from the configured host.
func (c Config) BaseURL() string {
	return Endpoint(c.Host)
}

// StatusLabel resolves the connection label from the configured host.
func (c Config) StatusLabel() string {
	return StatusLabel(c.Host)
}

// ToolsTimeout returns the tool fetch timeout as a duration.
func (c Config) ToolsTimeout() time.Duration {
	if c.ToolsTimeoutSec <= 0 {
		return DefaultToolsTimeoutSec * time.Second
	}
	return time.Duration(c.ToolsTimeoutSec) * time.Second
}

// ChatTimeout returns the chat exchange timeout as a duration.
func (c Config) ChatTimeout() time.Duration {
	if c.ChatTimeoutSec <= 0 {
		return DefaultChatTimeoutSec * time.Second
	}
	return time.Duration(c.ChatTimeoutSec) * time.Second
}

// GetConfigDir returns the configuration directory path
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".firechat"), nil
}

// EnsureConfigDir creates the configuration directory if it doesn't exist
func EnsureConfigDir() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(configDir, 0o700); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}
	return configDir, nil
}

// GetConfigPath returns the path to the config file
func GetConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.json"), nil
}

// LoadConfig loads the configuration from disk. Missing file yields the
// defaults; a corrupt file is an error but still returns usable defaults.
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()

	configPath, err := GetConfigPath()
	if err != nil {
		return cfg, err
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := json.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// SaveConfig saves the configuration to disk
func SaveConfig(cfg Config) error {
	configDir, err := EnsureConfigDir()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	configPath := filepath.Join(configDir, "config.json")
	if err := os.WriteFile(configPath, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
